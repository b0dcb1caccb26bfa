package handler

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const (
	defaultTransactionLimit = 20
	maxTransactionLimit     = 100
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetBalance handles the GET /users/{userId}/balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		badRequest(c, err, "Invalid user ID format")
		return
	}

	balance, err := h.userUseCase.GetFormattedUserBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Error getting user balance", err, messageInternal, map[string]any{
			"user_id": userID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID: balance.UserID,
		GC:     balance.GC,
		SC:     balance.SC,
	})
}

// ListTransactions handles the GET /users/{userId}/transactions endpoint
func (h *UserHandler) ListTransactions(c *gin.Context) {
	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		badRequest(c, err, "Invalid user ID format")
		return
	}

	limit := defaultTransactionLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxTransactionLimit {
			badRequest(c, errs.ErrInvalidRequest, "Invalid limit. Must be between 1 and 100")
			return
		}
	}

	txs, err := h.userUseCase.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, h.logger, "Error listing transactions", err, messageInternal, map[string]any{
			"user_id": userID,
			"limit":   limit,
		})
		return
	}

	resp := dto.TransactionListResponse{
		UserID:       userID,
		Transactions: make([]dto.TransactionDTO, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, toTransactionDTO(tx))
	}

	c.JSON(http.StatusOK, resp)
}

func toTransactionDTO(tx *entity.Transaction) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:              tx.ID,
		Reference:       tx.Reference,
		Type:            string(tx.Type),
		Currency:        string(tx.Currency),
		Amount:          entity.AmountInCentsToString(tx.Amount),
		PreviousBalance: entity.AmountInCentsToString(tx.PreviousBalance),
		NewBalance:      entity.AmountInCentsToString(tx.NewBalance),
		Description:     tx.Description,
		Status:          string(tx.Status),
		ResultID:        tx.ResultID,
		CreatedAt:       tx.CreatedAt,
	}
}
