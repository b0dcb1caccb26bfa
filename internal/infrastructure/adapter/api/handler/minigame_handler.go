package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// MiniGameHandler handles mini-game HTTP requests
type MiniGameHandler struct {
	miniGames usecase.MiniGameUseCase
	logger    coreport.Logger
}

// NewMiniGameHandler creates a new mini-game handler instance
func NewMiniGameHandler(miniGames usecase.MiniGameUseCase, logger coreport.Logger) *MiniGameHandler {
	return &MiniGameHandler{
		miniGames: miniGames,
		logger:    logger,
	}
}

// ListGames handles the GET /mini-games endpoint
func (h *MiniGameHandler) ListGames(c *gin.Context) {
	games := h.miniGames.ListGames()
	resp := dto.GameListResponse{Games: make([]dto.GameDTO, 0, len(games))}
	for _, g := range games {
		resp.Games = append(resp.Games, dto.GameDTO{
			ID:              g.ID,
			Name:            g.DisplayName,
			CooldownHours:   g.CooldownHours,
			DurationSeconds: int64(g.NominalDuration.Seconds()),
			SCRate:          g.SCRate.String(),
			SCCap:           entity.AmountInCentsToString(g.SCCap),
			GCRate:          g.GCRate.String(),
			GCCap:           entity.AmountInCentsToString(g.GCCap),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Session handles the POST /mini-games/session endpoint
func (h *MiniGameHandler) Session(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errs.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	eligibility, err := h.miniGames.CheckEligibility(c.Request.Context(), req.UserID, req.GameID)
	if err != nil {
		respondError(c, h.logger, "Eligibility check failed", err, messageInternal, map[string]any{
			"user_id": req.UserID,
			"game_id": req.GameID,
		})
		return
	}

	resp := dto.SessionResponse{
		GameID:           req.GameID,
		UserID:           req.UserID,
		NextAvailable:    eligibility.NextAvailable,
		TotalSCEarned:    entity.AmountInCentsToString(0),
		CanPlay:          eligibility.CanPlay,
		SecondsRemaining: eligibility.SecondsRemaining,
		Degraded:         eligibility.Degraded,
	}
	if s := eligibility.Session; s != nil {
		if s.HasPlayed() {
			last := s.LastPlayed
			resp.LastPlayed = &last
		}
		resp.TotalPlays = s.TotalPlays
		resp.BestScore = s.BestScore
		resp.TotalSCEarned = entity.AmountInCentsToString(s.TotalSCEarned)
	}

	c.JSON(http.StatusOK, resp)
}

// RecordResult handles the POST /mini-games/record-result endpoint
func (h *MiniGameHandler) RecordResult(c *gin.Context) {
	var req dto.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errs.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	outcome, err := h.miniGames.RecordResult(c.Request.Context(), usecase.RecordRequest{
		AttemptID:     req.AttemptID,
		UserID:        req.UserID,
		GameID:        req.GameID,
		Score:         *req.Score,
		PenaltyUnits:  req.Penalty,
		ClientSC:      req.SCEarned.String(),
		ClientGC:      req.GCEarned.String(),
		Duration:      req.PlayDuration(),
		ClientVersion: req.ClientVersion,
	})
	if err != nil {
		respondError(c, h.logger, "Recording mini-game result failed", err, messageRetry, map[string]any{
			"user_id":    req.UserID,
			"game_id":    req.GameID,
			"score":      *req.Score,
			"attempt_id": req.AttemptID,
		})
		return
	}

	gc, sc := outcome.NewBalance.Formatted()
	resp := dto.RecordResultResponse{
		Success:    true,
		ResultID:   outcome.ResultID,
		NewBalance: dto.CurrencyAmounts{SC: sc, GC: gc},
		Reward: dto.CurrencyAmounts{
			SC: entity.AmountInCentsToString(outcome.Reward.SC),
			GC: entity.AmountInCentsToString(outcome.Reward.GC),
		},
		RewardAdjusted: outcome.RewardAdjusted,
		Replayed:       outcome.Replayed,
	}
	if outcome.Session != nil {
		resp.NextAvailable = outcome.Session.NextAvailable
	}

	c.JSON(http.StatusOK, resp)
}

// Leaderboard handles the GET /mini-games/leaderboard/:gameId endpoint
func (h *MiniGameHandler) Leaderboard(c *gin.Context) {
	gameID := c.Param("gameId")

	period, err := entity.ParseLeaderboardPeriod(c.Query("period"))
	if err != nil {
		badRequest(c, err, "Invalid period. Must be one of: daily, weekly, monthly, all")
		return
	}

	var userID uint64
	if raw := c.Query("userId"); raw != "" {
		if userID, err = parseUserID(raw); err != nil {
			badRequest(c, err, "Invalid user ID format")
			return
		}
	}

	board, err := h.miniGames.Leaderboard(c.Request.Context(), gameID, period, userID)
	if err != nil {
		respondError(c, h.logger, "Leaderboard query failed", err, messageInternal, map[string]any{
			"game_id": gameID,
			"period":  string(period),
		})
		return
	}

	resp := dto.LeaderboardResponse{
		GameID:      board.GameID,
		Period:      string(board.Period),
		Leaderboard: make([]dto.LeaderboardEntryDTO, 0, len(board.Entries)),
	}
	for _, e := range board.Entries {
		resp.Leaderboard = append(resp.Leaderboard, toLeaderboardEntry(e))
	}
	if board.User != nil {
		resp.UserRank = &dto.UserRankDTO{
			LeaderboardEntryDTO: toLeaderboardEntry(board.User.LeaderboardEntry),
			TotalPlayers:        board.User.TotalPlayers,
			Percentile:          board.User.Percentile(),
		}
	}

	c.JSON(http.StatusOK, resp)
}

func toLeaderboardEntry(e entity.LeaderboardEntry) dto.LeaderboardEntryDTO {
	return dto.LeaderboardEntryDTO{
		Rank:     e.Rank,
		UserID:   e.UserID,
		Username: e.Username,
		Score:    e.Score,
		SCEarned: entity.AmountInCentsToString(e.SCEarned),
		Plays:    e.Plays,
	}
}
