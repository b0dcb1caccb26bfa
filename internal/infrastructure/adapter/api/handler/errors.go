package handler

import (
	"errors"
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const (
	messageInternal = "Internal server error"
	messageRetry    = "The result could not be recorded and no reward was credited. Please try again."
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errs.IsNotFoundError(err):
		return http.StatusNotFound

	case errs.IsCooldownError(err),
		errs.IsUserLockedError(err),
		errs.IsTransientError(err),
		errors.Is(err, errs.ErrConcurrentPlay),
		errors.Is(err, errs.ErrDuplicateUser):
		return http.StatusConflict

	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests

	case errors.Is(err, errs.ErrConstraintViolation):
		return http.StatusUnprocessableEntity

	case errors.Is(err, errs.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	}

	switch errs.ErrorCode(err) {
	case errs.CodeInvalidRequest, errs.CodeInvalidAmount, errs.CodeInvalidUserID,
		errs.CodeInvalidScore, errs.CodeScoreOutOfEnvelope, errs.CodeInvalidDuration,
		errs.CodeInvalidPeriod, errs.CodeAmountOverflow:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorResponse builds the body for err. Server-side failures never expose
// the underlying message.
func errorResponse(err error, status int, serverMessage string) dto.ErrorResponse {
	resp := dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: err.Error(),
	}
	if status >= http.StatusInternalServerError {
		resp.Message = serverMessage
	}
	if cd, ok := errs.AsCooldownError(err); ok {
		next := cd.NextAvailable
		remaining := cd.SecondsRemaining
		resp.NextAvailable = &next
		resp.SecondsRemaining = &remaining
		resp.Message = "Mini-game is on cooldown"
	}
	return resp
}

// respondError logs err and writes the mapped error response
func respondError(c *gin.Context, logger coreport.Logger, msg string, err error, serverMessage string, fields map[string]any) {
	status := StatusCode(err)
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	fields["status_code"] = status
	fields["error_code"] = errs.ErrorCode(err)

	if cd, ok := errs.AsCooldownError(err); ok {
		fields["seconds_remaining"] = cd.SecondsRemaining
	}

	if status >= http.StatusInternalServerError {
		logger.Error(msg, fields)
	} else {
		logger.Warn(msg, fields)
	}

	c.JSON(status, errorResponse(err, status, serverMessage))
}

// badRequest writes a 400 for input that never reached the domain
func badRequest(c *gin.Context, err error, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// parseUserID reads a positive user id from a path or query value
func parseUserID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.ErrInvalidUserID
	}
	return id, nil
}
