package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/usecase"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMiniGameRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockMiniGameUseCase) {
	t.Helper()
	uc := usecasemocks.NewMockMiniGameUseCase(t)
	h := handler.NewMiniGameHandler(uc, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/mini-games", h.ListGames)
	router.POST("/mini-games/session", h.Session)
	router.POST("/mini-games/record-result", h.RecordResult)
	router.GET("/mini-games/leaderboard/:gameId", h.Leaderboard)
	return router, uc
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestMiniGameHandler_RecordResult(t *testing.T) {
	t.Run("credits and returns server computed reward", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)

		uc.EXPECT().RecordResult(mock.Anything, usecase.RecordRequest{
			AttemptID:     "attempt-1",
			UserID:        1,
			GameID:        "dog-catcher",
			Score:         150,
			PenaltyUnits:  0,
			ClientSC:      "1.5",
			ClientGC:      "150.00",
			Duration:      45500 * time.Millisecond,
			ClientVersion: "web-1.2",
		}).Return(&usecase.RecordOutcome{
			ResultID:       "01HQ",
			Reward:         entity.Reward{SC: 100, GC: 15000},
			NewBalance:     entity.Balances{SC: 1100, GC: 115000},
			Session:        &entity.MiniGameSession{NextAvailable: now.Add(24 * time.Hour)},
			RewardAdjusted: true,
		}, nil)

		rec := doJSON(router, http.MethodPost, "/mini-games/record-result", `{
			"attemptId": "attempt-1",
			"gameId": "dog-catcher",
			"userId": 1,
			"score": 150,
			"scEarned": 1.5,
			"gcEarned": "150.00",
			"duration": 45.5,
			"clientVersion": "web-1.2"
		}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[dto.RecordResultResponse](t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, "01HQ", resp.ResultID)
		assert.Equal(t, dto.CurrencyAmounts{SC: "1.00", GC: "150.00"}, resp.Reward)
		assert.Equal(t, dto.CurrencyAmounts{SC: "11.00", GC: "1150.00"}, resp.NewBalance)
		assert.True(t, resp.RewardAdjusted)
		assert.True(t, resp.NextAvailable.Equal(now.Add(24*time.Hour)))
	})

	t.Run("cooldown carries next available time", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		next := now.Add(3 * time.Hour)
		uc.EXPECT().RecordResult(mock.Anything, mock.Anything).
			Return(nil, errs.NewRecordError(1, "dog-catcher", 10, "eligibility",
				errs.NewCooldownError(1, "dog-catcher", next, 10800)))

		rec := doJSON(router, http.MethodPost, "/mini-games/record-result",
			`{"gameId":"dog-catcher","userId":1,"score":10,"duration":30}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		resp := decode[dto.ErrorResponse](t, rec)
		assert.Equal(t, errs.CodeCooldownActive, resp.Code)
		require.NotNil(t, resp.NextAvailable)
		assert.True(t, resp.NextAvailable.Equal(next))
		require.NotNil(t, resp.SecondsRemaining)
		assert.Equal(t, int64(10800), *resp.SecondsRemaining)
	})

	t.Run("storage failure never implies credit", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		uc.EXPECT().RecordResult(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("commit: %w", errs.ErrDatabaseConnection))

		rec := doJSON(router, http.MethodPost, "/mini-games/record-result",
			`{"gameId":"dog-catcher","userId":1,"score":10,"duration":30}`)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		resp := decode[dto.ErrorResponse](t, rec)
		assert.Equal(t, errs.CodeStorageUnavailable, resp.Code)
		assert.Contains(t, resp.Message, "try again")
		assert.NotContains(t, resp.Message, "commit")
		assert.Nil(t, resp.NextAvailable)
	})

	t.Run("validation errors are client errors", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		uc.EXPECT().RecordResult(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: score 900 over 350", errs.ErrScoreOutOfEnvelope))

		rec := doJSON(router, http.MethodPost, "/mini-games/record-result",
			`{"gameId":"dog-catcher","userId":1,"score":900,"duration":70}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeScoreOutOfEnvelope, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("malformed body never reaches the use case", func(t *testing.T) {
		router, _ := newMiniGameRouter(t)

		for _, body := range []string{
			`{"gameId":"dog-catcher","userId":1}`,
			`{"gameId":"dog-catcher","score":5,"duration":3}`,
			`{"gameId":"dog-catcher","userId":1,"score":5,"scEarned":true}`,
			`not json`,
		} {
			rec := doJSON(router, http.MethodPost, "/mini-games/record-result", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, errs.CodeInvalidRequest, decode[dto.ErrorResponse](t, rec).Code, body)
		}
	})
}

func TestMiniGameHandler_Session(t *testing.T) {
	t.Run("never played", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		session, err := entity.NewMiniGameSession(7, "brick-stacker")
		require.NoError(t, err)

		uc.EXPECT().CheckEligibility(mock.Anything, uint64(7), "brick-stacker").Return(&usecase.Eligibility{
			CanPlay:       true,
			NextAvailable: session.NextAvailable,
			Session:       session,
		}, nil)

		rec := doJSON(router, http.MethodPost, "/mini-games/session", `{"gameId":"brick-stacker","userId":7}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.SessionResponse](t, rec)
		assert.True(t, resp.CanPlay)
		assert.Nil(t, resp.LastPlayed)
		assert.Equal(t, int64(0), resp.TotalPlays)
		assert.Equal(t, "0.00", resp.TotalSCEarned)
	})

	t.Run("on cooldown is a normal answer", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		session := &entity.MiniGameSession{
			UserID:        7,
			GameID:        "brick-stacker",
			LastPlayed:    now.Add(-time.Hour),
			NextAvailable: now.Add(23 * time.Hour),
			TotalPlays:    3,
			BestScore:     120,
			TotalSCEarned: 150,
		}
		uc.EXPECT().CheckEligibility(mock.Anything, uint64(7), "brick-stacker").Return(&usecase.Eligibility{
			CanPlay:          false,
			NextAvailable:    session.NextAvailable,
			SecondsRemaining: 82800,
			Session:          session,
		}, nil)

		rec := doJSON(router, http.MethodPost, "/mini-games/session", `{"gameId":"brick-stacker","userId":7}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.SessionResponse](t, rec)
		assert.False(t, resp.CanPlay)
		assert.Equal(t, int64(82800), resp.SecondsRemaining)
		require.NotNil(t, resp.LastPlayed)
		assert.True(t, resp.LastPlayed.Equal(session.LastPlayed))
		assert.Equal(t, int64(120), resp.BestScore)
		assert.Equal(t, "1.50", resp.TotalSCEarned)
	})

	t.Run("degraded answer has no session", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		uc.EXPECT().CheckEligibility(mock.Anything, uint64(7), "car-heist").Return(&usecase.Eligibility{
			CanPlay:       true,
			NextAvailable: now,
			Degraded:      true,
		}, nil)

		rec := doJSON(router, http.MethodPost, "/mini-games/session", `{"gameId":"car-heist","userId":7}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.SessionResponse](t, rec)
		assert.True(t, resp.CanPlay)
		assert.True(t, resp.Degraded)
	})

	t.Run("unknown game", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		uc.EXPECT().CheckEligibility(mock.Anything, uint64(7), "snake").
			Return(nil, fmt.Errorf("%w: snake", errs.ErrGameNotFound))

		rec := doJSON(router, http.MethodPost, "/mini-games/session", `{"gameId":"snake","userId":7}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeGameNotFound, decode[dto.ErrorResponse](t, rec).Code)
	})
}

func TestMiniGameHandler_Leaderboard(t *testing.T) {
	t.Run("top entries with caller rank", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		entries := []entity.LeaderboardEntry{
			{UserID: 2, Username: "bob", Score: 300, SCEarned: 100, Plays: 4, Rank: 1},
			{UserID: 1, Username: "alice", Score: 250, SCEarned: 90, Plays: 2, Rank: 2},
		}
		uc.EXPECT().Leaderboard(mock.Anything, "dog-catcher", entity.PeriodDaily, uint64(1)).Return(&usecase.LeaderboardResult{
			GameID:  "dog-catcher",
			Period:  entity.PeriodDaily,
			Entries: entries,
			User:    &entity.UserRank{LeaderboardEntry: entries[1], TotalPlayers: 4},
		}, nil)

		rec := doJSON(router, http.MethodGet, "/mini-games/leaderboard/dog-catcher?period=daily&userId=1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.LeaderboardResponse](t, rec)
		assert.Equal(t, "daily", resp.Period)
		require.Len(t, resp.Leaderboard, 2)
		assert.Equal(t, "bob", resp.Leaderboard[0].Username)
		assert.Equal(t, "1.00", resp.Leaderboard[0].SCEarned)
		require.NotNil(t, resp.UserRank)
		assert.Equal(t, int64(2), resp.UserRank.Rank)
		assert.Equal(t, int64(4), resp.UserRank.TotalPlayers)
		assert.InDelta(t, 75.0, resp.UserRank.Percentile, 0.001)
	})

	t.Run("period defaults to weekly", func(t *testing.T) {
		router, uc := newMiniGameRouter(t)
		uc.EXPECT().Leaderboard(mock.Anything, "car-heist", entity.PeriodWeekly, uint64(0)).Return(&usecase.LeaderboardResult{
			GameID: "car-heist",
			Period: entity.PeriodWeekly,
		}, nil)

		rec := doJSON(router, http.MethodGet, "/mini-games/leaderboard/car-heist", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.LeaderboardResponse](t, rec)
		assert.NotNil(t, resp.Leaderboard)
		assert.Empty(t, resp.Leaderboard)
		assert.Nil(t, resp.UserRank)
	})

	t.Run("bad query parameters", func(t *testing.T) {
		router, _ := newMiniGameRouter(t)

		rec := doJSON(router, http.MethodGet, "/mini-games/leaderboard/car-heist?period=yearly", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidPeriod, decode[dto.ErrorResponse](t, rec).Code)

		rec = doJSON(router, http.MethodGet, "/mini-games/leaderboard/car-heist?userId=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidUserID, decode[dto.ErrorResponse](t, rec).Code)
	})
}

func TestMiniGameHandler_ListGames(t *testing.T) {
	router, uc := newMiniGameRouter(t)
	uc.EXPECT().ListGames().Return(entity.DefaultGames()[:1])

	rec := doJSON(router, http.MethodGet, "/mini-games", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.GameListResponse](t, rec)
	require.Len(t, resp.Games, 1)
	assert.Equal(t, dto.GameDTO{
		ID:              "dog-catcher",
		Name:            "Dog Catcher",
		CooldownHours:   24,
		DurationSeconds: 60,
		SCRate:          "0.01",
		SCCap:           "1.00",
		GCRate:          "1",
		GCCap:           "500.00",
	}, resp.Games[0])
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.ErrInvalidUserID, http.StatusBadRequest},
		{errs.ErrInvalidDuration, http.StatusBadRequest},
		{errs.ErrUserNotFound, http.StatusNotFound},
		{errs.NewCooldownError(1, "g", now, 5), http.StatusConflict},
		{errs.ErrConcurrentPlay, http.StatusConflict},
		{errs.ErrTransactionConflict, http.StatusConflict},
		{errs.ErrUserLocked, http.StatusConflict},
		{errs.ErrRateLimited, http.StatusTooManyRequests},
		{errs.ErrConstraintViolation, http.StatusUnprocessableEntity},
		{errs.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, handler.StatusCode(tt.err))
		})
	}
}
