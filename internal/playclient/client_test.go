package playclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/dto"
)

func TestAPIClient_RecordResult(t *testing.T) {
	var got dto.RecordResultRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mini-games/record-result", r.URL.Path)
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.RecordResultResponse{
			Success:    true,
			ResultID:   "01HQ",
			Reward:     dto.CurrencyAmounts{SC: "0.50", GC: "50.00"},
			NewBalance: dto.CurrencyAmounts{SC: "10.50", GC: "1050.00"},
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL+"/", WithRequestIDs(func() string { return "req-1" }))
	score := int64(50)
	resp, err := client.RecordResult(context.Background(), dto.RecordResultRequest{
		GameID:   "dog-catcher",
		UserID:   3,
		Score:    &score,
		Duration: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, "01HQ", resp.ResultID)
	assert.Equal(t, "10.50", resp.NewBalance.SC)
	assert.Equal(t, uint64(3), got.UserID)
	assert.Equal(t, int64(50), *got.Score)
}

func TestAPIClient_DecodesCooldownError(t *testing.T) {
	next := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remaining := int64(3600)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
			Code:             4090,
			Message:          "Mini-game is on cooldown",
			NextAvailable:    &next,
			SecondsRemaining: &remaining,
		})
	}))
	defer srv.Close()

	score := int64(1)
	_, err := NewAPIClient(srv.URL).RecordResult(context.Background(), dto.RecordResultRequest{Score: &score})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, 4090, apiErr.Code)
	assert.True(t, apiErr.IsCooldown())
	assert.False(t, apiErr.Retryable())
	assert.Equal(t, int64(3600), apiErr.SecondsRemaining)
	assert.True(t, apiErr.NextAvailable.Equal(next))
}

func TestAPIClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewAPIClient(srv.URL).Balance(context.Background(), 1)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.True(t, apiErr.Retryable())
}

func TestAPIClient_LeaderboardQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mini-games/leaderboard/car-heist", r.URL.Path)
		assert.Equal(t, "monthly", r.URL.Query().Get("period"))
		assert.Equal(t, "9", r.URL.Query().Get("userId"))
		_ = json.NewEncoder(w).Encode(dto.LeaderboardResponse{
			GameID:      "car-heist",
			Period:      "monthly",
			Leaderboard: []dto.LeaderboardEntryDTO{{Rank: 1, UserID: 9, Score: 40}},
		})
	}))
	defer srv.Close()

	board, err := NewAPIClient(srv.URL).Leaderboard(context.Background(), "car-heist", "monthly", 9)

	require.NoError(t, err)
	require.Len(t, board.Leaderboard, 1)
	assert.Equal(t, uint64(9), board.Leaderboard[0].UserID)
}
