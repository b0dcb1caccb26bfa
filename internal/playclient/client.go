package playclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/dto"
)

const (
	defaultTimeout   = 10 * time.Second
	maxErrorBodySize = 64 << 10
)

// APIError is a non-2xx answer from the server
type APIError struct {
	Status           int
	Code             int
	Message          string
	NextAvailable    *time.Time
	SecondsRemaining int64
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (code %d): %s", e.Status, e.Code, e.Message)
}

// IsCooldown reports whether the server rejected the play because of an active cooldown
func (e *APIError) IsCooldown() bool {
	return e.NextAvailable != nil
}

// Retryable reports whether repeating the same request may succeed
func (e *APIError) Retryable() bool {
	return e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}

// APIClient is a typed client for the mini-game REST API
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	requestID  func() string
}

// Option configures an APIClient
type Option func(*APIClient)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(a *APIClient) { a.httpClient = c }
}

// WithRequestIDs sets X-Request-ID on every request from gen
func WithRequestIDs(gen func() string) Option {
	return func(a *APIClient) { a.requestID = gen }
}

// NewAPIClient creates a client for the server at baseURL
func NewAPIClient(baseURL string, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckSession asks whether userID may start gameID now
func (c *APIClient) CheckSession(ctx context.Context, userID uint64, gameID string) (*dto.SessionResponse, error) {
	var out dto.SessionResponse
	err := c.do(ctx, http.MethodPost, "/mini-games/session", dto.SessionRequest{GameID: gameID, UserID: userID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordResult submits a finished play
func (c *APIClient) RecordResult(ctx context.Context, req dto.RecordResultRequest) (*dto.RecordResultResponse, error) {
	var out dto.RecordResultResponse
	if err := c.do(ctx, http.MethodPost, "/mini-games/record-result", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard fetches the ranking of a game; userID 0 omits the caller's rank
func (c *APIClient) Leaderboard(ctx context.Context, gameID, period string, userID uint64) (*dto.LeaderboardResponse, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	if userID != 0 {
		q.Set("userId", strconv.FormatUint(userID, 10))
	}
	path := "/mini-games/leaderboard/" + url.PathEscape(gameID)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out dto.LeaderboardResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Games lists the catalog
func (c *APIClient) Games(ctx context.Context) ([]dto.GameDTO, error) {
	var out dto.GameListResponse
	if err := c.do(ctx, http.MethodGet, "/mini-games", nil, &out); err != nil {
		return nil, err
	}
	return out.Games, nil
}

// Balance fetches both balances of a user
func (c *APIClient) Balance(ctx context.Context, userID uint64) (*dto.BalanceResponse, error) {
	var out dto.BalanceResponse
	path := fmt.Sprintf("/users/%d/balance", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.requestID != nil {
		req.Header.Set("X-Request-ID", c.requestID())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body dto.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&body); err == nil {
		apiErr.Code = body.Code
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.NextAvailable = body.NextAvailable
		if body.SecondsRemaining != nil {
			apiErr.SecondsRemaining = *body.SecondsRemaining
		}
	}
	return apiErr
}
