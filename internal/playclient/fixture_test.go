package playclient

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/dto"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// instantClock fires every timer immediately
type instantClock struct{ now time.Time }

func (c instantClock) Now() time.Time { return c.now }
func (c instantClock) Since(t time.Time) core.Duration { return core.Duration(c.now.Sub(t)) }
func (c instantClock) Until(t time.Time) core.Duration { return core.Duration(t.Sub(c.now)) }
func (c instantClock) After(core.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

// stuckClock never fires
type stuckClock struct{ instantClock }

func (stuckClock) After(core.Duration) <-chan time.Time { return make(chan time.Time) }

type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "attempt-" + strconv.Itoa(g.n)
}

type fakeBackend struct {
	mu       sync.Mutex
	session  *dto.SessionResponse
	checkErr error
	result   *dto.RecordResultResponse
	recErr   error
	recorded []dto.RecordResultRequest
}

func (b *fakeBackend) CheckSession(_ context.Context, userID uint64, gameID string) (*dto.SessionResponse, error) {
	if b.checkErr != nil {
		return nil, b.checkErr
	}
	s := *b.session
	s.UserID = userID
	s.GameID = gameID
	return &s, nil
}

func (b *fakeBackend) RecordResult(_ context.Context, req dto.RecordResultRequest) (*dto.RecordResultResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recorded = append(b.recorded, req)
	if b.recErr != nil {
		return nil, b.recErr
	}
	return b.result, nil
}

func (b *fakeBackend) calls() []dto.RecordResultRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]dto.RecordResultRequest(nil), b.recorded...)
}

// scriptedGame returns a fixed score, or blocks until cancelled when block is set
type scriptedGame struct {
	id    string
	score Score
	block bool
}

func (g scriptedGame) ID() string { return g.id }

func (g scriptedGame) Play(ctx context.Context, duration time.Duration) (Score, error) {
	if g.block {
		<-ctx.Done()
		return Score{}, ctx.Err()
	}
	s := g.score
	s.Elapsed = duration
	return s, nil
}
