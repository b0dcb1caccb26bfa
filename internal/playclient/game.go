package playclient

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// Score is the local result of one play
type Score struct {
	Points  int64
	Penalty int64
	Elapsed time.Duration
}

// Game runs the timed local loop of a mini-game. Play returns when duration
// has elapsed or with ctx.Err() when the player leaves early.
type Game interface {
	ID() string
	Play(ctx context.Context, duration time.Duration) (Score, error)
}

// SimulatedGame scores random events each tick, standing in for a real player
type SimulatedGame struct {
	GameID string

	// Tick is the game-time length of one frame
	Tick time.Duration
	// EventChance is the probability of a scored event per tick
	EventChance float64
	// PointsPerEvent is added for every scored event
	PointsPerEvent int64
	// PenaltyChance is the probability that an event is a miss instead
	PenaltyChance float64
	// PenaltyPoints is reported per miss
	PenaltyPoints int64
	// Speedup compresses real waiting time; 1 plays in real time
	Speedup float64

	TimeProvider core.TimeProvider

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedGame creates a simulated game with a deterministic seed
func NewSimulatedGame(gameID string, tp core.TimeProvider, seed int64) *SimulatedGame {
	g := &SimulatedGame{
		GameID:         gameID,
		Tick:           100 * time.Millisecond,
		EventChance:    0.2,
		PointsPerEvent: 1,
		Speedup:        1,
		TimeProvider:   tp,
		rng:            rand.New(rand.NewSource(seed)),
	}
	switch gameID {
	case "car-heist":
		// a stolen car is worth 10, an arrest costs 50
		g.EventChance = 0.05
		g.PointsPerEvent = 10
		g.PenaltyChance = 0.1
		g.PenaltyPoints = 50
	case "brick-stacker":
		g.PenaltyChance = 0.15
		g.PenaltyPoints = 1
	}
	return g
}

// ID returns the catalog id of the game
func (g *SimulatedGame) ID() string {
	return g.GameID
}

// Play runs ticks until duration of game time has passed
func (g *SimulatedGame) Play(ctx context.Context, duration time.Duration) (Score, error) {
	tick := g.Tick
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	speedup := g.Speedup
	if speedup <= 0 {
		speedup = 1
	}
	wait := core.Duration(float64(tick) / speedup)

	var score Score
	for score.Elapsed < duration {
		select {
		case <-ctx.Done():
			return Score{}, ctx.Err()
		case <-g.TimeProvider.After(wait):
		}
		score.Elapsed += tick
		g.step(&score)
	}
	if score.Elapsed > duration {
		score.Elapsed = duration
	}
	return score, nil
}

func (g *SimulatedGame) step(score *Score) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rng.Float64() >= g.EventChance {
		return
	}
	if g.PenaltyChance > 0 && g.rng.Float64() < g.PenaltyChance {
		score.Penalty += g.PenaltyPoints
		return
	}
	score.Points += g.PointsPerEvent
}
