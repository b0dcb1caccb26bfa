package entity

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

// GameConfig is the static definition of one mini-game
type GameConfig struct {
	ID              string
	DisplayName     string
	CooldownHours   int
	NominalDuration time.Duration
	// DurationGrace is the slack allowed on top of NominalDuration for network and render latency
	DurationGrace time.Duration

	SCRate decimal.Decimal // SC per unit of score
	SCCap  int64           // minor units
	GCRate decimal.Decimal // GC per unit of score
	GCCap  int64           // minor units

	// MaxScorePerSecond bounds how fast a legitimate player can score
	MaxScorePerSecond int64
}

// Cooldown returns the cooldown window as a duration
func (g GameConfig) Cooldown() time.Duration {
	return time.Duration(g.CooldownHours) * time.Hour
}

// MaxDuration is the longest play duration accepted for a result
func (g GameConfig) MaxDuration() time.Duration {
	return g.NominalDuration + g.DurationGrace
}

// MaxScoreFor returns the highest plausible score for a play of the given length
func (g GameConfig) MaxScoreFor(played time.Duration) int64 {
	if played > g.MaxDuration() {
		played = g.MaxDuration()
	}
	seconds := int64((played + time.Second - 1) / time.Second)
	return seconds * g.MaxScorePerSecond
}

// Validate checks that a game definition is usable
func (g GameConfig) Validate() error {
	switch {
	case g.ID == "":
		return fmt.Errorf("%w: empty game id", errs.ErrInvalidGameConfig)
	case g.CooldownHours <= 0:
		return fmt.Errorf("%w: %s cooldown must be positive", errs.ErrInvalidGameConfig, g.ID)
	case g.NominalDuration <= 0:
		return fmt.Errorf("%w: %s duration must be positive", errs.ErrInvalidGameConfig, g.ID)
	case g.SCRate.IsNegative() || g.GCRate.IsNegative():
		return fmt.Errorf("%w: %s rates cannot be negative", errs.ErrInvalidGameConfig, g.ID)
	case g.SCCap < 0 || g.GCCap < 0:
		return fmt.Errorf("%w: %s caps cannot be negative", errs.ErrInvalidGameConfig, g.ID)
	case g.MaxScorePerSecond <= 0:
		return fmt.Errorf("%w: %s score envelope must be positive", errs.ErrInvalidGameConfig, g.ID)
	}
	return nil
}

// DefaultGames returns the built-in mini-game catalog
func DefaultGames() []GameConfig {
	return []GameConfig{
		{
			ID:                "dog-catcher",
			DisplayName:       "Dog Catcher",
			CooldownHours:     24,
			NominalDuration:   60 * time.Second,
			DurationGrace:     10 * time.Second,
			SCRate:            decimal.RequireFromString("0.01"),
			SCCap:             100,
			GCRate:            decimal.RequireFromString("1.00"),
			GCCap:             50000,
			MaxScorePerSecond: 5,
		},
		{
			ID:                "brick-stacker",
			DisplayName:       "Brick Stacker",
			CooldownHours:     24,
			NominalDuration:   60 * time.Second,
			DurationGrace:     10 * time.Second,
			SCRate:            decimal.RequireFromString("0.01"),
			SCCap:             50,
			GCRate:            decimal.RequireFromString("1.00"),
			GCCap:             25000,
			MaxScorePerSecond: 3,
		},
		{
			// Car Heist scores 10 points per stolen car; an arrest is reported as 50 penalty points.
			ID:                "car-heist",
			DisplayName:       "Car Heist",
			CooldownHours:     24,
			NominalDuration:   60 * time.Second,
			DurationGrace:     10 * time.Second,
			SCRate:            decimal.RequireFromString("0.01"),
			SCCap:             25,
			GCRate:            decimal.RequireFromString("0.50"),
			GCCap:             10000,
			MaxScorePerSecond: 20,
		},
	}
}

// Catalog is the immutable set of configured mini-games
type Catalog struct {
	games map[string]GameConfig
}

// NewCatalog validates and indexes game definitions. Duplicate ids are rejected.
func NewCatalog(games []GameConfig) (*Catalog, error) {
	c := &Catalog{games: make(map[string]GameConfig, len(games))}
	for _, g := range games {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.games[g.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate game id %s", errs.ErrInvalidGameConfig, g.ID)
		}
		c.games[g.ID] = g
	}
	return c, nil
}

// Get looks up a game by id
func (c *Catalog) Get(id string) (GameConfig, error) {
	g, ok := c.games[id]
	if !ok {
		return GameConfig{}, fmt.Errorf("%w: %s", errs.ErrGameNotFound, id)
	}
	return g, nil
}

// List returns all games ordered by id
func (c *Catalog) List() []GameConfig {
	out := make([]GameConfig, 0, len(c.games))
	for _, g := range c.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
