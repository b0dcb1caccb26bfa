package idgen

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

type frozenClock struct{ now time.Time }

func (c frozenClock) Now() time.Time { return c.now }
func (c frozenClock) Since(t time.Time) core.Duration { return core.Duration(c.now.Sub(t)) }
func (c frozenClock) Until(t time.Time) core.Duration { return core.Duration(t.Sub(c.now)) }
func (c frozenClock) After(core.Duration) <-chan time.Time { return nil }

func TestULIDGenerator_MonotonicWithinMillisecond(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := NewULIDGenerator(frozenClock{now: now})

	prev := ""
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		require.Len(t, id, 26)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		if prev != "" {
			assert.Greater(t, id, prev)
		}
		prev = id
	}

	parsed, err := ulid.Parse(prev)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())
}
