package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
func (c *manualClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
func (c *manualClock) Since(t time.Time) core.Duration { return core.Duration(c.Now().Sub(t)) }
func (c *manualClock) Until(t time.Time) core.Duration { return core.Duration(t.Sub(c.Now())) }
func (c *manualClock) After(core.Duration) <-chan time.Time { return nil }

func TestKeyedLimiter_Allow(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	l := NewKeyedLimiter(3, time.Minute, clock)

	assert.True(t, l.Allow("1:dog-catcher"))
	assert.True(t, l.Allow("1:dog-catcher"))
	assert.True(t, l.Allow("1:dog-catcher"))
	assert.False(t, l.Allow("1:dog-catcher"))

	// other keys are independent
	assert.True(t, l.Allow("2:dog-catcher"))
	assert.True(t, l.Allow("1:car-heist"))

	clock.advance(time.Minute)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("1:dog-catcher"))
	}
	assert.False(t, l.Allow("1:dog-catcher"))
}

func TestKeyedLimiter_RefillsOneTokenPerInterval(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	l := NewKeyedLimiter(3, time.Minute, clock)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("k"))
	}
	assert.False(t, l.Allow("k"))

	clock.advance(19 * time.Second)
	assert.False(t, l.Allow("k"))

	clock.advance(time.Second)
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
}

func TestKeyedLimiter_DisabledWhenLimitNotPositive(t *testing.T) {
	clock := &manualClock{now: time.Now()}
	for _, l := range []*KeyedLimiter{
		NewKeyedLimiter(0, time.Minute, clock),
		NewKeyedLimiter(5, 0, clock),
	} {
		for i := 0; i < 100; i++ {
			assert.True(t, l.Allow("k"))
		}
		assert.Equal(t, 0, l.Len())
	}
}

func TestKeyedLimiter_Prune(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	l := NewKeyedLimiter(5, time.Minute, clock)

	l.Allow("old")
	clock.advance(30 * time.Second)
	l.Allow("fresh")
	clock.advance(5 * time.Second)

	assert.Equal(t, 1, l.Prune())
	assert.Equal(t, 1, l.Len())

	// a pruned key starts again with a full bucket
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("old"))
	}
	assert.False(t, l.Allow("old"))
}

func TestKeyedLimiter_Concurrent(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	l := NewKeyedLimiter(10, time.Minute, clock)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("same") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, allowed)
}
