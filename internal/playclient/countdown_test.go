package playclient

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_TicksDownToZero(t *testing.T) {
	var mu sync.Mutex
	var ticks []int64

	cd := StartCountdown(context.Background(), instantClock{now: fixedNow}, 3, func(left int64) {
		mu.Lock()
		ticks = append(ticks, left)
		mu.Unlock()
	})

	select {
	case <-cd.Done():
	case <-time.After(time.Second):
		t.Fatal("countdown did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int64{2, 1, 0}, ticks)
	assert.True(t, cd.Expired())
}

func TestCountdown_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cd := StartCountdown(ctx, stuckClock{}, 30, nil)

	assert.Equal(t, int64(30), cd.Remaining())
	cancel()

	select {
	case <-cd.Done():
	case <-time.After(time.Second):
		t.Fatal("countdown ignored cancellation")
	}
	assert.Equal(t, int64(30), cd.Remaining())
	assert.False(t, cd.Expired())
}

func TestCountdown_StopIsIdempotent(t *testing.T) {
	cd := StartCountdown(context.Background(), stuckClock{}, 10, nil)
	cd.Stop()
	cd.Stop()
	require.NotNil(t, cd.Done())
}

func TestCountdown_NonPositiveStartsExpired(t *testing.T) {
	cd := StartCountdown(context.Background(), stuckClock{}, -5, nil)
	<-cd.Done()
	assert.True(t, cd.Expired())
}
