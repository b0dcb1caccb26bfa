package playclient

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// Countdown decrements a server-provided number of seconds once per second
// without asking the server again. It stops when it reaches zero, when Stop
// is called or when its context ends.
type Countdown struct {
	remaining atomic.Int64
	cancel    context.CancelFunc
	done      chan struct{}
	stopOnce  sync.Once
}

// StartCountdown begins counting down from seconds. onTick receives every new
// value including the final zero; it runs on the countdown goroutine.
func StartCountdown(ctx context.Context, tp core.TimeProvider, seconds int64, onTick func(remaining int64)) *Countdown {
	ctx, cancel := context.WithCancel(ctx)
	c := &Countdown{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	if seconds < 0 {
		seconds = 0
	}
	c.remaining.Store(seconds)

	go c.run(ctx, tp, onTick)
	return c
}

func (c *Countdown) run(ctx context.Context, tp core.TimeProvider, onTick func(int64)) {
	defer close(c.done)
	defer c.cancel()

	for c.remaining.Load() > 0 {
		select {
		case <-ctx.Done():
			return
		case <-tp.After(core.Duration(time.Second)):
		}
		left := c.remaining.Add(-1)
		if onTick != nil {
			onTick(left)
		}
	}
}

// Remaining returns the seconds left
func (c *Countdown) Remaining() int64 {
	return c.remaining.Load()
}

// Expired reports whether the countdown reached zero
func (c *Countdown) Expired() bool {
	return c.remaining.Load() == 0
}

// Stop cancels the countdown and waits for its goroutine to exit
func (c *Countdown) Stop() {
	c.stopOnce.Do(c.cancel)
	<-c.done
}

// Done is closed once the countdown has finished or been stopped
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}
