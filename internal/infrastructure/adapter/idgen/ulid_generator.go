package idgen

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// ULIDGenerator issues monotonic ULIDs. Ids generated within the same millisecond still sort in issue order.
type ULIDGenerator struct {
	mu           sync.Mutex
	entropy      *ulid.MonotonicEntropy
	timeProvider core.TimeProvider
}

// NewULIDGenerator creates a generator stamped from the given clock
func NewULIDGenerator(timeProvider core.TimeProvider) *ULIDGenerator {
	return &ULIDGenerator{
		entropy:      ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		timeProvider: timeProvider,
	}
}

// NewID returns a 26 character ULID string
func (g *ULIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.timeProvider.Now()), g.entropy).String()
}
