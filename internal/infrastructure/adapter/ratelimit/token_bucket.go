package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// KeyedLimiter keeps one token bucket per key. A bucket holds limit tokens
// and refills at limit per window, so a key may burst limit attempts and then
// sustains limit attempts per window.
// State is per process; a multi-instance deployment limits per instance.
type KeyedLimiter struct {
	mu           sync.Mutex
	buckets      map[string]*rate.Limiter
	limit        int
	every        rate.Limit
	timeProvider core.TimeProvider
}

// NewKeyedLimiter creates a limiter. A non-positive limit or window disables limiting.
func NewKeyedLimiter(limit int, window time.Duration, timeProvider core.TimeProvider) *KeyedLimiter {
	l := &KeyedLimiter{
		buckets:      make(map[string]*rate.Limiter),
		limit:        limit,
		timeProvider: timeProvider,
	}
	if limit > 0 && window > 0 {
		l.every = rate.Every(window / time.Duration(limit))
	}
	return l
}

// Allow takes a token for key and reports whether one was available
func (l *KeyedLimiter) Allow(key string) bool {
	if l.every == 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(l.every, l.limit)
		l.buckets[key] = bucket
	}
	return bucket.AllowN(l.timeProvider.Now(), 1)
}

// Prune drops keys whose bucket has refilled completely and returns how many were removed.
// A full bucket behaves exactly like a fresh one.
func (l *KeyedLimiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider.Now()
	removed := 0
	for key, bucket := range l.buckets {
		if bucket.TokensAt(now) >= float64(l.limit) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
