package core

// RateLimiter decides whether another attempt for a key is allowed right now
type RateLimiter interface {
	Allow(key string) bool
}
