package minigame

import "time"

// Settings tunes the mini-game use cases
type Settings struct {
	// DegradeOpenOnStorageFailure lets players start a game when the eligibility
	// lookup cannot reach storage. Recording always fails closed regardless.
	// Repeated outages therefore allow more plays than the cooldown intends.
	DegradeOpenOnStorageFailure bool

	// LockTimeout bounds how long a user stays locked by one recording
	LockTimeout time.Duration

	// MaxAttempts is how many times a recording is tried on transaction conflicts
	MaxAttempts int

	// RetryBackoff is the base delay between attempts, doubled each time
	RetryBackoff time.Duration

	// LeaderboardSize is the number of ranked entries returned
	LeaderboardSize int
}

// DefaultSettings returns the settings used when configuration leaves them unset
func DefaultSettings() Settings {
	return Settings{
		DegradeOpenOnStorageFailure: true,
		LockTimeout:                 5 * time.Second,
		MaxAttempts:                 3,
		RetryBackoff:                50 * time.Millisecond,
		LeaderboardSize:             10,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.LockTimeout <= 0 {
		s.LockTimeout = d.LockTimeout
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = d.MaxAttempts
	}
	if s.RetryBackoff <= 0 {
		s.RetryBackoff = d.RetryBackoff
	}
	if s.LeaderboardSize <= 0 {
		s.LeaderboardSize = d.LeaderboardSize
	}
	return s
}
