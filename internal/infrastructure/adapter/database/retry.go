package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
	}
}

// Retrier reruns an operation while it fails with a retryable database error
type Retrier struct {
	config       RetryConfig
	errorMapper  *ErrorMapper
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRetrier creates a Retrier
func NewRetrier(config RetryConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) *Retrier {
	if config.MaxRetries <= 0 {
		config.MaxRetries = 1
	}
	return &Retrier{
		config:       config,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Do runs operation up to MaxRetries times with exponential backoff between attempts
func (r *Retrier) Do(ctx context.Context, name string, operation func() error) error {
	var err error
	for attempt := 0; attempt < r.config.MaxRetries; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if !r.errorMapper.IsRetryable(err) || attempt == r.config.MaxRetries-1 {
			break
		}

		backoff := r.backoff(attempt)
		r.logger.Warn("Transient database error, retrying operation", map[string]any{
			"operation":   name,
			"attempt":     attempt + 1,
			"max_retries": r.config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-r.timeProvider.After(coreport.Duration(backoff)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.logger.Error("Database operation failed", map[string]any{
		"operation":   name,
		"max_retries": r.config.MaxRetries,
		"error":       err.Error(),
	})
	return err
}

// backoff doubles the base interval per attempt, capped at MaxInterval
func (r *Retrier) backoff(attempt int) time.Duration {
	backoff := r.config.RetryInterval << uint(attempt)
	if backoff <= 0 || backoff > r.config.MaxInterval {
		backoff = r.config.MaxInterval
	}
	return backoff
}
