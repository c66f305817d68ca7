package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// connectRetryConfig derives the startup retry policy from the database config
func connectRetryConfig(c *Config) RetryConfig {
	attempts := c.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	interval := c.RetryDelay
	if interval <= 0 {
		interval = time.Second
	}
	return RetryConfig{
		MaxAttempts:   attempts,
		RetryInterval: interval,
		MaxInterval:   8 * interval,
		JitterFactor:  0.2,
	}
}

// Retry runs operation until it succeeds, fails with an error retryable rejects,
// runs out of attempts, or ctx ends. A nil retryable retries transient errors only.
func Retry(
	ctx context.Context,
	config RetryConfig,
	logger coreport.Logger,
	retryable func(error) bool,
	operation func(ctx context.Context) error,
) error {
	if retryable == nil {
		retryable = repository.NewErrorClassifier().IsTransientError
	}

	var err error
	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err = operation(ctx); err == nil {
			return nil
		}
		if !retryable(err) || attempt == config.MaxAttempts-1 {
			break
		}

		backoff := backoffWithJitter(attempt, config)
		logger.Warn("Database operation failed, retrying", map[string]any{
			"attempt":      attempt + 1,
			"max_attempts": config.MaxAttempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	return err
}

// backoffWithJitter computes interval*2^attempt capped at MaxInterval, plus jitter
func backoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval << uint(attempt)
	if backoff > config.MaxInterval || backoff <= 0 {
		backoff = config.MaxInterval
	}
	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}
	return backoff
}
