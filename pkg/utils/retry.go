package utils

import (
	"context"
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

func (cfg RetryConfig) withDefaults() RetryConfig {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}
	return cfg
}

// Retry calls fn until it succeeds or attempts run out. Errors matching one
// of stopOn are returned immediately.
func Retry(cfg RetryConfig, fn func() error, stopOn ...error) error {
	return retry(context.Background(), cfg, fn, func(err error) bool {
		return !matchesAny(err, stopOn)
	})
}

// RetryOn retries fn only while it fails with one of the given errors and
// stops early when ctx is done.
func RetryOn(ctx context.Context, cfg RetryConfig, fn func() error, retryable ...error) error {
	return retry(ctx, cfg, fn, func(err error) bool {
		return matchesAny(err, retryable)
	})
}

func retry(ctx context.Context, cfg RetryConfig, fn func() error, shouldRetry func(error) bool) error {
	cfg = cfg.withDefaults()
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		if attempt == cfg.MaxAttempts || !shouldRetry(err) {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return nil
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
