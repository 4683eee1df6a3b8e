package resilience

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"time"

	"golang.org/x/sync/singleflight"
)

// Sleeper abstracts time-based waiting for deterministic testing.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper waits on the wall clock.
type RealSleeper struct{}

// Sleep waits for d or until ctx is cancelled.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxRetries int           // Retries after the first attempt (0 = no retries)
	BaseWait   time.Duration // Initial wait duration
	MaxWait    time.Duration // Maximum wait duration
	Multiplier float64       // Backoff multiplier (e.g., 2.0 for exponential)
	Jitter     float64       // Jitter factor (0.0-1.0)
}

// DefaultRetryConfig returns sensible defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseWait:   time.Second,
		MaxWait:    30 * time.Second,
		Multiplier: 2.0,
		Jitter:     0.2,
	}
}

// Decision is what a Classifier tells Retry to do with an error.
type Decision struct {
	Retry bool
	// Wait overrides the computed backoff when positive (server-provided retry_after).
	Wait time.Duration
}

// Classifier inspects a failed attempt.
type Classifier func(err error) Decision

// ExhaustedError is returned when every attempt failed with a retryable error.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

// Retrier runs a function until it succeeds, fails permanently or runs out
// of attempts.
type Retrier struct {
	Config   RetryConfig
	Sleeper  Sleeper
	Classify Classifier
	// OnRetry is called before each wait.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// Do calls fn with the 1-based attempt number. Permanent errors are returned
// as is; exhausted retries are wrapped in *ExhaustedError.
func Do[T any](ctx context.Context, r Retrier, fn func(attempt int) (T, error)) (T, error) {
	var zero T
	sleeper := r.Sleeper
	if sleeper == nil {
		sleeper = RealSleeper{}
	}

	var lastErr error
	for attempt := 1; attempt <= r.Config.MaxRetries+1; attempt++ {
		result, err := fn(attempt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, err
		}
		d := r.Classify(err)
		if !d.Retry {
			return zero, err
		}
		if attempt > r.Config.MaxRetries {
			break
		}

		wait := d.Wait
		if wait <= 0 {
			wait = Backoff(r.Config, attempt)
		}
		if r.OnRetry != nil {
			r.OnRetry(attempt, err, wait)
		}
		if err := sleeper.Sleep(ctx, wait); err != nil {
			return zero, err
		}
	}

	return zero, &ExhaustedError{Attempts: r.Config.MaxRetries + 1, Err: lastErr}
}

// Backoff returns the wait before retry number attempt (1-based):
// BaseWait * Multiplier^(attempt-1), capped at MaxWait, with crypto jitter.
func Backoff(cfg RetryConfig, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	mult := cfg.Multiplier
	if mult <= 0 {
		mult = 2
	}
	wait := float64(cfg.BaseWait) * math.Pow(mult, float64(attempt-1))
	if cfg.MaxWait > 0 && wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	if cfg.Jitter > 0 {
		jitterRange := int64(wait * cfg.Jitter)
		if jitterRange > 0 {
			n, err := rand.Int(rand.Reader, big.NewInt(jitterRange*2))
			if err == nil {
				wait += float64(n.Int64() - jitterRange)
			}
		}
	}

	return time.Duration(wait)
}

// SingleFlight is a typed singleflight.Group: concurrent calls with the same
// key share one execution of fn.
type SingleFlight[T any] struct {
	g singleflight.Group
}

// Do executes fn once for concurrent calls with the same key.
func (sf *SingleFlight[T]) Do(key string, fn func() (T, error)) (T, error) {
	v, err, _ := sf.g.Do(key, func() (any, error) { return fn() })
	res, _ := v.(T)
	return res, err
}
