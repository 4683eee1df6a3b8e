package resilience_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/internal/resilience"
)

type recordingSleeper struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waits = append(s.waits, d)
	return nil
}

var errTransient = errors.New("transient")

func retryAll(err error) resilience.Decision {
	return resilience.Decision{Retry: errors.Is(err, errTransient)}
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	sleeper := &recordingSleeper{}
	r := resilience.Retrier{
		Config:   resilience.RetryConfig{MaxRetries: 3, BaseWait: 10 * time.Millisecond, MaxWait: time.Second, Multiplier: 2},
		Sleeper:  sleeper,
		Classify: retryAll,
	}

	got, err := resilience.Do(context.Background(), r, func(attempt int) (int, error) {
		if attempt < 3 {
			return 0, errTransient
		}
		return attempt, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, sleeper.waits)
}

func TestDo_ServerWaitOverridesBackoff(t *testing.T) {
	sleeper := &recordingSleeper{}
	r := resilience.Retrier{
		Config:  resilience.RetryConfig{MaxRetries: 1, BaseWait: time.Millisecond},
		Sleeper: sleeper,
		Classify: func(error) resilience.Decision {
			return resilience.Decision{Retry: true, Wait: 4 * time.Second}
		},
	}

	_, err := resilience.Do(context.Background(), r, func(int) (struct{}, error) {
		return struct{}{}, errTransient
	})

	var exhausted *resilience.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 2, exhausted.Attempts)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, []time.Duration{4 * time.Second}, sleeper.waits)
}

func TestDo_PermanentErrorStops(t *testing.T) {
	permanent := errors.New("permanent")
	var calls int
	r := resilience.Retrier{
		Config:   resilience.RetryConfig{MaxRetries: 5},
		Sleeper:  &recordingSleeper{},
		Classify: retryAll,
	}

	_, err := resilience.Do(context.Background(), r, func(int) (int, error) {
		calls++
		return 0, permanent
	})
	assert.Same(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func TestDo_OnRetry(t *testing.T) {
	var attempts []int
	r := resilience.Retrier{
		Config:   resilience.RetryConfig{MaxRetries: 2, BaseWait: time.Millisecond, Multiplier: 2},
		Sleeper:  &recordingSleeper{},
		Classify: retryAll,
		OnRetry:  func(attempt int, _ error, _ time.Duration) { attempts = append(attempts, attempt) },
	}

	_, _ = resilience.Do(context.Background(), r, func(int) (int, error) { return 0, errTransient })
	assert.Equal(t, []int{1, 2}, attempts)
}

func TestDo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := resilience.Retrier{
		Config:   resilience.RetryConfig{MaxRetries: 3},
		Sleeper:  &recordingSleeper{},
		Classify: retryAll,
	}

	_, err := resilience.Do(ctx, r, func(int) (int, error) {
		cancel()
		return 0, errTransient
	})
	assert.ErrorIs(t, err, errTransient)
	var exhausted *resilience.ExhaustedError
	assert.False(t, errors.As(err, &exhausted))
}

func TestBackoff(t *testing.T) {
	cfg := resilience.RetryConfig{BaseWait: time.Second, MaxWait: 5 * time.Second, Multiplier: 2}

	assert.Equal(t, time.Second, resilience.Backoff(cfg, 1))
	assert.Equal(t, 2*time.Second, resilience.Backoff(cfg, 2))
	assert.Equal(t, 4*time.Second, resilience.Backoff(cfg, 3))
	assert.Equal(t, 5*time.Second, resilience.Backoff(cfg, 10))
	assert.Equal(t, time.Second, resilience.Backoff(cfg, 0))

	cfg.Jitter = 0.5
	for range 50 {
		d := resilience.Backoff(cfg, 2)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 3*time.Second)
	}
}

func TestLimiter_KeysAndSweep(t *testing.T) {
	cfg := resilience.DefaultLimiterConfig()
	cfg.GlobalRPS, cfg.GlobalBurst = 1000, 100
	cfg.KeyRPS, cfg.KeyBurst = 1000, 100
	cfg.MaxKeys = 2
	cfg.CleanupInterval = 0
	l := resilience.NewLimiter(cfg)
	defer l.Close()

	ctx := context.Background()
	require.NoError(t, l.Wait(ctx, ""))
	assert.Zero(t, l.Len())

	require.NoError(t, l.Wait(ctx, "1"))
	require.NoError(t, l.Wait(ctx, "-100"))
	require.NoError(t, l.Wait(ctx, "@chan"))
	assert.Equal(t, 2, l.Len(), "oldest key is evicted at capacity")

	assert.Equal(t, 2, l.Sweep(time.Now().Add(time.Minute)))
	assert.Zero(t, l.Len())

	l.Close()
	l.Close()
}

func TestLimiter_WaitHonoursContext(t *testing.T) {
	cfg := resilience.DefaultLimiterConfig()
	cfg.KeyRPS, cfg.KeyBurst = 0.001, 1
	cfg.CleanupInterval = 0
	l := resilience.NewLimiter(cfg)
	defer l.Close()

	require.NoError(t, l.Wait(context.Background(), "42"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx, "42"))
}

func TestBreaker_ConsecutiveTrip(t *testing.T) {
	var transitions []gobreaker.State
	cb := resilience.NewBreaker[int](resilience.BreakerConfig{
		Name:        "test",
		Timeout:     time.Minute,
		ReadyToTrip: resilience.ConsecutiveTrip(2),
		OnStateChange: func(_ string, _, to gobreaker.State) {
			transitions = append(transitions, to)
		},
	})

	for range 2 {
		_, err := cb.Execute(func() (int, error) { return 0, errTransient })
		assert.ErrorIs(t, err, errTransient)
	}
	assert.True(t, resilience.IsOpen(cb))

	_, err := cb.Execute(func() (int, error) { return 1, nil })
	assert.True(t, resilience.IsBreakerError(err))
	assert.Equal(t, []gobreaker.State{gobreaker.StateOpen}, transitions)
}

func TestBreaker_IsSuccessful(t *testing.T) {
	cb := resilience.NewBreaker[int](resilience.BreakerConfig{
		Name:         "test",
		ReadyToTrip:  resilience.ConsecutiveTrip(1),
		IsSuccessful: func(err error) bool { return err == nil || errors.Is(err, errTransient) },
	})

	for range 3 {
		_, _ = cb.Execute(func() (int, error) { return 0, errTransient })
	}
	assert.False(t, resilience.IsOpen(cb))
}

func TestRatioTrip(t *testing.T) {
	trip := resilience.RatioTrip(4, 0.5)
	assert.False(t, trip(gobreaker.Counts{Requests: 3, TotalFailures: 3}))
	assert.False(t, trip(gobreaker.Counts{Requests: 4, TotalFailures: 1}))
	assert.True(t, trip(gobreaker.Counts{Requests: 4, TotalFailures: 2}))
}

func TestIsBreakerError(t *testing.T) {
	assert.True(t, resilience.IsBreakerError(gobreaker.ErrOpenState))
	assert.True(t, resilience.IsBreakerError(gobreaker.ErrTooManyRequests))
	assert.False(t, resilience.IsBreakerError(errTransient))
	assert.False(t, resilience.IsBreakerError(nil))
}

func TestSingleFlight(t *testing.T) {
	var (
		sf      resilience.SingleFlight[string]
		calls   atomic.Int32
		release = make(chan struct{})
		started = make(chan struct{})
		wg      sync.WaitGroup
	)

	results := make([]string, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = sf.Do("me", func() (string, error) {
			calls.Add(1)
			close(started)
			<-release
			return "bot", nil
		})
	}()
	<-started

	for i := 1; i < len(results); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = sf.Do("me", func() (string, error) {
				calls.Add(1)
				return "other", nil
			})
		}()
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "bot", r)
	}
}
