package testutil

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/internal/resilience"
	"github.com/prilive-com/tgbind/sender"
)

// BreakerNeverTrip returns settings where the breaker never opens, for retry tests.
func BreakerNeverTrip() sender.CircuitBreakerSettings {
	return sender.CircuitBreakerSettings{
		MaxRequests: 100,
		Timeout:     time.Hour,
		ReadyToTrip: func(gobreaker.Counts) bool { return false },
	}
}

// BreakerAggressiveTrip returns settings that open after 2 consecutive failures.
func BreakerAggressiveTrip() sender.CircuitBreakerSettings {
	return sender.CircuitBreakerSettings{
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: resilience.ConsecutiveTrip(2),
	}
}

// QuietLogger discards all log output.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(t *testing.T, opts []sender.Option) *sender.Client {
	t.Helper()
	client, err := sender.New(TestToken, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

// NewTestClient creates a client for api without retries or rate limiting.
func NewTestClient(t *testing.T, api *MockAPI, opts ...sender.Option) *sender.Client {
	t.Helper()
	defaults := []sender.Option{
		sender.WithBaseURL(api.BaseURL()),
		sender.WithLogger(QuietLogger()),
		sender.WithRetries(0),
		sender.WithRateLimit(1000, 1000),
		sender.WithPerChatRateLimit(1000, 1000),
		sender.WithGroupRateLimit(1000, 1000),
		sender.WithCircuitBreakerSettings(BreakerNeverTrip()),
	}
	return newClient(t, append(defaults, opts...))
}

// NewRetryTestClient creates a client with retries recorded by sleeper.
func NewRetryTestClient(t *testing.T, api *MockAPI, sleeper *FakeSleeper, retries int, opts ...sender.Option) *sender.Client {
	t.Helper()
	return NewTestClient(t, api, append([]sender.Option{
		sender.WithRetries(retries),
		sender.WithSleeper(sleeper),
	}, opts...)...)
}

// NewBreakerTestClient creates a client whose breaker trips aggressively.
func NewBreakerTestClient(t *testing.T, api *MockAPI, opts ...sender.Option) *sender.Client {
	t.Helper()
	return NewTestClient(t, api, append([]sender.Option{
		sender.WithCircuitBreakerSettings(BreakerAggressiveTrip()),
	}, opts...)...)
}
