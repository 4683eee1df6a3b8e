package sender

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/prilive-com/tgbind/internal/httpclient"
	"github.com/prilive-com/tgbind/internal/resilience"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

const (
	maxResponseSize = 10 << 20 // 10MB
)

// Sleeper abstracts time-based waiting for testability.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// ErrorHook is called with every failed call, after retries. Hooks must not block.
type ErrorHook func(ctx context.Context, method string, err error)

// CircuitBreakerSettings configures the circuit breaker behavior.
type CircuitBreakerSettings struct {
	// MaxRequests is the maximum number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state for clearing internal counts.
	// If 0, internal counts are never cleared in closed state.
	Interval time.Duration

	// Timeout is the period of the open state before transitioning to half-open.
	Timeout time.Duration

	// ReadyToTrip is called with a copy of Counts whenever a request fails in closed state.
	// If it returns true, the circuit breaker transitions to open state.
	ReadyToTrip func(counts gobreaker.Counts) bool
}

// DefaultCircuitBreakerSettings returns the default settings: trip at 50%
// failures once 3 requests were seen.
func DefaultCircuitBreakerSettings() CircuitBreakerSettings {
	return CircuitBreakerSettings{
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: resilience.RatioTrip(3, 0.5),
	}
}

// Client is a Bot API client. It is safe for concurrent use and implements
// tg.Caller, so every model it returns can make follow-up calls.
type Client struct {
	config          Config
	httpClient      *http.Client
	logger          *slog.Logger
	limiter         *resilience.Limiter
	breaker         *gobreaker.CircuitBreaker[*apiResponse]
	breakerSettings CircuitBreakerSettings
	sleeper         Sleeper
	errorHook       ErrorHook
	defaults        []payload.Option

	closeOnce sync.Once
}

var (
	_ tg.Caller     = (*Client)(nil)
	_ tg.Downloader = (*Client)(nil)
)

// Option configures the Client.
type Option func(*Client)

// WithLogger sets a custom logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit sets the global rate limit.
func WithRateLimit(globalRPS float64, burst int) Option {
	return func(c *Client) {
		c.config.GlobalRPS = globalRPS
		c.config.GlobalBurst = burst
	}
}

// WithPerChatRateLimit sets the per-chat rate limit.
func WithPerChatRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.config.PerChatRPS = rps
		c.config.PerChatBurst = burst
	}
}

// WithGroupRateLimit sets the rate limit for group chats (negative chat IDs).
func WithGroupRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.config.GroupRPS = rps
		c.config.GroupBurst = burst
	}
}

// WithRetries sets the number of retries after the first attempt.
func WithRetries(n int) Option {
	return func(c *Client) {
		c.config.MaxRetries = n
	}
}

// WithBaseURL sets a custom API base URL, such as a local Bot API server.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.config.BaseURL = url
	}
}

// WithSleeper sets a custom sleeper for retry backoff (for testing).
func WithSleeper(s Sleeper) Option {
	return func(c *Client) {
		c.sleeper = s
	}
}

// WithCircuitBreakerSettings configures the circuit breaker.
func WithCircuitBreakerSettings(settings CircuitBreakerSettings) Option {
	return func(c *Client) {
		c.breakerSettings = settings
	}
}

// WithErrorHook registers a function called with every failed call.
func WithErrorHook(hook ErrorHook) Option {
	return func(c *Client) {
		c.errorHook = hook
	}
}

// WithDefaults sets payload options applied to every call. Values a call
// sets itself take precedence.
//
//	sender.WithDefaults(payload.WithParseMode(tg.ParseModeHTML))
func WithDefaults(opts ...payload.Option) Option {
	return func(c *Client) {
		c.defaults = append(c.defaults, opts...)
	}
}

// New creates a client for token with default configuration.
func New(token string, opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	cfg.Token = tg.SecretToken(token)
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig creates a client from cfg. Options are applied on top of it.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{config: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.httpClient == nil {
		c.httpClient = httpclient.New(httpclient.Settings{
			Timeout:     c.config.RequestTimeout,
			KeepAlive:   c.config.KeepAlive,
			IdleConns:   c.config.MaxIdleConns,
			IdleTimeout: c.config.IdleTimeout,
		})
	}

	if c.sleeper == nil {
		c.sleeper = resilience.RealSleeper{}
	}

	if c.breakerSettings.ReadyToTrip == nil {
		c.breakerSettings = CircuitBreakerSettings{
			MaxRequests: c.config.BreakerMaxRequests,
			Interval:    c.config.BreakerInterval,
			Timeout:     c.config.BreakerTimeout,
			ReadyToTrip: DefaultCircuitBreakerSettings().ReadyToTrip,
		}
	}

	c.breaker = resilience.NewBreaker[*apiResponse](resilience.BreakerConfig{
		Name:         "tgbind-sender",
		MaxRequests:  c.breakerSettings.MaxRequests,
		Interval:     c.breakerSettings.Interval,
		Timeout:      c.breakerSettings.Timeout,
		ReadyToTrip:  c.breakerSettings.ReadyToTrip,
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Info("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	lc := resilience.DefaultLimiterConfig()
	lc.GlobalRPS, lc.GlobalBurst = c.config.GlobalRPS, c.config.GlobalBurst
	lc.KeyRPS, lc.KeyBurst = c.config.PerChatRPS, c.config.PerChatBurst
	lc.GroupRPS, lc.GroupBurst = c.config.GroupRPS, c.config.GroupBurst
	lc.MaxKeys = c.config.MaxChatLimiters
	c.limiter = resilience.NewLimiter(lc)

	return c, nil
}

// Close stops the limiter sweeper and closes idle connections.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.limiter.Close()
		c.httpClient.CloseIdleConnections()
	})
	return nil
}

// ChatLimiterCount returns the number of per-chat rate limiters currently held.
func (c *Client) ChatLimiterCount() int {
	return c.limiter.Len()
}

// BotID returns the bot's user ID as encoded in its token.
func (c *Client) BotID() string {
	return c.config.Token.BotID()
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

func (c *Client) String() string {
	return fmt.Sprintf("sender.Client{bot=%s, base=%s}", c.BotID(), c.config.BaseURL)
}
