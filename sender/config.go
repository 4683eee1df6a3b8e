package sender

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/tg"
)

// Config holds sender configuration.
type Config struct {
	// Bot token
	Token tg.SecretToken

	// API settings
	BaseURL        string
	RequestTimeout time.Duration
	KeepAlive      time.Duration
	MaxIdleConns   int
	IdleTimeout    time.Duration

	// Rate limiting
	GlobalRPS       float64
	GlobalBurst     int
	PerChatRPS      float64
	PerChatBurst    int
	GroupRPS        float64 // Rate limit for group chats (negative chat IDs). 0 = use PerChatRPS.
	GroupBurst      int     // Burst for group chats. 0 = use PerChatBurst.
	MaxChatLimiters int     // Maximum number of per-chat limiters to prevent memory exhaustion. 0 = 10000.

	// Circuit breaker
	BreakerMaxRequests uint32
	BreakerInterval    time.Duration
	BreakerTimeout     time.Duration

	// Retry settings
	MaxRetries    int
	RetryBaseWait time.Duration
	RetryMaxWait  time.Duration
	RetryFactor   float64

	// Content limits
	MaxTextLength    int
	MaxCaptionLength int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:            "https://api.telegram.org",
		RequestTimeout:     60 * time.Second,
		KeepAlive:          30 * time.Second,
		MaxIdleConns:       100,
		IdleTimeout:        90 * time.Second,
		GlobalRPS:          30,
		GlobalBurst:        10,
		PerChatRPS:         1,
		PerChatBurst:       3,
		GroupRPS:           0.33, // ~20/min, Telegram's group chat limit
		GroupBurst:         2,
		MaxChatLimiters:    10000,
		BreakerMaxRequests: 5,
		BreakerInterval:    60 * time.Second,
		BreakerTimeout:     30 * time.Second,
		MaxRetries:         3,
		RetryBaseWait:      time.Second,
		RetryMaxWait:       30 * time.Second,
		RetryFactor:        2.0,
		MaxTextLength:      validate.MaxTextLength,
		MaxCaptionLength:   validate.MaxCaptionLength,
	}
}

// Validate reports the first invalid setting as a *tg.ConfigError.
func (c *Config) Validate() error {
	if err := validate.Token(c.Token.Value()); err != nil {
		return fmt.Errorf("%w: %w", tg.ErrInvalidToken,
			tg.NewConfigError("TELEGRAM_BOT_TOKEN", "missing or malformed, expected {bot_id}:{secret}"))
	}
	switch {
	case c.BaseURL == "":
		return tg.NewConfigError("TELEGRAM_API_BASE_URL", "cannot be empty")
	case c.RequestTimeout <= 0:
		return tg.NewConfigError("REQUEST_TIMEOUT", "must be positive")
	case c.GlobalRPS <= 0 || c.GlobalBurst <= 0:
		return tg.NewConfigError("RATE_LIMIT_REQUESTS", "global rate and burst must be positive")
	case c.PerChatRPS <= 0 || c.PerChatBurst <= 0:
		return tg.NewConfigError("PER_CHAT_RPS", "per-chat rate and burst must be positive")
	case c.GroupRPS < 0 || c.GroupBurst < 0:
		return tg.NewConfigError("GROUP_RPS", "cannot be negative")
	case c.MaxRetries < 0:
		return tg.NewConfigError("MAX_RETRIES", "must be >= 0")
	case c.RetryFactor < 1:
		return tg.NewConfigError("RETRY_FACTOR", "must be >= 1")
	case c.RetryMaxWait < c.RetryBaseWait:
		return tg.NewConfigError("RETRY_MAX_WAIT", "must be >= RETRY_BASE_WAIT")
	case c.MaxTextLength <= 0 || c.MaxCaptionLength <= 0:
		return tg.NewConfigError("MAX_TEXT_LENGTH", "content limits must be positive")
	}
	return nil
}

// LoadConfig loads configuration from environment variables. Unset
// variables keep their defaults; malformed ones are reported.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	e := envReader{lookup: os.LookupEnv}

	cfg.Token = tg.SecretToken(e.str("TELEGRAM_BOT_TOKEN", ""))
	cfg.BaseURL = e.str("TELEGRAM_API_BASE_URL", cfg.BaseURL)
	cfg.RequestTimeout = e.durationVal("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.GlobalRPS = e.floatVal("RATE_LIMIT_REQUESTS", cfg.GlobalRPS)
	cfg.GlobalBurst = e.intVal("RATE_LIMIT_BURST", cfg.GlobalBurst)
	cfg.PerChatRPS = e.floatVal("PER_CHAT_RPS", cfg.PerChatRPS)
	cfg.PerChatBurst = e.intVal("PER_CHAT_BURST", cfg.PerChatBurst)
	cfg.GroupRPS = e.floatVal("GROUP_RPS", cfg.GroupRPS)
	cfg.GroupBurst = e.intVal("GROUP_BURST", cfg.GroupBurst)
	cfg.BreakerMaxRequests = uint32(e.intVal("BREAKER_MAX_REQUESTS", int(cfg.BreakerMaxRequests)))
	cfg.BreakerInterval = e.durationVal("BREAKER_INTERVAL", cfg.BreakerInterval)
	cfg.BreakerTimeout = e.durationVal("BREAKER_TIMEOUT", cfg.BreakerTimeout)
	cfg.MaxRetries = e.intVal("MAX_RETRIES", cfg.MaxRetries)
	cfg.RetryBaseWait = e.durationVal("RETRY_BASE_WAIT", cfg.RetryBaseWait)
	cfg.RetryMaxWait = e.durationVal("RETRY_MAX_WAIT", cfg.RetryMaxWait)
	cfg.RetryFactor = e.floatVal("RETRY_FACTOR", cfg.RetryFactor)
	cfg.MaxTextLength = e.intVal("MAX_TEXT_LENGTH", cfg.MaxTextLength)
	cfg.MaxCaptionLength = e.intVal("MAX_CAPTION_LENGTH", cfg.MaxCaptionLength)

	if e.err != nil {
		return nil, e.err
	}
	return &cfg, nil
}

type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) str(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func parseEnv[T any](e *envReader, key string, def T, parse func(string) (T, error)) T {
	raw, ok := e.lookup(key)
	if !ok || raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		if e.err == nil {
			e.err = tg.NewConfigError(key, fmt.Sprintf("invalid value %q", raw))
		}
		return def
	}
	return v
}

func (e *envReader) intVal(key string, def int) int {
	return parseEnv(e, key, def, strconv.Atoi)
}

func (e *envReader) floatVal(key string, def float64) float64 {
	return parseEnv(e, key, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func (e *envReader) durationVal(key string, def time.Duration) time.Duration {
	return parseEnv(e, key, def, time.ParseDuration)
}

// fileConfig is the YAML layout read by LoadConfigFile. Durations are
// strings such as "30s"; absent keys keep their defaults.
type fileConfig struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
	HTTP    struct {
		RequestTimeout string `yaml:"request_timeout"`
		KeepAlive      string `yaml:"keep_alive"`
		IdleTimeout    string `yaml:"idle_timeout"`
		MaxIdleConns   *int   `yaml:"max_idle_conns"`
	} `yaml:"http"`
	RateLimit struct {
		GlobalRPS       *float64 `yaml:"global_rps"`
		GlobalBurst     *int     `yaml:"global_burst"`
		PerChatRPS      *float64 `yaml:"per_chat_rps"`
		PerChatBurst    *int     `yaml:"per_chat_burst"`
		GroupRPS        *float64 `yaml:"group_rps"`
		GroupBurst      *int     `yaml:"group_burst"`
		MaxChatLimiters *int     `yaml:"max_chat_limiters"`
	} `yaml:"rate_limit"`
	Breaker struct {
		MaxRequests *uint32 `yaml:"max_requests"`
		Interval    string  `yaml:"interval"`
		Timeout     string  `yaml:"timeout"`
	} `yaml:"breaker"`
	Retry struct {
		MaxRetries *int     `yaml:"max_retries"`
		BaseWait   string   `yaml:"base_wait"`
		MaxWait    string   `yaml:"max_wait"`
		Factor     *float64 `yaml:"factor"`
	} `yaml:"retry"`
	Limits struct {
		MaxTextLength    *int `yaml:"max_text_length"`
		MaxCaptionLength *int `yaml:"max_caption_length"`
	} `yaml:"limits"`
}

// LoadConfigFile reads configuration from a YAML file. An empty token in
// the file falls back to TELEGRAM_BOT_TOKEN.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Token = tg.SecretToken(fc.Token)
	if cfg.Token.IsEmpty() {
		cfg.Token = tg.SecretToken(os.Getenv("TELEGRAM_BOT_TOKEN"))
	}
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"http.request_timeout", fc.HTTP.RequestTimeout, &cfg.RequestTimeout},
		{"http.keep_alive", fc.HTTP.KeepAlive, &cfg.KeepAlive},
		{"http.idle_timeout", fc.HTTP.IdleTimeout, &cfg.IdleTimeout},
		{"breaker.interval", fc.Breaker.Interval, &cfg.BreakerInterval},
		{"breaker.timeout", fc.Breaker.Timeout, &cfg.BreakerTimeout},
		{"retry.base_wait", fc.Retry.BaseWait, &cfg.RetryBaseWait},
		{"retry.max_wait", fc.Retry.MaxWait, &cfg.RetryMaxWait},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return nil, tg.NewConfigError(d.key, fmt.Sprintf("invalid duration %q", d.raw))
		}
		*d.dst = v
	}

	setIf(&cfg.MaxIdleConns, fc.HTTP.MaxIdleConns)
	setIf(&cfg.GlobalRPS, fc.RateLimit.GlobalRPS)
	setIf(&cfg.GlobalBurst, fc.RateLimit.GlobalBurst)
	setIf(&cfg.PerChatRPS, fc.RateLimit.PerChatRPS)
	setIf(&cfg.PerChatBurst, fc.RateLimit.PerChatBurst)
	setIf(&cfg.GroupRPS, fc.RateLimit.GroupRPS)
	setIf(&cfg.GroupBurst, fc.RateLimit.GroupBurst)
	setIf(&cfg.MaxChatLimiters, fc.RateLimit.MaxChatLimiters)
	setIf(&cfg.BreakerMaxRequests, fc.Breaker.MaxRequests)
	setIf(&cfg.MaxRetries, fc.Retry.MaxRetries)
	setIf(&cfg.RetryFactor, fc.Retry.Factor)
	setIf(&cfg.MaxTextLength, fc.Limits.MaxTextLength)
	setIf(&cfg.MaxCaptionLength, fc.Limits.MaxCaptionLength)

	return &cfg, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
