package sender_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/internal/testutil"
	"github.com/prilive-com/tgbind/sender"
	"github.com/prilive-com/tgbind/tg"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := sender.DefaultConfig()
	cfg.Token = testutil.TestToken
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sender.Config)
		key    string
	}{
		{"empty base url", func(c *sender.Config) { c.BaseURL = "" }, "TELEGRAM_API_BASE_URL"},
		{"zero timeout", func(c *sender.Config) { c.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"negative retries", func(c *sender.Config) { c.MaxRetries = -1 }, "MAX_RETRIES"},
		{"factor below one", func(c *sender.Config) { c.RetryFactor = 0.5 }, "RETRY_FACTOR"},
		{"max below base", func(c *sender.Config) { c.RetryMaxWait = time.Millisecond }, "RETRY_MAX_WAIT"},
		{"zero global burst", func(c *sender.Config) { c.GlobalBurst = 0 }, "RATE_LIMIT_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sender.DefaultConfig()
			cfg.Token = testutil.TestToken
			tt.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *tg.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Key)
			assert.ErrorIs(t, err, tg.ErrInvalidConfig)
		})
	}
}

func TestConfig_ValidateToken(t *testing.T) {
	for _, token := range []string{"", "no-colon", ":secret", "123:"} {
		cfg := sender.DefaultConfig()
		cfg.Token = tg.SecretToken(token)
		assert.ErrorIs(t, cfg.Validate(), tg.ErrInvalidToken, token)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testutil.TestToken)
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("PER_CHAT_RPS", "0.5")
	t.Setenv("BREAKER_TIMEOUT", "45s")

	cfg, err := sender.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, testutil.TestToken, cfg.Token.Value())
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.InDelta(t, 0.5, cfg.PerChatRPS, 1e-9)
	assert.Equal(t, 45*time.Second, cfg.BreakerTimeout)
	assert.Equal(t, sender.DefaultConfig().BaseURL, cfg.BaseURL)
}

func TestLoadConfig_MalformedEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testutil.TestToken)
	t.Setenv("MAX_RETRIES", "many")

	_, err := sender.LoadConfig()
	var cfgErr *tg.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "MAX_RETRIES", cfgErr.Key)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
token: "`+testutil.TestToken+`"
base_url: http://localhost:8081
rate_limit:
  global_rps: 10
  per_chat_burst: 1
breaker:
  timeout: 10s
retry:
  max_retries: 0
`), 0o600))

	cfg, err := sender.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, testutil.TestToken, cfg.Token.Value())
	assert.Equal(t, "http://localhost:8081", cfg.BaseURL)
	assert.InDelta(t, 10.0, cfg.GlobalRPS, 1e-9)
	assert.Equal(t, 1, cfg.PerChatBurst)
	assert.Equal(t, 10*time.Second, cfg.BreakerTimeout)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, sender.DefaultConfig().RetryMaxWait, cfg.RetryMaxWait)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFile_TokenFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testutil.TestToken)
	path := filepath.Join(t.TempDir(), "bot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retry:\n  base_wait: 2s\n"), 0o600))

	cfg, err := sender.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, testutil.TestToken, cfg.Token.Value())
	assert.Equal(t, 2*time.Second, cfg.RetryBaseWait)
}

func TestLoadConfigFile_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("breaker:\n  interval: soon\n"), 0o600))

	_, err := sender.LoadConfigFile(path)
	var cfgErr *tg.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "breaker.interval", cfgErr.Key)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := sender.LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_InvalidToken(t *testing.T) {
	_, err := sender.New("bad")
	assert.ErrorIs(t, err, tg.ErrInvalidToken)
}
