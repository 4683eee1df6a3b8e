package tgbind

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/joho/godotenv"

	"github.com/prilive-com/tgbind/internal/resilience"
	"github.com/prilive-com/tgbind/sender"
	"github.com/prilive-com/tgbind/tg"
)

// Bot is a sender.Client that also remembers its own identity.
// Every Bot API method of the client is available on Bot directly.
type Bot struct {
	*sender.Client

	me     atomic.Pointer[tg.User]
	flight resilience.SingleFlight[*tg.User]
}

// New creates a Bot for token with the default configuration.
func New(token string, opts ...sender.Option) (*Bot, error) {
	c, err := sender.New(token, opts...)
	if err != nil {
		return nil, err
	}
	return &Bot{Client: c}, nil
}

// NewFromConfig creates a Bot from cfg.
func NewFromConfig(cfg sender.Config, opts ...sender.Option) (*Bot, error) {
	c, err := sender.NewFromConfig(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Bot{Client: c}, nil
}

// FromEnv creates a Bot from environment variables (see sender.LoadConfig).
// The given dotenv files, or ".env" when none are given, are loaded first.
// Variables already set in the environment win over the files, and missing
// files are skipped.
func FromEnv(envFiles []string, opts ...sender.Option) (*Bot, error) {
	if err := LoadEnv(envFiles...); err != nil {
		return nil, err
	}
	cfg, err := sender.LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(*cfg, opts...)
}

// FromFile creates a Bot from a YAML configuration file (see sender.LoadConfigFile).
func FromFile(path string, opts ...sender.Option) (*Bot, error) {
	cfg, err := sender.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(*cfg, opts...)
}

// LoadEnv loads dotenv files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("tgbind: load %s: %w", f, err)
		}
	}
	return nil
}

// Me returns the bot's own user. The first successful getMe is cached;
// concurrent first calls share one request, which outlives the
// cancellation of the caller that started it.
func (b *Bot) Me(ctx context.Context) (*tg.User, error) {
	if u := b.me.Load(); u != nil {
		return u, nil
	}
	shared := context.WithoutCancel(ctx)
	return b.flight.Do("getMe", func() (*tg.User, error) {
		if u := b.me.Load(); u != nil {
			return u, nil
		}
		u, err := b.GetMe(shared)
		if err != nil {
			return nil, err
		}
		b.me.Store(u)
		return u, nil
	})
}

// Username returns the bot's @username without the leading @.
func (b *Bot) Username(ctx context.Context) (string, error) {
	u, err := b.Me(ctx)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Forget drops the cached identity, for example after SetMyName.
func (b *Bot) Forget() {
	b.me.Store(nil)
}

// Sender returns the underlying client.
func (b *Bot) Sender() *sender.Client {
	return b.Client
}
