// Package sentryreport sends failed Bot API calls to Sentry.
//
//	err := sentry.Init(sentry.ClientOptions{Dsn: dsn})
//	...
//	client, err := sender.New(token, sender.WithErrorHook(sentryreport.Hook(nil)))
package sentryreport

import (
	"context"
	"errors"
	"strconv"

	"github.com/getsentry/sentry-go"

	"github.com/prilive-com/tgbind/sender"
	"github.com/prilive-com/tgbind/tg"
)

// DefaultIgnored are errors that describe expected user or chat state rather
// than a fault in the bot.
var DefaultIgnored = []error{
	tg.ErrMessageNotModified,
	tg.ErrBotBlocked,
	tg.ErrBotKicked,
	tg.ErrUserDeactivated,
	tg.ErrCallbackExpired,
	context.Canceled,
}

type options struct {
	ignored []error
	level   sentry.Level
}

// Option configures Hook.
type Option func(*options)

// Ignore replaces the list of errors that are not reported.
func Ignore(errs ...error) Option {
	return func(o *options) { o.ignored = errs }
}

// WithLevel sets the event level. The default is sentry.LevelError.
func WithLevel(level sentry.Level) Option {
	return func(o *options) { o.level = level }
}

// Hook returns a sender.ErrorHook that captures failed calls on hub. A hub
// stored in the call's context takes precedence; a nil hub falls back to
// sentry.CurrentHub().
//
// Events carry the method and, for API errors, the error code as tags, so
// identical failures of one method group together.
func Hook(hub *sentry.Hub, opts ...Option) sender.ErrorHook {
	o := options{ignored: DefaultIgnored, level: sentry.LevelError}
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, method string, err error) {
		if err == nil || o.skip(err) {
			return
		}

		h := sentry.GetHubFromContext(ctx)
		if h == nil {
			h = hub
		}
		if h == nil {
			h = sentry.CurrentHub()
		}

		h.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(o.level)
			scope.SetTag("telegram.method", method)
			fingerprint := []string{"telegram", method}

			var apiErr *tg.APIError
			if errors.As(err, &apiErr) {
				code := strconv.Itoa(apiErr.Code)
				scope.SetTag("telegram.error_code", code)
				scope.SetContext("telegram", sentry.Context{
					"method":      apiErr.Method,
					"code":        apiErr.Code,
					"description": apiErr.Description,
					"retry_after": apiErr.RetryAfter.String(),
				})
				fingerprint = append(fingerprint, code)
			}
			if errors.Is(err, tg.ErrCircuitOpen) {
				scope.SetTag("telegram.circuit", "open")
			}
			scope.SetFingerprint(fingerprint)

			h.CaptureException(err)
		})
	}
}

func (o options) skip(err error) bool {
	for _, ignored := range o.ignored {
		if errors.Is(err, ignored) {
			return true
		}
	}
	return false
}
