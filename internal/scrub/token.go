// Package scrub removes bot tokens from errors and strings before they are
// logged or returned.
package scrub

import (
	"strings"

	"github.com/prilive-com/tgbind/tg"
)

const placeholder = "[REDACTED]"

// String replaces every occurrence of token in s.
func String(s string, token tg.SecretToken) string {
	if token.IsEmpty() {
		return s
	}
	return strings.ReplaceAll(s, token.Value(), placeholder)
}

// TokenFromError removes the bot token from error messages.
// http.Client.Do includes the request URL, and with it the token, in its errors.
// The error chain stays intact for errors.Is/As.
func TokenFromError(err error, token tg.SecretToken) error {
	if err == nil || token.IsEmpty() {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, token.Value()) {
		return err
	}
	return &scrubbedError{msg: String(msg, token), err: err}
}

type scrubbedError struct {
	msg string
	err error
}

func (e *scrubbedError) Error() string { return e.msg }
func (e *scrubbedError) Unwrap() error { return e.err }
