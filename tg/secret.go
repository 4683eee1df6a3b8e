package tg

import "log/slog"

const redacted = "[REDACTED]"

// SecretToken holds a bot token. Every formatting path (fmt, %#v, slog,
// JSON/YAML text marshaling) prints a placeholder instead of the value.
type SecretToken string

// Value returns the token itself. Only the transport should call it.
func (s SecretToken) Value() string { return string(s) }

func (s SecretToken) String() string { return redacted }

func (s SecretToken) GoString() string { return `tg.SecretToken("` + redacted + `")` }

// LogValue implements slog.LogValuer.
func (s SecretToken) LogValue() slog.Value { return slog.StringValue(redacted) }

// MarshalText implements encoding.TextMarshaler.
func (s SecretToken) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// IsEmpty reports whether no token is set.
func (s SecretToken) IsEmpty() bool { return s == "" }

// BotID returns the numeric prefix of the token ("123456" in "123456:ABC").
func (s SecretToken) BotID() string {
	for i := range len(s) {
		if s[i] == ':' {
			return string(s[:i])
		}
	}
	return ""
}
