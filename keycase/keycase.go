// Package keycase converts identifiers between the Bot API wire format
// (snake_case) and client-side field names (camelCase).
//
// Conversions apply to single strings and, recursively, to the keys of
// generic JSON value trees (map[string]any and []any):
//
//	keycase.ToSnake("replyMarkup")           // "reply_markup"
//	keycase.ToCamel("reply_markup")          // "replyMarkup"
//	keycase.CamelKeys(map[string]any{"chat_id": 1}) // map[chatId:1]
package keycase

import (
	"regexp"
	"strings"
)

var (
	upperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	underscoreRun = regexp.MustCompile(`_([a-z0-9])`)
)

// ToSnake converts a camelCase identifier to snake_case.
// Input that is already snake_case is returned unchanged.
func ToSnake(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(upperBoundary.ReplaceAllString(s, "${1}_${2}"))
}

// ToCamel converts a snake_case identifier to camelCase.
// Input that is already camelCase is returned unchanged.
//
// A segment that starts with a digit has no case to carry the boundary, so
// "sha_256_hash" becomes "sha256Hash" and ToSnake gives back "sha256_hash".
func ToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	return underscoreRun.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// SnakeKeys returns a copy of v with every map key converted to snake_case.
// Values other than map[string]any and []any are returned as is.
func SnakeKeys(v any) any {
	return mapKeys(v, ToSnake)
}

// CamelKeys returns a copy of v with every map key converted to camelCase.
// Values other than map[string]any and []any are returned as is.
func CamelKeys(v any) any {
	return mapKeys(v, ToCamel)
}

func mapKeys(v any, fn func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fn(k)] = mapKeys(val, fn)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = mapKeys(val, fn)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = mapKeys(val, fn)
		}
		return out
	default:
		return v
	}
}
