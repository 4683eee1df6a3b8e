package testutil

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Envelope is the Bot API response format.
type Envelope struct {
	OK          bool        `json:"ok"`
	Result      any         `json:"result,omitempty"`
	ErrorCode   int         `json:"error_code,omitempty"`
	Description string      `json:"description,omitempty"`
	Parameters  *Parameters `json:"parameters,omitempty"`
}

// Parameters contains optional error parameters.
type Parameters struct {
	RetryAfter      int   `json:"retry_after,omitempty"`
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
}

// ReplyOK writes {"ok":true,"result":result}.
func ReplyOK(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Envelope{OK: true, Result: result})
}

// ReplyError writes an {"ok":false} envelope with the matching HTTP status.
func ReplyError(w http.ResponseWriter, code int, description string, params *Parameters) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Envelope{
		ErrorCode:   code,
		Description: description,
		Parameters:  params,
	})
}

// ReplyRateLimit writes a 429 with retry_after in both the body and the header.
func ReplyRateLimit(w http.ResponseWriter, retryAfter int) {
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	ReplyError(w, http.StatusTooManyRequests, "Too Many Requests: retry after "+strconv.Itoa(retryAfter),
		&Parameters{RetryAfter: retryAfter})
}

// ReplyRateLimitHeaderOnly writes a 429 with retry_after only in the Retry-After header.
func ReplyRateLimitHeaderOnly(w http.ResponseWriter, retryAfter int) {
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	ReplyError(w, http.StatusTooManyRequests, "Too Many Requests: retry after "+strconv.Itoa(retryAfter), nil)
}

// ReplyServerError writes a 5xx envelope.
func ReplyServerError(w http.ResponseWriter, code int, description string) {
	ReplyError(w, code, description, nil)
}

// ReplyBadRequest writes a 400 envelope.
func ReplyBadRequest(w http.ResponseWriter, description string) {
	ReplyError(w, http.StatusBadRequest, "Bad Request: "+description, nil)
}

// ReplyForbidden writes a 403 envelope.
func ReplyForbidden(w http.ResponseWriter, description string) {
	ReplyError(w, http.StatusForbidden, "Forbidden: "+description, nil)
}

// ReplyHTML writes a non-JSON error page, as returned by proxies.
func ReplyHTML(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	_, _ = w.Write([]byte("<html><body>" + http.StatusText(status) + "</body></html>"))
}

// MessageJSON returns a message result in TestChat.
func MessageJSON(messageID int, text string) map[string]any {
	return map[string]any{
		"message_id": messageID,
		"date":       1234567890,
		"chat":       map[string]any{"id": TestChatID, "type": "private", "first_name": "Test"},
		"from":       map[string]any{"id": TestBotID, "is_bot": true, "first_name": "Test Bot"},
		"text":       text,
	}
}

// ReplyMessage writes a message result.
func ReplyMessage(w http.ResponseWriter, messageID int) {
	ReplyOK(w, MessageJSON(messageID, "Test message"))
}

// ReplyMessageID writes a MessageId result, as returned by copyMessage.
func ReplyMessageID(w http.ResponseWriter, messageID int) {
	ReplyOK(w, map[string]any{"message_id": messageID})
}

// ReplyUpdates writes a getUpdates result.
func ReplyUpdates(w http.ResponseWriter, updates ...map[string]any) {
	if updates == nil {
		updates = []map[string]any{}
	}
	ReplyOK(w, updates)
}

// ReplyUser writes a getMe result.
func ReplyUser(w http.ResponseWriter) {
	ReplyOK(w, map[string]any{
		"id":         TestBotID,
		"is_bot":     true,
		"first_name": "Test Bot",
		"username":   TestBotUsername,
	})
}

// ReplyFile writes a getFile result.
func ReplyFile(w http.ResponseWriter, fileID, path string) {
	ReplyOK(w, map[string]any{
		"file_id":        fileID,
		"file_unique_id": "u_" + fileID,
		"file_path":      path,
	})
}
