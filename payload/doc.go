// Package payload assembles Bot API request bodies from enumerated keys.
//
// Every API method builds a Data value keyed by Key constants, applies
// per-call Options and encodes it into wire parameters:
//
//	data := payload.New(payload.Silent(), payload.WithParseMode("HTML")).
//	    Set(payload.ChatID, chatID).
//	    Set(payload.Text, "<b>hi</b>")
//	enc, err := data.Encode()
//
// Encoding converts keys to snake_case, normalizes values into JSON value
// trees and collects file uploads (see Attacher) so the transport can pick
// a JSON or multipart body.
package payload
