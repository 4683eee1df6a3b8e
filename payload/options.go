package payload

// Option sets optional keys on a payload.
type Option func(Data)

// With sets an arbitrary key.
func With(k Key, v any) Option {
	return func(d Data) { d.Set(k, v) }
}

// Default sets k only if the method (or an earlier option) has not set it.
func Default(k Key, v any) Option {
	return func(d Data) { d.SetDefault(k, v) }
}

// Silent delivers the message without a notification sound.
func Silent() Option { return With(DisableNotification, true) }

// Protected protects the message content from forwarding and saving.
func Protected() Option { return With(ProtectContent, true) }

// WithParseMode sets the text/caption parse mode. Accepts tg.ParseMode or a string.
func WithParseMode(mode any) Option { return With(ParseMode, mode) }

// WithReplyTo makes the message a reply to messageID in the same chat.
func WithReplyTo(messageID int) Option {
	return With(ReplyParameters, map[string]any{"messageId": messageID})
}

// WithMarkup attaches a reply markup (inline keyboard, reply keyboard, ...).
func WithMarkup(markup any) Option { return With(ReplyMarkup, markup) }

// WithThread targets a forum topic.
func WithThread(threadID int) Option { return With(MessageThreadID, threadID) }

// WithBusiness sends on behalf of a business connection.
func WithBusiness(connectionID string) Option { return With(BusinessConnectionID, connectionID) }

// WithEffect adds a message effect (private chats only).
func WithEffect(effectID string) Option { return With(MessageEffectID, effectID) }

// WithoutPreview disables link previews for the message.
func WithoutPreview() Option {
	return With(LinkPreviewOptions, map[string]any{"isDisabled": true})
}

// WithExtra sets keys the package has no constant for. Keys are client-side
// camelCase names and are converted to snake_case on encoding.
func WithExtra(extra map[string]any) Option {
	return func(d Data) {
		for k, v := range extra {
			d.Set(Key(k), v)
		}
	}
}
