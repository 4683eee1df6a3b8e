package tg

import (
	"context"

	"github.com/prilive-com/tgbind/payload"
)

// Update is an incoming event. At most one of the optional fields is set.
type Update struct {
	UpdateID              int                 `json:"update_id"`
	Message               *Message            `json:"message,omitempty"`
	EditedMessage         *Message            `json:"edited_message,omitempty"`
	ChannelPost           *Message            `json:"channel_post,omitempty"`
	EditedChannelPost     *Message            `json:"edited_channel_post,omitempty"`
	BusinessMessage       *Message            `json:"business_message,omitempty"`
	EditedBusinessMessage *Message            `json:"edited_business_message,omitempty"`
	MessageReaction       *MessageReaction    `json:"message_reaction,omitempty"`
	InlineQuery           *InlineQuery        `json:"inline_query,omitempty"`
	ChosenInlineResult    *ChosenInlineResult `json:"chosen_inline_result,omitempty"`
	CallbackQuery         *CallbackQuery      `json:"callback_query,omitempty"`
	ShippingQuery         *ShippingQuery      `json:"shipping_query,omitempty"`
	PreCheckoutQuery      *PreCheckoutQuery   `json:"pre_checkout_query,omitempty"`
	Poll                  *Poll               `json:"poll,omitempty"`
	PollAnswer            *PollAnswer         `json:"poll_answer,omitempty"`
	MyChatMember          *ChatMemberUpdated  `json:"my_chat_member,omitempty"`
	ChatMember            *ChatMemberUpdated  `json:"chat_member,omitempty"`
	ChatJoinRequest       *ChatJoinRequest    `json:"chat_join_request,omitempty"`
}

// Bind implements Bindable.
func (u *Update) Bind(c Caller) {
	if u == nil {
		return
	}
	u.Message.Bind(c)
	u.EditedMessage.Bind(c)
	u.ChannelPost.Bind(c)
	u.EditedChannelPost.Bind(c)
	u.BusinessMessage.Bind(c)
	u.EditedBusinessMessage.Bind(c)
	u.MessageReaction.Bind(c)
	u.InlineQuery.Bind(c)
	u.ChosenInlineResult.Bind(c)
	u.CallbackQuery.Bind(c)
	u.ShippingQuery.Bind(c)
	u.PreCheckoutQuery.Bind(c)
	u.PollAnswer.Bind(c)
	u.MyChatMember.Bind(c)
	u.ChatMember.Bind(c)
	u.ChatJoinRequest.Bind(c)
}

// Kind names the field that is set, using its wire name ("message",
// "callback_query", ...). It is the value used in allowed_updates.
func (u *Update) Kind() string {
	switch {
	case u.Message != nil:
		return "message"
	case u.EditedMessage != nil:
		return "edited_message"
	case u.ChannelPost != nil:
		return "channel_post"
	case u.EditedChannelPost != nil:
		return "edited_channel_post"
	case u.BusinessMessage != nil:
		return "business_message"
	case u.EditedBusinessMessage != nil:
		return "edited_business_message"
	case u.MessageReaction != nil:
		return "message_reaction"
	case u.InlineQuery != nil:
		return "inline_query"
	case u.ChosenInlineResult != nil:
		return "chosen_inline_result"
	case u.CallbackQuery != nil:
		return "callback_query"
	case u.ShippingQuery != nil:
		return "shipping_query"
	case u.PreCheckoutQuery != nil:
		return "pre_checkout_query"
	case u.Poll != nil:
		return "poll"
	case u.PollAnswer != nil:
		return "poll_answer"
	case u.MyChatMember != nil:
		return "my_chat_member"
	case u.ChatMember != nil:
		return "chat_member"
	case u.ChatJoinRequest != nil:
		return "chat_join_request"
	}
	return ""
}

// EffectiveMessage returns the message the update carries, if any,
// including the message of a callback query.
func (u *Update) EffectiveMessage() *Message {
	for _, m := range []*Message{u.Message, u.EditedMessage, u.ChannelPost, u.EditedChannelPost, u.BusinessMessage, u.EditedBusinessMessage} {
		if m != nil {
			return m
		}
	}
	if u.CallbackQuery != nil {
		return u.CallbackQuery.Message
	}
	return nil
}

// EffectiveUser returns the user who caused the update, if known.
func (u *Update) EffectiveUser() *User {
	switch {
	case u.InlineQuery != nil:
		return u.InlineQuery.From
	case u.ChosenInlineResult != nil:
		return u.ChosenInlineResult.From
	case u.CallbackQuery != nil:
		return u.CallbackQuery.From
	case u.ShippingQuery != nil:
		return u.ShippingQuery.From
	case u.PreCheckoutQuery != nil:
		return u.PreCheckoutQuery.From
	case u.PollAnswer != nil:
		return u.PollAnswer.User
	case u.MyChatMember != nil:
		return u.MyChatMember.From
	case u.ChatMember != nil:
		return u.ChatMember.From
	case u.ChatJoinRequest != nil:
		return u.ChatJoinRequest.From
	case u.MessageReaction != nil:
		return u.MessageReaction.User
	}
	if m := u.EffectiveMessage(); m != nil {
		return m.From
	}
	return nil
}

// EffectiveChat returns the chat the update happened in, if any.
func (u *Update) EffectiveChat() *Chat {
	switch {
	case u.MyChatMember != nil:
		return u.MyChatMember.Chat
	case u.ChatMember != nil:
		return u.ChatMember.Chat
	case u.ChatJoinRequest != nil:
		return u.ChatJoinRequest.Chat
	case u.MessageReaction != nil:
		return u.MessageReaction.Chat
	}
	if m := u.EffectiveMessage(); m != nil {
		return m.Chat
	}
	return nil
}

// MessageReaction reports a change of reactions on a message.
type MessageReaction struct {
	Chat        *Chat          `json:"chat"`
	MessageID   int            `json:"message_id"`
	User        *User          `json:"user,omitempty"`
	ActorChat   *Chat          `json:"actor_chat,omitempty"`
	Date        int64          `json:"date"`
	OldReaction []ReactionType `json:"old_reaction"`
	NewReaction []ReactionType `json:"new_reaction"`
}

// Bind implements Bindable.
func (r *MessageReaction) Bind(c Caller) {
	if r == nil {
		return
	}
	r.Chat.Bind(c)
	r.User.Bind(c)
	r.ActorChat.Bind(c)
}

// CallbackQuery is a press of an inline keyboard button.
type CallbackQuery struct {
	ID              string   `json:"id"`
	From            *User    `json:"from"`
	Message         *Message `json:"message,omitempty"`
	InlineMessageID string   `json:"inline_message_id,omitempty"`
	ChatInstance    string   `json:"chat_instance"`
	Data            string   `json:"data,omitempty"`
	GameShortName   string   `json:"game_short_name,omitempty"`

	api Caller
}

// Bind implements Bindable.
func (q *CallbackQuery) Bind(c Caller) {
	if q == nil {
		return
	}
	q.api = c
	q.From.Bind(c)
	q.Message.Bind(c)
}

// MessageSig implements Editable.
func (q *CallbackQuery) MessageSig() (string, int64) {
	if q == nil {
		return "", 0
	}
	if q.InlineMessageID != "" {
		return q.InlineMessageID, 0
	}
	return q.Message.MessageSig()
}

// Answer stops the loading indicator on the button. A non-empty text is
// shown as a notification, or as an alert with payload.With(payload.ShowAlert, true).
func (q *CallbackQuery) Answer(ctx context.Context, text string, opts ...payload.Option) error {
	d := payload.Data{payload.CallbackQueryID: q.ID}
	if text != "" {
		d.Set(payload.Text, text)
	}
	return exec(ctx, q.api, "answerCallbackQuery", d.Apply(opts...))
}

// EditText edits the message the button belongs to. For inline messages the
// API returns no message and the result is nil.
func (q *CallbackQuery) EditText(ctx context.Context, text string, opts ...payload.Option) (*Message, error) {
	d, err := EditTarget(q)
	if err != nil {
		return nil, err
	}
	d.Set(payload.Text, text).Apply(opts...)
	if d.Has(payload.InlineMessageID) {
		return nil, exec(ctx, q.api, "editMessageText", d)
	}
	return invoke[*Message](ctx, q.api, "editMessageText", d)
}

// WebhookInfo is the current webhook status.
type WebhookInfo struct {
	URL                          string   `json:"url"`
	HasCustomCertificate         bool     `json:"has_custom_certificate"`
	PendingUpdateCount           int      `json:"pending_update_count"`
	IPAddress                    string   `json:"ip_address,omitempty"`
	LastErrorDate                int64    `json:"last_error_date,omitempty"`
	LastErrorMessage             string   `json:"last_error_message,omitempty"`
	LastSynchronizationErrorDate int64    `json:"last_synchronization_error_date,omitempty"`
	MaxConnections               int      `json:"max_connections,omitempty"`
	AllowedUpdates               []string `json:"allowed_updates,omitempty"`
}
