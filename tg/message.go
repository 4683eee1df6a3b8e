package tg

import "strconv"

// Message is a message in any kind of chat.
type Message struct {
	MessageID            int    `json:"message_id"`
	MessageThreadID      int    `json:"message_thread_id,omitempty"`
	From                 *User  `json:"from,omitempty"`
	SenderChat           *Chat  `json:"sender_chat,omitempty"`
	SenderBoostCount     int    `json:"sender_boost_count,omitempty"`
	SenderBusinessBot    *User  `json:"sender_business_bot,omitempty"`
	Date                 int64  `json:"date"`
	BusinessConnectionID string `json:"business_connection_id,omitempty"`
	Chat                 *Chat  `json:"chat"`

	ForwardOrigin       *MessageOrigin      `json:"forward_origin,omitempty"`
	IsTopicMessage      bool                `json:"is_topic_message,omitempty"`
	IsAutomaticForward  bool                `json:"is_automatic_forward,omitempty"`
	ReplyToMessage      *Message            `json:"reply_to_message,omitempty"`
	ExternalReply       *ExternalReplyInfo  `json:"external_reply,omitempty"`
	Quote               *TextQuote          `json:"quote,omitempty"`
	ViaBot              *User               `json:"via_bot,omitempty"`
	EditDate            int64               `json:"edit_date,omitempty"`
	HasProtectedContent bool                `json:"has_protected_content,omitempty"`
	IsFromOffline       bool                `json:"is_from_offline,omitempty"`
	MediaGroupID        string              `json:"media_group_id,omitempty"`
	AuthorSignature     string              `json:"author_signature,omitempty"`
	LinkPreviewOptions  *LinkPreviewOptions `json:"link_preview_options,omitempty"`
	EffectID            string              `json:"effect_id,omitempty"`

	Text                  string          `json:"text,omitempty"`
	Entities              []MessageEntity `json:"entities,omitempty"`
	Caption               string          `json:"caption,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	HasMediaSpoiler       bool            `json:"has_media_spoiler,omitempty"`

	Animation *Animation  `json:"animation,omitempty"`
	Audio     *Audio      `json:"audio,omitempty"`
	Document  *Document   `json:"document,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
	Sticker   *Sticker    `json:"sticker,omitempty"`
	Video     *Video      `json:"video,omitempty"`
	VideoNote *VideoNote  `json:"video_note,omitempty"`
	Voice     *Voice      `json:"voice,omitempty"`
	Contact   *Contact    `json:"contact,omitempty"`
	Dice      *Dice       `json:"dice,omitempty"`
	Game      *Game       `json:"game,omitempty"`
	Poll      *Poll       `json:"poll,omitempty"`
	Venue     *Venue      `json:"venue,omitempty"`
	Location  *Location   `json:"location,omitempty"`

	NewChatMembers        []User      `json:"new_chat_members,omitempty"`
	LeftChatMember        *User       `json:"left_chat_member,omitempty"`
	NewChatTitle          string      `json:"new_chat_title,omitempty"`
	NewChatPhoto          []PhotoSize `json:"new_chat_photo,omitempty"`
	DeleteChatPhoto       bool        `json:"delete_chat_photo,omitempty"`
	GroupChatCreated      bool        `json:"group_chat_created,omitempty"`
	SupergroupChatCreated bool        `json:"supergroup_chat_created,omitempty"`
	ChannelChatCreated    bool        `json:"channel_chat_created,omitempty"`
	MigrateToChatID       int64       `json:"migrate_to_chat_id,omitempty"`
	MigrateFromChatID     int64       `json:"migrate_from_chat_id,omitempty"`
	PinnedMessage         *Message    `json:"pinned_message,omitempty"`

	Invoice            *Invoice           `json:"invoice,omitempty"`
	SuccessfulPayment  *SuccessfulPayment `json:"successful_payment,omitempty"`
	RefundedPayment    *RefundedPayment   `json:"refunded_payment,omitempty"`
	ConnectedWebsite   string             `json:"connected_website,omitempty"`
	PassportData       *PassportData      `json:"passport_data,omitempty"`
	BoostAdded         *ChatBoostAdded    `json:"boost_added,omitempty"`
	ForumTopicCreated  *ForumTopicCreated `json:"forum_topic_created,omitempty"`
	ForumTopicEdited   *ForumTopicEdited  `json:"forum_topic_edited,omitempty"`
	ForumTopicClosed   *struct{}          `json:"forum_topic_closed,omitempty"`
	ForumTopicReopened *struct{}          `json:"forum_topic_reopened,omitempty"`
	WebAppData         *WebAppData        `json:"web_app_data,omitempty"`

	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`

	api Caller
}

// Bind implements Bindable.
func (m *Message) Bind(c Caller) {
	if m == nil {
		return
	}
	m.api = c
	m.From.Bind(c)
	m.SenderChat.Bind(c)
	m.SenderBusinessBot.Bind(c)
	m.Chat.Bind(c)
	m.ForwardOrigin.Bind(c)
	m.ReplyToMessage.Bind(c)
	m.ViaBot.Bind(c)
	m.Sticker.Bind(c)
	m.LeftChatMember.Bind(c)
	m.PinnedMessage.Bind(c)
	m.ExternalReply.Bind(c)
	bindAll(m.NewChatMembers, c)
	bindEntities(m.Entities, c)
	bindEntities(m.CaptionEntities, c)
	if m.Quote != nil {
		bindEntities(m.Quote.Entities, c)
	}
}

// bindEntities binds the users of text_mention entities.
func bindEntities(entities []MessageEntity, c Caller) {
	for i := range entities {
		entities[i].User.Bind(c)
	}
}

// MessageSig implements Editable.
func (m *Message) MessageSig() (string, int64) {
	if m == nil {
		return "", 0
	}
	var chatID int64
	if m.Chat != nil {
		chatID = m.Chat.ID
	}
	return strconv.Itoa(m.MessageID), chatID
}

// IsCommand reports whether the message starts with a bot command.
func (m *Message) IsCommand() bool {
	return len(m.Entities) > 0 && m.Entities[0].Type == "bot_command" && m.Entities[0].Offset == 0
}

// Command returns the command name without the leading slash and bot
// username, and the remaining text. It returns empty strings for non-commands.
func (m *Message) Command() (name, args string) {
	if !m.IsCommand() {
		return "", ""
	}
	e := m.Entities[0]
	runes := []rune(m.Text)
	end := min(e.Length, len(runes))
	if end < 1 {
		return "", ""
	}
	name = string(runes[1:end])
	for i := range len(name) {
		if name[i] == '@' {
			name = name[:i]
			break
		}
	}
	if end < len(runes) {
		args = string(runes[end+1:])
	}
	return name, args
}

// MessageID is the result of copyMessage.
type MessageID struct {
	MessageID int `json:"message_id"`
}

// MessageEntity marks a special span of text: a URL, a command, bold text.
// Offset and Length count UTF-16 code units.
type MessageEntity struct {
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	User          *User  `json:"user,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// MessageOrigin describes where a forwarded message came from.
// Type is "user", "hidden_user", "chat" or "channel"; the fields that apply
// to other types are zero.
type MessageOrigin struct {
	Type            string `json:"type"`
	Date            int64  `json:"date"`
	SenderUser      *User  `json:"sender_user,omitempty"`
	SenderUserName  string `json:"sender_user_name,omitempty"`
	SenderChat      *Chat  `json:"sender_chat,omitempty"`
	Chat            *Chat  `json:"chat,omitempty"`
	MessageID       int    `json:"message_id,omitempty"`
	AuthorSignature string `json:"author_signature,omitempty"`
}

// Bind implements Bindable.
func (o *MessageOrigin) Bind(c Caller) {
	if o == nil {
		return
	}
	o.SenderUser.Bind(c)
	o.SenderChat.Bind(c)
	o.Chat.Bind(c)
}

// ExternalReplyInfo describes a replied-to message from another chat or topic.
type ExternalReplyInfo struct {
	Origin             MessageOrigin       `json:"origin"`
	Chat               *Chat               `json:"chat,omitempty"`
	MessageID          int                 `json:"message_id,omitempty"`
	LinkPreviewOptions *LinkPreviewOptions `json:"link_preview_options,omitempty"`
	Photo              []PhotoSize         `json:"photo,omitempty"`
	Document           *Document           `json:"document,omitempty"`
	Video              *Video              `json:"video,omitempty"`
	Sticker            *Sticker            `json:"sticker,omitempty"`
	Poll               *Poll               `json:"poll,omitempty"`
}

// Bind implements Bindable.
func (r *ExternalReplyInfo) Bind(c Caller) {
	if r == nil {
		return
	}
	r.Origin.Bind(c)
	r.Chat.Bind(c)
	r.Sticker.Bind(c)
}

// TextQuote is the quoted part of a replied-to message.
type TextQuote struct {
	Text     string          `json:"text"`
	Entities []MessageEntity `json:"entities,omitempty"`
	Position int             `json:"position"`
	IsManual bool            `json:"is_manual,omitempty"`
}

// ReplyParameters describes the message being replied to.
type ReplyParameters struct {
	MessageID                int             `json:"message_id"`
	ChatID                   ChatID          `json:"chat_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	Quote                    string          `json:"quote,omitempty"`
	QuoteParseMode           ParseMode       `json:"quote_parse_mode,omitempty"`
	QuoteEntities            []MessageEntity `json:"quote_entities,omitempty"`
	QuotePosition            int             `json:"quote_position,omitempty"`
}

// LinkPreviewOptions controls link preview generation.
type LinkPreviewOptions struct {
	IsDisabled       bool   `json:"is_disabled,omitempty"`
	URL              string `json:"url,omitempty"`
	PreferSmallMedia bool   `json:"prefer_small_media,omitempty"`
	PreferLargeMedia bool   `json:"prefer_large_media,omitempty"`
	ShowAboveText    bool   `json:"show_above_text,omitempty"`
}

// WebAppData is data sent from a Web App to the bot.
type WebAppData struct {
	Data       string `json:"data"`
	ButtonText string `json:"button_text"`
}

// Editable is anything that identifies a message to edit: a received
// message, a callback query, or a reference loaded from storage.
type Editable interface {
	// MessageSig returns (inline_message_id, 0) for inline messages and
	// (message_id, chat_id) otherwise.
	MessageSig() (messageID string, chatID int64)
}

// StoredMessage is a message reference kept outside of the API, for example
// in a database, that can be edited later.
type StoredMessage struct {
	MsgID  int   `json:"message_id"`
	ChatID int64 `json:"chat_id"`
}

// MessageSig implements Editable.
func (m StoredMessage) MessageSig() (string, int64) {
	return strconv.Itoa(m.MsgID), m.ChatID
}

// InlineMessage references a message sent via inline mode.
type InlineMessage struct {
	InlineMessageID string `json:"inline_message_id"`
}

// MessageSig implements Editable.
func (m InlineMessage) MessageSig() (string, int64) {
	return m.InlineMessageID, 0
}

var (
	_ Editable = (*Message)(nil)
	_ Editable = (*CallbackQuery)(nil)
	_ Editable = StoredMessage{}
	_ Editable = InlineMessage{}
)
