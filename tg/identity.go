package tg

import (
	"context"
	"strconv"
	"strings"

	"github.com/prilive-com/tgbind/payload"
)

// ChatID identifies a chat: an int64 ID or an "@channelusername" string.
type ChatID = any

// User is a Telegram user or bot.
type User struct {
	ID                      int64  `json:"id"`
	IsBot                   bool   `json:"is_bot"`
	FirstName               string `json:"first_name"`
	LastName                string `json:"last_name,omitempty"`
	Username                string `json:"username,omitempty"`
	LanguageCode            string `json:"language_code,omitempty"`
	IsPremium               bool   `json:"is_premium,omitempty"`
	AddedToAttachmentMenu   bool   `json:"added_to_attachment_menu,omitempty"`
	CanJoinGroups           bool   `json:"can_join_groups,omitempty"`
	CanReadAllGroupMessages bool   `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries   bool   `json:"supports_inline_queries,omitempty"`
	CanConnectToBusiness    bool   `json:"can_connect_to_business,omitempty"`
	HasMainWebApp           bool   `json:"has_main_web_app,omitempty"`

	api Caller
}

// Bind implements Bindable.
func (u *User) Bind(c Caller) {
	if u != nil {
		u.api = c
	}
}

// FullName joins the first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Mention returns "@username", or the full name when the user has none.
func (u *User) Mention() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return u.FullName()
}

// Send sends a private text message to the user.
func (u *User) Send(ctx context.Context, text string, opts ...payload.Option) (*Message, error) {
	d := payload.Data{payload.ChatID: u.ID, payload.Text: text}
	return invoke[*Message](ctx, u.api, "sendMessage", d.Apply(opts...))
}

// ProfilePhotos lists the user's profile pictures.
func (u *User) ProfilePhotos(ctx context.Context, opts ...payload.Option) (*UserProfilePhotos, error) {
	d := payload.Data{payload.UserID: u.ID}
	return invoke[*UserProfilePhotos](ctx, u.api, "getUserProfilePhotos", d.Apply(opts...))
}

// Boosts lists the boosts the user added to chatID.
func (u *User) Boosts(ctx context.Context, chatID ChatID) (*UserChatBoosts, error) {
	d := payload.Data{payload.ChatID: chatID, payload.UserID: u.ID}
	return invoke[*UserChatBoosts](ctx, u.api, "getUserChatBoosts", d)
}

// Chat is a private chat, group, supergroup or channel.
type Chat struct {
	ID        int64    `json:"id"`
	Type      ChatType `json:"type"`
	Title     string   `json:"title,omitempty"`
	Username  string   `json:"username,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	IsForum   bool     `json:"is_forum,omitempty"`

	api Caller
}

// Bind implements Bindable.
func (c *Chat) Bind(api Caller) {
	if c != nil {
		c.api = api
	}
}

// Name returns the title for groups and channels and the full name otherwise.
func (c *Chat) Name() string {
	if c.Title != "" {
		return c.Title
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Ref returns the chat as a "@username" reference when it has a username.
func (c *Chat) Ref() ChatID {
	if c.Username != "" && c.Type != ChatTypePrivate {
		return "@" + c.Username
	}
	return c.ID
}

// String implements fmt.Stringer.
func (c *Chat) String() string {
	return string(c.Type) + ":" + strconv.FormatInt(c.ID, 10)
}

// ChatPhoto is a chat's profile photo.
type ChatPhoto struct {
	SmallFileID       string `json:"small_file_id"`
	SmallFileUniqueID string `json:"small_file_unique_id"`
	BigFileID         string `json:"big_file_id"`
	BigFileUniqueID   string `json:"big_file_unique_id"`
}

// ChatFullInfo is the result of getChat. The embedded Chat carries the
// fluent operations.
type ChatFullInfo struct {
	Chat

	AccentColorID                      int              `json:"accent_color_id"`
	MaxReactionCount                   int              `json:"max_reaction_count"`
	Photo                              *ChatPhoto       `json:"photo,omitempty"`
	ActiveUsernames                    []string         `json:"active_usernames,omitempty"`
	Birthdate                          *Birthdate       `json:"birthdate,omitempty"`
	PersonalChat                       *Chat            `json:"personal_chat,omitempty"`
	AvailableReactions                 []ReactionType   `json:"available_reactions,omitempty"`
	BackgroundCustomEmojiID            string           `json:"background_custom_emoji_id,omitempty"`
	ProfileAccentColorID               *int             `json:"profile_accent_color_id,omitempty"`
	EmojiStatusCustomEmojiID           string           `json:"emoji_status_custom_emoji_id,omitempty"`
	EmojiStatusExpirationDate          int64            `json:"emoji_status_expiration_date,omitempty"`
	Bio                                string           `json:"bio,omitempty"`
	HasPrivateForwards                 bool             `json:"has_private_forwards,omitempty"`
	HasRestrictedVoiceAndVideoMessages bool             `json:"has_restricted_voice_and_video_messages,omitempty"`
	JoinToSendMessages                 bool             `json:"join_to_send_messages,omitempty"`
	JoinByRequest                      bool             `json:"join_by_request,omitempty"`
	Description                        string           `json:"description,omitempty"`
	InviteLink                         string           `json:"invite_link,omitempty"`
	PinnedMessage                      *Message         `json:"pinned_message,omitempty"`
	Permissions                        *ChatPermissions `json:"permissions,omitempty"`
	CanSendPaidMedia                   bool             `json:"can_send_paid_media,omitempty"`
	SlowModeDelay                      int              `json:"slow_mode_delay,omitempty"`
	UnrestrictBoostCount               int              `json:"unrestrict_boost_count,omitempty"`
	MessageAutoDeleteTime              int              `json:"message_auto_delete_time,omitempty"`
	HasAggressiveAntiSpamEnabled       bool             `json:"has_aggressive_anti_spam_enabled,omitempty"`
	HasHiddenMembers                   bool             `json:"has_hidden_members,omitempty"`
	HasProtectedContent                bool             `json:"has_protected_content,omitempty"`
	HasVisibleHistory                  bool             `json:"has_visible_history,omitempty"`
	StickerSetName                     string           `json:"sticker_set_name,omitempty"`
	CanSetStickerSet                   bool             `json:"can_set_sticker_set,omitempty"`
	CustomEmojiStickerSetName          string           `json:"custom_emoji_sticker_set_name,omitempty"`
	LinkedChatID                       int64            `json:"linked_chat_id,omitempty"`
	Location                           *ChatLocation    `json:"location,omitempty"`
}

// Bind implements Bindable.
func (c *ChatFullInfo) Bind(api Caller) {
	if c == nil {
		return
	}
	c.Chat.Bind(api)
	c.PersonalChat.Bind(api)
	c.PinnedMessage.Bind(api)
}

// Birthdate is a user's date of birth. Year is 0 when hidden.
type Birthdate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year,omitempty"`
}

// ChatLocation is the place a location-based supergroup is connected to.
type ChatLocation struct {
	Location Location `json:"location"`
	Address  string   `json:"address"`
}
