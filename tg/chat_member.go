package tg

import (
	"context"

	"github.com/prilive-com/tgbind/payload"
)

// Member statuses.
const (
	StatusCreator       = "creator"
	StatusAdministrator = "administrator"
	StatusMember        = "member"
	StatusRestricted    = "restricted"
	StatusLeft          = "left"
	StatusKicked        = "kicked"
)

// ChatMember is a user's membership in a chat. Status selects which of the
// right and restriction fields are meaningful.
type ChatMember struct {
	Status      string `json:"status"`
	User        *User  `json:"user"`
	IsAnonymous bool   `json:"is_anonymous,omitempty"`
	CustomTitle string `json:"custom_title,omitempty"`
	UntilDate   int64  `json:"until_date,omitempty"`
	IsMember    bool   `json:"is_member,omitempty"`

	// Administrator rights.
	CanBeEdited         bool `json:"can_be_edited,omitempty"`
	CanManageChat       bool `json:"can_manage_chat,omitempty"`
	CanDeleteMessages   bool `json:"can_delete_messages,omitempty"`
	CanManageVideoChats bool `json:"can_manage_video_chats,omitempty"`
	CanRestrictMembers  bool `json:"can_restrict_members,omitempty"`
	CanPromoteMembers   bool `json:"can_promote_members,omitempty"`
	CanPostStories      bool `json:"can_post_stories,omitempty"`
	CanEditStories      bool `json:"can_edit_stories,omitempty"`
	CanDeleteStories    bool `json:"can_delete_stories,omitempty"`
	CanPostMessages     bool `json:"can_post_messages,omitempty"`
	CanEditMessages     bool `json:"can_edit_messages,omitempty"`

	// Shared by administrators and restricted members.
	CanChangeInfo   bool `json:"can_change_info,omitempty"`
	CanInviteUsers  bool `json:"can_invite_users,omitempty"`
	CanPinMessages  bool `json:"can_pin_messages,omitempty"`
	CanManageTopics bool `json:"can_manage_topics,omitempty"`

	// Restrictions.
	CanSendMessages       bool `json:"can_send_messages,omitempty"`
	CanSendAudios         bool `json:"can_send_audios,omitempty"`
	CanSendDocuments      bool `json:"can_send_documents,omitempty"`
	CanSendPhotos         bool `json:"can_send_photos,omitempty"`
	CanSendVideos         bool `json:"can_send_videos,omitempty"`
	CanSendVideoNotes     bool `json:"can_send_video_notes,omitempty"`
	CanSendVoiceNotes     bool `json:"can_send_voice_notes,omitempty"`
	CanSendPolls          bool `json:"can_send_polls,omitempty"`
	CanSendOtherMessages  bool `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews bool `json:"can_add_web_page_previews,omitempty"`
}

// Bind implements Bindable.
func (m *ChatMember) Bind(c Caller) {
	if m != nil {
		m.User.Bind(c)
	}
}

// IsAdmin reports whether the member is the creator or an administrator.
func (m *ChatMember) IsAdmin() bool {
	return m.Status == StatusCreator || m.Status == StatusAdministrator
}

// InChat reports whether the user is currently part of the chat.
func (m *ChatMember) InChat() bool {
	switch m.Status {
	case StatusCreator, StatusAdministrator, StatusMember:
		return true
	case StatusRestricted:
		return m.IsMember
	}
	return false
}

// ChatPermissions are the actions non-administrators may take. nil fields are
// left unchanged by setChatPermissions and restrictChatMember.
type ChatPermissions struct {
	CanSendMessages       *bool `json:"can_send_messages,omitempty"`
	CanSendAudios         *bool `json:"can_send_audios,omitempty"`
	CanSendDocuments      *bool `json:"can_send_documents,omitempty"`
	CanSendPhotos         *bool `json:"can_send_photos,omitempty"`
	CanSendVideos         *bool `json:"can_send_videos,omitempty"`
	CanSendVideoNotes     *bool `json:"can_send_video_notes,omitempty"`
	CanSendVoiceNotes     *bool `json:"can_send_voice_notes,omitempty"`
	CanSendPolls          *bool `json:"can_send_polls,omitempty"`
	CanSendOtherMessages  *bool `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews *bool `json:"can_add_web_page_previews,omitempty"`
	CanChangeInfo         *bool `json:"can_change_info,omitempty"`
	CanInviteUsers        *bool `json:"can_invite_users,omitempty"`
	CanPinMessages        *bool `json:"can_pin_messages,omitempty"`
	CanManageTopics       *bool `json:"can_manage_topics,omitempty"`
}

// Bool returns a pointer to v, for optional boolean fields.
func Bool(v bool) *bool { return &v }

func uniformPermissions(v bool) ChatPermissions {
	return ChatPermissions{
		CanSendMessages:       Bool(v),
		CanSendAudios:         Bool(v),
		CanSendDocuments:      Bool(v),
		CanSendPhotos:         Bool(v),
		CanSendVideos:         Bool(v),
		CanSendVideoNotes:     Bool(v),
		CanSendVoiceNotes:     Bool(v),
		CanSendPolls:          Bool(v),
		CanSendOtherMessages:  Bool(v),
		CanAddWebPagePreviews: Bool(v),
		CanChangeInfo:         Bool(v),
		CanInviteUsers:        Bool(v),
		CanPinMessages:        Bool(v),
		CanManageTopics:       Bool(v),
	}
}

// AllPermissions allows everything.
func AllPermissions() ChatPermissions { return uniformPermissions(true) }

// NoPermissions forbids everything.
func NoPermissions() ChatPermissions { return uniformPermissions(false) }

// TextOnlyPermissions allows plain text messages only.
func TextOnlyPermissions() ChatPermissions {
	p := NoPermissions()
	p.CanSendMessages = Bool(true)
	p.CanChangeInfo, p.CanInviteUsers, p.CanPinMessages, p.CanManageTopics = nil, nil, nil, nil
	return p
}

// ChatAdministratorRights are the rights of an administrator.
type ChatAdministratorRights struct {
	IsAnonymous         bool `json:"is_anonymous"`
	CanManageChat       bool `json:"can_manage_chat"`
	CanDeleteMessages   bool `json:"can_delete_messages"`
	CanManageVideoChats bool `json:"can_manage_video_chats"`
	CanRestrictMembers  bool `json:"can_restrict_members"`
	CanPromoteMembers   bool `json:"can_promote_members"`
	CanChangeInfo       bool `json:"can_change_info"`
	CanInviteUsers      bool `json:"can_invite_users"`
	CanPostStories      bool `json:"can_post_stories"`
	CanEditStories      bool `json:"can_edit_stories"`
	CanDeleteStories    bool `json:"can_delete_stories"`
	CanPostMessages     bool `json:"can_post_messages,omitempty"`
	CanEditMessages     bool `json:"can_edit_messages,omitempty"`
	CanPinMessages      bool `json:"can_pin_messages,omitempty"`
	CanManageTopics     bool `json:"can_manage_topics,omitempty"`
}

// ModeratorRights can delete messages and restrict members.
func ModeratorRights() ChatAdministratorRights {
	return ChatAdministratorRights{
		CanManageChat:      true,
		CanDeleteMessages:  true,
		CanRestrictMembers: true,
		CanInviteUsers:     true,
		CanPinMessages:     true,
	}
}

// ChatMemberUpdated reports a change of a member's status.
type ChatMemberUpdated struct {
	Chat                    *Chat           `json:"chat"`
	From                    *User           `json:"from"`
	Date                    int64           `json:"date"`
	OldChatMember           ChatMember      `json:"old_chat_member"`
	NewChatMember           ChatMember      `json:"new_chat_member"`
	InviteLink              *ChatInviteLink `json:"invite_link,omitempty"`
	ViaJoinRequest          bool            `json:"via_join_request,omitempty"`
	ViaChatFolderInviteLink bool            `json:"via_chat_folder_invite_link,omitempty"`
}

// Bind implements Bindable.
func (u *ChatMemberUpdated) Bind(c Caller) {
	if u == nil {
		return
	}
	u.Chat.Bind(c)
	u.From.Bind(c)
	u.OldChatMember.Bind(c)
	u.NewChatMember.Bind(c)
}

// Joined reports whether the update is the user entering the chat.
func (u *ChatMemberUpdated) Joined() bool {
	return !u.OldChatMember.InChat() && u.NewChatMember.InChat()
}

// Left reports whether the update is the user leaving or being removed.
func (u *ChatMemberUpdated) Left() bool {
	return u.OldChatMember.InChat() && !u.NewChatMember.InChat()
}

// ChatJoinRequest is a request to join a chat.
type ChatJoinRequest struct {
	Chat       *Chat           `json:"chat"`
	From       *User           `json:"from"`
	UserChatID int64           `json:"user_chat_id"`
	Date       int64           `json:"date"`
	Bio        string          `json:"bio,omitempty"`
	InviteLink *ChatInviteLink `json:"invite_link,omitempty"`

	api Caller
}

// Bind implements Bindable.
func (r *ChatJoinRequest) Bind(c Caller) {
	if r == nil {
		return
	}
	r.api = c
	r.Chat.Bind(c)
	r.From.Bind(c)
}

func (r *ChatJoinRequest) data() payload.Data {
	d := payload.Data{}
	if r.Chat != nil {
		d.Set(payload.ChatID, r.Chat.ID)
	}
	if r.From != nil {
		d.Set(payload.UserID, r.From.ID)
	}
	return d
}

// Approve lets the user in.
func (r *ChatJoinRequest) Approve(ctx context.Context) error {
	return exec(ctx, r.api, "approveChatJoinRequest", r.data())
}

// Decline rejects the request.
func (r *ChatJoinRequest) Decline(ctx context.Context) error {
	return exec(ctx, r.api, "declineChatJoinRequest", r.data())
}

// ChatInviteLink is an invite link for a chat.
type ChatInviteLink struct {
	InviteLink              string `json:"invite_link"`
	Creator                 *User  `json:"creator"`
	CreatesJoinRequest      bool   `json:"creates_join_request"`
	IsPrimary               bool   `json:"is_primary"`
	IsRevoked               bool   `json:"is_revoked"`
	Name                    string `json:"name,omitempty"`
	ExpireDate              int64  `json:"expire_date,omitempty"`
	MemberLimit             int    `json:"member_limit,omitempty"`
	PendingJoinRequestCount int    `json:"pending_join_request_count,omitempty"`
	SubscriptionPeriod      int    `json:"subscription_period,omitempty"`
	SubscriptionPrice       int    `json:"subscription_price,omitempty"`
}

// ForumTopic is a topic in a forum supergroup.
type ForumTopic struct {
	MessageThreadID   int    `json:"message_thread_id"`
	Name              string `json:"name"`
	IconColor         int    `json:"icon_color"`
	IconCustomEmojiID string `json:"icon_custom_emoji_id,omitempty"`
}

// Icon colors accepted by createForumTopic.
const (
	ForumColorBlue   = 0x6FB9F0
	ForumColorYellow = 0xFFD67E
	ForumColorViolet = 0xCB86DB
	ForumColorGreen  = 0x8EEE98
	ForumColorRose   = 0xFF93B2
	ForumColorRed    = 0xFB6F5F
)

// ForumTopicCreated is the service message about a new topic.
type ForumTopicCreated struct {
	Name              string `json:"name"`
	IconColor         int    `json:"icon_color"`
	IconCustomEmojiID string `json:"icon_custom_emoji_id,omitempty"`
}

// ForumTopicEdited is the service message about an edited topic.
type ForumTopicEdited struct {
	Name              string  `json:"name,omitempty"`
	IconCustomEmojiID *string `json:"icon_custom_emoji_id,omitempty"`
}

// UserChatBoosts is the result of getUserChatBoosts.
type UserChatBoosts struct {
	Boosts []ChatBoost `json:"boosts"`
}

// ChatBoost is a boost added to a chat.
type ChatBoost struct {
	BoostID        string          `json:"boost_id"`
	AddDate        int64           `json:"add_date"`
	ExpirationDate int64           `json:"expiration_date"`
	Source         ChatBoostSource `json:"source"`
}

// ChatBoostSource describes who boosted. Source is "premium", "gift_code"
// or "giveaway".
type ChatBoostSource struct {
	Source            string `json:"source"`
	User              *User  `json:"user,omitempty"`
	GiveawayMessageID int    `json:"giveaway_message_id,omitempty"`
	PrizeStarCount    int    `json:"prize_star_count,omitempty"`
	IsUnclaimed       bool   `json:"is_unclaimed,omitempty"`
}

// ChatBoostAdded is the service message about a user boosting the chat.
type ChatBoostAdded struct {
	BoostCount int `json:"boost_count"`
}
