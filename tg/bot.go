package tg

// BotCommand is an entry of the bot's command menu.
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// BotCommandScope selects the users a command list applies to. ChatID is
// used by the chat scopes and UserID by "chat_member".
type BotCommandScope struct {
	Type   string `json:"type"`
	ChatID ChatID `json:"chat_id,omitempty"`
	UserID int64  `json:"user_id,omitempty"`
}

// ScopeDefault applies to all users without a narrower scope.
func ScopeDefault() BotCommandScope { return BotCommandScope{Type: "default"} }

// ScopeAllPrivateChats applies to all private chats.
func ScopeAllPrivateChats() BotCommandScope { return BotCommandScope{Type: "all_private_chats"} }

// ScopeAllGroupChats applies to all groups and supergroups.
func ScopeAllGroupChats() BotCommandScope { return BotCommandScope{Type: "all_group_chats"} }

// ScopeAllChatAdministrators applies to administrators of all groups.
func ScopeAllChatAdministrators() BotCommandScope {
	return BotCommandScope{Type: "all_chat_administrators"}
}

// ScopeChat applies to one chat.
func ScopeChat(chatID ChatID) BotCommandScope {
	return BotCommandScope{Type: "chat", ChatID: chatID}
}

// ScopeChatAdministrators applies to the administrators of one chat.
func ScopeChatAdministrators(chatID ChatID) BotCommandScope {
	return BotCommandScope{Type: "chat_administrators", ChatID: chatID}
}

// ScopeChatMember applies to one member of one chat.
func ScopeChatMember(chatID ChatID, userID int64) BotCommandScope {
	return BotCommandScope{Type: "chat_member", ChatID: chatID, UserID: userID}
}

// MenuButton is the button next to the message field. Type is "commands",
// "web_app" or "default".
type MenuButton struct {
	Type   string      `json:"type"`
	Text   string      `json:"text,omitempty"`
	WebApp *WebAppInfo `json:"web_app,omitempty"`
}

// MenuCommands shows the command list.
func MenuCommands() MenuButton { return MenuButton{Type: "commands"} }

// MenuWebApp opens a Web App.
func MenuWebApp(text, url string) MenuButton {
	return MenuButton{Type: "web_app", Text: text, WebApp: &WebAppInfo{URL: url}}
}

// BotName is the result of getMyName.
type BotName struct {
	Name string `json:"name"`
}

// BotDescription is the result of getMyDescription.
type BotDescription struct {
	Description string `json:"description"`
}

// BotShortDescription is the result of getMyShortDescription.
type BotShortDescription struct {
	ShortDescription string `json:"short_description"`
}

// ReactionType is a reaction: a standard emoji, a custom emoji or a paid
// reaction.
type ReactionType struct {
	Type          string `json:"type"`
	Emoji         string `json:"emoji,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// ReactionEmoji is a standard emoji reaction.
func ReactionEmoji(emoji string) ReactionType {
	return ReactionType{Type: "emoji", Emoji: emoji}
}

// ReactionCustomEmoji is a custom emoji reaction.
func ReactionCustomEmoji(id string) ReactionType {
	return ReactionType{Type: "custom_emoji", CustomEmojiID: id}
}
