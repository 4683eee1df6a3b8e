package tg

// InlineKeyboardMarkup is a keyboard attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// InlineKeyboardButton is one button of an inline keyboard. Exactly one of
// the optional fields must be set.
type InlineKeyboardButton struct {
	Text                         string                       `json:"text"`
	URL                          string                       `json:"url,omitempty"`
	CallbackData                 string                       `json:"callback_data,omitempty"`
	WebApp                       *WebAppInfo                  `json:"web_app,omitempty"`
	LoginURL                     *LoginURL                    `json:"login_url,omitempty"`
	SwitchInlineQuery            *string                      `json:"switch_inline_query,omitempty"`
	SwitchInlineQueryCurrentChat *string                      `json:"switch_inline_query_current_chat,omitempty"`
	SwitchInlineQueryChosenChat  *SwitchInlineQueryChosenChat `json:"switch_inline_query_chosen_chat,omitempty"`
	CopyText                     *CopyTextButton              `json:"copy_text,omitempty"`
	CallbackGame                 *CallbackGame                `json:"callback_game,omitempty"`
	Pay                          bool                         `json:"pay,omitempty"`
}

// WebAppInfo points at a Web App.
type WebAppInfo struct {
	URL string `json:"url"`
}

// LoginURL configures a login button.
type LoginURL struct {
	URL                string `json:"url"`
	ForwardText        string `json:"forward_text,omitempty"`
	BotUsername        string `json:"bot_username,omitempty"`
	RequestWriteAccess bool   `json:"request_write_access,omitempty"`
}

// SwitchInlineQueryChosenChat opens inline mode in a chat the user picks.
type SwitchInlineQueryChosenChat struct {
	Query             string `json:"query,omitempty"`
	AllowUserChats    bool   `json:"allow_user_chats,omitempty"`
	AllowBotChats     bool   `json:"allow_bot_chats,omitempty"`
	AllowGroupChats   bool   `json:"allow_group_chats,omitempty"`
	AllowChannelChats bool   `json:"allow_channel_chats,omitempty"`
}

// CopyTextButton copies Text to the clipboard.
type CopyTextButton struct {
	Text string `json:"text"`
}

// Btn creates a callback button.
func Btn(text, data string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackData: data}
}

// BtnURL creates a link button.
func BtnURL(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, URL: url}
}

// BtnWebApp creates a button that opens a Web App.
func BtnWebApp(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, WebApp: &WebAppInfo{URL: url}}
}

// BtnSwitch switches the user to inline mode in a chat of their choice.
// An empty query is valid and still renders the button.
func BtnSwitch(text, query string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, SwitchInlineQuery: &query}
}

// BtnSwitchHere starts inline mode in the current chat.
func BtnSwitchHere(text, query string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, SwitchInlineQueryCurrentChat: &query}
}

// BtnCopy copies value to the clipboard.
func BtnCopy(text, value string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CopyText: &CopyTextButton{Text: value}}
}

// BtnGame launches the message's game. It must be the first button.
func BtnGame(text string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackGame: &CallbackGame{}}
}

// BtnPay is the pay button of an invoice. It must be the first button.
func BtnPay(text string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, Pay: true}
}

// Keyboard builds an inline keyboard row by row.
type Keyboard struct {
	rows [][]InlineKeyboardButton
}

// NewKeyboard starts an empty keyboard.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Row appends a row. Empty rows are ignored.
func (k *Keyboard) Row(buttons ...InlineKeyboardButton) *Keyboard {
	if len(buttons) > 0 {
		k.rows = append(k.rows, buttons)
	}
	return k
}

// Add appends buttons to the last row.
func (k *Keyboard) Add(buttons ...InlineKeyboardButton) *Keyboard {
	if len(k.rows) == 0 {
		return k.Row(buttons...)
	}
	last := len(k.rows) - 1
	k.rows[last] = append(k.rows[last], buttons...)
	return k
}

// Columns lays buttons out n per row.
func (k *Keyboard) Columns(n int, buttons ...InlineKeyboardButton) *Keyboard {
	if n <= 0 {
		n = 1
	}
	for len(buttons) > 0 {
		end := min(n, len(buttons))
		k.Row(buttons[:end]...)
		buttons = buttons[end:]
	}
	return k
}

// Build returns the markup.
func (k *Keyboard) Build() *InlineKeyboardMarkup {
	rows := k.rows
	if rows == nil {
		rows = [][]InlineKeyboardButton{}
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// Confirm is a two-button yes/no keyboard.
func Confirm(yesData, noData string) *InlineKeyboardMarkup {
	return NewKeyboard().Row(Btn("Yes", yesData), Btn("No", noData)).Build()
}

// ReplyKeyboardMarkup replaces the user's keyboard with custom buttons.
type ReplyKeyboardMarkup struct {
	Keyboard              [][]KeyboardButton `json:"keyboard"`
	IsPersistent          bool               `json:"is_persistent,omitempty"`
	ResizeKeyboard        bool               `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard       bool               `json:"one_time_keyboard,omitempty"`
	InputFieldPlaceholder string             `json:"input_field_placeholder,omitempty"`
	Selective             bool               `json:"selective,omitempty"`
}

// KeyboardButton is a button of a reply keyboard. Pressing it sends Text,
// or the contact, location or poll it requests.
type KeyboardButton struct {
	Text            string                  `json:"text"`
	RequestContact  bool                    `json:"request_contact,omitempty"`
	RequestLocation bool                    `json:"request_location,omitempty"`
	RequestPoll     *KeyboardButtonPollType `json:"request_poll,omitempty"`
	WebApp          *WebAppInfo             `json:"web_app,omitempty"`
}

// KeyboardButtonPollType restricts the poll a button creates to "quiz" or
// "regular". An empty type allows both.
type KeyboardButtonPollType struct {
	Type string `json:"type,omitempty"`
}

// ReplyKeyboard creates a resized reply keyboard where every argument is a row.
func ReplyKeyboard(rows ...[]KeyboardButton) *ReplyKeyboardMarkup {
	return &ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true}
}

// TextButtons creates a row of plain text buttons.
func TextButtons(texts ...string) []KeyboardButton {
	row := make([]KeyboardButton, len(texts))
	for i, t := range texts {
		row[i] = KeyboardButton{Text: t}
	}
	return row
}

// ReplyKeyboardRemove hides the custom keyboard.
type ReplyKeyboardRemove struct {
	RemoveKeyboard bool `json:"remove_keyboard"`
	Selective      bool `json:"selective,omitempty"`
}

// RemoveKeyboard returns the markup that hides the reply keyboard.
func RemoveKeyboard() *ReplyKeyboardRemove {
	return &ReplyKeyboardRemove{RemoveKeyboard: true}
}

// ForceReply shows a reply interface as if the user had tapped Reply.
type ForceReply struct {
	ForceReply            bool   `json:"force_reply"`
	InputFieldPlaceholder string `json:"input_field_placeholder,omitempty"`
	Selective             bool   `json:"selective,omitempty"`
}
