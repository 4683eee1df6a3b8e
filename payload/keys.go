package payload

import "github.com/prilive-com/tgbind/keycase"

// Key is an enumerated payload data key. Its value is the client-side
// camelCase field name; Wire returns the snake_case key sent to the API.
type Key string

// Wire returns the wire-format (snake_case) name of the key.
func (k Key) Wire() string { return keycase.ToSnake(string(k)) }

// String returns the client-side name of the key.
func (k Key) String() string { return string(k) }

// Targeting and threading.
const (
	ChatID               Key = "chatId"
	FromChatID           Key = "fromChatId"
	SenderChatID         Key = "senderChatId"
	UserID               Key = "userId"
	MessageID            Key = "messageId"
	MessageIDs           Key = "messageIds"
	InlineMessageID      Key = "inlineMessageId"
	MessageThreadID      Key = "messageThreadId"
	BusinessConnectionID Key = "businessConnectionId"
)

// Message content and delivery.
const (
	Text                  Key = "text"
	ParseMode             Key = "parseMode"
	Entities              Key = "entities"
	LinkPreviewOptions    Key = "linkPreviewOptions"
	Caption               Key = "caption"
	CaptionEntities       Key = "captionEntities"
	ShowCaptionAboveMedia Key = "showCaptionAboveMedia"
	RemoveCaption         Key = "removeCaption"
	HasSpoiler            Key = "hasSpoiler"
	DisableNotification   Key = "disableNotification"
	ProtectContent        Key = "protectContent"
	AllowPaidBroadcast    Key = "allowPaidBroadcast"
	MessageEffectID       Key = "messageEffectId"
	ReplyParameters       Key = "replyParameters"
	ReplyMarkup           Key = "replyMarkup"
	VideoStartTimestamp   Key = "videoStartTimestamp"
)

// Media.
const (
	Photo                       Key = "photo"
	Audio                       Key = "audio"
	Document                    Key = "document"
	Video                       Key = "video"
	Animation                   Key = "animation"
	Voice                       Key = "voice"
	VideoNote                   Key = "videoNote"
	Media                       Key = "media"
	Thumbnail                   Key = "thumbnail"
	Cover                       Key = "cover"
	Duration                    Key = "duration"
	Performer                   Key = "performer"
	Title                       Key = "title"
	Width                       Key = "width"
	Height                      Key = "height"
	Length                      Key = "length"
	SupportsStreaming           Key = "supportsStreaming"
	DisableContentTypeDetection Key = "disableContentTypeDetection"
	FileID                      Key = "fileId"
	Offset                      Key = "offset"
	Limit                       Key = "limit"
)

// Locations, venues, contacts, polls and dice.
const (
	Latitude              Key = "latitude"
	Longitude             Key = "longitude"
	HorizontalAccuracy    Key = "horizontalAccuracy"
	LivePeriod            Key = "livePeriod"
	Heading               Key = "heading"
	ProximityAlertRadius  Key = "proximityAlertRadius"
	Address               Key = "address"
	FoursquareID          Key = "foursquareId"
	FoursquareType        Key = "foursquareType"
	GooglePlaceID         Key = "googlePlaceId"
	GooglePlaceType       Key = "googlePlaceType"
	PhoneNumber           Key = "phoneNumber"
	FirstName             Key = "firstName"
	LastName              Key = "lastName"
	Vcard                 Key = "vcard"
	Question              Key = "question"
	QuestionParseMode     Key = "questionParseMode"
	QuestionEntities      Key = "questionEntities"
	Options               Key = "options"
	IsAnonymous           Key = "isAnonymous"
	Type                  Key = "type"
	AllowsMultipleAnswers Key = "allowsMultipleAnswers"
	CorrectOptionID       Key = "correctOptionId"
	Explanation           Key = "explanation"
	ExplanationParseMode  Key = "explanationParseMode"
	ExplanationEntities   Key = "explanationEntities"
	OpenPeriod            Key = "openPeriod"
	CloseDate             Key = "closeDate"
	IsClosed              Key = "isClosed"
	Emoji                 Key = "emoji"
	Action                Key = "action"
	Reaction              Key = "reaction"
	IsBig                 Key = "isBig"
)

// Chat administration.
const (
	UntilDate                     Key = "untilDate"
	RevokeMessages                Key = "revokeMessages"
	OnlyIfBanned                  Key = "onlyIfBanned"
	Permissions                   Key = "permissions"
	UseIndependentChatPermissions Key = "useIndependentChatPermissions"
	CustomTitle                   Key = "customTitle"
	Name                          Key = "name"
	ExpireDate                    Key = "expireDate"
	MemberLimit                   Key = "memberLimit"
	CreatesJoinRequest            Key = "createsJoinRequest"
	InviteLink                    Key = "inviteLink"
	Description                   Key = "description"
	StickerSetName                Key = "stickerSetName"
	IconColor                     Key = "iconColor"
	IconCustomEmojiID             Key = "iconCustomEmojiId"
)

// Updates and webhooks.
const (
	AllowedUpdates     Key = "allowedUpdates"
	Timeout            Key = "timeout"
	URL                Key = "url"
	Certificate        Key = "certificate"
	IPAddress          Key = "ipAddress"
	MaxConnections     Key = "maxConnections"
	DropPendingUpdates Key = "dropPendingUpdates"
	SecretToken        Key = "secretToken"
)

// Bot settings.
const (
	Commands         Key = "commands"
	Scope            Key = "scope"
	LanguageCode     Key = "languageCode"
	ShortDescription Key = "shortDescription"
	MenuButton       Key = "menuButton"
	Rights           Key = "rights"
	ForChannels      Key = "forChannels"
)

// Callback queries and inline mode.
const (
	CallbackQueryID   Key = "callbackQueryId"
	ShowAlert         Key = "showAlert"
	CacheTime         Key = "cacheTime"
	InlineQueryID     Key = "inlineQueryId"
	Results           Key = "results"
	IsPersonal        Key = "isPersonal"
	NextOffset        Key = "nextOffset"
	Button            Key = "button"
	WebAppQueryID     Key = "webAppQueryId"
	Result            Key = "result"
	AllowUserChats    Key = "allowUserChats"
	AllowBotChats     Key = "allowBotChats"
	AllowGroupChats   Key = "allowGroupChats"
	AllowChannelChats Key = "allowChannelChats"
)

// Stickers.
const (
	Sticker         Key = "sticker"
	Stickers        Key = "stickers"
	CustomEmojiIDs  Key = "customEmojiIds"
	CustomEmojiID   Key = "customEmojiId"
	StickerFormat   Key = "stickerFormat"
	StickerType     Key = "stickerType"
	NeedsRepainting Key = "needsRepainting"
	Position        Key = "position"
	OldSticker      Key = "oldSticker"
	EmojiList       Key = "emojiList"
	Keywords        Key = "keywords"
	MaskPosition    Key = "maskPosition"
	Format          Key = "format"
)

// Payments.
const (
	Payload                   Key = "payload"
	ProviderToken             Key = "providerToken"
	Currency                  Key = "currency"
	Prices                    Key = "prices"
	SubscriptionPeriod        Key = "subscriptionPeriod"
	MaxTipAmount              Key = "maxTipAmount"
	SuggestedTipAmounts       Key = "suggestedTipAmounts"
	StartParameter            Key = "startParameter"
	ProviderData              Key = "providerData"
	PhotoURL                  Key = "photoUrl"
	PhotoSize                 Key = "photoSize"
	PhotoWidth                Key = "photoWidth"
	PhotoHeight               Key = "photoHeight"
	NeedName                  Key = "needName"
	NeedPhoneNumber           Key = "needPhoneNumber"
	NeedEmail                 Key = "needEmail"
	NeedShippingAddress       Key = "needShippingAddress"
	SendPhoneNumberToProvider Key = "sendPhoneNumberToProvider"
	SendEmailToProvider       Key = "sendEmailToProvider"
	IsFlexible                Key = "isFlexible"
	ShippingQueryID           Key = "shippingQueryId"
	OK                        Key = "ok"
	ShippingOptions           Key = "shippingOptions"
	ErrorMessage              Key = "errorMessage"
	PreCheckoutQueryID        Key = "preCheckoutQueryId"
	TelegramPaymentChargeID   Key = "telegramPaymentChargeId"
)

// Passport and games.
const (
	Errors             Key = "errors"
	GameShortName      Key = "gameShortName"
	Score              Key = "score"
	Force              Key = "force"
	DisableEditMessage Key = "disableEditMessage"
)
