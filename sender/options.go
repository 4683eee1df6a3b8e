package sender

import (
	"time"

	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// Options below are shorthands for payload keys specific to one method
// group. payload.With covers everything else.

// WithCaption sets a media caption.
func WithCaption(caption string) payload.Option {
	return payload.With(payload.Caption, caption)
}

// WithThumbnail sets a thumbnail for audio, document, video and animation uploads.
func WithThumbnail(f tg.InputFile) payload.Option {
	return payload.With(payload.Thumbnail, f)
}

// WithSpoiler covers the media with a spoiler animation.
func WithSpoiler() payload.Option {
	return payload.With(payload.HasSpoiler, true)
}

// ================== Moderation ==================

// WithRevokeMessages deletes all messages from the banned user.
func WithRevokeMessages() payload.Option {
	return payload.With(payload.RevokeMessages, true)
}

// WithOnlyIfBanned makes unbanChatMember a no-op for users who are not banned.
func WithOnlyIfBanned() payload.Option {
	return payload.With(payload.OnlyIfBanned, true)
}

// Until sets when a ban or restriction is lifted.
func Until(t time.Time) payload.Option {
	return payload.With(payload.UntilDate, t.Unix())
}

// WithIndependentPermissions applies permissions exactly as given instead of
// deriving the media permissions from can_send_other_messages.
func WithIndependentPermissions() payload.Option {
	return payload.With(payload.UseIndependentChatPermissions, true)
}

// ================== Bot settings ==================

// ForScope limits bot commands to a scope.
func ForScope(scope tg.BotCommandScope) payload.Option {
	return payload.With(payload.Scope, scope)
}

// ForLanguage limits bot settings to users with the given IETF language code.
func ForLanguage(code string) payload.Option {
	return payload.With(payload.LanguageCode, code)
}

// ForChat targets a single private chat (menu button).
func ForChat(chatID int64) payload.Option {
	return payload.With(payload.ChatID, chatID)
}

// ForChannels targets default administrator rights in channels.
func ForChannels() payload.Option {
	return payload.With(payload.ForChannels, true)
}

// ================== Updates ==================

// WithOffset sets the first update ID to return.
func WithOffset(offset int) payload.Option {
	return payload.With(payload.Offset, offset)
}

// WithLimit limits the number of returned items.
func WithLimit(limit int) payload.Option {
	return payload.With(payload.Limit, limit)
}

// WithPollTimeout sets the long polling timeout. It must stay below the
// client's request timeout.
func WithPollTimeout(d time.Duration) payload.Option {
	return payload.With(payload.Timeout, int(d/time.Second))
}

// WithAllowedUpdates selects the update types to receive.
func WithAllowedUpdates(types ...string) payload.Option {
	if types == nil {
		types = []string{}
	}
	return payload.With(payload.AllowedUpdates, types)
}

// WithDropPendingUpdates drops updates queued before the webhook change.
func WithDropPendingUpdates() payload.Option {
	return payload.With(payload.DropPendingUpdates, true)
}

// WithWebhookSecret sets the X-Telegram-Bot-Api-Secret-Token header value.
func WithWebhookSecret(secret string) payload.Option {
	return payload.With(payload.SecretToken, secret)
}

// WithCertificate uploads a self-signed certificate for the webhook.
func WithCertificate(f tg.InputFile) payload.Option {
	return payload.With(payload.Certificate, f)
}

// ================== Callback and inline ==================

// Alert shows a callback answer as an alert instead of a notification.
func Alert() payload.Option {
	return payload.With(payload.ShowAlert, true)
}

// WithAnswerURL opens url (a game or a t.me link) for a callback answer.
func WithAnswerURL(url string) payload.Option {
	return payload.With(payload.URL, url)
}

// WithCacheTime sets how long a callback or inline answer may be cached.
func WithCacheTime(d time.Duration) payload.Option {
	return payload.With(payload.CacheTime, int(d/time.Second))
}

// Personal caches inline results only for the user who sent the query.
func Personal() payload.Option {
	return payload.With(payload.IsPersonal, true)
}

// WithNextOffset sets the offset the client sends to fetch more inline results.
func WithNextOffset(offset string) payload.Option {
	return payload.With(payload.NextOffset, offset)
}

// ================== Polls ==================

// Quiz turns a poll into a quiz with the given correct option.
func Quiz(correctOption int) payload.Option {
	return func(d payload.Data) {
		d.Set(payload.Type, "quiz").Set(payload.CorrectOptionID, correctOption)
	}
}

// MultipleAnswers allows selecting more than one option.
func MultipleAnswers() payload.Option {
	return payload.With(payload.AllowsMultipleAnswers, true)
}

// NotAnonymous makes votes visible.
func NotAnonymous() payload.Option {
	return payload.With(payload.IsAnonymous, false)
}

// ================== Invite links ==================

// WithLinkName names an invite link (0-32 characters).
func WithLinkName(name string) payload.Option {
	return payload.With(payload.Name, name)
}

// ExpiresAt sets when an invite link expires.
func ExpiresAt(t time.Time) payload.Option {
	return payload.With(payload.ExpireDate, t.Unix())
}

// WithMemberLimit limits how many users can join through an invite link.
func WithMemberLimit(n int) payload.Option {
	return payload.With(payload.MemberLimit, n)
}

// WithJoinRequest makes users joining through the link send a join request.
func WithJoinRequest() payload.Option {
	return payload.With(payload.CreatesJoinRequest, true)
}
