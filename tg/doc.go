// Package tg contains the Bot API object model.
//
// Models are plain records decoded from API responses. Those that support
// follow-up calls (Message, Chat, User, CallbackQuery, ...) carry a reference
// to the client that produced them, so a handler can write
//
//	msg.Reply(ctx, "pong")
//
// instead of assembling a sendMessage request by hand. The reference is set
// by [Bind]; the sender package binds every value it decodes. Calling a
// fluent operation on an unbound model returns [ErrUnbound].
package tg
