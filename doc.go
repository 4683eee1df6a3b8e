// Package tgbind is a typed client for the Telegram Bot API.
//
// The sender package holds the client and one method per API call; the tg
// package holds the models. Models returned by the client keep a reference
// to it, so follow-up calls read naturally:
//
//	bot, err := tgbind.FromEnv(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bot.Close()
//
//	msg, err := bot.SendMessage(ctx, chatID, "Pick one", payload.WithMarkup(tg.Confirm("yes", "no")))
//	if err != nil {
//	    return err
//	}
//	_, err = msg.Reply(ctx, "Waiting for your answer")
//
// # Configuration
//
// New takes a token, FromEnv reads TELEGRAM_BOT_TOKEN and the other variables
// documented on sender.LoadConfig (after loading .env), and FromFile reads YAML.
// Options from the sender package apply to all three.
//
// # Errors
//
// Failed calls return *tg.APIError, which matches sentinels such as
// tg.ErrBotBlocked with errors.Is. Invalid arguments are reported as
// *tg.ValidationError before any request is made.
//
// Failed calls can be reported to Sentry with sentryreport.Hook.
//
// # Out of scope
//
// tgbind does not run a polling loop or serve webhooks. Feed updates received
// elsewhere to Client.DecodeUpdate to get bound models.
package tgbind
