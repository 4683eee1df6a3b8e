// Package sender implements the Bot API transport and one method per API call.
//
// Every method validates its required arguments, assembles a payload.Data from
// enumerated keys, applies call options and POSTs the payload to
// {base}/bot{token}/{method}. The {ok, result} envelope is unwrapped and the
// result is decoded into tg models that are bound to the client, so fluent
// calls such as msg.Reply work on anything the client returns.
//
// # Features
//
//   - Circuit breaker for fault tolerance
//   - Per-chat and global rate limiting
//   - Retry with exponential backoff, honoring retry_after
//   - Multipart uploads for InputFile sources, including attach:// media
//   - Client-wide default options (parse mode, silent delivery, ...)
//
// # Usage
//
//	client, err := sender.New(token,
//	    sender.WithRateLimit(30, 50),
//	    sender.WithRetries(3),
//	    sender.WithDefaults(payload.WithParseMode(tg.ParseModeHTML)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	msg, err := client.SendMessage(ctx, chatID, "Hello, <b>World</b>!")
//	if err != nil {
//	    return err
//	}
//	_, err = msg.Reply(ctx, "and a reply")
//
// Calls without a typed wrapper go through Raw:
//
//	result, err := client.Raw(ctx, "getMyStarBalance", nil)
package sender
