// Command tgbind-smoke runs live scenarios against the Telegram Bot API and
// writes a JSON evidence report.
//
// It reads the bot configuration from the environment (and .env), plus
// SMOKE_CHAT_ID for the chat to send to. Every message it sends is deleted
// at the end of its scenario.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/ratelimit"

	"github.com/prilive-com/tgbind"
	"github.com/prilive-com/tgbind/cmd/tgbind-smoke/engine"
	"github.com/prilive-com/tgbind/cmd/tgbind-smoke/evidence"
	"github.com/prilive-com/tgbind/cmd/tgbind-smoke/suites"
	"github.com/prilive-com/tgbind/sender"
	"github.com/prilive-com/tgbind/sentryreport"
)

var (
	runSuite    = flag.String("run", "smoke", "Suites to run, comma separated: "+strings.Join(suites.Names(), ", "))
	reportDir   = flag.String("report-dir", "var/reports", "Directory for JSON reports")
	maxMessages = flag.Int("max-messages", 40, "Message budget per run")
	stepsPerMin = flag.Int("steps-per-minute", 30, "Step pacing, 0 for none")
	showStatus  = flag.Bool("status", false, "Print the methods the suites cover and exit")
)

func main() {
	flag.Parse()

	if *showStatus {
		cov := suites.Coverage()
		fmt.Printf("Covered: %d methods\n", len(cov))
		for _, m := range cov {
			fmt.Printf("  + %s\n", m)
		}
		return
	}

	logLevel := slog.LevelInfo
	if os.Getenv("SMOKE_LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	os.Exit(run(logger))
}

func run(logger *slog.Logger) int {
	scenarios, err := suites.Lookup(*runSuite)
	if err != nil {
		logger.Error("invalid -run", "error", err)
		return 2
	}

	if err := tgbind.LoadEnv(); err != nil {
		logger.Error("failed to load .env", "error", err)
		return 1
	}
	chatID, err := strconv.ParseInt(os.Getenv("SMOKE_CHAT_ID"), 10, 64)
	if err != nil || chatID == 0 {
		logger.Error("SMOKE_CHAT_ID must be set to a chat ID")
		return 1
	}

	opts := []sender.Option{sender.WithLogger(logger)}
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: "smoke",
			Release:     "tgbind-smoke",
		}); err != nil {
			logger.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
			opts = append(opts, sender.WithErrorHook(sentryreport.Hook(sentry.CurrentHub())))
		}
	}

	bot, err := tgbind.FromEnv(nil, opts...)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		return 1
	}
	defer bot.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt := engine.NewRuntime(bot, chatID)
	pace := ratelimit.NewUnlimited()
	if *stepsPerMin > 0 {
		pace = ratelimit.New(*stepsPerMin, ratelimit.Per(time.Minute))
	}
	runner := engine.NewRunner(rt, pace, *maxMessages, logger)

	logger.Info("tgbind-smoke starting", "chat_id", chatID, "scenarios", len(scenarios))

	report := evidence.NewReport()
	for _, scenario := range scenarios {
		result := runner.Run(ctx, scenario)
		report.Add(result)
		if !result.Success {
			logger.Error("scenario failed", "name", scenario.Name, "error", result.Error)
		}
		if ctx.Err() != nil {
			break
		}
	}
	report.Finalize()

	if filename, err := report.Save(*reportDir); err != nil {
		logger.Error("failed to save report", "error", err)
	} else {
		logger.Info("report saved", "filename", filename)
	}

	fmt.Println("\n" + report.FormatSummary())

	if !report.Success {
		return 1
	}
	return 0
}
