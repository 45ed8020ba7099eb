package main

import (
	"context"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"creatingtasks/internal/adapter/telegram"
	"creatingtasks/internal/bot"
)

const shutdownTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load(".env")

	flags := flag.NewFlagSet("bot", flag.ExitOnError)
	token := flags.String("token", os.Getenv("TELEGRAM_BOT_TOKEN"), "Telegram bot token (TELEGRAM_BOT_TOKEN)")
	apiBaseURL := flags.String("api-base-url", envOrDefault("API_BASE_URL", "http://localhost:8080/api"), "REST API base URL including /api (API_BASE_URL)")
	concurrency := flags.Int("concurrency", 8, "updates handled in parallel")
	debug := flags.Bool("debug", false, "log Bot API traffic")
	_ = flags.Parse(os.Args[1:])

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	if *token == "" {
		logger.Fatal("telegram bot token is required")
	}

	poller, err := telegram.NewPoller(telegram.Config{
		Token:       *token,
		Debug:       *debug,
		Concurrency: *concurrency,
	})
	if err != nil {
		logger.Fatal("failed to start telegram poller", zap.Error(err))
	}

	chatBot := bot.New(poller.API(), bot.NewAPIClient(*apiBaseURL, nil), bot.NewSessionStore())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx, chatBot.HandleUpdate) }()

	wait := gfshutdown.GracefulShutdown(context.Background(), shutdownTimeout, map[string]gfshutdown.Operation{
		"telegram": func(ctx context.Context) error {
			cancel()
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	exitCode := <-wait
	logger.Info("bot exited", zap.Int("code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
