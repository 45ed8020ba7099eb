package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Token          string
	Debug          bool
	TimeoutSeconds int

	// Concurrency bounds how many updates are handled at once.
	Concurrency int
}

type UpdateHandler func(ctx context.Context, update tgbotapi.Update)

// Poller long-polls the Bot API and hands every update to a handler.
type Poller struct {
	api    *tgbotapi.BotAPI
	config Config
}

func NewPoller(config Config) (*Poller, error) {
	api, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	api.Debug = config.Debug
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = 60
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 8
	}
	return &Poller{api: api, config: config}, nil
}

// API exposes the client for sending messages.
func (p *Poller) API() *tgbotapi.BotAPI {
	return p.api
}

// Run blocks until ctx is cancelled and all in-flight handlers returned.
func (p *Poller) Run(ctx context.Context, handle UpdateHandler) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = p.config.TimeoutSeconds
	updates := p.api.GetUpdatesChan(updateConfig)

	zap.L().Info("telegram polling started", zap.String("bot", p.api.Self.UserName))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.config.Concurrency)

	for {
		select {
		case <-ctx.Done():
			p.api.StopReceivingUpdates()
			zap.L().Info("telegram polling stopped")
			return group.Wait()
		case update, ok := <-updates:
			if !ok {
				return group.Wait()
			}
			group.Go(func() error {
				handle(groupCtx, update)
				return nil
			})
		}
	}
}
