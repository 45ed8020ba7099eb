package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"creatingtasks/pkg/translator"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"creatingtasks/internal/adapter/auth"
	dbadapter "creatingtasks/internal/adapter/db"
	httpadapter "creatingtasks/internal/adapter/http"
	"creatingtasks/internal/adapter/http/handlers"
	"creatingtasks/internal/adapter/http/mapper"
	httpmiddleware "creatingtasks/internal/adapter/http/middleware"
	"creatingtasks/internal/adapter/realtime"
	appservice "creatingtasks/internal/app/service"
	"creatingtasks/internal/config"
	"creatingtasks/internal/core/domain"
)

const (
	shutdownTimeout = 30 * time.Second
	relayRetryDelay = 5 * time.Second
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageRu},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	keys, err := auth.NewKeyGenerator()
	if err != nil {
		logger.Fatal("failed to create key generator", zap.Error(err))
	}
	sessions := auth.NewJWTManager(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		TTL:       cfg.JWTTTL,
		Issuer:    "creatingtasks",
	})

	userRepository := dbadapter.NewUserRepository(db)
	taskListRepository := dbadapter.NewTaskListRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)

	userService := appservice.NewUserService(userRepository, dbadapter.NewTokenRepository(db), auth.NewPasswordHasher(), keys)
	taskListService := appservice.NewTaskListService(taskListRepository, userRepository)

	hub := realtime.NewHub(realtime.DefaultHubConfig(), realtime.GroupAuthorizer(taskListService))
	var publisher realtime.Publisher = hub
	var relay *realtime.RedisRelay
	if redisClient != nil {
		relay = realtime.NewRedisRelay(redisClient, cfg.RedisChannelPrefix, hub)
		publisher = relay
	}
	events := realtime.NewEvents(publisher, realtime.Encoders{
		Task:         func(task domain.Task) any { return mapper.ToTaskItem(task, time.Now()) },
		Notification: func(n domain.Notification) any { return mapper.ToNotificationItem(n) },
	})

	notificationService := appservice.NewNotificationService(dbadapter.NewNotificationRepository(db), userRepository, events)
	taskService := appservice.NewTaskService(taskRepository, taskListRepository, notificationService, events)
	commentService := appservice.NewCommentService(dbadapter.NewCommentRepository(db), taskRepository, taskListRepository, notificationService)
	reminder := appservice.NewDueReminder(appservice.DueReminderConfig{
		Interval: cfg.DueReminderInterval,
		Window:   cfg.DueReminderWindow,
	}, taskRepository, notificationService)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, redisClient).WithConnections(hub),
		Auth: handlers.NewAuthHandler(userService, sessions, handlers.CookieConfig{
			Name:   cfg.SessionCookieName,
			Secure: cfg.SessionCookieSecure,
		}),
		TaskLists:     handlers.NewTaskListHandler(taskListService),
		Tasks:         handlers.NewTaskHandler(taskService),
		Comments:      handlers.NewCommentHandler(commentService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		WebSocket: handlers.NewWebSocketHandler(hub, publisher, handlers.WebSocketConfig{
			AllowedOrigins: cfg.WSAllowedOrigins,
		}),
	}, httpadapter.AuthDeps{
		Users:             userService,
		Sessions:          sessions,
		SessionCookieName: cfg.SessionCookieName,
	})

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	workers, workersCtx := errgroup.WithContext(ctx)
	workers.Go(func() error { return reminder.Run(workersCtx) })
	if relay != nil {
		// The relay retries on its own; a Redis outage must not cancel the reminder.
		workers.Go(func() error {
			relay.Serve(workersCtx, relayRetryDelay)
			return nil
		})
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(context.Background(), shutdownTimeout, map[string]gfshutdown.Operation{
		// Pools close only after in-flight requests and workers are done.
		"api": inOrder(
			shutdownStep{name: "http", run: func(ctx context.Context) error {
				hub.Close()
				return server.Shutdown(ctx)
			}},
			shutdownStep{name: "workers", run: func(context.Context) error {
				cancel()
				return workers.Wait()
			}},
			shutdownStep{name: "redis", run: func(context.Context) error {
				if redisClient == nil {
					return nil
				}
				return redisClient.Close()
			}},
			shutdownStep{name: "mysql", run: func(context.Context) error {
				return db.Close()
			}},
		),
	})

	exitCode := <-wait
	logger.Info("server exited", zap.Int("code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}
