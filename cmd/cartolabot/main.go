package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/omarshaarawi/cartolabot/internal/api/cartola"
	"github.com/omarshaarawi/cartolabot/internal/bot"
	"github.com/omarshaarawi/cartolabot/internal/config"
	"github.com/omarshaarawi/cartolabot/internal/repository"
	"github.com/omarshaarawi/cartolabot/internal/repository/memory"
	redisrepo "github.com/omarshaarawi/cartolabot/internal/repository/redis"
	"github.com/omarshaarawi/cartolabot/internal/scheduler"
	"github.com/omarshaarawi/cartolabot/internal/service"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	cartolaClient := cartola.NewClient(cfg.CartolaAPI)
	cartolaService := service.NewCartolaService(cartolaClient)

	subscriptions, closeRepo, err := newSubscriptions(cfg.Redis)
	if err != nil {
		return err
	}
	defer closeRepo()

	if cfg.TelegramBot.ChatID != 0 {
		if err := subscriptions.Subscribe(context.Background(), cfg.TelegramBot.ChatID); err != nil {
			slog.Error("Error subscribing default chat", "chat_id", cfg.TelegramBot.ChatID, "error", err)
		}
	}

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, cartolaService, subscriptions)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(cartolaService, subscriptions, telegramBot.SendMessageTo, cfg.Server.Timezone, cfg.CartolaAPI.PlayersTTL)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: newRouter(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
	}

	return nil
}

func newSubscriptions(cfg config.Redis) (repository.Subscriptions, func(), error) {
	if cfg.Addr == "" {
		slog.Info("Using in-memory subscriptions")
		return memory.NewRepository(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}

	slog.Info("Using redis subscriptions", "addr", cfg.Addr)
	return redisrepo.NewRepository(client, ""), func() { client.Close() }, nil
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", healthCheckHandler)
	r.Get("/healthz", healthCheckHandler)
	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
