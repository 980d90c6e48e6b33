package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnflow/gateway/internal/config"
	"github.com/learnflow/gateway/internal/database"
	"github.com/learnflow/gateway/internal/handler"
	"github.com/learnflow/gateway/internal/logger"
	"github.com/learnflow/gateway/internal/router"
	"github.com/learnflow/gateway/internal/service"
	"github.com/learnflow/gateway/internal/session"
	"github.com/learnflow/gateway/internal/upstream"
	"github.com/learnflow/gateway/internal/validator"
	"github.com/learnflow/gateway/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("backend", cfg.BackendBaseURL).
		Msg("Starting LearnFlow Gateway")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Session Stores ────────────────────────────────────────────────
	// Durable store: Redis when configured, else a local JSON file. The
	// in-process mirror serves the request path; the sync worker keeps the
	// two converged.
	var durable session.Store
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		durable = session.NewRedisStore(rdb, time.Duration(cfg.CookieMaxAge)*time.Second)
	} else {
		durable = session.NewFileStore(cfg.SessionFile)
	}
	mirror := session.NewMemoryStore()

	// ─── Upstream Client & Services ────────────────────────────────────
	client := upstream.NewClient(cfg.BackendBaseURL, log)
	authService := service.NewAuthService(client, durable, log)

	cookie := session.CookiePolicy{
		MaxAge:   cfg.CookieMaxAge,
		Secure:   cfg.CookieSecure,
		HTTPOnly: cfg.CookieHTTPOnly,
	}

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService, client, cookie),
		Page:      handler.NewPageHandler(client),
		Exercise:  handler.NewExerciseHandler(client),
		Quiz:      handler.NewQuizHandler(client),
		Chat:      handler.NewChatHandler(client),
		Analytics: handler.NewAnalyticsHandler(client),
		WS:        handler.NewWSHandler(client, mirror, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ──────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	syncWorker := worker.NewSessionSyncWorker(durable, mirror, cfg.SyncInterval, log)
	go syncWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
