package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/vocabdrill/internal/api"
	"github.com/remaimber-it/vocabdrill/internal/infrastructure/config"
	"github.com/remaimber-it/vocabdrill/internal/reading"
	"github.com/remaimber-it/vocabdrill/internal/service"
	"github.com/remaimber-it/vocabdrill/internal/speech"
	"github.com/remaimber-it/vocabdrill/internal/store"
	"github.com/remaimber-it/vocabdrill/internal/worker"

	_ "github.com/remaimber-it/vocabdrill/docs" // generated swagger docs
)

// @title           Vocabdrill API
// @version         1.0
// @description     Vocabulary collection and interactive quiz sessions.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	annotator, err := reading.New()
	if err != nil {
		logger.Warn("reading dictionary unavailable, readings must be supplied", "error", err)
	}

	var synth speech.Synthesizer = speech.NewLogSynthesizer(logger)
	if cfg.SpeechURL != "" {
		synth = speech.NewHTTPSynthesizer(cfg.SpeechURL)
	}
	speechPool := worker.NewPool(cfg.SpeechWorkers, cfg.SpeechQueue)
	speechPool.OnDone(func(id string) { logger.Debug("speech job done", "job", id) })
	bgCtx, stopBackground := context.WithCancel(context.Background())
	speechPool.Start(bgCtx)
	announcer := speech.NewAnnouncer(speechPool, synth, logger)

	sessions := service.NewSessionService(db, announcer, cfg.Quiz(), logger)
	go sessions.SweepIdle(bgCtx, cfg.SessionSweep, cfg.SessionIdleTimeout)
	handler := api.NewHandler(db, sessions, annotator, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORSAllowedOrigins)(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server", "live_sessions", sessions.Count())
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}

	speechPool.Close()
	stopBackground()
}
