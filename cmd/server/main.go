package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/talkvault/meetgest/internal/analyze"
	"github.com/talkvault/meetgest/internal/api"
	"github.com/talkvault/meetgest/internal/config"
	"github.com/talkvault/meetgest/internal/lang"
	"github.com/talkvault/meetgest/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Language capability: model sidecar when configured, rule fallbacks otherwise.
	provider := lang.Unavailable()
	if cfg.LangSidecarURL != "" {
		url := cfg.LangSidecarURL
		provider = lang.NewProvider(func() (lang.Capability, error) {
			return lang.Dial(url)
		}, log)
	}

	engine := analyze.NewEngine(provider, cfg.MaxTextBytes, cfg.StatsWindow, log)

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, engine, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting meetgest", "port", cfg.Port, "sidecar", cfg.LangSidecarURL != "")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
