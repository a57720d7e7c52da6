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
	"github.com/paydoc/payfix/internal/api"
	"github.com/paydoc/payfix/internal/config"
	"github.com/paydoc/payfix/internal/pipeline"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the payfix HTTP service",
	Long: `The serve command starts an HTTP server exposing the repair pipeline:
synchronous fixes at POST /api/fix, queued jobs at POST /api/fix/async
with status polling, and latency stats at GET /api/stats. Configuration
comes from the environment (PAYFIX_API_KEY, PORT, WORKER_COUNT, ...),
optionally seeded from a .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Best effort: absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg := config.Load()
	if policyFile != "" {
		cfg.PolicyFile = policyFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	policy, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		return err
	}
	cfg.Policy = policy

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orch := pipeline.NewOrchestrator(cfg, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
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

	log.Info("starting payfix", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
