// Aushadhi fulfillment server — provides the conversational HTTP API,
// runs the agent pipeline, and streams agent timelines over WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arogya-labs/aushadhi/pkg/agent"
	"github.com/arogya-labs/aushadhi/pkg/agent/orchestrator"
	"github.com/arogya-labs/aushadhi/pkg/api"
	"github.com/arogya-labs/aushadhi/pkg/bus"
	"github.com/arogya-labs/aushadhi/pkg/config"
	"github.com/arogya-labs/aushadhi/pkg/confirm"
	"github.com/arogya-labs/aushadhi/pkg/database"
	"github.com/arogya-labs/aushadhi/pkg/fusion"
	"github.com/arogya-labs/aushadhi/pkg/llm"
	"github.com/arogya-labs/aushadhi/pkg/risk"
	"github.com/arogya-labs/aushadhi/pkg/store"
	"github.com/arogya-labs/aushadhi/pkg/subscriber"
	"github.com/arogya-labs/aushadhi/pkg/trace"
	"github.com/arogya-labs/aushadhi/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	logger := slog.Default()

	// Load .env from the config directory; absence is fine.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		logger.Warn("could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		logger.Info("loaded environment", "path", envPath)
	}

	logger.Info("starting aushadhi",
		"version", version.Full(),
		"config_dir", *configDir)

	cfg, err := config.Initialize(*configDir)
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database: connect, migrate, index.
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("database configuration failed", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	st := store.New(dbClient.Client)

	// Event bus and its subscribers.
	events := bus.New()
	subscriber.NewAuditLogger(logger).Register(events)
	subscriber.NewRefillPredictor(st, logger).Register(events)

	// Trace manager with the fusion registry observing every event.
	fusions := fusion.NewRegistry()
	traces := trace.NewManager(
		trace.WithObserverFactory(fusions.ObserverFactory()),
		trace.WithPacing(trace.Pacing{
			Started:   cfg.Pipeline.TracePauseStarted.Std(0),
			Running:   cfg.Pipeline.TracePauseRunning.Std(0),
			Completed: cfg.Pipeline.TracePauseCompleted.Std(0),
		}),
	)

	// Confirmation gate.
	confirmations := confirm.NewStore(logger,
		confirm.WithTTL(cfg.Pipeline.ConfirmationTTL.Std(confirm.DefaultTTL)))
	confirmations.StartSweeper(ctx, cfg.Pipeline.ConfirmSweep.Std(0))
	defer confirmations.Stop()

	// Agents. External model adapters are optional; the built-in
	// keyword and rule implementations carry the pipeline without them.
	scorer := risk.NewScorer(risk.Catalog{
		Controlled:     cfg.Clinical.ControlledSubstances,
		AbusePotential: cfg.Clinical.AbusePotential,
	})
	rules := agent.ValidationRules{
		PrescriptionValidityDays: cfg.Clinical.PrescriptionValidityDays,
		MaxDailyDoseMg:           cfg.Clinical.MaxDailyDoseMg,
		ScheduleX:                cfg.Clinical.ScheduleX,
		ScheduleH:                cfg.Clinical.ScheduleH,
		ScheduleH1:               cfg.Clinical.ScheduleH1,
		Steroids:                 cfg.Clinical.Steroids,
	}

	orch := orchestrator.New(orchestrator.Config{
		Risk:          agent.NewRiskAgent(scorer, st, traces, logger),
		Validator:     agent.NewValidator(nil, nil, rules, traces, logger),
		Inventory:     agent.NewInventoryAgent(st, traces, logger),
		Fulfillment:   agent.NewFulfillmentAgent(st, events, traces, logger),
		Store:         st,
		Confirmations: confirmations,
		Events:        events,
		Traces:        traces,
		Fusions:       fusions,
		Logger:        logger,
	})
	turner := orchestrator.NewTurner(orch, llm.NewKeywordClassifier(), llm.NewKeywordExtractor())

	// HTTP server.
	httpServer := api.NewServer(api.Deps{
		Config:        cfg,
		DB:            dbClient,
		Store:         st,
		Turner:        turner,
		Orchestrator:  orch,
		Confirmations: confirmations,
		Traces:        traces,
		Fusions:       fusions,
		Events:        events,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("http server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			errCh <- err
		}
	}()

	logger.Info("aushadhi started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error triggered shutdown", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		cfg.Server.ShutdownTimeout.Std(0))
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown incomplete", "error", err)
	}

	logger.Info("aushadhi stopped")
}
