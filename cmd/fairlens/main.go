// Fairlens server — analyzes student team repositories for
// collaboration quality and streams results to the dashboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fairlens/fairlens/pkg/api"
	"github.com/fairlens/fairlens/pkg/attendance"
	"github.com/fairlens/fairlens/pkg/chunker"
	"github.com/fairlens/fairlens/pkg/config"
	"github.com/fairlens/fairlens/pkg/cqi"
	"github.com/fairlens/fairlens/pkg/database"
	"github.com/fairlens/fairlens/pkg/events"
	"github.com/fairlens/fairlens/pkg/fairness"
	"github.com/fairlens/fairlens/pkg/gitload"
	"github.com/fairlens/fairlens/pkg/orchestrator"
	"github.com/fairlens/fairlens/pkg/platform"
	"github.com/fairlens/fairlens/pkg/prefilter"
	"github.com/fairlens/fairlens/pkg/rater"
	"github.com/fairlens/fairlens/pkg/services"
	"github.com/fairlens/fairlens/pkg/state"
	"github.com/fairlens/fairlens/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// eventCleanupInterval is how often expired events are pruned.
const eventCleanupInterval = 6 * time.Hour

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting fairlens", "version", version.Full(), "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Demote runs orphaned by a previous crash so they resume on the
	// next stream attach instead of blocking as RUNNING forever.
	stateService := state.NewService(dbClient.Client)
	if n, err := stateService.PromoteRunningToPaused(ctx); err != nil {
		slog.Error("Failed to demote orphaned runs", "error", err)
	} else if n > 0 {
		slog.Info("Demoted orphaned runs to paused", "count", n)
	}

	// 4. Domain services
	teamService := services.NewTeamService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	emailService := services.NewEmailMappingService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Streaming infrastructure
	eventPublisher := events.NewPublisher(dbClient.DB())
	subscriberManager := events.NewSubscriberManager(events.NewEventServiceAdapter(eventService))

	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), subscriberManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	subscriberManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Per-team analysis pipeline
	repoCache := gitload.NewCache(cfg.Git.CacheDir,
		os.Getenv("FAIRLENS_GIT_USERNAME"), os.Getenv("FAIRLENS_GIT_TOKEN"))

	filter, err := prefilter.New(cfg.Prefilter.GeneratedFilePatterns, cfg.Prefilter.TrivialMessagePatterns)
	if err != nil {
		slog.Error("Invalid prefilter patterns", "error", err)
		os.Exit(1)
	}

	raterClient := rater.NewClient(rater.ClientConfig{
		BaseURL:    cfg.AI.BaseURL,
		APIKey:     cfg.APIKey(),
		Model:      cfg.AI.Model,
		TimeoutSec: cfg.AI.TimeoutSec,
	})
	chunkRater := rater.New(raterClient, rater.Config{
		Enabled: cfg.AIEnabled(),
		Workers: cfg.AI.Workers,
		Model:   cfg.AI.Model,
	})

	analyzer := fairness.New(fairness.Deps{
		Repos: repoCache,
		Chunker: chunker.New(chunker.Config{
			MaxChunkLines:  cfg.Chunker.MaxChunkLines,
			BundleMaxLines: cfg.Chunker.BundleMaxLines,
			BundleWindow:   time.Duration(cfg.Chunker.BundleWindowMin) * time.Minute,
		}),
		Filter:     filter,
		Rater:      chunkRater,
		Calculator: cqi.New(cfg.CQI.Weights.ComponentWeights(), cfg.PenaltiesEnabled()),
	})

	// 7. Orchestrator
	attendanceStore := attendance.NewStore()
	runner := orchestrator.New(orchestrator.Deps{
		Platform:   platform.NewClient(time.Duration(cfg.Platform.TimeoutSec) * time.Second),
		Analyzer:   analyzer,
		Teams:      teamService,
		State:      stateService,
		Events:     eventPublisher,
		Janitor:    eventService,
		Mappings:   emailService,
		Attendance: attendanceStore,
		Workers:    cfg.Orchestrator.Workers,
	})

	// 8. Event retention
	cleanupCtx, cleanupCancel := context.WithCancel(ctx)
	defer cleanupCancel()
	go runEventCleanup(cleanupCtx, eventService, cfg.Retention.EventTTLDays)

	// 9. HTTP server
	httpServer := api.NewServer(api.Deps{
		Runner:     runner,
		Status:     stateService,
		Results:    teamService,
		Events:     subscriberManager,
		Attendance: attendanceStore,
		DB:         dbClient,
		Config:     cfg,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Fairlens started successfully",
		"workers", cfg.Orchestrator.Workers,
		"ai_enabled", cfg.AIEnabled())

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown. In-flight runs keep their RUNNING row; the
	// startup demotion pauses them on the next boot and the stream
	// resumes from persisted progress.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// runEventCleanup prunes expired events on a fixed interval.
func runEventCleanup(ctx context.Context, eventService *services.EventService, ttlDays int) {
	if ttlDays < 1 {
		return
	}
	ticker := time.NewTicker(eventCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := eventService.CleanupOldEvents(ctx, ttlDays)
			if err != nil {
				slog.Error("Event cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Pruned expired events", "count", n, "ttl_days", ttlDays)
			}
		}
	}
}
