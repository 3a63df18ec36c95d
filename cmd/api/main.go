package main

import (
	"os"

	"github.com/ethanbaker/notion-records/internal/api"
	health_module "github.com/ethanbaker/notion-records/internal/api/modules/health"
	"github.com/ethanbaker/notion-records/internal/events"
	"github.com/ethanbaker/notion-records/internal/notion"
	"github.com/ethanbaker/notion-records/internal/records"
	"github.com/ethanbaker/notion-records/internal/stores/audit"
	"github.com/ethanbaker/notion-records/pkg/utils"
)

// Start the API server
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)
	logger := utils.NewLogger(cfg)

	// Notion client
	client, err := notion.NewClient(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create notion client")
	}
	databaseID := cfg.Get("NOTION_DATABASE_ID")

	// Default field values
	defaults := records.DefaultValues()
	if path := cfg.Get("RECORDS_DEFAULTS_PATH"); path != "" {
		if defaults, err = records.LoadDefaults(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("failed to load record defaults, using built-in values")
		}
	}

	// Operation journal
	auditStore, err := audit.NewStoreFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open audit store")
	}
	defer auditStore.Close()

	// Record change events
	publisher, err := events.NewPublisherFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect event publisher")
	}
	defer publisher.Close()

	// Database reachability check
	monitor := health_module.NewMonitor(client, databaseID, logger)
	if err := monitor.Start(cfg.GetWithDefault("HEALTH_CHECK_CRON", health_module.DEFAULT_CHECK_SPEC)); err != nil {
		logger.Fatal().Err(err).Msg("failed to start health check")
	}
	defer monitor.Stop()

	// Start
	if err := api.Start(cfg, api.Dependencies{
		Accessor: records.NewAccessor(client, databaseID, defaults, logger),
		Audit:    auditStore,
		Events:   publisher,
		Monitor:  monitor,
		Logger:   logger,
	}); err != nil {
		logger.Error().Err(err).Msg("API server stopped")
	}
}
