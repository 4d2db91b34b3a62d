package cmd

import (
	"context"
	"fmt"

	"github.com/lyra-docs/lyra/internal/audit"
	"github.com/lyra-docs/lyra/internal/config"
	"github.com/lyra-docs/lyra/internal/db"
	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/llm"
	"github.com/lyra-docs/lyra/internal/logger"
)

// loadConfig loads and validates the config, providing a user-friendly
// error, and applies its logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `lyra init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	if level != "" {
		if err := logger.SetLogLevel(level); err != nil {
			return nil, fmt.Errorf("invalid log_level: %w", err)
		}
	}
	logger.SetLogFormat(cfg.LogFormat)
	return cfg, nil
}

// createLLMProviderFromConfig creates the explainer's LLM provider,
// rate limited when rate_limit_rpm is set.
func createLLMProviderFromConfig(ctx context.Context, cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(ctx, string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	return llm.NewRateLimitedProvider(provider, cfg.RateLimitRPM), nil
}

// openHistory opens the explain history database named by history_db. It
// returns a nil store when history is disabled.
func openHistory(cfg *config.Config) (*audit.Store, func(), error) {
	if cfg.HistoryDB == "" {
		return nil, func() {}, nil
	}
	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return audit.NewStore(database), func() { database.Close() }, nil
}

// explainerFactory returns a constructor for explainers sharing provider
// and, when history is non-nil, recording each outcome.
func explainerFactory(cfg *config.Config, provider llm.Provider, history *audit.Store) func() *explainer.Explainer {
	opts := []explainer.Option{explainer.WithTimeout(cfg.ExplainTimeout)}
	if history != nil {
		opts = append(opts, explainer.WithRecorder(audit.NewRecorder(history)))
	}
	return func() *explainer.Explainer {
		return explainer.New(provider, cfg.Model, opts...)
	}
}
