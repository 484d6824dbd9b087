package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

const configFileName = "fairlens.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read fairlens.yaml from configDir (a missing file keeps defaults)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse YAML and merge over built-in defaults
//  4. Validate weights and worker counts
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := DefaultConfig()
	cfg.configDir = configDir

	loaded, err := loadYAML(filepath.Join(configDir, configFileName))
	if err != nil {
		return nil, NewLoadError(configFileName, err)
	}
	if loaded != nil {
		if err := mergo.Merge(cfg, loaded, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"ai_enabled", cfg.AIEnabled(),
		"ai_model", cfg.AI.Model,
		"orchestrator_workers", cfg.Orchestrator.Workers,
		"penalties_enabled", cfg.PenaltiesEnabled())

	return cfg, nil
}

// loadYAML reads and parses one config file. A missing file returns
// (nil, nil) so defaults apply.
func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file found, using defaults", "path", path)
			return nil, nil
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

const weightTolerance = 1e-9

func validate(cfg *Config) error {
	w := cfg.CQI.Weights
	for name, v := range map[string]float64{
		"effort":           w.Effort,
		"loc":              w.Loc,
		"temporal":         w.Temporal,
		"ownership":        w.Ownership,
		"pair_programming": w.PairProgramming,
	} {
		if v < 0 {
			return NewValidationError("cqi", "weights", name, ErrInvalidValue)
		}
	}

	// The four primary weights are the active set; pair_programming joins
	// conditionally and the set is re-normalized, so it is excluded here.
	sum := w.Effort + w.Loc + w.Temporal + w.Ownership
	if diff := sum - 1.0; diff > weightTolerance || diff < -weightTolerance {
		return NewValidationError("cqi", "weights", fmt.Sprintf("sum=%v", sum), ErrInvalidWeights)
	}

	if cfg.AI.Workers < 1 {
		return NewValidationError("ai", "workers", fmt.Sprintf("%d", cfg.AI.Workers), ErrInvalidValue)
	}
	if cfg.AI.TimeoutSec < 1 {
		return NewValidationError("ai", "timeout_sec", fmt.Sprintf("%d", cfg.AI.TimeoutSec), ErrInvalidValue)
	}
	if cfg.AIEnabled() && cfg.AI.BaseURL == "" {
		return NewValidationError("ai", "base_url", "", ErrMissingRequiredField)
	}
	if cfg.Platform.TimeoutSec < 1 {
		return NewValidationError("platform", "timeout_sec", fmt.Sprintf("%d", cfg.Platform.TimeoutSec), ErrInvalidValue)
	}
	if cfg.Orchestrator.Workers < 1 {
		return NewValidationError("orchestrator", "workers", fmt.Sprintf("%d", cfg.Orchestrator.Workers), ErrInvalidValue)
	}
	if cfg.Chunker.MaxChunkLines < 1 || cfg.Chunker.BundleMaxLines < 0 || cfg.Chunker.BundleWindowMin < 0 {
		return NewValidationError("chunker", "limits", "", ErrInvalidValue)
	}
	if cfg.Attendance.SessionsToKeep < 1 {
		return NewValidationError("attendance", "sessions_to_keep", fmt.Sprintf("%d", cfg.Attendance.SessionsToKeep), ErrInvalidValue)
	}
	if cfg.Git.CacheDir == "" {
		return NewValidationError("git", "cache_dir", "", ErrMissingRequiredField)
	}
	return nil
}

// APIKey resolves the AI API key from the configured environment
// variable. Empty when unset; the rater then sends unauthenticated
// requests, which suits local inference servers.
func (c *Config) APIKey() string {
	if c.AI.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.AI.APIKeyEnv)
}
