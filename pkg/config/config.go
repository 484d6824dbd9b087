// Package config loads and validates the fairlens.yaml configuration.
package config

import "github.com/fairlens/fairlens/pkg/models"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	Server       ServerConfig       `yaml:"server"`
	Platform     PlatformConfig     `yaml:"platform"`
	AI           AIConfig           `yaml:"ai"`
	Orchestrator OrchestratorConfig `yaml:"orchestrator"`
	CQI          CQIConfig          `yaml:"cqi"`
	Chunker      ChunkerConfig      `yaml:"chunker"`
	Prefilter    PrefilterConfig    `yaml:"prefilter"`
	Git          GitConfig          `yaml:"git"`
	Attendance   AttendanceConfig   `yaml:"attendance"`
	Retention    RetentionConfig    `yaml:"retention"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// PlatformConfig holds the exercise platform connection settings. The
// JWT arrives per request from the browser cookie; only the base URL
// lives in configuration.
type PlatformConfig struct {
	BaseURL    string `yaml:"base_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// AIConfig holds the effort-rater LLM settings. APIKeyEnv names the
// environment variable carrying the key; the key itself never appears
// in YAML.
type AIConfig struct {
	Enabled    *bool  `yaml:"enabled"`
	Model      string `yaml:"model"`
	BaseURL    string `yaml:"base_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
	Workers    int    `yaml:"workers"`
	APIKeyEnv  string `yaml:"api_key_env"`
}

// OrchestratorConfig holds the pipeline worker pool settings.
type OrchestratorConfig struct {
	Workers int `yaml:"workers"`
}

// CQIConfig holds scoring weights and penalty switches.
type CQIConfig struct {
	Weights   WeightsConfig   `yaml:"weights"`
	Penalties PenaltiesConfig `yaml:"penalties"`
}

// WeightsConfig holds the component weights. The four primary weights
// must sum to 1.0; pair_programming joins the set only for two-person
// teams with a found attendance record, after which all five are
// re-normalized.
type WeightsConfig struct {
	Effort          float64 `yaml:"effort"`
	Loc             float64 `yaml:"loc"`
	Temporal        float64 `yaml:"temporal"`
	Ownership       float64 `yaml:"ownership"`
	PairProgramming float64 `yaml:"pair_programming"`
}

// ComponentWeights converts the YAML weights into the scoring model.
func (w WeightsConfig) ComponentWeights() models.ComponentWeights {
	return models.ComponentWeights{
		Effort:          w.Effort,
		Loc:             w.Loc,
		Temporal:        w.Temporal,
		Ownership:       w.Ownership,
		PairProgramming: w.PairProgramming,
	}
}

// PenaltiesConfig switches penalty application. Penalty structures are
// always computed and reported; only the multiplication is gated.
type PenaltiesConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// ChunkerConfig holds commit splitting and bundling thresholds.
type ChunkerConfig struct {
	MaxChunkLines   int `yaml:"max_chunk_lines"`
	BundleMaxLines  int `yaml:"bundle_max_lines"`
	BundleWindowMin int `yaml:"bundle_window_min"`
}

// PrefilterConfig holds the pre-filter pattern lists. Empty lists keep
// the built-in defaults.
type PrefilterConfig struct {
	GeneratedFilePatterns  []string `yaml:"generated_file_patterns"`
	TrivialMessagePatterns []string `yaml:"trivial_message_patterns"`
}

// GitConfig holds repository cache settings.
type GitConfig struct {
	CacheDir string `yaml:"cache_dir"`
}

// AttendanceConfig holds attendance parsing settings.
type AttendanceConfig struct {
	SessionsToKeep int `yaml:"sessions_to_keep"`
}

// RetentionConfig holds event stream housekeeping settings.
type RetentionConfig struct {
	EventTTLDays int `yaml:"event_ttl_days"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// PenaltiesEnabled reports whether CQI penalties multiply the base
// score. Defaults to true when unset.
func (c *Config) PenaltiesEnabled() bool {
	if c.CQI.Penalties.Enabled == nil {
		return true
	}
	return *c.CQI.Penalties.Enabled
}

// AIEnabled reports whether the effort rater calls the LLM. Defaults to
// true when unset.
func (c *Config) AIEnabled() bool {
	if c.AI.Enabled == nil {
		return true
	}
	return *c.AI.Enabled
}

// DefaultConfig returns the built-in defaults; user YAML is merged on top.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Platform: PlatformConfig{
			TimeoutSec: 30,
		},
		AI: AIConfig{
			Model:      "gpt-4o-mini",
			BaseURL:    "https://api.openai.com/v1",
			TimeoutSec: 60,
			Workers:    4,
			APIKeyEnv:  "FAIRLENS_AI_API_KEY",
		},
		Orchestrator: OrchestratorConfig{
			Workers: 4,
		},
		CQI: CQIConfig{
			Weights: WeightsConfig{
				Effort:          0.40,
				Loc:             0.25,
				Temporal:        0.20,
				Ownership:       0.15,
				PairProgramming: 0.10,
			},
		},
		Chunker: ChunkerConfig{
			MaxChunkLines:   500,
			BundleMaxLines:  30,
			BundleWindowMin: 60,
		},
		Git: GitConfig{
			CacheDir: "./repo-cache",
		},
		Attendance: AttendanceConfig{
			SessionsToKeep: 3,
		},
		Retention: RetentionConfig{
			EventTTLDays: 7,
		},
	}
}
