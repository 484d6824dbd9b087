package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.AIEnabled())
	assert.Equal(t, 4, cfg.AI.Workers)
	assert.Equal(t, 60, cfg.AI.TimeoutSec)
	assert.Equal(t, 4, cfg.Orchestrator.Workers)
	assert.True(t, cfg.PenaltiesEnabled())
	assert.Equal(t, 500, cfg.Chunker.MaxChunkLines)
	assert.Equal(t, 30, cfg.Chunker.BundleMaxLines)
	assert.Equal(t, 60, cfg.Chunker.BundleWindowMin)
	assert.Equal(t, 3, cfg.Attendance.SessionsToKeep)
	assert.InDelta(t, 0.40, cfg.CQI.Weights.Effort, 1e-12)
}

func TestInitialize_OverridesMergeOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
ai:
  enabled: false
  workers: 8
cqi:
  penalties:
    enabled: false
chunker:
  max_chunk_lines: 250
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.False(t, cfg.AIEnabled())
	assert.Equal(t, 8, cfg.AI.Workers)
	assert.False(t, cfg.PenaltiesEnabled())
	assert.Equal(t, 250, cfg.Chunker.MaxChunkLines)

	// Untouched sections keep their defaults.
	assert.Equal(t, 4, cfg.Orchestrator.Workers)
	assert.Equal(t, 30, cfg.Chunker.BundleMaxLines)
}

func TestInitialize_RejectsBadWeightSum(t *testing.T) {
	dir := writeConfig(t, `
cqi:
  weights:
    effort: 0.50
    loc: 0.25
    temporal: 0.20
    ownership: 0.15
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestInitialize_WeightSumToleratesRounding(t *testing.T) {
	dir := writeConfig(t, `
cqi:
  weights:
    effort: 0.1
    loc: 0.2
    temporal: 0.3
    ownership: 0.4
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, cfg.CQI.Weights.Ownership, 1e-12)
}

func TestInitialize_RejectsNegativeWeight(t *testing.T) {
	dir := writeConfig(t, `
cqi:
  weights:
    effort: 1.15
    loc: 0.25
    temporal: 0.20
    ownership: -0.60
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitialize_RejectsZeroWorkers(t *testing.T) {
	dir := writeConfig(t, `
orchestrator:
  workers: 0
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "ai: [unclosed")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_AI_BASE_URL", "http://inference.local:8000/v1")
	dir := writeConfig(t, `
ai:
  base_url: "{{.TEST_AI_BASE_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://inference.local:8000/v1", cfg.AI.BaseURL)
}

func TestAPIKey(t *testing.T) {
	t.Setenv("TEST_FAIRLENS_KEY", "sk-test")

	cfg := DefaultConfig()
	cfg.AI.APIKeyEnv = "TEST_FAIRLENS_KEY"
	assert.Equal(t, "sk-test", cfg.APIKey())

	cfg.AI.APIKeyEnv = ""
	assert.Empty(t, cfg.APIKey())
}
