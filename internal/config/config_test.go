package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cfg.Scoring.Weights.Points, 0.001)
	assert.InDelta(t, 1.5, cfg.Scoring.Weights.Assists, 0.001)
	assert.InDelta(t, 1.2, cfg.Scoring.Weights.Rebounds, 0.001)
	assert.InDelta(t, 2.0, cfg.Scoring.Weights.Steals, 0.001)
	assert.InDelta(t, -1.0, cfg.Scoring.Weights.Turnovers, 0.001)
	assert.InDelta(t, 1.25, cfg.Scoring.Tiers.Elite, 0.001)
	assert.InDelta(t, 1.05, cfg.Scoring.Tiers.Strong, 0.001)
	assert.InDelta(t, 0.85, cfg.Scoring.Tiers.Average, 0.001)
	assert.Equal(t, "players.csv", cfg.Rank.Input)
	assert.Equal(t, "ranked_players.csv", cfg.Rank.Output)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrentFiles)
	assert.Equal(t, ".", cfg.Batch.OutDir)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.InDelta(t, 5.0, cfg.Server.RateLimit, 0.001)
	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
scoring:
  weights:
    steals: 3.0
  tiers:
    elite: 1.5
log:
  level: debug
  format: console
server:
  port: 9090
batch:
  max_concurrent_files: 8
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 3.0, cfg.Scoring.Weights.Steals, 0.001)
	assert.InDelta(t, 1.5, cfg.Scoring.Tiers.Elite, 0.001)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Batch.MaxConcurrentFiles)
	// Defaults still apply for unset values
	assert.InDelta(t, 1.0, cfg.Scoring.Weights.Points, 0.001)
	assert.InDelta(t, 1.05, cfg.Scoring.Tiers.Strong, 0.001)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
rank:
  output: game1.csv
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("STATLINE_LOG_LEVEL", "warn")
	t.Setenv("STATLINE_RANK_OUTPUT", "game2.csv")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "game2.csv", cfg.Rank.Output)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("STATLINE_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestValidateTierOrdering(t *testing.T) {
	cfg := &Config{}
	cfg.Scoring.Tiers = TierCutoffs{Elite: 0.9, Strong: 1.05, Average: 0.85}
	cfg.Batch.MaxConcurrentFiles = 4
	cfg.Server.Port = 8080

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tier cutoffs")
}

func TestValidateConcurrency(t *testing.T) {
	cfg := &Config{}
	cfg.Scoring.Tiers = TierCutoffs{Elite: 1.25, Strong: 1.05, Average: 0.85}
	cfg.Batch.MaxConcurrentFiles = 0
	cfg.Server.Port = 8080

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_concurrent_files")
}

func TestValidatePort(t *testing.T) {
	cfg := &Config{}
	cfg.Scoring.Tiers = TierCutoffs{Elite: 1.25, Strong: 1.05, Average: 0.85}
	cfg.Batch.MaxConcurrentFiles = 4
	cfg.Server.Port = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
