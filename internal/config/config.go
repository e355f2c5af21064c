package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Rank    RankConfig    `yaml:"rank" mapstructure:"rank"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ScoringConfig holds the score weights and tier cutoffs.
type ScoringConfig struct {
	Weights Weights     `yaml:"weights" mapstructure:"weights"`
	Tiers   TierCutoffs `yaml:"tiers" mapstructure:"tiers"`
}

// Weights are the per-metric multipliers for the performance score.
// Turnovers carry a negative weight so they subtract from the score.
type Weights struct {
	Points    float64 `yaml:"points" mapstructure:"points"`
	Assists   float64 `yaml:"assists" mapstructure:"assists"`
	Rebounds  float64 `yaml:"rebounds" mapstructure:"rebounds"`
	Steals    float64 `yaml:"steals" mapstructure:"steals"`
	Turnovers float64 `yaml:"turnovers" mapstructure:"turnovers"`
}

// TierCutoffs are multipliers against the batch average score. A score of
// at least Elite×avg is Elite, at least Strong×avg is Strong, at least
// Average×avg is Average, anything below is Developing.
type TierCutoffs struct {
	Elite   float64 `yaml:"elite" mapstructure:"elite"`
	Strong  float64 `yaml:"strong" mapstructure:"strong"`
	Average float64 `yaml:"average" mapstructure:"average"`
}

// RankConfig holds defaults for the rank command.
type RankConfig struct {
	Input  string `yaml:"input" mapstructure:"input"`
	Output string `yaml:"output" mapstructure:"output"`
}

// BatchConfig configures multi-file batch processing.
type BatchConfig struct {
	MaxConcurrentFiles int    `yaml:"max_concurrent_files" mapstructure:"max_concurrent_files"`
	OutDir             string `yaml:"out_dir" mapstructure:"out_dir"`
}

// ServerConfig configures the upload server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
	RateLimit      float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst      int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("STATLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("scoring.weights.points", 1.0)
	v.SetDefault("scoring.weights.assists", 1.5)
	v.SetDefault("scoring.weights.rebounds", 1.2)
	v.SetDefault("scoring.weights.steals", 2.0)
	v.SetDefault("scoring.weights.turnovers", -1.0)
	v.SetDefault("scoring.tiers.elite", 1.25)
	v.SetDefault("scoring.tiers.strong", 1.05)
	v.SetDefault("scoring.tiers.average", 0.85)
	v.SetDefault("rank.input", "players.csv")
	v.SetDefault("rank.output", "ranked_players.csv")
	v.SetDefault("batch.max_concurrent_files", 4)
	v.SetDefault("batch.out_dir", ".")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks configuration invariants that Load cannot express.
func (c *Config) Validate() error {
	t := c.Scoring.Tiers
	if t.Elite < t.Strong || t.Strong < t.Average {
		return eris.Errorf("config: tier cutoffs must be ordered elite >= strong >= average, got %.2f/%.2f/%.2f",
			t.Elite, t.Strong, t.Average)
	}
	if c.Batch.MaxConcurrentFiles < 1 {
		return eris.Errorf("config: batch.max_concurrent_files must be >= 1, got %d", c.Batch.MaxConcurrentFiles)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return eris.Errorf("config: server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
