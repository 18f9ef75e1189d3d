package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. GEODE_SEARCH_WORKERS
const EnvPrefix = "GEODE"

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Horizons HorizonsConfig `mapstructure:"horizons"`
	Product  ProductConfig  `mapstructure:"product"`
	Search   SearchConfig   `mapstructure:"search"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// HorizonsConfig holds the minutes each reduction searches for
type HorizonsConfig struct {
	// Horizon of the quality-level sum over all blueprints
	Quality int `mapstructure:"quality" validate:"min=0,max=64"`

	// Horizon of the product over the first blueprints
	Product int `mapstructure:"product" validate:"min=0,max=64"`
}

// ProductConfig controls the product reduction
type ProductConfig struct {
	// Number of leading blueprints multiplied together
	Count int `mapstructure:"count" validate:"min=1"`
}

// SearchConfig tunes the branch and bound
type SearchConfig struct {
	// Concurrent blueprint searches
	Workers int `mapstructure:"workers" validate:"min=1,max=1024"`

	// Skip producers that cannot help (leftover-yield and saturation rules)
	ProducerPruning bool `mapstructure:"producer_pruning"`

	// Stop each search after this many expansions (0 = unlimited)
	MaxExpansions int `mapstructure:"max_expansions" validate:"min=0"`
}

// MetricsConfig controls the Prometheus textfile output
type MetricsConfig struct {
	// Path written after each run; empty disables metrics
	File string `mapstructure:"file"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (geodes.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()
	registerDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("geodes")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine - env vars and defaults apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
