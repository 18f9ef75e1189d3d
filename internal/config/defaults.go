package config

import (
	"runtime"

	"github.com/spf13/viper"
)

const (
	DefaultQualityHorizon = 24
	DefaultProductHorizon = 32
	DefaultProductCount   = 3
)

// registerDefaults makes every key known to viper so env overrides apply
// even without a config file
func registerDefaults(v *viper.Viper) {
	v.SetDefault("horizons.quality", DefaultQualityHorizon)
	v.SetDefault("horizons.product", DefaultProductHorizon)
	v.SetDefault("product.count", DefaultProductCount)
	v.SetDefault("search.workers", 0)
	v.SetDefault("search.producer_pruning", true)
	v.SetDefault("search.max_expansions", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("metrics.file", "")
}

// SetDefaults fills zero values that have a non-zero default
func SetDefaults(cfg *Config) {
	if cfg.Horizons.Quality == 0 {
		cfg.Horizons.Quality = DefaultQualityHorizon
	}
	if cfg.Horizons.Product == 0 {
		cfg.Horizons.Product = DefaultProductHorizon
	}
	if cfg.Product.Count == 0 {
		cfg.Product.Count = DefaultProductCount
	}
	if cfg.Search.Workers == 0 {
		cfg.Search.Workers = runtime.NumCPU()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	cfg := &Config{Search: SearchConfig{ProducerPruning: true}}
	SetDefaults(cfg)
	return cfg
}
