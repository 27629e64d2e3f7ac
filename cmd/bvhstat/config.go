package main

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/kostinio/bvh/internal/errors"
)

// Config is populated from the environment (and an optional .env file).
type Config struct {
	// Workers is the worker count for the extraction pass; 0 means one per CPU
	Workers int `envconfig:"BVH_WORKERS" default:"0"`
	// Threshold is the primitive count below which extraction runs inline
	Threshold int `envconfig:"BVH_PARALLEL_THRESHOLD" default:"0"`
	// LogLevel is the minimum log level: debug, info, warn, error
	LogLevel string `envconfig:"BVH_LOG_LEVEL" default:"info"`
	// LogFormat is the log output format: json or text
	LogFormat string `envconfig:"BVH_LOG_FORMAT" default:"json"`
	// MetricsAddr serves Prometheus metrics when non-empty, e.g. ":9090"
	MetricsAddr string `envconfig:"BVH_METRICS_ADDR" default:""`
}

// LoadConfig reads .env if present, then the process environment.
func LoadConfig() (Config, error) {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrorTypeConfiguration, "load_config", "processing environment")
	}
	if cfg.Workers < 0 {
		return Config{}, errors.NewConfigurationError("load_config", "BVH_WORKERS must be >= 0")
	}
	return cfg, nil
}
