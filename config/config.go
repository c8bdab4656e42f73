package config

import (
	"fmt"

	"github.com/skillsenselab/singlekit/logger"
)

// Config is the root singlekit configuration.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Metrics     MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// MetricsConfig controls lifecycle metrics export.
type MetricsConfig struct {
	// Enabled turns on OTLP metric export for provider lifecycle events.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Endpoint is the OTLP HTTP endpoint host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	// Insecure allows plain HTTP connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// IntervalSeconds is the metric export interval.
	IntervalSeconds int `yaml:"interval_seconds" mapstructure:"interval_seconds" validate:"gte=0"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Metrics.ApplyDefaults()
}

// ApplyDefaults applies default values to metrics configuration.
func (m *MetricsConfig) ApplyDefaults() {
	if m.Endpoint == "" {
		m.Endpoint = "localhost:4318"
	}
	if m.IntervalSeconds == 0 {
		m.IntervalSeconds = 15
	}
}

// Validate validates the configuration beyond struct tags.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
