package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SINGLEKIT"

// LoaderConfig controls where Load looks for files. Empty fields mean
// "search the standard locations".
type LoaderConfig struct {
	// ConfigFile is an explicit path to a YAML config file.
	ConfigFile string
	// EnvFile is an explicit path to a .env file.
	EnvFile string
}

// Load reads configuration for the named service. A missing config
// file is not an error: defaults plus environment variables make a
// complete configuration.
func Load(name string, opts LoaderConfig) (*Config, error) {
	if envFile := resolveEnvFile(opts.EnvFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if configFile := resolveConfigFile(opts.ConfigFile); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{Name: name}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	cfg.ApplyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// bindKeys registers every config key with viper so AutomaticEnv can
// resolve it even when no config file sets it.
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"name",
		"environment",
		"debug",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.no_color",
		"logging.timestamp",
		"logging.caller",
		"metrics.enabled",
		"metrics.endpoint",
		"metrics.insecure",
		"metrics.interval_seconds",
	} {
		// BindEnv only fails on an empty key.
		_ = v.BindEnv(key)
	}
}

func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return firstExisting(
		"./config.yml",
		"./config/config.yml",
		"../config/config.yml",
	)
}

func resolveEnvFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return firstExisting(".env")
}

func firstExisting(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
