package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/muliwe/hero-strength/internal/logger"
)

// Config holds runtime configuration for the strength CLI
type Config struct {
	Logger logger.Config `yaml:"logger"`
	// LogResults enables the JSON-lines classification log
	LogResults bool `yaml:"log_results"`
	// Color renders labels with ANSI colours
	Color bool `yaml:"color"`
	Debug bool `yaml:"debug"`

	source string
}

// Default returns a baseline configuration
func Default() Config {
	return Config{
		Logger:     logger.DefaultConfig(),
		LogResults: true,
		Color:      true,
	}
}

// Load reads configuration from a YAML file. Missing files fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.source = path
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	cfg.source = path
	return &cfg, nil
}

// envBindings maps viper keys to their environment variables
var envBindings = map[string]string{
	"logger.log_dir": "STRENGTH_LOG_DIR",
	"logger.echo":    "STRENGTH_LOG_ECHO",
	"debug":          "STRENGTH_DEBUG",
	"color":          "STRENGTH_COLOR",
	"log_results":    "STRENGTH_LOG_RESULTS",
}

// ApplyEnv overrides values from STRENGTH_* environment variables
func (c *Config) ApplyEnv() error {
	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	if v.IsSet("logger.log_dir") {
		c.Logger.LogDir = v.GetString("logger.log_dir")
	}
	for key, dst := range map[string]*bool{
		"logger.echo": &c.Logger.Echo,
		"debug":       &c.Debug,
		"color":       &c.Color,
		"log_results": &c.LogResults,
	} {
		if !v.IsSet(key) {
			continue
		}
		b, err := cast.ToBoolE(v.Get(key))
		if err != nil {
			return fmt.Errorf("config: %s: %w", envBindings[key], err)
		}
		*dst = b
	}
	return nil
}

// Validate performs simple sanity checks on the configuration
func (c *Config) Validate() error {
	if !c.LogResults {
		return nil
	}
	if c.Logger.LogDir == "" {
		return errors.New("config: logger.log_dir required")
	}
	if c.Logger.FileName == "" {
		return errors.New("config: logger.file_name required")
	}
	return nil
}

// Source returns the path the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}
