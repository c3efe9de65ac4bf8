// Package config provides configuration management for basekit using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration system supports YAML files, .env files, environment
// variable overrides with the BASEKIT_ prefix, and validation. It holds the
// default prompt and error text for interactive input, timer report settings,
// the random seed, and logging options.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/conneroisu/basekit/internal/errors"
	"github.com/conneroisu/basekit/internal/input"
	"github.com/conneroisu/basekit/internal/logging"
	"github.com/conneroisu/basekit/internal/timer"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "BASEKIT"

// DefaultEnvFiles are loaded, when present, before the environment is read.
var DefaultEnvFiles = []string{".env", ".env.local"}

type Config struct {
	Input  InputConfig  `yaml:"input" json:"input" mapstructure:"input"`
	Timer  TimerConfig  `yaml:"timer" json:"timer" mapstructure:"timer"`
	Random RandomConfig `yaml:"random" json:"random" mapstructure:"random"`
	Log    LogConfig    `yaml:"log" json:"log" mapstructure:"log"`
}

type InputConfig struct {
	Prompt       string `yaml:"prompt" json:"prompt" mapstructure:"prompt"`
	ErrorMessage string `yaml:"error_message" json:"error_message" mapstructure:"error_message"`
	Strict       bool   `yaml:"strict" json:"strict" mapstructure:"strict"`
}

type TimerConfig struct {
	Unit    string `yaml:"unit" json:"unit" mapstructure:"unit"`
	LogFile string `yaml:"log_file" json:"log_file" mapstructure:"log_file"`
	Format  string `yaml:"format" json:"format" mapstructure:"format"`
}

type RandomConfig struct {
	// Seed of zero selects a non-deterministic seed.
	Seed uint64 `yaml:"seed" json:"seed" mapstructure:"seed"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level"`
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Prompt:       input.DefaultPrompt,
			ErrorMessage: input.DefaultErrorMessage,
			Strict:       true,
		},
		Timer: TimerConfig{
			Unit:   "ms",
			Format: "text",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers default values with v so that every key is known to
// Unmarshal and AutomaticEnv even when no config file exists.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("input.prompt", d.Input.Prompt)
	v.SetDefault("input.error_message", d.Input.ErrorMessage)
	v.SetDefault("input.strict", d.Input.Strict)
	v.SetDefault("timer.unit", d.Timer.Unit)
	v.SetDefault("timer.log_file", d.Timer.LogFile)
	v.SetDefault("timer.format", d.Timer.Format)
	v.SetDefault("random.seed", d.Random.Seed)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load resolves the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom resolves the configuration from v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "failed to decode configuration").WithCause(err)
	}

	config.Timer.Format = strings.ToLower(strings.TrimSpace(config.Timer.Format))
	config.Log.Format = strings.ToLower(strings.TrimSpace(config.Log.Format))

	if err := validateConfig(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "invalid configuration").WithCause(err)
	}

	return &config, nil
}

// validateConfig validates configuration values for correctness
func validateConfig(config *Config) error {
	if err := validateTimerConfig(&config.Timer); err != nil {
		return fmt.Errorf("timer config: %w", err)
	}

	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	return nil
}

func validateTimerConfig(config *TimerConfig) error {
	if _, err := timer.ParseUnit(config.Unit); err != nil {
		return err
	}

	switch config.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("format %q is not one of text, yaml", config.Format)
	}

	if strings.ContainsRune(config.LogFile, 0) {
		return fmt.Errorf("log_file contains a NUL byte")
	}

	return nil
}

func validateLogConfig(config *LogConfig) error {
	if _, err := logging.ParseLevel(config.Level); err != nil {
		return err
	}

	switch config.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format %q is not one of text, json", config.Format)
	}

	return nil
}

// InputOptions converts the input section into reader defaults.
func (c *Config) InputOptions() []input.Option {
	return []input.Option{
		input.WithPrompt(c.Input.Prompt),
		input.WithErrorMessage(c.Input.ErrorMessage),
		input.WithStrict(c.Input.Strict),
	}
}

// TimerUnit returns the configured report unit. Load has already validated it.
func (c *Config) TimerUnit() timer.Unit {
	u, err := timer.ParseUnit(c.Timer.Unit)
	if err != nil {
		return timer.Milliseconds
	}

	return u
}

// LoggerConfig converts the log section into logger settings.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		level = logging.LevelInfo
	}

	return &logging.LoggerConfig{
		Level:  level,
		Format: c.Log.Format,
		Output: os.Stderr,
	}
}

// LoadEnvFiles loads each existing file into the process environment. Values
// already present in the environment win. It returns the files that were
// loaded.
func LoadEnvFiles(envFiles []string) ([]string, error) {
	var loaded []string
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return loaded, errors.NewConfigError(errors.ErrCodeConfigInvalid, "failed to load environment file").
				WithCause(err).
				WithContext("path", envFile)
		}
		loaded = append(loaded, envFile)
	}

	return loaded, nil
}
