//go:build property
// +build property

package config

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/viper"
)

// TestConfigurationProperties tests configuration loading and validation properties
func TestConfigurationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: every known unit, format and level combination validates
	properties.Property("valid config parsing", prop.ForAll(
		func(unit, timerFormat, level, logFormat string) bool {
			cfg := DefaultConfig()
			cfg.Timer.Unit = unit
			cfg.Timer.Format = timerFormat
			cfg.Log.Level = level
			cfg.Log.Format = logFormat

			return validateConfig(cfg) == nil
		},
		gen.OneConstOf("s", "ms", "us", "ns", "seconds", "Milliseconds"),
		gen.OneConstOf("text", "yaml"),
		gen.OneConstOf("debug", "info", "warn", "error", ""),
		gen.OneConstOf("text", "json"),
	))

	// Property: unknown timer formats are always rejected
	properties.Property("unknown timer format rejected", prop.ForAll(
		func(format string) bool {
			cfg := DefaultConfig()
			cfg.Timer.Format = format

			err := validateConfig(cfg)
			if format == "text" || format == "yaml" {
				return err == nil
			}
			return err != nil
		},
		gen.AlphaString(),
	))

	// Property: prompt text round trips through viper unchanged
	properties.Property("prompt passthrough", prop.ForAll(
		func(prompt string) bool {
			viper.Reset()
			defer viper.Reset()
			viper.Set("input.prompt", prompt)

			cfg, err := Load()
			return err == nil && cfg.Input.Prompt == prompt
		},
		gen.AnyString().SuchThat(func(s string) bool { return !strings.ContainsRune(s, 0) }),
	))

	// Property: Default config should always be valid
	properties.Property("default config validity", prop.ForAll(
		func() bool {
			return validateConfig(DefaultConfig()) == nil
		},
	))

	properties.TestingRun(t)
}
