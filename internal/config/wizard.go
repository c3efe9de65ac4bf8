package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/basekit/internal/input"
)

const (
	// KeepDefault is the answer that accepts the value shown in brackets.
	KeepDefault = "-"
	// NoValue is the answer that clears an optional setting.
	NoValue = "none"
)

// ConfigWizard provides an interactive setup experience for a new config file
type ConfigWizard struct {
	reader *input.Reader
	out    io.Writer
	config *Config
}

// NewConfigWizard creates a new configuration wizard reading answers from in
// and writing questions to out.
func NewConfigWizard(in io.Reader, out io.Writer, opts ...input.ReaderOption) *ConfigWizard {
	return &ConfigWizard{
		reader: input.NewReader(in, out, opts...),
		out:    out,
		config: DefaultConfig(),
	}
}

// Run executes the interactive configuration wizard
func (w *ConfigWizard) Run(ctx context.Context) (*Config, error) {
	fmt.Fprintln(w.out, "basekit Configuration Wizard")
	fmt.Fprintln(w.out, "============================")
	fmt.Fprintf(w.out, "Answer %s to keep the value shown in brackets, %s to leave a text setting empty.\n\n",
		KeepDefault, NoValue)

	if err := w.configureInput(ctx); err != nil {
		return nil, fmt.Errorf("input configuration failed: %w", err)
	}

	if err := w.configureTimer(ctx); err != nil {
		return nil, fmt.Errorf("timer configuration failed: %w", err)
	}

	if err := w.configureRandom(ctx); err != nil {
		return nil, fmt.Errorf("random configuration failed: %w", err)
	}

	if err := w.configureLog(ctx); err != nil {
		return nil, fmt.Errorf("log configuration failed: %w", err)
	}

	if err := validateConfig(w.config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Fprintln(w.out, "Configuration completed successfully!")
	return w.config, nil
}

func (w *ConfigWizard) section(title string) {
	fmt.Fprintln(w.out, title)
	fmt.Fprintln(w.out, strings.Repeat("-", len(title)))
}

func (w *ConfigWizard) configureInput(ctx context.Context) (err error) {
	w.section("Input")

	c := &w.config.Input
	if c.Prompt, err = w.askOptional(ctx, "Default prompt", c.Prompt); err != nil {
		return err
	}
	if c.ErrorMessage, err = w.askOptional(ctx, "Default error message", c.ErrorMessage); err != nil {
		return err
	}
	if c.Strict, err = w.askBool(ctx, "Reject trailing input", c.Strict); err != nil {
		return err
	}

	fmt.Fprintln(w.out)
	return nil
}

func (w *ConfigWizard) configureTimer(ctx context.Context) (err error) {
	w.section("Timer")

	c := &w.config.Timer
	if c.Unit, err = w.askChoice(ctx, "Report unit", []string{"s", "ms", "us", "ns"}, c.Unit); err != nil {
		return err
	}
	if c.Format, err = w.askChoice(ctx, "Report format", []string{"text", "yaml"}, c.Format); err != nil {
		return err
	}
	if c.LogFile, err = w.askOptional(ctx, "Report log file", c.LogFile); err != nil {
		return err
	}

	fmt.Fprintln(w.out)
	return nil
}

func (w *ConfigWizard) configureRandom(ctx context.Context) (err error) {
	w.section("Random")

	w.config.Random.Seed, err = ask(ctx, w, "Seed (0 for random)", w.config.Random.Seed, input.ParseScalar[uint64])
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out)
	return nil
}

func (w *ConfigWizard) configureLog(ctx context.Context) (err error) {
	w.section("Logging")

	c := &w.config.Log
	if c.Level, err = w.askChoice(ctx, "Log level", []string{"debug", "info", "warn", "error"}, c.Level); err != nil {
		return err
	}
	if c.Format, err = w.askChoice(ctx, "Log format", []string{"text", "json"}, c.Format); err != nil {
		return err
	}

	fmt.Fprintln(w.out)
	return nil
}

// Helper methods for user interaction

// ask reads one token, returning defaultValue when the answer is KeepDefault.
func ask[T any](ctx context.Context, w *ConfigWizard, prompt string, defaultValue T, parse func(string) (T, error)) (T, error) {
	return input.Parse(ctx, w.reader, func(token string) (T, error) {
		if token == KeepDefault {
			return defaultValue, nil
		}
		return parse(token)
	}, input.WithPrompt(fmt.Sprintf("%s [%v]: ", prompt, defaultValue)))
}

func (w *ConfigWizard) askString(ctx context.Context, prompt, defaultValue string) (string, error) {
	line, err := input.Line(ctx, w.reader, input.WithPrompt(fmt.Sprintf("%s [%s]: ", prompt, defaultValue)))
	if err != nil {
		return defaultValue, err
	}
	if strings.TrimSpace(line) == KeepDefault {
		return defaultValue, nil
	}

	return line, nil
}

// askOptional is askString for settings where empty is meaningful. An empty
// value is shown, and answered, as NoValue.
func (w *ConfigWizard) askOptional(ctx context.Context, prompt, defaultValue string) (string, error) {
	shown := defaultValue
	if shown == "" {
		shown = NoValue
	}

	answer, err := w.askString(ctx, prompt, shown)
	if err != nil {
		return defaultValue, err
	}
	if strings.EqualFold(strings.TrimSpace(answer), NoValue) {
		return "", nil
	}

	return answer, nil
}

func (w *ConfigWizard) askBool(ctx context.Context, prompt string, defaultValue bool) (bool, error) {
	defaultStr := "n"
	if defaultValue {
		defaultStr = "y"
	}

	return input.Parse(ctx, w.reader, func(token string) (bool, error) {
		if token == KeepDefault {
			return defaultValue, nil
		}
		return input.ParseConfirm(token)
	}, input.WithPrompt(fmt.Sprintf("%s [%s]: ", prompt, defaultStr)))
}

func (w *ConfigWizard) askChoice(ctx context.Context, prompt string, choices []string, defaultValue string) (string, error) {
	return input.Parse(ctx, w.reader, func(token string) (string, error) {
		if token == KeepDefault {
			return defaultValue, nil
		}
		for _, choice := range choices {
			if strings.EqualFold(token, choice) {
				return choice, nil
			}
		}
		return "", fmt.Errorf("%q is not one of %s", token, strings.Join(choices, ", "))
	},
		input.WithPrompt(fmt.Sprintf("%s [%s] (options: %s): ", prompt, defaultValue, strings.Join(choices, ", "))),
		input.WithErrorMessage(fmt.Sprintf("Invalid choice. Please select from: %s", strings.Join(choices, ", "))),
	)
}

// WriteConfigFile writes the configuration to a YAML file, asking before it
// replaces an existing one.
func (w *ConfigWizard) WriteConfigFile(ctx context.Context, filename string) error {
	if _, err := os.Stat(filename); err == nil {
		overwrite, err := w.askBool(ctx, fmt.Sprintf("Configuration file %s already exists. Overwrite", filename), false)
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("configuration file already exists")
		}
	}

	content, err := w.generateYAMLConfig()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, content, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(w.out, "Configuration saved to %s\n", filename)
	return nil
}

func (w *ConfigWizard) generateYAMLConfig() ([]byte, error) {
	body, err := yaml.Marshal(w.config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}

	header := "# basekit configuration file\n# Generated by basekit config init\n\n"
	return append([]byte(header), body...), nil
}
