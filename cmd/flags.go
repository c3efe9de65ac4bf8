package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/basekit/internal/input"
	"github.com/conneroisu/basekit/internal/timer"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Input flags
	Prompt       string `flag:"prompt,p" desc:"Prompt shown before each attempt"`
	ErrorMessage string `flag:"error,e" desc:"Message shown after a malformed answer"`
	Lenient      bool   `flag:"lenient" desc:"Ignore anything after the first token on a line" default:"false"`

	// Timer flags
	Unit string `flag:"unit,u" desc:"Time unit (s|ms|us|ns)"`

	// Output flags
	OutputFormat string `flag:"format,o" desc:"Output format (text|yaml)" default:"text"`

	cmd *cobra.Command
}

// AddStandardFlags adds standard flags to a command
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{cmd: cmd}

	for _, flagType := range flagTypes {
		switch flagType {
		case "input":
			addInputFlags(cmd, flags)
		case "timer":
			addTimerFlags(cmd, flags)
		case "output":
			addOutputFlags(cmd, flags)
		}
	}

	return flags
}

func addInputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.Prompt, "prompt", "p", "", "Prompt shown before each attempt (default from config)")
	cmd.Flags().StringVarP(&flags.ErrorMessage, "error", "e", "", "Message shown after a malformed answer (default from config)")
	cmd.Flags().BoolVar(&flags.Lenient, "lenient", false, "Ignore anything after the first token on a line")
}

func addTimerFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.Unit, "unit", "u", "", "Time unit (s|ms|us|ns, default from config)")
	AddFlagValidation(cmd, "unit", ValidateUnit)
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "format", "o", "", "Output format (text|yaml, default from config)")
	AddFlagValidation(cmd, "format", ValidateFormat)
}

// InputOptions returns per-call reader options for the input flags the user
// actually set, so configured defaults apply otherwise.
func (f *StandardFlags) InputOptions() []input.Option {
	var opts []input.Option
	if f.changed("prompt") {
		opts = append(opts, input.WithPrompt(f.Prompt))
	}
	if f.changed("error") {
		opts = append(opts, input.WithErrorMessage(f.ErrorMessage))
	}
	if f.changed("lenient") {
		opts = append(opts, input.WithStrict(!f.Lenient))
	}

	return opts
}

// TimerUnit returns the --unit value, falling back to fallback when unset.
func (f *StandardFlags) TimerUnit(fallback timer.Unit) (timer.Unit, error) {
	if f.Unit == "" {
		return fallback, nil
	}

	return timer.ParseUnit(f.Unit)
}

// Format returns the --format value, falling back to fallback when unset.
func (f *StandardFlags) Format(fallback string) string {
	if f.OutputFormat == "" {
		return fallback
	}

	return strings.ToLower(f.OutputFormat)
}

func (f *StandardFlags) changed(name string) bool {
	if f.cmd == nil {
		return false
	}
	flag := f.cmd.Flags().Lookup(name)

	return flag != nil && flag.Changed
}

// ValidateFlags validates flag combinations and values
func (f *StandardFlags) ValidateFlags() error {
	if f.Unit != "" {
		if err := ValidateUnit(f.Unit); err != nil {
			return err
		}
	}

	if f.OutputFormat != "" {
		if err := ValidateFormat(f.OutputFormat); err != nil {
			return err
		}
	}

	return nil
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	// Store original value setter
	originalSet := flag.Value.Set

	// Create wrapper that validates
	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: originalSet,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}

// Unit validation helper
func ValidateUnit(unit string) error {
	_, err := timer.ParseUnit(unit)
	return err
}

// Report format validation helper
func ValidateFormat(format string) error {
	validFormats := []string{"text", "yaml"}
	if !slices.Contains(validFormats, strings.ToLower(format)) {
		return fmt.Errorf("invalid output format %s, must be one of: %s",
			format, strings.Join(validFormats, ", "))
	}

	return nil
}
