package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/basekit/internal/config"
	"github.com/conneroisu/basekit/internal/input"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage basekit configuration",
	Long: `Manage basekit configuration files and settings.

This command provides subcommands for:
- Creating a configuration file through an interactive wizard
- Validating an existing configuration file
- Showing the resolved configuration values

Examples:
  basekit config init                  # Run the wizard and save .basekit.yml
  basekit config validate              # Validate the current configuration
  basekit config show                  # Show the resolved configuration
  basekit config validate --file ci.yml`,
}

var configInitCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"wizard"},
	Short:   "Run interactive configuration wizard",
	Long: `Run an interactive wizard that asks for every configuration value and
writes the answers to a YAML file. Answer "-" to keep the value shown.

Examples:
  basekit config init                  # Save to .basekit.yml
  basekit config init --output dev.yml # Save to a custom file`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate a basekit configuration file: units, formats and log levels must
be known values.

Examples:
  basekit config validate              # Validate the resolved configuration
  basekit config validate --file config.yml`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current basekit configuration including all resolved values.

This shows the final configuration after:
- Loading from configuration file
- Applying environment variable overrides
- Setting default values
- Processing command-line flags

Examples:
  basekit config show                  # Show in YAML format
  basekit config show --format json    # Show in JSON format`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var (
	configOutput string
	configFile   string
	configFormat string
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().
		StringVarP(&configOutput, "output", "o", ".basekit.yml", "Output configuration file")

	configValidateCmd.Flags().
		StringVarP(&configFile, "file", "f", "", "Configuration file to validate (default: resolved configuration)")

	configShowCmd.Flags().StringVar(&configFormat, "format", "yaml", "Output format (yaml, json)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	wizard := config.NewConfigWizard(cmd.InOrStdin(), out, input.WithLogger(currentLogger()))
	if _, err := wizard.Run(ctx); err != nil {
		return err
	}

	if err := wizard.WriteConfigFile(ctx, configOutput); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nNext steps:\n")
	fmt.Fprintf(out, "  1. Review %s\n", configOutput)
	fmt.Fprintf(out, "  2. Run 'basekit config validate' to check it\n")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configFile == "" {
		if _, err := config.Load(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Configuration is valid!")
		return nil
	}

	fmt.Fprintf(out, "Validating configuration file: %s\n", configFile)

	// Validate the file alone, without environment overrides.
	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	if _, err := config.LoadFrom(v); err != nil {
		return err
	}

	fmt.Fprintln(out, "Configuration is valid!")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := currentConfig()

	switch configFormat {
	case "yaml", "yml":
		return showConfigYAML(out, cfg)
	case "json":
		return showConfigJSON(out, cfg)
	default:
		return invalidArg(fmt.Sprintf("unsupported format: %s (supported: yaml, json)", configFormat))
	}
}

func showConfigYAML(out io.Writer, cfg *config.Config) error {
	fmt.Fprintf(out, "# %s\n", cases.Title(language.English).String("current basekit configuration"))
	fmt.Fprintln(out, "# Resolved from all sources (file, env vars, defaults)")

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	return enc.Close()
}

func showConfigJSON(out io.Writer, cfg *config.Config) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
