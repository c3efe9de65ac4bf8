// Package cmd provides the command-line interface for basekit with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --log-level, etc.) - highest priority
//	2. BASEKIT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (BASEKIT_INPUT_PROMPT, etc.)
//	4. .env and .env.local files in the working directory
//	5. Configuration files (.basekit.yml) - lowest priority
//
// Environment Variables:
//
//	BASEKIT_CONFIG_FILE: Path to custom configuration file
//	BASEKIT_INPUT_PROMPT: Default prompt for interactive questions
//	BASEKIT_TIMER_UNIT: Default unit for timing reports
//	BASEKIT_RANDOM_SEED: Fixed seed for the guessing game
//	And more following the BASEKIT_<SECTION>_<OPTION> pattern
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/basekit/internal/config"
	"github.com/conneroisu/basekit/internal/errors"
	"github.com/conneroisu/basekit/internal/input"
	"github.com/conneroisu/basekit/internal/logging"
)

var (
	cfgFile     string
	watchConfig bool
	envFiles    []string
)

var (
	stateMu   sync.RWMutex
	appConfig *config.Config
	appLogger logging.Logger = logging.NewNop()
	watchOnce sync.Once
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "basekit",
	Short: "Validated terminal input and small numeric helpers",
	Long: `basekit reads validated values from the terminal and bundles a few small
numeric utilities.

Every question is asked again until the answer is well formed and meets its
constraints, so scripts can rely on what they get back.

Quick Start:
  basekit ask int --min 1 --max 5     Ask for a number in a range
  basekit ask text --choices red,blue Ask for one of several words
  basekit guess                       Play a number guessing game
  basekit mul 4294967296 4294967296   Multiply without wrap-around
  basekit time --iterations 10        Time a sample workload

Command Aliases (for faster typing):
  ask (a), guess (g), time (t)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Running out of input during an interactive command is a normal way to end
// it and is not reported as a failure.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil || stderrors.Is(err, input.ErrStreamClosed) {
		return nil
	}

	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	errors.NewHandler(currentLogger()).Handle(context.Background(), err)
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .basekit.yml, can also use BASEKIT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", config.DefaultEnvFiles, "environment files to load before reading configuration")
	rootCmd.PersistentFlags().BoolVar(&watchConfig, "watch-config", false, "reload the config file when it changes")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadRuntime(cmd); err != nil {
			return err
		}
		if watchConfig {
			startConfigWatch(cmd.Context())
		}
		return nil
	}
}

// initConfig initializes the configuration system with support for multiple config sources.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. BASEKIT_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .basekit.yml in current directory
//
// Environment files are loaded first so that BASEKIT_CONFIG_FILE and the
// other overrides may come from them.
func initConfig() {
	if loaded, err := config.LoadEnvFiles(envFiles); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	} else {
		for _, f := range loaded {
			fmt.Fprintln(os.Stderr, "Loaded environment variables from", f)
		}
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv(config.EnvPrefix + "_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".basekit")
	}

	// BASEKIT_INPUT_PROMPT, BASEKIT_TIMER_UNIT, ...
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or malformed file leaves the defaults in place.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadRuntime resolves the configuration and builds the logger for cmd.
func loadRuntime(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loggerConfig := cfg.LoggerConfig()
	loggerConfig.Output = cmd.ErrOrStderr()

	stateMu.Lock()
	appConfig = cfg
	appLogger = logging.NewLogger(loggerConfig).WithComponent("cli")
	stateMu.Unlock()

	return nil
}

func startConfigWatch(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	watchOnce.Do(func() {
		if viper.ConfigFileUsed() == "" {
			currentLogger().Warn(ctx, nil, "No config file to watch")
			return
		}

		viper.OnConfigChange(func(e fsnotify.Event) {
			cfg, err := config.Load()
			if err != nil {
				currentLogger().Warn(ctx, err, "Ignoring invalid config change", "file", e.Name)
				return
			}

			stateMu.Lock()
			appConfig = cfg
			stateMu.Unlock()

			currentLogger().Info(ctx, "Config reloaded", "file", e.Name, "op", e.Op.String())
		})
		viper.WatchConfig()
	})
}

// currentConfig returns the most recently loaded configuration, or the
// defaults before anything has been loaded.
func currentConfig() *config.Config {
	stateMu.RLock()
	defer stateMu.RUnlock()

	if appConfig == nil {
		return config.DefaultConfig()
	}

	return appConfig
}

func currentLogger() logging.Logger {
	stateMu.RLock()
	defer stateMu.RUnlock()

	return appLogger
}

// newReader builds an input reader over the command's streams using the
// configured prompt and error text.
func newReader(cmd *cobra.Command) *input.Reader {
	return input.NewReader(cmd.InOrStdin(), cmd.OutOrStdout(),
		input.WithLogger(currentLogger()),
		input.WithDefaults(currentConfig().InputOptions()...),
	)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
