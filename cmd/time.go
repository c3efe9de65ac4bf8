package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/basekit/internal/sequence"
	"github.com/conneroisu/basekit/internal/timer"
)

var timeCmd = &cobra.Command{
	Use:     "time",
	Aliases: []string{"t"},
	Short:   "Time a sample workload",
	Long: `Run a built-in workload several times and report how long each run took.

Workloads:
  sum     sum a slice of --size integers
  sleep   sleep for --duration

Text reports go to --log-file (or timer.log_file) when set, otherwise to
stdout. The yaml format prints a single document with every iteration and a
run ID.

Examples:
  basekit time --iterations 10 --unit us
  basekit time --workload sleep --duration 20ms --format yaml
  basekit time --log-file timings.log`,
	Args: cobra.NoArgs,
	RunE: runTime,
}

var (
	timeFlags      *StandardFlags
	timeIterations int
	timeWorkload   string
	timeSize       int
	timeDuration   time.Duration
	timeLogFile    string
)

func init() {
	rootCmd.AddCommand(timeCmd)

	timeFlags = AddStandardFlags(timeCmd, "timer", "output")
	timeCmd.Flags().IntVarP(&timeIterations, "iterations", "n", 5, "Number of timed runs")
	timeCmd.Flags().StringVarP(&timeWorkload, "workload", "w", "sum", "Workload to time (sum, sleep)")
	timeCmd.Flags().IntVar(&timeSize, "size", 1_000_000, "Slice length for the sum workload")
	timeCmd.Flags().DurationVar(&timeDuration, "duration", 10*time.Millisecond, "Sleep length for the sleep workload")
	timeCmd.Flags().StringVar(&timeLogFile, "log-file", "", "Append text reports to this file (default from config)")
}

func runTime(cmd *cobra.Command, args []string) error {
	if err := timeFlags.ValidateFlags(); err != nil {
		return err
	}

	cfg := currentConfig()
	unit, err := timeFlags.TimerUnit(cfg.TimerUnit())
	if err != nil {
		return err
	}
	format := timeFlags.Format(cfg.Timer.Format)

	workload, err := newWorkload(timeWorkload)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	textOut := out
	if format == "yaml" {
		textOut = io.Discard
	}

	t := timer.New(timer.WithOutput(textOut), timer.WithLogger(currentLogger()))
	defer t.Close()

	logFile := timeLogFile
	if logFile == "" {
		logFile = cfg.Timer.LogFile
	}
	if logFile != "" && format == "text" {
		if err := t.CreateLogFile(logFile); err != nil {
			return err
		}
	}

	report, err := t.TimeFunction(timeWorkload, timeIterations, unit, workload)
	if err != nil {
		return err
	}

	if format == "yaml" {
		data, err := report.YAML()
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	if logFile != "" {
		fmt.Fprintf(out, "Report appended to %s\n", logFile)
	}
	return nil
}

func newWorkload(name string) (func(), error) {
	switch name {
	case "sum":
		if timeSize < 0 {
			return nil, invalidArg("--size must not be negative")
		}
		values := make([]int, timeSize)
		for i := range values {
			values[i] = i
		}
		return func() { _ = sequence.SumFrom(values, 0) }, nil
	case "sleep":
		return func() { time.Sleep(timeDuration) }, nil
	default:
		return nil, invalidArg(fmt.Sprintf("unknown workload %q (expected sum or sleep)", name))
	}
}
