package cmd

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/basekit/internal/errors"
	"github.com/conneroisu/basekit/internal/input"
	"github.com/conneroisu/basekit/internal/shape"
)

var askCmd = &cobra.Command{
	Use:     "ask <int|float|text|char|confirm>",
	Aliases: []string{"a"},
	Short:   "Ask for a validated value and print it",
	Long: `Ask a question on the terminal and keep asking until the answer is valid.

The answer is printed to stdout on its own line, which makes ask usable from
shell scripts. Numbers may be restricted to a range, to a list of choices, or
by a predicate; text may be restricted to a list of choices.

Examples:
  basekit ask int --min 1 --max 5 --prompt "Pick 1-5: "
  basekit ask int --even --positive
  basekit ask float --min 0 --max 1
  basekit ask text --choices red,green,blue
  basekit ask confirm --prompt "Continue? "
  basekit ask text                    # read a whole line`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"int", "float", "text", "char", "confirm"},
	RunE:      runAsk,
}

var (
	askFlags    *StandardFlags
	askMin      string
	askMax      string
	askChoices  []string
	askEven     bool
	askOdd      bool
	askPositive bool
)

func init() {
	rootCmd.AddCommand(askCmd)

	askFlags = AddStandardFlags(askCmd, "input")
	askCmd.Flags().StringVar(&askMin, "min", "", "Smallest accepted number")
	askCmd.Flags().StringVar(&askMax, "max", "", "Largest accepted number")
	askCmd.Flags().StringSliceVar(&askChoices, "choices", nil, "Comma-separated list of accepted answers")
	askCmd.Flags().BoolVar(&askEven, "even", false, "Only accept even integers")
	askCmd.Flags().BoolVar(&askOdd, "odd", false, "Only accept odd integers")
	askCmd.Flags().BoolVar(&askPositive, "positive", false, "Only accept numbers greater than zero")

	askCmd.MarkFlagsMutuallyExclusive("even", "odd")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	r := newReader(cmd)
	opts := askFlags.InputOptions()

	var (
		answer any
		err    error
	)

	switch kind := strings.ToLower(args[0]); kind {
	case "int":
		answer, err = askNumber(ctx, r, opts, math.MinInt64, math.MaxInt64, intPredicate())
	case "float":
		if askEven || askOdd {
			return invalidArg("--even and --odd only apply to int")
		}
		answer, err = askNumber(ctx, r, opts, -math.MaxFloat64, math.MaxFloat64, floatPredicate())
	case "text":
		if err := noNumericConstraints(kind); err != nil {
			return err
		}
		if len(askChoices) > 0 {
			answer, err = input.OneOf(ctx, r, askChoices, opts...)
		} else {
			answer, err = input.Line(ctx, r, opts...)
		}
	case "char":
		if err := noNumericConstraints(kind); err != nil {
			return err
		}
		var c rune
		c, err = input.Char(ctx, r, opts...)
		answer = string(c)
	case "confirm":
		if err := noNumericConstraints(kind); err != nil {
			return err
		}
		answer, err = input.Confirm(ctx, r, opts...)
	default:
		return invalidArg(fmt.Sprintf("unknown kind %q (expected int, float, text, char or confirm)", args[0]))
	}

	if err != nil {
		return err
	}

	currentLogger().Debug(ctx, "Answer accepted", "kind", args[0])
	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}

// askNumber picks the reader operation that matches the constraint flags.
// A range with one side missing extends to lowest or highest.
func askNumber[T shape.RationalNumber](
	ctx context.Context,
	r *input.Reader,
	opts []input.Option,
	lowest, highest T,
	pred func(T) bool,
) (T, error) {
	var zero T

	hasRange := askMin != "" || askMax != ""
	if countTrue(hasRange, len(askChoices) > 0, pred != nil) > 1 {
		return zero, invalidArg("use only one of --min/--max, --choices or a predicate flag")
	}

	switch {
	case hasRange:
		lo, hi := lowest, highest
		var err error
		if askMin != "" {
			if lo, err = parseArg[T]("--min", askMin); err != nil {
				return zero, err
			}
		}
		if askMax != "" {
			if hi, err = parseArg[T]("--max", askMax); err != nil {
				return zero, err
			}
		}
		return input.Between(ctx, r, lo, hi, opts...)

	case len(askChoices) > 0:
		choices := make([]T, 0, len(askChoices))
		for _, c := range askChoices {
			v, err := parseArg[T]("--choices", c)
			if err != nil {
				return zero, err
			}
			choices = append(choices, v)
		}
		return input.OneOf(ctx, r, choices, opts...)

	case pred != nil:
		return input.Satisfying(ctx, r, pred, opts...)

	default:
		return input.Value[T](ctx, r, opts...)
	}
}

// intPredicate combines the predicate flags, or returns nil when none is set.
func intPredicate() func(int64) bool {
	if !askEven && !askOdd && !askPositive {
		return nil
	}

	return func(v int64) bool {
		if askPositive && v <= 0 {
			return false
		}
		if askEven && v%2 != 0 {
			return false
		}
		if askOdd && v%2 == 0 {
			return false
		}
		return true
	}
}

func floatPredicate() func(float64) bool {
	if !askPositive {
		return nil
	}

	return func(v float64) bool { return v > 0 }
}

func noNumericConstraints(kind string) error {
	if askMin != "" || askMax != "" || askEven || askOdd || askPositive {
		return invalidArg(fmt.Sprintf("numeric constraints do not apply to %s", kind))
	}
	if kind != "text" && len(askChoices) > 0 {
		return invalidArg(fmt.Sprintf("--choices does not apply to %s", kind))
	}

	return nil
}

func parseArg[T shape.Scalar](name, raw string) (T, error) {
	v, err := input.ParseScalar[T](strings.TrimSpace(raw))
	if err != nil {
		var zero T
		return zero, invalidArg(fmt.Sprintf("invalid value %q for %s", raw, name)).WithCause(err)
	}

	return v, nil
}

func invalidArg(msg string) *errors.Error {
	return errors.NewValidationError(errors.ErrCodeInvalidArg, msg).WithComponent("cli")
}

func countTrue(values ...bool) int {
	n := 0
	for _, v := range values {
		if v {
			n++
		}
	}

	return n
}
