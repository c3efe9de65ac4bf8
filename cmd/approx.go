package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/basekit/internal/floats"
)

var approxCmd = &cobra.Command{
	Use:   "approx <a> <b>",
	Short: "Compare two numbers with absolute and relative tolerance",
	Long: `Report whether two floating-point numbers are approximately equal.

Values within --abs of each other are equal; otherwise they are equal when
their difference is within --rel of the larger magnitude.

Examples:
  basekit approx 0.1 0.10000000001
  basekit approx 100 101 --rel 0.01`,
	Args: cobra.ExactArgs(2),
	RunE: runApprox,
}

var (
	approxAbs float64
	approxRel float64
)

func init() {
	rootCmd.AddCommand(approxCmd)

	approxCmd.Flags().Float64Var(&approxAbs, "abs", floats.AbsEpsilon, "Absolute tolerance")
	approxCmd.Flags().Float64Var(&approxRel, "rel", floats.RelEpsilon, "Relative tolerance")
}

func runApprox(cmd *cobra.Command, args []string) error {
	if approxAbs < 0 || approxRel < 0 {
		return invalidArg("tolerances must not be negative")
	}

	a, err := parseArg[float64]("a", args[0])
	if err != nil {
		return err
	}
	b, err := parseArg[float64]("b", args[1])
	if err != nil {
		return err
	}

	verdict := "not approximately equal"
	if floats.ApproximatelyEqualAbsRel(a, b, approxAbs, approxRel) {
		verdict = "approximately equal"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%v and %v are %s\n", a, b, verdict)
	return nil
}
