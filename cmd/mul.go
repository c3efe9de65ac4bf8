package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/basekit/internal/overflow"
)

var mulCmd = &cobra.Command{
	Use:   "mul <a> <b>",
	Short: "Multiply two unsigned 64-bit integers without wrap-around",
	Long: `Multiply two unsigned 64-bit integers. When the product does not fit, the
result saturates at the largest uint64 and the overflow is reported.

Examples:
  basekit mul 6 7
  basekit mul 4294967296 4294967296   # overflows`,
	Args: cobra.ExactArgs(2),
	RunE: runMul,
}

func init() {
	rootCmd.AddCommand(mulCmd)
}

func runMul(cmd *cobra.Command, args []string) error {
	a, err := parseArg[uint64]("a", args[0])
	if err != nil {
		return err
	}
	b, err := parseArg[uint64]("b", args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	product := overflow.SafeMultiply(a, b)
	if overflow.WillMultiplyOverflow(a, b) {
		fmt.Fprintf(out, "%d * %d overflows uint64; saturated to %d\n", a, b, product)
		return nil
	}

	fmt.Fprintf(out, "%d * %d = %d\n", a, b, product)
	return nil
}
