package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/basekit/internal/sequence"
)

var sumCmd = &cobra.Command{
	Use:   "sum <numbers...>",
	Short: "Sum a contiguous run of integers",
	Long: `Sum the integers given as arguments, starting at --start and covering
--length values (to the end when --length is negative). A run that does
not fit inside the list sums to zero.

Put -- ahead of a list with negative numbers so they are not read as
flags; any flags must then come before the --.

Examples:
  basekit sum 1 2 3 4 5                       # 15
  basekit sum 1 2 3 4 5 --start 1 --length 3  # 9
  basekit sum --start 1 -- 4 -2 3             # 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSum,
}

var (
	sumStart  int64
	sumLength int64
)

func init() {
	rootCmd.AddCommand(sumCmd)

	sumCmd.Flags().Int64Var(&sumStart, "start", 0, "Index of the first value to add")
	sumCmd.Flags().Int64Var(&sumLength, "length", -1, "How many values to add (-1 for the rest)")
	sumCmd.SetFlagErrorFunc(sumFlagError)
}

// sumFlagError points at -- when a negative number was taken for a flag.
func sumFlagError(cmd *cobra.Command, err error) error {
	if strings.Contains(err.Error(), "unknown shorthand flag") {
		return fmt.Errorf("%w (put -- before negative numbers, e.g. basekit sum -- 1 -2 3)", err)
	}

	return err
}

func runSum(cmd *cobra.Command, args []string) error {
	values := make([]int64, 0, len(args))
	for i, arg := range args {
		v, err := parseArg[int64](fmt.Sprintf("argument %d", i+1), arg)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	var total int64
	if sumLength < 0 {
		total = sequence.SumFrom(values, sumStart)
	} else {
		total = sequence.Sum(values, sumStart, sumLength)
	}

	fmt.Fprintln(cmd.OutOrStdout(), total)
	return nil
}
