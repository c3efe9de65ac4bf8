package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/basekit/internal/input"
	"github.com/conneroisu/basekit/internal/random"
)

var guessCmd = &cobra.Command{
	Use:     "guess",
	Aliases: []string{"g"},
	Short:   "Play a number guessing game",
	Long: `Pick a secret number and ask for guesses until it is found.

Guesses outside the range are reported and asked again. Set --seed (or
random.seed in the config file) to replay the same secret.

Examples:
  basekit guess                    # 1 to 100
  basekit guess --min 1 --max 10
  basekit guess --seed 42`,
	Args: cobra.NoArgs,
	RunE: runGuess,
}

var (
	guessFlags *StandardFlags
	guessMin   int
	guessMax   int
	guessSeed  uint64
)

func init() {
	rootCmd.AddCommand(guessCmd)

	guessFlags = AddStandardFlags(guessCmd, "input")
	guessCmd.Flags().IntVar(&guessMin, "min", 1, "Smallest possible secret")
	guessCmd.Flags().IntVar(&guessMax, "max", 100, "Largest possible secret")
	guessCmd.Flags().Uint64Var(&guessSeed, "seed", 0, "Seed for the secret (default from config, 0 for random)")
}

func runGuess(cmd *cobra.Command, args []string) error {
	if guessMin > guessMax {
		return invalidArg(fmt.Sprintf("--min %d is greater than --max %d", guessMin, guessMax))
	}

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	seed := currentConfig().Random.Seed
	if cmd.Flags().Changed("seed") {
		seed = guessSeed
	}
	rng := random.NewSeeded()
	if seed != 0 {
		rng = random.New(seed)
	}
	secret := rng.Int(guessMin, guessMax)
	currentLogger().Debug(ctx, "Secret chosen", "min", guessMin, "max", guessMax, "seeded", seed != 0)

	fmt.Fprintln(out, cases.Title(language.English).String("guess the number"))
	fmt.Fprintf(out, "I am thinking of a number between %d and %d.\n", guessMin, guessMax)

	opts := append([]input.Option{
		input.WithPrompt(fmt.Sprintf("Your guess (%d-%d): ", guessMin, guessMax)),
	}, guessFlags.InputOptions()...)

	r := newReader(cmd)
	for attempts := 1; ; attempts++ {
		guess, err := input.Between(ctx, r, guessMin, guessMax, opts...)
		if err != nil {
			return err
		}

		switch {
		case guess < secret:
			fmt.Fprintln(out, "Too low.")
		case guess > secret:
			fmt.Fprintln(out, "Too high.")
		default:
			fmt.Fprintf(out, "Correct! You found %d in %d %s.\n", secret, attempts, plural(attempts, "guess", "guesses"))
			return nil
		}
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
