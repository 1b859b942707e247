package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tutils/tprng/dice"
)

// diceCmd represents the dice command
var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Roll dice with a generator",
	Long: `Roll simulated dice with the normalized output of a generator and report
the mean and population standard deviation of the faces. For example:
  tprng dice --generator=lcg --rolls=10000
  tprng dice --generator=midsquare --digits=10 --seed=1234567890`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := configuredGenerator()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			g.SetSeed(diceSeed)
		}

		result, err := dice.Sample(g, dice.Request{Rolls: diceRolls, Sides: diceSides})
		if err != nil {
			return err
		}
		printDice(cmd.OutOrStdout(), result)
		return nil
	},
}

var (
	diceRolls int
	diceSides int
	diceSeed  uint64
)

func init() {
	rootCmd.AddCommand(diceCmd)

	flags := diceCmd.Flags()
	flags.IntVarP(&diceRolls, "rolls", "n", dice.DefaultRolls, "number of rolls")
	flags.IntVarP(&diceSides, "sides", "s", dice.DefaultSides, "faces per die")
	flags.Uint64Var(&diceSeed, "seed", 0, "generator seed (default: the generator's own)")
}
