package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/tprng/crypt/xor"
	"github.com/tutils/tprng/dice"
	"github.com/tutils/tprng/prng"
	"github.com/tutils/tprng/prng/lcg"
	"github.com/tutils/tprng/prng/midsquare"
)

// demoConfig holds the values the demo narrates. They are explicit so the
// run is reproducible.
type demoConfig struct {
	Message      string
	LCGKey       uint64
	MidSquareKey uint64
	Digits       int
	Rolls        int
}

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the dice and cipher tests on both generators",
	Long: `Instantiate an LCG and a middle-square generator, roll dice with each,
then run the cipher test with each. For example:
  tprng demo
  tprng demo --message="Meet me by the old oak" --digits=12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), demoConfig{
			Message:      viper.GetString(keyMessage),
			LCGKey:       demoLCGKey,
			MidSquareKey: demoMidSquareKey,
			Digits:       viper.GetInt(keyDigits),
			Rolls:        demoRolls,
		})
	},
}

var (
	demoLCGKey       uint64
	demoMidSquareKey uint64
	demoRolls        int
)

func init() {
	rootCmd.AddCommand(demoCmd)

	flags := demoCmd.Flags()
	flags.Uint64Var(&demoLCGKey, "lcg-key", lcg.DefaultSeed, "cipher key for the LCG")
	flags.Uint64Var(&demoMidSquareKey, "midsquare-key", 1234567890, "seed and cipher key for the middle-square generator")
	flags.IntVarP(&demoRolls, "rolls", "n", dice.DefaultRolls, "dice rolls per generator")
}

func runDemo(w io.Writer, cfg demoConfig) error {
	fmt.Fprintln(w, "Stream encryption with pseudo-random generators")
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "Instantiating linear congruential generator")
	lcgGen := lcg.New()
	fmt.Fprintln(w, "...OK")

	fmt.Fprintln(w, "Instantiating middle square generator")
	msGen, err := midsquare.New(midsquare.WithDigits(cfg.Digits), midsquare.WithSeed(cfg.MidSquareKey))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "...OK")

	steps := []struct {
		title string
		g     prng.Generator
		key   uint64
	}{
		{title: "LCG", g: lcgGen, key: cfg.LCGKey},
		{title: "middle square", g: msGen, key: cfg.MidSquareKey},
	}

	for _, s := range steps {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "Dice test using %s\n", s.title)
		result, err := dice.Sample(s.g, dice.Request{Rolls: cfg.Rolls})
		if err != nil {
			return err
		}
		printDice(w, result)
	}

	for _, s := range steps {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "Cypher test using %s\n", s.title)
		printTrial(w, xor.RoundTrip(s.g, s.key, cfg.Message))
	}
	fmt.Fprintln(w, rule)
	return nil
}
