package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sequenceCmd represents the sequence command
var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Print generator draws",
	Long: `Print successive draws of a generator, one per line. For example:
  tprng sequence --generator=midsquare --digits=4 --seed=5735 -n 10
  tprng sequence --generator=lcg --format=normalized -n 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := configuredGenerator()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			g.SetSeed(sequenceSeed)
		}

		var draw func() any
		switch sequenceFormat {
		case "raw":
			draw = func() any { return g.Raw() }
		case "normalized":
			draw = func() any { return g.Normalized() }
		case "byte":
			draw = func() any { return g.NormalizedByte() }
		default:
			return fmt.Errorf("unknown format %q", sequenceFormat)
		}

		w := cmd.OutOrStdout()
		for i := 0; i < sequenceCount; i++ {
			fmt.Fprintln(w, draw())
		}
		return nil
	},
}

var (
	sequenceCount  int
	sequenceSeed   uint64
	sequenceFormat string
)

func init() {
	rootCmd.AddCommand(sequenceCmd)

	flags := sequenceCmd.Flags()
	flags.IntVarP(&sequenceCount, "count", "n", 10, "number of draws")
	flags.Uint64Var(&sequenceSeed, "seed", 0, "generator seed (default: the generator's own)")
	flags.StringVarP(&sequenceFormat, "format", "f", "raw", "draw format (raw, normalized, byte)")
}
