package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/tprng/dice"
	"github.com/tutils/tprng/visual"
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render generator output as SVG",
	Long: `Render a scatter plot of successive keystream byte pairs, or a histogram
of dice faces, as SVG. For example:
  tprng plot --kind=scatter -n 2000 --out=lcg.svg
  tprng plot --kind=dice --generator=midsquare --digits=10 --seed=1234567890 -n 600`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := configuredGenerator()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			g.SetSeed(plotSeed)
		}

		var w io.Writer = cmd.OutOrStdout()
		if plotOutput != "" && plotOutput != "-" {
			f, err := os.Create(plotOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		title := viper.GetString(keyGenerator)
		switch plotKind {
		case "scatter":
			return visual.Scatter(w, g, plotCount, title)
		case "dice":
			result, err := dice.Sample(g, dice.Request{Rolls: plotCount})
			if err != nil {
				return err
			}
			return visual.Histogram(w, result, title)
		default:
			return fmt.Errorf("unknown plot kind %q", plotKind)
		}
	},
}

var (
	plotKind   string
	plotCount  int
	plotSeed   uint64
	plotOutput string
)

func init() {
	rootCmd.AddCommand(plotCmd)

	flags := plotCmd.Flags()
	flags.StringVar(&plotKind, "kind", "scatter", "plot kind (scatter, dice)")
	flags.IntVarP(&plotCount, "count", "n", 1000, "points or rolls")
	flags.Uint64Var(&plotSeed, "seed", 0, "generator seed (default: the generator's own)")
	flags.StringVarP(&plotOutput, "out", "o", "", "output file (default stdout)")
}
