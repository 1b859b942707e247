package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/tprng/counter/period"
	"github.com/tutils/tprng/crypt/xor"
)

// cryptCmd represents the crypt command
var cryptCmd = &cobra.Command{
	Use:   "crypt",
	Short: "XOR a file with a keystream",
	Long: `Stream a file (or stdin) through the XOR cipher and write the result to
a file (or stdout). Running it again with the same key and generator
restores the input. For example:
  tprng crypt --key=816559 --in=notes.txt --out=notes.bin
  tprng crypt --key=816559 --in=notes.bin --out=notes.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		newer, err := configuredNewer()
		if err != nil {
			return err
		}

		var r io.Reader = cmd.InOrStdin()
		if cryptInput != "" && cryptInput != "-" {
			f, err := os.Open(cryptInput)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		var w io.Writer = cmd.OutOrStdout()
		if cryptOutput != "" && cryptOutput != "-" {
			f, err := os.Create(cryptOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		cnt := period.NewPeriodCounter(time.Second)
		c := xor.NewCrypt(viper.GetUint64(keyKey), xor.WithGeneratorNewer(newer))
		start := time.Now()
		if _, err := io.Copy(c.NewEncoder(w, xor.WithEncoderCounter(cnt)), r); err != nil {
			return fmt.Errorf("crypt: %w", err)
		}
		if cryptVerbose {
			log.Printf("%d bytes in %v, %d B/s", cnt.Value(), time.Since(start), cnt.RatePerSec())
		}
		return nil
	},
}

var (
	cryptInput   string
	cryptOutput  string
	cryptVerbose bool
)

func init() {
	rootCmd.AddCommand(cryptCmd)

	flags := cryptCmd.Flags()
	flags.StringVarP(&cryptInput, "in", "i", "", "input file (default stdin)")
	flags.StringVarP(&cryptOutput, "out", "o", "", "output file (default stdout)")
	flags.BoolVarP(&cryptVerbose, "verbose", "v", false, "log throughput")
}
