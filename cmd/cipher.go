package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/tprng/crypt/xor"
)

// cipherCmd represents the cipher command
var cipherCmd = &cobra.Command{
	Use:   "cipher",
	Short: "Encrypt and decrypt a message",
	Long: `Encrypt a message with the keystream of a generator seeded by the key,
decrypt it with the same key, then decrypt it with key+1. For example:
  tprng cipher --generator=lcg --key=123456
  tprng cipher --generator=midsquare --digits=10 --key=1234567890 --message="attack at dawn"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := configuredGenerator()
		if err != nil {
			return err
		}
		trial := xor.RoundTrip(g, viper.GetUint64(keyKey), viper.GetString(keyMessage))
		printTrial(cmd.OutOrStdout(), trial)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cipherCmd)
}
