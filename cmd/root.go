package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// Configuration keys shared by the subcommands. Each one can come from a
// flag, from TPRNG_<KEY> in the environment or from the config file.
const (
	keyGenerator = "generator"
	keyDigits    = "digits"
	keyKey       = "key"
	keyMessage   = "message"

	defaultMessage = "Hello world!  Cyphering is fun."
	defaultKey     = 123456
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tprng",
	Short: "Pseudo-random generators as stream cipher keystreams.",
	Long: `Pseudo-random generators as stream cipher keystreams.
Repo: https://github.com/tutils/tprng
Roll dice or XOR data with a middle-square or LCG keystream, For example:
  tprng dice --generator=lcg --rolls=1000
  tprng cipher --generator=midsquare --digits=10 --key=1234567890
  tprng crypt --key=816559 --in=secret.txt --out=secret.bin
  tprng image --in=photo.jpg --generator=midsquare --digits=15 --key=123456`,
	SilenceUsage: true,
}

const (
	prefix = "@"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) == 2 && strings.HasPrefix(os.Args[1], prefix) {
		args, err := decodeCmdline(os.Args[1][1:])
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
		os.Args = append(os.Args[:1], args...)
	} else if len(os.Args) >= 2 {
		if s, err := encodeCmdline(os.Args[1:]); err == nil {
			log.Println(prefix + s)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tprng.yaml)")
	flags.StringP(keyGenerator, "g", generatorLCG, fmt.Sprintf("generator algorithm (%s)", strings.Join(generatorNames(), ", ")))
	flags.IntP(keyDigits, "d", 10, "middle-square digit width")
	flags.Uint64P(keyKey, "k", defaultKey, "cipher key, used as the generator seed")
	flags.StringP(keyMessage, "m", defaultMessage, "plaintext message")

	for _, name := range []string{keyGenerator, keyDigits, keyKey, keyMessage} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".tprng" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".tprng")
	}

	viper.SetEnvPrefix("tprng")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Println(err)
		os.Exit(1)
	}
}
