package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/tprng/imagexor"
)

// imageCmd represents the image command
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "XOR the pixels of an image",
	Long: `Convert an image to grayscale, resize it and XOR every pixel with the
keystream of a generator. Structure that survives in the output is
structure in the keystream. For example:
  tprng image --in=photo.jpg --generator=constant
  tprng image --in=photo.jpg --generator=midsquare --digits=15 --key=123456 --out=ms.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if imageInput == "" {
			return fmt.Errorf("must specify --in")
		}
		g, err := configuredGenerator()
		if err != nil {
			return err
		}

		in, err := os.Open(imageInput)
		if err != nil {
			return err
		}
		defer in.Close()
		src, err := imagexor.Load(in, imageSize)
		if err != nil {
			return fmt.Errorf("%s: %w", imageInput, err)
		}

		dst := imagexor.EncryptWithKey(g, viper.GetUint64(keyKey), src)

		path := imageOutput
		if path == "" {
			path = fmt.Sprintf("%s-%s.png", viper.GetString(keyGenerator), uuid.NewString()[:8])
		}
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := imagexor.Save(out, dst); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		log.Println("Wrote", path)
		return nil
	},
}

var (
	imageInput  string
	imageOutput string
	imageSize   int
)

func init() {
	rootCmd.AddCommand(imageCmd)

	flags := imageCmd.Flags()
	flags.StringVarP(&imageInput, "in", "i", "", "source image (png, jpeg or gif)")
	flags.StringVarP(&imageOutput, "out", "o", "", "output png (default <generator>-<id>.png)")
	flags.IntVar(&imageSize, "size", imagexor.DefaultSize, "resize to size x size, 0 keeps the original size")
}
