// Package imagexor runs grayscale images through a keystream. Pixels are the
// plaintext bytes; the transform is the same XOR used for text.
package imagexor

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	_ "image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/tutils/tprng/crypt/xor"
	"github.com/tutils/tprng/prng"
)

// DefaultSize is the edge length images are resized to before encryption.
const DefaultSize = 256

// ErrInvalidSize indicates a negative target size.
var ErrInvalidSize = errors.New("image size must be non-negative")

// Load decodes a PNG, JPEG or GIF image and converts it to grayscale. A
// positive size resizes the result to size x size; zero keeps the original
// dimensions.
func Load(r io.Reader, size int) (*image.Gray, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return Grayscale(src, size), nil
}

// Grayscale converts src to an 8-bit gray image, resized to size x size
// when size is positive.
func Grayscale(src image.Image, size int) *image.Gray {
	if size <= 0 {
		b := src.Bounds()
		dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	dst := image.NewGray(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encrypt returns a copy of src with every pixel XORed against one keystream
// byte, row by row. g is not reseeded, so consecutive calls continue the
// same keystream.
func Encrypt(g prng.Generator, src *image.Gray) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		srow := src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)]
		drow := dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)]
		xor.XORKeyStream(drow, srow, g)
	}
	return dst
}

// EncryptWithKey seeds g with key before encrypting; applying it twice with
// the same key restores the image.
func EncryptWithKey(g prng.Generator, key uint64, src *image.Gray) *image.Gray {
	g.SetSeed(key)
	return Encrypt(g, src)
}

// Save encodes img as PNG.
func Save(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
