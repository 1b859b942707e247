// Package xor implements a symmetric stream cipher that XORs data with the
// normalized bytes of a prng.Generator.
//
// Encryption and decryption are the same operation: seeding a generator with
// the same key reproduces the same keystream, and XOR is its own inverse.
// The cipher demonstrates the mechanism only; none of the generators are
// suitable for protecting real data.
package xor

import (
	"io"

	"github.com/tutils/tprng/crypt"
	"github.com/tutils/tprng/prng"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	seed uint64
	opts *cryptOptions
}

// NewCrypt create a new Crypt keyed by seed. Every encoder and decoder it
// returns owns a fresh generator seeded with seed.
func NewCrypt(seed uint64, opts ...CryptOption) crypt.Crypt {
	return &xorCrypt{
		seed: seed,
		opts: newCryptOptions(opts...),
	}
}

func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(c.opts, opts...)
	return &xorEncoder{
		w:   w,
		g:   opt.newer(c.seed),
		cnt: opt.counter,
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(c.opts, opts...)
	return &xorDecoder{
		r:   r,
		g:   opt.newer(c.seed),
		cnt: opt.counter,
	}
}

// XORKeyStream XORs each byte of src with one NormalizedByte draw from g and
// stores the result in dst. dst must be at least as long as src; the two may
// overlap entirely.
func XORKeyStream(dst, src []byte, g prng.Generator) {
	if len(dst) < len(src) {
		panic("xor: output smaller than input")
	}
	for i, b := range src {
		dst[i] = b ^ g.NormalizedByte()
	}
}

// Transform seeds g with key and returns data XORed with the keystream.
// Calling it again with the same key on the result restores data.
func Transform(g prng.Generator, key uint64, data []byte) []byte {
	g.SetSeed(key)
	out := make([]byte, len(data))
	XORKeyStream(out, data, g)
	return out
}

type xorEncoder struct {
	w   io.Writer
	g   prng.Generator
	cnt counterAdder
	buf []byte
}

func (e *xorEncoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}

	XORKeyStream(e.buf, p, e.g)
	e.cnt.Add(int64(n))

	return e.w.Write(e.buf)
}

type xorDecoder struct {
	r   io.Reader
	g   prng.Generator
	cnt counterAdder
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n > 0 {
		XORKeyStream(p[:n], p[:n], d.g)
		d.cnt.Add(int64(n))
	}
	return n, err
}
