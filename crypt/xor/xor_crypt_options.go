package xor

import (
	"github.com/tutils/tprng/counter"
	"github.com/tutils/tprng/crypt"
	"github.com/tutils/tprng/prng"
	"github.com/tutils/tprng/prng/lcg"
)

// GeneratorNewer builds the keystream generator for one encoder or decoder.
type GeneratorNewer func(seed uint64) prng.Generator

// DefaultGeneratorNewer seeds an ANSI C LCG.
var DefaultGeneratorNewer GeneratorNewer = lcg.NewWithSeed

type counterAdder interface {
	Add(bytes int64)
}

type nopCounter struct{}

func (nopCounter) Add(int64) {}

type cryptOptions struct {
	newer GeneratorNewer
}

// CryptOption configures every encoder and decoder of a Crypt.
type CryptOption func(opts *cryptOptions)

func newCryptOptions(opts ...CryptOption) *cryptOptions {
	var opt cryptOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.newer == nil {
		opt.newer = DefaultGeneratorNewer
	}
	return &opt
}

// WithGeneratorNewer selects the keystream algorithm.
func WithGeneratorNewer(newer GeneratorNewer) CryptOption {
	return func(opts *cryptOptions) {
		opts.newer = newer
	}
}

type xorEncoderOptions struct {
	newer   GeneratorNewer
	counter counterAdder
}

func newXorEncoderOptions(base *cryptOptions, opts ...crypt.EncoderOption) *xorEncoderOptions {
	opt := xorEncoderOptions{newer: base.newer}
	for _, o := range opts {
		o(&opt)
	}
	if opt.newer == nil {
		opt.newer = DefaultGeneratorNewer
	}
	if opt.counter == nil {
		opt.counter = nopCounter{}
	}
	return &opt
}

// WithEncoderGeneratorNewer overrides the keystream algorithm of one encoder.
func WithEncoderGeneratorNewer(newer GeneratorNewer) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.newer = newer
		}
	}
}

// WithEncoderCounter reports every encoded byte to c.
func WithEncoderCounter(c counter.Counter) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok && c != nil {
			o.counter = c
		}
	}
}

type xorDecoderOptions struct {
	newer   GeneratorNewer
	counter counterAdder
}

func newXorDecoderOptions(base *cryptOptions, opts ...crypt.DecoderOption) *xorDecoderOptions {
	opt := xorDecoderOptions{newer: base.newer}
	for _, o := range opts {
		o(&opt)
	}
	if opt.newer == nil {
		opt.newer = DefaultGeneratorNewer
	}
	if opt.counter == nil {
		opt.counter = nopCounter{}
	}
	return &opt
}

// WithDecoderGeneratorNewer overrides the keystream algorithm of one decoder.
func WithDecoderGeneratorNewer(newer GeneratorNewer) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.newer = newer
		}
	}
}

// WithDecoderCounter reports every decoded byte to c.
func WithDecoderCounter(c counter.Counter) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok && c != nil {
			o.counter = c
		}
	}
}
