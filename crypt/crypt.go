// Package crypt defines symmetric stream transforms that wrap readers and
// writers.
package crypt

import (
	"io"
)

// EncoderOptions is the option set of a concrete encoder. Each Crypt
// implementation type-asserts it to its own options struct.
type EncoderOptions interface{}

// EncoderOption adjusts a single encoder.
type EncoderOption func(opts EncoderOptions)

// DecoderOptions is the option set of a concrete decoder.
type DecoderOptions interface{}

// DecoderOption adjusts a single decoder.
type DecoderOption func(opts DecoderOptions)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}
