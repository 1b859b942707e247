package midsquare

type options struct {
	digits int
	seed   uint64
}

// Option configures a Generator built by New.
type Option func(opts *options)

func newOptions(opts ...Option) *options {
	opt := &options{digits: DefaultDigits}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithDigits sets the extraction width.
func WithDigits(d int) Option {
	return func(opts *options) {
		opts.digits = d
	}
}

// WithSeed sets the initial seed.
func WithSeed(seed uint64) Option {
	return func(opts *options) {
		opts.seed = seed
	}
}
