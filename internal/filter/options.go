package filter

import (
	"fmt"

	"github.com/Hellblazer/bloomier/internal/mixhash"
)

type Options struct {
	// ProbeFactor bounds the double-hashing search at ProbeFactor*k
	// candidates per key.
	ProbeFactor int
}

var DefaultOptions = Options{
	ProbeFactor: mixhash.DefaultProbeFactor,
}

type Option func(*Options)

func WithProbeFactor(n int) Option {
	return func(o *Options) {
		o.ProbeFactor = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.ProbeFactor < 1 {
		return o, fmt.Errorf("%w: probe factor %d must be at least 1", ErrInvalidParameter, o.ProbeFactor)
	}
	return o, nil
}
