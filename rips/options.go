package rips

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilMatrix is returned when Build receives a nil distance matrix.
	ErrNilMatrix = errors.New("rips: distance matrix is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rips: invalid option supplied")
)

// DefaultMaxDim is the default dimension bound: vertices and edges plus
// triangles is the usual working range for H0/H1.
const DefaultMaxDim = 2

// Option configures Rips construction via functional arguments. Invalid
// values are recorded and surfaced as ErrOptionViolation when Build runs.
type Option func(*Options)

// Options holds the effective Rips construction parameters.
type Options struct {
	// MaxRadius is the clique-expansion distance bound; +Inf disables it.
	MaxRadius float64

	// MaxDim is the highest simplex dimension emitted.
	MaxDim int

	// Workers is the fan-out of the per-level candidate scan. 0 means
	// sequential; the scan is only worth fanning out for large levels.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults: unbounded radius,
// MaxDim = DefaultMaxDim, sequential scan.
func DefaultOptions() Options {
	return Options{MaxRadius: math.Inf(1), MaxDim: DefaultMaxDim}
}

// WithMaxRadius bounds clique expansion at r. r must be non-negative and
// not NaN; +Inf means unbounded.
func WithMaxRadius(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || r < 0 {
			o.err = fmt.Errorf("%w: MaxRadius must be ≥ 0, got %v", ErrOptionViolation, r)
			return
		}
		o.MaxRadius = r
	}
}

// WithMaxDim bounds the emitted simplex dimension at k ≥ 0. k = 0 yields
// vertices only, k = 1 vertices and edges, and so on.
func WithMaxDim(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxDim cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxDim = k
	}
}

// WithWorkers fans the candidate scan of each dimension level out over n
// goroutines. n = 0 keeps the scan sequential.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// gatherOptions applies user setters on top of defaults, last-writer-wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
