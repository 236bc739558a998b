package distmat

// DefaultEpsilon is the structural tolerance used by symmetry and diagonal
// checks. It is deliberately tight: distance matrices are usually produced
// by a metric callback and should be symmetric to machine precision.
const DefaultEpsilon = 1e-12

// Option configures matrix ingestion via functional arguments.
type Option func(*Options)

// Options holds the effective ingestion policy after applying setters.
type Options struct {
	// Eps is the non-negative tolerance for symmetry/diagonal checks.
	Eps float64

	// AllowInf permits +Inf off-diagonal entries, read as "farther than
	// every scale of interest". NaN and -Inf remain rejected.
	AllowInf bool
}

// DefaultOptions returns the documented defaults: DefaultEpsilon, no +Inf.
func DefaultOptions() Options {
	return Options{Eps: DefaultEpsilon, AllowInf: false}
}

// WithEpsilon sets the structural tolerance. Negative or NaN values are
// ignored in favor of the default (a nonsensical epsilon is a programmer
// error, but ingestion must stay total).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps >= 0 {
			o.Eps = eps
		}
	}
}

// WithAllowInf permits +Inf off-diagonal entries.
func WithAllowInf() Option {
	return func(o *Options) { o.AllowInf = true }
}

// gatherOptions applies user setters on top of defaults, last-writer-wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
