// Package mat: functional configuration for numeric policy. Defaults are
// documented constants; option constructors panic only on nonsensical
// values (programmer error), and public entry points consume ...Option.

package mat

import "math"

// DefaultEpsilon is the tolerance below which a determinant (for Inverse)
// or a cross-product norm (for LookAt) is treated as zero.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "mat: WithEpsilon: eps must be finite, non-negative"

// Option mutates the internal options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported so external code cannot mutate resolved policy.
type options struct {
	eps float64
}

// WithEpsilon sets the numeric tolerance used by Inverse's singularity
// check and LookAt's degeneracy check. Zero demands an exactly-zero
// determinant before failing; larger values fail earlier on
// near-singular input. Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions resolves defaults and applies every setter in order.
func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
