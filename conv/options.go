// Package conv: bias policy and functional options.
package conv

// Bias selects the bias policy of a convolution output.
//
// BiasAuto is the safe default: bias only where it cannot break the
// symmetry class of the output (unsigned outputs). The explicit settings
// override the policy; a bias forced onto a signed output destroys its
// orientation equivariance and is the caller's responsibility.
type Bias int

const (
	// BiasAuto enables bias exactly when signedOut is false.
	BiasAuto Bias = iota

	// BiasAlways forces a bias regardless of output signedness.
	BiasAlways

	// BiasNever disables bias regardless of output signedness.
	BiasNever
)

// String returns the policy name for diagnostics.
func (b Bias) String() string {
	switch b {
	case BiasAlways:
		return "always"
	case BiasNever:
		return "never"
	default:
		return "auto"
	}
}

// enabled resolves the policy against the output signedness.
func (b Bias) enabled(signedOut bool) bool {
	switch b {
	case BiasAlways:
		return true
	case BiasNever:
		return false
	default:
		return !signedOut
	}
}

// Option mutates convolution construction options.
type Option func(*Options)

// Options stores the effective convolution configuration. Fields are
// unexported; public entry points accept ...Option.
type Options struct {
	bias             Bias // DefaultBias
	nodeFeatureWidth int  // DefaultNodeFeatureWidth; NodeConv only
}

// DefaultBias is the default bias policy (auto: bias iff unsigned output).
const DefaultBias = BiasAuto

// DefaultNodeFeatureWidth disables auxiliary node features.
const DefaultNodeFeatureWidth = 0

// WithBias sets the bias policy.
func WithBias(b Bias) Option {
	return func(o *Options) { o.bias = b }
}

// WithNodeFeatureWidth declares the width of caller-supplied node features
// concatenated onto the node-level signal before the node transformation.
// Panics on negative width (programmer error). Plain Conv ignores it.
func WithNodeFeatureWidth(w int) Option {
	if w < 0 {
		panic("conv: WithNodeFeatureWidth: width must be non-negative")
	}

	return func(o *Options) { o.nodeFeatureWidth = w }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{bias: DefaultBias, nodeFeatureWidth: DefaultNodeFeatureWidth}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
