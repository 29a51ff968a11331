// Package eign: model configuration (functional options) and sentinel errors.
package eign

import (
	"errors"

	"github.com/dfuchsgruber/eign/conv"
)

// Sentinel errors for model construction and forward calls.
var (
	// ErrNilSource indicates a nil rand.Source at construction.
	ErrNilSource = errors.New("eign: rand source is nil")

	// ErrBadChannels indicates a non-positive channel width.
	ErrBadChannels = errors.New("eign: channel widths must be positive")

	// ErrBadBlocks indicates a non-positive block count.
	ErrBadBlocks = errors.New("eign: num blocks must be positive")

	// ErrNilInput indicates a nil signal matrix at forward time.
	ErrNilInput = errors.New("eign: input matrix is nil")

	// ErrDimensionMismatch indicates signal shapes that disagree with the
	// configured channel widths or the edge list.
	ErrDimensionMismatch = errors.New("eign: dimension mismatch")
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultWidth is the default channel width for every unset in/hidden/out slot.
	DefaultWidth = 16

	// DefaultNumBlocks is the default message-passing depth.
	DefaultNumBlocks = 2

	// DefaultQ is the default phase parameter; 0 keeps every operator real.
	DefaultQ = 0.0
)

// Option mutates model construction options.
type Option func(*Options)

// Options stores the effective model configuration. Fields are unexported;
// New accepts ...Option and resolves them over the documented defaults.
type Options struct {
	signedIn, signedHidden, signedOut       int
	unsignedIn, unsignedHidden, unsignedOut int
	numBlocks                               int
	q                                       float64
	bias                                    conv.Bias
	nodeTransform                           bool
	factory                                 conv.NodeTransformFactory
	nodeFeatureWidth                        int
}

// WithSignedChannels sets the signed stream widths (input, hidden, output).
func WithSignedChannels(in, hidden, out int) Option {
	return func(o *Options) {
		o.signedIn, o.signedHidden, o.signedOut = in, hidden, out
	}
}

// WithUnsignedChannels sets the unsigned stream widths (input, hidden, output).
func WithUnsignedChannels(in, hidden, out int) Option {
	return func(o *Options) {
		o.unsignedIn, o.unsignedHidden, o.unsignedOut = in, hidden, out
	}
}

// WithNumBlocks sets the number of stacked message-passing blocks.
func WithNumBlocks(n int) Option {
	return func(o *Options) { o.numBlocks = n }
}

// WithQ sets the phase parameter handed to every operator build.
func WithQ(q float64) Option {
	return func(o *Options) { o.q = q }
}

// WithBiasPolicy sets the bias policy for every convolution, residual, and
// head (conv.BiasAuto keeps signed paths biasless).
func WithBiasPolicy(b conv.Bias) Option {
	return func(o *Options) { o.bias = b }
}

// WithNodeTransformation switches the blocks to node-transformation
// convolutions. A nil factory selects conv.DefaultNodeTransform.
func WithNodeTransformation(factory conv.NodeTransformFactory) Option {
	return func(o *Options) {
		o.nodeTransform = true
		o.factory = factory
	}
}

// WithNodeFeatureWidth declares the width of caller-supplied node features
// passed through to the node transformations. Panics on negative width
// (programmer error).
func WithNodeFeatureWidth(w int) Option {
	if w < 0 {
		panic("eign: WithNodeFeatureWidth: width must be non-negative")
	}

	return func(o *Options) { o.nodeFeatureWidth = w }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		signedIn: DefaultWidth, signedHidden: DefaultWidth, signedOut: DefaultWidth,
		unsignedIn: DefaultWidth, unsignedHidden: DefaultWidth, unsignedOut: DefaultWidth,
		numBlocks: DefaultNumBlocks,
		q:         DefaultQ,
		bias:      conv.DefaultBias,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
