// Package block: the EIGN message-passing block.
package block

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/dfuchsgruber/eign/conv"
	"github.com/dfuchsgruber/eign/core"
)

// edgeConv abstracts over the two convolution flavors (plain and
// node-transformation) so the block wiring stays flavor-agnostic.
type edgeConv interface {
	Forward(el *core.EdgeList, x *mat.Dense, extra *conv.Extra) (*mat.Dense, error)
	Parameters() []*mat.Dense
}

// plainConv adapts conv.Conv to the edgeConv signature (it takes no extra).
type plainConv struct{ *conv.Conv }

func (p plainConv) Forward(el *core.EdgeList, x *mat.Dense, _ *conv.Extra) (*mat.Dense, error) {
	return p.Conv.Forward(el, x)
}

// Option mutates block construction options.
type Option func(*Options)

// Options stores the effective block configuration.
type Options struct {
	bias             conv.Bias
	nodeTransform    bool
	factory          conv.NodeTransformFactory
	nodeFeatureWidth int
}

// WithBias sets the bias policy handed to every convolution and residual.
func WithBias(b conv.Bias) Option {
	return func(o *Options) { o.bias = b }
}

// WithNodeTransformation switches every convolution to the node-
// transformation flavor. A nil factory selects conv.DefaultNodeTransform.
func WithNodeTransformation(factory conv.NodeTransformFactory) Option {
	return func(o *Options) {
		o.nodeTransform = true
		o.factory = factory
	}
}

// WithNodeFeatureWidth declares the caller node-feature width forwarded to
// the node transformations. Panics on negative width (programmer error).
func WithNodeFeatureWidth(w int) Option {
	if w < 0 {
		panic("block: WithNodeFeatureWidth: width must be non-negative")
	}

	return func(o *Options) { o.nodeFeatureWidth = w }
}

// Block is one EIGN message-passing step over a signed and an unsigned
// stream. See the package documentation for the wiring.
type Block struct {
	signedWidth   int
	unsignedWidth int

	ss, us, su, uu edgeConv     // the four Laplacian-variant convolutions
	resS, resU     *conv.Linear // residual self-paths (signed one biasless)
	fuseS, fuseU   *Fusion
}

// NewBlock constructs a block with the given stream widths and phase
// parameter. All parameters draw from src.
// Errors: ErrNilSource, ErrBadChannels, plus conv constructor errors
// (notably conv.ErrOddChannels when q != 0 and a width is odd).
func NewBlock(src rand.Source, signedWidth, unsignedWidth int, q float64, opts ...Option) (*Block, error) {
	if src == nil {
		return nil, fmt.Errorf("NewBlock: %w", ErrNilSource)
	}
	if signedWidth <= 0 || unsignedWidth <= 0 {
		return nil, fmt.Errorf("NewBlock: widths %d/%d: %w", signedWidth, unsignedWidth, ErrBadChannels)
	}

	cfg := Options{bias: conv.DefaultBias}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Block{signedWidth: signedWidth, unsignedWidth: unsignedWidth}

	// The four convolutions, keyed by (signedIn, signedOut).
	var err error
	if b.ss, err = b.newConv(src, cfg, signedWidth, signedWidth, q, true, true); err != nil {
		return nil, fmt.Errorf("NewBlock: signed→signed: %w", err)
	}
	if b.us, err = b.newConv(src, cfg, unsignedWidth, signedWidth, q, false, true); err != nil {
		return nil, fmt.Errorf("NewBlock: unsigned→signed: %w", err)
	}
	if b.su, err = b.newConv(src, cfg, signedWidth, unsignedWidth, q, true, false); err != nil {
		return nil, fmt.Errorf("NewBlock: signed→unsigned: %w", err)
	}
	if b.uu, err = b.newConv(src, cfg, unsignedWidth, unsignedWidth, q, false, false); err != nil {
		return nil, fmt.Errorf("NewBlock: unsigned→unsigned: %w", err)
	}

	// Residual self-paths follow the convolution bias policy: never a bias
	// on the signed stream under BiasAuto.
	if b.resS, err = conv.NewLinear(src, signedWidth, signedWidth, cfg.bias == conv.BiasAlways); err != nil {
		return nil, fmt.Errorf("NewBlock: signed residual: %w", err)
	}
	if b.resU, err = conv.NewLinear(src, unsignedWidth, unsignedWidth, cfg.bias != conv.BiasNever); err != nil {
		return nil, fmt.Errorf("NewBlock: unsigned residual: %w", err)
	}

	if b.fuseS, err = NewFusion(src, signedWidth, true); err != nil {
		return nil, fmt.Errorf("NewBlock: signed fusion: %w", err)
	}
	if b.fuseU, err = NewFusion(src, unsignedWidth, false); err != nil {
		return nil, fmt.Errorf("NewBlock: unsigned fusion: %w", err)
	}

	return b, nil
}

// newConv builds one convolution in the configured flavor.
func (b *Block) newConv(src rand.Source, cfg Options, in, out int, q float64, signedIn, signedOut bool) (edgeConv, error) {
	convOpts := []conv.Option{conv.WithBias(cfg.bias)}
	if cfg.nodeTransform {
		convOpts = append(convOpts, conv.WithNodeFeatureWidth(cfg.nodeFeatureWidth))

		return conv.NewNodeConv(src, in, out, q, signedIn, signedOut, cfg.factory, convOpts...)
	}

	c, err := conv.NewConv(src, in, out, q, signedIn, signedOut, convOpts...)
	if err != nil {
		return nil, err
	}

	return plainConv{c}, nil
}

// SignedWidth returns the signed stream width.
func (b *Block) SignedWidth() int { return b.signedWidth }

// UnsignedWidth returns the unsigned stream width.
func (b *Block) UnsignedWidth() int { return b.unsignedWidth }

// Forward runs one message-passing step. extra may be nil unless the block
// was configured with a node-feature width.
//
// Steps:
//  1. Four convolution outputs across the symmetry classes.
//  2. Residual self-paths added to the same-class outputs.
//  3. Gated fusion of the class-preserving and class-crossing paths.
//
// Errors: ErrNilInput, ErrDimensionMismatch, plus forward errors of the
// underlying layers.
func (b *Block) Forward(el *core.EdgeList, xSigned, xUnsigned *mat.Dense, extra *conv.Extra) (ySigned, yUnsigned *mat.Dense, err error) {
	if xSigned == nil || xUnsigned == nil {
		return nil, nil, fmt.Errorf("Block.Forward: %w", ErrNilInput)
	}
	sr, sc := xSigned.Dims()
	ur, uc := xUnsigned.Dims()
	if sr != ur || sc != b.signedWidth || uc != b.unsignedWidth {
		return nil, nil, fmt.Errorf("Block.Forward: signed %dx%d, unsigned %dx%d, widths %d/%d: %w",
			sr, sc, ur, uc, b.signedWidth, b.unsignedWidth, ErrDimensionMismatch)
	}

	// 1) Four convolutions.
	ss, err := b.ss.Forward(el, xSigned, extra)
	if err != nil {
		return nil, nil, fmt.Errorf("Block.Forward: signed→signed: %w", err)
	}
	us, err := b.us.Forward(el, xUnsigned, extra)
	if err != nil {
		return nil, nil, fmt.Errorf("Block.Forward: unsigned→signed: %w", err)
	}
	su, err := b.su.Forward(el, xSigned, extra)
	if err != nil {
		return nil, nil, fmt.Errorf("Block.Forward: signed→unsigned: %w", err)
	}
	uu, err := b.uu.Forward(el, xUnsigned, extra)
	if err != nil {
		return nil, nil, fmt.Errorf("Block.Forward: unsigned→unsigned: %w", err)
	}

	// 2) Residual self-paths.
	rs, err := b.resS.Forward(xSigned)
	if err != nil {
		return nil, nil, fmt.Errorf("Block.Forward: signed residual: %w", err)
	}
	ss.Add(ss, rs)

	ru, err := b.resU.Forward(xUnsigned)
	if err != nil {
		return nil, nil, fmt.Errorf("Block.Forward: unsigned residual: %w", err)
	}
	uu.Add(uu, ru)

	// 3) Fusion across symmetry classes.
	if ySigned, err = b.fuseS.Fuse(ss, us); err != nil {
		return nil, nil, fmt.Errorf("Block.Forward: signed fusion: %w", err)
	}
	if yUnsigned, err = b.fuseU.Fuse(uu, su); err != nil {
		return nil, nil, fmt.Errorf("Block.Forward: unsigned fusion: %w", err)
	}

	return ySigned, yUnsigned, nil
}

// Parameters aggregates every layer's tensors in a stable order.
func (b *Block) Parameters() []*mat.Dense {
	params := b.ss.Parameters()
	params = append(params, b.us.Parameters()...)
	params = append(params, b.su.Parameters()...)
	params = append(params, b.uu.Parameters()...)
	params = append(params, b.resS.Parameters()...)
	params = append(params, b.resU.Parameters()...)
	params = append(params, b.fuseS.Parameters()...)
	params = append(params, b.fuseU.Parameters()...)

	return params
}
