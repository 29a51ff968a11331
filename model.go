// Package eign: the stacked EIGN model.
package eign

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/dfuchsgruber/eign/block"
	"github.com/dfuchsgruber/eign/conv"
	"github.com/dfuchsgruber/eign/core"
)

// Output pairs the two result streams of a forward pass. Both matrices are
// real; complex intermediate state never leaves the model.
type Output struct {
	Signed   *mat.Dense // M × signed-out, orientation-equivariant
	Unsigned *mat.Dense // M × unsigned-out, orientation-invariant on undirected edges
}

// Model stacks input heads, NumBlocks EIGN blocks, and output heads, carrying
// the (signed, unsigned) stream pair forward through every block.
type Model struct {
	cfg    Options
	inS    *conv.Linear // signed input head, biasless
	inU    *conv.Linear // unsigned input head
	blocks []*block.Block
	outS   *conv.Linear // signed output head, biasless
	outU   *conv.Linear // unsigned output head
}

// New constructs a model with plain Laplacian convolutions (unless
// WithNodeTransformation is among opts). All parameters draw from src in a
// fixed construction order, so equal sources yield identical models.
//
// Errors: ErrNilSource, ErrBadChannels, ErrBadBlocks, plus constructor
// errors of the underlying layers (notably conv.ErrOddChannels when q != 0
// and a hidden width is odd, and conv.ErrBadQ for non-finite q).
func New(src rand.Source, opts ...Option) (*Model, error) {
	if src == nil {
		return nil, fmt.Errorf("New: %w", ErrNilSource)
	}

	cfg := gatherOptions(opts...)
	widths := []int{
		cfg.signedIn, cfg.signedHidden, cfg.signedOut,
		cfg.unsignedIn, cfg.unsignedHidden, cfg.unsignedOut,
	}
	for _, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("New: widths %v: %w", widths, ErrBadChannels)
		}
	}
	if cfg.numBlocks <= 0 {
		return nil, fmt.Errorf("New: numBlocks=%d: %w", cfg.numBlocks, ErrBadBlocks)
	}

	m := &Model{cfg: cfg}

	// Input heads: project both streams to hidden width. The signed head is
	// biasless under any policy short of BiasAlways.
	var err error
	if m.inS, err = conv.NewLinear(src, cfg.signedIn, cfg.signedHidden, cfg.bias == conv.BiasAlways); err != nil {
		return nil, fmt.Errorf("New: signed input head: %w", err)
	}
	if m.inU, err = conv.NewLinear(src, cfg.unsignedIn, cfg.unsignedHidden, cfg.bias != conv.BiasNever); err != nil {
		return nil, fmt.Errorf("New: unsigned input head: %w", err)
	}

	// Message-passing blocks.
	blockOpts := []block.Option{block.WithBias(cfg.bias)}
	if cfg.nodeTransform {
		blockOpts = append(blockOpts,
			block.WithNodeTransformation(cfg.factory),
			block.WithNodeFeatureWidth(cfg.nodeFeatureWidth))
	}
	m.blocks = make([]*block.Block, cfg.numBlocks)
	for i := range m.blocks {
		if m.blocks[i], err = block.NewBlock(src, cfg.signedHidden, cfg.unsignedHidden, cfg.q, blockOpts...); err != nil {
			return nil, fmt.Errorf("New: block %d: %w", i, err)
		}
	}

	// Output heads mirror the input-head bias policy.
	if m.outS, err = conv.NewLinear(src, cfg.signedHidden, cfg.signedOut, cfg.bias == conv.BiasAlways); err != nil {
		return nil, fmt.Errorf("New: signed output head: %w", err)
	}
	if m.outU, err = conv.NewLinear(src, cfg.unsignedHidden, cfg.unsignedOut, cfg.bias != conv.BiasNever); err != nil {
		return nil, fmt.Errorf("New: unsigned output head: %w", err)
	}

	return m, nil
}

// NewWithNodeTransformation constructs a model whose blocks use
// node-transformation convolutions with the given factory (nil selects
// conv.DefaultNodeTransform). Equivalent to New with WithNodeTransformation
// prepended; kept as a named constructor because it is the second of the two
// canonical EIGN flavors.
func NewWithNodeTransformation(src rand.Source, factory conv.NodeTransformFactory, opts ...Option) (*Model, error) {
	return New(src, append([]Option{WithNodeTransformation(factory)}, opts...)...)
}

// NumBlocks returns the message-passing depth.
func (m *Model) NumBlocks() int { return len(m.blocks) }

// Q returns the configured phase parameter.
func (m *Model) Q() float64 { return m.cfg.q }

// Forward runs the full network over el. xSigned is M×signed-in, xUnsigned
// is M×unsigned-in; extra may be nil unless a node-feature width was
// configured.
//
// Errors: ErrNilInput, ErrDimensionMismatch, plus forward errors of the
// underlying layers (operator construction, node features, transform shape).
func (m *Model) Forward(el *core.EdgeList, xSigned, xUnsigned *mat.Dense, extra *conv.Extra) (*Output, error) {
	if xSigned == nil || xUnsigned == nil {
		return nil, fmt.Errorf("Model.Forward: %w", ErrNilInput)
	}
	if el == nil {
		return nil, fmt.Errorf("Model.Forward: %w", core.ErrNilEdgeList)
	}
	sr, sc := xSigned.Dims()
	ur, uc := xUnsigned.Dims()
	if sr != el.EdgeCount() || ur != el.EdgeCount() || sc != m.cfg.signedIn || uc != m.cfg.unsignedIn {
		return nil, fmt.Errorf("Model.Forward: signed %dx%d, unsigned %dx%d over %d edges: %w",
			sr, sc, ur, uc, el.EdgeCount(), ErrDimensionMismatch)
	}

	// Input heads.
	hS, err := m.inS.Forward(xSigned)
	if err != nil {
		return nil, fmt.Errorf("Model.Forward: signed input head: %w", err)
	}
	hU, err := m.inU.Forward(xUnsigned)
	if err != nil {
		return nil, fmt.Errorf("Model.Forward: unsigned input head: %w", err)
	}

	// Blocks, carrying both streams.
	for i, blk := range m.blocks {
		if hS, hU, err = blk.Forward(el, hS, hU, extra); err != nil {
			return nil, fmt.Errorf("Model.Forward: block %d: %w", i, err)
		}
	}

	// Output heads.
	yS, err := m.outS.Forward(hS)
	if err != nil {
		return nil, fmt.Errorf("Model.Forward: signed output head: %w", err)
	}
	yU, err := m.outU.Forward(hU)
	if err != nil {
		return nil, fmt.Errorf("Model.Forward: unsigned output head: %w", err)
	}

	return &Output{Signed: yS, Unsigned: yU}, nil
}

// Parameters aggregates every layer's tensors in a stable order (heads,
// then blocks front to back). Slices share storage with the layers; an
// external optimizer updating them in place is the training contract.
func (m *Model) Parameters() []*mat.Dense {
	params := m.inS.Parameters()
	params = append(params, m.inU.Parameters()...)
	for _, blk := range m.blocks {
		params = append(params, blk.Parameters()...)
	}
	params = append(params, m.outS.Parameters()...)
	params = append(params, m.outU.Parameters()...)

	return params
}
