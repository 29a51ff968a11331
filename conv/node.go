// Package conv: node-transformation convolution and the NodeTransform
// capability it injects.
package conv

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/dfuchsgruber/eign/core"
	"github.com/dfuchsgruber/eign/laplacian"
)

// Extra carries caller-supplied data passed verbatim to the node
// transformation at forward time. NodeFeatures, when configured, is an
// N×width matrix of externally available node features.
type Extra struct {
	NodeFeatures *mat.Dense
}

// NodeTransform maps a node feature matrix to a node feature matrix of the
// configured output width. Implementations that are orientation-agnostic
// (independent of any edge orientation convention, which the node-level
// signal already is for undirected edges) preserve the convolution's
// equivariance/invariance guarantees.
type NodeTransform interface {
	Forward(nodes *mat.Dense, extra *Extra) (*mat.Dense, error)
}

// NodeTransformFactory produces a NodeTransform for the given channel
// widths, drawing any parameters from src. Injected at construction time so
// arbitrary node-level models can ride inside the convolution.
type NodeTransformFactory func(src rand.Source, in, out int) (NodeTransform, error)

// mlpTransform is the default node transformation: Linear→ReLU→Linear with
// hidden width equal to the output width. It ignores Extra beyond what the
// convolution already concatenated.
type mlpTransform struct {
	l1, l2 *Linear
}

// DefaultNodeTransform is the default NodeTransformFactory: a two-layer
// nonlinear projection.
func DefaultNodeTransform(src rand.Source, in, out int) (NodeTransform, error) {
	l1, err := NewLinear(src, in, out, true)
	if err != nil {
		return nil, fmt.Errorf("DefaultNodeTransform: %w", err)
	}
	l2, err := NewLinear(src, out, out, true)
	if err != nil {
		return nil, fmt.Errorf("DefaultNodeTransform: %w", err)
	}

	return &mlpTransform{l1: l1, l2: l2}, nil
}

// Forward computes l2(relu(l1(nodes))).
func (m *mlpTransform) Forward(nodes *mat.Dense, _ *Extra) (*mat.Dense, error) {
	h, err := m.l1.Forward(nodes)
	if err != nil {
		return nil, err
	}
	relu(h)

	return m.l2.Forward(h)
}

// Parameters exposes both layers' tensors.
func (m *mlpTransform) Parameters() []*mat.Dense {
	return append(m.l1.Parameters(), m.l2.Parameters()...)
}

// relu clamps negatives to zero in place.
func relu(x *mat.Dense) {
	rows, cols := x.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if x.At(i, j) < 0 {
				x.Set(i, j, 0)
			}
		}
	}
}

// NodeConv extends Conv with a node-space path: the post-Laplacian edge
// signal is projected to node level through the output-signedness incidence
// matrix, transformed by the injected NodeTransform, projected back through
// the conjugate-transpose incidence map, and summed onto the direct path:
//
//	y = realify( L·x̃  +  Bᴴ · transform( B · L·x̃ ) ) [+ bias]
//
// with x̃ = complexify(x·W) and B = B(signedOut). Because the node-level
// signal is orientation-invariant for undirected edges, an orientation-
// agnostic transform preserves the symmetry class of the output.
type NodeConv struct {
	Conv
	transform NodeTransform
	auxWidth  int // caller node-feature width, 0 = none
}

// NewNodeConv constructs the node-transformation convolution. A nil factory
// selects DefaultNodeTransform. The transform's input width is out plus the
// configured node-feature width (WithNodeFeatureWidth); its output width is
// out.
//
// Errors: those of NewConv, plus ErrNilTransform when the factory returns
// nil, and factory errors verbatim.
func NewNodeConv(src rand.Source, in, out int, q float64, signedIn, signedOut bool,
	factory NodeTransformFactory, opts ...Option) (*NodeConv, error) {
	base, err := NewConv(src, in, out, q, signedIn, signedOut, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewNodeConv: %w", err)
	}

	cfg := gatherOptions(opts...)
	if factory == nil {
		factory = DefaultNodeTransform
	}
	transform, err := factory(src, out+cfg.nodeFeatureWidth, out)
	if err != nil {
		return nil, fmt.Errorf("NewNodeConv: %w", err)
	}
	if transform == nil {
		return nil, fmt.Errorf("NewNodeConv: %w", ErrNilTransform)
	}

	return &NodeConv{Conv: *base, transform: transform, auxWidth: cfg.nodeFeatureWidth}, nil
}

// Forward applies the convolution with the node-space path. extra may be nil
// unless the layer was configured with a node-feature width.
// Errors: those of Conv.Forward, plus ErrMissingNodeFeatures and shape
// errors against the configured node-feature width.
func (c *NodeConv) Forward(el *core.EdgeList, x *mat.Dense, extra *Extra) (*mat.Dense, error) {
	yReal, yCplx, err := c.shift(el, x)
	if err != nil {
		return nil, err
	}

	// Incidence operator of the output signedness for both projections.
	b, err := laplacian.MagneticIncidence(el, c.q, c.signedOut)
	if err != nil {
		return nil, fmt.Errorf("NodeConv.Forward: %w", err)
	}

	// Project the post-Laplacian signal to node level, in the algebra the
	// shift already chose.
	var nodes *mat.Dense
	if yCplx != nil {
		zc, err := b.MulCDense(yCplx)
		if err != nil {
			return nil, fmt.Errorf("NodeConv.Forward: %w", err)
		}
		if nodes, err = Realify(zc); err != nil {
			return nil, fmt.Errorf("NodeConv.Forward: %w", err)
		}
	} else {
		if nodes, err = b.MulDense(yReal); err != nil {
			return nil, fmt.Errorf("NodeConv.Forward: %w", err)
		}
	}

	// Concatenate caller node features when configured.
	if nodes, err = c.appendFeatures(el, nodes, extra); err != nil {
		return nil, err
	}

	// Injected node-level model; must honor the configured output width.
	hn, err := c.transform.Forward(nodes, extra)
	if err != nil {
		return nil, fmt.Errorf("NodeConv.Forward: node transform: %w", err)
	}
	if hr, hc := dims(hn); hn == nil || hr != el.NodeCount() || hc != c.out {
		return nil, fmt.Errorf("NodeConv.Forward: node transform returned %dx%d, want %dx%d: %w",
			hr, hc, el.NodeCount(), c.out, ErrDimensionMismatch)
	}

	// Project back to edge level and sum onto the direct path.
	bh := b.ConjTranspose()
	if yCplx != nil {
		hcplx, err := Complexify(hn)
		if err != nil {
			return nil, fmt.Errorf("NodeConv.Forward: %w", err)
		}
		ec, err := bh.MulCDense(hcplx)
		if err != nil {
			return nil, fmt.Errorf("NodeConv.Forward: %w", err)
		}
		rows, cols := yCplx.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				yCplx.Set(i, j, yCplx.At(i, j)+ec.At(i, j))
			}
		}
		if yReal, err = Realify(yCplx); err != nil {
			return nil, fmt.Errorf("NodeConv.Forward: %w", err)
		}
	} else {
		er, err := bh.MulDense(hn)
		if err != nil {
			return nil, fmt.Errorf("NodeConv.Forward: %w", err)
		}
		yReal.Add(yReal, er)
	}

	c.addBias(yReal)

	return yReal, nil
}

// appendFeatures concatenates extra.NodeFeatures onto nodes when the layer
// was configured with a node-feature width, validating shape.
func (c *NodeConv) appendFeatures(el *core.EdgeList, nodes *mat.Dense, extra *Extra) (*mat.Dense, error) {
	if c.auxWidth == 0 {
		return nodes, nil
	}
	if extra == nil || extra.NodeFeatures == nil {
		return nil, fmt.Errorf("NodeConv.Forward: %w", ErrMissingNodeFeatures)
	}
	fr, fc := extra.NodeFeatures.Dims()
	if fr != el.NodeCount() || fc != c.auxWidth {
		return nil, fmt.Errorf("NodeConv.Forward: node features %dx%d, want %dx%d: %w",
			fr, fc, el.NodeCount(), c.auxWidth, ErrDimensionMismatch)
	}

	n, zc := nodes.Dims()
	joined := mat.NewDense(n, zc+c.auxWidth, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < zc; j++ {
			joined.Set(i, j, nodes.At(i, j))
		}
		for j := 0; j < c.auxWidth; j++ {
			joined.Set(i, zc+j, extra.NodeFeatures.At(i, j))
		}
	}

	return joined, nil
}

// Parameters returns the direct-path tensors plus the transform's, when the
// transform exposes any.
func (c *NodeConv) Parameters() []*mat.Dense {
	params := c.Conv.Parameters()
	if p, ok := c.transform.(Parameterized); ok {
		params = append(params, p.Parameters()...)
	}

	return params
}

// dims is a nil-safe Dims helper.
func dims(m *mat.Dense) (int, int) {
	if m == nil {
		return 0, 0
	}

	return m.Dims()
}
