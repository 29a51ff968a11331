// Package conv: the plain magnetic edge Laplacian convolution.
package conv

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/dfuchsgruber/eign/core"
	"github.com/dfuchsgruber/eign/laplacian"
)

// Conv applies one magnetic edge Laplacian variant as a graph-shift operator
// to an edge-signal matrix:
//
//	y = realify( L(signedIn, signedOut) · complexify(x·W) ) [+ bias]
//
// The (signedIn, signedOut) pair selects the Laplacian variant and, with it,
// the symmetry class of input and output. Operators are rebuilt from the
// EdgeList on every call (pure functions of the graph); only W and the bias
// persist across calls.
type Conv struct {
	in, out   int
	q         float64
	signedIn  bool
	signedOut bool
	lin       *Linear    // biasless input transform
	bias      *mat.Dense // 1×out, nil under the resolved policy
}

// NewConv constructs a convolution mapping in→out channels through the
// (signedIn, signedOut) Laplacian at phase parameter q.
//
// Constraints: src non-nil, widths positive, q finite, and out even whenever
// q != 0 (complex pairing needs adjacent column pairs).
//
// Errors: ErrNilSource, ErrBadChannels, ErrBadQ, ErrOddChannels.
func NewConv(src rand.Source, in, out int, q float64, signedIn, signedOut bool, opts ...Option) (*Conv, error) {
	if src == nil {
		return nil, fmt.Errorf("NewConv: %w", ErrNilSource)
	}
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("NewConv: %dx%d: %w", in, out, ErrBadChannels)
	}
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return nil, fmt.Errorf("NewConv: q=%v: %w", q, ErrBadQ)
	}
	if q != 0 && out%2 != 0 {
		return nil, fmt.Errorf("NewConv: out=%d with q=%v: %w", out, q, ErrOddChannels)
	}

	cfg := gatherOptions(opts...)

	// The linear stage never carries a bias; the output bias (if any) is
	// applied after the operator so the policy acts on the final signal.
	lin, err := NewLinear(src, in, out, false)
	if err != nil {
		return nil, fmt.Errorf("NewConv: %w", err)
	}

	c := &Conv{in: in, out: out, q: q, signedIn: signedIn, signedOut: signedOut, lin: lin}
	if cfg.bias.enabled(signedOut) {
		c.bias = mat.NewDense(1, out, nil)
	}

	return c, nil
}

// InChannels returns the input width.
func (c *Conv) InChannels() int { return c.in }

// OutChannels returns the output width.
func (c *Conv) OutChannels() int { return c.out }

// SignedIn reports the input symmetry class.
func (c *Conv) SignedIn() bool { return c.signedIn }

// SignedOut reports the output symmetry class.
func (c *Conv) SignedOut() bool { return c.signedOut }

// Forward applies the convolution to the M×in signal x over el.
// Errors: ErrNilEdgeList, ErrNilInput, ErrDimensionMismatch, plus operator
// construction errors from the laplacian package.
// Complexity: operator build + O(nnz·out) multiply.
func (c *Conv) Forward(el *core.EdgeList, x *mat.Dense) (*mat.Dense, error) {
	yReal, yCplx, err := c.shift(el, x)
	if err != nil {
		return nil, err
	}
	if yCplx != nil {
		if yReal, err = Realify(yCplx); err != nil {
			return nil, fmt.Errorf("Conv.Forward: %w", err)
		}
	}

	c.addBias(yReal)

	return yReal, nil
}

// shift runs the shared pipeline linear→(complexify)→Laplacian and returns
// the pre-bias result in exactly one of its two forms: real at q == 0,
// complex otherwise. NodeConv reuses the complex form for its node path.
func (c *Conv) shift(el *core.EdgeList, x *mat.Dense) (*mat.Dense, *mat.CDense, error) {
	if el == nil {
		return nil, nil, fmt.Errorf("Conv.Forward: %w", ErrNilEdgeList)
	}
	if x == nil {
		return nil, nil, fmt.Errorf("Conv.Forward: %w", ErrNilInput)
	}
	rows, cols := x.Dims()
	if rows != el.EdgeCount() || cols != c.in {
		return nil, nil, fmt.Errorf("Conv.Forward: signal %dx%d over %d edges, want %dx%d: %w",
			rows, cols, el.EdgeCount(), el.EdgeCount(), c.in, ErrDimensionMismatch)
	}

	// 1) Learnable linear map, biasless by construction.
	h, err := c.lin.Forward(x)
	if err != nil {
		return nil, nil, fmt.Errorf("Conv.Forward: %w", err)
	}

	// 2) Operator for the current graph.
	l, err := laplacian.MagneticEdgeLaplacian(el, c.q, c.signedIn, c.signedOut)
	if err != nil {
		return nil, nil, fmt.Errorf("Conv.Forward: %w", err)
	}

	// 3a) q == 0: stay in real arithmetic with the real-reduced operator.
	if c.q == 0 {
		y, err := l.MulDense(h)
		if err != nil {
			return nil, nil, fmt.Errorf("Conv.Forward: %w", err)
		}

		return y, nil, nil
	}

	// 3b) q != 0: pair into complex channels, shift, and hand back complex.
	hc, err := Complexify(h)
	if err != nil {
		return nil, nil, fmt.Errorf("Conv.Forward: %w", err)
	}
	yc, err := l.MulCDense(hc)
	if err != nil {
		return nil, nil, fmt.Errorf("Conv.Forward: %w", err)
	}

	return nil, yc, nil
}

// addBias adds the bias row onto y in place when the layer carries one.
func (c *Conv) addBias(y *mat.Dense) {
	if c.bias == nil {
		return
	}
	rows, _ := y.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < c.out; j++ {
			y.Set(i, j, y.At(i, j)+c.bias.At(0, j))
		}
	}
}

// Parameters returns the learnable tensors: the weight, then the bias rows.
func (c *Conv) Parameters() []*mat.Dense {
	params := c.lin.Parameters()
	if c.bias != nil {
		params = append(params, c.bias)
	}

	return params
}
