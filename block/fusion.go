// Package block: gated fusion of two same-width feature streams.
package block

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/dfuchsgruber/eign/conv"
)

// Fusion combines two feature matrices of matching width into one:
//
//	out = (W1·a) ⊙ σ(G1·p(a) + G2·p(b) [+ bg]) + W2·b [+ b2]
//
// For the signed parameterization p is the elementwise magnitude and every
// bias is absent: the gate is then invariant under negation of either input,
// so out is odd under joint negation of (a, b), which is the property the
// signed stream's equivariance rests on. For the unsigned parameterization
// p is the identity and biases are permitted.
type Fusion struct {
	width  int
	signed bool
	w1, w2 *conv.Linear // value paths
	g1, g2 *conv.Linear // gate paths; g1 carries the gate bias when unsigned
}

// NewFusion constructs a fusion layer over streams of the given width.
// Errors: ErrNilSource, ErrBadChannels (and conv constructor errors).
func NewFusion(src rand.Source, width int, signed bool) (*Fusion, error) {
	if src == nil {
		return nil, fmt.Errorf("NewFusion: %w", ErrNilSource)
	}
	if width <= 0 {
		return nil, fmt.Errorf("NewFusion: width=%d: %w", width, ErrBadChannels)
	}

	bias := !signed
	w1, err := conv.NewLinear(src, width, width, false)
	if err != nil {
		return nil, fmt.Errorf("NewFusion: %w", err)
	}
	w2, err := conv.NewLinear(src, width, width, bias)
	if err != nil {
		return nil, fmt.Errorf("NewFusion: %w", err)
	}
	g1, err := conv.NewLinear(src, width, width, bias)
	if err != nil {
		return nil, fmt.Errorf("NewFusion: %w", err)
	}
	g2, err := conv.NewLinear(src, width, width, false)
	if err != nil {
		return nil, fmt.Errorf("NewFusion: %w", err)
	}

	return &Fusion{width: width, signed: signed, w1: w1, w2: w2, g1: g1, g2: g2}, nil
}

// Fuse combines a and b. Both must be rows×width with matching row counts.
// Errors: ErrNilInput, ErrDimensionMismatch.
// Complexity: O(rows·width²).
func (f *Fusion) Fuse(a, b *mat.Dense) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Fuse: %w", ErrNilInput)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != f.width || bc != f.width {
		return nil, fmt.Errorf("Fuse: %dx%d with %dx%d, width %d: %w",
			ar, ac, br, bc, f.width, ErrDimensionMismatch)
	}

	// Gate inputs: raw signals for unsigned fusion, magnitudes for signed.
	ga, gb := a, b
	if f.signed {
		ga, gb = absMat(a), absMat(b)
	}

	va, err := f.w1.Forward(a)
	if err != nil {
		return nil, fmt.Errorf("Fuse: %w", err)
	}
	vb, err := f.w2.Forward(b)
	if err != nil {
		return nil, fmt.Errorf("Fuse: %w", err)
	}
	ha, err := f.g1.Forward(ga)
	if err != nil {
		return nil, fmt.Errorf("Fuse: %w", err)
	}
	hb, err := f.g2.Forward(gb)
	if err != nil {
		return nil, fmt.Errorf("Fuse: %w", err)
	}

	// out = va ⊙ σ(ha + hb) + vb, elementwise in a fixed order.
	out := mat.NewDense(ar, f.width, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < f.width; j++ {
			gate := sigmoid(ha.At(i, j) + hb.At(i, j))
			out.Set(i, j, va.At(i, j)*gate+vb.At(i, j))
		}
	}

	return out, nil
}

// Parameters returns the four projections' tensors in a stable order.
func (f *Fusion) Parameters() []*mat.Dense {
	params := f.w1.Parameters()
	params = append(params, f.w2.Parameters()...)
	params = append(params, f.g1.Parameters()...)
	params = append(params, f.g2.Parameters()...)

	return params
}

// sigmoid is the logistic gate activation.
func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// absMat returns the elementwise magnitude of x as a fresh matrix.
func absMat(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, math.Abs(x.At(i, j)))
		}
	}

	return out
}
