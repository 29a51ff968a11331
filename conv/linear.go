// Package conv: the Linear building block and parameter initialization.
package conv

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// glorotGain is the numerator of the Glorot-uniform limit √(6/(in+out)).
const glorotGain = 6.0

// Linear is a learnable affine map y = x·W [+ b] on dense real matrices.
// W is in×out; b, when present, is a single row broadcast over x's rows.
type Linear struct {
	in, out int
	w       *mat.Dense // in×out weight
	b       *mat.Dense // 1×out bias, nil when the layer is biasless
}

// NewLinear constructs a Linear layer with Glorot-uniform weights drawn from
// src and, when bias is requested, a zero-initialized bias row.
//
// Errors: ErrNilSource, ErrBadChannels.
// Complexity: O(in·out).
func NewLinear(src rand.Source, in, out int, bias bool) (*Linear, error) {
	if src == nil {
		return nil, fmt.Errorf("NewLinear: %w", ErrNilSource)
	}
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("NewLinear: %dx%d: %w", in, out, ErrBadChannels)
	}

	// Glorot-uniform: U(-limit, +limit), limit = √(6/(in+out)).
	limit := math.Sqrt(glorotGain / float64(in+out))
	dist := distuv.Uniform{Min: -limit, Max: limit, Src: src}

	w := mat.NewDense(in, out, nil)
	for i := 0; i < in; i++ {
		for j := 0; j < out; j++ {
			w.Set(i, j, dist.Rand())
		}
	}

	l := &Linear{in: in, out: out, w: w}
	if bias {
		l.b = mat.NewDense(1, out, nil)
	}

	return l, nil
}

// InChannels returns the input width.
func (l *Linear) InChannels() int { return l.in }

// OutChannels returns the output width.
func (l *Linear) OutChannels() int { return l.out }

// HasBias reports whether the layer carries a bias row.
func (l *Linear) HasBias() bool { return l.b != nil }

// Forward computes y = x·W [+ b] and returns a fresh matrix.
// Errors: ErrNilInput, ErrDimensionMismatch.
// Complexity: O(rows·in·out).
func (l *Linear) Forward(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("Linear.Forward: %w", ErrNilInput)
	}
	rows, cols := x.Dims()
	if cols != l.in {
		return nil, fmt.Errorf("Linear.Forward: %d input columns, want %d: %w",
			cols, l.in, ErrDimensionMismatch)
	}

	var y mat.Dense
	y.Mul(x, l.w)

	if l.b != nil {
		for i := 0; i < rows; i++ {
			for j := 0; j < l.out; j++ {
				y.Set(i, j, y.At(i, j)+l.b.At(0, j))
			}
		}
	}

	return &y, nil
}

// Parameters returns the learnable tensors of the layer, weight first.
// The slices share storage with the layer; an external optimizer updating
// them in place is the intended gradient-propagation contract.
func (l *Linear) Parameters() []*mat.Dense {
	if l.b == nil {
		return []*mat.Dense{l.w}
	}

	return []*mat.Dense{l.w, l.b}
}

// Parameterized is the capability exposed by every trainable component:
// its learnable tensors, in a stable order, shared (not copied).
type Parameterized interface {
	Parameters() []*mat.Dense
}
