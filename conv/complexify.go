// Package conv: real↔complex column pairing.
//
// The module's boundary contract is real matrices; the complex algebra
// required by q ≠ 0 exists only between these two helpers. Pairing is
// positional: complex channel k is column 2k (real part) and column 2k+1
// (imaginary part). Realify(Complexify(x)) == x bit-for-bit.
package conv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Complexify pairs adjacent real columns of x into complex channels,
// mapping an M×2k real matrix to an M×k complex one.
// Errors: ErrNilInput, ErrOddChannels.
// Complexity: O(rows·cols).
func Complexify(x *mat.Dense) (*mat.CDense, error) {
	if x == nil {
		return nil, fmt.Errorf("Complexify: %w", ErrNilInput)
	}
	rows, cols := x.Dims()
	if cols%2 != 0 {
		return nil, fmt.Errorf("Complexify: %d columns: %w", cols, ErrOddChannels)
	}

	out := mat.NewCDense(rows, cols/2, nil)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols/2; k++ {
			out.Set(i, k, complex(x.At(i, 2*k), x.At(i, 2*k+1)))
		}
	}

	return out, nil
}

// Realify unpairs complex channels back into adjacent real columns,
// mapping an M×k complex matrix to an M×2k real one.
// Errors: ErrNilInput.
// Complexity: O(rows·cols).
func Realify(z *mat.CDense) (*mat.Dense, error) {
	if z == nil {
		return nil, fmt.Errorf("Realify: %w", ErrNilInput)
	}
	rows, cols := z.Dims()

	out := mat.NewDense(rows, 2*cols, nil)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			v := z.At(i, k)
			out.Set(i, 2*k, real(v))
			out.Set(i, 2*k+1, imag(v))
		}
	}

	return out, nil
}
