// SPDX-License-Identifier: MIT
// Package cmatrix — sparse×dense multiply kernels.
//
// These two kernels are the numeric heart of the module: every convolution
// applies a Laplacian (CSR) to a signal matrix (gonum dense) through them.
// Both walk fixed index orders so that outputs are bit-reproducible, which
// the orientation-invariance laws depend on (sign cancellations must be
// exact, never perturbed by accumulation reordering).

package cmatrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MulCDense computes Y = M · X for a dense complex X and returns a fresh
// mat.CDense.
//
// Implementation:
//   - Stage 1: validate operands (nil, inner-dimension match).
//   - Stage 2: allocate the rows×xc result zeroed.
//   - Stage 3: for each row i, for each stored (i,k) in ascending column
//     order, for each output column j: acc[i,j] += vals · X[k,j].
//
// Behavior highlights:
//   - Accumulation order is fully determined by the CSR layout, which is
//     itself canonical (sorted, merged). Same operands ⇒ same bits out.
//   - Operands are never mutated; one allocation for the result.
//
// Inputs:
//   - x: dense complex matrix with x.Rows == m.Cols.
//
// Returns:
//   - *mat.CDense: freshly allocated rows×x.Cols product.
//
// Errors:
//   - ErrNilMatrix          (nil receiver or operand).
//   - ErrDimensionMismatch  (m.Cols != x rows).
//
// Complexity:
//   - Time O(nnz · x.Cols), Space O(rows · x.Cols).
func (m *CSR) MulCDense(x *mat.CDense) (*mat.CDense, error) {
	// Validate operands before touching any data.
	if m == nil || x == nil {
		return nil, fmt.Errorf("MulCDense: %w", ErrNilMatrix)
	}
	xr, xc := x.Dims()
	if xr != m.cols {
		return nil, fmt.Errorf("MulCDense: %dx%d by %dx%d: %w",
			m.rows, m.cols, xr, xc, ErrDimensionMismatch)
	}

	// Zero-initialized result; NewCDense with nil data allocates zeros.
	out := mat.NewCDense(m.rows, xc, nil)

	// Row-major sparse walk with a fixed inner order over output columns.
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			col := m.colIdx[k]
			v := m.vals[k]
			for j := 0; j < xc; j++ {
				out.Set(i, j, out.At(i, j)+v*x.At(col, j))
			}
		}
	}

	return out, nil
}

// MulDense computes Y = M · X for a dense real X, valid only when M is
// exactly real (the q=0 operator path). The realness guard is strict:
// a matrix carrying any non-zero imaginary part is rejected rather than
// silently truncated.
//
// Errors: ErrNilMatrix, ErrComplexEntries, ErrDimensionMismatch.
// Complexity: O(nnz · x.Cols) time, O(rows · x.Cols) space.
func (m *CSR) MulDense(x *mat.Dense) (*mat.Dense, error) {
	if m == nil || x == nil {
		return nil, fmt.Errorf("MulDense: %w", ErrNilMatrix)
	}
	if !m.IsReal() {
		return nil, fmt.Errorf("MulDense: %w", ErrComplexEntries)
	}
	xr, xc := x.Dims()
	if xr != m.cols {
		return nil, fmt.Errorf("MulDense: %dx%d by %dx%d: %w",
			m.rows, m.cols, xr, xc, ErrDimensionMismatch)
	}

	out := mat.NewDense(m.rows, xc, nil)
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			col := m.colIdx[k]
			v := real(m.vals[k])
			for j := 0; j < xc; j++ {
				out.Set(i, j, out.At(i, j)+v*x.At(col, j))
			}
		}
	}

	return out, nil
}
