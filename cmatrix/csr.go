// SPDX-License-Identifier: MIT
// Package cmatrix — immutable CSR form and its structural queries.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// CSR is a compressed-sparse-row complex matrix. Instances are produced by
// COO.ToCSR (or derived via ConjTranspose/Clone) and never mutated afterwards;
// column indices are strictly increasing within each row.
type CSR struct {
	rows, cols int
	rowPtr     []int        // len rows+1; row r spans [rowPtr[r], rowPtr[r+1])
	colIdx     []int        // len nnz; sorted ascending within each row
	vals       []complex128 // len nnz; no exact zeros stored
}

// Rows returns the row dimension.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the column dimension.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.vals) }

// At returns the entry at (i, j), zero when the position is not stored.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(log nnz_row) via binary search within the row.
func (m *CSR) At(i, j int) (complex128, error) {
	if m == nil {
		return 0, fmt.Errorf("At: %w", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("At: (%d,%d) outside %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	// Binary search the sorted column slice of row i.
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case m.colIdx[mid] < j:
			lo = mid + 1
		case m.colIdx[mid] > j:
			hi = mid
		default:
			return m.vals[mid], nil
		}
	}

	return 0, nil
}

// Row returns copies of the stored column indices and values of row i.
// Columns come back in ascending order by the CSR layout contract.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(nnz_row).
func (m *CSR) Row(i int) ([]int, []complex128, error) {
	if m == nil {
		return nil, nil, fmt.Errorf("Row: %w", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, nil, fmt.Errorf("Row: %d outside [0,%d): %w", i, m.rows, ErrOutOfRange)
	}

	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols := make([]int, hi-lo)
	vals := make([]complex128, hi-lo)
	copy(cols, m.colIdx[lo:hi])
	copy(vals, m.vals[lo:hi])

	return cols, vals, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(rows + nnz).
func (m *CSR) Clone() *CSR {
	cp := &CSR{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: make([]int, len(m.rowPtr)),
		colIdx: make([]int, len(m.colIdx)),
		vals:   make([]complex128, len(m.vals)),
	}
	copy(cp.rowPtr, m.rowPtr)
	copy(cp.colIdx, m.colIdx)
	copy(cp.vals, m.vals)

	return cp
}

// ConjTranspose returns Mᴴ, the conjugate transpose, as a fresh CSR.
//
// Implementation: counting sort over destination rows (the source columns),
// then a single scatter pass in source order. The result is deterministic and
// already column-sorted because source rows are visited in ascending order.
// Complexity: O(rows + cols + nnz).
func (m *CSR) ConjTranspose() *CSR {
	t := &CSR{
		rows:   m.cols,
		cols:   m.rows,
		rowPtr: make([]int, m.cols+1),
		colIdx: make([]int, len(m.colIdx)),
		vals:   make([]complex128, len(m.vals)),
	}

	// Count entries per destination row.
	for _, j := range m.colIdx {
		t.rowPtr[j+1]++
	}
	for r := 0; r < m.cols; r++ {
		t.rowPtr[r+1] += t.rowPtr[r]
	}

	// Scatter in source (row, col) order; next[] tracks the write cursor.
	next := make([]int, m.cols)
	copy(next, t.rowPtr[:m.cols])
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			j := m.colIdx[k]
			pos := next[j]
			next[j]++
			t.colIdx[pos] = i
			t.vals[pos] = cmplx.Conj(m.vals[k])
		}
	}

	return t
}

// IsReal reports whether every stored entry has an exactly-zero imaginary
// part. The q=0 operator path relies on this being exact, not approximate.
// Complexity: O(nnz).
func (m *CSR) IsReal() bool {
	for _, v := range m.vals {
		if imag(v) != 0 {
			return false
		}
	}

	return true
}

// IsHermitian reports whether M equals its conjugate transpose within eps,
// compared entrywise over the union of stored positions.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(nnz log nnz_row).
func (m *CSR) IsHermitian(eps float64) (bool, error) {
	if m == nil {
		return false, fmt.Errorf("IsHermitian: %w", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return false, fmt.Errorf("IsHermitian: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	// Every stored (i,j) must match conj(M[j,i]); positions stored only on one
	// side are caught because their mirror lookup returns zero.
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			j := m.colIdx[k]
			mirror, err := m.At(j, i)
			if err != nil {
				return false, fmt.Errorf("IsHermitian: %w", err)
			}
			if cmplx.Abs(m.vals[k]-cmplx.Conj(mirror)) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
