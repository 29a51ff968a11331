// SPDX-License-Identifier: MIT
// Package cmatrix — COO assembler with strict invariants.
//
// Assembly contract:
//  1. Add(i, j, v) appends a triplet; duplicates accumulate on conversion.
//  2. Non-finite values are rejected at Add (fail fast, never at multiply time).
//  3. ToCSR sorts by (row, col), merges duplicates, and drops entries whose
//     merged value is exactly zero, so cancelling contributions (e.g. the two
//     half-edges of a signed self-loop) vanish structurally.
//  4. The result is independent of insertion order whenever the merged values
//     agree; the operator builders rely on this determinism guarantee.

package cmatrix

import (
	"fmt"
	"math"
	"sort"
)

// triplet is one (row, col, value) assembly entry.
type triplet struct {
	row, col int
	val      complex128
}

// COO is a mutable triplet accumulator used to assemble sparse complex
// matrices entry by entry before freezing them into CSR form.
type COO struct {
	rows, cols int
	entries    []triplet
}

// NewCOO allocates an empty rows×cols accumulator.
// Errors: ErrBadShape.
// Complexity: O(1).
func NewCOO(rows, cols int) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewCOO: %dx%d: %w", rows, cols, ErrBadShape)
	}

	return &COO{rows: rows, cols: cols}, nil
}

// Rows returns the row dimension.
func (c *COO) Rows() int { return c.rows }

// Cols returns the column dimension.
func (c *COO) Cols() int { return c.cols }

// Add appends the contribution v at (i, j). Repeated additions at the same
// position accumulate when the COO is frozen via ToCSR.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
// Complexity: amortized O(1).
func (c *COO) Add(i, j int, v complex128) error {
	if c == nil {
		return fmt.Errorf("Add: %w", ErrNilMatrix)
	}
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return fmt.Errorf("Add: (%d,%d) outside %dx%d: %w", i, j, c.rows, c.cols, ErrOutOfRange)
	}
	if !isFinite(v) {
		return fmt.Errorf("Add: value at (%d,%d): %w", i, j, ErrNaNInf)
	}

	c.entries = append(c.entries, triplet{row: i, col: j, val: v})

	return nil
}

// ToCSR freezes the accumulator into a canonical CSR matrix.
//
// Implementation:
//   - Stage 1: stable-sort triplets by (row, col).
//   - Stage 2: merge runs sharing a position; drop exact-zero merged values.
//   - Stage 3: build rowPtr/colIdx/vals in one deterministic pass.
//
// The receiver is not consumed; calling ToCSR twice yields two equal matrices.
// Complexity: O(nnz log nnz) time, O(nnz) space.
func (c *COO) ToCSR() *CSR {
	// Sort a copy so the accumulator stays reusable.
	sorted := make([]triplet, len(c.entries))
	copy(sorted, c.entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].row != sorted[b].row {
			return sorted[a].row < sorted[b].row
		}

		return sorted[a].col < sorted[b].col
	})

	// Merge duplicate positions, dropping exact cancellations.
	merged := sorted[:0:len(sorted)]
	for _, t := range sorted {
		n := len(merged)
		if n > 0 && merged[n-1].row == t.row && merged[n-1].col == t.col {
			merged[n-1].val += t.val
			continue
		}
		merged = append(merged, t)
	}
	kept := merged[:0]
	for _, t := range merged {
		if t.val != 0 {
			kept = append(kept, t)
		}
	}

	// Emit CSR arrays in a single pass.
	csr := &CSR{
		rows:   c.rows,
		cols:   c.cols,
		rowPtr: make([]int, c.rows+1),
		colIdx: make([]int, len(kept)),
		vals:   make([]complex128, len(kept)),
	}
	for k, t := range kept {
		csr.rowPtr[t.row+1]++
		csr.colIdx[k] = t.col
		csr.vals[k] = t.val
	}
	for r := 0; r < c.rows; r++ {
		csr.rowPtr[r+1] += csr.rowPtr[r]
	}

	return csr
}

// isFinite reports whether both parts of v are finite.
func isFinite(v complex128) bool {
	re, im := real(v), imag(v)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}
