// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// All kernels return these sentinels; callers match with errors.Is. Context is
// added at the facade via fmt.Errorf("Op: %w", Err). No panics on
// user-triggered conditions.

package cmatrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions
	// (e.g. Mul where a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals a square-only operation applied to a rectangular matrix.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrComplexEntries signals a real-only operation applied to a matrix
	// holding non-zero imaginary parts.
	ErrComplexEntries = errors.New("cmatrix: matrix has complex entries")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil matrix receiver or operand.
	ErrNilMatrix = errors.New("cmatrix: nil receiver or operand")
)
