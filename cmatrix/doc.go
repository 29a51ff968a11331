// SPDX-License-Identifier: MIT

// Package cmatrix provides complex-valued sparse matrices for graph-operator
// construction: a COO assembler with duplicate accumulation and an immutable
// CSR form with the handful of kernels the magnetic operators need
// (sparse×dense multiply, conjugate transpose, Hermitian and realness checks).
//
// The package is deliberately small. Dense arithmetic lives in gonum
// (mat.Dense / mat.CDense); cmatrix only covers the sparse complex corner
// gonum does not, and only as far as this module uses it.
//
// Determinism is a hard contract: ToCSR sorts triplets by (row, col) and
// merges duplicates, so any assembly order that accumulates to the same
// values yields a byte-identical CSR, and every kernel walks fixed index
// orders. Identical inputs produce bit-identical outputs.
//
// Errors (sentinel):
//
//	ErrBadShape          - non-positive requested dimensions.
//	ErrOutOfRange        - index outside the matrix bounds.
//	ErrDimensionMismatch - incompatible operand shapes.
//	ErrNonSquare         - square-only operation on a rectangular matrix.
//	ErrComplexEntries    - real-only operation on a matrix with imaginary parts.
//	ErrNaNInf            - non-finite value rejected at ingestion.
//	ErrNilMatrix         - nil receiver or operand.
package cmatrix
