// Package block: sentinel error set.
package block

import "errors"

var (
	// ErrNilSource indicates a nil rand.Source at construction.
	ErrNilSource = errors.New("block: rand source is nil")

	// ErrBadChannels indicates a non-positive stream width.
	ErrBadChannels = errors.New("block: channel widths must be positive")

	// ErrNilInput indicates a nil signal matrix at forward time.
	ErrNilInput = errors.New("block: input matrix is nil")

	// ErrDimensionMismatch indicates operand shapes that disagree with the
	// configured stream widths or with each other.
	ErrDimensionMismatch = errors.New("block: dimension mismatch")
)
