// Package conv: sentinel error set.
package conv

import "errors"

var (
	// ErrNilSource indicates a nil rand.Source passed to a parameterized
	// constructor; explicit randomness handles are mandatory.
	ErrNilSource = errors.New("conv: rand source is nil")

	// ErrBadChannels indicates a non-positive channel width.
	ErrBadChannels = errors.New("conv: channel widths must be positive")

	// ErrOddChannels indicates an odd channel count where complex pairing
	// requires adjacent real columns (q != 0 paths).
	ErrOddChannels = errors.New("conv: channel count must be even for complex pairing")

	// ErrBadQ indicates a NaN or ±Inf phase parameter.
	ErrBadQ = errors.New("conv: q must be finite")

	// ErrNilEdgeList indicates a nil *core.EdgeList at forward time.
	ErrNilEdgeList = errors.New("conv: edge list is nil")

	// ErrNilInput indicates a nil signal matrix at forward time.
	ErrNilInput = errors.New("conv: input matrix is nil")

	// ErrDimensionMismatch indicates a signal matrix whose shape disagrees
	// with the edge list or the configured channel widths.
	ErrDimensionMismatch = errors.New("conv: dimension mismatch")

	// ErrNilTransform indicates a node-transformation factory that produced
	// a nil transform.
	ErrNilTransform = errors.New("conv: node transform is nil")

	// ErrMissingNodeFeatures indicates a NodeConv configured with auxiliary
	// node features that did not receive them at forward time.
	ErrMissingNodeFeatures = errors.New("conv: node features required but absent")
)
