// SPDX-License-Identifier: MIT
// Package laplacian: sentinel error set.

package laplacian

import "errors"

var (
	// ErrNilEdgeList indicates a nil *core.EdgeList argument.
	ErrNilEdgeList = errors.New("laplacian: edge list is nil")

	// ErrBadQ indicates a NaN or ±Inf phase parameter.
	ErrBadQ = errors.New("laplacian: q must be finite")

	// ErrEmptyGraph indicates an operator request over zero nodes or edges;
	// the incidence and Laplacian shapes would be degenerate (0-sized).
	ErrEmptyGraph = errors.New("laplacian: graph has no nodes or edges")
)
