// Package core: orientation-flip helper used by callers and by the
// equivariance laws in the layer tests.
package core

import "fmt"

// Flip returns a copy of el with the listed endpoints of the given edges
// swapped. Directedness flags are carried over unchanged: flipping an
// undirected edge changes only its representation, while flipping a directed
// edge changes the graph itself (callers own that semantic difference).
//
// A caller flipping undirected edges must negate the corresponding rows of
// any signed edge signal to keep representing the same physical quantity.
//
// Errors: ErrNilEdgeList, ErrEdgeOutOfRange.
// Complexity: O(M + len(edges)).
func (el *EdgeList) Flip(edges ...int) (*EdgeList, error) {
	if el == nil {
		return nil, fmt.Errorf("Flip: %w", ErrNilEdgeList)
	}

	// Copy the backing slices; the receiver stays immutable.
	m := len(el.from)
	from := make([]int, m)
	to := make([]int, m)
	mask := make([]bool, m)
	copy(from, el.from)
	copy(to, el.to)
	copy(mask, el.directed)

	// Swap endpoints of each requested edge, validating as we go.
	for _, e := range edges {
		if e < 0 || e >= m {
			return nil, fmt.Errorf("Flip: edge %d out of range [0,%d): %w", e, m, ErrEdgeOutOfRange)
		}
		from[e], to[e] = to[e], from[e]
	}

	return &EdgeList{from: from, to: to, directed: mask, numNodes: el.numNodes}, nil
}
