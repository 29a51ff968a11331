// Package core: EdgeList type, sentinel errors, and the validating constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge-list construction and access.
var (
	// ErrNilEdgeList indicates a nil *EdgeList receiver or argument.
	ErrNilEdgeList = errors.New("core: edge list is nil")

	// ErrBadShape indicates a non-positive node count alongside a non-empty edge set.
	ErrBadShape = errors.New("core: node count must be positive")

	// ErrLengthMismatch indicates the directed mask length differs from the edge count.
	ErrLengthMismatch = errors.New("core: directed mask length mismatch")

	// ErrNodeOutOfRange indicates an endpoint index outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, EdgeCount).
	ErrEdgeOutOfRange = errors.New("core: edge index out of range")
)

// EdgeList is an immutable, ordered edge list over nodes 0..numNodes-1 with a
// per-edge directedness flag. Row e of every edge-signal matrix refers to
// edge e of this list; operators built from the list preserve that order.
type EdgeList struct {
	from     []int  // listed source endpoint per edge, len M
	to       []int  // listed target endpoint per edge, len M
	directed []bool // true = orientation is part of the graph, len M
	numNodes int    // N; all endpoints lie in [0, N)
}

// NewEdgeList builds an EdgeList from ordered (u,v) pairs, a directedness mask
// aligned to them, and the node count. Inputs are copied; the caller's slices
// stay owned by the caller.
//
// Validation (fail fast, in order):
//  1. len(directed) == len(pairs)      - ErrLengthMismatch.
//  2. numNodes > 0 when pairs exist    - ErrBadShape (numNodes >= 0 always).
//  3. every endpoint in [0, numNodes)  - ErrNodeOutOfRange.
//
// Self-loops (u == v) are accepted as a documented degenerate case.
// Complexity: O(M) time and space.
func NewEdgeList(pairs [][2]int, directed []bool, numNodes int) (*EdgeList, error) {
	// 1) Mask must align 1:1 with the edge order.
	if len(directed) != len(pairs) {
		return nil, fmt.Errorf("NewEdgeList: %d edges vs %d flags: %w",
			len(pairs), len(directed), ErrLengthMismatch)
	}

	// 2) Node count must be able to host every endpoint.
	if numNodes < 0 || (numNodes == 0 && len(pairs) > 0) {
		return nil, fmt.Errorf("NewEdgeList: numNodes=%d: %w", numNodes, ErrBadShape)
	}

	// 3) Copy and range-check endpoints in listed order.
	m := len(pairs)
	from := make([]int, m)
	to := make([]int, m)
	mask := make([]bool, m)
	for e := 0; e < m; e++ {
		u, v := pairs[e][0], pairs[e][1]
		if u < 0 || u >= numNodes || v < 0 || v >= numNodes {
			return nil, fmt.Errorf("NewEdgeList: edge %d=(%d,%d) outside [0,%d): %w",
				e, u, v, numNodes, ErrNodeOutOfRange)
		}
		from[e], to[e], mask[e] = u, v, directed[e]
	}

	return &EdgeList{from: from, to: to, directed: mask, numNodes: numNodes}, nil
}

// EdgeCount returns M, the number of edges.
// Complexity: O(1).
func (el *EdgeList) EdgeCount() int { return len(el.from) }

// NodeCount returns N, the number of nodes.
// Complexity: O(1).
func (el *EdgeList) NodeCount() int { return el.numNodes }

// Endpoints returns the listed (u,v) endpoints of edge e.
// Errors: ErrEdgeOutOfRange.
// Complexity: O(1).
func (el *EdgeList) Endpoints(e int) (u, v int, err error) {
	if e < 0 || e >= len(el.from) {
		return 0, 0, fmt.Errorf("Endpoints: edge %d out of range [0,%d): %w",
			e, len(el.from), ErrEdgeOutOfRange)
	}

	return el.from[e], el.to[e], nil
}

// Directed reports whether edge e is directed.
// Errors: ErrEdgeOutOfRange.
// Complexity: O(1).
func (el *EdgeList) Directed(e int) (bool, error) {
	if e < 0 || e >= len(el.directed) {
		return false, fmt.Errorf("Directed: edge %d out of range [0,%d): %w",
			e, len(el.directed), ErrEdgeOutOfRange)
	}

	return el.directed[e], nil
}

// Pairs returns a defensive copy of the ordered (u,v) endpoint pairs.
// Complexity: O(M).
func (el *EdgeList) Pairs() [][2]int {
	out := make([][2]int, len(el.from))
	for e := range el.from {
		out[e] = [2]int{el.from[e], el.to[e]}
	}

	return out
}

// DirectedMask returns a defensive copy of the per-edge directedness flags.
// Complexity: O(M).
func (el *EdgeList) DirectedMask() []bool {
	out := make([]bool, len(el.directed))
	copy(out, el.directed)

	return out
}
