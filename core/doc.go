// Package core defines the edge-list graph model shared by every operator
// and layer in this module.
//
// A graph is an ordered sequence of M edges (u,v) over nodes 0..N-1, plus a
// per-edge directedness flag. Edge order is the contract: every edge-signal
// matrix in this module is row-aligned to it, and every operator built from
// an EdgeList preserves it. The listed orientation of an undirected edge is
// an arbitrary representation choice; the orientation of a directed edge is
// part of the graph itself.
//
// EdgeList is immutable after construction. Flip returns a reoriented copy
// rather than mutating, so operators built from the same EdgeList can never
// observe two different orientations.
//
// Errors (sentinel):
//
//	ErrNilEdgeList    - nil *EdgeList receiver or argument.
//	ErrBadShape       - non-positive node count for a non-empty edge set.
//	ErrLengthMismatch - directed mask length differs from edge count.
//	ErrNodeOutOfRange - an endpoint index is outside [0, N).
//	ErrEdgeOutOfRange - an edge index is outside [0, M).
package core
