// SPDX-License-Identifier: MIT

// Package laplacian builds the magnetic incidence matrix and the four
// magnetic edge Laplacian variants over mixed directed/undirected graphs.
//
// For an EdgeList of M edges over N nodes and a phase parameter q, the
// incidence matrix B(q, signed) maps edge signals to node signals (N×M); its
// conjugate transpose maps back. The edge Laplacians are the M×M products
//
//	L(signedIn, signedOut) = B(signedOut)ᴴ · B(signedIn)
//
// assembled directly from shared endpoints, never via an explicit matrix
// product. Directed edges carry the complex phase exp(i·2πq) at their listed
// source and its conjugate at their listed target; undirected edges stay real
// regardless of q. At q = 0 every operator is exactly real (entries are built
// from ±1 literals, not from evaluating exp at zero) and L reduces to the
// classical signed/unsigned combinatorial edge Laplacian.
//
// Structural guarantees, relied upon by the layer packages and pinned by the
// tests here:
//
//   - L is Hermitian whenever signedIn == signedOut.
//   - Diagonal entries equal 2 for every non-loop edge, isolated edges
//     included (each of the edge's two endpoints contributes |entry|² = 1).
//   - Off-diagonal entries have modulus at most 1 per shared endpoint.
//   - Construction is a pure function of (EdgeList, q, signedness): calling
//     twice with equal inputs yields bit-identical operators.
//
// Orientation behavior: flipping the listed orientation of an undirected edge
// negates its signed incidence column and leaves its unsigned column
// unchanged, which is exactly what makes downstream signed outputs
// orientation-equivariant and unsigned outputs orientation-invariant.
// Flipping a directed edge is a different graph and yields genuinely
// different operators.
//
// Errors (sentinel):
//
//	ErrNilEdgeList - nil *core.EdgeList argument.
//	ErrBadQ        - non-finite phase parameter.
//	ErrEmptyGraph  - operator requested over zero nodes or zero edges.
package laplacian
