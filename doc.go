// Package eign implements EIGN, a graph neural network family for
// edge-level prediction that is equivariant (signed stream) or invariant
// (unsigned stream) to edge-orientation changes, built on magnetic edge
// Laplacians over mixed directed/undirected graphs.
//
// The module is layered bottom-up:
//
//   - core      - the edge-list graph model (ordered edges, per-edge
//     directedness, orientation-flip helpers).
//   - cmatrix   - sparse complex matrices (COO assembly, canonical CSR,
//     sparse×dense kernels).
//   - laplacian - the magnetic incidence matrix and the four magnetic edge
//     Laplacian variants.
//   - conv      - trainable Laplacian convolutions, with and without a
//     node-transformation path.
//   - block     - gated fusion and the EIGN message-passing block.
//   - eign      - this package: the stacked model with input/output heads.
//
// A Model consumes a signed and an unsigned M×C edge-signal matrix over an
// EdgeList and returns both output streams; complex intermediate state never
// crosses the module boundary. Construction takes an explicit rand.Source:
// no process-wide random state is ever consulted, and two models built from
// equal sources compute identical outputs.
//
// The phase parameter q controls the directional phase twist of the
// operators; q = 0 recovers purely real combinatorial Laplacians (a common
// convention for q is 1/M). Signed outputs transform with the orientation of
// undirected edges, unsigned outputs ignore it, and both respond to
// directed-edge reorientation, which changes the graph rather than its
// representation.
package eign
