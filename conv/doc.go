// Package conv implements the trainable convolution layers built on the
// magnetic edge operators: a plain Laplacian convolution (Conv) and its
// extension routing signals through node space via the incidence matrix and
// an injected node transformation (NodeConv).
//
// A convolution selects one of the four Laplacian variants through its
// (signedIn, signedOut) pair and applies it as a graph-shift operator:
//
//	y = realify( L(signedIn, signedOut) · complexify(x·W) ) [+ bias]
//
// Real signal matrices enter and leave; the complex algebra required by
// q ≠ 0 lives strictly inside the forward pass, with adjacent real feature
// columns paired into complex channels (even column = real part, odd column
// = imaginary part). At q = 0 the operators are exactly real and the complex
// detour is skipped entirely.
//
// Bias policy: a constant bias is not orientation-equivariant (flipping an
// edge negates the signal but not the constant), so signed outputs take no
// bias under the default BiasAuto policy while unsigned outputs do.
// BiasAlways and BiasNever override the policy at the caller's risk.
//
// Every parameterized constructor takes an explicit rand.Source; there is no
// process-wide random state anywhere in the package. Weights are initialized
// Glorot-uniform via gonum's distuv, biases start at zero.
//
// Layers are stateless with respect to the graph: operators are rebuilt from
// the EdgeList on every forward call, so a layer instance can serve any
// number of graphs.
package conv
