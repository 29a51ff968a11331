// Package block wires four magnetic edge Laplacian convolutions, residual
// self-paths, and gated fusion layers into one EIGN message-passing block.
//
// A block carries two streams: a signed (orientation-equivariant) and an
// unsigned (orientation-invariant) edge signal. Each forward pass computes
//
//	ss = Conv(signed→signed)(xS)    su = Conv(signed→unsigned)(xS)
//	us = Conv(unsigned→signed)(xU)  uu = Conv(unsigned→unsigned)(xU)
//	yS = FuseSigned(Lin(xS) + ss, us)
//	yU = FuseUnsigned(Lin(xU) + uu, su)
//
// where the residual linear on the signed stream is biasless, the same
// policy the convolutions follow. The signed output stays equivariant and
// the unsigned output stays invariant under reorientation of undirected
// edges; both are genuinely sensitive to directed-edge reorientation, which
// is a change of graph, not of representation.
//
// Fusion combines its two inputs through a learned gate. The signed
// parameterization gates on elementwise magnitudes and carries no biases, so
// the output is odd under joint negation of its inputs; the unsigned
// parameterization gates on the raw signals with biases permitted.
package block
