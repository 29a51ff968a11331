// SPDX-License-Identifier: MIT

// Package cmatrix_test exercises the COO→CSR pipeline, structural queries,
// and the multiply kernels. All tests are deterministic.
package cmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dfuchsgruber/eign/cmatrix"
)

const eps = 1e-12

// buildCSR assembles a CSR from triplets, failing the test on any error.
func buildCSR(t *testing.T, rows, cols int, trips [][3]int, vals []complex128) *cmatrix.CSR {
	t.Helper()
	coo, err := cmatrix.NewCOO(rows, cols)
	require.NoError(t, err)
	for k, tr := range trips {
		require.NoError(t, coo.Add(tr[0], tr[1], vals[k]))
	}

	return coo.ToCSR()
}

func TestNewCOO_BadShape(t *testing.T) {
	t.Parallel()

	_, err := cmatrix.NewCOO(0, 3)
	require.ErrorIs(t, err, cmatrix.ErrBadShape)
	_, err = cmatrix.NewCOO(3, -1)
	require.ErrorIs(t, err, cmatrix.ErrBadShape)
}

func TestCOO_AddGuards(t *testing.T) {
	t.Parallel()

	coo, err := cmatrix.NewCOO(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, coo.Add(2, 0, 1), cmatrix.ErrOutOfRange)
	require.ErrorIs(t, coo.Add(0, -1, 1), cmatrix.ErrOutOfRange)
	require.ErrorIs(t, coo.Add(0, 0, complex(math.NaN(), 0)), cmatrix.ErrNaNInf)
	require.ErrorIs(t, coo.Add(0, 0, complex(0, math.Inf(1))), cmatrix.ErrNaNInf)
}

func TestToCSR_MergesAndDropsZeros(t *testing.T) {
	t.Parallel()

	coo, err := cmatrix.NewCOO(3, 3)
	require.NoError(t, err)
	// Two contributions at (1,1) accumulate; the pair at (0,2) cancels exactly.
	require.NoError(t, coo.Add(1, 1, complex(1, 2)))
	require.NoError(t, coo.Add(1, 1, complex(2, -1)))
	require.NoError(t, coo.Add(0, 2, 1))
	require.NoError(t, coo.Add(0, 2, -1))

	csr := coo.ToCSR()
	require.Equal(t, 1, csr.NNZ())

	v, err := csr.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, complex(3, 1), v)

	v, err = csr.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, complex128(0), v)
}

func TestToCSR_OrderIndependent(t *testing.T) {
	t.Parallel()

	a, err := cmatrix.NewCOO(2, 3)
	require.NoError(t, err)
	b, err := cmatrix.NewCOO(2, 3)
	require.NoError(t, err)

	entries := [][3]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}, {1, 2, 0}}
	vals := []complex128{complex(1, 1), 2, -3, complex(0, 4)}
	for k, e := range entries {
		require.NoError(t, a.Add(e[0], e[1], vals[k]))
	}
	// Same entries in reverse insertion order.
	for k := len(entries) - 1; k >= 0; k-- {
		require.NoError(t, b.Add(entries[k][0], entries[k][1], vals[k]))
	}

	ca, cb := a.ToCSR(), b.ToCSR()
	require.Equal(t, ca, cb)
}

func TestCSR_AtGuards(t *testing.T) {
	t.Parallel()

	csr := buildCSR(t, 2, 2, [][3]int{{0, 0, 0}}, []complex128{1})
	_, err := csr.At(2, 0)
	require.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	_, err = csr.At(0, 2)
	require.ErrorIs(t, err, cmatrix.ErrOutOfRange)
}

func TestCSR_ConjTranspose(t *testing.T) {
	t.Parallel()

	csr := buildCSR(t, 2, 3,
		[][3]int{{0, 1, 0}, {0, 2, 0}, {1, 0, 0}},
		[]complex128{complex(1, 2), 3, complex(0, -4)})

	ct := csr.ConjTranspose()
	require.Equal(t, 3, ct.Rows())
	require.Equal(t, 2, ct.Cols())

	v, err := ct.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, complex(1, -2), v)
	v, err = ct.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex(0, 4), v)

	// (Mᴴ)ᴴ == M, bit for bit.
	require.Equal(t, csr, ct.ConjTranspose())
}

func TestCSR_IsReal(t *testing.T) {
	t.Parallel()

	realCSR := buildCSR(t, 2, 2, [][3]int{{0, 0, 0}, {1, 1, 0}}, []complex128{1, -2})
	require.True(t, realCSR.IsReal())

	cplx := buildCSR(t, 2, 2, [][3]int{{0, 1, 0}}, []complex128{complex(0, 1e-300)})
	require.False(t, cplx.IsReal())
}

func TestCSR_IsHermitian(t *testing.T) {
	t.Parallel()

	// Hermitian: real diagonal, conjugate-mirrored off-diagonals.
	h := buildCSR(t, 2, 2,
		[][3]int{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}},
		[]complex128{2, complex(1, 1), complex(1, -1), 2})
	ok, err := h.IsHermitian(eps)
	require.NoError(t, err)
	require.True(t, ok)

	// One mirror entry missing breaks the property.
	nh := buildCSR(t, 2, 2, [][3]int{{0, 1, 0}}, []complex128{complex(1, 1)})
	ok, err = nh.IsHermitian(eps)
	require.NoError(t, err)
	require.False(t, ok)

	// Rectangular matrices are rejected outright.
	rect := buildCSR(t, 2, 3, [][3]int{{0, 0, 0}}, []complex128{1})
	_, err = rect.IsHermitian(eps)
	require.ErrorIs(t, err, cmatrix.ErrNonSquare)
}

func TestMulCDense(t *testing.T) {
	t.Parallel()

	// M = [[i, 0], [0, 2]], X = [[1, 2], [3, 4]].
	m := buildCSR(t, 2, 2, [][3]int{{0, 0, 0}, {1, 1, 0}}, []complex128{complex(0, 1), 2})
	x := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})

	y, err := m.MulCDense(x)
	require.NoError(t, err)
	require.Equal(t, complex(0, 1), y.At(0, 0))
	require.Equal(t, complex(0, 2), y.At(0, 1))
	require.Equal(t, complex128(6), y.At(1, 0))
	require.Equal(t, complex128(8), y.At(1, 1))
}

func TestMulCDense_DimensionMismatch(t *testing.T) {
	t.Parallel()

	m := buildCSR(t, 2, 3, [][3]int{{0, 0, 0}}, []complex128{1})
	x := mat.NewCDense(2, 2, nil)
	_, err := m.MulCDense(x)
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

func TestMulDense_RealPath(t *testing.T) {
	t.Parallel()

	m := buildCSR(t, 2, 2, [][3]int{{0, 0, 0}, {0, 1, 0}}, []complex128{1, -1})
	x := mat.NewDense(2, 1, []float64{3, 5})

	y, err := m.MulDense(x)
	require.NoError(t, err)
	require.Equal(t, -2.0, y.At(0, 0))
	require.Equal(t, 0.0, y.At(1, 0))
}

func TestMulDense_RejectsComplex(t *testing.T) {
	t.Parallel()

	m := buildCSR(t, 2, 2, [][3]int{{0, 0, 0}}, []complex128{complex(1, 1)})
	_, err := m.MulDense(mat.NewDense(2, 1, nil))
	require.ErrorIs(t, err, cmatrix.ErrComplexEntries)
}

func TestCSR_Clone(t *testing.T) {
	t.Parallel()

	m := buildCSR(t, 2, 2, [][3]int{{0, 1, 0}}, []complex128{complex(1, 1)})
	require.Equal(t, m, m.Clone())
}

func TestCSR_Row(t *testing.T) {
	t.Parallel()

	m := buildCSR(t, 3, 4,
		[][3]int{{1, 3, 0}, {1, 0, 0}, {2, 2, 0}},
		[]complex128{complex(0, 2), 1, -3})

	cols, vals, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3}, cols)
	require.Equal(t, []complex128{1, complex(0, 2)}, vals)

	// Empty rows come back as empty slices, not errors.
	cols, vals, err = m.Row(0)
	require.NoError(t, err)
	require.Empty(t, cols)
	require.Empty(t, vals)

	_, _, err = m.Row(3)
	require.ErrorIs(t, err, cmatrix.ErrOutOfRange)

	// Returned slices are copies; mutating them leaves the matrix intact.
	cols, vals, err = m.Row(2)
	require.NoError(t, err)
	cols[0], vals[0] = 0, 7
	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, complex128(-3), v)
}
