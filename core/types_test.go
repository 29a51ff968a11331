// Package core_test validates EdgeList construction guards, accessor
// behavior, and the orientation-flip helper.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfuchsgruber/eign/core"
)

// cyclePairs is the 6-node, 7-edge scenario graph used throughout the module.
var cyclePairs = [][2]int{{0, 1}, {1, 2}, {2, 3}, {2, 4}, {3, 5}, {5, 0}, {5, 2}}

// cycleMask marks the last two edges directed.
var cycleMask = []bool{false, false, false, false, false, true, true}

func TestNewEdgeList_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := core.NewEdgeList(cyclePairs, []bool{false}, 6)
	require.ErrorIs(t, err, core.ErrLengthMismatch)
}

func TestNewEdgeList_NodeOutOfRange(t *testing.T) {
	t.Parallel()

	// Endpoint 6 does not exist in a 6-node graph.
	_, err := core.NewEdgeList([][2]int{{0, 6}}, []bool{false}, 6)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)

	// Negative endpoints are equally out of range.
	_, err = core.NewEdgeList([][2]int{{-1, 0}}, []bool{false}, 6)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestNewEdgeList_BadShape(t *testing.T) {
	t.Parallel()

	_, err := core.NewEdgeList([][2]int{{0, 0}}, []bool{false}, 0)
	require.ErrorIs(t, err, core.ErrBadShape)

	_, err = core.NewEdgeList(nil, nil, -1)
	require.ErrorIs(t, err, core.ErrBadShape)
}

func TestNewEdgeList_EmptyIsLegal(t *testing.T) {
	t.Parallel()

	el, err := core.NewEdgeList(nil, nil, 0)
	require.NoError(t, err)
	require.Equal(t, 0, el.EdgeCount())
	require.Equal(t, 0, el.NodeCount())
}

func TestEdgeList_Accessors(t *testing.T) {
	t.Parallel()

	el, err := core.NewEdgeList(cyclePairs, cycleMask, 6)
	require.NoError(t, err)

	require.Equal(t, 7, el.EdgeCount())
	require.Equal(t, 6, el.NodeCount())

	u, v, err := el.Endpoints(5)
	require.NoError(t, err)
	require.Equal(t, 5, u)
	require.Equal(t, 0, v)

	dir, err := el.Directed(5)
	require.NoError(t, err)
	require.True(t, dir)

	dir, err = el.Directed(0)
	require.NoError(t, err)
	require.False(t, dir)

	_, _, err = el.Endpoints(7)
	require.ErrorIs(t, err, core.ErrEdgeOutOfRange)
	_, err = el.Directed(-1)
	require.ErrorIs(t, err, core.ErrEdgeOutOfRange)
}

func TestEdgeList_DefensiveCopies(t *testing.T) {
	t.Parallel()

	el, err := core.NewEdgeList(cyclePairs, cycleMask, 6)
	require.NoError(t, err)

	// Mutating returned slices must not leak into the receiver.
	pairs := el.Pairs()
	pairs[0] = [2]int{5, 5}
	mask := el.DirectedMask()
	mask[0] = true

	u, v, err := el.Endpoints(0)
	require.NoError(t, err)
	require.Equal(t, [2]int{0, 1}, [2]int{u, v})
	dir, err := el.Directed(0)
	require.NoError(t, err)
	require.False(t, dir)
}

func TestFlip_SwapsEndpointsOnly(t *testing.T) {
	t.Parallel()

	el, err := core.NewEdgeList(cyclePairs, cycleMask, 6)
	require.NoError(t, err)

	flipped, err := el.Flip(2, 4)
	require.NoError(t, err)

	// Flipped edges are reversed; the rest are untouched.
	u, v, err := flipped.Endpoints(2)
	require.NoError(t, err)
	require.Equal(t, [2]int{3, 2}, [2]int{u, v})
	u, v, err = flipped.Endpoints(4)
	require.NoError(t, err)
	require.Equal(t, [2]int{5, 3}, [2]int{u, v})
	u, v, err = flipped.Endpoints(0)
	require.NoError(t, err)
	require.Equal(t, [2]int{0, 1}, [2]int{u, v})

	// Directedness carries over verbatim.
	require.Equal(t, el.DirectedMask(), flipped.DirectedMask())

	// The receiver is untouched.
	u, v, err = el.Endpoints(2)
	require.NoError(t, err)
	require.Equal(t, [2]int{2, 3}, [2]int{u, v})
}

func TestFlip_OutOfRange(t *testing.T) {
	t.Parallel()

	el, err := core.NewEdgeList(cyclePairs, cycleMask, 6)
	require.NoError(t, err)

	_, err = el.Flip(7)
	require.ErrorIs(t, err, core.ErrEdgeOutOfRange)

	var nilEL *core.EdgeList
	_, err = nilEL.Flip(0)
	require.ErrorIs(t, err, core.ErrNilEdgeList)
}

func TestFlip_DoubleFlipRoundTrips(t *testing.T) {
	t.Parallel()

	el, err := core.NewEdgeList(cyclePairs, cycleMask, 6)
	require.NoError(t, err)

	twice, err := el.Flip(1, 3)
	require.NoError(t, err)
	twice, err = twice.Flip(1, 3)
	require.NoError(t, err)

	require.Equal(t, el.Pairs(), twice.Pairs())
	require.Equal(t, el.DirectedMask(), twice.DirectedMask())
}
