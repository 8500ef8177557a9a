// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemesh/core"
)

func TestBoundingBox_SpansVertices(t *testing.T) {
	t.Parallel()

	eptm := newSquare(t)

	box, err := eptm.BoundingBox(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Interval{{Min: 0, Max: 1}, {Min: 0, Max: 1}}, box)

	padded, err := eptm.BoundingBox(0.5)
	require.NoError(t, err)
	assert.Equal(t, []core.Interval{{Min: -0.5, Max: 1.5}, {Min: -0.5, Max: 1.5}}, padded)

	assert.True(t, padded[0].Contains(1.5))
	assert.True(t, padded[0].Contains(-0.5))
	assert.False(t, padded[0].Contains(1.6))
}

func TestBoundingBox_EmptyTissue(t *testing.T) {
	t.Parallel()

	vert := core.NewDataset(0)
	require.NoError(t, vert.SetFloats("x", nil))
	require.NoError(t, vert.SetFloats("y", nil))
	edge := core.NewDataset(0)
	require.NoError(t, edge.SetInts(core.ColSrce, nil))
	require.NoError(t, edge.SetInts(core.ColTrgt, nil))
	require.NoError(t, edge.SetInts(core.ColFace, nil))
	eptm, err := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(0),
	}, core.WithCoords("x", "y"))
	require.NoError(t, err)

	_, err = eptm.BoundingBox(1)
	assert.ErrorIs(t, err, core.ErrEmptyDataset)
}

func TestCutOut_SelectsEdgesLeavingBox(t *testing.T) {
	t.Parallel()

	eptm := newTrianglePair(t)

	// Vertex 3 at (0.5, -1) falls below the box, taking rows 4 and 5
	// with it.
	cut, err := eptm.CutOut([]core.Interval{
		{Min: -0.25, Max: 1.25},
		{Min: -0.5, Max: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, cut)

	// Cropping is the composition with Remove.
	require.NoError(t, eptm.Remove(cut))
	assert.Equal(t, 3, eptm.NumVerts())
	assert.Equal(t, 3, eptm.NumEdges())
	assert.Equal(t, 1, eptm.NumFaces())
}

func TestCutOut_FullCoverAndValidation(t *testing.T) {
	t.Parallel()

	eptm := newTrianglePair(t)

	box, err := eptm.BoundingBox(0)
	require.NoError(t, err)
	cut, err := eptm.CutOut(box)
	require.NoError(t, err)
	assert.Empty(t, cut)

	_, err = eptm.CutOut([]core.Interval{{Min: 0, Max: 1}})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}
