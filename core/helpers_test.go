// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemesh/core"
)

// newSquare hand-builds one counter-clockwise unit square:
//
//	3───2
//	│   │      verts (0,0) (1,0) (1,1) (0,1)
//	0───1      edges 0→1→2→3→0, all bounding face 0
func newSquare(t *testing.T) *core.Epithelium {
	t.Helper()

	vert := core.NewDataset(4)
	require.NoError(t, vert.SetFloats("x", []float64{0, 1, 1, 0}))
	require.NoError(t, vert.SetFloats("y", []float64{0, 0, 1, 1}))

	edge := core.NewDataset(4)
	require.NoError(t, edge.SetInts(core.ColSrce, []int{0, 1, 2, 3}))
	require.NoError(t, edge.SetInts(core.ColTrgt, []int{1, 2, 3, 0}))
	require.NoError(t, edge.SetInts(core.ColFace, []int{0, 0, 0, 0}))

	eptm, err := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(1),
	}, core.WithCoords("x", "y"), core.WithIdentifier("square"))
	require.NoError(t, err)
	return eptm
}

// newTrianglePair hand-builds two counter-clockwise triangles glued
// along 0→1: vertex 2 above the shared segment, vertex 3 below it.
// Rows 0-2 bound face 0, rows 3-5 bound face 1; row 0 and row 3 are
// the interior pair.
func newTrianglePair(t *testing.T) *core.Epithelium {
	t.Helper()

	vert := core.NewDataset(4)
	require.NoError(t, vert.SetFloats("x", []float64{0, 1, 0.5, 0.5}))
	require.NoError(t, vert.SetFloats("y", []float64{0, 0, 1, -1}))

	edge := core.NewDataset(6)
	require.NoError(t, edge.SetInts(core.ColSrce, []int{0, 1, 2, 1, 0, 3}))
	require.NoError(t, edge.SetInts(core.ColTrgt, []int{1, 2, 0, 0, 3, 1}))
	require.NoError(t, edge.SetInts(core.ColFace, []int{0, 0, 0, 1, 1, 1}))

	eptm, err := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(2),
	}, core.WithCoords("x", "y"), core.WithIdentifier("pair"))
	require.NoError(t, err)
	return eptm
}

// newSpareFaceTriangle hand-builds one triangle plus a second face row
// that owns no half-edges at all.
func newSpareFaceTriangle(t *testing.T) *core.Epithelium {
	t.Helper()

	vert := core.NewDataset(3)
	require.NoError(t, vert.SetFloats("x", []float64{0, 1, 0}))
	require.NoError(t, vert.SetFloats("y", []float64{0, 0, 1}))

	edge := core.NewDataset(3)
	require.NoError(t, edge.SetInts(core.ColSrce, []int{0, 1, 2}))
	require.NoError(t, edge.SetInts(core.ColTrgt, []int{1, 2, 0}))
	require.NoError(t, edge.SetInts(core.ColFace, []int{0, 0, 0}))

	eptm, err := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(2),
	}, core.WithCoords("x", "y"), core.WithIdentifier("spare"))
	require.NoError(t, err)
	return eptm
}

// newTetrahedron hand-builds one cell bounded by four triangles with
// outward, counter-clockwise winding: alternating corners of the unit
// cube. Every directed edge has exactly one reverse twin in the cell.
func newTetrahedron(t *testing.T) *core.Epithelium {
	t.Helper()

	vert := core.NewDataset(4)
	require.NoError(t, vert.SetFloats("x", []float64{1, 1, -1, -1}))
	require.NoError(t, vert.SetFloats("y", []float64{1, -1, 1, -1}))
	require.NoError(t, vert.SetFloats("z", []float64{1, -1, -1, 1}))

	edge := core.NewDataset(12)
	require.NoError(t, edge.SetInts(core.ColSrce, []int{0, 1, 2, 0, 2, 3, 0, 3, 1, 1, 3, 2}))
	require.NoError(t, edge.SetInts(core.ColTrgt, []int{1, 2, 0, 2, 3, 0, 3, 1, 0, 3, 2, 1}))
	require.NoError(t, edge.SetInts(core.ColFace, []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3}))
	require.NoError(t, edge.SetInts(core.ColCell, make([]int, 12)))

	eptm, err := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(4),
		core.KindCell: core.NewDataset(1),
	}, core.WithIdentifier("tetra"))
	require.NoError(t, err)
	return eptm
}

// refreshVectors recomputes the dx/dy(/dz) columns by hand, so
// partition tests see edge vectors matching the current tables.
func refreshVectors(t *testing.T, eptm *core.Epithelium) {
	t.Helper()
	for _, c := range eptm.Coords() {
		sPos, err := eptm.UpcastFloats(core.LevelSrce, c)
		require.NoError(t, err)
		tPos, err := eptm.UpcastFloats(core.LevelTrgt, c)
		require.NoError(t, err)
		d := make([]float64, len(sPos))
		for i := range d {
			d[i] = tPos[i] - sPos[i]
		}
		require.NoError(t, eptm.Edge().SetFloats(core.DCoord(c), d))
	}
}
