// SPDX-License-Identifier: MIT
package builder

import (
	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/geometry"
)

// tables is the raw columnar material of a fixture before assembly.
// zs is nil for planar fixtures; cell is nil when cells are not
// modeled. Slice lengths define the element counts: len(xs) vertices
// and len(srce) half-edges.
type tables struct {
	xs, ys, zs []float64

	srce, trgt, face []int
	cell             []int

	numFaces int
	numCells int
}

// assemble adopts the raw tables into an Epithelium and refreshes its
// geometry columns, so the fixture comes out ready for partitioning
// and closedness checks. Callers wrap the returned error with their
// constructor name.
func assemble(cfg config, t tables) (*core.Epithelium, error) {
	vert := core.NewDataset(len(t.xs))
	if err := vert.SetFloats("x", t.xs); err != nil {
		return nil, err
	}
	if err := vert.SetFloats("y", t.ys); err != nil {
		return nil, err
	}
	coords := []string{"x", "y"}
	if t.zs != nil {
		if err := vert.SetFloats("z", t.zs); err != nil {
			return nil, err
		}
		coords = append(coords, "z")
	}

	edge := core.NewDataset(len(t.srce))
	if err := edge.SetInts(core.ColSrce, t.srce); err != nil {
		return nil, err
	}
	if err := edge.SetInts(core.ColTrgt, t.trgt); err != nil {
		return nil, err
	}
	if err := edge.SetInts(core.ColFace, t.face); err != nil {
		return nil, err
	}

	datasets := map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(t.numFaces),
	}
	if t.cell != nil {
		if err := edge.SetInts(core.ColCell, t.cell); err != nil {
			return nil, err
		}
		datasets[core.KindCell] = core.NewDataset(t.numCells)
	}

	eptm, err := core.New(datasets, cfg.coreOptions(coords)...)
	if err != nil {
		return nil, err
	}
	if err = geometry.UpdateAll(eptm); err != nil {
		return nil, err
	}
	return eptm, nil
}
