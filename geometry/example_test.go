// SPDX-License-Identifier: MIT
package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/geometry"
)

// ExampleUpdateAll refreshes every derived column of a unit square and
// reads the face measures back.
func ExampleUpdateAll() {
	vert := core.NewDataset(4)
	_ = vert.SetFloats("x", []float64{0, 1, 1, 0})
	_ = vert.SetFloats("y", []float64{0, 0, 1, 1})

	edge := core.NewDataset(4)
	_ = edge.SetInts(core.ColSrce, []int{0, 1, 2, 3})
	_ = edge.SetInts(core.ColTrgt, []int{1, 2, 3, 0})
	_ = edge.SetInts(core.ColFace, []int{0, 0, 0, 0})

	eptm, _ := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(1),
	}, core.WithCoords("x", "y"))

	if err := geometry.UpdateAll(eptm); err != nil {
		fmt.Println("update:", err)
		return
	}

	cx, _ := eptm.Face().Floats("x")
	cy, _ := eptm.Face().Floats("y")
	area, _ := eptm.Face().Floats(core.ColArea)
	perim, _ := eptm.Face().Floats(core.ColPerimeter)
	fmt.Println("centroid:", cx[0], cy[0])
	fmt.Println("area:", area[0])
	fmt.Println("perimeter:", perim[0])
	// Output:
	// centroid: 0.5 0.5
	// area: 1
	// perimeter: 4
}
