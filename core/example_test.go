// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/geometry"
)

// ExampleNew hand-builds one counter-clockwise triangle and reads the
// derived face census back.
func ExampleNew() {
	vert := core.NewDataset(3)
	_ = vert.SetFloats("x", []float64{0, 1, 0})
	_ = vert.SetFloats("y", []float64{0, 0, 1})

	edge := core.NewDataset(3)
	_ = edge.SetInts(core.ColSrce, []int{0, 1, 2})
	_ = edge.SetInts(core.ColTrgt, []int{1, 2, 0})
	_ = edge.SetInts(core.ColFace, []int{0, 0, 0})

	eptm, err := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(1),
	}, core.WithCoords("x", "y"))
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	sides, _ := eptm.Face().Ints(core.ColNumSides)
	fmt.Println("verts:", eptm.NumVerts(), "edges:", eptm.NumEdges(), "sides:", sides[0])
	// Output:
	// verts: 3 edges: 3 sides: 3
}

// ExampleEpithelium_Partition splits two glued triangles into boundary
// edges and the two halves of the shared border.
//
//	  2
//	 ╱ ╲      rows 0-2 bound the upper face, rows 3-5 the
//	0───1     lower one; 0→1 (row 0) and 1→0 (row 3) form
//	 ╲ ╱      the single interior pair
//	  3
func ExampleEpithelium_Partition() {
	vert := core.NewDataset(4)
	_ = vert.SetFloats("x", []float64{0, 1, 0.5, 0.5})
	_ = vert.SetFloats("y", []float64{0, 0, 1, -1})

	edge := core.NewDataset(6)
	_ = edge.SetInts(core.ColSrce, []int{0, 1, 2, 1, 0, 3})
	_ = edge.SetInts(core.ColTrgt, []int{1, 2, 0, 0, 3, 1})
	_ = edge.SetInts(core.ColFace, []int{0, 0, 0, 1, 1, 1})

	eptm, _ := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(2),
	}, core.WithCoords("x", "y"))
	_ = geometry.UpdateEdgeVectors(eptm)

	p, _ := eptm.Partition()
	fmt.Println("free:", p.Free)
	fmt.Println("east:", p.East)
	fmt.Println("west:", p.West)
	// Output:
	// free: [1 2 4 5]
	// east: [0]
	// west: [3]
}

// ExampleEpithelium_Remove drops one half-edge of the lower triangle;
// the cascade takes the whole face and its orphaned vertex with it.
func ExampleEpithelium_Remove() {
	vert := core.NewDataset(4)
	_ = vert.SetFloats("x", []float64{0, 1, 0.5, 0.5})
	_ = vert.SetFloats("y", []float64{0, 0, 1, -1})

	edge := core.NewDataset(6)
	_ = edge.SetInts(core.ColSrce, []int{0, 1, 2, 1, 0, 3})
	_ = edge.SetInts(core.ColTrgt, []int{1, 2, 0, 0, 3, 1})
	_ = edge.SetInts(core.ColFace, []int{0, 0, 0, 1, 1, 1})

	eptm, _ := core.New(map[core.Kind]*core.Dataset{
		core.KindVert: vert,
		core.KindEdge: edge,
		core.KindFace: core.NewDataset(2),
	}, core.WithCoords("x", "y"))

	if err := eptm.Remove([]int{4}); err != nil {
		fmt.Println("remove:", err)
		return
	}
	fmt.Println("verts:", eptm.NumVerts())
	fmt.Println("edges:", eptm.NumEdges())
	fmt.Println("faces:", eptm.NumFaces())
	// Output:
	// verts: 3
	// edges: 3
	// faces: 1
}
