// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/specs"
)

// Tetrahedron builds a single cell bounded by four triangular faces,
// the smallest strongly closed cell topology. Each of the six
// undirected edges carries exactly two directed half-edges running in
// reverse, so IsClosed(KindCell) holds. Faces wind counter-clockwise
// seen from outside the cell, giving outward normals.
//
// Complexity: O(1).
func Tetrahedron(opts ...Option) (*core.Epithelium, error) {
	cfg := resolve("tetrahedron", specs.Bulk(), opts)

	// Alternating corners of the unit cube, centered on the origin.
	t := tables{
		xs: []float64{1, 1, -1, -1},
		ys: []float64{1, -1, 1, -1},
		zs: []float64{1, -1, -1, 1},

		srce: []int{0, 1, 2, 0, 2, 3, 0, 3, 1, 1, 3, 2},
		trgt: []int{1, 2, 0, 2, 3, 0, 3, 1, 0, 3, 2, 1},
		face: []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3},
		cell: make([]int, 12),

		numFaces: 4,
		numCells: 1,
	}

	eptm, err := assemble(cfg, t)
	if err != nil {
		return nil, fmt.Errorf("Tetrahedron: %w", err)
	}
	return eptm, nil
}
