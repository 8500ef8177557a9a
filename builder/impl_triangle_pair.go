// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/specs"
)

// TrianglePair builds the smallest epithelium with an interior border:
// two counter-clockwise triangles glued along the segment from (0,0)
// to (1,0). The shared border carries both directed half-edges, so
// Partition reports one east/west pair and four free edges.
//
// Complexity: O(1).
func TrianglePair(opts ...Option) (*core.Epithelium, error) {
	cfg := resolve("triangle_pair", specs.Planar(), opts)

	// Vertex 2 sits above the shared segment, vertex 3 below it.
	t := tables{
		xs: []float64{0, 1, 0.5, 0.5},
		ys: []float64{0, 0, 1, -1},

		srce: []int{0, 1, 2, 1, 0, 3},
		trgt: []int{1, 2, 0, 0, 3, 1},
		face: []int{0, 0, 0, 1, 1, 1},

		numFaces: 2,
	}

	eptm, err := assemble(cfg, t)
	if err != nil {
		return nil, fmt.Errorf("TrianglePair: %w", err)
	}
	return eptm, nil
}
