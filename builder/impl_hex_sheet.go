// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/specs"
)

// hexSide is the circumradius and side length of every honeycomb cell.
const hexSide = 1.0

// gridKey identifies a lattice vertex by its rounded coordinates, so
// hexagons sharing a corner resolve to the same row despite floating
// point noise. Distinct lattice vertices are at least hexSide apart,
// while rounding moves a coordinate by under 1e-6.
type gridKey struct{ x, y int64 }

func keyOf(x, y float64) gridKey {
	return gridKey{int64(math.Round(x * 1e6)), int64(math.Round(y * 1e6))}
}

// HexSheet builds a rows-by-cols patch of pointy-top hexagons with
// side length 1, laid out in offset rows: odd rows shift half a cell
// to the right. Neighboring hexagons share vertices and carry both
// directed half-edges along their common border, so the interior of
// the patch partitions into east/west pairs while the rim stays free.
//
// Faces are numbered row-major; each face winds counter-clockwise.
//
// Returns ErrBadGrid when rows < 1 or cols < 1.
//
// Complexity: O(rows * cols).
func HexSheet(rows, cols int, opts ...Option) (*core.Epithelium, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("HexSheet: %dx%d: %w", rows, cols, ErrBadGrid)
	}
	cfg := resolve("hex_sheet", specs.Planar(), opts)

	nf := rows * cols
	var xs, ys []float64
	srce := make([]int, 0, 6*nf)
	trgt := make([]int, 0, 6*nf)
	face := make([]int, 0, 6*nf)
	index := make(map[gridKey]int)

	// vertexAt interns a lattice corner, appending it on first sight.
	vertexAt := func(x, y float64) int {
		k := keyOf(x, y)
		if v, ok := index[k]; ok {
			return v
		}
		v := len(xs)
		index[k] = v
		xs = append(xs, x)
		ys = append(ys, y)
		return v
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			// Center of the hexagon at grid position (r, c).
			cx := math.Sqrt(3) * hexSide * (float64(c) + 0.5*float64(r%2))
			cy := 1.5 * hexSide * float64(r)

			// Corners counter-clockwise, starting 30 degrees above
			// the positive x axis.
			var corner [6]int
			for k := 0; k < 6; k++ {
				angle := math.Pi/6 + float64(k)*math.Pi/3
				corner[k] = vertexAt(cx+hexSide*math.Cos(angle), cy+hexSide*math.Sin(angle))
			}
			f := r*cols + c
			for k := 0; k < 6; k++ {
				srce = append(srce, corner[k])
				trgt = append(trgt, corner[(k+1)%6])
				face = append(face, f)
			}
		}
	}

	eptm, err := assemble(cfg, tables{
		xs: xs, ys: ys,
		srce: srce, trgt: trgt, face: face,
		numFaces: nf,
	})
	if err != nil {
		return nil, fmt.Errorf("HexSheet: %w", err)
	}
	return eptm, nil
}
