// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/specs"
)

// Polygon builds a single face bounded by n vertices spread evenly on
// a circle of the given radius, wound counter-clockwise starting on
// the positive x axis. Every half-edge borders the outside, so
// Partition reports all of them as free.
//
// Returns ErrTooFewSides when n < 3 and ErrBadRadius when radius <= 0.
//
// Complexity: O(n).
func Polygon(n int, radius float64, opts ...Option) (*core.Epithelium, error) {
	if n < 3 {
		return nil, fmt.Errorf("Polygon: n=%d: %w", n, ErrTooFewSides)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("Polygon: radius=%v: %w", radius, ErrBadRadius)
	}
	cfg := resolve("polygon", specs.Planar(), opts)

	xs := make([]float64, n)
	ys := make([]float64, n)
	srce := make([]int, n)
	trgt := make([]int, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		xs[i] = radius * math.Cos(angle)
		ys[i] = radius * math.Sin(angle)
		srce[i] = i
		trgt[i] = (i + 1) % n
	}

	eptm, err := assemble(cfg, tables{
		xs: xs, ys: ys,
		srce: srce, trgt: trgt, face: make([]int, n),
		numFaces: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("Polygon: %w", err)
	}
	return eptm, nil
}
