// SPDX-License-Identifier: MIT
package core

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Interval is a closed per-coordinate range.
type Interval struct {
	Min, Max float64
}

// Contains reports whether v lies inside the interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Min && v <= iv.Max
}

// BoundingBox returns, per coordinate in Coords() order, the vertex
// position range widened by margin on both sides. An epithelium
// without vertices has no box and fails with ErrEmptyDataset.
//
// Complexity: O(Nv × dim).
func (e *Epithelium) BoundingBox(margin float64) ([]Interval, error) {
	if e.NumVerts() == 0 {
		return nil, fmt.Errorf("BoundingBox: vert table: %w", ErrEmptyDataset)
	}
	vert := e.Vert()
	out := make([]Interval, len(e.coords))
	for i, c := range e.coords {
		col, err := vert.Floats(c)
		if err != nil {
			return nil, fmt.Errorf("BoundingBox: %w", err)
		}
		out[i] = Interval{
			Min: floats.Min(col) - margin,
			Max: floats.Max(col) + margin,
		}
	}
	return out, nil
}

// CutOut returns the half-edges with at least one endpoint outside the
// bounding box, one interval per coordinate in Coords() order. The
// result feeds Remove to crop a tissue. Bounds of the wrong dimension
// fail with ErrDimensionMismatch.
//
// Complexity: O((Nv + Ne) × dim).
func (e *Epithelium) CutOut(bounds []Interval) ([]int, error) {
	if len(bounds) != len(e.coords) {
		return nil, fmt.Errorf("CutOut: %d intervals for %d coordinates: %w",
			len(bounds), len(e.coords), ErrDimensionMismatch)
	}
	srce, err := e.fk(LevelSrce)
	if err != nil {
		return nil, fmt.Errorf("CutOut: %w", err)
	}
	trgt, err := e.fk(LevelTrgt)
	if err != nil {
		return nil, fmt.Errorf("CutOut: %w", err)
	}
	vert := e.Vert()

	outVert := make([]bool, e.NumVerts())
	for i, c := range e.coords {
		col, cerr := vert.Floats(c)
		if cerr != nil {
			return nil, fmt.Errorf("CutOut: %w", cerr)
		}
		for v, pos := range col {
			if !bounds[i].Contains(pos) {
				outVert[v] = true
			}
		}
	}

	var out []int
	for i := range srce {
		s, t := srce[i], trgt[i]
		if s < 0 || s >= len(outVert) || t < 0 || t >= len(outVert) {
			return nil, fmt.Errorf("CutOut: edge %d: %w", i, ErrIndexRange)
		}
		if outVert[s] || outVert[t] {
			out = append(out, i)
		}
	}
	return out, nil
}
