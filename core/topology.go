// SPDX-License-Identifier: MIT
package core

import (
	"fmt"
	"math"
)

// pairKey is a directed vertex pair, the lookup key for opposite detection.
type pairKey struct{ s, t int }

// OppositeEdges computes, for every half-edge, the row of the half-edge
// running in the reverse direction, or NoOpposite when there is none.
// Two half-edges sharing the same directed (srce, trgt) pair make the
// lookup ambiguous and fail with ErrDuplicateEdge. Pairing is
// one-to-one only without cells; cell topologies fail with
// ErrCellTopology.
//
// Complexity: O(Ne).
func (e *Epithelium) OppositeEdges() ([]int, error) {
	if e.hasCells {
		return nil, fmt.Errorf("OppositeEdges: %w", ErrCellTopology)
	}
	srce, err := e.fk(LevelSrce)
	if err != nil {
		return nil, fmt.Errorf("OppositeEdges: %w", err)
	}
	trgt, err := e.fk(LevelTrgt)
	if err != nil {
		return nil, fmt.Errorf("OppositeEdges: %w", err)
	}

	// 1. Index every directed pair, rejecting duplicates outright.
	seen := make(map[pairKey]int, len(srce))
	for i := range srce {
		k := pairKey{srce[i], trgt[i]}
		if first, ok := seen[k]; ok {
			return nil, fmt.Errorf("OppositeEdges: edges %d and %d both run %d→%d: %w",
				first, i, k.s, k.t, ErrDuplicateEdge)
		}
		seen[k] = i
	}

	// 2. Look up each reversed pair.
	opp := make([]int, len(srce))
	for i := range srce {
		j, ok := seen[pairKey{trgt[i], srce[i]}]
		if !ok {
			j = NoOpposite
		}
		opp[i] = j
	}
	return opp, nil
}

// RefreshTopology recomputes the derived topology columns after a
// structural edit: num_sides on faces, num_faces on cells (when
// modeled), and the opposite column when it exists on a cell-free
// edge table. Failures are returned, never downgraded: a foreign key
// outside its table fails with ErrIndexRange, a duplicate directed
// edge found while rebuilding opposites with ErrDuplicateEdge.
//
// Complexity: O(Ne).
func (e *Epithelium) RefreshTopology() error {
	faceFK, err := e.fk(LevelFace)
	if err != nil {
		return fmt.Errorf("RefreshTopology: %w", err)
	}
	nf := e.NumFaces()
	for i, f := range faceFK {
		if f < 0 || f >= nf {
			return fmt.Errorf("RefreshTopology: edge %d, %s=%d not in [0,%d): %w",
				i, LevelFace, f, nf, ErrIndexRange)
		}
	}
	counts, err := e.ReduceCounts(LevelFace)
	if err != nil {
		return fmt.Errorf("RefreshTopology: %w", err)
	}
	numSides := make([]int, nf)
	for f := range numSides {
		numSides[f] = counts[f]
	}
	if err = e.Face().SetInts(ColNumSides, numSides); err != nil {
		return fmt.Errorf("RefreshTopology: %w", err)
	}

	if e.hasCells {
		cellFK, cerr := e.fk(LevelCell)
		if cerr != nil {
			return fmt.Errorf("RefreshTopology: %w", cerr)
		}
		numFaces := make([]int, e.NumCells())
		for i, c := range cellFK {
			if c < 0 || c >= len(numFaces) {
				return fmt.Errorf("RefreshTopology: edge %d, %s=%d not in [0,%d): %w",
					i, LevelCell, c, len(numFaces), ErrIndexRange)
			}
		}
		// num_faces counts distinct faces per cell, not half-edges.
		distinct := make(map[pairKey]struct{}, len(cellFK))
		for i, c := range cellFK {
			k := pairKey{c, faceFK[i]}
			if _, ok := distinct[k]; ok {
				continue
			}
			distinct[k] = struct{}{}
			numFaces[c]++
		}
		if err = e.Cell().SetInts(ColNumFaces, numFaces); err != nil {
			return fmt.Errorf("RefreshTopology: %w", err)
		}
	}

	if !e.hasCells && e.Edge().Has(ColOpposite) {
		opp, oerr := e.OppositeEdges()
		if oerr != nil {
			return fmt.Errorf("RefreshTopology: %w", oerr)
		}
		if err = e.Edge().SetInts(ColOpposite, opp); err != nil {
			return fmt.Errorf("RefreshTopology: %w", err)
		}
	}
	return nil
}

// Partition is the disjoint split of the half-edges into boundary
// (free) edges and the two halves of the paired interior edges.
//
// West mirrors East element-wise: West[i] is the opposite of East[i].
// Single spans the tissue without double-counting (free then east);
// Sorted covers all edges as free, east, west; Wrapped repeats the
// east block (free, east, east), laying a per-single-edge vector back
// over the paired rows. AntiSym holds one sign per half-edge row:
// +1 on free and east edges, -1 on west edges.
type Partition struct {
	Free []int
	East []int
	West []int

	Single  []int
	Sorted  []int
	Wrapped []int

	AntiSym []float64
}

// Interior returns the number of full interior edges, |East|.
func (p *Partition) Interior() int { return len(p.East) }

// Boundary returns the number of free half-edges.
func (p *Partition) Boundary() int { return len(p.Free) }

// Doubled returns the number of paired half-edges, 2·|East|.
func (p *Partition) Doubled() int { return 2 * len(p.East) }

// Partition classifies every half-edge as free, east or west.
//
// A paired edge is east when its planar angle atan2(dy, dx) lies in
// [0, π), west when its opposite is east. The split is only a naming
// convention over the current edge vectors; it stays valid until the
// topology changes. Requires up-to-date dx/dy columns (see the
// geometry package). A paired edge with dx = dy = 0 has no defined
// side and fails with ErrDegenerateEdge; a classification that breaks
// the counting laws fails with ErrPartitionInvariant.
//
// Complexity: O(Ne).
func (e *Epithelium) Partition() (*Partition, error) {
	opp, err := e.OppositeEdges()
	if err != nil {
		return nil, fmt.Errorf("Partition: %w", err)
	}
	edge := e.Edge()
	dx, err := edge.Floats(DCoord(e.coords[0]))
	if err != nil {
		return nil, fmt.Errorf("Partition: %w", err)
	}
	dy, err := edge.Floats(DCoord(e.coords[1]))
	if err != nil {
		return nil, fmt.Errorf("Partition: %w", err)
	}

	// 1. Classify free and east edges in row order.
	ne := len(opp)
	var free, east []int
	isEast := make([]bool, ne)
	for i := 0; i < ne; i++ {
		if opp[i] == NoOpposite {
			free = append(free, i)
			continue
		}
		if dx[i] == 0 && dy[i] == 0 {
			return nil, fmt.Errorf("Partition: edge %d: %w", i, ErrDegenerateEdge)
		}
		theta := math.Atan2(dy[i], dx[i])
		if theta >= 0 && theta < math.Pi {
			east = append(east, i)
			isEast[i] = true
		}
	}

	// 2. West mirrors east through the opposite map.
	west := make([]int, len(east))
	for i, ei := range east {
		wi := opp[ei]
		if isEast[wi] {
			return nil, fmt.Errorf("Partition: edges %d and %d both east: %w",
				ei, wi, ErrPartitionInvariant)
		}
		west[i] = wi
	}

	// 3. Counting laws over the whole table.
	if 2*len(east)+len(free) != ne {
		return nil, fmt.Errorf("Partition: %d edges, %d free, %d east: %w",
			ne, len(free), len(east), ErrPartitionInvariant)
	}

	// 4. Joint indices and the anti-symmetric sign vector.
	single := make([]int, 0, len(free)+len(east))
	single = append(single, free...)
	single = append(single, east...)

	sorted := make([]int, 0, ne)
	sorted = append(sorted, single...)
	sorted = append(sorted, west...)

	wrapped := make([]int, 0, len(single)+len(east))
	wrapped = append(wrapped, single...)
	wrapped = append(wrapped, east...)

	antiSym := make([]float64, ne)
	for i := range antiSym {
		antiSym[i] = 1
	}
	for _, wi := range west {
		antiSym[wi] = -1
	}

	return &Partition{
		Free:    free,
		East:    east,
		West:    west,
		Single:  single,
		Sorted:  sorted,
		Wrapped: wrapped,
		AntiSym: antiSym,
	}, nil
}

// SortEastWest reorders the half-edge table so the free, east and west
// classes become contiguous blocks, in that order, then refreshes the
// derived topology columns (including opposite, which the permutation
// invalidates) and returns the partition of the reordered table.
//
// Complexity: O(Ne).
func (e *Epithelium) SortEastWest() (*Partition, error) {
	opp, err := e.OppositeEdges()
	if err != nil {
		return nil, fmt.Errorf("SortEastWest: %w", err)
	}
	if err = e.Edge().SetInts(ColOpposite, opp); err != nil {
		return nil, fmt.Errorf("SortEastWest: %w", err)
	}
	p, err := e.Partition()
	if err != nil {
		return nil, fmt.Errorf("SortEastWest: %w", err)
	}
	e.datasets[KindEdge] = e.Edge().take(p.Sorted)
	if err = e.RefreshTopology(); err != nil {
		return nil, fmt.Errorf("SortEastWest: %w", err)
	}
	p, err = e.Partition()
	if err != nil {
		return nil, fmt.Errorf("SortEastWest: %w", err)
	}
	return p, nil
}
