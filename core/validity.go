// SPDX-License-Identifier: MIT
package core

import "fmt"

// IsClosed tests each element of a kind for closedness and returns one
// flag per element row.
//
// Faces use the weak test: the set of source vertices equals the set
// of target vertices, so the face's half-edges chain into loops.
// Cells use the strong test: every directed (srce, trgt) pair in the
// cell has exactly one reversed (trgt, srce) pair in the same cell.
// Elements with no half-edges are vacuously closed. Other kinds have
// no closedness notion and fail with ErrClosednessUndefined.
//
// Complexity: O(Ne).
func (e *Epithelium) IsClosed(kind Kind) ([]bool, error) {
	switch kind {
	case KindFace:
		return e.closedFaces()
	case KindCell:
		if !e.hasCells {
			return nil, fmt.Errorf("IsClosed(%s): %w", kind, ErrNoCells)
		}
		return e.closedCells()
	default:
		return nil, fmt.Errorf("IsClosed(%s): %w", kind, ErrClosednessUndefined)
	}
}

// closedFaces runs the weak per-face test.
func (e *Epithelium) closedFaces() ([]bool, error) {
	srces, err := e.Orbits(LevelFace, LevelSrce)
	if err != nil {
		return nil, fmt.Errorf("IsClosed(face): %w", err)
	}
	trgts, err := e.Orbits(LevelFace, LevelTrgt)
	if err != nil {
		return nil, fmt.Errorf("IsClosed(face): %w", err)
	}
	closed := make([]bool, e.NumFaces())
	for f := range closed {
		closed[f] = sameVertexSet(srces[f], trgts[f])
	}
	return closed, nil
}

// sameVertexSet reports set equality of two vertex index slices.
func sameVertexSet(a, b []int) bool {
	set := make(map[int]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	other := make(map[int]struct{}, len(b))
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
		other[v] = struct{}{}
	}
	return len(set) == len(other)
}

// closedCells runs the strong per-cell test.
func (e *Epithelium) closedCells() ([]bool, error) {
	srce, err := e.fk(LevelSrce)
	if err != nil {
		return nil, fmt.Errorf("IsClosed(cell): %w", err)
	}
	trgt, err := e.fk(LevelTrgt)
	if err != nil {
		return nil, fmt.Errorf("IsClosed(cell): %w", err)
	}
	cell, err := e.fk(LevelCell)
	if err != nil {
		return nil, fmt.Errorf("IsClosed(cell): %w", err)
	}

	// Count directed pairs per cell, then demand exactly one reverse
	// for each pair.
	type cellPair struct {
		c    int
		s, t int
	}
	counts := make(map[cellPair]int, len(srce))
	for i := range srce {
		counts[cellPair{cell[i], srce[i], trgt[i]}]++
	}
	closed := make([]bool, e.NumCells())
	for c := range closed {
		closed[c] = true
	}
	for i := range srce {
		c := cell[i]
		if c < 0 || c >= len(closed) {
			return nil, fmt.Errorf("IsClosed(cell): edge %d, cell=%d: %w", i, c, ErrIndexRange)
		}
		if counts[cellPair{c, trgt[i], srce[i]}] != 1 {
			closed[c] = false
		}
	}
	return closed, nil
}

// InvalidEdges returns a per-edge mask flagging every half-edge that
// belongs to a non-closed face or, when cells are modeled, to a
// non-closed cell.
//
// Complexity: O(Ne).
func (e *Epithelium) InvalidEdges() ([]bool, error) {
	faceClosed, err := e.IsClosed(KindFace)
	if err != nil {
		return nil, fmt.Errorf("InvalidEdges: %w", err)
	}
	faceFK, err := e.fk(LevelFace)
	if err != nil {
		return nil, fmt.Errorf("InvalidEdges: %w", err)
	}
	mask := make([]bool, len(faceFK))
	for i, f := range faceFK {
		if f < 0 || f >= len(faceClosed) {
			return nil, fmt.Errorf("InvalidEdges: edge %d, face=%d: %w", i, f, ErrIndexRange)
		}
		mask[i] = !faceClosed[f]
	}
	if e.hasCells {
		cellClosed, cerr := e.IsClosed(KindCell)
		if cerr != nil {
			return nil, fmt.Errorf("InvalidEdges: %w", cerr)
		}
		cellFK, cerr := e.fk(LevelCell)
		if cerr != nil {
			return nil, fmt.Errorf("InvalidEdges: %w", cerr)
		}
		for i, c := range cellFK {
			if c < 0 || c >= len(cellClosed) {
				return nil, fmt.Errorf("InvalidEdges: edge %d, cell=%d: %w", i, c, ErrIndexRange)
			}
			mask[i] = mask[i] || !cellClosed[c]
		}
	}
	return mask, nil
}

// MarkValid writes the is_valid edge column as the complement of
// InvalidEdges.
func (e *Epithelium) MarkValid() error {
	mask, err := e.InvalidEdges()
	if err != nil {
		return fmt.Errorf("MarkValid: %w", err)
	}
	valid := make([]bool, len(mask))
	for i, bad := range mask {
		valid[i] = !bad
	}
	if err = e.Edge().SetBools(ColIsValid, valid); err != nil {
		return fmt.Errorf("MarkValid: %w", err)
	}
	return nil
}

// Sanitize removes every invalid half-edge together with its owning
// elements, per Remove's cascade. A clean epithelium is a logged no-op.
func (e *Epithelium) Sanitize() error {
	mask, err := e.InvalidEdges()
	if err != nil {
		return fmt.Errorf("Sanitize: %w", err)
	}
	var bad []int
	for i, b := range mask {
		if b {
			bad = append(bad, i)
		}
	}
	if err = e.Remove(bad); err != nil {
		return fmt.Errorf("Sanitize: %w", err)
	}
	return nil
}
