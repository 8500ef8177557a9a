// SPDX-License-Identifier: MIT
package core

import "fmt"

// Remove drops the owning top-level elements (cells when modeled,
// faces otherwise) of the selected half-edges, cascading to all their
// half-edges, to vertices no remaining edge references and, in cell
// mode, to faces no remaining edge references. Relative row order is
// preserved in every table. The operation always concludes with a
// dense renumbering of every table, a rewrite of the edge foreign
// keys, and a topology refresh, so no partially-removed state is
// observable. An empty selection is a logged no-op.
//
// Removal is all-or-nothing per top-level element: selecting one
// half-edge takes its whole cell (or face) away.
//
// Complexity: O(total rows × columns).
func (e *Epithelium) Remove(edges []int) error {
	if err := e.Reindex(); err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	ne := e.NumEdges()
	for _, ei := range edges {
		if ei < 0 || ei >= ne {
			return fmt.Errorf("Remove: edge %d of %d: %w", ei, ne, ErrIndexRange)
		}
	}

	top := LevelFace
	if e.hasCells {
		top = LevelCell
	}
	topFK, err := e.fk(top)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}

	// 1. Distinct owning elements of the selection.
	drop := make(map[int]struct{}, len(edges))
	for _, ei := range edges {
		drop[topFK[ei]] = struct{}{}
	}
	if len(drop) == 0 {
		e.logger.Info("nothing to remove", "epithelium", e.identifier)
		return nil
	}
	e.logger.Info("removing elements",
		"epithelium", e.identifier,
		"level", top.Kind().String(),
		"count", len(drop))

	// 2. Surviving edges: rows whose owner is not dropped, in order.
	keepEdges := make([]int, 0, ne)
	for i, owner := range topFK {
		if _, gone := drop[owner]; !gone {
			keepEdges = append(keepEdges, i)
		}
	}

	srce, err := e.fk(LevelSrce)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	trgt, err := e.fk(LevelTrgt)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	faceFK, err := e.fk(LevelFace)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}

	// 3. Surviving vertices: those referenced by a surviving edge.
	usedVert := make([]bool, e.NumVerts())
	for _, ei := range keepEdges {
		usedVert[srce[ei]] = true
		usedVert[trgt[ei]] = true
	}
	keepVerts, vertMap := compactIndex(usedVert)

	// 4. Surviving faces: all but the dropped ones, or, in cell mode,
	// those still referenced by a surviving edge.
	usedFace := make([]bool, e.NumFaces())
	if e.hasCells {
		for _, ei := range keepEdges {
			usedFace[faceFK[ei]] = true
		}
	} else {
		for f := range usedFace {
			_, gone := drop[f]
			usedFace[f] = !gone
		}
	}
	keepFaces, faceMap := compactIndex(usedFace)

	// 5. Surviving cells: all but the dropped ones.
	var keepCells []int
	var cellMap []int
	if e.hasCells {
		usedCell := make([]bool, e.NumCells())
		for c := range usedCell {
			_, gone := drop[c]
			usedCell[c] = !gone
		}
		keepCells, cellMap = compactIndex(usedCell)
	}

	// 6. Compact every table, then renumber the edge foreign keys
	// through the old→new maps.
	e.datasets[KindVert] = e.Vert().take(keepVerts)
	e.datasets[KindFace] = e.Face().take(keepFaces)
	e.datasets[KindEdge] = e.Edge().take(keepEdges)
	if e.hasCells {
		e.datasets[KindCell] = e.Cell().take(keepCells)
	}

	newSrce, err := e.fk(LevelSrce)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	newTrgt, err := e.fk(LevelTrgt)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	newFace, err := e.fk(LevelFace)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	for i := range newSrce {
		newSrce[i] = vertMap[newSrce[i]]
		newTrgt[i] = vertMap[newTrgt[i]]
		newFace[i] = faceMap[newFace[i]]
	}
	if e.hasCells {
		newCell, cerr := e.fk(LevelCell)
		if cerr != nil {
			return fmt.Errorf("Remove: %w", cerr)
		}
		for i := range newCell {
			newCell[i] = cellMap[newCell[i]]
		}
	}

	if err = e.RefreshTopology(); err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	return nil
}

// compactIndex turns a keep-mask into the kept rows (in order) and an
// old→new index map with -1 at dropped rows.
func compactIndex(used []bool) (keep []int, oldToNew []int) {
	keep = make([]int, 0, len(used))
	oldToNew = make([]int, len(used))
	for old, ok := range used {
		if ok {
			oldToNew[old] = len(keep)
			keep = append(keep, old)
		} else {
			oldToNew[old] = -1
		}
	}
	return keep, oldToNew
}

// Reindex verifies the dense-renumbering contract: tables are stored
// positionally, so indices are dense by construction, and Reindex
// checks that every foreign key points inside its target table and
// that every opposite entry is NoOpposite or a valid edge row.
// Violations, introduced by writing foreign-key columns directly,
// fail with ErrIndexRange.
//
// Complexity: O(Ne).
func (e *Epithelium) Reindex() error {
	type fkCheck struct {
		level Level
		limit int
	}
	checks := []fkCheck{
		{LevelSrce, e.NumVerts()},
		{LevelTrgt, e.NumVerts()},
		{LevelFace, e.NumFaces()},
	}
	if e.hasCells {
		checks = append(checks, fkCheck{LevelCell, e.NumCells()})
	}
	for _, chk := range checks {
		fk, err := e.fk(chk.level)
		if err != nil {
			return fmt.Errorf("Reindex: %w", err)
		}
		for i, r := range fk {
			if r < 0 || r >= chk.limit {
				return fmt.Errorf("Reindex: edge %d, %s=%d not in [0,%d): %w",
					i, chk.level, r, chk.limit, ErrIndexRange)
			}
		}
	}
	if e.Edge().Has(ColOpposite) {
		opp, err := e.Edge().Ints(ColOpposite)
		if err != nil {
			return fmt.Errorf("Reindex: %w", err)
		}
		for i, r := range opp {
			if r != NoOpposite && (r < 0 || r >= len(opp)) {
				return fmt.Errorf("Reindex: edge %d, opposite=%d not in [0,%d): %w",
					i, r, len(opp), ErrIndexRange)
			}
		}
	}
	return nil
}
