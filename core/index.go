// SPDX-License-Identifier: MIT
// Package core: the index algebra between the half-edge table and the
// entity tables. Upcast broadcasts entity values onto edges through a
// foreign key; Reduce folds per-edge values back per entity; Orbits
// lists the peripheral values around each center entity.
package core

import "fmt"

// fk returns the live foreign-key column for a level.
func (e *Epithelium) fk(level Level) (IntColumn, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("level %d: %w", int(level), ErrUnknownLevel)
	}
	if level == LevelCell && !e.hasCells {
		return nil, fmt.Errorf("level %s: %w", level, ErrNoCells)
	}
	return e.datasets[KindEdge].Ints(level.String())
}

// entity returns the entity table a level keys into.
func (e *Epithelium) entity(level Level) (*Dataset, error) {
	kind := level.Kind()
	if !kind.Valid() {
		return nil, fmt.Errorf("level %d: %w", int(level), ErrUnknownLevel)
	}
	return e.Dataset(kind)
}

// UpcastFloats gathers a float64 entity column onto the edges: the
// result holds, for edge i, the value of the entity its level-FK
// points at. Foreign keys outside the entity table fail with
// ErrIndexRange.
//
// Complexity: O(Ne).
func (e *Epithelium) UpcastFloats(level Level, name string) ([]float64, error) {
	fk, err := e.fk(level)
	if err != nil {
		return nil, fmt.Errorf("UpcastFloats: %w", err)
	}
	ds, err := e.entity(level)
	if err != nil {
		return nil, fmt.Errorf("UpcastFloats: %w", err)
	}
	col, err := ds.Floats(name)
	if err != nil {
		return nil, fmt.Errorf("UpcastFloats: %s table: %w", level.Kind(), err)
	}
	out := make([]float64, len(fk))
	for i, r := range fk {
		if r < 0 || r >= len(col) {
			return nil, fmt.Errorf("UpcastFloats: edge %d, %s=%d: %w", i, level, r, ErrIndexRange)
		}
		out[i] = col[r]
	}
	return out, nil
}

// UpcastInts gathers an int entity column onto the edges.
//
// Complexity: O(Ne).
func (e *Epithelium) UpcastInts(level Level, name string) ([]int, error) {
	fk, err := e.fk(level)
	if err != nil {
		return nil, fmt.Errorf("UpcastInts: %w", err)
	}
	ds, err := e.entity(level)
	if err != nil {
		return nil, fmt.Errorf("UpcastInts: %w", err)
	}
	col, err := ds.Ints(name)
	if err != nil {
		return nil, fmt.Errorf("UpcastInts: %s table: %w", level.Kind(), err)
	}
	out := make([]int, len(fk))
	for i, r := range fk {
		if r < 0 || r >= len(col) {
			return nil, fmt.Errorf("UpcastInts: edge %d, %s=%d: %w", i, level, r, ErrIndexRange)
		}
		out[i] = col[r]
	}
	return out, nil
}

// UpcastBools gathers a bool entity column onto the edges.
//
// Complexity: O(Ne).
func (e *Epithelium) UpcastBools(level Level, name string) ([]bool, error) {
	fk, err := e.fk(level)
	if err != nil {
		return nil, fmt.Errorf("UpcastBools: %w", err)
	}
	ds, err := e.entity(level)
	if err != nil {
		return nil, fmt.Errorf("UpcastBools: %w", err)
	}
	col, err := ds.Bools(name)
	if err != nil {
		return nil, fmt.Errorf("UpcastBools: %s table: %w", level.Kind(), err)
	}
	out := make([]bool, len(fk))
	for i, r := range fk {
		if r < 0 || r >= len(col) {
			return nil, fmt.Errorf("UpcastBools: edge %d, %s=%d: %w", i, level, r, ErrIndexRange)
		}
		out[i] = col[r]
	}
	return out, nil
}

// UpcastCoords gathers the entity's coordinate columns onto the edges,
// one slice per coordinate in Coords() order.
//
// Complexity: O(Ne × dim).
func (e *Epithelium) UpcastCoords(level Level) ([][]float64, error) {
	out := make([][]float64, len(e.coords))
	for i, c := range e.coords {
		vals, err := e.UpcastFloats(level, c)
		if err != nil {
			return nil, fmt.Errorf("UpcastCoords: %w", err)
		}
		out[i] = vals
	}
	return out, nil
}

// ReduceFloats sums a per-edge value into its level entity: the result
// maps entity index → sum over the edges pointing at it. Entities with
// no edges are omitted from the map, never zero-filled.
//
// Complexity: O(Ne).
func (e *Epithelium) ReduceFloats(level Level, values []float64) (map[int]float64, error) {
	fk, err := e.fk(level)
	if err != nil {
		return nil, fmt.Errorf("ReduceFloats: %w", err)
	}
	if len(values) != len(fk) {
		return nil, fmt.Errorf("ReduceFloats: got %d values for %d edges: %w",
			len(values), len(fk), ErrColumnLength)
	}
	out := make(map[int]float64)
	for i, r := range fk {
		out[r] += values[i]
	}
	return out, nil
}

// ReduceCounts counts the edges pointing at each level entity.
// Entities with no edges are omitted.
//
// Complexity: O(Ne).
func (e *Epithelium) ReduceCounts(level Level) (map[int]int, error) {
	fk, err := e.fk(level)
	if err != nil {
		return nil, fmt.Errorf("ReduceCounts: %w", err)
	}
	out := make(map[int]int)
	for _, r := range fk {
		out[r]++
	}
	return out, nil
}

// Orbits returns, for every center entity, the peripheral foreign-key
// values of its edges in edge-row order. With (LevelFace, LevelSrce)
// this lists each face's source vertices, half-edge by half-edge.
//
// Complexity: O(Ne).
func (e *Epithelium) Orbits(center, periph Level) (map[int][]int, error) {
	cfk, err := e.fk(center)
	if err != nil {
		return nil, fmt.Errorf("Orbits: center: %w", err)
	}
	pfk, err := e.fk(periph)
	if err != nil {
		return nil, fmt.Errorf("Orbits: periph: %w", err)
	}
	out := make(map[int][]int)
	for i, c := range cfk {
		out[c] = append(out[c], pfk[i])
	}
	return out, nil
}
