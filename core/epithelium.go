// SPDX-License-Identifier: MIT
package core

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
)

// Epithelium is a whole tissue: one columnar table per element kind,
// tied together by the foreign-key columns of the half-edge table.
//
// All derived columns (edge vectors, lengths, num_sides, opposite, …)
// follow the manual-refresh contract: structural edits leave them stale
// until an explicit refresh call recomputes them. The type performs no
// locking and spawns no goroutines; callers own synchronization.
type Epithelium struct {
	identifier string
	coords     []string
	datasets   map[Kind]*Dataset
	spec       *Spec
	logger     *slog.Logger
	hasCells   bool
}

// New assembles an epithelium from per-kind tables.
//
// The vert, edge and face tables are required (ErrMissingDataset); the
// cell table is optional and its presence switches the topology to
// cell mode. Tables are adopted, not copied. Column defaults from the
// specification (WithSpec) are applied to the supplied tables, foreign
// keys are range-checked, and the derived topology columns are
// refreshed once, so a freshly constructed epithelium is consistent.
//
// Complexity: O(total rows × columns).
func New(datasets map[Kind]*Dataset, opts ...Option) (*Epithelium, error) {
	for kind, ds := range datasets {
		if !kind.Valid() {
			return nil, fmt.Errorf("New: dataset %d: %w", int(kind), ErrUnknownDataset)
		}
		if ds == nil {
			return nil, fmt.Errorf("New: %s dataset is nil: %w", kind, ErrMissingDataset)
		}
	}
	for _, kind := range []Kind{KindVert, KindEdge, KindFace} {
		if _, ok := datasets[kind]; !ok {
			return nil, fmt.Errorf("New: %s: %w", kind, ErrMissingDataset)
		}
	}

	e := &Epithelium{
		coords:   []string{"x", "y", "z"},
		datasets: make(map[Kind]*Dataset, len(datasets)),
	}
	for kind, ds := range datasets {
		e.datasets[kind] = ds
	}
	_, e.hasCells = e.datasets[KindCell]

	for _, opt := range opts {
		opt(e)
	}
	if len(e.coords) < 2 || len(e.coords) > 3 {
		return nil, fmt.Errorf("New: %d coordinate columns: %w", len(e.coords), ErrDimensionMismatch)
	}
	if e.identifier == "" {
		e.identifier = uuid.NewString()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.spec == nil {
		e.spec = NewSpec()
	}
	if e.spec.Defaults == nil {
		e.spec.Defaults = make(map[Kind]map[string]any)
	}
	if e.spec.Settings == nil {
		e.spec.Settings = make(map[string]any)
	}

	if err := e.applySpec(e.spec, false); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	// The edge table must carry its foreign keys and the vertex table
	// its coordinate columns, whether supplied directly or by the spec.
	edge := e.datasets[KindEdge]
	fks := []string{ColSrce, ColTrgt, ColFace}
	if e.hasCells {
		fks = append(fks, ColCell)
	}
	for _, name := range fks {
		if _, err := edge.Ints(name); err != nil {
			return nil, fmt.Errorf("New: edge table: %w", err)
		}
	}
	vert := e.datasets[KindVert]
	for _, c := range e.coords {
		if _, err := vert.Floats(c); err != nil {
			return nil, fmt.Errorf("New: vert table: %w", err)
		}
	}

	if err := e.Reindex(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err := e.RefreshTopology(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return e, nil
}

// Identifier returns the epithelium's name.
func (e *Epithelium) Identifier() string { return e.identifier }

// Dim returns the number of coordinate columns (2 or 3).
func (e *Epithelium) Dim() int { return len(e.coords) }

// Coords returns a copy of the coordinate column names, in order.
func (e *Epithelium) Coords() []string {
	return append([]string(nil), e.coords...)
}

// HasCells reports whether a cell table is modeled.
func (e *Epithelium) HasCells() bool { return e.hasCells }

// Dataset returns the table for a kind.
// Returns ErrUnknownDataset for kinds outside the enum and ErrNoCells
// for KindCell on a cell-free epithelium.
func (e *Epithelium) Dataset(kind Kind) (*Dataset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("Dataset(%s): %w", kind, ErrUnknownDataset)
	}
	ds, ok := e.datasets[kind]
	if !ok {
		return nil, fmt.Errorf("Dataset(%s): %w", kind, ErrNoCells)
	}
	return ds, nil
}

// Vert returns the vertex table.
func (e *Epithelium) Vert() *Dataset { return e.datasets[KindVert] }

// Edge returns the half-edge table.
func (e *Epithelium) Edge() *Dataset { return e.datasets[KindEdge] }

// Face returns the face table.
func (e *Epithelium) Face() *Dataset { return e.datasets[KindFace] }

// Cell returns the cell table, or nil when cells are not modeled.
func (e *Epithelium) Cell() *Dataset { return e.datasets[KindCell] }

// NumVerts returns the vertex count.
func (e *Epithelium) NumVerts() int { return e.datasets[KindVert].Len() }

// NumEdges returns the half-edge count.
func (e *Epithelium) NumEdges() int { return e.datasets[KindEdge].Len() }

// NumFaces returns the face count.
func (e *Epithelium) NumFaces() int { return e.datasets[KindFace].Len() }

// NumCells returns the cell count, zero when cells are not modeled.
func (e *Epithelium) NumCells() int {
	if !e.hasCells {
		return 0
	}
	return e.datasets[KindCell].Len()
}

// Settings returns the live free-form settings map of the specification.
func (e *Epithelium) Settings() map[string]any { return e.spec.Settings }

// Spec returns the live column-default specification.
func (e *Epithelium) Spec() *Spec { return e.spec }

// UpdateSpec merges next into the epithelium's specification and applies
// the merged-in defaults to the tables. With reset, columns named by
// next are overwritten with their defaults even when they already exist.
func (e *Epithelium) UpdateSpec(next *Spec, reset bool) error {
	if next == nil {
		return nil
	}
	e.spec.Merge(next)
	if err := e.applySpec(next, reset); err != nil {
		return fmt.Errorf("UpdateSpec: %w", err)
	}
	return nil
}

// applySpec creates (or, with reset, overwrites) the columns named by s
// on the tables that are present. Kinds are visited in enum order and
// columns in lexicographic order, so failures are deterministic.
func (e *Epithelium) applySpec(s *Spec, reset bool) error {
	for kind := KindVert; kind < numKinds; kind++ {
		tbl, ok := s.Defaults[kind]
		if !ok {
			continue
		}
		ds, ok := e.datasets[kind]
		if !ok {
			continue
		}
		names := make([]string, 0, len(tbl))
		for name := range tbl {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := ds.EnsureColumn(name, tbl[name], reset); err != nil {
				return fmt.Errorf("%s table: %w", kind, err)
			}
		}
	}
	return nil
}

// Copy returns a deep, independent duplicate of the epithelium with
// "_copy" appended to its identifier. The logger is shared.
func (e *Epithelium) Copy() *Epithelium {
	datasets := make(map[Kind]*Dataset, len(e.datasets))
	for kind, ds := range e.datasets {
		datasets[kind] = ds.clone()
	}
	return &Epithelium{
		identifier: e.identifier + "_copy",
		coords:     append([]string(nil), e.coords...),
		datasets:   datasets,
		spec:       e.spec.Clone(),
		logger:     e.logger,
		hasCells:   e.hasCells,
	}
}
