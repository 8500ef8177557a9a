// SPDX-License-Identifier: MIT
package core

import (
	"fmt"
	"sort"
)

// Dataset is one columnar element table. Rows are identified by their
// dense, zero-based position; columns are named and typed.
//
// Column accessors return the live backing slice, not a copy: writes
// through the returned slice are visible to the table. Set* adopt the
// provided slice for the same reason.
type Dataset struct {
	rows int
	cols map[string]Column
}

// NewDataset returns an empty table with the given number of rows.
// Negative row counts are treated as zero.
func NewDataset(rows int) *Dataset {
	if rows < 0 {
		rows = 0
	}
	return &Dataset{rows: rows, cols: make(map[string]Column)}
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Has reports whether a column with the given name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.cols[name]
	return ok
}

// Names returns the column names in lexicographic order.
func (d *Dataset) Names() []string {
	names := make([]string, 0, len(d.cols))
	for name := range d.cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Column returns the named column, or ErrColumnMissing.
func (d *Dataset) Column(name string) (Column, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("Column(%q): %w", name, ErrColumnMissing)
	}
	return col, nil
}

// Floats returns the named float64 column.
// Returns ErrColumnMissing if absent, ErrColumnType if typed otherwise.
func (d *Dataset) Floats(name string) (FloatColumn, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("Floats(%q): %w", name, ErrColumnMissing)
	}
	fc, ok := col.(FloatColumn)
	if !ok {
		return nil, fmt.Errorf("Floats(%q): %w", name, ErrColumnType)
	}
	return fc, nil
}

// Ints returns the named int column.
// Returns ErrColumnMissing if absent, ErrColumnType if typed otherwise.
func (d *Dataset) Ints(name string) (IntColumn, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("Ints(%q): %w", name, ErrColumnMissing)
	}
	ic, ok := col.(IntColumn)
	if !ok {
		return nil, fmt.Errorf("Ints(%q): %w", name, ErrColumnType)
	}
	return ic, nil
}

// Bools returns the named bool column.
// Returns ErrColumnMissing if absent, ErrColumnType if typed otherwise.
func (d *Dataset) Bools(name string) (BoolColumn, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("Bools(%q): %w", name, ErrColumnMissing)
	}
	bc, ok := col.(BoolColumn)
	if !ok {
		return nil, fmt.Errorf("Bools(%q): %w", name, ErrColumnType)
	}
	return bc, nil
}

// SetFloats installs values as a float64 column, adopting the slice.
// Returns ErrColumnLength if len(values) differs from the table length.
func (d *Dataset) SetFloats(name string, values []float64) error {
	if len(values) != d.rows {
		return fmt.Errorf("SetFloats(%q): got %d values for %d rows: %w",
			name, len(values), d.rows, ErrColumnLength)
	}
	d.cols[name] = FloatColumn(values)
	return nil
}

// SetInts installs values as an int column, adopting the slice.
// Returns ErrColumnLength if len(values) differs from the table length.
func (d *Dataset) SetInts(name string, values []int) error {
	if len(values) != d.rows {
		return fmt.Errorf("SetInts(%q): got %d values for %d rows: %w",
			name, len(values), d.rows, ErrColumnLength)
	}
	d.cols[name] = IntColumn(values)
	return nil
}

// SetBools installs values as a bool column, adopting the slice.
// Returns ErrColumnLength if len(values) differs from the table length.
func (d *Dataset) SetBools(name string, values []bool) error {
	if len(values) != d.rows {
		return fmt.Errorf("SetBools(%q): got %d values for %d rows: %w",
			name, len(values), d.rows, ErrColumnLength)
	}
	d.cols[name] = BoolColumn(values)
	return nil
}

// EnsureColumn creates the named column filled with def when it does not
// exist; with reset it overwrites an existing column with def as well.
// The column type is inferred from def, which must be a bool, an int or
// a float64; anything else returns ErrDefaultType.
func (d *Dataset) EnsureColumn(name string, def any, reset bool) error {
	if d.Has(name) && !reset {
		return nil
	}
	switch v := def.(type) {
	case bool:
		col := make(BoolColumn, d.rows)
		for i := range col {
			col[i] = v
		}
		d.cols[name] = col
	case int:
		col := make(IntColumn, d.rows)
		for i := range col {
			col[i] = v
		}
		d.cols[name] = col
	case float64:
		col := make(FloatColumn, d.rows)
		for i := range col {
			col[i] = v
		}
		d.cols[name] = col
	default:
		return fmt.Errorf("EnsureColumn(%q): default %v (%T): %w", name, def, def, ErrDefaultType)
	}
	return nil
}

// Drop removes the named column if present.
func (d *Dataset) Drop(name string) {
	delete(d.cols, name)
}

// clone returns a deep copy of the table.
func (d *Dataset) clone() *Dataset {
	out := &Dataset{rows: d.rows, cols: make(map[string]Column, len(d.cols))}
	for name, col := range d.cols {
		out.cols[name] = col.clone()
	}
	return out
}

// take gathers the given rows, in order, into a fresh table with the
// same column set.
func (d *Dataset) take(rows []int) *Dataset {
	out := &Dataset{rows: len(rows), cols: make(map[string]Column, len(d.cols))}
	for name, col := range d.cols {
		out.cols[name] = col.take(rows)
	}
	return out
}
