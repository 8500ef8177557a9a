// SPDX-License-Identifier: MIT
package core

// Column is one typed column of a Dataset. The set of implementations
// is closed: FloatColumn, IntColumn and BoolColumn.
type Column interface {
	// Len returns the number of rows.
	Len() int

	clone() Column
	take(rows []int) Column
}

// FloatColumn stores one float64 per row.
type FloatColumn []float64

// IntColumn stores one int per row.
type IntColumn []int

// BoolColumn stores one bool per row.
type BoolColumn []bool

// Len returns the number of rows.
func (c FloatColumn) Len() int { return len(c) }

// Len returns the number of rows.
func (c IntColumn) Len() int { return len(c) }

// Len returns the number of rows.
func (c BoolColumn) Len() int { return len(c) }

func (c FloatColumn) clone() Column {
	out := make(FloatColumn, len(c))
	copy(out, c)
	return out
}

func (c IntColumn) clone() Column {
	out := make(IntColumn, len(c))
	copy(out, c)
	return out
}

func (c BoolColumn) clone() Column {
	out := make(BoolColumn, len(c))
	copy(out, c)
	return out
}

// take gathers the given rows, in order, into a fresh column.
func (c FloatColumn) take(rows []int) Column {
	out := make(FloatColumn, len(rows))
	for i, r := range rows {
		out[i] = c[r]
	}
	return out
}

func (c IntColumn) take(rows []int) Column {
	out := make(IntColumn, len(rows))
	for i, r := range rows {
		out[i] = c[r]
	}
	return out
}

func (c BoolColumn) take(rows []int) Column {
	out := make(BoolColumn, len(rows))
	for i, r := range rows {
		out[i] = c[r]
	}
	return out
}
