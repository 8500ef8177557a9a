// SPDX-License-Identifier: MIT
// Package core: sentinel errors for the epithelium tables and topology.
//
// All public operations return these sentinels, optionally wrapped with
// fmt.Errorf("Op(...): %w", ErrX) for context; callers branch with
// errors.Is. No operation panics on user-triggered conditions.
package core

import "errors"

// Configuration errors: malformed datasets, specs, or requests.
var (
	// ErrUnknownDataset indicates a dataset or table name outside the Kind enum.
	ErrUnknownDataset = errors.New("core: unknown dataset kind")

	// ErrMissingDataset indicates a required dataset (vert, edge, face) was not supplied.
	ErrMissingDataset = errors.New("core: required dataset missing")

	// ErrUnknownLevel indicates a foreign-key level outside the Level enum.
	ErrUnknownLevel = errors.New("core: unknown foreign-key level")

	// ErrNoCells indicates a cell-level operation on an epithelium without a cell table.
	ErrNoCells = errors.New("core: no cell dataset modeled")

	// ErrDefaultType indicates a column default whose type is not bool, int or float64.
	ErrDefaultType = errors.New("core: unsupported default value type")

	// ErrColumnMissing indicates a referenced column does not exist.
	ErrColumnMissing = errors.New("core: column not found")

	// ErrColumnType indicates a column exists with a different element type.
	ErrColumnType = errors.New("core: column has unexpected type")

	// ErrColumnLength indicates a column or value slice whose length does not
	// match its table.
	ErrColumnLength = errors.New("core: column length mismatch")

	// ErrDimensionMismatch indicates a coordinate-dimension disagreement,
	// e.g. a bounding box with fewer intervals than coordinates.
	ErrDimensionMismatch = errors.New("core: coordinate dimension mismatch")

	// ErrEmptyDataset indicates an aggregate query over a table with no rows.
	ErrEmptyDataset = errors.New("core: dataset has no rows")
)

// Topology errors: structurally inconsistent half-edge tables.
var (
	// ErrDuplicateEdge indicates two half-edges with the same (srce, trgt) pair.
	ErrDuplicateEdge = errors.New("core: duplicate directed edge")

	// ErrCellTopology indicates an opposite or partition request on a
	// cell-bearing epithelium, where half-edge pairing is not one-to-one.
	ErrCellTopology = errors.New("core: operation undefined on cell topologies")

	// ErrClosednessUndefined indicates a closedness test for a kind that has none.
	ErrClosednessUndefined = errors.New("core: closedness undefined for element kind")

	// ErrPartitionInvariant indicates the east/west/free partition failed its
	// counting laws: 2·east + free = Ne and |west| = |east|.
	ErrPartitionInvariant = errors.New("core: east/west partition invariant violated")

	// ErrIndexRange indicates a foreign key or opposite entry pointing
	// outside its target table.
	ErrIndexRange = errors.New("core: foreign key out of range")
)

// Degenerate-geometry errors: inputs on which a geometric rule is undefined.
var (
	// ErrDegenerateEdge indicates a paired half-edge with zero planar
	// direction (dx = dy = 0), on which the east/west rule is undefined.
	ErrDegenerateEdge = errors.New("core: degenerate paired edge, east/west undefined")
)
