// Package builder constructs small canonical epithelia for tests,
// examples and benchmarks.
//
// What:
//   - Polygon(n, radius): one face bounded by n vertices on a circle.
//   - TrianglePair(): two triangles sharing a single interior edge.
//   - HexSheet(rows, cols): a honeycomb patch of pointy-top hexagons.
//   - Tetrahedron(): one cell bounded by four triangular faces.
//
// Why:
//
// Hand-writing half-edge tables is error prone: a missing reverse edge
// or a clockwise face silently breaks opposite detection and closedness
// checks, and the failure surfaces far from the mistake. The
// constructors here emit tables that are consistent from the start.
// Faces wind counter-clockwise, shared borders carry both directed
// half-edges, and the geometry columns are refreshed, so the result is
// ready for Partition, IsClosed or Remove without further preparation.
//
// Every constructor is deterministic: the same arguments always produce
// the same tables, row for row.
//
// Errors: ErrTooFewSides, ErrBadRadius, ErrBadGrid.
package builder
