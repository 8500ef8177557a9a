// Package specs loads column-default specifications for epithelium
// construction from TOML documents.
//
// What:
//
//   - Planar, Sheet and Bulk return the canned defaults for the three
//     canonical tissue shapes (embedded at build time).
//   - Parse reads a caller-supplied TOML document into a core.Spec.
//
// A document holds one table per element kind plus a free-form
// [settings] table:
//
//	[settings]
//	geometry = "planar"
//
//	[vert]
//	x = 0.0
//	is_active = true
//
//	[edge]
//	srce = 0
//
// Table names are the canonical kind names ("vert", "edge", "face",
// "cell"); anything else fails with ErrUnknownTable. Column defaults
// keep their TOML type: integers become int, floats float64, booleans
// bool — the type later decides the column type. Settings values are
// unrestricted.
//
// Here the string table names end: past Parse, kinds are the closed
// core.Kind enum.
//
// Errors:
//
//   - ErrUnknownTable: a table name outside the kind enum.
//   - ErrBadDefault: a column default that is not a scalar bool,
//     integer or float.
package specs
