// Package hemesh is your in-memory toolkit for building, indexing and
// repairing half-edge tissue meshes — from columnar element tables to
// partitions, closedness checks and render-ready buffers.
//
// 🚀 What is hemesh?
//
//	A columnar half-edge engine for epithelium-like meshes that brings together:
//		• Core tables: vertices, half-edges, faces and optional cells as flat columns
//		• Index algebra: upcast per-element data onto edges, reduce it back, walk orbits
//		• Topology: opposite pairing, east/west/free partitions, reorderable edge tables
//		• Validity: weak and strong closedness, invalid-edge masks, cascading removal
//		• Queries & export: bounding boxes, rectangular crops, triangle/polygon buffers
//
// ✨ Why choose hemesh?
//
//   - Columnar layout – flat float64/int/bool slices, friendly to bulk math
//   - Explicit refresh – you decide when derived topology is recomputed
//   - Deterministic – the same tables in produce the same tables out, row for row
//   - Extensible – TOML specifications seed default columns for custom models
//
// Under the hood, everything is organized under four subpackages:
//
//	builder/  — canonical fixtures: polygons, triangle pairs, honeycombs, tetrahedra
//	core/     — Epithelium, Dataset and the index/topology/validity operations
//	geometry/ — edge vectors, lengths, centroids, normals, areas, perimeters
//	specs/    — embedded TOML column-default specifications (planar, sheet, bulk)
//
// Quick ASCII example:
//
//	    2
//	   ╱ ╲        two triangles glued along 0─1:
//	  0───1       six half-edges, one interior east/west pair,
//	   ╲ ╱        four free boundary edges
//	    3
//
// Dive into README.md for full examples and the data-model reference.
//
//	go get github.com/katalvlaran/hemesh
package hemesh
