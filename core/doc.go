// Package core stores an epithelial tissue as flat columnar tables
// bound by the half-edge foreign keys, and provides the index algebra,
// topology queries, validity checks and mesh exports built on them.
//
// What:
//
//   - Epithelium groups one Dataset per element Kind: vert, edge, face
//     and (optionally) cell. Rows are dense zero-based positions; the
//     edge table alone carries foreign keys (srce, trgt, face, cell).
//   - Index algebra: UpcastFloats/Ints/Bools broadcast entity columns
//     onto edges through a foreign-key Level; ReduceFloats/ReduceCounts
//     fold per-edge values back per entity; Orbits lists the peripheral
//     indices around each center.
//   - Topology: OppositeEdges pairs reversed half-edges, Partition
//     splits them into free/east/west with the joint single/sorted/
//     wrapped indices and the ±1 anti-symmetric vector, SortEastWest
//     makes the classes contiguous, RefreshTopology recomputes the
//     derived columns after structural edits.
//   - Validity & repair: IsClosed (weak per-face, strong per-cell),
//     InvalidEdges, MarkValid, Sanitize, and the cascading Remove with
//     its dense-renumbering contract (Reindex).
//   - Query & export: BoundingBox, CutOut, TriangleMesh, PolygonMesh,
//     EdgeSegments — flat buffers for mechanics and rendering
//     collaborators.
//
// Why:
//
//   - Vertex-model tissue simulations index thousands of edges per
//     step; flat slices with explicit gathers keep that cheap and
//     deterministic.
//   - The east/west split lets force solvers work on full edges while
//     the half-edge tables keep per-face orientation.
//
// Derived columns follow a manual-refresh contract: structural edits
// leave them stale until RefreshTopology (or a geometry update) is
// called; only construction, Remove and SortEastWest refresh
// implicitly. The package performs no locking and spawns no
// goroutines; callers own synchronization.
//
// Errors are package-level sentinels (see errors.go), wrapped with
// operation context and matched via errors.Is.
package core
