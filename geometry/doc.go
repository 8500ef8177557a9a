// Package geometry recomputes the derived geometric columns of an
// epithelium: edge vectors, lengths, face centroids, edge normals,
// sub-areas and areas, and perimeters.
//
// What:
//
//   - UpdateEdgeVectors: dx/dy/dz ← trgt position − srce position.
//   - UpdateLengths: length ← ‖(dx, dy, dz)‖.
//   - UpdateCentroids: face coordinates ← mean of its source positions.
//   - UpdateNormals (3-D): per-edge normal ← (srce − centroid) × edge
//     vector, so counter-clockwise faces in the xy-plane point +z.
//   - UpdateAreas: per-edge sub_area (signed half cross product in the
//     plane, half normal magnitude in 3-D), summed per face into area.
//   - UpdatePerimeters: face perimeter ← sum of its edge lengths.
//   - UpdateAll: the whole pipeline in dependency order, picking the
//     planar or sheet variant from the epithelium's dimension.
//
// Why:
//
//   - The topology partition and the mesh exports in package core read
//     these columns but never write them; the manual-refresh contract
//     puts that here, one explicit call per batch of vertex moves.
//
// Each Update function requires its prerequisites to be current (run
// UpdateEdgeVectors before UpdateLengths, UpdateNormals before a 3-D
// UpdateAreas); UpdateAll orders them for you.
//
// Complexity:
//
//   - every Update function: O(Ne × dim) time, O(Ne) memory.
//
// Errors:
//
//   - ErrDimension: a 3-D-only update on a planar epithelium.
//   - core.ErrColumnMissing (wrapped): a prerequisite column is absent.
package geometry
