// SPDX-License-Identifier: MIT
// Package core: element kinds, foreign-key levels, and canonical column names.
package core

import "fmt"

// Kind enumerates the element tables of an epithelium.
// The set is closed: every dispatch over Kind is exhaustive.
type Kind int

const (
	// KindVert is the vertex table (junction points).
	KindVert Kind = iota
	// KindEdge is the half-edge table, the only table carrying foreign keys.
	KindEdge
	// KindFace is the face table (oriented polygons).
	KindFace
	// KindCell is the cell table (closed shells of faces); optional.
	KindCell

	numKinds
)

// String returns the canonical lower-case table name for k.
func (k Kind) String() string {
	switch k {
	case KindVert:
		return "vert"
	case KindEdge:
		return "edge"
	case KindFace:
		return "face"
	case KindCell:
		return "cell"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= KindVert && k < numKinds }

// ParseKind maps a canonical table name ("vert", "edge", "face", "cell")
// back to its Kind. Unknown names return ErrUnknownDataset.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "vert":
		return KindVert, nil
	case "edge":
		return KindEdge, nil
	case "face":
		return KindFace, nil
	case "cell":
		return KindCell, nil
	default:
		return numKinds, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownDataset)
	}
}

// Level enumerates the foreign-key columns of the half-edge table.
// Srce and Trgt key into the vertex table, Face and Cell into their
// namesake tables.
type Level int

const (
	// LevelSrce is the source-vertex foreign key.
	LevelSrce Level = iota
	// LevelTrgt is the target-vertex foreign key.
	LevelTrgt
	// LevelFace is the owning-face foreign key.
	LevelFace
	// LevelCell is the owning-cell foreign key; only meaningful when
	// cells are modeled.
	LevelCell

	numLevels
)

// String returns the foreign-key column name for l.
func (l Level) String() string {
	switch l {
	case LevelSrce:
		return ColSrce
	case LevelTrgt:
		return ColTrgt
	case LevelFace:
		return ColFace
	case LevelCell:
		return ColCell
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool { return l >= LevelSrce && l < numLevels }

// Kind returns the element table a level keys into:
// LevelSrce and LevelTrgt resolve to KindVert.
func (l Level) Kind() Kind {
	switch l {
	case LevelSrce, LevelTrgt:
		return KindVert
	case LevelFace:
		return KindFace
	case LevelCell:
		return KindCell
	default:
		return numKinds
	}
}

// Canonical column names shared across the element tables.
const (
	// ColSrce is the source-vertex foreign key on the edge table.
	ColSrce = "srce"
	// ColTrgt is the target-vertex foreign key on the edge table.
	ColTrgt = "trgt"
	// ColFace is the owning-face foreign key on the edge table.
	ColFace = "face"
	// ColCell is the owning-cell foreign key on the edge table.
	ColCell = "cell"
	// ColOpposite holds, per half-edge, the row of the reversed half-edge,
	// or NoOpposite for boundary edges.
	ColOpposite = "opposite"
	// ColLength is the per-edge Euclidean length.
	ColLength = "length"
	// ColSubArea is the per-edge triangle sub-area (srce, trgt, face centroid).
	ColSubArea = "sub_area"
	// ColNumSides is the per-face half-edge count.
	ColNumSides = "num_sides"
	// ColNumFaces is the per-cell distinct-face count.
	ColNumFaces = "num_faces"
	// ColArea is the per-face area, the sum of its edge sub-areas.
	ColArea = "area"
	// ColPerimeter is the per-face perimeter, the sum of its edge lengths.
	ColPerimeter = "perimeter"
	// ColIsAlive marks live faces.
	ColIsAlive = "is_alive"
	// ColIsActive marks active vertices.
	ColIsActive = "is_active"
	// ColIsValid marks edges that belong only to closed elements.
	ColIsValid = "is_valid"
)

// NoOpposite is the sentinel stored in ColOpposite for edges
// without a reversed counterpart.
const NoOpposite = -1

// DCoord returns the edge-vector column name for a coordinate,
// e.g. DCoord("x") == "dx".
func DCoord(coord string) string { return "d" + coord }

// NCoord returns the edge-normal column name for a coordinate,
// e.g. NCoord("x") == "nx".
func NCoord(coord string) string { return "n" + coord }
