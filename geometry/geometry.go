// SPDX-License-Identifier: MIT
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hemesh/core"
)

// UpdateEdgeVectors rewrites the dx/dy/dz columns as the difference
// between each half-edge's target and source positions.
func UpdateEdgeVectors(e *core.Epithelium) error {
	for _, c := range e.Coords() {
		sPos, err := e.UpcastFloats(core.LevelSrce, c)
		if err != nil {
			return fmt.Errorf("UpdateEdgeVectors: %w", err)
		}
		tPos, err := e.UpcastFloats(core.LevelTrgt, c)
		if err != nil {
			return fmt.Errorf("UpdateEdgeVectors: %w", err)
		}
		d := make([]float64, len(sPos))
		for i := range d {
			d[i] = tPos[i] - sPos[i]
		}
		if err = e.Edge().SetFloats(core.DCoord(c), d); err != nil {
			return fmt.Errorf("UpdateEdgeVectors: %w", err)
		}
	}
	return nil
}

// UpdateLengths rewrites the length column as the Euclidean norm of
// the edge vectors. Requires up-to-date dx/dy/dz columns.
func UpdateLengths(e *core.Epithelium) error {
	edge := e.Edge()
	dcols := make([]core.FloatColumn, e.Dim())
	for i, c := range e.Coords() {
		col, err := edge.Floats(core.DCoord(c))
		if err != nil {
			return fmt.Errorf("UpdateLengths: %w", err)
		}
		dcols[i] = col
	}
	length := make([]float64, e.NumEdges())
	for i := range length {
		var sq float64
		for _, col := range dcols {
			sq += col[i] * col[i]
		}
		length[i] = math.Sqrt(sq)
	}
	if err := edge.SetFloats(core.ColLength, length); err != nil {
		return fmt.Errorf("UpdateLengths: %w", err)
	}
	return nil
}

// UpdateCentroids rewrites each face's coordinate columns as the mean
// position of its source vertices. Faces without edges keep zeros.
func UpdateCentroids(e *core.Epithelium) error {
	counts, err := e.ReduceCounts(core.LevelFace)
	if err != nil {
		return fmt.Errorf("UpdateCentroids: %w", err)
	}
	for _, c := range e.Coords() {
		sPos, uerr := e.UpcastFloats(core.LevelSrce, c)
		if uerr != nil {
			return fmt.Errorf("UpdateCentroids: %w", uerr)
		}
		sums, rerr := e.ReduceFloats(core.LevelFace, sPos)
		if rerr != nil {
			return fmt.Errorf("UpdateCentroids: %w", rerr)
		}
		col := make([]float64, e.NumFaces())
		for f := range col {
			if n := counts[f]; n > 0 {
				col[f] = sums[f] / float64(n)
			}
		}
		if err = e.Face().SetFloats(c, col); err != nil {
			return fmt.Errorf("UpdateCentroids: %w", err)
		}
	}
	return nil
}

// UpdateNormals rewrites the nx/ny/nz columns as the cross product of
// each half-edge's centroid-to-source vector with its edge vector, so
// faces wound counter-clockwise in the xy-plane get +z normals.
// Requires up-to-date edge vectors and centroids, and three
// coordinates (ErrDimension otherwise).
func UpdateNormals(e *core.Epithelium) error {
	if e.Dim() != 3 {
		return fmt.Errorf("UpdateNormals: %w", ErrDimension)
	}
	rs, rd, err := edgeFrames(e)
	if err != nil {
		return fmt.Errorf("UpdateNormals: %w", err)
	}
	ne := e.NumEdges()
	nx := make([]float64, ne)
	ny := make([]float64, ne)
	nz := make([]float64, ne)
	for i := 0; i < ne; i++ {
		n := r3.Cross(rs[i], rd[i])
		nx[i], ny[i], nz[i] = n.X, n.Y, n.Z
	}
	coords := e.Coords()
	for k, col := range [][]float64{nx, ny, nz} {
		if err = e.Edge().SetFloats(core.NCoord(coords[k]), col); err != nil {
			return fmt.Errorf("UpdateNormals: %w", err)
		}
	}
	return nil
}

// UpdateAreas rewrites the per-edge sub_area column and sums it per
// face into the area column. In the plane, sub_area is the signed half
// cross product of the centroid-to-source and edge vectors, so
// counter-clockwise faces get positive areas; in 3-D it is half the
// edge normal's magnitude, which requires up-to-date normals.
func UpdateAreas(e *core.Epithelium) error {
	ne := e.NumEdges()
	sub := make([]float64, ne)
	if e.Dim() == 3 {
		ncols := make([]core.FloatColumn, 3)
		for k, c := range e.Coords() {
			col, err := e.Edge().Floats(core.NCoord(c))
			if err != nil {
				return fmt.Errorf("UpdateAreas: %w", err)
			}
			ncols[k] = col
		}
		for i := 0; i < ne; i++ {
			n := r3.Vec{X: ncols[0][i], Y: ncols[1][i], Z: ncols[2][i]}
			sub[i] = r3.Norm(n) / 2
		}
	} else {
		rs, rd, err := edgeFrames(e)
		if err != nil {
			return fmt.Errorf("UpdateAreas: %w", err)
		}
		for i := 0; i < ne; i++ {
			sub[i] = (rs[i].X*rd[i].Y - rs[i].Y*rd[i].X) / 2
		}
	}
	if err := e.Edge().SetFloats(core.ColSubArea, sub); err != nil {
		return fmt.Errorf("UpdateAreas: %w", err)
	}

	sums, err := e.ReduceFloats(core.LevelFace, sub)
	if err != nil {
		return fmt.Errorf("UpdateAreas: %w", err)
	}
	area := make([]float64, e.NumFaces())
	for f := range area {
		area[f] = sums[f]
	}
	if err = e.Face().SetFloats(core.ColArea, area); err != nil {
		return fmt.Errorf("UpdateAreas: %w", err)
	}
	return nil
}

// UpdatePerimeters sums each face's edge lengths into the perimeter
// column. Requires an up-to-date length column.
func UpdatePerimeters(e *core.Epithelium) error {
	length, err := e.Edge().Floats(core.ColLength)
	if err != nil {
		return fmt.Errorf("UpdatePerimeters: %w", err)
	}
	sums, err := e.ReduceFloats(core.LevelFace, length)
	if err != nil {
		return fmt.Errorf("UpdatePerimeters: %w", err)
	}
	perim := make([]float64, e.NumFaces())
	for f := range perim {
		perim[f] = sums[f]
	}
	if err = e.Face().SetFloats(core.ColPerimeter, perim); err != nil {
		return fmt.Errorf("UpdatePerimeters: %w", err)
	}
	return nil
}

// UpdateAll runs the whole geometry pipeline in dependency order:
// edge vectors, lengths, centroids, normals (three coordinates only),
// areas, perimeters.
func UpdateAll(e *core.Epithelium) error {
	steps := []func(*core.Epithelium) error{
		UpdateEdgeVectors,
		UpdateLengths,
		UpdateCentroids,
	}
	if e.Dim() == 3 {
		steps = append(steps, UpdateNormals)
	}
	steps = append(steps, UpdateAreas, UpdatePerimeters)
	for _, step := range steps {
		if err := step(e); err != nil {
			return fmt.Errorf("UpdateAll: %w", err)
		}
	}
	return nil
}

// edgeFrames gathers, per half-edge, the centroid-to-source vector rs
// and the edge vector rd as 3-vectors (planar tissues get z = 0).
func edgeFrames(e *core.Epithelium) (rs, rd []r3.Vec, err error) {
	coords := e.Coords()
	ne := e.NumEdges()
	rs = make([]r3.Vec, ne)
	rd = make([]r3.Vec, ne)
	for k, c := range coords {
		sPos, uerr := e.UpcastFloats(core.LevelSrce, c)
		if uerr != nil {
			return nil, nil, uerr
		}
		fPos, uerr := e.UpcastFloats(core.LevelFace, c)
		if uerr != nil {
			return nil, nil, uerr
		}
		dcol, derr := e.Edge().Floats(core.DCoord(c))
		if derr != nil {
			return nil, nil, derr
		}
		for i := 0; i < ne; i++ {
			setVecComponent(&rs[i], k, sPos[i]-fPos[i])
			setVecComponent(&rd[i], k, dcol[i])
		}
	}
	return rs, rd, nil
}

// setVecComponent writes the k-th coordinate of a 3-vector.
func setVecComponent(v *r3.Vec, k int, val float64) {
	switch k {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
}
