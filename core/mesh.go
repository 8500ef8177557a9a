// SPDX-License-Identifier: MIT
// Package core: mesh buffer assembly for rendering collaborators.
// The epithelium only emits flat vertex/index buffers; drawing them
// is someone else's job.
package core

import "fmt"

// TriMesh is a triangulation of the tissue: one triangle per half-edge,
// fanning each face around its centroid.
//
// Verts holds Stride coordinates per point, face centroids first, then
// the junction vertices, so point f is face f's centroid and point
// Nf+v is vertex v. FaceMask flags the centroid points.
type TriMesh struct {
	Verts    []float64
	Stride   int
	Tris     [][3]int
	FaceMask []bool
}

// TriangleMesh assembles the centroid-fan triangulation over the given
// coordinate columns (nil means Coords()). Triangle i is
// (srce+Nf, trgt+Nf, face) for half-edge i, which preserves the
// half-edge winding. Face centroid columns must be up to date (see
// the geometry package).
//
// Complexity: O((Nf + Nv + Ne) × dim).
func (e *Epithelium) TriangleMesh(coords []string) (*TriMesh, error) {
	if len(coords) == 0 {
		coords = e.coords
	}
	nf, nv := e.NumFaces(), e.NumVerts()
	stride := len(coords)

	verts := make([]float64, (nf+nv)*stride)
	for k, c := range coords {
		fcol, err := e.Face().Floats(c)
		if err != nil {
			return nil, fmt.Errorf("TriangleMesh: face table: %w", err)
		}
		vcol, err := e.Vert().Floats(c)
		if err != nil {
			return nil, fmt.Errorf("TriangleMesh: vert table: %w", err)
		}
		for f := 0; f < nf; f++ {
			verts[f*stride+k] = fcol[f]
		}
		for v := 0; v < nv; v++ {
			verts[(nf+v)*stride+k] = vcol[v]
		}
	}

	srce, err := e.fk(LevelSrce)
	if err != nil {
		return nil, fmt.Errorf("TriangleMesh: %w", err)
	}
	trgt, err := e.fk(LevelTrgt)
	if err != nil {
		return nil, fmt.Errorf("TriangleMesh: %w", err)
	}
	faceFK, err := e.fk(LevelFace)
	if err != nil {
		return nil, fmt.Errorf("TriangleMesh: %w", err)
	}
	tris := make([][3]int, len(srce))
	for i := range srce {
		tris[i] = [3]int{srce[i] + nf, trgt[i] + nf, faceFK[i]}
	}

	mask := make([]bool, nf+nv)
	for i := 0; i < nf; i++ {
		mask[i] = true
	}

	return &TriMesh{Verts: verts, Stride: stride, Tris: tris, FaceMask: mask}, nil
}

// PolyMesh is the per-face polygon view of the tissue: the vertex
// position buffer plus one ordered vertex loop per walkable face.
//
// Faces[i] is the loop of face FaceIndex[i]; faces whose half-edges do
// not chain are listed in Skipped instead. Normals, when requested,
// holds one averaged normal per vertex, laid out like Verts.
type PolyMesh struct {
	Verts     []float64
	Stride    int
	Faces     [][]int
	FaceIndex []int
	Normals   []float64
	Skipped   []int
}

// PolygonMesh assembles the polygon view over the given coordinate
// columns (nil means Coords()). Each face's loop is walked by chaining
// srce → trgt from its first half-edge row; a face that cannot chain
// is skipped and logged. With withNormals, per-vertex normals are
// averaged from the edge normal columns (see geometry.UpdateNormals):
// the mean over the vertex's outgoing edges and the mean over its
// incoming edges, halved.
//
// Complexity: O(Nv × dim + Σ num_sides²).
func (e *Epithelium) PolygonMesh(coords []string, withNormals bool) (*PolyMesh, error) {
	if len(coords) == 0 {
		coords = e.coords
	}
	nv := e.NumVerts()
	stride := len(coords)

	verts := make([]float64, nv*stride)
	for k, c := range coords {
		col, err := e.Vert().Floats(c)
		if err != nil {
			return nil, fmt.Errorf("PolygonMesh: vert table: %w", err)
		}
		for v := 0; v < nv; v++ {
			verts[v*stride+k] = col[v]
		}
	}

	srce, err := e.fk(LevelSrce)
	if err != nil {
		return nil, fmt.Errorf("PolygonMesh: %w", err)
	}
	trgt, err := e.fk(LevelTrgt)
	if err != nil {
		return nil, fmt.Errorf("PolygonMesh: %w", err)
	}
	faceFK, err := e.fk(LevelFace)
	if err != nil {
		return nil, fmt.Errorf("PolygonMesh: %w", err)
	}

	rowsByFace := make([][]int, e.NumFaces())
	for i, f := range faceFK {
		if f < 0 || f >= len(rowsByFace) {
			return nil, fmt.Errorf("PolygonMesh: edge %d, face=%d: %w", i, f, ErrIndexRange)
		}
		rowsByFace[f] = append(rowsByFace[f], i)
	}

	mesh := &PolyMesh{Verts: verts, Stride: stride}
	for f, rows := range rowsByFace {
		if len(rows) == 0 {
			continue
		}
		loop := e.walkFace(rows, srce, trgt)
		if loop == nil {
			e.logger.Warn("face is not closed", "epithelium", e.identifier, "face", f)
			mesh.Skipped = append(mesh.Skipped, f)
			continue
		}
		mesh.Faces = append(mesh.Faces, loop)
		mesh.FaceIndex = append(mesh.FaceIndex, f)
	}

	if withNormals {
		normals, nerr := e.vertexNormals(coords)
		if nerr != nil {
			return nil, fmt.Errorf("PolygonMesh: %w", nerr)
		}
		mesh.Normals = normals
	}
	return mesh, nil
}

// walkFace chains a face's half-edges srce → trgt, starting from its
// first row, and returns the ordered source vertices, or nil when the
// chain breaks.
func (e *Epithelium) walkFace(rows []int, srce, trgt IntColumn) []int {
	loop := make([]int, 0, len(rows))
	loop = append(loop, srce[rows[0]])
	cur := trgt[rows[0]]
	for step := 1; step < len(rows); step++ {
		next := -1
		for _, r := range rows {
			if srce[r] == cur {
				next = r
				break
			}
		}
		if next == -1 {
			return nil
		}
		loop = append(loop, cur)
		cur = trgt[next]
	}
	return loop
}

// vertexNormals averages the edge normal columns onto the vertices.
func (e *Epithelium) vertexNormals(coords []string) ([]float64, error) {
	srce, err := e.fk(LevelSrce)
	if err != nil {
		return nil, err
	}
	trgt, err := e.fk(LevelTrgt)
	if err != nil {
		return nil, err
	}
	nv := e.NumVerts()
	stride := len(coords)
	normals := make([]float64, nv*stride)

	for i := range srce {
		if srce[i] < 0 || srce[i] >= nv || trgt[i] < 0 || trgt[i] >= nv {
			return nil, fmt.Errorf("edge %d: %w", i, ErrIndexRange)
		}
	}

	sSum := make([]float64, nv)
	tSum := make([]float64, nv)
	sCnt := make([]int, nv)
	tCnt := make([]int, nv)
	for k, c := range coords {
		ncol, nerr := e.Edge().Floats(NCoord(c))
		if nerr != nil {
			return nil, fmt.Errorf("edge table: %w", nerr)
		}
		for v := 0; v < nv; v++ {
			sSum[v], tSum[v] = 0, 0
			sCnt[v], tCnt[v] = 0, 0
		}
		for i := range ncol {
			sSum[srce[i]] += ncol[i]
			sCnt[srce[i]]++
			tSum[trgt[i]] += ncol[i]
			tCnt[trgt[i]]++
		}
		for v := 0; v < nv; v++ {
			var sMean, tMean float64
			if sCnt[v] > 0 {
				sMean = sSum[v] / float64(sCnt[v])
			}
			if tCnt[v] > 0 {
				tMean = tSum[v] / float64(tCnt[v])
			}
			normals[v*stride+k] = (sMean + tMean) / 2
		}
	}
	return normals, nil
}

// EdgeSegments assembles the line-segment position buffer renderers
// draw wireframes from: for half-edge i, points 2i and 2i+1 are its
// source and target positions over the given coordinate columns
// (nil means Coords()), Stride = len(coords) values each.
//
// Complexity: O(Ne × dim).
func (e *Epithelium) EdgeSegments(coords []string) ([]float64, error) {
	if len(coords) == 0 {
		coords = e.coords
	}
	stride := len(coords)
	out := make([]float64, 2*e.NumEdges()*stride)
	for k, c := range coords {
		sPos, err := e.UpcastFloats(LevelSrce, c)
		if err != nil {
			return nil, fmt.Errorf("EdgeSegments: %w", err)
		}
		tPos, err := e.UpcastFloats(LevelTrgt, c)
		if err != nil {
			return nil, fmt.Errorf("EdgeSegments: %w", err)
		}
		for i := range sPos {
			out[(2*i)*stride+k] = sPos[i]
			out[(2*i+1)*stride+k] = tPos[i]
		}
	}
	return out, nil
}
