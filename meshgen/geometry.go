// Package meshgen builds triangle meshes procedurally. Geometry is engine-neutral: the
// render package turns it into tetra3d meshes and the export package into glTF
// primitives.
//
// Faces wind counter-clockwise when seen from the side their normals point to. Texture
// coordinates have their origin at the top left of the image.
package meshgen

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is an indexed triangle list.
type Geometry struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	UVs       []mgl64.Vec2
	Indices   []int
}

// New returns empty geometry.
func New() *Geometry {
	return &Geometry{}
}

// VertexCount returns the number of vertices.
func (geo *Geometry) VertexCount() int {
	return len(geo.Positions)
}

// TriangleCount returns the number of triangles.
func (geo *Geometry) TriangleCount() int {
	return len(geo.Indices) / 3
}

// Empty returns true when the geometry has no triangles.
func (geo *Geometry) Empty() bool {
	return geo == nil || len(geo.Indices) == 0
}

// AddVertex appends a vertex and returns its index.
func (geo *Geometry) AddVertex(pos, normal mgl64.Vec3, uv mgl64.Vec2) int {
	geo.Positions = append(geo.Positions, pos)
	geo.Normals = append(geo.Normals, normal)
	geo.UVs = append(geo.UVs, uv)
	return len(geo.Positions) - 1
}

// AddTriangle appends a triangle by vertex index.
func (geo *Geometry) AddTriangle(a, b, c int) {
	geo.Indices = append(geo.Indices, a, b, c)
}

// AddFlatTriangle appends a triangle with its own three vertices, all sharing the face
// normal.
func (geo *Geometry) AddFlatTriangle(p0, p1, p2 mgl64.Vec3) {
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	if normal.Len() > 0 {
		normal = normal.Normalize()
	}
	a := geo.AddVertex(p0, normal, mgl64.Vec2{0, 1})
	b := geo.AddVertex(p1, normal, mgl64.Vec2{1, 1})
	c := geo.AddVertex(p2, normal, mgl64.Vec2{0.5, 0})
	geo.AddTriangle(a, b, c)
}

// Triangle returns the positions of the i-th triangle.
func (geo *Geometry) Triangle(i int) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	return geo.Positions[geo.Indices[i*3]], geo.Positions[geo.Indices[i*3+1]], geo.Positions[geo.Indices[i*3+2]]
}

// Clone returns a deep copy.
func (geo *Geometry) Clone() *Geometry {
	return &Geometry{
		Positions: append([]mgl64.Vec3(nil), geo.Positions...),
		Normals:   append([]mgl64.Vec3(nil), geo.Normals...),
		UVs:       append([]mgl64.Vec2(nil), geo.UVs...),
		Indices:   append([]int(nil), geo.Indices...),
	}
}

// Merge concatenates geometries into a new one.
func Merge(geos ...*Geometry) *Geometry {
	out := New()
	for _, geo := range geos {
		if geo == nil {
			continue
		}
		offset := len(out.Positions)
		out.Positions = append(out.Positions, geo.Positions...)
		out.Normals = append(out.Normals, geo.Normals...)
		out.UVs = append(out.UVs, geo.UVs...)
		for _, index := range geo.Indices {
			out.Indices = append(out.Indices, index+offset)
		}
	}
	return out
}

// Transform returns a copy of the geometry transformed by m. Normals are transformed by
// the inverse transpose; mirroring transforms also flip the winding.
func (geo *Geometry) Transform(m mgl64.Mat4) *Geometry {
	out := geo.Clone()
	normalMatrix := m.Mat3().Inv().Transpose()
	for i, p := range out.Positions {
		out.Positions[i] = mgl64.TransformCoordinate(p, m)
	}
	for i, n := range out.Normals {
		if t := normalMatrix.Mul3x1(n); t.Len() > 0 {
			out.Normals[i] = t.Normalize()
		}
	}
	if m.Mat3().Det() < 0 {
		out.flipWinding()
	}
	return out
}

// Translate is shorthand for Transform with a translation.
func (geo *Geometry) Translate(x, y, z float64) *Geometry {
	return geo.Transform(mgl64.Translate3D(x, y, z))
}

// Scale is shorthand for Transform with a scale.
func (geo *Geometry) Scale(x, y, z float64) *Geometry {
	return geo.Transform(mgl64.Scale3D(x, y, z))
}

// ScaleUV multiplies every texture coordinate.
func (geo *Geometry) ScaleUV(u, v float64) *Geometry {
	for i, uv := range geo.UVs {
		geo.UVs[i] = mgl64.Vec2{uv.X() * u, uv.Y() * v}
	}
	return geo
}

func (geo *Geometry) flipWinding() {
	for i := 0; i+2 < len(geo.Indices); i += 3 {
		geo.Indices[i+1], geo.Indices[i+2] = geo.Indices[i+2], geo.Indices[i+1]
	}
}

// FlipFaces returns a copy facing the other way.
func (geo *Geometry) FlipFaces() *Geometry {
	out := geo.Clone()
	out.flipWinding()
	for i, n := range out.Normals {
		out.Normals[i] = n.Mul(-1)
	}
	return out
}

// DoubleSided returns the geometry merged with its flipped copy, so it can be seen from
// both sides with back-face culling on.
func (geo *Geometry) DoubleSided() *Geometry {
	return Merge(geo, geo.FlipFaces())
}

// Bounds returns the axis-aligned bounding box of the geometry.
func (geo *Geometry) Bounds() (min, max mgl64.Vec3) {
	if len(geo.Positions) == 0 {
		return
	}
	min, max = geo.Positions[0], geo.Positions[0]
	for _, p := range geo.Positions[1:] {
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], p[i])
			max[i] = math.Max(max[i], p[i])
		}
	}
	return min, max
}

// ComputeNormals replaces the normals with smoothed, area-weighted face normals.
// Vertices are only smoothed with the triangles that index them.
func (geo *Geometry) ComputeNormals() *Geometry {
	normals := make([]mgl64.Vec3, len(geo.Positions))
	for i := 0; i < geo.TriangleCount(); i++ {
		a, b, c := geo.Indices[i*3], geo.Indices[i*3+1], geo.Indices[i*3+2]
		face := geo.Positions[b].Sub(geo.Positions[a]).Cross(geo.Positions[c].Sub(geo.Positions[a]))
		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		} else {
			normals[i] = mgl64.Vec3{0, 1, 0}
		}
	}
	geo.Normals = normals
	return geo
}

// ErrInvalidGeometry is returned by Validate.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Validate checks that every attribute has one entry per vertex and every index is in
// range.
func (geo *Geometry) Validate() error {
	n := len(geo.Positions)
	if len(geo.Normals) != n || len(geo.UVs) != n {
		return fmt.Errorf("%w: %d positions, %d normals, %d uvs", ErrInvalidGeometry, n, len(geo.Normals), len(geo.UVs))
	}
	if len(geo.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInvalidGeometry, len(geo.Indices))
	}
	for i, index := range geo.Indices {
		if index < 0 || index >= n {
			return fmt.Errorf("%w: index %d (%d) out of range", ErrInvalidGeometry, i, index)
		}
	}
	return nil
}

// uv converts a texture coordinate measured from the bottom left of the image.
func uv(u, v float64) mgl64.Vec2 {
	return mgl64.Vec2{u, 1 - v}
}
