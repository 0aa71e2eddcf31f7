package meshgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box faces, in the order FaceUV is indexed.
const (
	FaceRear   = iota // +Z
	FaceFront         // -Z
	FaceRight         // +X
	FaceLeft          // -X
	FaceTop           // +Y
	FaceBottom        // -Y
)

type boxFace struct {
	normal, right, up mgl64.Vec3
}

// right x up == normal for every face, and right is the viewer's right looking at it.
var boxFaces = [6]boxFace{
	FaceRear:   {mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
	FaceFront:  {mgl64.Vec3{0, 0, -1}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 1, 0}},
	FaceRight:  {mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0}},
	FaceLeft:   {mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}},
	FaceTop:    {mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
	FaceBottom: {mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}},
}

// FullFace maps a whole texture onto a face.
var FullFace = mgl64.Vec4{0, 0, 1, 1}

// BoxOptions configures Box. FaceUV holds (u0, v0, u1, v1) per face, measured from the
// bottom left of the texture; zero entries default to FullFace.
type BoxOptions struct {
	Width, Height, Depth float64
	FaceUV               [6]mgl64.Vec4
}

// Box builds a box centred on the origin.
func Box(opts BoxOptions) *Geometry {
	geo := New()
	half := mgl64.Vec3{opts.Width / 2, opts.Height / 2, opts.Depth / 2}
	axisHalf := func(axis mgl64.Vec3) float64 {
		return math.Abs(axis.X())*half.X() + math.Abs(axis.Y())*half.Y() + math.Abs(axis.Z())*half.Z()
	}

	for i, face := range boxFaces {
		rect := opts.FaceUV[i]
		if rect == (mgl64.Vec4{}) {
			rect = FullFace
		}
		center := face.normal.Mul(axisHalf(face.normal))
		right := face.right.Mul(axisHalf(face.right))
		up := face.up.Mul(axisHalf(face.up))

		a := geo.AddVertex(center.Sub(right).Sub(up), face.normal, uv(rect[0], rect[1]))
		b := geo.AddVertex(center.Add(right).Sub(up), face.normal, uv(rect[2], rect[1]))
		c := geo.AddVertex(center.Add(right).Add(up), face.normal, uv(rect[2], rect[3]))
		d := geo.AddVertex(center.Sub(right).Add(up), face.normal, uv(rect[0], rect[3]))
		geo.AddTriangle(a, b, c)
		geo.AddTriangle(a, c, d)
	}
	return geo
}

// Cube builds a box with equal sides.
func Cube(size float64) *Geometry {
	return Box(BoxOptions{Width: size, Height: size, Depth: size})
}

// Ground builds a flat, upward facing grid on the XZ plane. The texture repeats uvScale
// times across it.
func Ground(width, depth float64, subdivisions int, uvScale float64) *Geometry {
	return HeightmapGround(width, depth, subdivisions, 0, 0, uvScale, nil)
}

// HeightmapGround builds a grid whose heights come from sample, which takes texture
// coordinates (origin top left) and returns a value in [0, 1] mapped onto
// [minHeight, maxHeight]. A nil sample gives flat ground.
func HeightmapGround(width, depth float64, subdivisions int, minHeight, maxHeight, uvScale float64, sample func(u, v float64) float64) *Geometry {
	if subdivisions < 1 {
		subdivisions = 1
	}
	geo := New()
	row := subdivisions + 1

	for j := 0; j <= subdivisions; j++ {
		tz := float64(j) / float64(subdivisions)
		for i := 0; i <= subdivisions; i++ {
			tx := float64(i) / float64(subdivisions)
			y := minHeight
			if sample != nil {
				y = minHeight + (maxHeight-minHeight)*mgl64.Clamp(sample(tx, 1-tz), 0, 1)
			}
			pos := mgl64.Vec3{(tx - 0.5) * width, y, (tz - 0.5) * depth}
			geo.AddVertex(pos, mgl64.Vec3{0, 1, 0}, mgl64.Vec2{tx * uvScale, (1 - tz) * uvScale})
		}
	}

	for j := 0; j < subdivisions; j++ {
		for i := 0; i < subdivisions; i++ {
			a := j*row + i
			b := a + 1
			c := a + row + 1
			d := a + row
			geo.AddTriangle(a, d, c)
			geo.AddTriangle(a, c, b)
		}
	}

	if sample != nil {
		geo.ComputeNormals()
	}
	return geo
}

// ring returns the point at angle phi on a circle of radius r about +Y. Increasing phi
// runs counter-clockwise seen from above.
func ring(r, y, phi float64) mgl64.Vec3 {
	sin, cos := math.Sincos(phi)
	return mgl64.Vec3{r * cos, y, -r * sin}
}

// Sphere builds an ellipsoid with the given diameters along each axis.
func Sphere(diameterX, diameterY, diameterZ float64, segments int) *Geometry {
	if segments < 2 {
		segments = 2
	}
	rings, slices := segments, segments*2
	radii := mgl64.Vec3{diameterX / 2, diameterY / 2, diameterZ / 2}
	geo := New()

	for i := 0; i <= rings; i++ {
		theta := float64(i) / float64(rings) * math.Pi
		sinT, cosT := math.Sincos(theta)
		for j := 0; j <= slices; j++ {
			phi := float64(j) / float64(slices) * 2 * math.Pi
			dir := ring(sinT, cosT, phi)
			pos := mgl64.Vec3{dir.X() * radii.X(), dir.Y() * radii.Y(), dir.Z() * radii.Z()}
			normal := mgl64.Vec3{dir.X() / radii.X(), dir.Y() / radii.Y(), dir.Z() / radii.Z()}
			if normal.Len() > 0 {
				normal = normal.Normalize()
			}
			geo.AddVertex(pos, normal, mgl64.Vec2{float64(j) / float64(slices), float64(i) / float64(rings)})
		}
	}

	row := slices + 1
	for i := 0; i < rings; i++ {
		for j := 0; j < slices; j++ {
			a := i*row + j
			b := a + 1
			c := a + row + 1
			d := a + row
			if i != rings-1 {
				geo.AddTriangle(a, d, c)
			}
			if i != 0 {
				geo.AddTriangle(a, c, b)
			}
		}
	}
	return geo
}

// CylinderOptions configures Cylinder. Arc is the fraction of a full turn to sweep
// (0 means a full turn).
type CylinderOptions struct {
	Height         float64
	DiameterTop    float64
	DiameterBottom float64
	Tessellation   int
	Arc            float64
	NoCaps         bool
}

// Cylinder builds a cylinder, cone or prism about +Y, centred on the origin.
func Cylinder(opts CylinderOptions) *Geometry {
	tess := opts.Tessellation
	if tess < 3 {
		tess = 3
	}
	arc := opts.Arc
	if arc <= 0 || arc > 1 {
		arc = 1
	}
	h := opts.Height / 2
	rTop, rBottom := opts.DiameterTop/2, opts.DiameterBottom/2
	geo := New()

	sweep := arc * 2 * math.Pi
	for k := 0; k < 2; k++ {
		y, r := -h, rBottom
		if k == 1 {
			y, r = h, rTop
		}
		for j := 0; j <= tess; j++ {
			phi := float64(j) / float64(tess) * sweep
			sin, cos := math.Sincos(phi)
			normal := mgl64.Vec3{cos * opts.Height, rBottom - rTop, -sin * opts.Height}
			if normal.Len() > 0 {
				normal = normal.Normalize()
			}
			geo.AddVertex(ring(r, y, phi), normal, mgl64.Vec2{float64(j) / float64(tess), float64(1 - k)})
		}
	}

	row := tess + 1
	for j := 0; j < tess; j++ {
		a, b := j, j+1
		c, d := row+j+1, row+j
		if rBottom > 0 {
			geo.AddTriangle(a, b, c)
		}
		if rTop > 0 {
			geo.AddTriangle(a, c, d)
		}
	}

	if !opts.NoCaps {
		addCap := func(y, r float64, up bool) {
			if r <= 0 {
				return
			}
			normal := mgl64.Vec3{0, 1, 0}
			if !up {
				normal = mgl64.Vec3{0, -1, 0}
			}
			center := geo.AddVertex(mgl64.Vec3{0, y, 0}, normal, mgl64.Vec2{0.5, 0.5})
			first := len(geo.Positions)
			for j := 0; j <= tess; j++ {
				phi := float64(j) / float64(tess) * sweep
				sin, cos := math.Sincos(phi)
				geo.AddVertex(ring(r, y, phi), normal, mgl64.Vec2{0.5 + cos/2, 0.5 + sin/2})
			}
			for j := 0; j < tess; j++ {
				if up {
					geo.AddTriangle(center, first+j, first+j+1)
				} else {
					geo.AddTriangle(center, first+j+1, first+j)
				}
			}
		}
		addCap(h, rTop, true)
		addCap(-h, rBottom, false)
	}

	return geo
}

// Lathe sweeps a profile around +Y. Each profile point is (radius, height); the surface
// faces to the right of the direction the profile is walked in, so a profile walked
// upwards faces outwards.
func Lathe(profile []mgl64.Vec2, tessellation int) *Geometry {
	if tessellation < 3 {
		tessellation = 3
	}
	geo := New()
	if len(profile) < 2 {
		return geo
	}

	// Accumulated profile length for the v coordinate.
	lengths := make([]float64, len(profile))
	for k := 1; k < len(profile); k++ {
		lengths[k] = lengths[k-1] + profile[k].Sub(profile[k-1]).Len()
	}
	total := lengths[len(lengths)-1]
	if total == 0 {
		total = 1
	}

	for k, p := range profile {
		prev, next := profile[max(k-1, 0)], profile[min(k+1, len(profile)-1)]
		tangent := next.Sub(prev)
		n2 := mgl64.Vec2{tangent.Y(), -tangent.X()}
		if n2.Len() > 0 {
			n2 = n2.Normalize()
		}
		for j := 0; j <= tessellation; j++ {
			phi := float64(j) / float64(tessellation) * 2 * math.Pi
			sin, cos := math.Sincos(phi)
			normal := mgl64.Vec3{n2.X() * cos, n2.Y(), -n2.X() * sin}
			geo.AddVertex(ring(p.X(), p.Y(), phi), normal, mgl64.Vec2{float64(j) / float64(tessellation), 1 - lengths[k]/total})
		}
	}

	row := tessellation + 1
	for k := 0; k < len(profile)-1; k++ {
		for j := 0; j < tessellation; j++ {
			a := k*row + j
			b := a + 1
			c := a + row + 1
			d := a + row
			if profile[k].X() > 0 {
				geo.AddTriangle(a, b, c)
			}
			if profile[k+1].X() > 0 {
				geo.AddTriangle(a, c, d)
			}
		}
	}
	return geo
}

// Capsule builds a capsule about +Y with the given radius and total height.
func Capsule(radius, height float64, tessellation, capSubdivisions int) *Geometry {
	if capSubdivisions < 1 {
		capSubdivisions = 1
	}
	half := math.Max(height/2-radius, 0)
	profile := []mgl64.Vec2{}
	for i := 0; i <= capSubdivisions; i++ {
		a := -math.Pi/2 + float64(i)/float64(capSubdivisions)*math.Pi/2
		profile = append(profile, mgl64.Vec2{radius * math.Cos(a), -half + radius*math.Sin(a)})
	}
	for i := 0; i <= capSubdivisions; i++ {
		a := float64(i) / float64(capSubdivisions) * math.Pi / 2
		profile = append(profile, mgl64.Vec2{radius * math.Cos(a), half + radius*math.Sin(a)})
	}
	// Exact zeros at the poles so no slivers are emitted there.
	profile[0][0] = 0
	profile[len(profile)-1][0] = 0
	return Lathe(profile, tessellation)
}

// Torus builds a ring about +Y.
func Torus(diameter, thickness float64, tessellation int) *Geometry {
	if tessellation < 3 {
		tessellation = 3
	}
	major, minor := diameter/2, thickness/2
	profile := make([]mgl64.Vec2, 0, tessellation+1)
	for i := 0; i <= tessellation; i++ {
		a := float64(i) / float64(tessellation) * 2 * math.Pi
		profile = append(profile, mgl64.Vec2{major + minor*math.Cos(a), minor * math.Sin(a)})
	}
	return Lathe(profile, tessellation)
}

// Disc builds a flat, upward facing disc on the XZ plane.
func Disc(radius float64, tessellation int) *Geometry {
	if tessellation < 3 {
		tessellation = 3
	}
	geo := New()
	up := mgl64.Vec3{0, 1, 0}
	center := geo.AddVertex(mgl64.Vec3{}, up, mgl64.Vec2{0.5, 0.5})
	for j := 0; j <= tessellation; j++ {
		phi := float64(j) / float64(tessellation) * 2 * math.Pi
		sin, cos := math.Sincos(phi)
		geo.AddVertex(ring(radius, 0, phi), up, mgl64.Vec2{0.5 + cos/2, 0.5 + sin/2})
	}
	for j := 0; j < tessellation; j++ {
		geo.AddTriangle(center, center+1+j, center+2+j)
	}
	return geo
}

// Quad builds a width x height rectangle on the XY plane facing +Z, centred on the origin.
func Quad(width, height float64) *Geometry {
	geo := New()
	w, h := width/2, height/2
	normal := mgl64.Vec3{0, 0, 1}
	a := geo.AddVertex(mgl64.Vec3{-w, -h, 0}, normal, uv(0, 0))
	b := geo.AddVertex(mgl64.Vec3{w, -h, 0}, normal, uv(1, 0))
	c := geo.AddVertex(mgl64.Vec3{w, h, 0}, normal, uv(1, 1))
	d := geo.AddVertex(mgl64.Vec3{-w, h, 0}, normal, uv(0, 1))
	geo.AddTriangle(a, b, c)
	geo.AddTriangle(a, c, d)
	return geo
}

// Octahedron builds a flat-shaded octahedron with the given radius.
func Octahedron(radius float64) *Geometry {
	geo := New()
	for _, sx := range []float64{1, -1} {
		for _, sy := range []float64{1, -1} {
			for _, sz := range []float64{1, -1} {
				x := mgl64.Vec3{sx * radius, 0, 0}
				y := mgl64.Vec3{0, sy * radius, 0}
				z := mgl64.Vec3{0, 0, sz * radius}
				if sx*sy*sz > 0 {
					geo.AddFlatTriangle(x, y, z)
				} else {
					geo.AddFlatTriangle(x, z, y)
				}
			}
		}
	}
	return geo
}
