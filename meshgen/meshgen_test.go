package meshgen

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenery3d/scenery/anim"
)

// checkWinding asserts every non-degenerate triangle winds towards its vertex normals.
func checkWinding(t *testing.T, name string, geo *Geometry) {
	t.Helper()
	require.NoError(t, geo.Validate(), name)
	for i := 0; i < geo.TriangleCount(); i++ {
		a, b, c := geo.Triangle(i)
		face := b.Sub(a).Cross(c.Sub(a))
		if face.Len() < 1e-12 {
			continue
		}
		n := geo.Normals[geo.Indices[i*3]].Add(geo.Normals[geo.Indices[i*3+1]]).Add(geo.Normals[geo.Indices[i*3+2]])
		if !assert.Greater(t, face.Dot(n), 0.0, "%s: triangle %d winds against its normals", name, i) {
			return
		}
	}
}

// checkOutward asserts every non-degenerate triangle of a shape that's convex about the
// origin faces away from it.
func checkOutward(t *testing.T, name string, geo *Geometry) {
	t.Helper()
	for i := 0; i < geo.TriangleCount(); i++ {
		a, b, c := geo.Triangle(i)
		face := b.Sub(a).Cross(c.Sub(a))
		if face.Len() < 1e-12 {
			continue
		}
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if !assert.Greater(t, face.Dot(centroid), 0.0, "%s: triangle %d faces inwards", name, i) {
			return
		}
	}
}

func TestClosedShapesFaceOutwards(t *testing.T) {
	shapes := map[string]*Geometry{
		"box":        Box(BoxOptions{Width: 2, Height: 1, Depth: 3}),
		"sphere":     Sphere(0.7, 2, 0.7, 16),
		"cylinder":   Cylinder(CylinderOptions{Height: 2, DiameterTop: 1, DiameterBottom: 1, Tessellation: 24}),
		"cone":       Cylinder(CylinderOptions{Height: 2, DiameterTop: 0, DiameterBottom: 1, Tessellation: 24}),
		"prism":      Cylinder(CylinderOptions{Height: 2, DiameterTop: 1, DiameterBottom: 1, Tessellation: 3}),
		"capsule":    Capsule(0.5, 2, 16, 4),
		"octahedron": Octahedron(1),
	}
	for name, geo := range shapes {
		checkWinding(t, name, geo)
		checkOutward(t, name, geo)
	}
}

func TestOpenShapesWindWithNormals(t *testing.T) {
	profile := []mgl64.Vec2{{0, 0}, {0.5, 0}, {0.5, 0.2}, {0.4, 0.2}, {0.4, 0.05}, {0.05, 0.1}, {0.05, 0.5}, {0.15, 0.6}}
	shapes := map[string]*Geometry{
		"ground":    Ground(50, 50, 4, 10),
		"half arc":  Cylinder(CylinderOptions{Height: 2, DiameterTop: 1, DiameterBottom: 1, Tessellation: 24, Arc: 0.5}),
		"torus":     Torus(6, 0.5, 32),
		"lathe":     Lathe(profile, 24),
		"disc":      Disc(1, 12),
		"quad":      Quad(1, 2),
		"heightmap": HeightmapGround(10, 10, 8, 0, 2, 1, func(u, v float64) float64 { return u * v }),
	}
	for name, geo := range shapes {
		checkWinding(t, name, geo)
	}
}

func TestBoxBoundsAndFaceUV(t *testing.T) {
	opts := BoxOptions{Width: 2, Height: 4, Depth: 6}
	opts.FaceUV[FaceRear] = mgl64.Vec4{0.5, 0, 0.75, 1}
	box := Box(opts)

	low, high := box.Bounds()
	assert.Equal(t, mgl64.Vec3{-1, -2, -3}, low)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, high)
	assert.Equal(t, 24, box.VertexCount())
	assert.Equal(t, 12, box.TriangleCount())

	// The rear face is first; its u coordinates come from its face rectangle.
	for _, uv := range box.UVs[:4] {
		assert.GreaterOrEqual(t, uv.X(), 0.5)
		assert.LessOrEqual(t, uv.X(), 0.75)
	}
	// Other faces default to the whole texture.
	assert.Equal(t, mgl64.Vec2{0, 1}, box.UVs[4])
}

func TestSphereDiameters(t *testing.T) {
	sphere := Sphere(0.7, 2, 0.7, 12)
	low, high := sphere.Bounds()
	assert.InDelta(t, 1, high.Y(), 1e-9)
	assert.InDelta(t, -1, low.Y(), 1e-9)
	assert.InDelta(t, 0.35, high.X(), 1e-9)
	assert.Equal(t, 12*24*2-2*24, sphere.TriangleCount())
}

func TestHeightmapGround(t *testing.T) {
	geo := HeightmapGround(150, 150, 20, 0, 10, 60, func(u, v float64) float64 { return 0.5 })
	assert.Equal(t, 21*21, geo.VertexCount())
	for _, p := range geo.Positions {
		assert.InDelta(t, 5, p.Y(), 1e-9)
	}
	low, high := geo.Bounds()
	assert.InDelta(t, -75, low.X(), 1e-9)
	assert.InDelta(t, 75, high.Z(), 1e-9)
	// Texture repeats 60 times across.
	assert.InDelta(t, 60, geo.UVs[20].X(), 1e-9)
}

func TestTransformMirrorKeepsWinding(t *testing.T) {
	box := Box(BoxOptions{Width: 1, Height: 1, Depth: 1})
	mirrored := box.Scale(-1, 1, 1)
	checkWinding(t, "mirrored", mirrored)
	checkOutward(t, "mirrored", mirrored)

	moved := box.Translate(0, 0.5, 0)
	low, _ := moved.Bounds()
	assert.InDelta(t, 0, low.Y(), 1e-9)
}

func TestRoofTransform(t *testing.T) {
	roof := Cylinder(CylinderOptions{Height: 1.2, DiameterTop: 1.3, DiameterBottom: 1.3, Tessellation: 3}).
		Transform(mgl64.Translate3D(0, 1.22, 0).
			Mul4(mgl64.HomogRotate3DZ(math.Pi / 2)).
			Mul4(mgl64.Scale3D(0.75, 2*0.85, 1)))
	checkWinding(t, "roof", roof)

	// Lying on its side, the prism's length runs along X.
	low, high := roof.Bounds()
	assert.InDelta(t, 2*0.85*1.2, high.X()-low.X(), 1e-9)
}

func TestMergeAndDoubleSided(t *testing.T) {
	a := Quad(1, 1)
	b := Quad(1, 1).Translate(2, 0, 0)
	merged := Merge(a, nil, b)
	require.NoError(t, merged.Validate())
	assert.Equal(t, 8, merged.VertexCount())
	assert.Equal(t, 4, merged.Indices[6])

	both := a.DoubleSided()
	assert.Equal(t, 4, both.TriangleCount())
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, both.Normals[4])
	checkWinding(t, "double sided", both)
}

func TestValidate(t *testing.T) {
	geo := Quad(1, 1)
	geo.Indices = append(geo.Indices, 0, 1, 9)
	assert.ErrorIs(t, geo.Validate(), ErrInvalidGeometry)

	geo = Quad(1, 1)
	geo.Normals = geo.Normals[:2]
	assert.ErrorIs(t, geo.Validate(), ErrInvalidGeometry)
}

func TestProps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	stars := Starfield(100, 80, 90, 0.2, rng)
	require.NoError(t, stars.Validate())
	assert.Equal(t, 800, stars.TriangleCount())
	for _, p := range stars.Positions {
		assert.Less(t, p.Len(), 91.0)
		assert.Greater(t, p.Len(), 79.0)
	}

	rock := Rock(rng)
	require.NoError(t, rock.Validate())
	low, high := rock.Bounds()
	assert.InDelta(t, 0, low.Y(), 1e-9)
	assert.Greater(t, high.Y(), 0.2)

	trunk, foliage := Pine()
	checkWinding(t, "trunk", trunk)
	checkWinding(t, "foliage", foliage)
	_, trunkTop := trunk.Bounds()
	_, treeTop := foliage.Bounds()
	assert.Greater(t, treeTop.Y(), trunkTop.Y())

	stem, petals, heart := Flower()
	for _, geo := range []*Geometry{stem, petals, heart} {
		require.NoError(t, geo.Validate())
	}
}

func TestHumanoidCoversRig(t *testing.T) {
	parts := Humanoid()
	for _, bone := range anim.HumanoidRig {
		geo, ok := parts[bone.Name]
		require.True(t, ok, bone.Name)
		require.NoError(t, geo.Validate())
	}
	// Legs hang from the hip joint down to the feet.
	low, high := parts[anim.BoneLeftLeg].Bounds()
	assert.InDelta(t, 0, high.Y(), 1e-9)
	assert.InDelta(t, -0.9, low.Y(), 1e-9)
}

func BenchmarkVillageTerrain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HeightmapGround(150, 150, 20, 0, 10, 60, func(u, v float64) float64 { return u })
	}
}
