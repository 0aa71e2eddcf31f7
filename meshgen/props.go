package meshgen

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Starfield scatters count small stars over a spherical shell between minRadius and
// maxRadius.
func Starfield(count int, minRadius, maxRadius, starSize float64, rng *rand.Rand) *Geometry {
	star := Octahedron(starSize)
	stars := make([]*Geometry, 0, count)
	for i := 0; i < count; i++ {
		// Uniform on the sphere: z uniform in [-1, 1], angle uniform.
		z := rng.Float64()*2 - 1
		a := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		dist := minRadius + (maxRadius-minRadius)*rng.Float64()
		pos := mgl64.Vec3{r * math.Cos(a), z, r * math.Sin(a)}.Mul(dist)
		scale := 0.5 + rng.Float64()
		stars = append(stars, star.Transform(mgl64.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl64.Scale3D(scale, scale, scale))))
	}
	return Merge(stars...)
}

// Rock builds a lumpy boulder about one unit across, resting on y = 0.
func Rock(rng *rand.Rand) *Geometry {
	// A smooth function of direction keeps the sphere's seam vertices together.
	var phase [3]float64
	for i := range phase {
		phase[i] = rng.Float64() * 2 * math.Pi
	}
	stretch := mgl64.Vec3{1 + rng.Float64()*0.4, 0.7 + rng.Float64()*0.2, 1 + rng.Float64()*0.3}

	geo := Sphere(1, 1, 1, 8)
	for i, p := range geo.Positions {
		dir := p.Normalize()
		bump := 1 + 0.18*math.Sin(3*dir.X()+phase[0])*math.Sin(4*dir.Y()+phase[1])*math.Sin(5*dir.Z()+phase[2])
		q := mgl64.Vec3{p.X() * stretch.X(), p.Y() * stretch.Y(), p.Z() * stretch.Z()}.Mul(bump)
		if q.Y() < 0 {
			q[1] *= 0.3
		}
		geo.Positions[i] = q
	}
	low, _ := geo.Bounds()
	return geo.Translate(0, -low.Y(), 0).ComputeNormals()
}

// Pine builds a pine tree standing on y = 0, about 2.6 units tall, as its trunk and its
// foliage.
func Pine() (trunk, foliage *Geometry) {
	trunk = Cylinder(CylinderOptions{Height: 0.8, DiameterTop: 0.18, DiameterBottom: 0.25, Tessellation: 8}).Translate(0, 0.4, 0)

	tiers := []*Geometry{}
	for i, tier := range []struct{ y, d, h float64 }{
		{0.6, 1.4, 1.0},
		{1.2, 1.05, 0.85},
		{1.75, 0.7, 0.8},
	} {
		cone := Cylinder(CylinderOptions{Height: tier.h, DiameterTop: 0, DiameterBottom: tier.d, Tessellation: 9})
		// Turn each tier a little so the facets don't line up.
		rot := mgl64.HomogRotate3DY(float64(i) * 0.35)
		tiers = append(tiers, cone.Transform(mgl64.Translate3D(0, tier.y+tier.h/2, 0).Mul4(rot)))
	}
	return trunk, Merge(tiers...)
}

// Flower builds a small flower standing on y = 0 as its stem, petals and heart.
func Flower() (stem, petals, heart *Geometry) {
	const height = 0.35
	stem = Cylinder(CylinderOptions{Height: height, DiameterTop: 0.02, DiameterBottom: 0.03, Tessellation: 5}).Translate(0, height/2, 0)

	around := []*Geometry{}
	const count = 5
	for i := 0; i < count; i++ {
		a := float64(i) / count * 2 * math.Pi
		petal := Sphere(0.09, 0.02, 0.05, 4).
			Transform(mgl64.HomogRotate3DY(a).Mul4(mgl64.Translate3D(0.06, 0, 0)))
		around = append(around, petal)
	}
	petals = Merge(around...).Translate(0, height, 0)
	heart = Sphere(0.05, 0.04, 0.05, 4).Translate(0, height+0.01, 0)
	return stem, petals, heart
}
