// Package shadow projects shadow casters onto a flat ground plane as soft blobs.
package shadow

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Blob is a projected shadow.
type Blob struct {
	Caster string
	Center mgl64.Vec3
	Radius float64
	// Alpha is the blob's opacity, 1 - Darkness.
	Alpha float64
}

// Generator casts shadows from a single light. A directional light uses Direction; a
// point light (Point set) casts away from Position.
type Generator struct {
	Direction mgl64.Vec3
	Point     bool
	Position  mgl64.Vec3

	// Darkness is 0 for black shadows and 1 for no shadow at all.
	Darkness float64
	GroundY  float64

	casters map[string]float64
}

// NewDirectional returns a Generator for a directional light.
func NewDirectional(direction mgl64.Vec3) *Generator {
	return &Generator{Direction: direction, casters: map[string]float64{}}
}

// NewPoint returns a Generator for a point light at position.
func NewPoint(position mgl64.Vec3) *Generator {
	return &Generator{Point: true, Position: position, casters: map[string]float64{}}
}

// SetDarkness sets the shadow darkness, clamped to [0, 1].
func (gen *Generator) SetDarkness(darkness float64) {
	gen.Darkness = mgl64.Clamp(darkness, 0, 1)
}

// AddShadowCaster registers a caster with the radius of the blob it throws.
func (gen *Generator) AddShadowCaster(name string, radius float64) {
	if gen.casters == nil {
		gen.casters = map[string]float64{}
	}
	gen.casters[name] = radius
}

// RemoveShadowCaster unregisters a caster.
func (gen *Generator) RemoveShadowCaster(name string) {
	delete(gen.casters, name)
}

// Casters returns the registered caster names in sorted order.
func (gen *Generator) Casters() []string {
	names := make([]string, 0, len(gen.casters))
	for name := range gen.casters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Project finds where the ray from the light through pos meets the ground. ok is false
// when the light doesn't shine down past pos.
func (gen *Generator) Project(pos mgl64.Vec3) (mgl64.Vec3, bool) {
	dir := gen.Direction
	if gen.Point {
		dir = pos.Sub(gen.Position)
	}
	if dir.Y() >= 0 || pos.Y() < gen.GroundY {
		return mgl64.Vec3{}, false
	}
	t := (gen.GroundY - pos.Y()) / dir.Y()
	hit := pos.Add(dir.Mul(t))
	hit[1] = gen.GroundY
	return hit, true
}

// Blobs projects every caster. lookup returns a caster's world position; casters it
// doesn't know are skipped.
func (gen *Generator) Blobs(lookup func(name string) (mgl64.Vec3, bool)) []Blob {
	blobs := make([]Blob, 0, len(gen.casters))
	for _, name := range gen.Casters() {
		pos, ok := lookup(name)
		if !ok {
			continue
		}
		center, ok := gen.Project(pos)
		if !ok {
			continue
		}
		radius := gen.casters[name]
		// Shadows soften and spread the further they fall.
		height := pos.Y() - gen.GroundY
		blobs = append(blobs, Blob{
			Caster: name,
			Center: center,
			Radius: radius * (1 + 0.05*height),
			Alpha:  (1 - gen.Darkness) / math.Max(1, 0.25*height),
		})
	}
	return blobs
}
