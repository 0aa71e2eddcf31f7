// Package physics is a small rigid-body world for the playground: spheres, boxes and
// capsules under gravity with restitution and Coulomb friction. Bodies translate but never
// rotate; static boxes may be placed at an angle.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind identifies a collision shape.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapeCapsule
)

func (kind ShapeKind) String() string {
	switch kind {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	case ShapeCapsule:
		return "capsule"
	}
	return "unknown"
}

// Shape is a collision shape in its body's local space. Capsules run along local +Y.
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	HalfExtents mgl64.Vec3
	// HalfSegment is half the length of a capsule's inner segment (excluding the caps).
	HalfSegment float64
}

// Sphere returns a sphere shape.
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Box returns a box shape with the given full width, height and depth.
func Box(width, height, depth float64) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: mgl64.Vec3{width / 2, height / 2, depth / 2}}
}

// Capsule returns a capsule with the given radius and total height (caps included).
func Capsule(radius, height float64) Shape {
	return Shape{Kind: ShapeCapsule, Radius: radius, HalfSegment: math.Max(0, height/2-radius)}
}

// Cylinder approximates a cylinder with a capsule of the same height.
func Cylinder(diameter, height float64) Shape {
	return Capsule(diameter/2, height)
}

// BoundingRadius returns the radius of a sphere around the shape's centre that contains it.
func (shape Shape) BoundingRadius() float64 {
	switch shape.Kind {
	case ShapeBox:
		return shape.HalfExtents.Len()
	case ShapeCapsule:
		return shape.HalfSegment + shape.Radius
	}
	return shape.Radius
}
