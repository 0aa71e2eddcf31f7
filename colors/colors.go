// Package colors converts scene colours into tetra3d colours.
package colors

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/tetra3d"
	palette "github.com/solarlune/tetra3d/colors"
)

// FromVec4 converts an RGBA colour.
func FromVec4(c mgl64.Vec4) tetra3d.Color {
	return tetra3d.NewColor(float32(c.X()), float32(c.Y()), float32(c.Z()), float32(c.W()))
}

// FromVec3 converts an RGB colour with the given alpha.
func FromVec3(c mgl64.Vec3, alpha float64) tetra3d.Color {
	return FromVec4(c.Vec4(alpha))
}

// Shadow is the tint of blob shadows; alpha carries the shadow's strength.
func Shadow(alpha float64) tetra3d.Color {
	c := palette.Black()
	c.A = float32(alpha)
	return c
}
