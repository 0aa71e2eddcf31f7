package showcase

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Per-frame rates at the 60 Hz tick.
const (
	boxStart   = 0.3
	boxSpeed   = 0.0025
	lightSpeed = 0.01
)

// Motion spins the box about Z and circles the point light around the origin.
type Motion struct {
	BoxAngle   float64 // turns, in [0, 1)
	LightAngle float64 // radians
}

// NewMotion returns the motion at its first frame.
func NewMotion() *Motion {
	return &Motion{BoxAngle: boxStart}
}

// BoxRotation is the box's current orientation.
func (m *Motion) BoxRotation() mgl64.Quat {
	return mgl64.QuatRotate(m.BoxAngle*2*math.Pi, mgl64.Vec3{0, 0, 1})
}

// LightPosition is the point light's current position.
func (m *Motion) LightPosition() mgl64.Vec3 {
	a := m.LightAngle
	return mgl64.Vec3{math.Sin(a) * 10, 5 + math.Sin(3*a), math.Cos(a) * 10}
}

// Step returns this frame's box rotation and light position, then advances both angles.
func (m *Motion) Step() (mgl64.Quat, mgl64.Vec3) {
	rot, pos := m.BoxRotation(), m.LightPosition()
	m.BoxAngle = math.Mod(m.BoxAngle+boxSpeed, 1)
	m.LightAngle += lightSpeed
	return rot, pos
}
