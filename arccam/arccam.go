// Package arccam implements an arc-rotate camera: a camera that orbits a target at a given
// longitude (alpha), latitude (beta) and distance (radius).
package arccam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Beta is always kept strictly inside (0, pi) so the camera never sits on the pole.
const betaEpsilon = 0.01

// ZoomDuration is how long, in seconds, a zoom step takes to settle.
const ZoomDuration = 0.25

// Limits bound the camera's orbit. Unset limits are infinite.
type Limits struct {
	LowerAlpha, UpperAlpha   float64
	LowerBeta, UpperBeta     float64
	LowerRadius, UpperRadius float64
}

// NoLimits returns Limits that don't restrict anything beyond the pole guard.
func NoLimits() Limits {
	return Limits{
		LowerAlpha:  math.Inf(-1),
		UpperAlpha:  math.Inf(1),
		LowerBeta:   math.Inf(-1),
		UpperBeta:   math.Inf(1),
		LowerRadius: math.Inf(-1),
		UpperRadius: math.Inf(1),
	}
}

// Camera is an arc-rotate camera.
type Camera struct {
	Alpha, Beta, Radius float64
	Target              mgl64.Vec3
	Limits              Limits

	// LockedTarget, if set, is polled on Update and the camera's target follows it.
	LockedTarget func() mgl64.Vec3

	zoom *gween.Tween
}

// New returns a Camera with no limits.
func New(alpha, beta, radius float64, target mgl64.Vec3) *Camera {
	cam := &Camera{
		Alpha:  alpha,
		Beta:   beta,
		Radius: radius,
		Target: target,
		Limits: NoLimits(),
	}
	cam.clamp()
	return cam
}

// SetLimits replaces the camera's limits and clamps the current orbit to them.
func (cam *Camera) SetLimits(limits Limits) {
	cam.Limits = limits
	cam.clamp()
}

// Position returns the camera's world position.
func (cam *Camera) Position() mgl64.Vec3 {
	sinB, cosB := math.Sincos(cam.Beta)
	sinA, cosA := math.Sincos(cam.Alpha)
	offset := mgl64.Vec3{cosA * sinB, cosB, sinA * sinB}.Mul(cam.Radius)
	return cam.Target.Add(offset)
}

// Forward returns the unit direction the camera looks along (towards the target).
func (cam *Camera) Forward() mgl64.Vec3 {
	dir := cam.Target.Sub(cam.Position())
	if dir.Len() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return dir.Normalize()
}

// Right returns the camera's unit screen-right vector in world space. Scenes are laid
// out left-handed (+Y up, +Z into the screen at alpha = -pi/2), so right is up x forward.
func (cam *Camera) Right() mgl64.Vec3 {
	right := mgl64.Vec3{0, 1, 0}.Cross(cam.Forward())
	if right.Len() == 0 {
		return mgl64.Vec3{1, 0, 0}
	}
	return right.Normalize()
}

// Rotate moves the camera along its orbit.
func (cam *Camera) Rotate(dAlpha, dBeta float64) {
	cam.Alpha += dAlpha
	cam.Beta += dBeta
	cam.clamp()
}

// Zoom eases the radius by delta over ZoomDuration. Zooming again while a zoom is in
// flight continues from the current radius towards the new goal.
func (cam *Camera) Zoom(delta float64) {
	goal := cam.Radius + delta
	if cam.zoom != nil {
		goal = cam.zoomGoal() + delta
	}
	goal = mgl64.Clamp(goal, cam.Limits.LowerRadius, cam.Limits.UpperRadius)
	cam.zoom = gween.New(float32(cam.Radius), float32(goal), ZoomDuration, ease.OutCubic)
}

func (cam *Camera) zoomGoal() float64 {
	// gween doesn't expose its end value; step a copy to the end to read it.
	probe := *cam.zoom
	end, _ := probe.Update(ZoomDuration * 2)
	return float64(end)
}

// Zooming returns true while a zoom is easing.
func (cam *Camera) Zooming() bool {
	return cam.zoom != nil
}

// Update advances zoom easing and follows the locked target.
func (cam *Camera) Update(dt float64) {
	if cam.zoom != nil {
		radius, done := cam.zoom.Update(float32(dt))
		cam.Radius = float64(radius)
		if done {
			cam.zoom = nil
		}
	}
	if cam.LockedTarget != nil {
		cam.Target = cam.LockedTarget()
	}
	cam.clamp()
}

func (cam *Camera) clamp() {
	l := cam.Limits
	cam.Alpha = mgl64.Clamp(cam.Alpha, l.LowerAlpha, l.UpperAlpha)
	cam.Beta = mgl64.Clamp(cam.Beta, l.LowerBeta, l.UpperBeta)
	cam.Beta = mgl64.Clamp(cam.Beta, betaEpsilon, math.Pi-betaEpsilon)
	cam.Radius = mgl64.Clamp(cam.Radius, l.LowerRadius, l.UpperRadius)
	if cam.Radius < 0 {
		cam.Radius = 0
	}
}
