// Package locomotion turns held keys into character movement and picks the animation
// that goes with it.
package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/scenery3d/scenery/anim"
	"github.com/scenery3d/scenery/keyboard"
)

// Controller defaults.
const (
	DefaultSpeed     = 5
	DefaultFallSpeed = -2
	DefaultTurnRate  = 0.15
)

// Frame is a controller's output for one update.
type Frame struct {
	// Velocity is the linear velocity to hand to the character's body.
	Velocity mgl64.Vec3
	// Rotation is the character's new heading.
	Rotation mgl64.Quat
	// Moving is true while a movement key is held.
	Moving bool
	// Animation is the range name the character should be playing.
	Animation string
	// Changed is true when Animation differs from the previous frame's.
	Changed bool
}

// Controller moves a physics-driven character relative to the camera.
type Controller struct {
	Speed     float64
	FallSpeed float64
	TurnRate  float64

	IdleAnimation string
	WalkAnimation string

	rotation mgl64.Quat
	current  string
}

// NewController returns a Controller with the default speeds, starting idle and facing +Z.
func NewController() *Controller {
	return &Controller{
		Speed:         DefaultSpeed,
		FallSpeed:     DefaultFallSpeed,
		TurnRate:      DefaultTurnRate,
		IdleAnimation: anim.RangeIdle,
		WalkAnimation: anim.RangeWalk,
		rotation:      mgl64.QuatIdent(),
		current:       anim.RangeIdle,
	}
}

// Animation returns the animation the controller last selected.
func (c *Controller) Animation() string {
	return c.current
}

// Rotation returns the controller's current heading.
func (c *Controller) Rotation() mgl64.Quat {
	return c.rotation
}

func flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// Step reads keys and produces this update's movement. forward and right are the
// camera's world-space axes; they're flattened onto the ground plane.
func (c *Controller) Step(keys *keyboard.State, forward, right mgl64.Vec3) Frame {
	forward = flatten(forward)
	right = flatten(right)

	move := mgl64.Vec3{}
	keydown := false

	if keys.Down(keyboard.KeyW, keyboard.ArrowUp) {
		move = move.Add(forward)
		keydown = true
	}
	if keys.Down(keyboard.KeyS, keyboard.ArrowDown) {
		move = move.Sub(forward)
		keydown = true
	}
	if keys.Down(keyboard.KeyD, keyboard.ArrowRight) {
		move = move.Add(right)
		keydown = true
	}
	if keys.Down(keyboard.KeyA, keyboard.ArrowLeft) {
		move = move.Sub(right)
		keydown = true
	}

	frame := Frame{Moving: keydown}

	// Opposing keys can cancel out; the character then stands still but keeps walking.
	if keydown && move.Len() > 0 {
		move = move.Normalize().Mul(c.Speed)
		frame.Velocity = mgl64.Vec3{move.X(), c.FallSpeed, move.Z()}

		heading := math.Atan2(move.X(), move.Z())
		target := mgl64.QuatRotate(heading, mgl64.Vec3{0, 1, 0})
		c.rotation = mgl64.QuatSlerp(c.rotation, target, c.TurnRate)
	} else {
		frame.Velocity = mgl64.Vec3{0, c.FallSpeed, 0}
	}
	frame.Rotation = c.rotation

	want := c.IdleAnimation
	if keydown {
		want = c.WalkAnimation
	}
	frame.Animation = want
	if want != c.current {
		frame.Changed = true
		c.current = want
	}

	return frame
}
