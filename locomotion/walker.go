package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/scenery3d/scenery/keyboard"
)

// WalkerStep is how far a Walker moves per update.
const WalkerStep = 0.1

// Walker is the simple grid walker: WASD moves along the world axes by a fixed step and
// snaps the heading.
type Walker struct {
	Step float64

	Position mgl64.Vec3
	Heading  float64
}

// NewWalker returns a Walker at the origin facing +Z.
func NewWalker() *Walker {
	return &Walker{Step: WalkerStep}
}

// Update moves the walker. W and S (or the up and down arrows) move along Z, A and D (or
// left and right) along X. When several keys are held, the heading of the last one in
// W, A, S, D order wins. It returns whether the walker moved.
func (w *Walker) Update(keys *keyboard.State) bool {
	moved := false
	if keys.Down(keyboard.KeyW, keyboard.ArrowUp) {
		w.Position[2] += w.Step
		w.Heading = 0
		moved = true
	}
	if keys.Down(keyboard.KeyA, keyboard.ArrowLeft) {
		w.Position[0] -= w.Step
		w.Heading = 3 * math.Pi / 2
		moved = true
	}
	if keys.Down(keyboard.KeyS, keyboard.ArrowDown) {
		w.Position[2] -= w.Step
		w.Heading = math.Pi
		moved = true
	}
	if keys.Down(keyboard.KeyD, keyboard.ArrowRight) {
		w.Position[0] += w.Step
		w.Heading = math.Pi / 2
		moved = true
	}
	return moved
}

// Rotation returns the walker's heading as a rotation about +Y.
func (w *Walker) Rotation() mgl64.Quat {
	return mgl64.QuatRotate(w.Heading, mgl64.Vec3{0, 1, 0})
}
