package scenery

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/scenery3d/scenery/arccam"
	"github.com/scenery3d/scenery/keyboard"
)

var ebitenKeys = map[string]ebiten.Key{
	keyboard.KeyW:       ebiten.KeyW,
	keyboard.KeyA:       ebiten.KeyA,
	keyboard.KeyS:       ebiten.KeyS,
	keyboard.KeyD:       ebiten.KeyD,
	keyboard.ArrowUp:    ebiten.KeyArrowUp,
	keyboard.ArrowDown:  ebiten.KeyArrowDown,
	keyboard.ArrowLeft:  ebiten.KeyArrowLeft,
	keyboard.ArrowRight: ebiten.KeyArrowRight,
}

// EbitenKeys feeds a keyboard.State from Ebitengine.
type EbitenKeys struct{}

// Pressed reports whether the key with the given code is held.
func (EbitenKeys) Pressed(code string) bool {
	key, ok := ebitenKeys[code]
	return ok && ebiten.IsKeyPressed(key)
}

// Focused reports whether the window has focus.
func (EbitenKeys) Focused() bool {
	return ebiten.IsFocused()
}

// Mouse sensitivity, in radians per pixel dragged and radius fraction per wheel notch.
const (
	orbitSensitivity = 0.005
	zoomSensitivity  = 0.1
)

// MouseOrbit steers an arc camera with the mouse: drag with the left button to orbit,
// scroll to zoom.
type MouseOrbit struct {
	dragging    bool
	lastX       int
	lastY       int
	Sensitivity float64
}

// Update applies this frame's mouse input to cam.
func (m *MouseOrbit) Update(cam *arccam.Camera) {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if m.dragging {
			sens := m.Sensitivity
			if sens == 0 {
				sens = orbitSensitivity
			}
			cam.Rotate(-float64(x-m.lastX)*sens, -float64(y-m.lastY)*sens)
		}
		m.dragging = true
	} else {
		m.dragging = false
	}
	m.lastX, m.lastY = x, y

	if _, wheel := ebiten.Wheel(); wheel != 0 {
		cam.Zoom(-wheel * cam.Radius * zoomSensitivity)
	}
}
