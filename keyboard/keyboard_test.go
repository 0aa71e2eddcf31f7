package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	focused bool
	pressed map[string]bool
}

func (f *fakeSource) Pressed(code string) bool { return f.pressed[code] }
func (f *fakeSource) Focused() bool            { return f.focused }

func TestPressRelease(t *testing.T) {
	keys := New()
	assert.False(t, keys.Down(KeyW, ArrowUp))

	keys.Press(ArrowUp)
	assert.True(t, keys.Down(KeyW, ArrowUp))
	assert.False(t, keys.Down(KeyS))
	assert.Equal(t, 1, keys.Held())

	keys.Release(ArrowUp)
	assert.False(t, keys.Down(KeyW, ArrowUp))
	assert.Equal(t, 0, keys.Held())
}

func TestPollTracksSource(t *testing.T) {
	src := &fakeSource{focused: true, pressed: map[string]bool{KeyD: true, "Space": true}}
	keys := New()

	keys.Poll(src)
	assert.True(t, keys.Down(KeyD))
	// Space isn't one of the tracked codes.
	assert.False(t, keys.Down("Space"))

	src.pressed[KeyD] = false
	keys.Poll(src)
	assert.False(t, keys.Down(KeyD))
}

func TestPollUnfocusedResets(t *testing.T) {
	keys := New()
	keys.Press(KeyW)
	keys.Press(KeyA)

	keys.Poll(&fakeSource{focused: false, pressed: map[string]bool{KeyW: true}})
	assert.Equal(t, 0, keys.Held())
}

func TestCustomCodes(t *testing.T) {
	src := &fakeSource{focused: true, pressed: map[string]bool{ArrowUp: true, KeyW: true}}
	keys := New(ArrowUp)
	keys.Poll(src)
	assert.True(t, keys.Down(ArrowUp))
	assert.False(t, keys.Down(KeyW))
}

func TestEveryTrackedCodeIsNamed(t *testing.T) {
	named := []string{KeyW, KeyA, KeyS, KeyD, ArrowUp, ArrowDown, ArrowLeft, ArrowRight}
	assert.ElementsMatch(t, named, New().codes)
}
