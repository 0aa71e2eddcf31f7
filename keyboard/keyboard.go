// Package keyboard tracks which keys are held down. A State is owned by whoever runs the
// update loop and is passed explicitly to the per-frame code that reads it.
package keyboard

// Key codes, named after their DOM KeyboardEvent.code values so scene code reads the same
// regardless of which windowing layer feeds the State.
const (
	KeyW       = "KeyW"
	KeyA       = "KeyA"
	KeyS       = "KeyS"
	KeyD       = "KeyD"
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
)

// Source is anything that can report the live state of a key and whether the window
// currently has input focus.
type Source interface {
	Pressed(code string) bool
	Focused() bool
}

// State is a key code -> held map. It is not safe for concurrent use; it is only ever
// touched from the update loop.
type State struct {
	down  map[string]bool
	codes []string
}

// New returns a State that polls the given key codes. With no codes, the movement keys
// (WASD and arrows) are tracked.
func New(codes ...string) *State {
	if len(codes) == 0 {
		codes = []string{KeyW, KeyA, KeyS, KeyD, ArrowUp, ArrowDown, ArrowLeft, ArrowRight}
	}
	return &State{
		down:  map[string]bool{},
		codes: codes,
	}
}

// Set records whether the key is held.
func (state *State) Set(code string, down bool) {
	if !down {
		delete(state.down, code)
		return
	}
	state.down[code] = true
}

// Press marks the key as held.
func (state *State) Press(code string) { state.Set(code, true) }

// Release marks the key as released.
func (state *State) Release(code string) { state.Set(code, false) }

// Down returns true if any of the given keys is held.
func (state *State) Down(codes ...string) bool {
	for _, c := range codes {
		if state.down[c] {
			return true
		}
	}
	return false
}

// Held returns the number of keys currently held.
func (state *State) Held() int {
	return len(state.down)
}

// Reset releases every key. Called when the window loses focus, as key-up events are
// never delivered to an unfocused window.
func (state *State) Reset() {
	clear(state.down)
}

// Poll refreshes the tracked keys from src. An unfocused source resets the State.
func (state *State) Poll(src Source) {
	if !src.Focused() {
		state.Reset()
		return
	}
	for _, c := range state.codes {
		state.Set(c, src.Pressed(c))
	}
}
