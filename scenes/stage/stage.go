// Package stage holds what every scene does the same way: instantiate its blueprint,
// orbit the camera with the mouse and draw.
package stage

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/orbit"
	"github.com/scenery3d/scenery/render"
)

// Stage is embedded by scenes to get View, Draw and camera handling.
type Stage struct {
	Instance *render.Instance
	Orbit    scenery.MouseOrbit
}

// Build instantiates bp for ctx's window and logs what was built.
func (st *Stage) Build(ctx *scenery.Context, bp *blueprint.Scene) error {
	inst, err := render.Build(bp, ctx.Textures, ctx.Width, ctx.Height)
	if err != nil {
		return err
	}
	st.Instance = inst
	st.Orbit = scenery.MouseOrbit{}

	stats := bp.Stats()
	ctx.Logger.Debug("scene built",
		"scene", bp.Name,
		"objects", stats.Objects,
		"meshes", stats.Meshes,
		"lights", stats.Lights,
		"triangles", stats.Triangles,
	)
	return nil
}

// Tick applies mouse input to the camera and advances the instance.
func (st *Stage) Tick(dt float64) {
	st.Orbit.Update(st.Instance.Arc)
	st.Instance.Update(dt)
}

// FollowOrbits moves every object named after a body of sys to the body's position and
// turns it by the body's spin.
func (st *Stage) FollowOrbits(sys *orbit.System) {
	for _, name := range sys.Names() {
		st.Instance.SetPosition(name, sys.Position(name))
		if spin := sys.SpinAngle(name); spin != 0 {
			st.Instance.SetRotation(name, mgl64.QuatRotate(spin, mgl64.Vec3{0, 1, 0}))
		}
	}
}

// View returns the engine instance.
func (st *Stage) View() *render.Instance {
	return st.Instance
}

// Draw renders the instance.
func (st *Stage) Draw(screen *ebiten.Image) {
	if st.Instance != nil {
		st.Instance.Draw(screen)
	}
}
