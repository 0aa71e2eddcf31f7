// Package walker is the simplest character scene: a figure on a grey field that steps
// along the world axes with WASD.
package walker

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/arccam"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/config"
	"github.com/scenery3d/scenery/meshgen"
)

// Name is the scene's registry name.
const Name = "walker"

// Player is the character's root object.
const Player = "player"

// Blueprint describes the walker scene. It uses no randomness.
func Blueprint(_ *config.Config, _ *rand.Rand) (*blueprint.Scene, error) {
	scene := blueprint.New(Name)
	scene.ClearColor = blueprint.RGB(0.5, 0.8, 1)

	limits := arccam.NoLimits()
	limits.LowerRadius, limits.UpperRadius = 5, 25
	scene.Camera = blueprint.Camera{Alpha: -math.Pi / 2, Beta: math.Pi / 2.5, Radius: 15, Limits: limits}

	scene.AddMaterial("ground", blueprint.Material{Color: blueprint.RGB(0.5, 0.5, 0.5)})
	scene.AddMaterial("body", blueprint.Material{Color: blueprint.RGB(0.75, 0.55, 0.4)})
	scene.AddMesh("ground", blueprint.Part{Geometry: meshgen.Ground(50, 50, 1, 1), Material: "ground"})

	scene.Add(blueprint.Object{Name: "ground", Mesh: "ground", Transform: blueprint.Identity(), ReceiveShadow: true})
	scene.AddHumanoid(Player, "body", blueprint.Identity())

	scene.AddLight(blueprint.Light{
		Name:        "light",
		Kind:        blueprint.Hemispheric,
		Direction:   mgl64.Vec3{0, 1, 0},
		Color:       mgl64.Vec3{1, 1, 1},
		GroundColor: mgl64.Vec3{0, 0, 0},
		Intensity:   0.7,
	})

	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}
