// Package showcase lays out the primitive meshes on a grass field under a mix of light
// types, with a spinning box and a circling point light.
package showcase

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
const Name = "showcase"

// Object and light names the motion is applied to.
const (
	Box        = "box"
	PointLight = "point"
)

const shadowDarkness = 0.2

// Blueprint describes the showcase. It uses no randomness.
func Blueprint(_ *config.Config, _ *rand.Rand) (*blueprint.Scene, error) {
	scene := blueprint.New(Name)
	scene.ClearColor = blueprint.RGB(0.2, 0.2, 0.3)
	scene.Camera = blueprint.Camera{
		Alpha:  -math.Pi / 2,
		Beta:   math.Pi / 2.5,
		Radius: 10,
		Limits: arccam.NoLimits(),
	}

	scene.AddMaterial("grass", blueprint.Material{Color: blueprint.RGB(1, 1, 1), Texture: "grass"})
	scene.AddMaterial("shiny", blueprint.Material{Color: blueprint.RGB(1, 0, 0)})
	scene.AddMaterial("default", blueprint.Material{Color: blueprint.RGB(0.8, 0.8, 0.8)})
	// Open shapes show their inside.
	scene.AddMaterial("open", blueprint.Material{Color: blueprint.RGB(0.8, 0.8, 0.8), DoubleSided: true})

	scene.AddMesh("ground", blueprint.Part{Geometry: meshgen.Ground(50, 50, 1, 10), Material: "grass"})
	scene.AddMesh("box", blueprint.Part{Geometry: meshgen.Cube(1), Material: "shiny"})
	scene.AddMesh("sphere", blueprint.Part{Geometry: meshgen.Sphere(0.7, 2, 0.7, 16), Material: "default"})
	scene.AddMesh("cylinder", blueprint.Part{
		Geometry: meshgen.Cylinder(meshgen.CylinderOptions{Height: 2, DiameterTop: 1, DiameterBottom: 1, Tessellation: 16, Arc: 0.5}),
		Material: "open",
	})
	scene.AddMesh("cone", blueprint.Part{
		Geometry: meshgen.Cylinder(meshgen.CylinderOptions{Height: 2, DiameterTop: 0, DiameterBottom: 1, Tessellation: 16}),
		Material: "default",
	})
	scene.AddMesh("triangle", blueprint.Part{
		Geometry: meshgen.Cylinder(meshgen.CylinderOptions{Height: 2, DiameterTop: 1, DiameterBottom: 1, Tessellation: 3}),
		Material: "default",
	})
	scene.AddMesh("capsule", blueprint.Part{Geometry: meshgen.Capsule(0.5, 2, 16, 4), Material: "default"})

	scene.Add(blueprint.Object{Name: "ground", Mesh: "ground", Transform: blueprint.Identity(), ReceiveShadow: true})
	box := scene.Add(blueprint.Object{Name: Box, Mesh: "box", Transform: blueprint.At(3, 1, 0), CastShadow: true})
	box.Rotation = NewMotion().BoxRotation()
	scene.Add(blueprint.Object{Name: "sphere", Mesh: "sphere", Transform: blueprint.At(0, 1, 0), CastShadow: true})
	scene.Add(blueprint.Object{Name: "cylinder", Mesh: "cylinder", Transform: blueprint.At(5, 1, 0)})
	scene.Add(blueprint.Object{Name: "cone", Mesh: "cone", Transform: blueprint.At(7, 1, 0)})
	scene.Add(blueprint.Object{Name: "triangle", Mesh: "triangle", Transform: blueprint.At(9, 1, 0)})
	scene.Add(blueprint.Object{Name: "capsule", Mesh: "capsule", Transform: blueprint.At(-3, 1, 0)})

	scene.AddLight(blueprint.Light{
		Name:        "hemi",
		Kind:        blueprint.Hemispheric,
		Direction:   mgl64.Vec3{1, 10, 0},
		Color:       mgl64.Vec3{0.6, 0.8, 1},
		GroundColor: mgl64.Vec3{0.2, 0.2, 0.2},
		Intensity:   0.5,
	})
	scene.AddLight(blueprint.Light{
		Name:      PointLight,
		Kind:      blueprint.Point,
		Position:  NewMotion().LightPosition(),
		Color:     mgl64.Vec3{0.5, 1, 1},
		Intensity: 0.3,
		Range:     40,
	})
	scene.AddLight(blueprint.Light{
		Name:      "spot",
		Kind:      blueprint.Spot,
		Position:  mgl64.Vec3{0, 5, -3},
		Direction: mgl64.Vec3{0, 0, 1},
		Color:     mgl64.Vec3{1, 1, 1},
		Intensity: 0.5,
		Angle:     math.Pi / 3,
		Range:     20,
	})
	scene.AddLight(blueprint.Light{
		Name:      "sun",
		Kind:      blueprint.Directional,
		Position:  mgl64.Vec3{20, 40, 20},
		Direction: mgl64.Vec3{-0.2, -0.5, -0.2},
		Color:     mgl64.Vec3{1, 1, 1},
		Intensity: 0.7,
	})
	scene.AddLight(blueprint.Light{
		Name:        "sky",
		Kind:        blueprint.Hemispheric,
		Direction:   mgl64.Vec3{0, 1, 0},
		Color:       mgl64.Vec3{1, 1, 1},
		GroundColor: mgl64.Vec3{1, 1, 1},
		Intensity:   0.7,
	})

	casters := map[string]float64{"sphere": 0.5, Box: 0.7}
	scene.AddShadow(blueprint.Shadow{Light: "sun", Darkness: shadowDarkness, Casters: casters})
	scene.AddShadow(blueprint.Shadow{Light: PointLight, Darkness: shadowDarkness, Casters: casters})
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}
