// Package playground is a physics sandbox: a ramp with a bowling ball, pins and a brick
// wall, rocks and trees, and a character that walks around relative to the camera.
package playground

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/arccam"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/config"
	"github.com/scenery3d/scenery/layout"
	"github.com/scenery3d/scenery/meshgen"
)

// Name is the scene's registry name.
const Name = "playground"

// Player is the character's root object.
const Player = "player"

const (
	groundSize   = 60
	rampAngle    = -math.Pi / 6
	pinCount     = 6
	brickColumns = 4
	brickRows    = 4
	rockScale    = 3
	pineScale    = 0.8
	flowerScale  = 1.5
	scatterHalf  = 25
	pineClear    = 12
	flowerClear  = 10
)

var (
	rampPosition = mgl64.Vec3{10, 3, 10}
	ballPosition = mgl64.Vec3{10, 7, 13}
	rockSpots    = []mgl64.Vec3{{15, 0, -5}, {12, 0, -8}, {16, 0, 2}}
)

func pinName(i int) string    { return fmt.Sprintf("pin_%d", i) }
func brickName(i int) string  { return fmt.Sprintf("brick_%d", i) }
func rockName(i int) string   { return fmt.Sprintf("rock_%d", i) }
func pineName(i int) string   { return fmt.Sprintf("pine_%d", i) }
func flowerName(i int) string { return fmt.Sprintf("flower_%d", i) }

func pinPosition(i int) mgl64.Vec3 {
	return mgl64.Vec3{8 + float64(i)*0.8, 0.5, 3}
}

func brickPosition(x, y int) mgl64.Vec3 {
	return mgl64.Vec3{-10 + float64(x)*1.6, 0.5 + float64(y)*1.1, 5}
}

// Layout is the random part of the playground: the rock's shape and where the pines and
// flowers grow.
type Layout struct {
	Rock    *meshgen.Geometry
	Pines   []mgl64.Vec3
	Flowers []mgl64.Vec3
}

// NewLayout draws a layout from rng, with as many pine and flower attempts as cfg asks
// for.
func NewLayout(cfg *config.Config, rng *rand.Rand) *Layout {
	return &Layout{
		Rock:    meshgen.Rock(rng),
		Pines:   layout.Scatter(rng, cfg.Playground.Pines, scatterHalf, pineClear),
		Flowers: layout.Scatter(rng, cfg.Playground.Flowers, scatterHalf, flowerClear),
	}
}

// Blueprint describes the playground laid out from rng.
func Blueprint(cfg *config.Config, rng *rand.Rand) (*blueprint.Scene, error) {
	return NewLayout(cfg, rng).Blueprint()
}

// Blueprint describes the playground.
func (l *Layout) Blueprint() (*blueprint.Scene, error) {
	scene := blueprint.New(Name)
	scene.ClearColor = blueprint.RGB(0.53, 0.75, 0.95)

	limits := arccam.NoLimits()
	limits.LowerBeta, limits.UpperBeta = 0.5, 1.3
	limits.LowerRadius, limits.UpperRadius = 5, 20
	scene.Camera = blueprint.Camera{Alpha: -math.Pi / 2, Beta: math.Pi / 2.5, Radius: 12, Limits: limits}

	white := blueprint.RGB(1, 1, 1)
	scene.AddMaterial("grass", blueprint.Material{Color: white, Texture: "valleygrass"})
	scene.AddMaterial("wood", blueprint.Material{Color: white, Texture: "wood"})
	scene.AddMaterial("stone", blueprint.Material{Color: white, Texture: "cubehouse"})
	scene.AddMaterial("red", blueprint.Material{Color: blueprint.RGB(1, 0, 0)})
	scene.AddMaterial("rock", blueprint.Material{Color: blueprint.RGB(0.45, 0.43, 0.4)})
	scene.AddMaterial("bark", blueprint.Material{Color: blueprint.RGB(0.4, 0.26, 0.13)})
	scene.AddMaterial("needles", blueprint.Material{Color: blueprint.RGB(0.12, 0.38, 0.16)})
	scene.AddMaterial("stem", blueprint.Material{Color: blueprint.RGB(0.2, 0.55, 0.2)})
	scene.AddMaterial("petals", blueprint.Material{Color: blueprint.RGB(0.95, 0.5, 0.75)})
	scene.AddMaterial("heart", blueprint.Material{Color: blueprint.RGB(1, 0.85, 0.2)})
	scene.AddMaterial("body", blueprint.Material{Color: blueprint.RGB(0.75, 0.55, 0.4)})

	trunk, foliage := meshgen.Pine()
	stem, petals, heart := meshgen.Flower()
	scene.AddMesh("ground", blueprint.Part{Geometry: meshgen.Ground(groundSize, groundSize, 1, 15), Material: "grass"})
	scene.AddMesh("ramp", blueprint.Part{Geometry: meshgen.Box(meshgen.BoxOptions{Width: 6, Height: 0.2, Depth: 12}), Material: "wood"})
	scene.AddMesh("pin", blueprint.Part{
		Geometry: meshgen.Cylinder(meshgen.CylinderOptions{Height: 2, DiameterTop: 0.5, DiameterBottom: 0.5, Tessellation: 16}),
		Material: "red",
	})
	scene.AddMesh("ball", blueprint.Part{Geometry: meshgen.Sphere(1.5, 1.5, 1.5, 16), Material: "red"})
	scene.AddMesh("brick", blueprint.Part{Geometry: meshgen.Box(meshgen.BoxOptions{Width: 1.5, Height: 1, Depth: 1}), Material: "stone"})
	scene.AddMesh("rock", blueprint.Part{Geometry: l.Rock, Material: "rock"})
	scene.AddMesh("pine",
		blueprint.Part{Geometry: trunk, Material: "bark"},
		blueprint.Part{Geometry: foliage, Material: "needles"},
	)
	scene.AddMesh("flower",
		blueprint.Part{Geometry: stem, Material: "stem"},
		blueprint.Part{Geometry: petals, Material: "petals"},
		blueprint.Part{Geometry: heart, Material: "heart"},
	)

	casters := map[string]float64{}
	scene.Add(blueprint.Object{Name: "ground", Mesh: "ground", Transform: blueprint.Identity(), ReceiveShadow: true})

	ramp := blueprint.Identity()
	ramp.Position = rampPosition
	scene.Add(blueprint.Object{Name: "ramp", Mesh: "ramp", Transform: ramp.Rotated(rampAngle, 0, 0), CastShadow: true, ReceiveShadow: true})
	casters["ramp"] = 3

	for i := 0; i < pinCount; i++ {
		p := pinPosition(i)
		scene.Add(blueprint.Object{Name: pinName(i), Mesh: "pin", Transform: blueprint.At(p.X(), p.Y(), p.Z()), CastShadow: true})
		casters[pinName(i)] = 0.3
	}

	scene.Add(blueprint.Object{Name: "ball", Mesh: "ball", Transform: blueprint.At(ballPosition.X(), ballPosition.Y(), ballPosition.Z()), CastShadow: true})
	casters["ball"] = 0.75

	for y := 0; y < brickRows; y++ {
		for x := 0; x < brickColumns; x++ {
			name := brickName(y*brickColumns + x)
			p := brickPosition(x, y)
			scene.Add(blueprint.Object{Name: name, Mesh: "brick", Transform: blueprint.At(p.X(), p.Y(), p.Z()), CastShadow: true, ReceiveShadow: true})
			casters[name] = 0.8
		}
	}

	for i, p := range rockSpots {
		t := blueprint.At(p.X(), p.Y(), p.Z()).Scaled(rockScale, rockScale, rockScale)
		scene.Add(blueprint.Object{Name: rockName(i), Mesh: "rock", Transform: t, CastShadow: true})
		casters[rockName(i)] = 1.8
	}
	for i, p := range l.Pines {
		t := blueprint.At(p.X(), p.Y(), p.Z()).Scaled(pineScale, pineScale, pineScale)
		scene.Add(blueprint.Object{Name: pineName(i), Mesh: "pine", Transform: t, CastShadow: true})
		casters[pineName(i)] = 0.55
	}
	for i, p := range l.Flowers {
		t := blueprint.At(p.X(), p.Y(), p.Z()).Scaled(flowerScale, flowerScale, flowerScale)
		scene.Add(blueprint.Object{Name: flowerName(i), Mesh: "flower", Transform: t})
	}

	scene.AddHumanoid(Player, "body", blueprint.Identity())
	casters[Player] = 0.4

	scene.AddLight(blueprint.Light{
		Name:        "light",
		Kind:        blueprint.Hemispheric,
		Direction:   mgl64.Vec3{0, 1, 0},
		Color:       mgl64.Vec3{1, 1, 1},
		GroundColor: mgl64.Vec3{0, 0, 0},
		Intensity:   0.6,
	})
	scene.AddLight(blueprint.Light{
		Name:      "dirLight",
		Kind:      blueprint.Directional,
		Position:  mgl64.Vec3{20, 40, 20},
		Direction: mgl64.Vec3{-1, -2, -1},
		Color:     mgl64.Vec3{1, 1, 1},
		Intensity: 1,
	})
	scene.AddShadow(blueprint.Shadow{Light: "dirLight", Darkness: 0.4, Casters: casters})

	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}
