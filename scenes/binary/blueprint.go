// Package binary shows a binary star with two planets circling the pair, and a far red
// dwarf with a planet of its own.
package binary

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/arccam"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/config"
	"github.com/scenery3d/scenery/meshgen"
	"github.com/scenery3d/scenery/orbit"
)

// Name is the scene's registry name.
const Name = "binary"

// Body names.
const (
	StarA      = "StarA"
	StarB      = "StarB"
	StarC      = "StarC"
	LavaWorld  = "LavaWorld"
	AlienEarth = "AlienEarth"
	ProximaB   = "Proxima_b"
)

// Spins given per frame at 60 Hz.
const (
	lavaSpin  = 0.01 * 60
	alienSpin = -0.005 * 60
)

// Starfield shell.
const (
	starsNear = 400
	starsFar  = 480
	starSize  = 1.2
	far       = 1000
)

type sphere struct {
	name     string
	diameter float64
	segments int
	material string
}

var spheres = []sphere{
	{StarA, 3, 32, "matA"},
	{StarB, 2, 32, "matB"},
	{StarC, 0.8, 16, "matC"},
	{LavaWorld, 1, 32, LavaWorld + "Mat"},
	{AlienEarth, 1.5, 32, AlienEarth + "Mat"},
	{ProximaB, 0.6, 32, ProximaB + "Mat"},
}

// NewSystem returns the orbits, with every body at its starting angle.
func NewSystem(timeScale float64) *orbit.System {
	sys := orbit.NewSystem()
	sys.TimeScale = timeScale
	return sys.MustAdd(
		orbit.Body{Name: StarA, Radius: 2, Speed: 1},
		orbit.Body{Name: StarB, Radius: 3, Speed: 1, Phase: math.Pi},
		orbit.Body{Name: LavaWorld, Radius: 7, Speed: 1.5, Spin: lavaSpin},
		orbit.Body{Name: AlienEarth, Radius: 14, Speed: 0.8, Spin: alienSpin},
		orbit.Body{Name: StarC, Radius: 35, Speed: 0.1, Height: 2},
		orbit.Body{Name: ProximaB, Parent: StarC, Radius: 3, Speed: 3},
	)
}

// Blueprint describes the binary system with rng scattering the background stars.
func Blueprint(cfg *config.Config, rng *rand.Rand) (*blueprint.Scene, error) {
	scene := blueprint.New(Name)
	scene.ClearColor = blueprint.RGB(0, 0, 0.02)

	limits := arccam.NoLimits()
	limits.LowerRadius, limits.UpperRadius = 5, 100
	scene.Camera = blueprint.Camera{Alpha: -math.Pi / 2, Beta: math.Pi / 2.5, Radius: 45, Limits: limits, Far: far}

	scene.AddMaterial("matA", blueprint.Material{Color: blueprint.RGB(1, 0.9, 0.6), Shadeless: true})
	scene.AddMaterial("matB", blueprint.Material{Color: blueprint.RGB(1, 0.4, 0.1), Shadeless: true})
	scene.AddMaterial("matC", blueprint.Material{Color: blueprint.RGB(0.8, 0.1, 0.1), Shadeless: true})
	scene.AddMaterial(LavaWorld+"Mat", blueprint.Material{Color: blueprint.RGB(1, 0.2, 0), Texture: "wood"})
	scene.AddMaterial(AlienEarth+"Mat", blueprint.Material{Color: blueprint.RGB(0.2, 0.8, 1), Texture: "valleygrass"})
	scene.AddMaterial(ProximaB+"Mat", blueprint.Material{Color: blueprint.RGB(0.6, 0.4, 0.3), Texture: "wood"})
	scene.AddMaterial("starlight", blueprint.Material{Color: blueprint.RGB(1, 1, 1), Shadeless: true})

	sys := NewSystem(cfg.Binary.TimeScale)
	for _, s := range spheres {
		scene.AddMesh(s.name, blueprint.Part{Geometry: meshgen.Sphere(s.diameter, s.diameter, s.diameter, s.segments), Material: s.material})
		p := sys.Position(s.name)
		scene.Add(blueprint.Object{Name: s.name, Mesh: s.name, Transform: blueprint.At(p.X(), p.Y(), p.Z())})
	}

	if cfg.Binary.Stars > 0 {
		scene.AddMesh("stars", blueprint.Part{Geometry: meshgen.Starfield(cfg.Binary.Stars, starsNear, starsFar, starSize, rng), Material: "starlight"})
		scene.Add(blueprint.Object{Name: "stars", Mesh: "stars", Transform: blueprint.Identity()})
	}

	for _, light := range []struct {
		name, star string
		color      mgl64.Vec3
		intensity  float64
		reach      float64
	}{
		{"lightA", StarA, mgl64.Vec3{1, 0.9, 0.8}, 1.2, 60},
		{"lightB", StarB, mgl64.Vec3{1, 0.5, 0.2}, 0.8, 60},
		{"lightC", StarC, mgl64.Vec3{1, 0.2, 0.2}, 0.5, 20},
	} {
		scene.AddLight(blueprint.Light{
			Name:      light.name,
			Kind:      blueprint.Point,
			Parent:    light.star,
			Color:     light.color,
			Intensity: light.intensity,
			Range:     light.reach,
		})
	}

	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}
