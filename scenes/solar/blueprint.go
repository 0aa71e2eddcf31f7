// Package solar is a toy solar system: eight planets circling a glowing sun, Saturn with
// its ring, all against a field of stars.
package solar

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
const Name = "solar"

// Sun is the sun's object.
const Sun = "sunMesh"

const (
	planetSpin = 1 // rad/s
	starsNear  = 400
	starsFar   = 480
	starSize   = 1.2
	far        = 1000
)

// Planet is one planet's fixed description. Speed is before the configured multiplier.
type Planet struct {
	Name     string
	Size     float64
	Distance float64
	Texture  string
	Color    mgl64.Vec3
	Speed    float64
	Rings    bool
}

// Planets are the planets from the sun outwards.
var Planets = []Planet{
	{"Mercury", 0.8, 6, "roof", mgl64.Vec3{0.5, 0.5, 0.5}, 2.0, false},
	{"Venus", 1.2, 9, "valleygrass", mgl64.Vec3{0.9, 0.8, 0.6}, 1.5, false},
	{"Earth", 1.3, 13, "valleygrass", mgl64.Vec3{0.2, 0.4, 1.0}, 1.0, false},
	{"Mars", 1.0, 17, "wood", mgl64.Vec3{1.0, 0.3, 0.2}, 0.8, false},
	{"Jupiter", 3.5, 25, "wood", mgl64.Vec3{0.8, 0.6, 0.4}, 0.4, false},
	{"Saturn", 3.0, 35, "wood", mgl64.Vec3{0.9, 0.8, 0.5}, 0.3, true},
	{"Uranus", 2.0, 45, "valleygrass", mgl64.Vec3{0.4, 0.9, 0.9}, 0.2, false},
	{"Neptune", 2.0, 55, "valleygrass", mgl64.Vec3{0.2, 0.2, 0.8}, 0.15, false},
}

// RingName names a planet's ring object.
func RingName(planet string) string {
	return planet + "_ring"
}

// NewSystem returns the planets' orbits, each starting at a random angle drawn from rng.
func NewSystem(cfg *config.Config, rng *rand.Rand) *orbit.System {
	sys := orbit.NewSystem()
	for _, p := range Planets {
		sys.MustAdd(orbit.Body{
			Name:   p.Name,
			Radius: p.Distance,
			Speed:  p.Speed * cfg.Solar.SpeedMultiplier,
			Phase:  rng.Float64() * 2 * math.Pi,
			Spin:   planetSpin,
		})
	}
	return sys
}

// Blueprint describes the solar system with planets placed by rng.
func Blueprint(cfg *config.Config, rng *rand.Rand) (*blueprint.Scene, error) {
	return Describe(cfg, NewSystem(cfg, rng), rng)
}

// Describe builds the scene for sys, with rng scattering the background stars.
func Describe(cfg *config.Config, sys *orbit.System, rng *rand.Rand) (*blueprint.Scene, error) {
	scene := blueprint.New(Name)
	scene.ClearColor = blueprint.RGB(0, 0, 0.02)

	limits := arccam.NoLimits()
	limits.LowerRadius, limits.UpperRadius = 5, 100
	scene.Camera = blueprint.Camera{Alpha: -math.Pi / 2, Beta: math.Pi / 2.5, Radius: 40, Limits: limits, Far: far}

	scene.AddMaterial("sunMat", blueprint.Material{Color: blueprint.RGB(1, 0.8, 0), Shadeless: true})
	scene.AddMaterial("ringMat", blueprint.Material{Color: blueprint.RGB(0.8, 0.7, 0.5)})
	scene.AddMaterial("starlight", blueprint.Material{Color: blueprint.RGB(1, 1, 1), Shadeless: true})

	scene.AddMesh(Sun, blueprint.Part{Geometry: meshgen.Sphere(4, 4, 4, 32), Material: "sunMat"})
	scene.Add(blueprint.Object{Name: Sun, Mesh: Sun, Transform: blueprint.Identity()})
	scene.AddLight(blueprint.Light{
		Name:      "sunLight",
		Kind:      blueprint.Point,
		Color:     mgl64.Vec3{1, 1, 1},
		Intensity: 1.5,
		Range:     150,
	})

	for _, p := range Planets {
		mat := p.Name + "Mat"
		scene.AddMaterial(mat, blueprint.Material{Color: p.Color.Vec4(1), Texture: p.Texture})
		scene.AddMesh(p.Name, blueprint.Part{Geometry: meshgen.Sphere(p.Size, p.Size, p.Size, 32), Material: mat})

		pos := sys.Position(p.Name)
		scene.Add(blueprint.Object{Name: p.Name, Mesh: p.Name, Transform: blueprint.At(pos.X(), pos.Y(), pos.Z())})

		if p.Rings {
			ring := RingName(p.Name)
			scene.AddMesh(ring, blueprint.Part{Geometry: meshgen.Torus(p.Size*2, 0.5, 64), Material: "ringMat"})
			scene.Add(blueprint.Object{
				Name:      ring,
				Mesh:      ring,
				Parent:    p.Name,
				Transform: blueprint.Identity().Rotated(math.Pi/2, 0, 0).Scaled(1, 0.1, 1),
			})
		}
	}

	if cfg.Solar.Stars > 0 {
		scene.AddMesh("stars", blueprint.Part{Geometry: meshgen.Starfield(cfg.Solar.Stars, starsNear, starsFar, starSize, rng), Material: "starlight"})
		scene.Add(blueprint.Object{Name: "stars", Mesh: "stars", Transform: blueprint.Identity()})
	}

	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}
