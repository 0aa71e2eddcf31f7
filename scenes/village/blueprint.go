// Package village is a small village in a wooded valley: houses instanced along the
// roads, sprite trees all around and a fountain on the green.
package village

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
	"github.com/scenery3d/scenery/particle"
	"github.com/scenery3d/scenery/texture"
)

// Name is the scene's registry name.
const Name = "village"

// Fountain is the fountain's object.
const Fountain = "fountain"

const (
	fountainScale = 1.5
	terrainSize   = 150
	greenSize     = 24
)

var fountainPosition = mgl64.Vec3{3.5, 0, 4}

// fountainProfile is the basin and spout, as (radius, height).
var fountainProfile = []mgl64.Vec2{
	{0, 0},
	{0.5, 0},
	{0.5, 0.2},
	{0.4, 0.2},
	{0.4, 0.05},
	{0.05, 0.1},
	{0.05, 0.5},
	{0.15, 0.6},
}

func houseMesh(style int) string   { return fmt.Sprintf("house.style%d", style) }
func templateName(style int) string { return fmt.Sprintf("house_style%d", style) }
func houseName(i int) string        { return fmt.Sprintf("house%d", i) }
func treeName(i int) string         { return fmt.Sprintf("tree%d", i) }

// houseRadius is the blob shadow under a house of the given style.
func houseRadius(style int) float64 {
	return 0.45 + 0.35*float64(style)
}

// Blueprint describes the village, with textures from cfg's assets directory and trees
// scattered by rng.
func Blueprint(cfg *config.Config, rng *rand.Rand) (*blueprint.Scene, error) {
	return Describe(cfg, rng, texture.NewLibrary(cfg.AssetsDir, nil))
}

// Describe builds the village. The terrain's heights come from the "heightmap" texture
// in textures.
func Describe(cfg *config.Config, rng *rand.Rand, textures *texture.Library) (*blueprint.Scene, error) {
	heightmap, err := textures.Load("heightmap")
	if err != nil {
		return nil, fmt.Errorf("village terrain: %w", err)
	}

	scene := blueprint.New(Name)
	scene.ClearColor = blueprint.RGB(0.8, 0.9, 1)
	scene.Fog = &blueprint.Fog{Color: mgl64.Vec3{0.8, 0.9, 1}, Density: 0.01}

	limits := arccam.NoLimits()
	limits.LowerRadius, limits.UpperRadius = 9, 25
	limits.LowerAlpha, limits.UpperAlpha = 0, 2*math.Pi
	limits.LowerBeta, limits.UpperBeta = 0, math.Pi/2.02
	scene.Camera = blueprint.Camera{
		Alpha:  -math.Pi / 2,
		Beta:   math.Pi / 2.5,
		Radius: 25,
		Target: mgl64.Vec3{0, 4, 3.5},
		Limits: limits,
	}

	white := blueprint.RGB(1, 1, 1)
	scene.AddMaterial("groundMaterial", blueprint.Material{Color: white, Texture: "villagegreen", AlphaClip: true, DoubleSided: true})
	scene.AddMaterial("largeGroundMat", blueprint.Material{Color: white, Texture: "valleygrass"})
	scene.AddMaterial("roofMat", blueprint.Material{Color: white, Texture: "roof"})
	scene.AddMaterial("stone", blueprint.Material{Color: blueprint.RGB(0.4, 0.4, 0.4), DoubleSided: true})
	scene.AddMaterial("tree", blueprint.Material{Color: white, Texture: "tree", AlphaClip: true, Shadeless: true, Billboard: true})

	scene.AddMesh("ground", blueprint.Part{Geometry: meshgen.Ground(greenSize, greenSize, 1, 1), Material: "groundMaterial"})
	scene.AddMesh("largeGround", blueprint.Part{
		Geometry: meshgen.HeightmapGround(terrainSize, terrainSize, 20, 0, 10, 60, texture.HeightSampler(heightmap)),
		Material: "largeGroundMat",
	})
	scene.AddMesh(Fountain, blueprint.Part{Geometry: meshgen.Lathe(fountainProfile, 64).DoubleSided(), Material: "stone"})
	scene.AddMesh("tree", blueprint.Part{Geometry: meshgen.Quad(1, 1), Material: "tree"})

	for _, style := range []int{layout.StyleDetached, layout.StyleSemiDetached} {
		mat := fmt.Sprintf("boxMat.style%d", style)
		scene.AddMaterial(mat, blueprint.Material{Color: white, Texture: wallTextures[style]})
		walls, roof := House(style)
		scene.AddMesh(houseMesh(style),
			blueprint.Part{Geometry: walls, Material: mat},
			blueprint.Part{Geometry: roof, Material: "roofMat"},
		)
	}

	scene.Add(blueprint.Object{Name: "ground", Mesh: "ground", Transform: blueprint.At(0, 0.01, 0), ReceiveShadow: true})
	scene.Add(blueprint.Object{Name: "largeGround", Mesh: "largeGround", Transform: blueprint.At(0, -0.01, 0), ReceiveShadow: true})

	casters := map[string]float64{}
	place := func(name string, p layout.Placement) {
		t := blueprint.At(p.X, 0, p.Z).Rotated(0, p.Rotation, 0)
		scene.Add(blueprint.Object{Name: name, Mesh: houseMesh(p.Style), Transform: t, CastShadow: true})
		casters[name] = houseRadius(p.Style)
	}
	for _, p := range layout.VillageTemplates {
		place(templateName(p.Style), p)
	}
	for i, p := range layout.VillagePlacements {
		place(houseName(i), p)
	}

	fountain := blueprint.At(fountainPosition.X(), fountainPosition.Y(), fountainPosition.Z()).
		Scaled(fountainScale, fountainScale, fountainScale)
	scene.Add(blueprint.Object{Name: Fountain, Mesh: Fountain, Transform: fountain, CastShadow: true})
	casters[Fountain] = 0.5 * fountainScale

	for i, tree := range layout.VillageTrees(rng, cfg.Village.Trees) {
		t := blueprint.At(tree.Position.X(), tree.Position.Y(), tree.Position.Z()).Scaled(tree.Scale, tree.Scale, tree.Scale)
		scene.Add(blueprint.Object{Name: treeName(i), Mesh: "tree", Transform: t})
	}

	scene.AddLight(blueprint.Light{
		Name:        "light",
		Kind:        blueprint.Hemispheric,
		Direction:   mgl64.Vec3{2, 1, 0},
		Color:       mgl64.Vec3{1, 1, 1},
		GroundColor: mgl64.Vec3{0, 0.2, 0.7},
		Intensity:   0.8,
	})
	scene.AddLight(blueprint.Light{
		Name:      "dir01",
		Kind:      blueprint.Directional,
		Position:  mgl64.Vec3{20, 40, 20},
		Direction: mgl64.Vec3{-1, -2, -1},
		Color:     mgl64.Vec3{1, 1, 1},
		Intensity: 0.7,
	})
	scene.AddShadow(blueprint.Shadow{Light: "dir01", Darkness: 0.4, Casters: casters})

	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

// NewFountain returns the fountain's water, started. It holds at most cfg's
// MaxParticles and emits EmitRate particles a second.
func NewFountain(cfg *config.Config, rng *rand.Rand) *particle.Emitter {
	e := particle.NewEmitter(cfg.Village.MaxParticles, rng)
	e.Position = fountainPosition.Add(mgl64.Vec3{0, 1, 0})
	e.EmitBox = particle.VectorRange{Min: mgl64.Vec3{-0.05, 0, -0.05}, Max: mgl64.Vec3{0.05, 0, 0.05}}
	e.Color1 = mgl64.Vec4{0.9, 0.9, 1, 1}
	e.Color2 = mgl64.Vec4{0.2, 0.5, 1, 1}
	e.ColorDead = mgl64.Vec4{0, 0, 0.2, 0}
	e.Size = particle.NumberRange{Min: 0.05, Max: 0.2}
	e.Lifetime = particle.NumberRange{Min: 0.5, Max: 1.5}
	e.EmitRate = cfg.Village.EmitRate
	e.Gravity = mgl64.Vec3{0, -9.81, 0}
	e.Direction1 = mgl64.Vec3{-1, 4, 1}
	e.Direction2 = mgl64.Vec3{1, 4, -1}
	e.Start()
	return e
}
