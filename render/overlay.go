package render

import (
	"fmt"

	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/colors"
	"github.com/scenery3d/scenery/meshgen"
	"github.com/scenery3d/scenery/particle"
	"github.com/scenery3d/scenery/shadow"
	"github.com/solarlune/tetra3d"
)

// Blobs sit just above the ground so they don't fight with it for depth.
const blobLift = 0.02

type shadowLayer struct {
	light string
	gen   *shadow.Generator
	blobs map[string]*tetra3d.Model
}

func (inst *Instance) blobMesh() *tetra3d.Mesh {
	const key = "render.shadow"
	if mesh, ok := inst.meshes[key]; ok {
		return mesh
	}
	mat := tetra3d.NewMaterial(key)
	mat.Shadeless = true
	mat.TransparencyMode = tetra3d.TransparencyModeTransparent
	mat.Color = colors.Shadow(1)

	geo := meshgen.Disc(1, 24)
	mesh := tetra3d.NewMesh(key, vertices(geo)...)
	mesh.AddMeshPart(mat, engineIndices(geo, 0)...)
	mesh.UpdateBounds()
	inst.meshes[key] = mesh
	return mesh
}

func (inst *Instance) newShadowLayer(sh *blueprint.Shadow) *shadowLayer {
	light := inst.Blueprint.Light(sh.Light)
	var gen *shadow.Generator
	switch light.Kind {
	case blueprint.Point, blueprint.Spot:
		gen = shadow.NewPoint(light.Position)
	case blueprint.Hemispheric:
		gen = shadow.NewDirectional(light.Direction.Mul(-1))
	default:
		gen = shadow.NewDirectional(light.Direction)
	}
	gen.SetDarkness(sh.Darkness)
	gen.GroundY = blobLift

	layer := &shadowLayer{light: sh.Light, gen: gen, blobs: map[string]*tetra3d.Model{}}
	mesh := inst.blobMesh()
	for caster, radius := range sh.Casters {
		gen.AddShadowCaster(caster, radius)
		blob := tetra3d.NewModel(sh.Light+".shadow."+caster, mesh)
		blob.SetVisible(false, true)
		inst.Scene.Root.AddChildren(blob)
		layer.blobs[caster] = blob
	}
	return layer
}

func (layer *shadowLayer) update(inst *Instance) {
	if layer.gen.Point {
		if nodes := inst.lights[layer.light]; len(nodes) > 0 {
			layer.gen.Position = worldPosition(nodes[0])
		}
	}
	for _, blob := range layer.blobs {
		blob.SetVisible(false, true)
	}
	for _, b := range layer.gen.Blobs(inst.WorldPosition) {
		blob := layer.blobs[b.Caster]
		setPosition(blob, b.Center)
		blob.SetLocalScale(b.Radius, 1, b.Radius)
		blob.Color = colors.Shadow(b.Alpha)
		blob.SetVisible(true, true)
	}
}

// ParticleLayer draws a particle emitter as a pool of camera facing quads, one per
// particle the emitter can hold.
type ParticleLayer struct {
	Emitter *particle.Emitter
	models  []*tetra3d.Model
}

// AddParticles creates a layer for emitter textured with the named texture.
func (inst *Instance) AddParticles(name string, emitter *particle.Emitter, textureName string) (*ParticleLayer, error) {
	mat := tetra3d.NewMaterial(name)
	mat.Shadeless = true
	mat.BillboardMode = tetra3d.BillboardModeAll
	mat.BackfaceCulling = false
	mat.TransparencyMode = tetra3d.TransparencyModeTransparent
	if textureName != "" {
		img, err := inst.texture(textureName)
		if err != nil {
			return nil, fmt.Errorf("particles %q: %w", name, err)
		}
		mat.Texture = img
	}

	geo := meshgen.Quad(1, 1)
	mesh := tetra3d.NewMesh(name, vertices(geo)...)
	mesh.AddMeshPart(mat, engineIndices(geo, 0)...)
	mesh.UpdateBounds()

	layer := &ParticleLayer{Emitter: emitter, models: make([]*tetra3d.Model, emitter.Capacity)}
	for i := range layer.models {
		model := tetra3d.NewModel(fmt.Sprintf("%s.%d", name, i), mesh)
		model.SetVisible(false, true)
		inst.Scene.Root.AddChildren(model)
		layer.models[i] = model
	}
	inst.particles = append(inst.particles, layer)
	return layer, nil
}

// Sync copies the emitter's live particles onto the quads and hides the rest.
func (layer *ParticleLayer) Sync() {
	parts := layer.Emitter.Particles()
	for i, model := range layer.models {
		if i >= len(parts) {
			model.SetVisible(false, true)
			continue
		}
		p := parts[i]
		setPosition(model, p.Position)
		model.SetLocalScale(p.Size, p.Size, p.Size)
		model.Color = colors.FromVec4(p.Color)
		model.SetVisible(true, true)
	}
}
