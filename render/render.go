// Package render instantiates blueprints as tetra3d scenes and keeps the engine side in
// step with the scenes' own simulation state.
package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/scenery3d/scenery/anim"
	"github.com/scenery3d/scenery/arccam"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/colors"
	"github.com/scenery3d/scenery/texture"
	"github.com/solarlune/tetra3d"
)

// DefaultFar is the camera's far plane when the blueprint doesn't set one.
const DefaultFar = 200

// Instance is a blueprint brought to life in the engine.
type Instance struct {
	Blueprint *blueprint.Scene
	Scene     *tetra3d.Scene
	Camera    *tetra3d.Camera
	Arc       *arccam.Camera

	textures  *texture.Library
	images    map[string]*ebiten.Image
	materials map[string]*tetra3d.Material
	meshes    map[string]*tetra3d.Mesh
	nodes     map[string]tetra3d.INode
	lights    map[string][]tetra3d.INode

	shadows   []*shadowLayer
	particles []*ParticleLayer
}

// Build creates the engine scene for bp. The blueprint is validated first.
func Build(bp *blueprint.Scene, textures *texture.Library, width, height int) (*Instance, error) {
	if err := bp.Validate(); err != nil {
		return nil, fmt.Errorf("build %q: %w", bp.Name, err)
	}

	inst := &Instance{
		Blueprint: bp,
		Scene:     tetra3d.NewScene(bp.Name),
		Arc:       bp.Camera.Arc(),
		textures:  textures,
		images:    map[string]*ebiten.Image{},
		materials: map[string]*tetra3d.Material{},
		meshes:    map[string]*tetra3d.Mesh{},
		nodes:     map[string]tetra3d.INode{},
		lights:    map[string][]tetra3d.INode{},
	}

	world := inst.Scene.World
	world.LightingOn = true
	world.ClearColor = colors.FromVec4(bp.ClearColor)
	world.FogOn = false

	far := bp.Camera.Far
	if far <= 0 {
		far = DefaultFar
	}
	if bp.Fog != nil && bp.Fog.Density > 0 {
		world.FogOn = true
		world.FogMode = tetra3d.FogOverwrite
		world.FogColor = colors.FromVec3(bp.Fog.Color, 1)
		// Exponential fog is ~95% opaque at 3/density.
		world.FogRange = []float32{0, float32(math.Min(1, 3/(bp.Fog.Density*far)))}
	}

	for _, key := range bp.MeshKeys() {
		mesh, err := inst.buildMesh(key, bp.Meshes[key])
		if err != nil {
			return nil, fmt.Errorf("build %q: %w", bp.Name, err)
		}
		inst.meshes[key] = mesh
	}

	for _, obj := range bp.Objects {
		var node tetra3d.INode
		if obj.Mesh != "" {
			node = tetra3d.NewModel(obj.Name, inst.meshes[obj.Mesh])
		} else {
			node = tetra3d.NewNode(obj.Name)
		}
		inst.parent(obj.Parent).AddChildren(node)
		place(node, obj.Transform)
		if obj.Hidden {
			node.SetVisible(false, true)
		}
		inst.nodes[obj.Name] = node
	}

	for _, light := range bp.Lights {
		inst.addLight(light)
	}

	for _, sh := range bp.Shadows {
		inst.shadows = append(inst.shadows, inst.newShadowLayer(sh))
	}

	inst.Camera = tetra3d.NewCamera(width, height)
	inst.Camera.SetFar(far)
	inst.Scene.Root.AddChildren(inst.Camera)
	inst.SyncCamera()
	return inst, nil
}

func (inst *Instance) parent(name string) tetra3d.INode {
	if node, ok := inst.nodes[name]; ok {
		return node
	}
	return inst.Scene.Root
}

func (inst *Instance) addLight(light *blueprint.Light) {
	for _, l := range light.Approximate() {
		r, g, b := float32(l.Color.X()), float32(l.Color.Y()), float32(l.Color.Z())
		energy := float32(l.Intensity)

		var node tetra3d.INode
		switch l.Kind {
		case blueprint.Ambient:
			node = tetra3d.NewAmbientLight(l.Name, r, g, b, energy)
		case blueprint.Directional:
			node = tetra3d.NewDirectionalLight(l.Name, r, g, b, energy)
		case blueprint.Point:
			point := tetra3d.NewPointLight(l.Name, r, g, b, energy)
			if l.Range > 0 {
				point.Range = l.Range
			}
			node = point
		default:
			continue
		}

		inst.parent(light.Parent).AddChildren(node)
		setPosition(node, l.Position)
		if l.Kind == blueprint.Directional {
			node.SetLocalRotation(lookAlong(toEngine(l.Direction)))
		}
		inst.lights[light.Name] = append(inst.lights[light.Name], node)
	}
}

// lookAlong orients a node so that its -Z axis points along dir, given in the engine
// frame. Lights and the camera are aimed this way.
func lookAlong(dir mgl64.Vec3) tetra3d.Matrix4 {
	yaw, pitch := yawPitch(dir)
	tilt := tetra3d.NewMatrix4Rotate(1, 0, 0, pitch)
	rotate := tetra3d.NewMatrix4Rotate(0, 1, 0, yaw)
	// Tilt first, then turn.
	return tilt.Mult(rotate)
}

// yawPitch returns the turn about +Y and the tilt about +X that point -Z along dir.
func yawPitch(dir mgl64.Vec3) (yaw, pitch float64) {
	if dir.Len() == 0 {
		return 0, 0
	}
	dir = dir.Normalize()
	return math.Atan2(-dir.X(), -dir.Z()), math.Asin(mgl64.Clamp(dir.Y(), -1, 1))
}

// Node returns the engine node for a blueprint object, or nil.
func (inst *Instance) Node(name string) tetra3d.INode {
	return inst.nodes[name]
}

// Model returns the engine model for a blueprint object, or nil when the object has no
// mesh.
func (inst *Instance) Model(name string) *tetra3d.Model {
	model, _ := inst.nodes[name].(*tetra3d.Model)
	return model
}

// SetTransform moves, rotates and scales an object.
func (inst *Instance) SetTransform(name string, t blueprint.Transform) {
	if node, ok := inst.nodes[name]; ok {
		place(node, t)
	}
}

// SetPosition moves an object.
func (inst *Instance) SetPosition(name string, pos mgl64.Vec3) {
	if node, ok := inst.nodes[name]; ok {
		setPosition(node, pos)
	}
}

// SetRotation rotates an object.
func (inst *Instance) SetRotation(name string, q mgl64.Quat) {
	if node, ok := inst.nodes[name]; ok {
		node.SetLocalRotation(rotation(q))
	}
}

// SetVisible shows or hides an object and its children.
func (inst *Instance) SetVisible(name string, visible bool) {
	if node, ok := inst.nodes[name]; ok {
		node.SetVisible(visible, true)
	}
}

// SetLightPosition moves every engine light made from the named blueprint light.
func (inst *Instance) SetLightPosition(name string, pos mgl64.Vec3) {
	for _, node := range inst.lights[name] {
		setPosition(node, pos)
	}
	for _, layer := range inst.shadows {
		if layer.light == name {
			layer.gen.Position = pos
		}
	}
}

// WorldPosition returns an object's position in world space.
func (inst *Instance) WorldPosition(name string) (mgl64.Vec3, bool) {
	node, ok := inst.nodes[name]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return worldPosition(node), true
}

// ApplyPose poses a character added with blueprint.AddHumanoid.
func (inst *Instance) ApplyPose(character string, pose anim.Pose) {
	for bone, t := range blueprint.PoseTransforms(pose) {
		node, ok := inst.nodes[blueprint.BoneObject(character, bone)]
		if !ok {
			continue
		}
		setPosition(node, t.Position)
		node.SetLocalRotation(rotation(t.Rotation))
	}
}

// SyncCamera moves the engine camera to the arc camera's position and aims it at the
// target.
func (inst *Instance) SyncCamera() {
	setPosition(inst.Camera, inst.Arc.Position())
	inst.Camera.SetLocalRotation(lookAlong(toEngine(inst.Arc.Forward())))
}

// Update advances the camera and refreshes shadows and particles.
func (inst *Instance) Update(dt float64) {
	inst.Arc.Update(dt)
	inst.SyncCamera()
	for _, layer := range inst.shadows {
		layer.update(inst)
	}
	for _, layer := range inst.particles {
		layer.Sync()
	}
}

// Resize matches the camera's render target to the window.
func (inst *Instance) Resize(width, height int) {
	if w, h := inst.Camera.Size(); w != width || h != height {
		inst.Camera.Resize(width, height)
	}
}

// Draw renders the scene onto screen.
func (inst *Instance) Draw(screen *ebiten.Image) {
	screen.Fill(inst.Scene.World.ClearColor.ToRGBA64())
	inst.Camera.Clear()
	inst.Camera.RenderScene(inst.Scene)
	screen.DrawImage(inst.Camera.ColorTexture(), nil)
}
