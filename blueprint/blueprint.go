// Package blueprint describes a scene independently of the engine that draws it: meshes,
// materials, objects, lights, the camera and the environment. The render package turns a
// blueprint into a live engine scene and the export package writes it to glTF.
package blueprint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/arccam"
	"github.com/scenery3d/scenery/meshgen"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid blueprint")

// RGB returns an opaque colour.
func RGB(r, g, b float64) mgl64.Vec4 {
	return mgl64.Vec4{r, g, b, 1}
}

// Part is a piece of a mesh drawn with one material.
type Part struct {
	Geometry *meshgen.Geometry
	Material string
}

// Mesh is a set of parts. Objects referring to the same mesh key share it.
type Mesh struct {
	Parts []Part
}

// Triangles returns the mesh's triangle count over all parts.
func (mesh *Mesh) Triangles() int {
	n := 0
	for _, part := range mesh.Parts {
		n += part.Geometry.TriangleCount()
	}
	return n
}

// Material describes the surface of a mesh part.
type Material struct {
	Color   mgl64.Vec4
	Texture string
	// Shadeless materials ignore lighting (emissive suns, stars, sprites).
	Shadeless bool
	// Transparent materials are alpha blended; AlphaClip ones discard transparent texels.
	Transparent bool
	AlphaClip   bool
	DoubleSided bool
	// Billboard parts always face the camera.
	Billboard bool
}

// Transform is a position, rotation and scale.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// Identity returns the transform that changes nothing.
func Identity() Transform {
	return Transform{Rotation: mgl64.QuatIdent(), Scale: mgl64.Vec3{1, 1, 1}}
}

// At returns an identity transform moved to (x, y, z).
func At(x, y, z float64) Transform {
	t := Identity()
	t.Position = mgl64.Vec3{x, y, z}
	return t
}

// Rotated returns t with its rotation set from Euler angles.
func (t Transform) Rotated(x, y, z float64) Transform {
	t.Rotation = Euler(x, y, z)
	return t
}

// Scaled returns t with its scale set.
func (t Transform) Scaled(x, y, z float64) Transform {
	t.Scale = mgl64.Vec3{x, y, z}
	return t
}

// Matrix returns translate · rotate · scale.
func (t Transform) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Normalize().Mat4()).Mul4(scale)
}

// Euler converts rotation angles in radians to a quaternion, applying roll (z), then
// pitch (x), then yaw (y).
func Euler(x, y, z float64) mgl64.Quat {
	qx := mgl64.QuatRotate(x, mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(y, mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(z, mgl64.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// Object is a node of the scene. An object without a mesh is an empty transform node.
type Object struct {
	Name   string
	Mesh   string
	Parent string
	Transform
	Hidden        bool
	CastShadow    bool
	ReceiveShadow bool
}

// LightKind enumerates light types.
type LightKind int

const (
	Ambient LightKind = iota
	Directional
	Point
	Hemispheric
	Spot
)

func (kind LightKind) String() string {
	switch kind {
	case Ambient:
		return "ambient"
	case Directional:
		return "directional"
	case Point:
		return "point"
	case Hemispheric:
		return "hemispheric"
	case Spot:
		return "spot"
	}
	return fmt.Sprintf("LightKind(%d)", int(kind))
}

// Light is a light source. Direction is where directional and spot lights shine; for a
// hemispheric light it points at the sky.
type Light struct {
	Name        string
	Kind        LightKind
	Parent      string
	Position    mgl64.Vec3
	Direction   mgl64.Vec3
	Color       mgl64.Vec3
	GroundColor mgl64.Vec3
	Intensity   float64
	// Range is the distance over which point and spot lights fade out; 0 picks the
	// engine default.
	Range float64
	// Angle is a spot light's cone angle.
	Angle float64
}

// Approximate maps the light onto ambient, directional and point lights. A hemispheric
// light becomes an ambient light tinted halfway between sky and ground plus a
// directional light shining down from the sky side; a spot light becomes a point light.
func (light Light) Approximate() []Light {
	switch light.Kind {
	case Hemispheric:
		sky := light
		sky.Name = light.Name + ".sky"
		sky.Kind = Directional
		sky.Direction = light.Direction.Mul(-1)
		if sky.Direction.Len() > 0 {
			sky.Direction = sky.Direction.Normalize()
		}
		sky.Intensity = light.Intensity / 2

		fill := light
		fill.Name = light.Name + ".fill"
		fill.Kind = Ambient
		fill.Color = light.Color.Add(light.GroundColor).Mul(0.5)
		fill.Intensity = light.Intensity / 2
		return []Light{fill, sky}
	case Spot:
		point := light
		point.Kind = Point
		return []Light{point}
	}
	return []Light{light}
}

// Camera describes the scene's arc-rotate camera.
type Camera struct {
	Alpha, Beta, Radius float64
	Target              mgl64.Vec3
	Limits              arccam.Limits
	Far                 float64
}

// Arc builds the live camera.
func (cam Camera) Arc() *arccam.Camera {
	arc := arccam.New(cam.Alpha, cam.Beta, cam.Radius, cam.Target)
	arc.SetLimits(cam.Limits)
	return arc
}

// Fog is exponential fog.
type Fog struct {
	Color   mgl64.Vec3
	Density float64
}

// Shadow casts blob shadows from a light. Casters maps object names to blob radii.
type Shadow struct {
	Light    string
	Darkness float64
	Casters  map[string]float64
}

// Scene is a full scene description.
type Scene struct {
	Name       string
	Meshes     map[string]*Mesh
	Materials  map[string]*Material
	Objects    []*Object
	Lights     []*Light
	Shadows    []*Shadow
	Camera     Camera
	Fog        *Fog
	ClearColor mgl64.Vec4

	index map[string]int
}

// New returns an empty scene with a camera looking at the origin from 10 units away.
func New(name string) *Scene {
	return &Scene{
		Name:       name,
		Meshes:     map[string]*Mesh{},
		Materials:  map[string]*Material{},
		Camera:     Camera{Alpha: -1.5707963267948966, Beta: 1.2566370614359172, Radius: 10, Limits: arccam.NoLimits()},
		ClearColor: RGB(0.2, 0.2, 0.3),
		index:      map[string]int{},
	}
}

// AddMaterial registers a material under name.
func (scene *Scene) AddMaterial(name string, mat Material) *Scene {
	scene.Materials[name] = &mat
	return scene
}

// AddMesh registers a mesh under key.
func (scene *Scene) AddMesh(key string, parts ...Part) *Scene {
	scene.Meshes[key] = &Mesh{Parts: parts}
	return scene
}

// Add appends an object and returns it for further tweaking.
func (scene *Scene) Add(obj Object) *Object {
	if obj.Scale == (mgl64.Vec3{}) {
		obj.Scale = mgl64.Vec3{1, 1, 1}
	}
	if obj.Rotation == (mgl64.Quat{}) {
		obj.Rotation = mgl64.QuatIdent()
	}
	o := &obj
	scene.Objects = append(scene.Objects, o)
	if scene.index == nil {
		scene.index = map[string]int{}
	}
	if _, exists := scene.index[o.Name]; !exists {
		scene.index[o.Name] = len(scene.Objects) - 1
	}
	return o
}

// AddLight appends a light.
func (scene *Scene) AddLight(light Light) *Light {
	l := &light
	scene.Lights = append(scene.Lights, l)
	return l
}

// AddShadow appends a shadow generator.
func (scene *Scene) AddShadow(shadow Shadow) *Shadow {
	if shadow.Casters == nil {
		shadow.Casters = map[string]float64{}
	}
	s := &shadow
	scene.Shadows = append(scene.Shadows, s)
	return s
}

// Object returns the object called name, or nil.
func (scene *Scene) Object(name string) *Object {
	if i, ok := scene.index[name]; ok {
		return scene.Objects[i]
	}
	return nil
}

// Light returns the light called name, or nil.
func (scene *Scene) Light(name string) *Light {
	for _, light := range scene.Lights {
		if light.Name == name {
			return light
		}
	}
	return nil
}

// Children returns the names of the objects directly parented to name.
func (scene *Scene) Children(name string) []string {
	children := []string{}
	for _, obj := range scene.Objects {
		if obj.Parent == name {
			children = append(children, obj.Name)
		}
	}
	return children
}

// WorldMatrix returns an object's transform composed with all of its parents'.
func (scene *Scene) WorldMatrix(name string) (mgl64.Mat4, bool) {
	obj := scene.Object(name)
	if obj == nil {
		return mgl64.Ident4(), false
	}
	m := obj.Matrix()
	for depth := 0; obj.Parent != "" && depth < len(scene.Objects); depth++ {
		obj = scene.Object(obj.Parent)
		if obj == nil {
			return m, false
		}
		m = obj.Matrix().Mul4(m)
	}
	return m, true
}

// WorldPosition returns an object's position in world space.
func (scene *Scene) WorldPosition(name string) (mgl64.Vec3, bool) {
	m, ok := scene.WorldMatrix(name)
	return m.Col(3).Vec3(), ok
}

// Stats summarises a scene.
type Stats struct {
	Objects   int
	Meshes    int
	Lights    int
	Triangles int
}

// Stats counts the scene's objects, unique meshes, lights and drawn triangles.
func (scene *Scene) Stats() Stats {
	stats := Stats{Objects: len(scene.Objects), Meshes: len(scene.Meshes), Lights: len(scene.Lights)}
	for _, obj := range scene.Objects {
		if mesh, ok := scene.Meshes[obj.Mesh]; ok && !obj.Hidden {
			stats.Triangles += mesh.Triangles()
		}
	}
	return stats
}

// MeshKeys returns the mesh keys in sorted order.
func (scene *Scene) MeshKeys() []string {
	keys := make([]string, 0, len(scene.Meshes))
	for key := range scene.Meshes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that every reference in the scene resolves: object names are unique,
// meshes and parents exist (parents declared before their children), mesh parts have
// valid geometry and known materials, and lights and shadows point at real nodes.
func (scene *Scene) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	for _, key := range scene.MeshKeys() {
		mesh := scene.Meshes[key]
		if len(mesh.Parts) == 0 {
			fail("mesh %q has no parts", key)
		}
		for i, part := range mesh.Parts {
			if part.Geometry == nil {
				fail("mesh %q part %d has no geometry", key, i)
				continue
			}
			if err := part.Geometry.Validate(); err != nil {
				fail("mesh %q part %d: %v", key, i, err)
			}
			if _, ok := scene.Materials[part.Material]; !ok {
				fail("mesh %q part %d: unknown material %q", key, i, part.Material)
			}
		}
	}

	seen := map[string]bool{}
	for _, obj := range scene.Objects {
		if obj.Name == "" {
			fail("object without a name")
		}
		if seen[obj.Name] {
			fail("duplicate object %q", obj.Name)
		}
		if obj.Mesh != "" {
			if _, ok := scene.Meshes[obj.Mesh]; !ok {
				fail("object %q: unknown mesh %q", obj.Name, obj.Mesh)
			}
		}
		if obj.Parent != "" && !seen[obj.Parent] {
			fail("object %q: parent %q is not declared before it", obj.Name, obj.Parent)
		}
		seen[obj.Name] = true
	}

	lights := map[string]bool{}
	for _, light := range scene.Lights {
		if lights[light.Name] {
			fail("duplicate light %q", light.Name)
		}
		lights[light.Name] = true
		if light.Parent != "" && !seen[light.Parent] {
			fail("light %q: unknown parent %q", light.Name, light.Parent)
		}
		if light.Kind < Ambient || light.Kind > Spot {
			fail("light %q: unknown kind %v", light.Name, light.Kind)
		}
	}

	for _, shadow := range scene.Shadows {
		if !lights[shadow.Light] {
			fail("shadow: unknown light %q", shadow.Light)
		}
		for caster := range shadow.Casters {
			if !seen[caster] {
				fail("shadow of %q: unknown caster %q", shadow.Light, caster)
			}
		}
	}

	return errors.Join(errs...)
}
