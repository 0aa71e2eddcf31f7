package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/colors"
	"github.com/scenery3d/scenery/meshgen"
	"github.com/solarlune/tetra3d"
)

// buildMesh converts every part of a blueprint mesh into one tetra3d mesh with a mesh part
// per blueprint part.
func (inst *Instance) buildMesh(key string, mesh *blueprint.Mesh) (*tetra3d.Mesh, error) {
	var verts []tetra3d.VertexInfo
	type span struct {
		material *tetra3d.Material
		indices  []int
	}
	spans := make([]span, 0, len(mesh.Parts))

	for _, part := range mesh.Parts {
		mat, err := inst.material(part.Material)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", key, err)
		}
		base := len(verts)
		verts = append(verts, vertices(part.Geometry)...)
		spans = append(spans, span{material: mat, indices: engineIndices(part.Geometry, base)})
	}

	out := tetra3d.NewMesh(key, verts...)
	for _, s := range spans {
		out.AddMeshPart(s.material, s.indices...)
	}
	out.UpdateBounds()
	return out, nil
}

// vertices converts geometry into engine vertices, mirroring it into the engine's frame.
func vertices(geo *meshgen.Geometry) []tetra3d.VertexInfo {
	out := make([]tetra3d.VertexInfo, len(geo.Positions))
	for i, p := range geo.Positions {
		p = toEngine(p)
		uv := geo.UVs[i]
		v := tetra3d.NewVertex(p.X(), p.Y(), p.Z(), uv.X(), uv.Y())
		n := toEngine(geo.Normals[i])
		v.NormalX, v.NormalY, v.NormalZ = n.X(), n.Y(), n.Z()
		out[i] = v
	}
	return out
}

func (inst *Instance) material(name string) (*tetra3d.Material, error) {
	if mat, ok := inst.materials[name]; ok {
		return mat, nil
	}
	src, ok := inst.Blueprint.Materials[name]
	if !ok {
		return nil, fmt.Errorf("unknown material %q", name)
	}

	mat := tetra3d.NewMaterial(name)
	mat.Color = colors.FromVec4(src.Color)
	mat.Shadeless = src.Shadeless
	// Billboards turn to the camera whichever way they were built facing.
	mat.BackfaceCulling = !src.DoubleSided && !src.Billboard
	switch {
	case src.Transparent:
		mat.TransparencyMode = tetra3d.TransparencyModeTransparent
	case src.AlphaClip:
		mat.TransparencyMode = tetra3d.TransparencyModeAlphaClip
	}
	if src.Billboard {
		mat.BillboardMode = tetra3d.BillboardModeAll
	}

	if src.Texture != "" {
		img, err := inst.texture(src.Texture)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		mat.Texture = img
	}

	inst.materials[name] = mat
	return mat, nil
}

func (inst *Instance) texture(name string) (*ebiten.Image, error) {
	if img, ok := inst.images[name]; ok {
		return img, nil
	}
	src, err := inst.textures.Load(name)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	inst.images[name] = img
	return img, nil
}

// rotation converts a scene rotation into the engine's axis-angle rotation matrix.
func rotation(q mgl64.Quat) tetra3d.Matrix4 {
	q = toEngineQuat(q).Normalize()
	if q.W < 0 {
		q = q.Scale(-1)
	}
	angle := 2 * math.Acos(mgl64.Clamp(q.W, -1, 1))
	s := math.Sqrt(1 - q.W*q.W)
	if s < 1e-9 {
		return tetra3d.NewMatrix4()
	}
	axis := q.V.Mul(1 / s)
	return tetra3d.NewMatrix4Rotate(axis.X(), axis.Y(), axis.Z(), angle)
}

// place applies a blueprint transform to a node.
func place(node tetra3d.INode, t blueprint.Transform) {
	setPosition(node, t.Position)
	node.SetLocalRotation(rotation(t.Rotation))
	node.SetLocalScale(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
}

// setPosition moves a node to a scene-frame position.
func setPosition(node tetra3d.INode, pos mgl64.Vec3) {
	p := toEngine(pos)
	node.SetLocalPosition(p.X(), p.Y(), p.Z())
}

// worldPosition returns a node's world position in the scene frame.
func worldPosition(node tetra3d.INode) mgl64.Vec3 {
	p := node.WorldPosition()
	return toEngine(mgl64.Vec3{p.X, p.Y, p.Z})
}
