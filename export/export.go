// Package export writes blueprints out as glTF 2.0 so scenes can be opened in other tools.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/meshgen"
	"github.com/scenery3d/scenery/texture"
)

// ErrEmptyScene is returned for blueprints with nothing to draw.
var ErrEmptyScene = errors.New("scene has no meshes")

// Document converts a blueprint into a glTF document. Meshes are written once and shared
// by every node that instances them; lights and the hidden flag are stored in node extras.
// When textures is not nil, textured materials get their image embedded as PNG.
func Document(scene *blueprint.Scene, textures *texture.Library) (*gltf.Document, error) {
	if scene.Stats().Triangles == 0 {
		return nil, fmt.Errorf("export %q: %w", scene.Name, ErrEmptyScene)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("export %q: %w", scene.Name, err)
	}

	doc := gltf.NewDocument()
	w := &writer{
		doc:       doc,
		textures:  textures,
		materials: map[string]int{},
		images:    map[string]int{},
		meshes:    map[string]int{},
	}

	for _, key := range scene.MeshKeys() {
		if err := w.mesh(scene, key); err != nil {
			return nil, err
		}
	}

	nodes := map[string]int{}
	var roots []int
	for _, obj := range scene.Objects {
		node := &gltf.Node{
			Name:        obj.Name,
			Translation: [3]float64(obj.Position),
			Rotation:    [4]float64{obj.Rotation.V.X(), obj.Rotation.V.Y(), obj.Rotation.V.Z(), obj.Rotation.W},
			Scale:       [3]float64(obj.Scale),
		}
		if index, ok := w.meshes[obj.Mesh]; ok {
			node.Mesh = gltf.Ptr(index)
		}
		if obj.Hidden {
			node.Extras = map[string]any{"hidden": true}
		}
		index := len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, node)
		nodes[obj.Name] = index
		if parent, ok := nodes[obj.Parent]; ok {
			doc.Nodes[parent].Children = append(doc.Nodes[parent].Children, index)
		} else {
			roots = append(roots, index)
		}
	}

	for _, light := range scene.Lights {
		node := &gltf.Node{
			Name:        light.Name,
			Translation: [3]float64(light.Position),
			Rotation:    [4]float64{0, 0, 0, 1},
			Scale:       [3]float64{1, 1, 1},
			Extras: map[string]any{
				"light": map[string]any{
					"type":      light.Kind.String(),
					"color":     [3]float64(light.Color),
					"direction": [3]float64(light.Direction),
					"intensity": light.Intensity,
					"range":     light.Range,
				},
			},
		}
		index := len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, node)
		if parent, ok := nodes[light.Parent]; ok {
			doc.Nodes[parent].Children = append(doc.Nodes[parent].Children, index)
		} else {
			roots = append(roots, index)
		}
	}

	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{})
	}
	doc.Scene = gltf.Ptr(0)
	doc.Scenes[0].Name = scene.Name
	doc.Scenes[0].Nodes = roots
	doc.Scenes[0].Extras = map[string]any{
		"clearColor": [4]float64(scene.ClearColor),
		"camera": map[string]any{
			"alpha":  scene.Camera.Alpha,
			"beta":   scene.Camera.Beta,
			"radius": scene.Camera.Radius,
			"target": [3]float64(scene.Camera.Target),
		},
	}
	return doc, nil
}

// WriteGLTF writes a blueprint to path. A .glb extension writes the binary container,
// anything else writes JSON with embedded buffers.
func WriteGLTF(scene *blueprint.Scene, path string, textures *texture.Library) error {
	doc, err := Document(scene, textures)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		for _, buffer := range doc.Buffers {
			if buffer.URI == "" {
				buffer.EmbeddedResource()
			}
		}
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

type writer struct {
	doc       *gltf.Document
	textures  *texture.Library
	materials map[string]int
	images    map[string]int
	meshes    map[string]int
}

func (w *writer) mesh(scene *blueprint.Scene, key string) error {
	mesh := &gltf.Mesh{Name: key}
	for _, part := range scene.Meshes[key].Parts {
		mat, err := w.material(scene, part.Material)
		if err != nil {
			return err
		}
		attrs := w.attributes(part.Geometry)
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Attributes: attrs,
			Indices:    gltf.Ptr(modeler.WriteIndices(w.doc, indices(part.Geometry))),
			Material:   gltf.Ptr(mat),
			Mode:       gltf.PrimitiveTriangles,
		})
	}
	w.meshes[key] = len(w.doc.Meshes)
	w.doc.Meshes = append(w.doc.Meshes, mesh)
	return nil
}

func (w *writer) attributes(geo *meshgen.Geometry) gltf.Attribute {
	positions := make([][3]float32, len(geo.Positions))
	normals := make([][3]float32, len(geo.Normals))
	uvs := make([][2]float32, len(geo.UVs))
	for i, p := range geo.Positions {
		positions[i] = [3]float32{float32(p.X()), float32(p.Y()), float32(p.Z())}
	}
	for i, n := range geo.Normals {
		normals[i] = [3]float32{float32(n.X()), float32(n.Y()), float32(n.Z())}
	}
	for i, uv := range geo.UVs {
		uvs[i] = [2]float32{float32(uv.X()), float32(uv.Y())}
	}
	return gltf.Attribute{
		gltf.POSITION:   modeler.WritePosition(w.doc, positions),
		gltf.NORMAL:     modeler.WriteNormal(w.doc, normals),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(w.doc, uvs),
	}
}

func indices(geo *meshgen.Geometry) []uint32 {
	out := make([]uint32, len(geo.Indices))
	for i, index := range geo.Indices {
		out[i] = uint32(index)
	}
	return out
}

func (w *writer) material(scene *blueprint.Scene, name string) (int, error) {
	if index, ok := w.materials[name]; ok {
		return index, nil
	}
	src := scene.Materials[name]
	color := [4]float64(src.Color)
	mat := &gltf.Material{
		Name:        name,
		DoubleSided: src.DoubleSided,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &color,
			MetallicFactor:  gltf.Ptr(0.0),
			RoughnessFactor: gltf.Ptr(1.0),
		},
	}
	switch {
	case src.Transparent:
		mat.AlphaMode = gltf.AlphaBlend
	case src.AlphaClip:
		mat.AlphaMode = gltf.AlphaMask
		mat.AlphaCutoff = gltf.Ptr(0.5)
	}
	if src.Shadeless {
		mat.EmissiveFactor = [3]float64{src.Color.X(), src.Color.Y(), src.Color.Z()}
	}
	if src.Billboard {
		mat.Extras = map[string]any{"billboard": true}
	}

	if src.Texture != "" && w.textures != nil {
		image, err := w.image(src.Texture)
		if err != nil {
			return 0, err
		}
		w.doc.Textures = append(w.doc.Textures, &gltf.Texture{Source: gltf.Ptr(image)})
		mat.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{Index: len(w.doc.Textures) - 1}
	}

	index := len(w.doc.Materials)
	w.doc.Materials = append(w.doc.Materials, mat)
	w.materials[name] = index
	return index, nil
}

func (w *writer) image(name string) (int, error) {
	if index, ok := w.images[name]; ok {
		return index, nil
	}
	img, err := w.textures.Load(name)
	if err != nil {
		return 0, fmt.Errorf("export texture %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return 0, fmt.Errorf("encode texture %q: %w", name, err)
	}
	index, err := modeler.WriteImage(w.doc, name, "image/png", &buf)
	if err != nil {
		return 0, fmt.Errorf("embed texture %q: %w", name, err)
	}
	w.images[name] = index
	return index, nil
}
