package export

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/meshgen"
	"github.com/scenery3d/scenery/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() *blueprint.Scene {
	scene := blueprint.New("export")
	scene.AddMaterial("red", blueprint.Material{Color: blueprint.RGB(1, 0, 0)})
	scene.AddMaterial("grass", blueprint.Material{Color: blueprint.RGB(1, 1, 1), Texture: "grass"})
	scene.AddMaterial("lawn", blueprint.Material{Color: blueprint.RGB(0.8, 1, 0.8), Texture: "grass", AlphaClip: true})
	scene.AddMesh("cube", blueprint.Part{Geometry: meshgen.Cube(1), Material: "red"})
	scene.AddMesh("ground", blueprint.Part{Geometry: meshgen.Ground(10, 10, 1, 1), Material: "grass"})
	scene.AddMesh("patch", blueprint.Part{Geometry: meshgen.Ground(2, 2, 1, 1), Material: "lawn"})

	scene.Add(blueprint.Object{Name: "ground", Mesh: "ground"})
	scene.Add(blueprint.Object{Name: "patch", Mesh: "patch"})
	scene.Add(blueprint.Object{Name: "a", Mesh: "cube", Transform: blueprint.At(1, 0.5, 0)})
	scene.Add(blueprint.Object{Name: "b", Mesh: "cube", Parent: "a", Transform: blueprint.At(0, 1, 0)})
	scene.AddLight(blueprint.Light{Name: "lamp", Kind: blueprint.Point, Parent: "a", Color: mgl64.Vec3{1, 1, 1}, Intensity: 2})
	return scene
}

func TestDocument(t *testing.T) {
	doc, err := Document(testScene(), nil)
	require.NoError(t, err)

	assert.Len(t, doc.Meshes, 3)
	assert.Len(t, doc.Materials, 3)
	assert.Len(t, doc.Nodes, 5)
	require.Len(t, doc.Scenes, 1)
	assert.Equal(t, "export", doc.Scenes[0].Name)
	// ground, patch and a are roots; b and the lamp hang off a.
	assert.Equal(t, []int{0, 1, 2}, doc.Scenes[0].Nodes)
	assert.Equal(t, []int{3, 4}, doc.Nodes[2].Children)

	// Both cubes share one mesh.
	require.NotNil(t, doc.Nodes[2].Mesh)
	require.NotNil(t, doc.Nodes[3].Mesh)
	assert.Equal(t, *doc.Nodes[2].Mesh, *doc.Nodes[3].Mesh)
	assert.Nil(t, doc.Nodes[4].Mesh)

	assert.Equal(t, [3]float64{1, 0.5, 0}, doc.Nodes[2].Translation)
	assert.Equal(t, [3]float64{1, 1, 1}, doc.Nodes[2].Scale)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, doc.Nodes[2].Rotation)

	var lawn *gltf.Material
	for _, mat := range doc.Materials {
		if mat.Name == "lawn" {
			lawn = mat
		}
	}
	require.NotNil(t, lawn)
	assert.Equal(t, gltf.AlphaMask, lawn.AlphaMode)
	assert.Nil(t, lawn.PBRMetallicRoughness.BaseColorTexture)
	assert.Empty(t, doc.Images)
}

func TestDocumentEmbedsTexturesOnce(t *testing.T) {
	doc, err := Document(testScene(), texture.NewLibrary("", nil))
	require.NoError(t, err)
	assert.Len(t, doc.Images, 1)
	assert.Len(t, doc.Textures, 2)
	for _, mat := range doc.Materials {
		if mat.Name == "red" {
			assert.Nil(t, mat.PBRMetallicRoughness.BaseColorTexture)
			continue
		}
		require.NotNil(t, mat.PBRMetallicRoughness.BaseColorTexture, mat.Name)
	}
}

func TestEmptyScene(t *testing.T) {
	scene := blueprint.New("empty")
	scene.Add(blueprint.Object{Name: "nothing"})
	_, err := Document(scene, nil)
	assert.ErrorIs(t, err, ErrEmptyScene)
	assert.ErrorIs(t, WriteGLTF(scene, filepath.Join(t.TempDir(), "x.gltf"), nil), ErrEmptyScene)
}

func TestInvalidScene(t *testing.T) {
	scene := testScene()
	scene.Add(blueprint.Object{Name: "ghost", Mesh: "missing"})
	_, err := Document(scene, nil)
	assert.ErrorIs(t, err, blueprint.ErrInvalid)
}

func TestWriteGLTFRoundTrip(t *testing.T) {
	for _, name := range []string{"scene.gltf", "scene.glb"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteGLTF(testScene(), path, nil))

			doc, err := gltf.Open(path)
			require.NoError(t, err)
			assert.Len(t, doc.Meshes, 3)
			assert.Len(t, doc.Nodes, 5)
			prim := doc.Meshes[0].Primitives[0]
			assert.Contains(t, prim.Attributes, gltf.POSITION)
			assert.Contains(t, prim.Attributes, gltf.NORMAL)
			assert.Contains(t, prim.Attributes, gltf.TEXCOORD_0)
		})
	}
}
