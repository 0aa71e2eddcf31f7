package blueprint

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/anim"
	"github.com/scenery3d/scenery/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vecInDelta(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func cubeScene() *Scene {
	scene := New("test")
	scene.AddMaterial("red", Material{Color: RGB(1, 0, 0)})
	scene.AddMesh("cube", Part{Geometry: meshgen.Cube(1), Material: "red"})
	return scene
}

func TestEulerYaw(t *testing.T) {
	q := Euler(0, math.Pi/2, 0)
	vecInDelta(t, mgl64.Vec3{1, 0, 0}, q.Rotate(mgl64.Vec3{0, 0, 1}))
}

func TestEulerOrder(t *testing.T) {
	// Pitch is applied before yaw.
	q := Euler(math.Pi/2, math.Pi/2, 0)
	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}).Rotate(
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}).Rotate(mgl64.Vec3{0, 0, 1}))
	vecInDelta(t, want, q.Rotate(mgl64.Vec3{0, 0, 1}))
}

func TestTransformMatrix(t *testing.T) {
	m := At(1, 2, 3).Scaled(2, 2, 2).Matrix()
	vecInDelta(t, mgl64.Vec3{3, 2, 3}, mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, m))
}

func TestAddDefaults(t *testing.T) {
	scene := cubeScene()
	obj := scene.Add(Object{Name: "a", Mesh: "cube"})
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, obj.Scale)
	assert.Equal(t, mgl64.QuatIdent(), obj.Rotation)
	assert.Same(t, obj, scene.Object("a"))
	assert.Nil(t, scene.Object("missing"))
}

func TestWorldPosition(t *testing.T) {
	scene := cubeScene()
	scene.Add(Object{Name: "parent", Transform: At(10, 0, 0).Rotated(0, math.Pi/2, 0)})
	scene.Add(Object{Name: "child", Mesh: "cube", Parent: "parent", Transform: At(0, 0, 2)})

	pos, ok := scene.WorldPosition("child")
	require.True(t, ok)
	vecInDelta(t, mgl64.Vec3{12, 0, 0}, pos)
	assert.Equal(t, []string{"child"}, scene.Children("parent"))

	_, ok = scene.WorldPosition("nobody")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	scene := cubeScene()
	scene.Add(Object{Name: "a", Mesh: "cube", CastShadow: true})
	scene.AddLight(Light{Name: "sun", Kind: Directional, Direction: mgl64.Vec3{0, -1, 0}, Color: mgl64.Vec3{1, 1, 1}, Intensity: 1})
	scene.AddShadow(Shadow{Light: "sun", Darkness: 0.2, Casters: map[string]float64{"a": 0.5}})
	require.NoError(t, scene.Validate())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(scene *Scene)
	}{
		{"unknown mesh", func(scene *Scene) {
			scene.Add(Object{Name: "a", Mesh: "sphere"})
		}},
		{"unknown material", func(scene *Scene) {
			scene.AddMesh("blue", Part{Geometry: meshgen.Cube(1), Material: "blue"})
		}},
		{"duplicate object", func(scene *Scene) {
			scene.Add(Object{Name: "a"})
			scene.Add(Object{Name: "a"})
		}},
		{"child before parent", func(scene *Scene) {
			scene.Add(Object{Name: "child", Parent: "parent"})
			scene.Add(Object{Name: "parent"})
		}},
		{"light parent", func(scene *Scene) {
			scene.AddLight(Light{Name: "l", Kind: Point, Parent: "ghost"})
		}},
		{"shadow caster", func(scene *Scene) {
			scene.AddLight(Light{Name: "l", Kind: Directional})
			scene.AddShadow(Shadow{Light: "l", Casters: map[string]float64{"ghost": 1}})
		}},
		{"shadow light", func(scene *Scene) {
			scene.AddShadow(Shadow{Light: "ghost"})
		}},
		{"empty geometry", func(scene *Scene) {
			scene.AddMesh("nothing", Part{Material: "red"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := cubeScene()
			tt.build(scene)
			err := scene.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestApproximateHemispheric(t *testing.T) {
	light := Light{
		Name:        "hemi",
		Kind:        Hemispheric,
		Direction:   mgl64.Vec3{0, 2, 0},
		Color:       mgl64.Vec3{1, 1, 1},
		GroundColor: mgl64.Vec3{0, 0, 0},
		Intensity:   0.8,
	}
	lights := light.Approximate()
	require.Len(t, lights, 2)

	assert.Equal(t, Ambient, lights[0].Kind)
	vecInDelta(t, mgl64.Vec3{0.5, 0.5, 0.5}, lights[0].Color)

	assert.Equal(t, Directional, lights[1].Kind)
	vecInDelta(t, mgl64.Vec3{0, -1, 0}, lights[1].Direction)
	assert.InDelta(t, light.Intensity, lights[0].Intensity+lights[1].Intensity, 1e-12)
	assert.NotEqual(t, lights[0].Name, lights[1].Name)
}

func TestApproximateSpotAndOthers(t *testing.T) {
	spot := Light{Name: "spot", Kind: Spot, Position: mgl64.Vec3{0, 5, -3}, Angle: math.Pi / 3, Intensity: 1}
	lights := spot.Approximate()
	require.Len(t, lights, 1)
	assert.Equal(t, Point, lights[0].Kind)
	assert.Equal(t, spot.Position, lights[0].Position)

	point := Light{Name: "p", Kind: Point}
	assert.Equal(t, []Light{point}, point.Approximate())
	assert.Equal(t, "hemispheric", Hemispheric.String())
}

func TestStatsCountsInstances(t *testing.T) {
	scene := cubeScene()
	scene.Add(Object{Name: "a", Mesh: "cube"})
	scene.Add(Object{Name: "b", Mesh: "cube"})
	scene.Add(Object{Name: "hidden", Mesh: "cube", Hidden: true})

	stats := scene.Stats()
	assert.Equal(t, 3, stats.Objects)
	assert.Equal(t, 1, stats.Meshes)
	assert.Equal(t, 24, stats.Triangles)
}

func TestAddHumanoid(t *testing.T) {
	scene := New("character")
	scene.AddMaterial("skin", Material{Color: RGB(0.8, 0.6, 0.5)})
	root := scene.AddHumanoid("hero", "skin", At(2, 0, 0))
	scene.AddHumanoid("villain", "skin", At(-2, 0, 0))

	require.NoError(t, scene.Validate())
	assert.Equal(t, "hero", root.Name)
	assert.Len(t, scene.Objects, 2*(1+len(anim.HumanoidRig)))
	assert.Len(t, scene.Meshes, len(anim.HumanoidRig))

	hips, ok := scene.WorldPosition(BoneObject("hero", anim.BoneHips))
	require.True(t, ok)
	vecInDelta(t, mgl64.Vec3{2, 0.95, 0}, hips)
}

func TestPoseTransforms(t *testing.T) {
	clip := anim.NewHumanoidClip()
	pose := clip.Sample(0)
	local := PoseTransforms(pose)
	require.Len(t, local, len(anim.HumanoidRig))

	for _, bone := range anim.HumanoidRig[1:] {
		assert.Equal(t, bone.Bind, local[bone.Name].Position, bone.Name)
	}
	assert.Equal(t, pose[anim.BoneHips].Position, local[anim.BoneHips].Position)
	assert.Equal(t, PoseTransforms(anim.Pose{})[anim.BoneHead].Rotation, mgl64.QuatIdent())
}
