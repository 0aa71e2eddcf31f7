package blueprint

import (
	"github.com/scenery3d/scenery/anim"
	"github.com/scenery3d/scenery/meshgen"
)

// BoneObject names the object carrying a character's bone.
func BoneObject(character, bone string) string {
	return character + "/" + bone
}

// AddHumanoid adds the stand-in character: an empty root object called name with one
// child object per bone of anim.HumanoidRig, at the bones' bind positions. The body part
// meshes are shared between every humanoid in the scene.
func (scene *Scene) AddHumanoid(name, material string, at Transform) *Object {
	parts := meshgen.Humanoid()
	for _, bone := range anim.HumanoidRig {
		key := "humanoid." + bone.Name
		if _, ok := scene.Meshes[key]; !ok {
			scene.AddMesh(key, Part{Geometry: parts[bone.Name], Material: material})
		}
	}

	root := scene.Add(Object{Name: name, Transform: at})
	for _, bone := range anim.HumanoidRig {
		parent := name
		if bone.Parent != "" {
			parent = BoneObject(name, bone.Parent)
		}
		t := Identity()
		t.Position = bone.Bind
		scene.Add(Object{
			Name:       BoneObject(name, bone.Name),
			Mesh:       "humanoid." + bone.Name,
			Parent:     parent,
			Transform:  t,
			CastShadow: true,
		})
	}
	return root
}

// PoseTransforms resolves a pose into each bone's local transform, keeping the bind
// position of bones the pose only rotates.
func PoseTransforms(pose anim.Pose) map[string]Transform {
	out := make(map[string]Transform, len(anim.HumanoidRig))
	for _, bone := range anim.HumanoidRig {
		t := Identity()
		t.Position = bone.Bind
		if p, ok := pose[bone.Name]; ok {
			t.Rotation = p.Rotation
			if p.HasPosition {
				t.Position = p.Position
			}
		}
		out[bone.Name] = t
	}
	return out
}
