package meshgen

import "github.com/scenery3d/scenery/anim"

// Humanoid builds the body parts of the stand-in character, one per bone of
// anim.HumanoidRig, each in its bone's local space.
func Humanoid() map[string]*Geometry {
	limb := func(radius, length float64) *Geometry {
		// Hangs down from the joint.
		return Capsule(radius, length, 8, 3).Translate(0, -length/2, 0)
	}
	return map[string]*Geometry{
		anim.BoneHips:     Box(BoxOptions{Width: 0.34, Height: 0.2, Depth: 0.2}),
		anim.BoneSpine:    Box(BoxOptions{Width: 0.42, Height: 0.55, Depth: 0.22}).Translate(0, 0.3, 0),
		anim.BoneHead:     Sphere(0.28, 0.32, 0.28, 8).Translate(0, 0.15, 0),
		anim.BoneLeftArm:  limb(0.06, 0.62),
		anim.BoneRightArm: limb(0.06, 0.62),
		anim.BoneLeftLeg:  limb(0.08, 0.9),
		anim.BoneRightLeg: limb(0.08, 0.9),
	}
}
