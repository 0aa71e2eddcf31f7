package anim

import "github.com/go-gl/mathgl/mgl64"

// Transform is one bone's local transform. HasPosition is false for bones that are only
// ever rotated, in which case the rig's bind position is kept.
type Transform struct {
	Position    mgl64.Vec3
	Rotation    mgl64.Quat
	HasPosition bool
}

// Pose maps bone names to transforms.
type Pose map[string]Transform

// Blend mixes two poses; weight 0 is entirely from, 1 is entirely to. Bones present in
// only one pose are taken from that pose.
func Blend(from, to Pose, weight float64) Pose {
	if weight <= 0 {
		return from.Clone()
	}
	if weight >= 1 {
		return to.Clone()
	}
	out := make(Pose, len(to))
	for bone, b := range to {
		a, ok := from[bone]
		if !ok {
			out[bone] = b
			continue
		}
		out[bone] = Transform{
			Position:    a.Position.Add(b.Position.Sub(a.Position).Mul(weight)),
			Rotation:    mgl64.QuatSlerp(a.Rotation, b.Rotation, weight),
			HasPosition: a.HasPosition || b.HasPosition,
		}
	}
	for bone, a := range from {
		if _, ok := to[bone]; !ok {
			out[bone] = a
		}
	}
	return out
}

// Clone copies the pose.
func (pose Pose) Clone() Pose {
	out := make(Pose, len(pose))
	for bone, t := range pose {
		out[bone] = t
	}
	return out
}
