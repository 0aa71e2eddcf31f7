package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/meshgen"
)

// Scenes are laid out left-handed and tetra3d is right-handed; the two frames differ by a
// mirror across the XY plane. Everything crossing into the engine goes through these.

// toEngine mirrors a point or direction between the scene frame and the engine frame.
// It is its own inverse.
func toEngine(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), v.Y(), -v.Z()}
}

// toEngineQuat mirrors a rotation, so that toEngineQuat(q) rotates toEngine(v) onto
// toEngine(q.Rotate(v)).
func toEngineQuat(q mgl64.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{-q.V.X(), -q.V.Y(), q.V.Z()}}
}

// engineIndices offsets geo's indices by base and reverses each triangle's winding,
// which the mirror would otherwise turn inside out.
func engineIndices(geo *meshgen.Geometry, base int) []int {
	out := make([]int, len(geo.Indices))
	for i := 0; i+2 < len(geo.Indices); i += 3 {
		out[i] = base + geo.Indices[i]
		out[i+1] = base + geo.Indices[i+2]
		out[i+2] = base + geo.Indices[i+1]
	}
	return out
}
