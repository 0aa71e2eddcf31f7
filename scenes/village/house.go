package village

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/layout"
	"github.com/scenery3d/scenery/meshgen"
)

// Texture strips for each wall of the two house styles.
var houseFaces = map[int][6]mgl64.Vec4{
	layout.StyleDetached: {
		meshgen.FaceRear:  {0.5, 0, 0.75, 1},
		meshgen.FaceFront: {0, 0, 0.25, 1},
		meshgen.FaceRight: {0.25, 0, 0.5, 1},
		meshgen.FaceLeft:  {0.75, 0, 1, 1},
	},
	layout.StyleSemiDetached: {
		meshgen.FaceRear:  {0.6, 0, 1, 1},
		meshgen.FaceFront: {0, 0, 0.4, 1},
		meshgen.FaceRight: {0.4, 0, 0.6, 1},
		meshgen.FaceLeft:  {0.4, 0, 0.6, 1},
	},
}

var wallTextures = map[int]string{
	layout.StyleDetached:     "cubehouse",
	layout.StyleSemiDetached: "semihouse",
}

// House builds a house of the given style standing on y = 0: walls one unit high and
// style units wide, under a prism roof.
func House(style int) (walls, roof *meshgen.Geometry) {
	width := float64(style)
	walls = meshgen.Box(meshgen.BoxOptions{Width: width, Height: 1, Depth: 1, FaceUV: houseFaces[style]}).
		Translate(0, 0.5, 0)
	roof = meshgen.Cylinder(meshgen.CylinderOptions{Height: 1.2, DiameterTop: 1.3, DiameterBottom: 1.3, Tessellation: 3}).
		Transform(mgl64.Translate3D(0, 1.22, 0).
			Mul4(mgl64.HomogRotate3DZ(math.Pi / 2)).
			Mul4(mgl64.Scale3D(0.75, width*0.85, 1)))
	return walls, roof
}
