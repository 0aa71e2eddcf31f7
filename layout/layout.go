// Package layout holds the fixed and randomly scattered placements the scenes are laid
// out with.
package layout

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// House styles.
const (
	StyleDetached     = 1
	StyleSemiDetached = 2
)

// Placement positions a house on the ground plane.
type Placement struct {
	Style    int
	Rotation float64 // about +Y
	X, Z     float64
}

// Position returns the placement as a ground-level point.
func (p Placement) Position() mgl64.Vec3 {
	return mgl64.Vec3{p.X, 0, p.Z}
}

// VillageTemplates are the two hand-placed houses every other house is instanced from.
var VillageTemplates = []Placement{
	{StyleDetached, -math.Pi / 10, -3, 3},
	{StyleSemiDetached, -math.Pi / 10, -4.75, 2.5},
}

// VillagePlacements lines the village's roads with houses.
var VillagePlacements = []Placement{
	// Along the diagonal road.
	{2, -math.Pi / 4, 7.5, 7.25},
	{2, -math.Pi / 3, 6.25, 5.4},
	{2, -math.Pi / 3, 5, 3.25},
	// East side of the south road.
	{1, math.Pi / 2, 4.1, -1},
	{2, math.Pi / 2, 4.1, 0.75},
	{2, math.Pi / 2, 4.1, -2.8},
	{2, math.Pi / 2, 4.1, -5},
	{1, math.Pi / 2, 4.1, -6.75},
	{2, math.Pi / 2, 4.1, -8.5},
	{2, math.Pi / 2, 4.1, -10.75},
	// West side of the south road.
	{2, math.Pi / 2, 1.7, -1},
	{1, math.Pi / 2, 1.7, 0.75},
	{2, math.Pi / 2, 1.7, -3.2},
	{1, math.Pi / 2, 1.7, -5},
	{2, math.Pi / 2, 1.7, -6.8},
	{2, math.Pi / 2, 1.7, -9},
	{1, math.Pi / 2, 1.7, -10.75},
	// South side of the west road.
	{2, -math.Pi / 10, 0.5, 1.3},
	{1, -math.Pi / 10, -1.25, 0.8},
	{2, -math.Pi / 10, -3, 0.2},
	{2, -math.Pi / 10, -5.25, -0.5},
	{1, -math.Pi / 10, -7, -1},
	{2, -math.Pi / 10, -9, -1.5},
	// North side of the west road.
	{2, -math.Pi / 10, 1, 4.25},
	{2, -math.Pi / 10, -1.25, 3.5},
	{2, -math.Pi / 10, -7, 1.75},
	{1, -math.Pi / 10, -8.75, 1.25},
	// Around the green.
	{1, math.Pi / 2, 2, 5},
	{2, math.Pi / 2, 2.15, 6.75},
	{2, math.Pi / 2, 2.15, 9.05},
	// Beyond the fountain.
	{2, -math.Pi / 4, 5.25, 8},
	{2, -math.Pi / 4, 6.75, 9.75},
	{2, math.Pi / 2, 4.5, 8},
	{1, math.Pi / 2, 4.5, 9.75},
}

// Tree is a scattered sprite tree.
type Tree struct {
	Position mgl64.Vec3
	Scale    float64
}

// VillageClear reports whether a point should be kept free of trees: the fountain
// square and the three roads out of the village.
func VillageClear(x, z float64) bool {
	switch {
	case math.Abs(x) < 2.5 && math.Abs(z) < 2.5:
		return true
	case x < 0 && z > -1.5 && z < 5.5:
		return true
	case z < 0 && x > 0 && x < 6:
		return true
	case x > 0 && z > 0 && math.Abs(x-z) < 3.5:
		return true
	}
	return false
}

// VillageTrees makes up to attempts trees in [-50, 50) on X and Z, skipping points that
// must stay clear.
func VillageTrees(rng *rand.Rand, attempts int) []Tree {
	trees := make([]Tree, 0, attempts)
	for i := 0; i < attempts; i++ {
		x := rng.Float64()*100 - 50
		z := rng.Float64()*100 - 50
		if VillageClear(x, z) {
			continue
		}
		trees = append(trees, Tree{
			Position: mgl64.Vec3{x, 0.5, z},
			Scale:    0.8 + rng.Float64()*0.7,
		})
	}
	return trees
}

// Scatter makes up to attempts ground-level points in [-halfSize, halfSize) on X and Z,
// skipping any within the central square |x|, |z| < clear.
func Scatter(rng *rand.Rand, attempts int, halfSize, clear float64) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, 0, attempts)
	for i := 0; i < attempts; i++ {
		x := rng.Float64()*halfSize*2 - halfSize
		z := rng.Float64()*halfSize*2 - halfSize
		if math.Abs(x) < clear && math.Abs(z) < clear {
			continue
		}
		points = append(points, mgl64.Vec3{x, 0, z})
	}
	return points
}
