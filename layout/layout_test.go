package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVillagePlacements(t *testing.T) {
	assert.Len(t, VillagePlacements, 34)
	assert.Len(t, VillageTemplates, 2)

	detached := 0
	for _, p := range VillagePlacements {
		assert.Contains(t, []int{StyleDetached, StyleSemiDetached}, p.Style)
		if p.Style == StyleDetached {
			detached++
		}
	}
	assert.Equal(t, 10, detached)

	first := VillagePlacements[0]
	assert.Equal(t, 7.5, first.X)
	assert.Equal(t, 7.25, first.Z)
	assert.Equal(t, -math.Pi/4, first.Rotation)
}

func TestVillageClear(t *testing.T) {
	assert.True(t, VillageClear(0, 0), "fountain square")
	assert.True(t, VillageClear(-20, 2), "west road")
	assert.True(t, VillageClear(3, -30), "south road")
	assert.True(t, VillageClear(20, 21), "diagonal road")

	assert.False(t, VillageClear(-20, 10))
	assert.False(t, VillageClear(20, -20))
	assert.False(t, VillageClear(30, 10))
}

func TestVillageTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	trees := VillageTrees(rng, 2000)

	assert.NotEmpty(t, trees)
	assert.Less(t, len(trees), 2000)
	for _, tree := range trees {
		assert.False(t, VillageClear(tree.Position.X(), tree.Position.Z()))
		assert.Equal(t, 0.5, tree.Position.Y())
		assert.GreaterOrEqual(t, tree.Scale, 0.8)
		assert.LessOrEqual(t, tree.Scale, 1.5)
		assert.GreaterOrEqual(t, tree.Position.X(), -50.0)
		assert.Less(t, tree.Position.X(), 50.0)
	}
}

func TestVillageTreesAreSeeded(t *testing.T) {
	a := VillageTrees(rand.New(rand.NewSource(42)), 100)
	b := VillageTrees(rand.New(rand.NewSource(42)), 100)
	assert.Equal(t, a, b)
}

func TestScatter(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := Scatter(rng, 30, 25, 12)

	assert.LessOrEqual(t, len(points), 30)
	for _, p := range points {
		assert.False(t, math.Abs(p.X()) < 12 && math.Abs(p.Z()) < 12)
		assert.GreaterOrEqual(t, p.X(), -25.0)
		assert.Less(t, p.X(), 25.0)
		assert.Equal(t, 0.0, p.Y())
	}
}
