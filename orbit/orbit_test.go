package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOppositePhases(t *testing.T) {
	sys := NewSystem().MustAdd(
		Body{Name: "a", Radius: 2, Speed: 1},
		Body{Name: "b", Radius: 3, Speed: 1, Phase: math.Pi},
	)

	for i := 0; i < 100; i++ {
		sys.Step(1.0 / 60)
		a, b := sys.Position("a"), sys.Position("b")
		// The two stars stay on opposite sides of the origin.
		assert.InDelta(t, 0, a.Normalize().Add(b.Normalize()).Len(), 1e-9)
		assert.InDelta(t, 2, a.Len(), 1e-9)
		assert.InDelta(t, 3, b.Len(), 1e-9)
	}
}

func TestChildFollowsParent(t *testing.T) {
	sys := NewSystem().MustAdd(
		Body{Name: "star", Radius: 35, Speed: 0.1, Height: 2},
		Body{Name: "planet", Parent: "star", Radius: 3, Speed: 3},
	)
	sys.Step(2)

	star := sys.Position("star")
	planet := sys.Position("planet")
	assert.InDelta(t, 2, star.Y(), 1e-9)
	assert.InDelta(t, 0, planet.Y(), 1e-9)

	flat := mgl64.Vec3{planet.X() - star.X(), 0, planet.Z() - star.Z()}
	assert.InDelta(t, 3, flat.Len(), 1e-9)
	assert.InDelta(t, 6, sys.Angle("planet"), 1e-9)
}

func TestPositionMatchesClosedForm(t *testing.T) {
	sys := NewSystem().MustAdd(Body{Name: "p", Radius: 7, Speed: 1.5})
	for i := 0; i < 90; i++ {
		sys.Step(1.0 / 60)
	}
	alpha := sys.Clock()
	want := mgl64.Vec3{math.Cos(alpha*1.5) * 7, 0, math.Sin(alpha*1.5) * 7}
	assert.True(t, sys.Position("p").ApproxEqualThreshold(want, 1e-9))
}

func TestSpinAndTimeScale(t *testing.T) {
	sys := NewSystem().MustAdd(Body{Name: "p", Radius: 1, Spin: -0.3})
	sys.TimeScale = 2
	sys.Step(1)
	assert.InDelta(t, -0.6, sys.SpinAngle("p"), 1e-9)
	assert.InDelta(t, 2, sys.Clock(), 1e-9)
}

func TestAddErrors(t *testing.T) {
	sys := NewSystem()
	require.NoError(t, sys.Add(Body{Name: "sun"}))
	assert.Error(t, sys.Add(Body{Name: "sun"}))
	assert.Error(t, sys.Add(Body{Name: "moon", Parent: "earth"}))
	assert.Error(t, sys.Add(Body{}))

	assert.Equal(t, []string{"sun"}, sys.Names())
	assert.Equal(t, mgl64.Vec3{}, sys.Position("nothing"))
}
