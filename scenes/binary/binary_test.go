package binary

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlueprint(t *testing.T) {
	cfg := config.Default()
	scene, err := Blueprint(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for _, s := range spheres {
		require.NotNil(t, scene.Object(s.name), s.name)
	}
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, scene.Object(StarA).Position)
	assert.InDelta(t, -3, scene.Object(StarB).Position.X(), 1e-9)
	assert.Equal(t, 2.0, scene.Object(StarC).Position.Y())

	for _, name := range []string{"lightA", "lightB", "lightC"} {
		light := scene.Light(name)
		require.NotNil(t, light)
		assert.NotEmpty(t, light.Parent)
	}
	assert.True(t, scene.Materials["matA"].Shadeless)
	assert.Equal(t, 100.0, scene.Camera.Limits.UpperRadius)
	assert.Greater(t, scene.Camera.Far, float64(starsFar))
}

func TestNoStars(t *testing.T) {
	cfg := config.Default()
	cfg.Binary.Stars = 0
	scene, err := Blueprint(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Nil(t, scene.Object("stars"))
}

func TestStarsStayOpposite(t *testing.T) {
	sys := NewSystem(1)
	for i := 0; i < 200; i++ {
		sys.Step(1.0 / 60)
		a, b := sys.Position(StarA), sys.Position(StarB)
		// Opposite sides of the centre, at radii 2 and 3.
		assert.InDelta(t, 0, a.Normalize().Add(b.Normalize()).Len(), 1e-9)
		assert.InDelta(t, 2, a.Len(), 1e-9)
		assert.InDelta(t, 3, b.Len(), 1e-9)
	}
}

func TestProximaBFollowsItsStar(t *testing.T) {
	sys := NewSystem(1)
	sys.Step(10)
	star, planet := sys.Position(StarC), sys.Position(ProximaB)
	assert.InDelta(t, 3, math.Hypot(planet.X()-star.X(), planet.Z()-star.Z()), 1e-9)
	assert.InDelta(t, 35, math.Hypot(star.X(), star.Z()), 1e-9)
	assert.Equal(t, 0.0, planet.Y())

	angle := 10 * 3.0
	assert.InDelta(t, star.X()+math.Cos(angle)*3, planet.X(), 1e-9)
}

func TestSpinsFollowFrameRates(t *testing.T) {
	sys := NewSystem(1)
	for i := 0; i < 60; i++ {
		sys.Step(1.0 / 60)
	}
	assert.InDelta(t, 0.6, sys.SpinAngle(LavaWorld), 1e-9)
	assert.InDelta(t, -0.3, sys.SpinAngle(AlienEarth), 1e-9)
}

func TestTimeScale(t *testing.T) {
	fast := NewSystem(2)
	fast.Step(1)
	slow := NewSystem(1)
	slow.Step(2)
	assert.InDelta(t, slow.Angle(LavaWorld), fast.Angle(LavaWorld), 1e-12)
}
