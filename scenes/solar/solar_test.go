package solar

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
	scene, err := Blueprint(config.Default(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.NotNil(t, scene.Object(Sun))
	assert.True(t, scene.Materials["sunMat"].Shadeless)
	require.NotNil(t, scene.Light("sunLight"))
	assert.Equal(t, 1.5, scene.Light("sunLight").Intensity)

	for _, p := range Planets {
		obj := scene.Object(p.Name)
		require.NotNil(t, obj, p.Name)
		assert.InDelta(t, p.Distance, math.Hypot(obj.Position.X(), obj.Position.Z()), 1e-9, p.Name)
	}

	ring := scene.Object(RingName("Saturn"))
	require.NotNil(t, ring)
	assert.Equal(t, "Saturn", ring.Parent)
	assert.Equal(t, mgl64.Vec3{1, 0.1, 1}, ring.Scale)
	low, high := scene.Meshes[RingName("Saturn")].Parts[0].Geometry.Bounds()
	// Ring diameter twice the planet's, plus the tube.
	assert.InDelta(t, 6.5, high.X()-low.X(), 1e-6)
	assert.Nil(t, scene.Object(RingName("Jupiter")))

	assert.NotNil(t, scene.Object("stars"))
	assert.Equal(t, 40.0, scene.Camera.Radius)
}

func TestStartAnglesAreSeeded(t *testing.T) {
	cfg := config.Default()
	a := NewSystem(cfg, rand.New(rand.NewSource(3)))
	b := NewSystem(cfg, rand.New(rand.NewSource(3)))
	c := NewSystem(cfg, rand.New(rand.NewSource(4)))
	assert.Equal(t, a.Angle("Mars"), b.Angle("Mars"))
	assert.NotEqual(t, a.Angle("Mars"), c.Angle("Mars"))
}

func TestSpeedMultiplier(t *testing.T) {
	cfg := config.Default()
	cfg.Solar.SpeedMultiplier = 0.5
	sys := NewSystem(cfg, rand.New(rand.NewSource(1)))
	start := sys.Angle("Earth")
	sys.Step(2)
	assert.InDelta(t, 1.0, sys.Angle("Earth")-start, 1e-12)
	assert.InDelta(t, 2.0, sys.SpinAngle("Earth"), 1e-12)
}
