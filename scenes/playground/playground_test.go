package playground

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/anim"
	"github.com/scenery3d/scenery/config"
	"github.com/scenery3d/scenery/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func newLayout(seed int64) *Layout {
	return NewLayout(config.Default(), rand.New(rand.NewSource(seed)))
}

func TestLayoutKeepsTheMiddleClear(t *testing.T) {
	l := newLayout(1)
	assert.LessOrEqual(t, len(l.Pines), 30)
	assert.LessOrEqual(t, len(l.Flowers), 15)
	assert.NotEmpty(t, l.Pines)
	for _, p := range l.Pines {
		assert.False(t, math.Abs(p.X()) < 12 && math.Abs(p.Z()) < 12, "pine at %v", p)
		assert.Less(t, math.Abs(p.X()), 25.0)
		assert.Less(t, math.Abs(p.Z()), 25.0)
	}
	for _, p := range l.Flowers {
		assert.False(t, math.Abs(p.X()) < 10 && math.Abs(p.Z()) < 10, "flower at %v", p)
	}
}

func TestLayoutIsSeeded(t *testing.T) {
	assert.Equal(t, newLayout(7).Pines, newLayout(7).Pines)
}

func TestBlueprint(t *testing.T) {
	l := newLayout(1)
	scene, err := l.Blueprint()
	require.NoError(t, err)

	for i := 0; i < pinCount; i++ {
		require.NotNil(t, scene.Object(pinName(i)))
	}
	assert.Equal(t, mgl64.Vec3{12, 0.5, 3}, scene.Object(pinName(5)).Position)
	require.NotNil(t, scene.Object(brickName(15)))
	assert.InDelta(t, -10+3*1.6, scene.Object(brickName(15)).Position.X(), 1e-9)
	assert.InDelta(t, 0.5+3*1.1, scene.Object(brickName(15)).Position.Y(), 1e-9)
	assert.Equal(t, mgl64.Vec3{3, 3, 3}, scene.Object(rockName(2)).Scale)
	require.NotNil(t, scene.Object(pineName(len(l.Pines)-1)))
	require.NotNil(t, scene.Object(Player))

	// Pines share one mesh.
	assert.Equal(t, "pine", scene.Object(pineName(0)).Mesh)
	assert.Len(t, scene.Meshes["pine"].Parts, 2)

	assert.Equal(t, 0.5, scene.Camera.Limits.LowerBeta)
	assert.Equal(t, 1.3, scene.Camera.Limits.UpperBeta)
	assert.Equal(t, 20.0, scene.Camera.Limits.UpperRadius)
}

func TestSimBodiesMatchObjects(t *testing.T) {
	l := newLayout(1)
	scene, err := l.Blueprint()
	require.NoError(t, err)
	sim, err := NewSim(l)
	require.NoError(t, err)

	// 6 pins, the ball and 16 bricks.
	assert.Len(t, sim.Movers(), 23)
	for _, body := range sim.Movers() {
		obj := scene.Object(body.Name)
		require.NotNil(t, obj, body.Name)
		assert.Equal(t, obj.Position, body.Position)
	}
}

func TestCharacterWalksForward(t *testing.T) {
	sim, err := NewSim(newLayout(1))
	require.NoError(t, err)
	keys := keyboard.New()
	forward, right := mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}

	for i := 0; i < 30; i++ {
		_, err := sim.Step(keys, forward, right, dt)
		require.NoError(t, err)
	}
	assert.InDelta(t, 0, sim.Character.Position.Z(), 1e-6)
	assert.Equal(t, anim.RangeIdle, sim.Animation.Current().Name)

	keys.Press(keyboard.KeyW)
	for i := 0; i < 60; i++ {
		_, err := sim.Step(keys, forward, right, dt)
		require.NoError(t, err)
	}
	assert.InDelta(t, 5, sim.Character.Position.Z(), 0.3)
	assert.InDelta(t, characterHeight/2, sim.Character.Position.Y(), 0.1)
	assert.Equal(t, anim.RangeWalk, sim.Animation.Current().Name)

	// Feet on the floor, facing the way it walked.
	root := sim.CharacterTransform()
	assert.InDelta(t, 0, root.Position.Y(), 0.1)
	facing := root.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	assert.Greater(t, facing.Z(), 0.99)

	keys.Release(keyboard.KeyW)
	_, err = sim.Step(keys, forward, right, dt)
	require.NoError(t, err)
	assert.Equal(t, anim.RangeIdle, sim.Animation.Current().Name)
}

func TestBallRollsOffTheRamp(t *testing.T) {
	sim, err := NewSim(newLayout(1))
	require.NoError(t, err)
	ball := sim.World.Body("ball")
	require.NotNil(t, ball)

	for i := 0; i < 120; i++ {
		_, err := sim.Step(keyboard.New(), mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, dt)
		require.NoError(t, err)
	}
	assert.Less(t, ball.Position.Z(), 13.0)
	assert.Greater(t, ball.Position.Y(), 0.0)
}
