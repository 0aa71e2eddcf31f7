package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func ground() *Body {
	return NewBody("ground", Box(60, 1, 60), mgl64.Vec3{0, -0.5, 0}, 0)
}

func run(world *World, steps int) {
	for i := 0; i < steps; i++ {
		world.Step(dt)
	}
}

func TestSphereComesToRest(t *testing.T) {
	world := NewWorld()
	ball := NewBody("ball", Sphere(0.5), mgl64.Vec3{0, 5, 0}, 1)
	floor := ground()
	world.Add(floor, ball)

	run(world, 300)

	assert.InDelta(t, 0.5, ball.Position.Y(), 0.05)
	assert.Less(t, ball.Velocity.Len(), 0.2)
	assert.Equal(t, mgl64.Vec3{0, -0.5, 0}, floor.Position)
}

func TestRestitutionBounces(t *testing.T) {
	world := NewWorld()
	ball := NewBody("ball", Sphere(0.5), mgl64.Vec3{0, 3, 0}, 1)
	ball.Restitution = 0.8
	world.Add(ground(), ball)

	bounced := false
	for i := 0; i < 120; i++ {
		world.Step(dt)
		if ball.Velocity.Y() > 1 {
			bounced = true
			break
		}
	}
	assert.True(t, bounced)
}

func TestBallRollsDownRamp(t *testing.T) {
	world := NewWorld()
	ramp := NewBody("ramp", Box(6, 0.2, 12), mgl64.Vec3{10, 3, 10}, 0)
	ramp.Rotation = mgl64.QuatRotate(-math.Pi/6, mgl64.Vec3{1, 0, 0})
	ramp.Friction = 0.2

	ball := NewBody("ball", Sphere(0.75), mgl64.Vec3{10, 7, 13}, 5)
	world.Add(ground(), ramp, ball)

	run(world, 120)

	assert.Less(t, ball.Position.Z(), 12.0)
	assert.Less(t, ball.Velocity.Z(), 0.0)
	// Still on the ramp rather than through it.
	assert.Greater(t, ball.Position.Y(), 1.0)
}

func TestWallStopsCapsule(t *testing.T) {
	world := NewWorld()
	wall := NewBody("wall", Box(1, 4, 10), mgl64.Vec3{5, 2, 0}, 0)
	player := NewBody("player", Capsule(0.5, 2), mgl64.Vec3{0, 1, 0}, 1)
	player.Friction = 0
	world.Add(ground(), wall, player)

	for i := 0; i < 120; i++ {
		player.SetLinearVelocity(mgl64.Vec3{5, -2, 0})
		world.Step(dt)
	}

	assert.InDelta(t, 4.0, player.Position.X(), 0.1)
	assert.InDelta(t, 1.0, player.Position.Y(), 0.1)
	assert.Equal(t, mgl64.Vec3{5, 2, 0}, wall.Position)
}

func TestCollideSpheres(t *testing.T) {
	a := NewBody("a", Sphere(1), mgl64.Vec3{0, 0, 0}, 1)
	b := NewBody("b", Sphere(1), mgl64.Vec3{1.5, 0, 0}, 1)

	contact, ok := Collide(a, b)
	require.True(t, ok)
	assert.True(t, contact.Normal.ApproxEqual(mgl64.Vec3{-1, 0, 0}))
	assert.InDelta(t, 0.5, contact.Depth, 1e-9)

	b.Position = mgl64.Vec3{3, 0, 0}
	_, ok = Collide(a, b)
	assert.False(t, ok)
}

func TestCollideBoxes(t *testing.T) {
	top := NewBody("top", Box(1, 1, 1), mgl64.Vec3{0, 0.9, 0}, 1)
	bottom := NewBody("bottom", Box(1, 1, 1), mgl64.Vec3{0, 0, 0}, 1)

	contact, ok := Collide(top, bottom)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, contact.Normal)
	assert.InDelta(t, 0.1, contact.Depth, 1e-9)

	// Swapping the pair flips the normal.
	contact, ok = Collide(bottom, top)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, -1, 0}, contact.Normal)
}

func TestCapsuleAgainstSphere(t *testing.T) {
	capsule := NewBody("capsule", Capsule(0.5, 2), mgl64.Vec3{0, 1, 0}, 1)
	ball := NewBody("ball", Sphere(0.5), mgl64.Vec3{0.9, 1.4, 0}, 1)

	contact, ok := Collide(ball, capsule)
	require.True(t, ok)
	// The closest point on the capsule's segment is level with the ball.
	assert.True(t, contact.Normal.ApproxEqual(mgl64.Vec3{1, 0, 0}))
	assert.InDelta(t, 0.1, contact.Depth, 1e-9)
}

func TestCylinderIsCapsule(t *testing.T) {
	pin := Cylinder(0.5, 2)
	assert.Equal(t, ShapeCapsule, pin.Kind)
	assert.Equal(t, 0.25, pin.Radius)
	assert.Equal(t, 0.75, pin.HalfSegment)
}

func TestWorldBookkeeping(t *testing.T) {
	world := NewWorld()
	ball := NewBody("ball", Sphere(1), mgl64.Vec3{}, 1)
	world.Add(ball)
	assert.Same(t, ball, world.Body("ball"))
	assert.Nil(t, world.Body("missing"))

	world.Remove(ball)
	assert.Empty(t, world.Bodies())
}

func BenchmarkPlaygroundStep(b *testing.B) {
	world := NewWorld()
	world.Add(ground())
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			world.Add(NewBody("brick", Box(1.5, 1, 1), mgl64.Vec3{-10 + float64(x)*1.6, 0.5 + float64(y)*1.1, 5}, 0.5))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Step(dt)
	}
}
