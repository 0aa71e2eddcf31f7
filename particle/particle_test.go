package particle

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fountain(capacity int) *Emitter {
	e := NewEmitter(capacity, rand.New(rand.NewSource(1)))
	e.Position = mgl64.Vec3{3.5, 1, 4}
	e.EmitBox = VectorRange{Min: mgl64.Vec3{-0.05, 0, -0.05}, Max: mgl64.Vec3{0.05, 0, 0.05}}
	e.Color1 = mgl64.Vec4{0.9, 0.9, 1, 1}
	e.Color2 = mgl64.Vec4{0.2, 0.5, 1, 1}
	e.ColorDead = mgl64.Vec4{0, 0, 0.2, 0}
	e.Size = NumberRange{0.05, 0.2}
	e.Lifetime = NumberRange{0.5, 1.5}
	e.EmitRate = 1000
	e.Gravity = mgl64.Vec3{0, -9.81, 0}
	e.Direction1 = mgl64.Vec3{-1, 4, 1}
	e.Direction2 = mgl64.Vec3{1, 4, -1}
	return e
}

func TestEmitsAtRate(t *testing.T) {
	e := fountain(2000)
	e.Start()

	// 0.1 s at 1000/s.
	for i := 0; i < 6; i++ {
		e.Update(1.0 / 60)
	}
	assert.InDelta(t, 100, e.Emitted(), 1)
	assert.Len(t, e.Particles(), e.Emitted())

	for _, p := range e.Particles() {
		assert.InDelta(t, 3.5, p.Position.X(), 0.5)
		assert.GreaterOrEqual(t, p.Size, 0.05)
		assert.LessOrEqual(t, p.Size, 0.2)
		assert.GreaterOrEqual(t, p.Lifetime, 0.5)
		assert.LessOrEqual(t, p.Lifetime, 1.5)
	}
}

func TestNeverExceedsCapacity(t *testing.T) {
	e := fountain(50)
	e.Start()
	for i := 0; i < 120; i++ {
		e.Update(1.0 / 60)
		require.LessOrEqual(t, len(e.Particles()), 50)
	}
	assert.Len(t, e.Particles(), 50)
}

func TestParticlesDieAndFade(t *testing.T) {
	e := fountain(2000)
	e.Start()
	e.Update(1.0 / 60)
	e.Stop()

	require.NotEmpty(t, e.Particles())
	for _, p := range e.Particles() {
		// Particles leave the top of the fountain moving up.
		assert.Greater(t, p.Velocity.Y(), 0.0)
	}

	for i := 0; i < 30; i++ {
		e.Update(1.0 / 60)
	}
	for _, p := range e.Particles() {
		assert.Less(t, p.Color.W(), 1.0)
	}

	// Everything is dead after the longest lifetime.
	for i := 0; i < 90; i++ {
		e.Update(1.0 / 60)
	}
	assert.Empty(t, e.Particles())
	assert.False(t, e.Running())
}

func TestGravityPullsDown(t *testing.T) {
	e := fountain(10)
	e.EmitRate = 100
	e.Lifetime = NumberRange{10, 10}
	e.Start()
	e.Update(1.0 / 60)
	e.Stop()
	require.Len(t, e.Particles(), 1)

	for i := 0; i < 60; i++ {
		e.Update(1.0 / 60)
	}
	// Launched upwards at 4 units/s, after one second gravity has turned it around.
	assert.Less(t, e.Particles()[0].Velocity.Y(), 0.0)
}

func TestRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := NumberRange{2, 3}
	for i := 0; i < 100; i++ {
		v := r.Value(rng)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 3.0)
	}

	uniform := VectorRange{Uniform: true, Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 2, 3}}
	v := uniform.Value(rng)
	assert.InDelta(t, v.X()*2, v.Y(), 1e-9)
	assert.InDelta(t, v.X()*3, v.Z(), 1e-9)

	assert.Equal(t, mgl64.Vec4{0.5, 0.5, 0.5, 0.5}, LerpColor(mgl64.Vec4{}, mgl64.Vec4{1, 1, 1, 1}, 0.5))
}
