// Package particle simulates point emitters: particles spawn in a box, fly along a random
// direction under gravity and fade towards a dead colour over their lifetime.
package particle

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is a single live particle.
type Particle struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Color    mgl64.Vec4
	Size     float64
	Age      float64
	Lifetime float64

	startColor mgl64.Vec4
}

// Life returns how far through its lifetime the particle is, from 0 to 1.
func (part *Particle) Life() float64 {
	if part.Lifetime <= 0 {
		return 1
	}
	return part.Age / part.Lifetime
}

// Emitter spawns and updates particles.
type Emitter struct {
	// Position is the emitter's origin; EmitBox is relative to it.
	Position mgl64.Vec3
	EmitBox  VectorRange
	// Each particle's direction is drawn per axis between Direction1 and Direction2.
	Direction1, Direction2 mgl64.Vec3
	EmitPower              NumberRange

	// New particles start at a random mix of Color1 and Color2 and fade to ColorDead.
	Color1, Color2, ColorDead mgl64.Vec4

	Size     NumberRange
	Lifetime NumberRange
	// EmitRate is particles per second.
	EmitRate float64
	Gravity  mgl64.Vec3
	// Capacity caps the number of live particles.
	Capacity int

	rng       *rand.Rand
	particles []Particle
	pending   float64
	running   bool
	emitted   int
}

// NewEmitter returns a stopped emitter with the given capacity. rng drives every random
// choice the emitter makes.
func NewEmitter(capacity int, rng *rand.Rand) *Emitter {
	return &Emitter{
		Capacity:   capacity,
		EmitPower:  NumberRange{1, 1},
		Size:       NumberRange{1, 1},
		Lifetime:   NumberRange{1, 1},
		EmitRate:   10,
		Color1:     mgl64.Vec4{1, 1, 1, 1},
		Color2:     mgl64.Vec4{1, 1, 1, 1},
		Direction1: mgl64.Vec3{0, 1, 0},
		Direction2: mgl64.Vec3{0, 1, 0},
		rng:        rng,
		particles:  make([]Particle, 0, capacity),
	}
}

// Start begins emitting.
func (emitter *Emitter) Start() {
	emitter.running = true
}

// Stop stops emitting; live particles carry on until they die.
func (emitter *Emitter) Stop() {
	emitter.running = false
	emitter.pending = 0
}

// Running returns whether the emitter is emitting.
func (emitter *Emitter) Running() bool {
	return emitter.running
}

// Particles returns the live particles. The slice is reused by Update.
func (emitter *Emitter) Particles() []Particle {
	return emitter.particles
}

// Emitted returns how many particles have been spawned in total.
func (emitter *Emitter) Emitted() int {
	return emitter.emitted
}

// Reset kills every particle.
func (emitter *Emitter) Reset() {
	emitter.particles = emitter.particles[:0]
	emitter.pending = 0
}

// Update ages, moves and recolours live particles, removes dead ones and spawns new ones.
func (emitter *Emitter) Update(dt float64) {
	live := emitter.particles[:0]
	for _, part := range emitter.particles {
		part.Age += dt
		if part.Age >= part.Lifetime {
			continue
		}
		part.Velocity = part.Velocity.Add(emitter.Gravity.Mul(dt))
		part.Position = part.Position.Add(part.Velocity.Mul(dt))
		part.Color = LerpColor(part.startColor, emitter.ColorDead, part.Life())
		live = append(live, part)
	}
	emitter.particles = live

	if !emitter.running {
		return
	}

	emitter.pending += emitter.EmitRate * dt
	count := int(emitter.pending)
	emitter.pending -= float64(count)

	for i := 0; i < count && len(emitter.particles) < emitter.Capacity; i++ {
		emitter.spawn()
	}
}

func (emitter *Emitter) spawn() {
	rng := emitter.rng

	direction := VectorRange{Min: emitter.Direction1, Max: emitter.Direction2}.Value(rng)
	start := LerpColor(emitter.Color1, emitter.Color2, rng.Float64())

	emitter.particles = append(emitter.particles, Particle{
		Position:   emitter.Position.Add(emitter.EmitBox.Value(rng)),
		Velocity:   direction.Mul(emitter.EmitPower.Value(rng)),
		Color:      start,
		startColor: start,
		Size:       emitter.Size.Value(rng),
		Lifetime:   emitter.Lifetime.Value(rng),
	})
	emitter.emitted++
}
