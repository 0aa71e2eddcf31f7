package particle

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// NumberRange is a range of values a random number is drawn from.
type NumberRange struct {
	Min, Max float64
}

// Value returns a random value within the range.
func (ran NumberRange) Value(rng *rand.Rand) float64 {
	return ran.Min + (ran.Max-ran.Min)*rng.Float64()
}

// VectorRange is a per-axis range of vectors.
type VectorRange struct {
	// Uniform draws one random number for all three axes rather than one per axis.
	Uniform  bool
	Min, Max mgl64.Vec3
}

// Value returns a random vector within the range.
func (ran VectorRange) Value(rng *rand.Rand) mgl64.Vec3 {
	var out mgl64.Vec3
	t := rng.Float64()
	for i := 0; i < 3; i++ {
		if !ran.Uniform && i > 0 {
			t = rng.Float64()
		}
		out[i] = ran.Min[i] + (ran.Max[i]-ran.Min[i])*t
	}
	return out
}

// LerpColor mixes two RGBA colours.
func LerpColor(a, b mgl64.Vec4, t float64) mgl64.Vec4 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}
