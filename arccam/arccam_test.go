package arccam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPositionOrbitsTarget(t *testing.T) {
	target := mgl64.Vec3{0, 4, 3.5}
	cam := New(-math.Pi/2, math.Pi/2.5, 25, target)

	pos := cam.Position()
	assert.InDelta(t, 25, pos.Sub(target).Len(), 1e-9)
	// alpha = -pi/2 puts the camera on the -Z side of the target.
	assert.InDelta(t, 0, pos.X()-target.X(), 1e-9)
	assert.Less(t, pos.Z(), target.Z())
	assert.Greater(t, pos.Y(), target.Y())
}

func TestForwardAndRightAreOrthonormal(t *testing.T) {
	cam := New(0.7, 1.1, 12, mgl64.Vec3{1, 2, 3})
	f := cam.Forward()
	r := cam.Right()
	assert.InDelta(t, 1, f.Len(), 1e-9)
	assert.InDelta(t, 1, r.Len(), 1e-9)
	assert.InDelta(t, 0, f.Dot(r), 1e-9)
	assert.InDelta(t, 0, r.Y(), 1e-9)
}

func TestRightIsScreenRight(t *testing.T) {
	// Looking along +Z from the -Z side, screen right is +X.
	cam := New(-math.Pi/2, math.Pi/2.5, 15, mgl64.Vec3{})
	assert.True(t, cam.Right().ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9), "got %v", cam.Right())

	// From the +X side looking back along -X, screen right is +Z.
	cam = New(0, math.Pi/2, 15, mgl64.Vec3{})
	assert.True(t, cam.Right().ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9), "got %v", cam.Right())
}

func TestLimitsClamp(t *testing.T) {
	cam := New(-math.Pi/2, math.Pi/2.5, 12, mgl64.Vec3{})
	cam.SetLimits(Limits{
		LowerAlpha: math.Inf(-1), UpperAlpha: math.Inf(1),
		LowerBeta: 0.5, UpperBeta: 1.3,
		LowerRadius: 5, UpperRadius: 20,
	})

	cam.Rotate(0, 10)
	assert.Equal(t, 1.3, cam.Beta)
	cam.Rotate(0, -10)
	assert.Equal(t, 0.5, cam.Beta)
}

func TestPoleGuard(t *testing.T) {
	cam := New(0, 0, 10, mgl64.Vec3{})
	assert.Greater(t, cam.Beta, 0.0)
	cam.Rotate(0, 100)
	assert.Less(t, cam.Beta, math.Pi)
}

func TestZoomEasesAndClamps(t *testing.T) {
	cam := New(0, 1, 10, mgl64.Vec3{})
	cam.SetLimits(Limits{
		LowerAlpha: math.Inf(-1), UpperAlpha: math.Inf(1),
		LowerBeta: math.Inf(-1), UpperBeta: math.Inf(1),
		LowerRadius: 5, UpperRadius: 20,
	})

	cam.Zoom(100)
	assert.True(t, cam.Zooming())

	cam.Update(ZoomDuration / 2)
	assert.Greater(t, cam.Radius, 10.0)
	assert.Less(t, cam.Radius, 20.0)

	for i := 0; i < 10; i++ {
		cam.Update(1.0 / 60)
	}
	cam.Update(ZoomDuration)
	assert.False(t, cam.Zooming())
	assert.InDelta(t, 20, cam.Radius, 1e-4)
}

func TestLockedTarget(t *testing.T) {
	cam := New(0, 1, 10, mgl64.Vec3{})
	player := mgl64.Vec3{3, 1, -2}
	cam.LockedTarget = func() mgl64.Vec3 { return player }

	cam.Update(1.0 / 60)
	assert.Equal(t, player, cam.Target)
	assert.InDelta(t, 10, cam.Position().Sub(player).Len(), 1e-9)
}
