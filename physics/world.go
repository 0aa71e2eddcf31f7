package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Defaults used by NewWorld and NewBody.
const (
	DefaultIterations  = 8
	DefaultFriction    = 0.5
	DefaultRestitution = 0.0

	// Contacts closing slower than this don't bounce, so resting bodies settle.
	restingSpeed = 1.0
	// Positional correction.
	correctionPercent = 0.8
	correctionSlop    = 0.005
)

// Gravity is Earth gravity along -Y.
var Gravity = mgl64.Vec3{0, -9.81, 0}

// Body is a rigid body. A Mass of 0 makes it static.
type Body struct {
	Name     string
	Shape    Shape
	Position mgl64.Vec3
	// Rotation orients the shape; dynamic bodies keep whatever rotation they started with.
	Rotation    mgl64.Quat
	Velocity    mgl64.Vec3
	Mass        float64
	Friction    float64
	Restitution float64
}

// NewBody returns a body with the default friction and restitution.
func NewBody(name string, shape Shape, position mgl64.Vec3, mass float64) *Body {
	return &Body{
		Name:        name,
		Shape:       shape,
		Position:    position,
		Rotation:    mgl64.QuatIdent(),
		Mass:        mass,
		Friction:    DefaultFriction,
		Restitution: DefaultRestitution,
	}
}

// Static returns whether the body is immovable.
func (body *Body) Static() bool {
	return body.Mass <= 0
}

func (body *Body) inverseMass() float64 {
	if body.Static() {
		return 0
	}
	return 1 / body.Mass
}

// SetLinearVelocity replaces the body's velocity.
func (body *Body) SetLinearVelocity(v mgl64.Vec3) {
	body.Velocity = v
}

// LinearVelocity returns the body's velocity.
func (body *Body) LinearVelocity() mgl64.Vec3 {
	return body.Velocity
}

func (body *Body) axisAligned() bool {
	return math.Abs(body.Rotation.W) > 1-1e-9
}

// segment returns the shape's core segment in world space; spheres and boxes collapse to
// their centre.
func (body *Body) segment() (mgl64.Vec3, mgl64.Vec3) {
	if body.Shape.Kind != ShapeCapsule || body.Shape.HalfSegment == 0 {
		return body.Position, body.Position
	}
	axis := body.Rotation.Rotate(mgl64.Vec3{0, body.Shape.HalfSegment, 0})
	return body.Position.Sub(axis), body.Position.Add(axis)
}

func (body *Body) closestPointOnBox(point mgl64.Vec3) mgl64.Vec3 {
	local := body.Rotation.Conjugate().Rotate(point.Sub(body.Position))
	half := body.Shape.HalfExtents
	for i := 0; i < 3; i++ {
		local[i] = mgl64.Clamp(local[i], -half[i], half[i])
	}
	return body.Position.Add(body.Rotation.Rotate(local))
}

// World steps a set of bodies.
type World struct {
	Gravity    mgl64.Vec3
	Iterations int

	bodies []*Body
	// contacts from the last step, reused between steps.
	contacts []Contact
}

// NewWorld returns an empty world with Earth gravity.
func NewWorld() *World {
	return &World{
		Gravity:    Gravity,
		Iterations: DefaultIterations,
	}
}

// Add adds bodies to the world.
func (world *World) Add(bodies ...*Body) {
	world.bodies = append(world.bodies, bodies...)
}

// Remove takes a body out of the world.
func (world *World) Remove(body *Body) {
	for i, b := range world.bodies {
		if b == body {
			world.bodies = append(world.bodies[:i], world.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns the world's bodies.
func (world *World) Bodies() []*Body {
	return world.bodies
}

// Body finds a body by name.
func (world *World) Body(name string) *Body {
	for _, b := range world.bodies {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Contacts returns the contacts found during the last Step.
func (world *World) Contacts() []Contact {
	return world.contacts
}

// Step advances the world by dt seconds.
func (world *World) Step(dt float64) {
	for _, body := range world.bodies {
		if body.Static() {
			continue
		}
		body.Velocity = body.Velocity.Add(world.Gravity.Mul(dt))
		body.Position = body.Position.Add(body.Velocity.Mul(dt))
	}

	iterations := world.Iterations
	if iterations < 1 {
		iterations = 1
	}

	world.contacts = world.contacts[:0]

	for iter := 0; iter < iterations; iter++ {
		for i := 0; i < len(world.bodies); i++ {
			a := world.bodies[i]
			for j := i + 1; j < len(world.bodies); j++ {
				b := world.bodies[j]
				if a.Static() && b.Static() {
					continue
				}
				if a.Position.Sub(b.Position).Len() > a.Shape.BoundingRadius()+b.Shape.BoundingRadius() {
					continue
				}
				contact, ok := Collide(a, b)
				if !ok {
					continue
				}
				resolve(contact)
				if iter == 0 {
					world.contacts = append(world.contacts, contact)
				}
			}
		}
	}
}

func resolve(c Contact) {
	invA, invB := c.A.inverseMass(), c.B.inverseMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	correction := c.Normal.Mul(math.Max(c.Depth-correctionSlop, 0) / invSum * correctionPercent)
	c.A.Position = c.A.Position.Add(correction.Mul(invA))
	c.B.Position = c.B.Position.Sub(correction.Mul(invB))

	relative := c.A.Velocity.Sub(c.B.Velocity)
	closing := relative.Dot(c.Normal)
	if closing >= 0 {
		return
	}

	restitution := 0.0
	if -closing > restingSpeed {
		restitution = math.Max(c.A.Restitution, c.B.Restitution)
	}

	j := -(1 + restitution) * closing / invSum
	impulse := c.Normal.Mul(j)
	c.A.Velocity = c.A.Velocity.Add(impulse.Mul(invA))
	c.B.Velocity = c.B.Velocity.Sub(impulse.Mul(invB))

	// Coulomb friction along the sliding direction, capped by the normal impulse.
	relative = c.A.Velocity.Sub(c.B.Velocity)
	tangent := relative.Sub(c.Normal.Mul(relative.Dot(c.Normal)))
	if tangent.Len() < 1e-9 {
		return
	}
	tangent = tangent.Normalize()

	mu := math.Sqrt(c.A.Friction * c.B.Friction)
	jt := mgl64.Clamp(-relative.Dot(tangent)/invSum, -mu*j, mu*j)
	frictionImpulse := tangent.Mul(jt)
	c.A.Velocity = c.A.Velocity.Add(frictionImpulse.Mul(invA))
	c.B.Velocity = c.B.Velocity.Sub(frictionImpulse.Mul(invB))
}
