package playground

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/scenery3d/scenery/anim"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/keyboard"
	"github.com/scenery3d/scenery/locomotion"
	"github.com/scenery3d/scenery/physics"
)

// Character capsule.
const (
	characterRadius = 0.3
	characterHeight = 1.8
)

// Sim is the playground's physics world and character.
type Sim struct {
	World      *physics.World
	Character  *physics.Body
	Controller *locomotion.Controller
	Animation  *anim.Player

	movers []*physics.Body
}

// NewSim builds the bodies for l. Each body is named after the blueprint object it moves.
func NewSim(l *Layout) (*Sim, error) {
	world := physics.NewWorld()

	ground := physics.NewBody("ground", physics.Box(groundSize, 1, groundSize), mgl64.Vec3{0, -0.5, 0}, 0)
	ramp := physics.NewBody("ramp", physics.Box(6, 0.2, 12), rampPosition, 0)
	ramp.Rotation = blueprint.Euler(rampAngle, 0, 0)
	ramp.Friction = 0.2
	world.Add(ground, ramp)

	sim := &Sim{World: world}

	for i := 0; i < pinCount; i++ {
		pin := physics.NewBody(pinName(i), physics.Cylinder(0.5, 2), pinPosition(i), 0.5)
		pin.Restitution = 0.5
		sim.addMover(pin)
	}

	ball := physics.NewBody("ball", physics.Sphere(0.75), ballPosition, 5)
	ball.Restitution = 0.5
	ball.Friction = 0.2
	sim.addMover(ball)

	for y := 0; y < brickRows; y++ {
		for x := 0; x < brickColumns; x++ {
			sim.addMover(physics.NewBody(brickName(y*brickColumns+x), physics.Box(1.5, 1, 1), brickPosition(x, y), 0.5))
		}
	}

	// Rocks collide as their scaled bounding boxes.
	low, high := l.Rock.Bounds()
	size := high.Sub(low).Mul(rockScale)
	centre := low.Add(high).Mul(0.5 * rockScale)
	for i, p := range rockSpots {
		rock := physics.NewBody(rockName(i), physics.Box(size.X(), size.Y(), size.Z()), p.Add(centre), 0)
		rock.Friction = 0.8
		world.Add(rock)
	}

	sim.Character = physics.NewBody(Player, physics.Capsule(characterRadius, characterHeight), mgl64.Vec3{0, characterHeight / 2, 0}, 1)
	sim.Character.Friction = 0
	sim.Character.Restitution = 0
	world.Add(sim.Character)

	sim.Controller = locomotion.NewController()
	sim.Animation = anim.NewPlayer(anim.NewHumanoidClip())
	sim.Animation.EnableBlending = true
	sim.Animation.BlendingSpeed = 0.05
	if err := sim.Animation.Play(sim.Controller.Animation(), true); err != nil {
		return nil, err
	}
	return sim, nil
}

func (sim *Sim) addMover(body *physics.Body) {
	sim.World.Add(body)
	sim.movers = append(sim.movers, body)
}

// Movers returns the dynamic props, whose objects follow their bodies.
func (sim *Sim) Movers() []*physics.Body {
	return sim.movers
}

// CharacterTransform returns the character's root transform: feet under the capsule,
// facing the controller's heading.
func (sim *Sim) CharacterTransform() blueprint.Transform {
	t := blueprint.Identity()
	t.Position = sim.Character.Position.Sub(mgl64.Vec3{0, characterHeight / 2, 0})
	t.Rotation = sim.Controller.Rotation()
	return t
}

// Target is where the camera looks: the middle of the character.
func (sim *Sim) Target() mgl64.Vec3 {
	return sim.Character.Position
}

// Step drives the character from keys relative to the camera's forward and right
// vectors, advances the world by dt and returns the character's pose.
func (sim *Sim) Step(keys *keyboard.State, forward, right mgl64.Vec3, dt float64) (anim.Pose, error) {
	frame := sim.Controller.Step(keys, forward, right)
	sim.Character.SetLinearVelocity(frame.Velocity)
	sim.World.Step(dt)

	if frame.Changed {
		if err := sim.Animation.Play(frame.Animation, true); err != nil {
			return nil, err
		}
	}
	return sim.Animation.Update(dt), nil
}
