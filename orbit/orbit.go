// Package orbit moves bodies around circular orbits on the XZ plane. A body may orbit
// another body, in which case it follows its parent around.
package orbit

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is one orbiting body. Its angle at time t is Phase + Speed*t radians.
type Body struct {
	Name   string
	Parent string // empty orbits the origin
	Radius float64
	Speed  float64 // radians per second
	Phase  float64
	Height float64 // fixed Y
	Spin   float64 // radians per second about the body's own Y axis
}

type state struct {
	body  Body
	angle float64
	spin  float64
}

// System holds a set of bodies and steps them together.
type System struct {
	// TimeScale multiplies every Step's dt.
	TimeScale float64

	order  []string
	bodies map[string]*state
	clock  float64
}

// NewSystem returns an empty system at time zero.
func NewSystem() *System {
	return &System{
		TimeScale: 1,
		bodies:    map[string]*state{},
	}
}

// Add adds a body. Parents must be added before their children.
func (sys *System) Add(body Body) error {
	if body.Name == "" {
		return fmt.Errorf("orbit: body has no name")
	}
	if _, exists := sys.bodies[body.Name]; exists {
		return fmt.Errorf("orbit: duplicate body %q", body.Name)
	}
	if body.Parent != "" {
		if _, exists := sys.bodies[body.Parent]; !exists {
			return fmt.Errorf("orbit: body %q orbits unknown parent %q", body.Name, body.Parent)
		}
	}
	sys.bodies[body.Name] = &state{body: body, angle: body.Phase}
	sys.order = append(sys.order, body.Name)
	return nil
}

// MustAdd is Add for fixed layouts that are known to be valid.
func (sys *System) MustAdd(bodies ...Body) *System {
	for _, b := range bodies {
		if err := sys.Add(b); err != nil {
			panic(err)
		}
	}
	return sys
}

// Names returns the bodies in the order they were added.
func (sys *System) Names() []string {
	return sys.order
}

// Body returns the named body's definition.
func (sys *System) Body(name string) (Body, bool) {
	s, ok := sys.bodies[name]
	if !ok {
		return Body{}, false
	}
	return s.body, true
}

// Clock returns the system's elapsed (scaled) time.
func (sys *System) Clock() float64 {
	return sys.clock
}

// Step advances every body by dt seconds.
func (sys *System) Step(dt float64) {
	dt *= sys.TimeScale
	sys.clock += dt
	for _, name := range sys.order {
		s := sys.bodies[name]
		s.angle += s.body.Speed * dt
		s.spin += s.body.Spin * dt
	}
}

// Angle returns the named body's orbital angle.
func (sys *System) Angle(name string) float64 {
	if s, ok := sys.bodies[name]; ok {
		return s.angle
	}
	return 0
}

// Position returns the named body's world position, or the origin if it doesn't exist.
func (sys *System) Position(name string) mgl64.Vec3 {
	s, ok := sys.bodies[name]
	if !ok {
		return mgl64.Vec3{}
	}
	center := mgl64.Vec3{}
	if s.body.Parent != "" {
		center = sys.Position(s.body.Parent)
	}
	sin, cos := math.Sincos(s.angle)
	return mgl64.Vec3{
		center.X() + cos*s.body.Radius,
		s.body.Height,
		center.Z() + sin*s.body.Radius,
	}
}

// SpinAngle returns how far the named body has turned about its own axis.
func (sys *System) SpinAngle(name string) float64 {
	if s, ok := sys.bodies[name]; ok {
		return s.spin
	}
	return 0
}
