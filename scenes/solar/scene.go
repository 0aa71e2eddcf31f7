package solar

import (
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/orbit"
	"github.com/scenery3d/scenery/scenes/stage"
)

// Entry registers the solar system.
var Entry = scenery.Entry{
	Name:      Name,
	Title:     "Solar system",
	Blueprint: Blueprint,
	New:       func() scenery.Scene { return &Scene{} },
}

// Scene is the running solar system.
type Scene struct {
	stage.Stage
	system *orbit.System
}

func (s *Scene) Init(ctx *scenery.Context) error {
	s.system = NewSystem(ctx.Config, ctx.Rand)
	bp, err := Describe(ctx.Config, s.system, ctx.Rand)
	if err != nil {
		return err
	}
	return s.Build(ctx, bp)
}

func (s *Scene) Update(dt float64) error {
	s.system.Step(dt)
	s.FollowOrbits(s.system)
	s.Tick(dt)
	return nil
}
