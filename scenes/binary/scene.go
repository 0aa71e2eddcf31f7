package binary

import (
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/orbit"
	"github.com/scenery3d/scenery/scenes/stage"
)

// Entry registers the binary system.
var Entry = scenery.Entry{
	Name:      Name,
	Title:     "Binary star system",
	Blueprint: Blueprint,
	New:       func() scenery.Scene { return &Scene{} },
}

// Scene is the running binary system.
type Scene struct {
	stage.Stage
	system *orbit.System
}

func (s *Scene) Init(ctx *scenery.Context) error {
	bp, err := Blueprint(ctx.Config, ctx.Rand)
	if err != nil {
		return err
	}
	if err := s.Build(ctx, bp); err != nil {
		return err
	}
	s.system = NewSystem(ctx.Config.Binary.TimeScale)
	return nil
}

func (s *Scene) Update(dt float64) error {
	s.system.Step(dt)
	s.FollowOrbits(s.system)
	s.Tick(dt)
	return nil
}
