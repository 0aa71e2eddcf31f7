package village

import (
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/particle"
	"github.com/scenery3d/scenery/scenes/stage"
)

// Entry registers the village.
var Entry = scenery.Entry{
	Name:      Name,
	Title:     "Village",
	Blueprint: Blueprint,
	New:       func() scenery.Scene { return &Scene{} },
}

// Scene is the running village.
type Scene struct {
	stage.Stage
	water *particle.Emitter
}

func (s *Scene) Init(ctx *scenery.Context) error {
	bp, err := Describe(ctx.Config, ctx.Rand, ctx.Textures)
	if err != nil {
		return err
	}
	if err := s.Build(ctx, bp); err != nil {
		return err
	}
	s.water = NewFountain(ctx.Config, ctx.Rand)
	_, err = s.Instance.AddParticles("fountainWater", s.water, "flare")
	return err
}

func (s *Scene) Update(dt float64) error {
	s.water.Update(dt)
	s.Tick(dt)
	return nil
}
