package showcase

import (
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/scenes/stage"
)

// Entry registers the showcase.
var Entry = scenery.Entry{
	Name:      Name,
	Title:     "Meshes and lights",
	Blueprint: Blueprint,
	New:       func() scenery.Scene { return &Scene{} },
}

// Scene is the running showcase.
type Scene struct {
	stage.Stage
	motion *Motion
}

func (s *Scene) Init(ctx *scenery.Context) error {
	bp, err := Blueprint(ctx.Config, ctx.Rand)
	if err != nil {
		return err
	}
	if err := s.Build(ctx, bp); err != nil {
		return err
	}
	s.motion = NewMotion()
	return nil
}

func (s *Scene) Update(dt float64) error {
	rot, pos := s.motion.Step()
	s.Instance.SetRotation(Box, rot)
	s.Instance.SetLightPosition(PointLight, pos)
	s.Tick(dt)
	return nil
}
