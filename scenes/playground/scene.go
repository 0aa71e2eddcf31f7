package playground

import (
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/keyboard"
	"github.com/scenery3d/scenery/scenes/stage"
)

// Entry registers the playground.
var Entry = scenery.Entry{
	Name:      Name,
	Title:     "Physics playground",
	Blueprint: Blueprint,
	New:       func() scenery.Scene { return &Scene{} },
}

// Scene is the running playground.
type Scene struct {
	stage.Stage
	keys *keyboard.State
	sim  *Sim
}

func (s *Scene) Init(ctx *scenery.Context) error {
	l := NewLayout(ctx.Config, ctx.Rand)
	bp, err := l.Blueprint()
	if err != nil {
		return err
	}
	if err := s.Build(ctx, bp); err != nil {
		return err
	}
	s.sim, err = NewSim(l)
	if err != nil {
		return err
	}
	s.keys = ctx.Keys
	s.Instance.Arc.LockedTarget = s.sim.Target
	return nil
}

func (s *Scene) Update(dt float64) error {
	arc := s.Instance.Arc
	pose, err := s.sim.Step(s.keys, arc.Forward(), arc.Right(), dt)
	if err != nil {
		return err
	}
	for _, body := range s.sim.Movers() {
		s.Instance.SetPosition(body.Name, body.Position)
	}
	s.Instance.SetTransform(Player, s.sim.CharacterTransform())
	s.Instance.ApplyPose(Player, pose)
	s.Tick(dt)
	return nil
}
