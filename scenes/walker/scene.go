package walker

import (
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/keyboard"
	"github.com/scenery3d/scenery/scenes/stage"
)

// Entry registers the walker.
var Entry = scenery.Entry{
	Name:      Name,
	Title:     "Character walker",
	Blueprint: Blueprint,
	New:       func() scenery.Scene { return &Scene{} },
}

// Scene is the running walker.
type Scene struct {
	stage.Stage
	keys      *keyboard.State
	character *Character
}

func (s *Scene) Init(ctx *scenery.Context) error {
	bp, err := Blueprint(ctx.Config, ctx.Rand)
	if err != nil {
		return err
	}
	if err := s.Build(ctx, bp); err != nil {
		return err
	}
	s.character, err = NewCharacter()
	if err != nil {
		return err
	}
	s.keys = ctx.Keys
	return nil
}

func (s *Scene) Update(dt float64) error {
	root, pose, err := s.character.Update(s.keys, dt)
	if err != nil {
		return err
	}
	s.Instance.SetTransform(Player, root)
	s.Instance.ApplyPose(Player, pose)
	s.Tick(dt)
	return nil
}
