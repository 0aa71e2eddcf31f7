package walker

import (
	"github.com/scenery3d/scenery/anim"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/keyboard"
	"github.com/scenery3d/scenery/locomotion"
)

// Character moves with a locomotion.Walker, playing the walk range while it moves and
// the idle range otherwise.
type Character struct {
	Walker *locomotion.Walker
	Player *anim.Player

	walking bool
}

// NewCharacter returns an idle character at the origin.
func NewCharacter() (*Character, error) {
	player := anim.NewPlayer(anim.NewHumanoidClip())
	player.EnableBlending = true
	if err := player.Play(anim.RangeIdle, true); err != nil {
		return nil, err
	}
	return &Character{Walker: locomotion.NewWalker(), Player: player}, nil
}

// Walking reports whether the character moved on its last update.
func (c *Character) Walking() bool {
	return c.walking
}

// Update reads keys and returns the character's root transform and pose.
func (c *Character) Update(keys *keyboard.State, dt float64) (blueprint.Transform, anim.Pose, error) {
	moved := c.Walker.Update(keys)
	if moved != c.walking {
		name := anim.RangeIdle
		if moved {
			name = anim.RangeWalk
		}
		if err := c.Player.Play(name, true); err != nil {
			return blueprint.Transform{}, nil, err
		}
		c.walking = moved
	}

	t := blueprint.Identity()
	t.Position = c.Walker.Position
	t.Rotation = c.Walker.Rotation()
	return t, c.Player.Update(dt), nil
}
