package anim

import (
	"fmt"
	"math"
)

// Player plays ranges of a clip and blends from whatever it last output into the new range.
type Player struct {
	Clip *Clip

	// EnableBlending makes Begin ease from the last pose rather than snapping.
	EnableBlending bool
	// BlendingSpeed is the weight gained per 60 Hz frame while blending.
	BlendingSpeed float64
	// SpeedRatio scales playback speed.
	SpeedRatio float64
	// OnEnd is called when a non-looping range reaches its end, or a looping range wraps.
	OnEnd func(r Range)

	current  Range
	loop     bool
	playing  bool
	playhead float64 // in frames

	blendFrom Pose
	weight    float64
	last      Pose
}

// NewPlayer returns a player for clip at normal speed with blending off.
func NewPlayer(clip *Clip) *Player {
	return &Player{
		Clip:          clip,
		SpeedRatio:    1,
		BlendingSpeed: 0.05,
		weight:        1,
	}
}

// Begin starts playing r from its first frame. With blending on, the pose the player last
// produced is faded out over the following updates.
func (player *Player) Begin(r Range, loop bool) {
	player.current = r
	player.loop = loop
	player.playing = true
	player.playhead = r.From

	if player.EnableBlending && player.last != nil && player.BlendingSpeed > 0 {
		player.blendFrom = player.last.Clone()
		player.weight = 0
	} else {
		player.blendFrom = nil
		player.weight = 1
	}
}

// Play begins the clip's range called name.
func (player *Player) Play(name string, loop bool) error {
	r, ok := player.Clip.Range(name)
	if !ok {
		return fmt.Errorf("play %q: no such range in clip %q", name, player.Clip.Name)
	}
	player.Begin(r, loop)
	return nil
}

// Stop halts playback; the pose stays where it was.
func (player *Player) Stop() {
	player.playing = false
}

// Playing returns whether a range is playing.
func (player *Player) Playing() bool {
	return player.playing
}

// Current returns the range that is (or was last) playing.
func (player *Player) Current() Range {
	return player.current
}

// Playhead returns the current frame.
func (player *Player) Playhead() float64 {
	return player.playhead
}

// Weight returns the blend weight of the current range, 1 once blending is done.
func (player *Player) Weight() float64 {
	return player.weight
}

// Update samples the clip at the playhead, blends, and then advances the playhead by dt
// seconds. It returns the output pose.
func (player *Player) Update(dt float64) Pose {
	if player.Clip == nil {
		return nil
	}

	pose := player.Clip.Sample(player.playhead)

	if player.blendFrom != nil {
		player.weight = math.Min(1, player.weight+player.BlendingSpeed*dt*60)
		pose = Blend(player.blendFrom, pose, player.weight)
		if player.weight >= 1 {
			player.blendFrom = nil
		}
	}

	player.last = pose

	if player.playing {
		player.advance(dt)
	}

	return pose
}

func (player *Player) advance(dt float64) {
	r := player.current
	player.playhead += dt * player.Clip.FrameRate * player.SpeedRatio

	if player.playhead <= r.To {
		return
	}

	if player.loop {
		length := r.Length()
		if length <= 0 {
			player.playhead = r.From
		} else {
			player.playhead = r.From + math.Mod(player.playhead-r.From, length)
		}
	} else {
		player.playhead = r.To
		player.playing = false
	}

	if player.OnEnd != nil {
		player.OnEnd(r)
	}
}
