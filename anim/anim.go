// Package anim samples keyframed skeletal clips and blends between named frame ranges.
package anim

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultFrameRate is the frame rate clips are authored at.
const DefaultFrameRate = 60

// VectorKey is a position keyframe; Frame is in clip frames.
type VectorKey struct {
	Frame float64
	Value mgl64.Vec3
}

// RotationKey is a rotation keyframe.
type RotationKey struct {
	Frame float64
	Value mgl64.Quat
}

// Channel animates a single bone.
type Channel struct {
	Bone     string
	Position []VectorKey
	Rotation []RotationKey
}

// NewChannel returns an empty channel for the named bone.
func NewChannel(bone string) *Channel {
	return &Channel{Bone: bone}
}

// AddPosition appends a position key, keeping the keys sorted by frame.
func (channel *Channel) AddPosition(frame float64, value mgl64.Vec3) *Channel {
	channel.Position = append(channel.Position, VectorKey{Frame: frame, Value: value})
	sort.SliceStable(channel.Position, func(i, j int) bool { return channel.Position[i].Frame < channel.Position[j].Frame })
	return channel
}

// AddRotation appends a rotation key, keeping the keys sorted by frame.
func (channel *Channel) AddRotation(frame float64, value mgl64.Quat) *Channel {
	channel.Rotation = append(channel.Rotation, RotationKey{Frame: frame, Value: value.Normalize()})
	sort.SliceStable(channel.Rotation, func(i, j int) bool { return channel.Rotation[i].Frame < channel.Rotation[j].Frame })
	return channel
}

// keySpan finds the keys either side of frame. t is the interpolation factor between them;
// when frame falls outside the keys, both indices point at the nearest end.
func keySpan(n int, frameAt func(int) float64, frame float64) (a, b int, t float64) {
	if frame <= frameAt(0) {
		return 0, 0, 0
	}
	if frame >= frameAt(n-1) {
		return n - 1, n - 1, 0
	}
	b = sort.Search(n, func(i int) bool { return frameAt(i) >= frame })
	a = b - 1
	if frameAt(b) == frame {
		return b, b, 0
	}
	t = (frame - frameAt(a)) / (frameAt(b) - frameAt(a))
	return a, b, t
}

// PositionAt linearly interpolates the position track. ok is false for an empty track.
func (channel *Channel) PositionAt(frame float64) (mgl64.Vec3, bool) {
	if len(channel.Position) == 0 {
		return mgl64.Vec3{}, false
	}
	a, b, t := keySpan(len(channel.Position), func(i int) float64 { return channel.Position[i].Frame }, frame)
	first, last := channel.Position[a].Value, channel.Position[b].Value
	return first.Add(last.Sub(first).Mul(t)), true
}

// RotationAt spherically interpolates the rotation track. ok is false for an empty track.
func (channel *Channel) RotationAt(frame float64) (mgl64.Quat, bool) {
	if len(channel.Rotation) == 0 {
		return mgl64.QuatIdent(), false
	}
	a, b, t := keySpan(len(channel.Rotation), func(i int) float64 { return channel.Rotation[i].Frame }, frame)
	if a == b {
		return channel.Rotation[a].Value, true
	}
	return mgl64.QuatSlerp(channel.Rotation[a].Value, channel.Rotation[b].Value, t), true
}

// Range is a named span of frames within a clip, inclusive at both ends.
type Range struct {
	Name     string
	From, To float64
}

// Length returns the range's length in frames.
func (r Range) Length() float64 {
	return r.To - r.From
}

// Clip is a set of channels sharing a timeline.
type Clip struct {
	Name      string
	FrameRate float64
	Channels  map[string]*Channel
	ranges    map[string]Range
}

// NewClip returns an empty clip at DefaultFrameRate.
func NewClip(name string) *Clip {
	return &Clip{
		Name:      name,
		FrameRate: DefaultFrameRate,
		Channels:  map[string]*Channel{},
		ranges:    map[string]Range{},
	}
}

// AddChannel creates (or replaces) the channel for bone.
func (clip *Clip) AddChannel(bone string) *Channel {
	channel := NewChannel(bone)
	clip.Channels[bone] = channel
	return channel
}

// CreateRange registers a named frame range.
func (clip *Clip) CreateRange(name string, from, to float64) (Range, error) {
	if to < from {
		return Range{}, fmt.Errorf("animation range %q: end frame %v before start frame %v", name, to, from)
	}
	r := Range{Name: name, From: from, To: to}
	clip.ranges[name] = r
	return r, nil
}

// Range looks up a named range.
func (clip *Clip) Range(name string) (Range, bool) {
	r, ok := clip.ranges[name]
	return r, ok
}

// Ranges returns the clip's range names in sorted order.
func (clip *Clip) Ranges() []string {
	names := make([]string, 0, len(clip.ranges))
	for name := range clip.ranges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample returns the clip's pose at frame.
func (clip *Clip) Sample(frame float64) Pose {
	pose := make(Pose, len(clip.Channels))
	for bone, channel := range clip.Channels {
		t := Transform{Rotation: mgl64.QuatIdent()}
		if pos, ok := channel.PositionAt(frame); ok {
			t.Position = pos
			t.HasPosition = true
		}
		if rot, ok := channel.RotationAt(frame); ok {
			t.Rotation = rot
		}
		pose[bone] = t
	}
	return pose
}
