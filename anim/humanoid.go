package anim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Range names of the humanoid clip.
const (
	RangeIdle = "YBot_Idle"
	RangeWalk = "YBot_Walk"
)

// Humanoid bone names.
const (
	BoneHips     = "Hips"
	BoneSpine    = "Spine"
	BoneHead     = "Head"
	BoneLeftArm  = "LeftArm"
	BoneRightArm = "RightArm"
	BoneLeftLeg  = "LeftLeg"
	BoneRightLeg = "RightLeg"
)

// Bone is a joint of a rig. Bind is the joint's rest offset from its parent.
type Bone struct {
	Name   string
	Parent string
	Bind   mgl64.Vec3
}

// HumanoidRig is the stand-in character's skeleton, facing +Z, parents before children.
// Its feet rest at y = 0.
var HumanoidRig = []Bone{
	{Name: BoneHips, Bind: mgl64.Vec3{0, 0.95, 0}},
	{Name: BoneSpine, Parent: BoneHips, Bind: mgl64.Vec3{0, 0.1, 0}},
	{Name: BoneHead, Parent: BoneSpine, Bind: mgl64.Vec3{0, 0.62, 0}},
	{Name: BoneLeftArm, Parent: BoneSpine, Bind: mgl64.Vec3{0.28, 0.52, 0}},
	{Name: BoneRightArm, Parent: BoneSpine, Bind: mgl64.Vec3{-0.28, 0.52, 0}},
	{Name: BoneLeftLeg, Parent: BoneHips, Bind: mgl64.Vec3{0.12, -0.05, 0}},
	{Name: BoneRightLeg, Parent: BoneHips, Bind: mgl64.Vec3{-0.12, -0.05, 0}},
}

func rotX(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0})
}

func rotZ(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1})
}

// NewHumanoidClip builds the humanoid's keyframes: an idle breathing cycle over frames
// 0-60 and a walk cycle over 61-93.
func NewHumanoidClip() *Clip {
	clip := NewClip("YBot")

	hips := clip.AddChannel(BoneHips)
	spine := clip.AddChannel(BoneSpine)
	head := clip.AddChannel(BoneHead)
	armL := clip.AddChannel(BoneLeftArm)
	armR := clip.AddChannel(BoneRightArm)
	legL := clip.AddChannel(BoneLeftLeg)
	legR := clip.AddChannel(BoneRightLeg)

	bind := HumanoidRig[0].Bind

	// Idle: the chest rises and falls, arms hang slightly out.
	for _, f := range []float64{0, 30, 60} {
		breath := 0.0
		if f == 30 {
			breath = 1
		}
		hips.AddPosition(f, bind.Add(mgl64.Vec3{0, -0.01 * breath, 0}))
		hips.AddRotation(f, mgl64.QuatIdent())
		spine.AddRotation(f, rotX(-0.04*breath))
		head.AddRotation(f, rotX(0.03*breath))
		armL.AddRotation(f, rotZ(0.08+0.02*breath))
		armR.AddRotation(f, rotZ(-0.08-0.02*breath))
		legL.AddRotation(f, mgl64.QuatIdent())
		legR.AddRotation(f, mgl64.QuatIdent())
	}

	// Walk: a full stride every 32 frames, legs and arms in opposition.
	const walkStart, walkEnd = 61.0, 93.0
	for i := 0; i <= 8; i++ {
		f := walkStart + float64(i)*(walkEnd-walkStart)/8
		phase := float64(i) / 8 * 2 * math.Pi
		swing := math.Sin(phase)
		bob := math.Abs(math.Cos(phase))

		hips.AddPosition(f, bind.Add(mgl64.Vec3{0, 0.04*bob - 0.03, 0}))
		hips.AddRotation(f, mgl64.QuatRotate(0.06*swing, mgl64.Vec3{0, 1, 0}))
		spine.AddRotation(f, rotX(0.08))
		head.AddRotation(f, rotX(-0.05))
		legL.AddRotation(f, rotX(0.55*swing))
		legR.AddRotation(f, rotX(-0.55*swing))
		armL.AddRotation(f, rotX(-0.45*swing).Mul(rotZ(0.08)))
		armR.AddRotation(f, rotX(0.45*swing).Mul(rotZ(-0.08)))
	}

	clip.CreateRange(RangeIdle, 0, 60)
	clip.CreateRange(RangeWalk, walkStart, walkEnd)

	return clip
}
