package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Contact describes how two bodies overlap. Normal points from B towards A; moving A along
// Normal by Depth separates them.
type Contact struct {
	A, B   *Body
	Normal mgl64.Vec3
	Depth  float64
	Point  mgl64.Vec3
}

// Collide tests two bodies for overlap.
func Collide(a, b *Body) (Contact, bool) {
	normal, depth, point, ok := collideShapes(a, b)
	if !ok {
		return Contact{}, false
	}
	return Contact{A: a, B: b, Normal: normal, Depth: depth, Point: point}, true
}

func collideShapes(a, b *Body) (mgl64.Vec3, float64, mgl64.Vec3, bool) {
	aBox, bBox := a.Shape.Kind == ShapeBox, b.Shape.Kind == ShapeBox

	switch {
	case aBox && bBox:
		if a.axisAligned() && b.axisAligned() {
			return boxBox(a, b)
		}
		// One of the boxes is tilted; stand the other one in as its bounding sphere.
		if a.axisAligned() {
			return segmentBox(a.Position, a.Position, a.Shape.BoundingRadius(), b)
		}
		n, d, p, ok := segmentBox(b.Position, b.Position, b.Shape.BoundingRadius(), a)
		return n.Mul(-1), d, p, ok
	case bBox:
		s0, s1 := a.segment()
		return segmentBox(s0, s1, a.Shape.Radius, b)
	case aBox:
		s0, s1 := b.segment()
		n, d, p, ok := segmentBox(s0, s1, b.Shape.Radius, a)
		return n.Mul(-1), d, p, ok
	}

	a0, a1 := a.segment()
	b0, b1 := b.segment()
	pa, pb := closestSegmentSegment(a0, a1, b0, b1)
	return sphereSphere(pa, a.Shape.Radius, pb, b.Shape.Radius)
}

func sphereSphere(aPos mgl64.Vec3, aRadius float64, bPos mgl64.Vec3, bRadius float64) (mgl64.Vec3, float64, mgl64.Vec3, bool) {
	delta := aPos.Sub(bPos)
	dist := delta.Len()
	sum := aRadius + bRadius
	if dist >= sum {
		return mgl64.Vec3{}, 0, mgl64.Vec3{}, false
	}
	normal := mgl64.Vec3{0, 1, 0}
	if dist > 0 {
		normal = delta.Mul(1 / dist)
	}
	return normal, sum - dist, bPos.Add(normal.Mul(bRadius)), true
}

// segmentBox tests a swept sphere (a capsule, or a sphere when s0 == s1) against a box body.
func segmentBox(s0, s1 mgl64.Vec3, radius float64, box *Body) (mgl64.Vec3, float64, mgl64.Vec3, bool) {
	// Alternating closest points converges quickly for a segment against a convex box.
	q := closestPointOnSegment(s0, s1, box.Position)
	for i := 0; i < 3; i++ {
		q = closestPointOnSegment(s0, s1, box.closestPointOnBox(q))
	}

	inv := box.Rotation.Conjugate()
	local := inv.Rotate(q.Sub(box.Position))
	half := box.Shape.HalfExtents

	clamped := mgl64.Vec3{
		mgl64.Clamp(local.X(), -half.X(), half.X()),
		mgl64.Clamp(local.Y(), -half.Y(), half.Y()),
		mgl64.Clamp(local.Z(), -half.Z(), half.Z()),
	}

	delta := local.Sub(clamped)
	dist := delta.Len()

	if dist > 0 {
		if dist >= radius {
			return mgl64.Vec3{}, 0, mgl64.Vec3{}, false
		}
		normal := box.Rotation.Rotate(delta.Mul(1 / dist))
		point := box.Position.Add(box.Rotation.Rotate(clamped))
		return normal, radius - dist, point, true
	}

	// The core point is inside the box; push out through the nearest face.
	axis, best := 0, math.Inf(1)
	for i := 0; i < 3; i++ {
		if pen := half[i] - math.Abs(local[i]); pen < best {
			axis, best = i, pen
		}
	}
	localNormal := mgl64.Vec3{}
	localNormal[axis] = 1
	if local[axis] < 0 {
		localNormal[axis] = -1
	}
	surface := local
	surface[axis] = half[axis] * localNormal[axis]
	return box.Rotation.Rotate(localNormal), best + radius, box.Position.Add(box.Rotation.Rotate(surface)), true
}

func boxBox(a, b *Body) (mgl64.Vec3, float64, mgl64.Vec3, bool) {
	aHalf, bHalf := a.Shape.HalfExtents, b.Shape.HalfExtents
	delta := a.Position.Sub(b.Position)

	var pen mgl64.Vec3
	for i := 0; i < 3; i++ {
		pen[i] = aHalf[i] + bHalf[i] - math.Abs(delta[i])
		if pen[i] <= 0 {
			return mgl64.Vec3{}, 0, mgl64.Vec3{}, false
		}
	}

	axis := 0
	if pen[1] < pen[axis] {
		axis = 1
	}
	if pen[2] < pen[axis] {
		axis = 2
	}

	normal := mgl64.Vec3{}
	normal[axis] = 1
	if delta[axis] < 0 {
		normal[axis] = -1
	}

	point := a.Position
	point[axis] = a.Position[axis] - aHalf[axis]*normal[axis]
	return normal, pen[axis], point, true
}

func closestPointOnSegment(start, end, point mgl64.Vec3) mgl64.Vec3 {
	segment := end.Sub(start)
	lengthSq := segment.Dot(segment)
	if lengthSq == 0 {
		return start
	}
	t := mgl64.Clamp(point.Sub(start).Dot(segment)/lengthSq, 0, 1)
	return start.Add(segment.Mul(t))
}

// closestSegmentSegment returns the closest points between segments p1-q1 and p2-q2.
func closestSegmentSegment(p1, q1, p2, q2 mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	const epsilon = 1e-12

	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64

	switch {
	case a <= epsilon && e <= epsilon:
		return p1, p2
	case a <= epsilon:
		t = mgl64.Clamp(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if e <= epsilon {
			s = mgl64.Clamp(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom > epsilon {
				s = mgl64.Clamp((b*f-c*e)/denom, 0, 1)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = mgl64.Clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = mgl64.Clamp((b-c)/a, 0, 1)
			}
		}
	}

	return p1.Add(d1.Mul(s)), p2.Add(d2.Mul(t))
}
