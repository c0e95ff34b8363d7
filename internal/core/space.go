package core

import "math"

// Space is a toroidal plane of W x H world units. Both axes wrap, so an
// entity leaving the right edge re-enters on the left and vice versa.
type Space struct {
	W, H float64
}

// NewSpace creates a space with the given bounds.
func NewSpace(w, h float64) Space {
	return Space{W: w, H: h}
}

// Center returns the middle of the plane.
func (s Space) Center() Vec {
	return Vec{X: s.W * 0.5, Y: s.H * 0.5}
}

// Wrap reduces p into [0, W) x [0, H).
func (s Space) Wrap(p Vec) Vec {
	if s.Contains(p) {
		return p
	}
	return Vec{X: wrapAxis(p.X, s.W), Y: wrapAxis(p.Y, s.H)}
}

// Contains reports whether p already lies inside the bounds.
func (s Space) Contains(p Vec) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Delta returns the shortest signed offset from a to b, taking the
// wrapped path on each axis when it is shorter than the direct one.
func (s Space) Delta(a, b Vec) Vec {
	return Vec{X: wrapDelta(b.X-a.X, s.W), Y: wrapDelta(b.Y-a.Y, s.H)}
}

// DistSq returns the squared toroidal distance between a and b.
func (s Space) DistSq(a, b Vec) float64 {
	return s.Delta(a, b).LenSq()
}

// Midpoint returns the point halfway along the shortest path from a to b.
func (s Space) Midpoint(a, b Vec) Vec {
	return s.Wrap(a.Add(s.Delta(a, b).Scale(0.5)))
}

func wrapAxis(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -epsilon + size can round up to size.
	if v >= size {
		v = 0
	}
	return v
}

func wrapDelta(d, size float64) float64 {
	d = math.Mod(d, size)
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}
