package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSpaceWrap(t *testing.T) {
	s := NewSpace(960, 640)

	tests := []struct {
		name     string
		in       Vec
		expected Vec
	}{
		{"inside", V(100, 200), V(100, 200)},
		{"negative x", V(-1, 10), V(959, 10)},
		{"negative y", V(10, -1), V(10, 639)},
		{"right edge", V(960, 10), V(0, 10)},
		{"bottom edge", V(10, 640), V(10, 0)},
		{"far outside", V(960*3+5, -640*2-5), V(5, 635)},
		{"spawn pad", V(-30, 990), V(930, 350)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Wrap(tc.in)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestSpaceWrapBoundsAndIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSpace(960, 640)

	for i := 0; i < 10000; i++ {
		p := V((rng.Float64()-0.5)*1e5, (rng.Float64()-0.5)*1e5)
		w := s.Wrap(p)
		if !s.Contains(w) {
			t.Fatalf("Wrap(%v) = %v lies outside [0,%v)x[0,%v)", p, w, s.W, s.H)
		}
		if again := s.Wrap(w); again != w {
			t.Fatalf("Wrap is not idempotent: %v -> %v -> %v", p, w, again)
		}
	}

	// Tiny negatives must not round up onto the exclusive bound.
	if w := s.Wrap(V(-1e-18, -1e-18)); !s.Contains(w) {
		t.Errorf("Wrap of tiny negative = %v, outside bounds", w)
	}
}

func TestSpaceDistanceAcrossBoundary(t *testing.T) {
	s := NewSpace(960, 640)

	ship := V(0, 320)
	meteor := V(959, 320)

	if d := math.Sqrt(s.DistSq(ship, meteor)); math.Abs(d-1) > 1e-9 {
		t.Errorf("distance across wrap = %f, expected 1", d)
	}

	delta := s.Delta(ship, meteor)
	if delta.X != -1 || delta.Y != 0 {
		t.Errorf("Delta() = %v, expected (-1, 0)", delta)
	}

	corner := s.DistSq(V(1, 1), V(959, 639))
	if math.Abs(corner-8) > 1e-9 {
		t.Errorf("corner DistSq = %f, expected 8", corner)
	}
}

func TestSpaceDistanceNeverExceedsEuclidean(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewSpace(960, 640)

	for i := 0; i < 5000; i++ {
		a := V(rng.Float64()*s.W, rng.Float64()*s.H)
		b := V(rng.Float64()*s.W, rng.Float64()*s.H)
		if s.DistSq(a, b) > b.Sub(a).LenSq()+1e-6 {
			t.Fatalf("toroidal distance exceeds euclidean for %v %v", a, b)
		}
	}
}

func TestSpaceMidpoint(t *testing.T) {
	s := NewSpace(100, 100)

	if m := s.Midpoint(V(10, 10), V(30, 50)); m != V(20, 30) {
		t.Errorf("Midpoint() = %v, expected (20, 30)", m)
	}

	// Shortest path crosses the left edge.
	m := s.Midpoint(V(2, 50), V(96, 50))
	if math.Abs(m.X-99) > 1e-9 || m.Y != 50 {
		t.Errorf("Midpoint across wrap = %v, expected (99, 50)", m)
	}
}
