package rocket

import "github.com/vovakirdan/retro-rocket/internal/core"

// NearMissEffect is a floating "+N" marker. It never collides with anything.
type NearMissEffect struct {
	Pos      core.Vec
	Life     float64
	Lifetime float64
	Points   int
}

// Update ages the marker and floats it upward. Returns true when expired.
func (e *NearMissEffect) Update(dt, rise float64, space core.Space) bool {
	e.Life -= dt
	if e.Life <= 0 {
		return true
	}
	e.Pos = space.Wrap(e.Pos.Add(core.V(0, -rise*dt)))
	return false
}

// Fade returns the remaining life as a fraction in [0, 1].
func (e *NearMissEffect) Fade() float64 {
	if e.Lifetime <= 0 {
		return 0
	}
	return core.ClampF(e.Life/e.Lifetime, 0, 1)
}
