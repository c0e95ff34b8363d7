package rocket

import "github.com/vovakirdan/retro-rocket/internal/core"

// Bullet is a short-lived projectile.
type Bullet struct {
	Pos  core.Vec
	Vel  core.Vec
	Life float64 // seconds remaining
}

// Update ages the bullet and moves it. Returns true when the lifetime ran
// out; the caller releases the slot.
func (b *Bullet) Update(dt float64, space core.Space) bool {
	b.Life -= dt
	if b.Life <= 0 {
		return true
	}
	b.Pos = space.Wrap(b.Pos.Add(b.Vel.Scale(dt)))
	return false
}
