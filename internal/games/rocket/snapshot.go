package rocket

import "github.com/vovakirdan/retro-rocket/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick      int
	Phase     core.Phase
	Width     float64
	Height    float64
	Score     int
	HighScore int
	Credits   int
	Lives     int

	Ship    ShipView
	Bullets []BulletView
	Meteors []MeteorView
	Effects []EffectView
}

// ShipView is the render-facing ship state.
type ShipView struct {
	X, Y      float64
	Angle     float64
	Alive     bool
	Thrusting bool
}

// BulletView is the render-facing bullet state.
type BulletView struct {
	X, Y float64
}

// MeteorView is the render-facing meteor state.
type MeteorView struct {
	X, Y       float64
	Radius     float64
	CrackLevel int
	Health     int
	MaxHealth  int
}

// EffectView is the render-facing near-miss marker.
type EffectView struct {
	X, Y   float64
	Points int
	Fade   float64
}

// Snapshot copies the current session state. Live entities appear in slot
// order.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     st.Phase,
		Score:     st.Score,
		HighScore: st.HighScore,
		Credits:   st.Credits,
		Lives:     st.Lives,
	}
	w := g.world
	if w == nil {
		return snap
	}
	snap.Width, snap.Height = w.Space.W, w.Space.H

	s := &w.Ship
	snap.Ship = ShipView{X: s.Pos.X, Y: s.Pos.Y, Angle: s.Angle, Alive: s.Alive, Thrusting: s.Thrusting}

	snap.Bullets = make([]BulletView, 0, w.Bullets.Len())
	for _, b := range w.Bullets.All() {
		snap.Bullets = append(snap.Bullets, BulletView{X: b.Pos.X, Y: b.Pos.Y})
	}
	snap.Meteors = make([]MeteorView, 0, w.Meteors.Len())
	for _, m := range w.Meteors.All() {
		snap.Meteors = append(snap.Meteors, MeteorView{
			X: m.Pos.X, Y: m.Pos.Y,
			Radius:     m.Radius,
			CrackLevel: m.CrackLevel,
			Health:     m.Health,
			MaxHealth:  m.MaxHealth,
		})
	}
	snap.Effects = make([]EffectView, 0, w.Effects.Len())
	for _, e := range w.Effects.All() {
		snap.Effects = append(snap.Effects, EffectView{X: e.Pos.X, Y: e.Pos.Y, Points: e.Points, Fade: e.Fade()})
	}
	return snap
}
