package rocket

import "github.com/vovakirdan/retro-rocket/internal/config"

// Outcome summarizes what one collision pass changed.
type Outcome struct {
	BulletHits       int
	MeteorsDestroyed int
	NearMisses       int
	ShipHit          bool
	ShipDestroyed    bool
}

// Resolve runs the three collision passes for one frame, in order:
// bullets against meteors, the ship against meteors, then near misses.
// All distances are measured across the wrap seam.
func Resolve(w *World, ledger *ScoreLedger, cfg config.RocketConfig) Outcome {
	var out Outcome
	resolveBullets(w, ledger, cfg.Bullets.Radius, &out)
	if w.Ship.Alive {
		resolveShip(w, &out)
	}
	if w.Ship.Alive {
		resolveNearMisses(w, ledger, cfg.NearMiss, &out)
	}
	return out
}

// resolveBullets lets each bullet hit at most one meteor.
func resolveBullets(w *World, ledger *ScoreLedger, bulletRadius float64, out *Outcome) {
	for bh, b := range w.Bullets.All() {
		for mh, m := range w.Meteors.All() {
			reach := bulletRadius + m.Radius
			if w.Space.DistSq(b.Pos, m.Pos) > reach*reach {
				continue
			}
			w.Bullets.Release(bh)
			out.BulletHits++
			if m.TakeDamage() {
				w.Meteors.Release(mh)
				out.MeteorsDestroyed++
				ledger.Award(&w.Ship, m.KillPoints())
			}
			break
		}
	}
}

// resolveShip handles at most one ship collision per frame.
func resolveShip(w *World, out *Outcome) {
	r := w.Ship.Radius()
	for mh, m := range w.Meteors.All() {
		reach := r + m.Radius
		if w.Space.DistSq(w.Ship.Pos, m.Pos) > reach*reach {
			continue
		}
		w.Meteors.Release(mh)
		out.ShipHit = true
		out.ShipDestroyed = w.Ship.TakeHit()
		return
	}
}

func resolveNearMisses(w *World, ledger *ScoreLedger, cfg config.NearMissConfig, out *Outcome) {
	limit := cfg.Radius * cfg.Radius
	for _, m := range w.Meteors.All() {
		if m.SinceNearMiss < cfg.Cooldown {
			continue
		}
		if w.Space.DistSq(w.Ship.Pos, m.Pos) > limit {
			continue
		}
		ledger.Award(&w.Ship, cfg.Points)
		w.SpawnEffect(w.Space.Midpoint(w.Ship.Pos, m.Pos), cfg.Points)
		m.SinceNearMiss = 0
		out.NearMisses++
	}
}
