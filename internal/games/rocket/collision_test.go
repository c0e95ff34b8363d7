package rocket

import (
	"testing"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

func newTestWorld(cfg config.RocketConfig) (*World, *ScoreLedger) {
	return NewWorld(cfg, &scriptedRand{}), NewScoreLedger(core.SaveData{}, cfg.Scoring.CreditsConversionRate)
}

func TestBulletDestroysMeteor(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	w, ledger := newTestWorld(cfg)
	w.Ship.Pos = core.V(800, 600) // out of near-miss range
	addMeteor(w, core.V(110, 100), 15, 0)
	w.SpawnBullet(core.V(100, 100), core.Vec{})

	out := Resolve(w, ledger, cfg)
	if out.BulletHits != 1 || out.MeteorsDestroyed != 1 {
		t.Fatalf("outcome = %+v", out)
	}
	if w.Bullets.Len() != 0 || w.Meteors.Len() != 0 {
		t.Errorf("bullets=%d meteors=%d, want both released", w.Bullets.Len(), w.Meteors.Len())
	}
	if w.Ship.Score != 30 {
		t.Errorf("Score = %d, want floor(15*2) = 30", w.Ship.Score)
	}
	if ledger.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", ledger.HighScore)
	}
}

func TestBulletDamagesOnlyFirstMeteor(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	w, ledger := newTestWorld(cfg)
	w.Ship.Pos = core.V(800, 600)
	first := addMeteor(w, core.V(105, 100), 25, 0)
	second := addMeteor(w, core.V(95, 100), 25, 0)
	w.SpawnBullet(core.V(100, 100), core.Vec{})

	Resolve(w, ledger, cfg)
	if first.Health != 1 || second.Health != 2 {
		t.Errorf("health = %d/%d, want only the first meteor damaged", first.Health, second.Health)
	}
	if first.CrackLevel != 1 {
		t.Errorf("CrackLevel = %d, want 1", first.CrackLevel)
	}
	if w.Ship.Score != 0 {
		t.Errorf("Score = %d, damage alone scores nothing", w.Ship.Score)
	}
}

func TestBulletHitsAcrossWrapSeam(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	w, ledger := newTestWorld(cfg)
	w.Ship.Pos = core.V(480, 600)
	addMeteor(w, core.V(955, 50), 12, 0)
	w.SpawnBullet(core.V(2, 50), core.Vec{})

	if out := Resolve(w, ledger, cfg); out.MeteorsDestroyed != 1 {
		t.Errorf("expected a hit across the seam, outcome = %+v", out)
	}
}

func TestShipCollisionCostsOneLife(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	w, ledger := newTestWorld(cfg)
	w.Ship.Pos = core.V(100, 100)
	addMeteor(w, core.V(110, 100), 15, cfg.NearMiss.Cooldown)
	addMeteor(w, core.V(90, 100), 15, cfg.NearMiss.Cooldown)

	out := Resolve(w, ledger, cfg)
	if !out.ShipHit || out.ShipDestroyed {
		t.Fatalf("outcome = %+v", out)
	}
	if w.Ship.Lives != 2 {
		t.Errorf("Lives = %d, want 2 (one collision per frame)", w.Ship.Lives)
	}
	if w.Ship.Pos != w.Space.Center() {
		t.Errorf("ship not recentered: %v", w.Ship.Pos)
	}
	if w.Meteors.Len() != 1 {
		t.Errorf("meteors = %d, want the colliding one removed", w.Meteors.Len())
	}
	if out.NearMisses != 0 || w.Ship.Score != 0 {
		t.Errorf("collided meteor must not also count as a near miss: %+v", out)
	}
}

func TestLastLifeDestroysShip(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	w, ledger := newTestWorld(cfg)
	w.Ship.Lives = 1
	addMeteor(w, w.Ship.Pos, 20, 0)

	out := Resolve(w, ledger, cfg)
	if !out.ShipDestroyed || w.Ship.Alive {
		t.Errorf("outcome = %+v, alive = %v", out, w.Ship.Alive)
	}
}

func TestNearMissAwardAndCooldown(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	w, ledger := newTestWorld(cfg)
	ship := w.Ship.Pos
	// Hull gap of 10: centers 12 + 15 + 10 apart.
	m := addMeteor(w, ship.Add(core.V(37, 0)), 15, cfg.NearMiss.Cooldown)

	out := Resolve(w, ledger, cfg)
	if out.NearMisses != 1 || w.Ship.Score != 10 {
		t.Fatalf("first pass: outcome = %+v, score = %d", out, w.Ship.Score)
	}
	if m.SinceNearMiss != 0 {
		t.Errorf("SinceNearMiss = %v, want reset to 0", m.SinceNearMiss)
	}
	if w.Effects.Len() != 1 {
		t.Fatalf("effects = %d, want 1", w.Effects.Len())
	}
	for _, e := range w.Effects.All() {
		if !near(e.Pos.X, ship.X+18.5) || !near(e.Pos.Y, ship.Y) || e.Points != 10 {
			t.Errorf("effect = %+v, want +10 at the midpoint", e)
		}
	}

	m.Update(0.5, w.Space)
	if out := Resolve(w, ledger, cfg); out.NearMisses != 0 {
		t.Error("near miss credited again within cooldown")
	}
	m.Update(0.5, w.Space)
	if out := Resolve(w, ledger, cfg); out.NearMisses != 1 {
		t.Error("near miss should be credited once the cooldown elapsed")
	}
	if w.Ship.Score != 20 {
		t.Errorf("Score = %d, want 20", w.Ship.Score)
	}
}

func TestNearMissScoresWhenEffectPoolFull(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	cfg.NearMiss.EffectCapacity = 1
	w, ledger := newTestWorld(cfg)
	w.SpawnEffect(core.V(1, 1), 10)
	addMeteor(w, w.Ship.Pos.Add(core.V(0, 50)), 15, cfg.NearMiss.Cooldown)

	Resolve(w, ledger, cfg)
	if w.Ship.Score != 10 {
		t.Errorf("Score = %d, want 10 even without a free effect slot", w.Ship.Score)
	}
}

func TestNoNearMissOutsideRadius(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	w, ledger := newTestWorld(cfg)
	addMeteor(w, w.Ship.Pos.Add(core.V(81, 0)), 15, cfg.NearMiss.Cooldown)

	if out := Resolve(w, ledger, cfg); out.NearMisses != 0 {
		t.Errorf("outcome = %+v, want no near miss beyond the radius", out)
	}
}
