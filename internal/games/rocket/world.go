package rocket

import (
	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

// World owns every entity of one session: the ship and the three pools.
// It has no notion of phases; the Game decides when it advances.
type World struct {
	Space   core.Space
	Ship    Ship
	Bullets *core.Pool[Bullet]
	Meteors *core.Pool[Meteor]
	Effects *core.Pool[NearMissEffect]

	cfg config.RocketConfig
	rng Rand
}

// NewWorld allocates the pools at their configured capacity.
func NewWorld(cfg config.RocketConfig, rng Rand) *World {
	space := core.NewSpace(cfg.World.Width, cfg.World.Height)
	return &World{
		Space:   space,
		Ship:    NewShip(cfg.Ship, space),
		Bullets: core.NewPool[Bullet](cfg.Bullets.Capacity),
		Meteors: core.NewPool[Meteor](cfg.Meteors.Capacity),
		Effects: core.NewPool[NearMissEffect](cfg.NearMiss.EffectCapacity),
		cfg:     cfg,
		rng:     rng,
	}
}

// Reset empties every pool and resets the ship for a new run.
func (w *World) Reset() {
	w.Ship.Reset()
	w.Bullets.Clear()
	w.Meteors.Clear()
	w.Effects.Clear()
}

// SpawnBullet claims a bullet slot. A full pool drops the shot.
func (w *World) SpawnBullet(pos, vel core.Vec) bool {
	_, b, ok := w.Bullets.Acquire()
	if !ok {
		return false
	}
	*b = Bullet{Pos: w.Space.Wrap(pos), Vel: vel, Life: w.cfg.Bullets.Lifetime}
	return true
}

// Fire spawns a bullet at the ship's muzzle.
func (w *World) Fire() bool {
	pos, vel := w.Ship.Muzzle(w.cfg.Bullets)
	return w.SpawnBullet(pos, vel)
}

// SpawnMeteor claims a meteor slot and launches it from a random edge.
func (w *World) SpawnMeteor() bool {
	_, m, ok := w.Meteors.Acquire()
	if !ok {
		return false
	}
	m.Spawn(w.rng, w.Space, w.cfg.Meteors, w.cfg.NearMiss.Cooldown)
	return true
}

// SpawnEffect claims an effect slot for a near-miss marker.
func (w *World) SpawnEffect(pos core.Vec, points int) bool {
	_, e, ok := w.Effects.Acquire()
	if !ok {
		return false
	}
	life := w.cfg.NearMiss.EffectLifetime
	*e = NearMissEffect{Pos: w.Space.Wrap(pos), Life: life, Lifetime: life, Points: points}
	return true
}

// Integrate advances every live entity by dt and releases expired ones.
func (w *World) Integrate(dt float64) {
	w.Ship.Integrate(dt)
	for h, b := range w.Bullets.All() {
		if b.Update(dt, w.Space) {
			w.Bullets.Release(h)
		}
	}
	for _, m := range w.Meteors.All() {
		m.Update(dt, w.Space)
	}
	w.updateEffects(dt)
}

func (w *World) updateEffects(dt float64) {
	for h, e := range w.Effects.All() {
		if e.Update(dt, w.cfg.NearMiss.EffectRise, w.Space) {
			w.Effects.Release(h)
		}
	}
}
