package rocket

import (
	"math"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

// Spawn edges, in the order the random source picks them.
const (
	EdgeLeft = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Meteor is a drifting hazard that may need several hits.
type Meteor struct {
	Pos        core.Vec
	Vel        core.Vec
	Radius     float64
	Health     int
	MaxHealth  int
	CrackLevel int // 0 intact, 1 cracked, 2 shattered

	// SinceNearMiss counts seconds since the ship was last credited a near
	// miss against this meteor.
	SinceNearMiss float64
}

// HealthForRadius returns the hit points of a meteor of radius r.
func HealthForRadius(r float64) int {
	switch {
	case r < 20:
		return 1
	case r < 30:
		return 2
	default:
		return 3
	}
}

// CrackLevelFor maps the remaining health ratio to a visual tier:
// above two thirds is 0, above one third is 1, anything lower is 2.
func CrackLevelFor(health, maxHealth int) int {
	if maxHealth <= 0 {
		return 2
	}
	switch {
	case 3*health > 2*maxHealth:
		return 0
	case 3*health > maxHealth:
		return 1
	default:
		return 2
	}
}

// Spawn writes a fresh meteor into the slot. It enters from a random edge,
// SpawnPad units beyond it, wrapped into space so the position invariant
// holds from the first frame.
func (m *Meteor) Spawn(rng Rand, space core.Space, cfg config.MeteorConfig, nearMissCooldown float64) {
	pad := cfg.SpawnPad
	var p core.Vec
	switch rng.Intn(4) {
	case EdgeLeft:
		p = core.V(-pad, uniform(rng, 0, space.H))
	case EdgeRight:
		p = core.V(space.W+pad, uniform(rng, 0, space.H))
	case EdgeTop:
		p = core.V(uniform(rng, 0, space.W), -pad)
	default:
		p = core.V(uniform(rng, 0, space.W), space.H+pad)
	}
	m.Pos = space.Wrap(p)

	angle := uniform(rng, 0, 2*math.Pi)
	speed := uniform(rng, cfg.MinSpeed, cfg.MaxSpeed)
	m.Vel = core.FromAngle(angle).Scale(speed)

	m.Radius = uniform(rng, cfg.MinRadius, cfg.MaxRadius)
	m.MaxHealth = HealthForRadius(m.Radius)
	m.Health = m.MaxHealth
	m.CrackLevel = CrackLevelFor(m.Health, m.MaxHealth)
	m.SinceNearMiss = nearMissCooldown
}

// Update moves the meteor and ages its near-miss timer.
func (m *Meteor) Update(dt float64, space core.Space) {
	m.Pos = space.Wrap(m.Pos.Add(m.Vel.Scale(dt)))
	m.SinceNearMiss += dt
}

// TakeDamage removes one hit point and refreshes the crack level.
// Returns true when the meteor is destroyed; the caller releases the slot.
func (m *Meteor) TakeDamage() bool {
	m.Health--
	m.CrackLevel = CrackLevelFor(m.Health, m.MaxHealth)
	return m.Health <= 0
}

// KillPoints is the score for destroying the meteor.
func (m *Meteor) KillPoints() int {
	return int(math.Floor(m.Radius * 2))
}
