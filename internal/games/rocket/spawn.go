package rocket

import "github.com/vovakirdan/retro-rocket/internal/config"

// SpawnGovernor decides when a new meteor enters play. It accumulates
// elapsed time and makes one attempt per interval.
type SpawnGovernor struct {
	cfg config.SpawnConfig
	rng Rand
	acc float64
}

// NewSpawnGovernor creates a governor with an empty accumulator.
func NewSpawnGovernor(cfg config.SpawnConfig, rng Rand) *SpawnGovernor {
	return &SpawnGovernor{cfg: cfg, rng: rng}
}

// Reset clears the accumulator.
func (g *SpawnGovernor) Reset() {
	g.acc = 0
}

// Tick advances the accumulator by dt and reports whether a spawn should be
// requested this frame. The accumulator resets on every attempt, even one
// that is rejected by the population cap or the roll. The roll is skipped
// when the cap is reached.
func (g *SpawnGovernor) Tick(dt float64, alive int) bool {
	g.acc += dt
	if g.acc < g.cfg.Interval {
		return false
	}
	g.acc = 0
	if alive >= g.cfg.MaxAlive {
		return false
	}
	return g.rng.Float64() < g.cfg.Chance
}
