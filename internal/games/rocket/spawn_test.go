package rocket

import (
	"testing"

	"github.com/vovakirdan/retro-rocket/internal/config"
)

func TestGovernorAttemptsOncePerInterval(t *testing.T) {
	cfg := config.SpawnConfig{Interval: 0.5, Chance: 1, MaxAlive: 18}
	g := NewSpawnGovernor(cfg, &scriptedRand{})

	want := []bool{false, true, false, true}
	for i, w := range want {
		if got := g.Tick(0.25, 0); got != w {
			t.Errorf("tick %d = %v, want %v", i+1, got, w)
		}
	}
}

func TestGovernorRollAgainstChance(t *testing.T) {
	cfg := config.SpawnConfig{Interval: 0.5, Chance: 0.85, MaxAlive: 18}
	rng := &scriptedRand{floats: []float64{0.9, 0.1}}
	g := NewSpawnGovernor(cfg, rng)

	if g.Tick(0.5, 0) {
		t.Error("roll 0.9 should fail against chance 0.85")
	}
	// A failed roll still resets the accumulator.
	if g.Tick(0.25, 0) {
		t.Error("accumulator should have been reset by the failed attempt")
	}
	if !g.Tick(0.25, 0) {
		t.Error("roll 0.1 should succeed")
	}
}

func TestGovernorCapSkipsRoll(t *testing.T) {
	cfg := config.SpawnConfig{Interval: 0.5, Chance: 1, MaxAlive: 3}
	rng := &scriptedRand{floats: []float64{0.1}}
	g := NewSpawnGovernor(cfg, rng)

	if g.Tick(0.5, 3) {
		t.Error("should not spawn at the population cap")
	}
	if len(rng.floats) != 1 {
		t.Error("capped attempt should not consume a random roll")
	}
	if !g.Tick(0.5, 2) {
		t.Error("should spawn below the cap")
	}
}

func TestGovernorReset(t *testing.T) {
	g := NewSpawnGovernor(config.SpawnConfig{Interval: 0.5, Chance: 1, MaxAlive: 1}, &scriptedRand{})
	g.Tick(0.25, 0)
	g.Reset()
	if g.Tick(0.25, 0) {
		t.Error("Reset should clear the accumulator")
	}
}
