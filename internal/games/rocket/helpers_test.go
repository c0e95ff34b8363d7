package rocket

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// scriptedRand replays fixed values, returning zero once exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

type runRecord struct {
	score, credits int
}

// memStore is an in-memory core.Persistence that also records runs.
type memStore struct {
	data    core.SaveData
	saves   []core.SaveData
	runs    []runRecord
	loadErr error
	saveErr error
}

func (s *memStore) Load() (core.SaveData, error) {
	if s.loadErr != nil {
		return core.SaveData{}, s.loadErr
	}
	return s.data, nil
}

func (s *memStore) Save(d core.SaveData) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data = d
	s.saves = append(s.saves, d)
	return nil
}

func (s *memStore) RecordRun(score, credits int) error {
	s.runs = append(s.runs, runRecord{score, credits})
	return nil
}

var errDisk = errors.New("disk unavailable")

// quietConfig disables meteor spawning so tests control the field.
func quietConfig() config.RocketConfig {
	cfg := config.DefaultRocketConfig()
	cfg.Spawn.Chance = 0
	return cfg
}

func newGame(t *testing.T, cfg config.RocketConfig, store core.Persistence) *Game {
	t.Helper()
	g := New(WithConfig(cfg), WithRand(rand.New(rand.NewSource(1))))
	if store != nil {
		g.UsePersistence(store, nil)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

// newPlaying returns a game already past the menu.
func newPlaying(t *testing.T, cfg config.RocketConfig, store core.Persistence) *Game {
	t.Helper()
	g := newGame(t, cfg, store)
	res := g.Step(core.NewInputFrame(core.ActionStart))
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase after start = %s, want playing", res.State.Phase)
	}
	return g
}

func addMeteor(w *World, pos core.Vec, radius float64, sinceNearMiss float64) *Meteor {
	_, m, ok := w.Meteors.Acquire()
	if !ok {
		panic("meteor pool full")
	}
	hp := HealthForRadius(radius)
	*m = Meteor{Pos: pos, Radius: radius, Health: hp, MaxHealth: hp, SinceNearMiss: sinceNearMiss}
	return m
}

func step(g *Game, n int, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for range n {
		res = g.Step(core.NewInputFrame(actions...))
	}
	return res
}
