// Package rocket implements Retro Rocket: a ship in a wrap-around field of
// meteors that can be shot, dodged, or grazed for near-miss points.
//
// The package is pure simulation plus a text renderer. Timing, input and
// storage are supplied by the platform through registry.Game and
// core.Persistence.
package rocket

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
	"github.com/vovakirdan/retro-rocket/internal/registry"
)

const (
	gameID    = "rocket"
	gameTitle = "Retro Rocket"
)

func init() {
	registry.Register(gameID, func(o registry.Options) registry.Game {
		return New(WithConfigPath(o.ConfigPath), WithDifficulty(o.Difficulty), WithLogger(o.Logger))
	})
}

// Option configures a Game at construction.
type Option func(*Game)

// WithConfig uses cfg as-is instead of loading a file.
func WithConfig(cfg config.RocketConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgFixed = true
	}
}

// WithConfigPath loads configuration from path on Reset.
func WithConfigPath(path string) Option {
	return func(g *Game) { g.configPath = path }
}

// WithDifficulty applies a named preset on top of the loaded configuration.
func WithDifficulty(name string) Option {
	return func(g *Game) { g.difficulty = name }
}

// WithRand replaces the seeded random source.
func WithRand(r Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithLogger sets the logger for config and persistence warnings.
// A nil logger keeps the default, which discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game is one play session. It owns the world and drives the
// menu / playing / paused / gameover state machine.
type Game struct {
	cfg        config.RocketConfig
	cfgFixed   bool
	configPath string
	difficulty string

	runtime  core.RuntimeConfig
	rng      Rand
	rngFixed bool
	logger   *log.Logger
	store    core.Persistence
	saved    core.SaveData

	world    *World
	governor *SpawnGovernor
	ledger   *ScoreLedger

	phase       core.Phase
	clock       float64 // simulated seconds in the current run
	lastShot    float64
	tick        int
	runRecorded bool
}

// New creates a game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultRocketConfig(),
		logger: log.New(io.Discard),
		phase:  core.PhaseMenu,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rngFixed = g.rng != nil
	return g
}

// LoadConfig resolves configuration the way New does for a path and preset.
// The CLI calls it up front to fail fast on a bad file.
func LoadConfig(path, difficulty string) (config.RocketConfig, error) {
	cfg, err := config.LoadRocket(path)
	if err != nil {
		return config.RocketConfig{}, err
	}
	preset := config.ParsePreset(difficulty)
	if difficulty != "" && preset == "" {
		return config.RocketConfig{}, fmt.Errorf("config: unknown difficulty %q", difficulty)
	}
	config.ApplyRocketPreset(&cfg, preset)
	return cfg, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return gameID }

// Title returns the display name.
func (g *Game) Title() string { return gameTitle }

// Config returns the active configuration.
func (g *Game) Config() config.RocketConfig { return g.cfg }

// World exposes the simulation for inspection.
func (g *Game) World() *World { return g.world }

// Ledger exposes the high score and credits.
func (g *Game) Ledger() *ScoreLedger { return g.ledger }

// UsePersistence attaches a profile store and loads the saved profile.
// A failed load starts from zero and is only logged.
func (g *Game) UsePersistence(p core.Persistence, logger *log.Logger) {
	if logger != nil {
		g.logger = logger
	}
	g.store = p
	if p == nil {
		return
	}
	data, err := p.Load()
	if err != nil {
		g.logger.Warn("could not load profile, starting fresh", "error", err)
		data = core.SaveData{}
	}
	g.saved = data
	if g.ledger != nil {
		g.ledger.Restore(data)
	}
}

// Reset builds a fresh session in the menu phase.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.cfgFixed {
		cfg, err := LoadConfig(g.configPath, g.difficulty)
		if err != nil {
			g.logger.Warn("invalid config, using defaults", "error", err)
			cfg = config.DefaultRocketConfig()
		}
		g.cfg = cfg
	}
	if !g.rngFixed {
		g.rng = rand.New(rand.NewSource(rc.Seed))
	}

	g.world = NewWorld(g.cfg, g.rng)
	g.governor = NewSpawnGovernor(g.cfg.Spawn, g.rng)
	g.ledger = NewScoreLedger(g.saved, g.cfg.Scoring.CreditsConversionRate)
	g.phase = core.PhaseMenu
	g.tick = 0
	g.runRecorded = true // nothing to record until a run starts
}

// Step advances one frame. Phase gating comes first: only the playing phase
// moves the world.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	g.tick++

	if in.Has(core.ActionQuit) {
		g.shutdown()
		return core.StepResult{State: g.State(), Quit: true}
	}

	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionStart) {
			g.startRun()
		}
	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePlaying
		}
	case core.PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionStart):
			g.closeRun(0)
			g.startRun()
		case in.Has(core.ActionMenu):
			g.returnToMenu()
		}
	case core.PhasePlaying:
		switch {
		case in.Has(core.ActionPause):
			g.phase = core.PhasePaused
		case in.Has(core.ActionMenu):
			g.returnToMenu()
		default:
			g.update(in)
		}
	}

	return core.StepResult{State: g.State()}
}

// update runs one playing frame: intents, integration, spawning,
// collisions, then the end-of-run check.
func (g *Game) update(in core.InputFrame) {
	dt := g.runtime.Delta()
	g.clock += dt

	ship := &g.world.Ship
	ship.ApplyIntent(in.Has(core.ActionRotateLeft), in.Has(core.ActionRotateRight), in.Has(core.ActionThrust), dt)
	if in.Has(core.ActionFire) && g.clock-g.lastShot >= g.cfg.Bullets.Cooldown {
		g.world.Fire()
		g.lastShot = g.clock
	}

	g.world.Integrate(dt)

	if g.governor.Tick(dt, g.world.Meteors.Len()) {
		g.world.SpawnMeteor()
	}

	out := Resolve(g.world, g.ledger, g.cfg)
	if out.ShipDestroyed {
		g.gameOver()
	}
}

func (g *Game) startRun() {
	g.world.Reset()
	g.governor.Reset()
	g.clock = 0
	g.lastShot = -g.cfg.Bullets.Cooldown
	g.runRecorded = false
	g.phase = core.PhasePlaying
}

func (g *Game) gameOver() {
	g.phase = core.PhaseGameOver
	g.logger.Info("run over", "score", g.world.Ship.Score, "high", g.ledger.HighScore)
	if g.ledger.Dirty() {
		g.save()
	}
}

// returnToMenu converts the run score into credits and persists.
func (g *Game) returnToMenu() {
	earned := g.ledger.Convert(g.world.Ship.Score)
	g.closeRun(earned)
	g.save()
	g.phase = core.PhaseMenu
}

// shutdown persists on quit. No credits are converted.
func (g *Game) shutdown() {
	if g.phase == core.PhasePlaying || g.phase == core.PhasePaused || g.phase == core.PhaseGameOver {
		g.closeRun(0)
	}
	g.save()
}

// closeRun records the run history entry once per run.
func (g *Game) closeRun(creditsEarned int) {
	if g.runRecorded {
		return
	}
	g.runRecorded = true
	score := g.world.Ship.Score
	if score <= 0 {
		return
	}
	rec, ok := g.store.(core.RunRecorder)
	if !ok {
		return
	}
	if err := rec.RecordRun(score, creditsEarned); err != nil {
		g.logger.Warn("failed to record run", "score", score, "error", err)
	}
}

func (g *Game) save() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.ledger.SaveData()); err != nil {
		g.logger.Warn("failed to save profile", "error", err)
		return
	}
	g.ledger.MarkSaved()
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.phase == core.PhasePaused,
	}
	if g.world != nil {
		st.Score = g.world.Ship.Score
		st.Lives = g.world.Ship.Lives
	}
	if g.ledger != nil {
		st.HighScore = g.ledger.HighScore
		st.Credits = g.ledger.Credits
	}
	return st
}
