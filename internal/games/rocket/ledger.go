package rocket

import "github.com/vovakirdan/retro-rocket/internal/core"

// ScoreLedger tracks the persistent side of scoring: the all-time high score
// and the credits balance. The per-run score lives on the ship.
type ScoreLedger struct {
	HighScore int
	Credits   int

	rate  int
	dirty bool
}

// NewScoreLedger seeds the ledger from saved data.
func NewScoreLedger(saved core.SaveData, rate int) *ScoreLedger {
	if rate < 1 {
		rate = 1
	}
	return &ScoreLedger{
		HighScore: max(saved.HighScore, 0),
		Credits:   max(saved.Credits, 0),
		rate:      rate,
	}
}

// Award adds points to the run score and raises the high score if it was
// passed. Returns true when a new high score was set.
func (l *ScoreLedger) Award(ship *Ship, points int) bool {
	if points <= 0 {
		return false
	}
	ship.Score += points
	if ship.Score > l.HighScore {
		l.HighScore = ship.Score
		l.dirty = true
		return true
	}
	return false
}

// Convert turns a finished run's score into credits at the configured rate
// and returns how many were earned.
func (l *ScoreLedger) Convert(score int) int {
	if score <= 0 {
		return 0
	}
	earned := score / l.rate
	if earned > 0 {
		l.Credits += earned
		l.dirty = true
	}
	return earned
}

// Dirty reports whether there are changes not yet persisted.
func (l *ScoreLedger) Dirty() bool {
	return l.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (l *ScoreLedger) MarkSaved() {
	l.dirty = false
}

// SaveData returns the persistable view of the ledger.
func (l *ScoreLedger) SaveData() core.SaveData {
	return core.SaveData{HighScore: l.HighScore, Credits: l.Credits}
}

// Restore replaces balances with loaded data.
func (l *ScoreLedger) Restore(saved core.SaveData) {
	l.HighScore = max(saved.HighScore, 0)
	l.Credits = max(saved.Credits, 0)
	l.dirty = false
}
