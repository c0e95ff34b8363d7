package core

// SaveData is the persistent state that survives between sessions.
type SaveData struct {
	HighScore int
	Credits   int
}

// Persistence loads and stores SaveData.
// Implementations should fail open on Load: missing or unreadable state
// yields a zero SaveData and the error is informational only.
type Persistence interface {
	Load() (SaveData, error)
	Save(SaveData) error
}

// RunRecorder is implemented by persistence backends that keep a history of
// finished runs in addition to the profile.
type RunRecorder interface {
	RecordRun(score, creditsEarned int) error
}
