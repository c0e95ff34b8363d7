package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-rocket/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap())
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRotateRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, core.ActionMenu},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldInputWindow(t *testing.T) {
	h := newHeldInput(200 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionThrust, t0)
	h.Press(core.ActionPause, t0)

	f := h.Frame(t0.Add(16 * time.Millisecond))
	if !f.Has(core.ActionThrust) || !f.Has(core.ActionPause) {
		t.Fatalf("first frame missing actions")
	}

	f = h.Frame(t0.Add(150 * time.Millisecond))
	if !f.Has(core.ActionThrust) {
		t.Error("thrust should still be held inside the window")
	}
	if f.Has(core.ActionPause) {
		t.Error("pause must be delivered to one frame only")
	}

	f = h.Frame(t0.Add(250 * time.Millisecond))
	if f.Has(core.ActionThrust) {
		t.Error("thrust should expire after the window")
	}
}

func TestHeldInputRelease(t *testing.T) {
	h := newHeldInput(time.Second)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionRotateLeft, t0)
	h.Release()
	if h.Frame(t0).Has(core.ActionRotateLeft) {
		t.Error("Release should drop held actions")
	}
}

func TestHeldInputFireIsOneFrame(t *testing.T) {
	h := newHeldInput(DefaultHoldWindow)
	t0 := time.Unix(1000, 0)
	frame := time.Second / 60

	h.Press(core.ActionFire, t0)
	fires := 0
	for i := 1; i <= 15; i++ {
		if h.Frame(t0.Add(time.Duration(i) * frame)).Has(core.ActionFire) {
			fires++
		}
	}
	if fires != 1 {
		t.Errorf("one fire press produced %d fire frames, expected 1", fires)
	}

	// Auto-repeat delivers another edge.
	h.Press(core.ActionFire, t0.Add(20*frame))
	if !h.Frame(t0.Add(21 * frame)).Has(core.ActionFire) {
		t.Error("repeated fire press should fire again")
	}
}
