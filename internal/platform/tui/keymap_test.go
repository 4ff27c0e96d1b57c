package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w steers up", runeKey('w'), core.ActionUp, false},
		{"s steers down", runeKey('s'), core.ActionDown, false},
		{"a steers left", runeKey('a'), core.ActionLeft, false},
		{"d steers right", runeKey('d'), core.ActionRight, false},
		{"up arrow steers up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"down arrow steers down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"left arrow steers left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right arrow steers right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space boosts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionBoost, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key does nothing", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('w'), &frame); quit {
		t.Error("w should not be a quit request")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("Expected ActionUp set in frame")
	}

	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("q should be a quit request")
	}
}
