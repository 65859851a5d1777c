package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mult2048/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  rune
		want core.Action
	}{
		{'w', core.ActionUp},
		{'k', core.ActionUp},
		{'s', core.ActionDown},
		{'j', core.ActionDown},
		{'a', core.ActionLeft},
		{'h', core.ActionLeft},
		{'d', core.ActionRight},
		{'l', core.ActionRight},
		{'p', core.ActionPause},
		{'r', core.ActionRestart},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if isQuit {
			t.Errorf("MapKey(%q) flagged quit", tt.key)
		}
		if action != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, action, tt.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	action, isQuit := km.MapKey(keyMsg('q'))
	if !isQuit {
		t.Error("q should be a quit request")
	}
	if action != core.ActionQuit {
		t.Errorf("MapKey(q) = %v, want ActionQuit", action)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg('s'), &frame)

	if !frame.Has(core.ActionDown) {
		t.Error("frame should contain ActionDown after mapping s")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKeyToMenuAction(keyMsg('k')); got != MenuActionUp {
		t.Errorf("MapKeyToMenuAction(k) = %v, want MenuActionUp", got)
	}
	if got := km.MapKeyToMenuAction(keyMsg('j')); got != MenuActionDown {
		t.Errorf("MapKeyToMenuAction(j) = %v, want MenuActionDown", got)
	}
	if got := km.MapKeyToMenuAction(keyMsg('q')); got != MenuActionQuit {
		t.Errorf("MapKeyToMenuAction(q) = %v, want MenuActionQuit", got)
	}
}
