package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyAltEnter  = tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	keyCtrlJ     = tea.KeyMsg{Type: tea.KeyCtrlJ}
	keyCtrlI     = tea.KeyMsg{Type: tea.KeyCtrlI}
	keyAltI      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}, Alt: true}
	keyShiftTab  = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyPlainI    = runes("i")
	keyCtrlP     = tea.KeyMsg{Type: tea.KeyCtrlP}
	keyRuneP     = runes("p")
	keyRuneN     = runes("n")
	keyUnrelated = tea.KeyMsg{Type: tea.KeyCtrlA}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDispatchKey(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		draft     string
		composing bool
		want      keyAction
	}{
		{"ctrl+i with draft", keyCtrlI, "hello", true, keySubmitPinned},
		{"ctrl+i with draft from sidebar", keyCtrlI, "hello", false, keySubmitPinned},
		{"alt+i with draft", keyAltI, "hello", false, keySubmitPinned},
		{"ctrl+i with blank draft", keyCtrlI, "   ", true, keyIgnored},
		{"ctrl+i with empty draft", keyCtrlI, "", false, keyIgnored},
		{"plain i", keyPlainI, "hello", true, keyIgnored},
		{"ctrl+p", keyCtrlP, "hello", true, keyIgnored},
		{"enter while composing", keyEnter, "hello", true, keySubmitPlain},
		{"enter while composing blank", keyEnter, " \n ", true, keySubmitPlain},
		{"enter in sidebar", keyEnter, "hello", false, keyIgnored},
		{"alt+enter inserts newline", keyAltEnter, "hello", true, keyIgnored},
		{"ctrl+j inserts newline", keyCtrlJ, "hello", true, keyIgnored},
		{"unrelated", keyUnrelated, "hello", true, keyIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dispatchKey(tt.msg, tt.draft, tt.composing))
		})
	}
}

func TestKeyListeners_ListenAndRelease(t *testing.T) {
	l := newKeyListeners()
	calls := 0
	release := l.Listen(func(tea.KeyMsg) (tea.Cmd, bool) {
		calls++
		return nil, true
	})
	assert.Equal(t, 1, l.Len())

	_, ok := l.Dispatch(keyEnter)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)

	release()
	assert.Equal(t, 0, l.Len())

	_, ok = l.Dispatch(keyEnter)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)

	// Releasing again is harmless
	release()
	assert.Equal(t, 0, l.Len())
}

func TestKeyListeners_FirstConsumerWins(t *testing.T) {
	l := newKeyListeners()
	var order []string

	l.Listen(func(tea.KeyMsg) (tea.Cmd, bool) {
		order = append(order, "first")
		return nil, false
	})
	l.Listen(func(tea.KeyMsg) (tea.Cmd, bool) {
		order = append(order, "second")
		return nil, true
	})
	l.Listen(func(tea.KeyMsg) (tea.Cmd, bool) {
		order = append(order, "third")
		return nil, true
	})

	_, ok := l.Dispatch(keyEnter)
	assert.True(t, ok)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestKeyListeners_ReleaseKeepsOthers(t *testing.T) {
	l := newKeyListeners()
	var got []string
	listener := func(name string) keyListener {
		return func(tea.KeyMsg) (tea.Cmd, bool) {
			got = append(got, name)
			return nil, false
		}
	}

	l.Listen(listener("a"))
	releaseB := l.Listen(listener("b"))
	l.Listen(listener("c"))

	releaseB()
	releaseB()
	l.Dispatch(keyEnter)

	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, 2, l.Len())
}
