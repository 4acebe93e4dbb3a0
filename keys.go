package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/a-poor/chatlist/internal/chats"
)

// keyMap holds the application-wide key bindings.
type keyMap struct {
	Quit         key.Binding
	SwitchPane   key.Binding
	Blur         key.Binding
	Submit       key.Binding
	SubmitPinned key.Binding
	ScrollDetail key.Binding
}

// Terminals deliver Ctrl+I as Tab and never see the Command key, so the
// pinned submit also answers to Alt+I.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	SwitchPane: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "switch pane"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "sidebar"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send"),
	),
	SubmitPinned: key.NewBinding(
		key.WithKeys("tab", "ctrl+i", "alt+i"),
		key.WithHelp("ctrl+i", "send pinned"),
	),
	ScrollDetail: key.NewBinding(
		key.WithKeys("pgup", "pgdown"),
		key.WithHelp("pgup/pgdn", "scroll"),
	),
}

// keyAction is what a key press does to the draft.
type keyAction int

const (
	keyIgnored keyAction = iota
	keySubmitPlain
	keySubmitPinned
)

// dispatchKey decides whether a key press submits the draft. Ctrl+I submits
// pinned from anywhere, but only when the draft has content. Enter submits
// while composing, even a blank draft, so it never inserts a newline.
func dispatchKey(msg tea.KeyMsg, draft string, composing bool) keyAction {
	switch {
	case key.Matches(msg, keys.SubmitPinned) && !chats.IsBlank(draft):
		return keySubmitPinned
	case composing && key.Matches(msg, keys.Submit):
		return keySubmitPlain
	}
	return keyIgnored
}

// keyListener reacts to a key press and reports whether it consumed it.
type keyListener func(tea.KeyMsg) (tea.Cmd, bool)

// keyListeners is a registry of global key listeners. Listeners see key
// presses before the focused component does.
type keyListeners struct {
	nextID int
	order  []int
	fns    map[int]keyListener
}

func newKeyListeners() *keyListeners {
	return &keyListeners{fns: make(map[int]keyListener)}
}

// Listen registers fn and returns a func that removes it again. Calling the
// returned func more than once is a no-op.
func (l *keyListeners) Listen(fn keyListener) (release func()) {
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	l.order = append(l.order, id)

	return func() {
		if _, ok := l.fns[id]; !ok {
			return
		}
		delete(l.fns, id)
		for i, v := range l.order {
			if v == id {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of registered listeners.
func (l *keyListeners) Len() int {
	return len(l.fns)
}

// Dispatch offers msg to the listeners in registration order and stops at
// the first one that consumes it.
func (l *keyListeners) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	for _, id := range l.order {
		if cmd, ok := l.fns[id](msg); ok {
			return cmd, true
		}
	}
	return nil, false
}
