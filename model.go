package main

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/a-poor/chatlist/bubbles/chatlist"
	"github.com/a-poor/chatlist/bubbles/detail"
	"github.com/a-poor/chatlist/bubbles/textbox"
	"github.com/a-poor/chatlist/internal/chats"
	"github.com/a-poor/chatlist/internal/logger"
	"github.com/a-poor/chatlist/internal/styles"
)

const (
	focusChatlist = "chatlist"
	focusTextbox  = "textbox"
)

var _ tea.Model = (*model)(nil)

type model struct {
	store *chats.Store
	w, h  int // Track the size of the window

	sidebarWidth int
	focus        string

	listeners *keyListeners
	release   func() // Drops the draft key listener; nil while not mounted

	list   *chatlist.Model
	box    *textbox.Model
	detail *detail.Model

	log *slog.Logger
}

type modelConfig struct {
	SidebarWidth int
	Markdown     bool
}

func newModel(store *chats.Store, cfg modelConfig) *model {
	// Set a default size (this will be updated quickly)
	w, h := 100, 30

	if cfg.SidebarWidth < styles.MinSidebarWidth {
		cfg.SidebarWidth = styles.DefaultSidebarWidth
	}

	m := &model{
		store:        store,
		w:            w,
		h:            h,
		sidebarWidth: cfg.SidebarWidth,
		focus:        focusTextbox,
		listeners:    newKeyListeners(),
		list:         chatlist.New(),
		box:          textbox.New(),
		detail:       detail.New(cfg.Markdown),
		log:          logger.WithComponent("model"),
	}
	m.box.Focus()
	m.layout()
	m.refresh()
	return m
}

// Init mounts the model: it registers the draft key listener. Calling Init
// again while mounted does not register a second one.
func (m *model) Init() tea.Cmd {
	if m.release == nil {
		m.release = m.listeners.Listen(m.handleDraftKey)
		m.log.Debug("Draft key listener registered")
	}
	return m.box.Init()
}

// Close unmounts the model, releasing the draft key listener.
func (m *model) Close() {
	if m.release == nil {
		return
	}
	m.release()
	m.release = nil
	m.log.Debug("Draft key listener released")
}

func (m *model) handleDraftKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch dispatchKey(msg, m.box.Value(), m.focus == focusTextbox) {
	case keySubmitPinned:
		return m.box.SubmitPinned(), true
	case keySubmitPlain:
		return m.box.SubmitPlain(), true
	}
	return nil, false
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Update the tracked size
		m.w, m.h = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}

		// Global listeners go first
		if cmd, ok := m.listeners.Dispatch(msg); ok {
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.SwitchPane):
			if m.focus == focusTextbox {
				return m, m.setFocus(focusChatlist)
			}
			return m, m.setFocus(focusTextbox)
		case key.Matches(msg, keys.Blur) && m.focus == focusTextbox:
			return m, m.setFocus(focusChatlist)
		case key.Matches(msg, keys.ScrollDetail):
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		if m.focus == focusTextbox {
			m.box, cmd = m.box.Update(msg)
			m.layout()
		} else {
			m.list, cmd = m.list.Update(msg)
		}
		return m, cmd

	case SetFocusMsg:
		return m, m.setFocus(msg.focus)

	case textbox.SubmitMsg:
		c, ok := m.store.Submit(msg.Text, msg.Pin)
		if !ok {
			return m, nil
		}
		m.box.Reset()
		m.layout()
		m.refresh()
		m.list.MoveTo(c.ID)
		return m, nil

	case chatlist.SelectMsg:
		m.store.Select(msg.ID)
		m.refresh()
		return m, nil

	case chatlist.TogglePinMsg:
		if m.store.TogglePin(msg.ID) {
			m.refresh()
		}
		return m, nil

	case chatlist.NewChatMsg:
		m.store.ClearSelection()
		m.refresh()
		return m, func() tea.Msg {
			return SetFocusMsg{focus: focusTextbox}
		}
	}

	// Everything else (cursor blink etc.) belongs to the composer
	var cmd tea.Cmd
	m.box, cmd = m.box.Update(msg)
	return m, cmd
}

func (m *model) setFocus(focus string) tea.Cmd {
	m.focus = focus
	switch focus {
	case focusChatlist:
		m.box.Blur()
		m.list.Focus()
		return nil
	default:
		m.focus = focusTextbox
		m.list.Blur()
		return m.box.Focus()
	}
}

// refresh pushes the store's current state into the panes.
func (m *model) refresh() {
	m.list.SetChats(m.store.ListChats())

	id, ok := m.store.SelectedID()
	m.list.SetSelected(id, ok)

	c, found := m.store.Selected()
	m.detail.SetChat(c, found)
}

// layout sizes the panes for the current window.
func (m *model) layout() {
	sw := min(m.sidebarWidth, max(0, m.w/2))
	mainW := max(0, m.w-sw-1)

	m.list.SetSize(sw, m.h)
	m.box.SetWidth(mainW)
	m.detail.SetSize(mainW, max(0, m.h-m.box.Height()))
}

func (m *model) View() string {
	sidebar := lipgloss.NewStyle().
		Width(m.list.Width()).
		Height(m.h).
		Render(m.list.View())

	divider := lipgloss.NewStyle().
		Foreground(styles.Border).
		Render(repeatLine("│", m.h))

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.detail.View(),
		m.box.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, divider, right)
}

func repeatLine(s string, n int) string {
	return strings.TrimSuffix(strings.Repeat(s+"\n", max(0, n)), "\n")
}

type SetFocusMsg struct {
	focus string
}
