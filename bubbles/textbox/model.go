package textbox

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/a-poor/chatlist/internal/chats"
	"github.com/a-poor/chatlist/internal/styles"
)

const (
	Placeholder = "Message ChatAI..."
	HintText    = "Press Enter to send, Alt+Enter for new line, Ctrl+I to pin"
	sendIcon    = "➤"
)

// SubmitMsg carries a draft that should become a new chat.
type SubmitMsg struct {
	Text string
	Pin  bool
}

// Model is the composition panel. It owns the draft.
type Model struct {
	ta    *textarea.Model
	width int
}

// New creates an empty, unfocused composer.
func New() *Model {
	ta := textarea.New()
	ta.Placeholder = Placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(styles.MinTextareaHeight)

	// Enter submits, so newlines come from the keys a terminal can tell apart
	ta.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys("alt+enter", "ctrl+j", "shift+enter"),
		key.WithHelp("alt+enter", "new line"),
	)

	return &Model{ta: &ta}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Value returns the draft.
func (m *Model) Value() string {
	return m.ta.Value()
}

// SetValue replaces the draft verbatim.
func (m *Model) SetValue(s string) {
	m.ta.SetValue(s)
	m.adjustHeight()
}

// Reset clears the draft.
func (m *Model) Reset() {
	m.ta.Reset()
	m.adjustHeight()
}

// CanSubmit reports whether the draft would produce a chat.
func (m *Model) CanSubmit() bool {
	return !chats.IsBlank(m.ta.Value())
}

// SubmitPlain returns a command submitting the draft unpinned, or nil when
// the draft is blank.
func (m *Model) SubmitPlain() tea.Cmd {
	return m.submit(false)
}

// SubmitPinned returns a command submitting the draft pinned, or nil when
// the draft is blank.
func (m *Model) SubmitPinned() tea.Cmd {
	return m.submit(true)
}

func (m *Model) submit(pin bool) tea.Cmd {
	if !m.CanSubmit() {
		return nil
	}
	text := m.ta.Value()
	return func() tea.Msg {
		return SubmitMsg{Text: text, Pin: pin}
	}
}

// Focus gives the composer keyboard focus.
func (m *Model) Focus() tea.Cmd {
	return m.ta.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.ta.Blur()
}

// Focused reports whether the composer has keyboard focus.
func (m *Model) Focused() bool {
	return m.ta.Focused()
}

// SetWidth sets the outer width of the composer.
func (m *Model) SetWidth(w int) {
	m.width = w
	frame := styles.Composer.GetHorizontalFrameSize()
	m.ta.SetWidth(max(1, w-frame-lipgloss.Width(m.sendView())-1))
}

// Height returns the rendered height, including the hint line.
func (m *Model) Height() int {
	return lipgloss.Height(m.View())
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	ta, cmd := m.ta.Update(msg)
	m.ta = &ta
	m.adjustHeight()
	return m, cmd
}

// adjustHeight grows the textarea with its content, within limits.
func (m *Model) adjustHeight() {
	lines := strings.Count(m.ta.Value(), "\n") + 1
	h := max(styles.MinTextareaHeight, min(lines, styles.MaxTextareaHeight))
	if h != m.ta.Height() {
		m.ta.SetHeight(h)
	}
}

func (m *Model) sendView() string {
	if m.CanSubmit() {
		return styles.SendButtonEnabled.Render(sendIcon)
	}
	return styles.SendButtonDisabled.Render(sendIcon)
}

func (m *Model) View() string {
	style := styles.Composer
	if m.ta.Focused() {
		style = styles.ComposerFocused
	}

	input := lipgloss.JoinHorizontal(lipgloss.Bottom,
		m.ta.View(),
		" ",
		m.sendView(),
	)
	box := style.Render(input)

	hint := styles.Hint.Width(max(0, m.width)).Align(lipgloss.Center).Render(HintText)
	return lipgloss.JoinVertical(lipgloss.Left, box, hint)
}
