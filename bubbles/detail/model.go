package detail

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/a-poor/chatlist/internal/chats"
	"github.com/a-poor/chatlist/internal/logger"
	"github.com/a-poor/chatlist/internal/styles"
)

const (
	EmptyIcon    = "💬"
	EmptyHeading = "Welcome to ChatAI"
	EmptyBody    = "Start a conversation or select a chat from the sidebar"

	maxContentWidth = 96
)

// Model shows the selected chat, or a welcome placeholder when there is none.
type Model struct {
	vp *viewport.Model

	chat chats.Chat
	ok   bool

	markdown bool
	renderer *glamour.TermRenderer
	wrapAt   int // Width the renderer was built for

	width, height int
	log           *slog.Logger
}

// New creates an empty detail pane. With markdown set, descriptions are
// rendered as markdown.
func New(markdown bool) *Model {
	vp := viewport.New(0, 0)
	return &Model{
		vp:       &vp,
		markdown: markdown,
		log:      logger.WithComponent("detail"),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize sets the size of the pane.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.vp.Width = width
	m.vp.Height = height
	m.refresh()
}

// SetChat sets the chat to show. With ok false the placeholder is shown.
func (m *Model) SetChat(c chats.Chat, ok bool) {
	changed := ok != m.ok || c.ID != m.chat.ID
	m.chat, m.ok = c, ok
	m.refresh()
	if changed {
		m.vp.GotoTop()
	}
}

// Chat returns the chat being shown.
func (m *Model) Chat() (chats.Chat, bool) {
	return m.chat, m.ok
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.vp.Update(msg)
	m.vp = &vp
	return m, cmd
}

func (m *Model) View() string {
	if !m.ok {
		return m.emptyView()
	}
	return m.vp.View()
}

func (m *Model) emptyView() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.EmptyIcon.Render(EmptyIcon),
		"",
		styles.EmptyHeading.Render(EmptyHeading),
		styles.EmptyBody.Render(EmptyBody),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// contentWidth is the text width, capped so long lines stay readable.
func (m *Model) contentWidth() int {
	return max(1, min(m.width-2, maxContentWidth))
}

func (m *Model) refresh() {
	if !m.ok || m.width <= 0 {
		m.vp.SetContent("")
		return
	}

	w := m.contentWidth()
	title := styles.DetailTitle.Render(hardWrap(m.chat.Title, w))
	m.vp.SetContent(lipgloss.JoinVertical(lipgloss.Left, title, m.body(w)))
}

func (m *Model) body(w int) string {
	frame := styles.DetailBody.GetHorizontalFrameSize()
	inner := max(1, w-frame)

	if m.markdown {
		out, err := m.renderMarkdown(m.chat.Description, w)
		if err == nil {
			return out
		}
		m.log.Warn("Markdown render failed, showing plain text", "id", m.chat.ID, "error", err)
	}
	return styles.DetailBody.Width(w).Render(hardWrap(m.chat.Description, inner))
}

func (m *Model) renderMarkdown(s string, w int) (string, error) {
	if m.renderer == nil || m.wrapAt != w {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			return "", err
		}
		m.renderer, m.wrapAt = r, w
	}
	out, err := m.renderer.Render(s)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

func hardWrap(s string, w int) string {
	return wrap.String(wordwrap.String(s, w), w)
}
