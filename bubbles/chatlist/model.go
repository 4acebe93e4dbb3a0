package chatlist

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/a-poor/chatlist/internal/chats"
	"github.com/a-poor/chatlist/internal/styles"
)

// KeyMap defines the sidebar key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Select    key.Binding
	TogglePin key.Binding
	NewChat   key.Binding
}

// DefaultKeyMap returns the default sidebar key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		TogglePin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin"),
		),
		NewChat: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new chat"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.TogglePin, k.NewChat}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Select, k.TogglePin, k.NewChat},
	}
}

// SelectMsg asks for the chat to be shown in the detail pane.
type SelectMsg struct {
	ID int64
}

// TogglePinMsg asks for the chat's pinned flag to be flipped.
type TogglePinMsg struct {
	ID int64
}

// NewChatMsg asks for the selection to be cleared and the composer focused.
type NewChatMsg struct{}

// Model is the sidebar: a "New chat" button, the chats in display order and
// a key hint footer.
type Model struct {
	KeyMap KeyMap

	vp   *viewport.Model
	help help.Model

	chats  []chats.Chat
	cursor int
	starts []int // First line of each entry in the rendered list

	selected    int64
	hasSelected bool

	width, height int
	focused       bool
}

// New creates an empty sidebar.
func New() *Model {
	vp := viewport.New(0, 0)
	h := help.New()
	h.ShortSeparator = " · "

	return &Model{
		KeyMap: DefaultKeyMap(),
		vp:     &vp,
		help:   h,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize sets the outer size of the sidebar.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.vp.Width = width
	m.vp.Height = max(0, height-m.headerHeight()-m.footerHeight())
	m.render()
}

// Width returns the sidebar width.
func (m *Model) Width() int {
	return m.width
}

// Focus gives the sidebar keyboard focus.
func (m *Model) Focus() {
	m.focused = true
	m.render()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
	m.render()
}

// Focused reports whether the sidebar has keyboard focus.
func (m *Model) Focused() bool {
	return m.focused
}

// SetChats replaces the displayed chats. They must already be in display
// order. The cursor stays on the chat it was on when that chat is still present.
func (m *Model) SetChats(cs []chats.Chat) {
	current, ok := m.Current()
	m.chats = cs
	if ok && m.moveTo(current.ID) {
		m.render()
		return
	}
	m.cursor = min(m.cursor, max(0, len(cs)-1))
	m.render()
}

// Chats returns the displayed chats.
func (m *Model) Chats() []chats.Chat {
	return m.chats
}

// SetSelected marks the chat shown in the detail pane.
func (m *Model) SetSelected(id int64, ok bool) {
	m.selected, m.hasSelected = id, ok
	m.render()
}

// MoveTo puts the cursor on the chat with the given id. It reports false if
// no such chat is displayed.
func (m *Model) MoveTo(id int64) bool {
	if !m.moveTo(id) {
		return false
	}
	m.render()
	return true
}

func (m *Model) moveTo(id int64) bool {
	for i, c := range m.chats {
		if c.ID == id {
			m.cursor = i
			return true
		}
	}
	return false
}

// Current returns the chat under the cursor.
func (m *Model) Current() (chats.Chat, bool) {
	if m.cursor < 0 || m.cursor >= len(m.chats) {
		return chats.Chat{}, false
	}
	return m.chats[m.cursor], true
}

// Cursor returns the cursor index.
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.setCursor(m.cursor - 1)
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.setCursor(m.cursor + 1)
	case key.Matches(keyMsg, m.KeyMap.Top):
		m.setCursor(0)
	case key.Matches(keyMsg, m.KeyMap.Bottom):
		m.setCursor(len(m.chats) - 1)
	case key.Matches(keyMsg, m.KeyMap.Select):
		if c, ok := m.Current(); ok {
			return m, func() tea.Msg { return SelectMsg{ID: c.ID} }
		}
	case key.Matches(keyMsg, m.KeyMap.TogglePin):
		if c, ok := m.Current(); ok {
			return m, func() tea.Msg { return TogglePinMsg{ID: c.ID} }
		}
	case key.Matches(keyMsg, m.KeyMap.NewChat):
		return m, func() tea.Msg { return NewChatMsg{} }
	}
	return m, nil
}

func (m *Model) setCursor(i int) {
	if len(m.chats) == 0 {
		return
	}
	m.cursor = max(0, min(i, len(m.chats)-1))
	m.render()
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.vp.View(),
		m.footerView(),
	)
}

func (m *Model) headerView() string {
	w := max(0, m.width-2)
	return styles.NewChatButton.Width(w).Render("+ New chat")
}

func (m *Model) headerHeight() int {
	return lipgloss.Height(m.headerView())
}

func (m *Model) footerView() string {
	return styles.SidebarFooter.Width(m.width).Render(m.help.View(m.KeyMap))
}

func (m *Model) footerHeight() int {
	return lipgloss.Height(m.footerView())
}

// render rebuilds the list content and scrolls the cursor into view.
func (m *Model) render() {
	if m.width <= 0 {
		return
	}

	// Render every entry, remembering where each one starts
	var (
		parts []string
		line  int
	)
	m.starts = m.starts[:0]
	for i, c := range m.chats {
		entry := m.renderEntry(c, i == m.cursor)
		m.starts = append(m.starts, line)
		line += lipgloss.Height(entry)
		parts = append(parts, entry)
	}
	m.vp.SetContent(strings.Join(parts, "\n"))

	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.cursor >= len(m.starts) || m.vp.Height <= 0 {
		return
	}
	top := m.starts[m.cursor]
	bottom := m.vp.TotalLineCount()
	if m.cursor+1 < len(m.starts) {
		bottom = m.starts[m.cursor+1]
	}

	switch {
	case top < m.vp.YOffset:
		m.vp.SetYOffset(top)
	case bottom > m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(bottom - m.vp.Height)
	}
}

func (m *Model) renderEntry(c chats.Chat, atCursor bool) string {
	style := styles.Entry
	switch {
	case atCursor && m.focused:
		style = styles.EntryCursor
	case m.hasSelected && c.ID == m.selected:
		style = styles.EntrySelected
	}

	// Border and padding take two columns each
	inner := max(1, m.width-style.GetHorizontalFrameSize())

	// The title shares its first line with the pin indicator
	titleWidth := max(1, inner-3)
	title := clampLines(c.Title, titleWidth, styles.TitleLines)
	if c.Pinned {
		lines := strings.Split(title, "\n")
		pad := strings.Repeat(" ", max(0, titleWidth-lipgloss.Width(lines[0])))
		lines[0] = lines[0] + pad + " " + styles.PinIndicator.Render(PinIcon)
		title = strings.Join(lines, "\n")
	}

	rows := []string{
		styles.EntryTitle.Render(title),
		styles.EntryDescription.Render(clampLines(c.Description, inner, styles.DescriptionLines)),
	}
	if tags := renderTags(c.ShownTags(), inner); tags != "" {
		rows = append(rows, tags)
	}
	rows = append(rows, renderMeta(c, inner))

	return style.Width(inner + 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// PinIcon marks pinned chats in the sidebar.
const PinIcon = "📌"

// FormatDate formats a creation time as it is shown in the sidebar, e.g. "Aug 21".
func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2")
}

// renderMeta renders the date on the left and the author, truncated to the
// remaining width, on the right.
func renderMeta(c chats.Chat, width int) string {
	date := FormatDate(c.CreatedAt)
	room := width - lipgloss.Width(date) - 2
	if room <= 0 {
		return styles.EntryMeta.Render(date)
	}
	author := truncate.StringWithTail(c.Author, uint(room), "…")
	gap := strings.Repeat(" ", width-lipgloss.Width(date)-lipgloss.Width(author))
	return styles.EntryMeta.Render(date + gap + author)
}

// renderTags renders tags as pills, wrapping onto new lines as needed.
func renderTags(tags []string, width int) string {
	var (
		lines []string
		cur   string
	)
	for _, t := range tags {
		pill := styles.Tag.Render(truncate.StringWithTail(t, uint(max(1, width-2)), "…"))
		switch {
		case cur == "":
			cur = pill
		case lipgloss.Width(cur)+1+lipgloss.Width(pill) <= width:
			cur += " " + pill
		default:
			lines = append(lines, cur)
			cur = pill
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}

// clampLines wraps s to width and keeps at most n lines, marking a cut with
// an ellipsis.
func clampLines(s string, width, n int) string {
	lines := strings.Split(wrap.String(wordwrap.String(s, width), width), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}

	lines = lines[:n]
	last := strings.TrimRight(lines[n-1], " ")
	if lipgloss.Width(last)+1 > width {
		last = truncate.StringWithTail(last, uint(width), "…")
	} else {
		last += "…"
	}
	lines[n-1] = last
	return strings.Join(lines, "\n")
}
