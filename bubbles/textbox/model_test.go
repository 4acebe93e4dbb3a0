package textbox

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFocused(t *testing.T) *Model {
	t.Helper()
	m := New()
	m.SetWidth(100)
	m.Focus()
	return m
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNew(t *testing.T) {
	m := New()
	assert.Equal(t, "", m.Value())
	assert.False(t, m.CanSubmit())
	assert.False(t, m.Focused())
}

func TestSetValueIsVerbatim(t *testing.T) {
	m := New()
	m.SetValue("  spaced\n  out  ")
	assert.Equal(t, "  spaced\n  out  ", m.Value())
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		draft string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"\n\n", false},
		{"\t ", false},
		{"x", true},
		{"  hello  ", true},
	}
	for _, tt := range tests {
		m := New()
		m.SetValue(tt.draft)
		assert.Equal(t, tt.want, m.CanSubmit(), "draft %q", tt.draft)
	}
}

func TestSubmitBlankReturnsNil(t *testing.T) {
	m := New()
	m.SetValue("   ")

	assert.Nil(t, m.SubmitPlain())
	assert.Nil(t, m.SubmitPinned())
}

func TestSubmit(t *testing.T) {
	m := New()
	m.SetValue("hello")

	cmd := m.SubmitPlain()
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitMsg{Text: "hello", Pin: false}, cmd())

	cmd = m.SubmitPinned()
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitMsg{Text: "hello", Pin: true}, cmd())

	// Submitting does not clear the draft by itself
	assert.Equal(t, "hello", m.Value())
}

func TestSubmitCapturesDraftAtCallTime(t *testing.T) {
	m := New()
	m.SetValue("first")
	cmd := m.SubmitPlain()

	m.SetValue("second")
	assert.Equal(t, SubmitMsg{Text: "first"}, cmd())
}

func TestReset(t *testing.T) {
	m := New()
	m.SetValue("something")
	m.Reset()

	assert.Equal(t, "", m.Value())
	assert.False(t, m.CanSubmit())
}

func TestTyping(t *testing.T) {
	m := newFocused(t)
	typeText(m, "hi")
	assert.Equal(t, "hi", m.Value())

	// Unfocused input is ignored
	m.Blur()
	typeText(m, "!")
	assert.Equal(t, "hi", m.Value())
}

func TestNewlineKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEnter, Alt: true},
		{Type: tea.KeyCtrlJ},
	} {
		t.Run(k.String(), func(t *testing.T) {
			m := newFocused(t)
			typeText(m, "a")
			m.Update(k)
			typeText(m, "b")
			assert.Equal(t, "a\nb", m.Value())
		})
	}
}

func TestEnterDoesNotInsertNewline(t *testing.T) {
	m := newFocused(t)
	typeText(m, "a")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "a", m.Value())
}

func TestHeightGrowsWithContent(t *testing.T) {
	m := New()
	m.SetWidth(100)
	base := m.Height()

	m.SetValue("one\ntwo\nthree")
	assert.Equal(t, base+2, m.Height())

	// Capped
	m.SetValue("1\n2\n3\n4\n5\n6\n7\n8\n9")
	assert.Equal(t, base+4, m.Height())

	m.Reset()
	assert.Equal(t, base, m.Height())
}

func TestView(t *testing.T) {
	m := New()
	m.SetWidth(100)

	assert.Contains(t, m.View(), HintText)
	assert.Contains(t, m.View(), sendIcon)
}
