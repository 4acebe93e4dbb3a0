package detail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-poor/chatlist/internal/chats"
)

func seedChat(t *testing.T, id int64) chats.Chat {
	t.Helper()
	for _, c := range chats.Seed() {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("no seed chat %d", id)
	return chats.Chat{}
}

func TestEmptyState(t *testing.T) {
	m := New(false)
	m.SetSize(80, 20)

	view := m.View()
	assert.Contains(t, view, EmptyHeading)
	assert.Contains(t, view, EmptyBody)

	_, ok := m.Chat()
	assert.False(t, ok)
}

func TestShowsChat(t *testing.T) {
	m := New(false)
	m.SetSize(80, 20)
	c := seedChat(t, 3)
	m.SetChat(c, true)

	view := m.View()
	assert.Contains(t, view, c.Title)
	assert.Contains(t, view, "Explicit saves")
	assert.NotContains(t, view, EmptyHeading)

	got, ok := m.Chat()
	require.True(t, ok)
	assert.Equal(t, c.ID, got.ID)
}

func TestBackToEmptyState(t *testing.T) {
	m := New(false)
	m.SetSize(80, 20)
	m.SetChat(seedChat(t, 1), true)
	m.SetChat(chats.Chat{}, false)

	assert.Contains(t, m.View(), EmptyHeading)
}

func TestLongDescriptionWraps(t *testing.T) {
	m := New(false)
	m.SetSize(40, 50)
	m.SetChat(chats.Chat{
		ID:          1,
		Title:       "Wrapped",
		Description: strings.Repeat("word ", 40),
	}, true)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40)
	}
}

func TestMarkdown(t *testing.T) {
	m := New(true)
	m.SetSize(80, 30)
	m.SetChat(chats.Chat{
		ID:          1,
		Title:       "Notes",
		Description: "Some **bold** text",
	}, true)

	view := m.View()
	assert.Contains(t, view, "bold")
	assert.NotContains(t, view, "**")
}

func TestSetChatBeforeSize(t *testing.T) {
	m := New(false)
	m.SetChat(seedChat(t, 2), true)
	m.SetSize(80, 20)

	assert.Contains(t, m.View(), "Vibe Coding")
}
