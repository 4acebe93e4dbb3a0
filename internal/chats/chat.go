// Package chats holds the conversation records shown in the sidebar and the
// in-memory store that owns them.
package chats

import (
	"slices"
	"strings"
	"time"
)

const (
	TitleLimit   = 50    // Max runes of submitted text used as the title
	Ellipsis     = "..." // Appended to truncated titles
	UserTag      = "user-chat"
	UserAuthor   = "user"
	MaxShownTags = 3 // Tags beyond this are not displayed
)

// Chat is a single conversation entry.
type Chat struct {
	ID          int64
	Title       string
	Description string
	Tags        []string
	Author      string
	CreatedAt   time.Time
	Pinned      bool
}

// ShownTags returns the tags that should be displayed.
func (c Chat) ShownTags() []string {
	if len(c.Tags) <= MaxShownTags {
		return c.Tags
	}
	return c.Tags[:MaxShownTags]
}

func (c Chat) clone() Chat {
	c.Tags = slices.Clone(c.Tags)
	return c
}

// TitleFromText derives a title from submitted text: the first TitleLimit
// runes, followed by Ellipsis when the text was longer.
func TitleFromText(text string) string {
	r := []rune(text)
	if len(r) <= TitleLimit {
		return text
	}
	return string(r[:TitleLimit]) + Ellipsis
}

// IsBlank reports whether text is empty after trimming whitespace. Blank
// text is never submitted.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
