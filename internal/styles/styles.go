// Package styles holds the colors and lipgloss styles shared by the bubbles.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Border        = lipgloss.Color("#1F2937")
	Surface       = lipgloss.Color("#1F2937")
	Raised        = lipgloss.Color("#374151")
	SelectedEdge  = lipgloss.Color("#4B5563")
	Muted         = lipgloss.Color("#6B7280")
	Dim           = lipgloss.Color("#9CA3AF")
	Soft          = lipgloss.Color("#D1D5DB")
	Text          = lipgloss.Color("#F9FAFB")
	Accent        = lipgloss.Color("#7C3AED")
	Pin           = lipgloss.Color("#EAB308")
	SendEnabled   = lipgloss.Color("#FFFFFF")
	SendDisabled  = lipgloss.Color("#374151")
	SendOnEnabled = lipgloss.Color("#111827")
)

// Layout constants
const (
	MinSidebarWidth     = 24
	DefaultSidebarWidth = 36
	MinTextareaHeight   = 1
	MaxTextareaHeight   = 5
	TitleLines          = 2
	DescriptionLines    = 2
)

// Sidebar
var (
	NewChatButton = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Raised).
			Foreground(Text).
			Padding(0, 1)

	Entry = lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Padding(0, 1)

	EntrySelected = Entry.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SelectedEdge)

	EntryCursor = Entry.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent)

	EntryTitle       = lipgloss.NewStyle().Bold(true).Foreground(Text)
	EntryDescription = lipgloss.NewStyle().Foreground(Dim)
	EntryMeta        = lipgloss.NewStyle().Foreground(Muted)
	PinIndicator     = lipgloss.NewStyle().Foreground(Pin)

	Tag = lipgloss.NewStyle().
		Background(Raised).
		Foreground(Soft).
		Padding(0, 1)

	SidebarFooter = lipgloss.NewStyle().
			Foreground(Muted).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(Border)
)

// Detail pane
var (
	DetailTitle = lipgloss.NewStyle().Bold(true).Foreground(Text).MarginBottom(1)

	DetailBody = lipgloss.NewStyle().
			Background(Surface).
			Foreground(Soft).
			Padding(1, 2)

	EmptyIcon    = lipgloss.NewStyle().Foreground(SelectedEdge)
	EmptyHeading = lipgloss.NewStyle().Foreground(Dim).Bold(true)
	EmptyBody    = lipgloss.NewStyle().Foreground(Muted)
)

// Composer
var (
	Composer = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Raised).
			Padding(0, 1)

	ComposerFocused = Composer.BorderForeground(Muted)

	SendButtonEnabled = lipgloss.NewStyle().
				Background(SendEnabled).
				Foreground(SendOnEnabled).
				Padding(0, 1)

	SendButtonDisabled = lipgloss.NewStyle().
				Background(SendDisabled).
				Foreground(Muted).
				Padding(0, 1)

	Hint = lipgloss.NewStyle().Foreground(Muted)
)
