package chats

import (
	"log/slog"
	"slices"
	"time"

	"github.com/a-poor/chatlist/internal/logger"
)

// Store owns the chat list and the current selection.
//
// The list is never modified in place: every change builds a new slice, so a
// slice handed out by the store stays valid. Storage order is insertion order
// with new chats first; use ListChats for display order.
type Store struct {
	chats []Chat

	selected    int64
	hasSelected bool

	lastID int64
	now    func() time.Time
	log    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for new chat ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger the store reports changes to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore creates a store holding a copy of seed.
func NewStore(seed []Chat, opts ...Option) *Store {
	s := &Store{
		chats: make([]Chat, 0, len(seed)),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.WithComponent("store")
	}

	// Copy the seed and track the highest id so new ids stay ahead of it
	for _, c := range seed {
		s.chats = append(s.chats, c.clone())
		s.lastID = max(s.lastID, c.ID)
	}
	return s
}

// Chats returns a copy of the chats in storage order.
func (s *Store) Chats() []Chat {
	out := make([]Chat, len(s.chats))
	for i, c := range s.chats {
		out[i] = c.clone()
	}
	return out
}

// ListChats returns the chats in display order. It is recomputed on every call.
func (s *Store) ListChats() []Chat {
	return SortForDisplay(s.chats)
}

// Len returns the number of chats.
func (s *Store) Len() int {
	return len(s.chats)
}

// Get returns the chat with the given id.
func (s *Store) Get(id int64) (Chat, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Chat{}, false
	}
	return s.chats[i].clone(), true
}

// Submit creates a chat from text, puts it first and selects it. Blank text
// is ignored and reported with false.
func (s *Store) Submit(text string, pin bool) (Chat, bool) {
	if IsBlank(text) {
		return Chat{}, false
	}

	now := s.now()
	c := Chat{
		ID:          s.nextID(now),
		Title:       TitleFromText(text),
		Description: text,
		Tags:        []string{UserTag},
		Author:      UserAuthor,
		CreatedAt:   now,
		Pinned:      pin,
	}

	// Prepend into a fresh slice
	next := make([]Chat, 0, len(s.chats)+1)
	next = append(next, c)
	next = append(next, s.chats...)
	s.chats = next

	s.selected, s.hasSelected = c.ID, true

	s.log.Info("Chat created", "id", c.ID, "pinned", pin, "chars", len([]rune(text)))
	return c.clone(), true
}

// TogglePin flips the pinned flag of the chat with the given id. Unknown ids
// are ignored and reported with false.
func (s *Store) TogglePin(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("Toggle pin on unknown chat", "id", id)
		return false
	}

	next := slices.Clone(s.chats)
	next[i].Pinned = !next[i].Pinned
	s.chats = next

	s.log.Info("Chat pin toggled", "id", id, "pinned", next[i].Pinned)
	return true
}

// Select makes id the current selection. The id is not checked; selecting
// an unknown id leaves nothing to show.
func (s *Store) Select(id int64) {
	s.selected, s.hasSelected = id, true
	s.log.Debug("Chat selected", "id", id)
}

// ClearSelection removes the current selection.
func (s *Store) ClearSelection() {
	s.selected, s.hasSelected = 0, false
	s.log.Debug("Selection cleared")
}

// SelectedID returns the selected id, if any.
func (s *Store) SelectedID() (int64, bool) {
	return s.selected, s.hasSelected
}

// Selected returns the selected chat. It reports false when nothing is
// selected or the selected id does not match a chat.
func (s *Store) Selected() (Chat, bool) {
	if !s.hasSelected {
		return Chat{}, false
	}
	return s.Get(s.selected)
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.chats, func(c Chat) bool {
		return c.ID == id
	})
}

// nextID derives an id from the clock, bumped past the last assigned id so
// ids stay unique and increasing even when the clock repeats or goes back.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
