package board

import (
	"sync"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

// State holds the last-known value of every leaderboard feed and the boards
// derived from them. Feeds (four merit windows plus the username directory,
// or one pre-joined snapshot) resolve at uncoordinated times; each write
// replaces its slot wholesale and recomputes the affected boards. Any subset
// of feeds being still-empty is a valid state.
type State struct {
	mu        sync.RWMutex
	forumBase string

	windows map[models.Window][]models.MeritWindowEntry
	names   map[int64]string
	boards  map[models.Window][]models.LeaderboardRow
	updated time.Time
	loaded  bool
}

// NewState returns an empty state; Board reports not-loaded until the first
// feed arrives.
func NewState(forumBase string) *State {
	return &State{
		forumBase: forumBase,
		windows:   make(map[models.Window][]models.MeritWindowEntry),
		names:     make(map[int64]string),
		boards:    make(map[models.Window][]models.LeaderboardRow),
	}
}

// SetWindow replaces one window's merit feed. Last write per window wins.
func (s *State) SetWindow(w models.Window, entries []models.MeritWindowEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[w] = entries
	s.boards[w] = Build(entries, s.names, s.forumBase)
	s.updated = time.Now()
	s.loaded = true
}

// SetDirectory replaces the username directory and rebuilds every board, so
// placeholder rows pick up names that arrived late.
func (s *State) SetDirectory(names map[int64]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if names == nil {
		names = map[int64]string{}
	}
	s.names = names
	for w, entries := range s.windows {
		s.boards[w] = Build(entries, s.names, s.forumBase)
	}
	s.updated = time.Now()
	s.loaded = true
}

// ApplySnapshot replaces all state from one pre-joined snapshot.
func (s *State) ApplySnapshot(snap *models.Snapshot) {
	boards := FromSnapshot(snap, s.forumBase)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = make(map[models.Window][]models.MeritWindowEntry)
	s.names = make(map[int64]string)
	for _, w := range models.Windows {
		for _, u := range snap.Users(w) {
			s.names[u.UserID] = u.Username
		}
		entries := make([]models.MeritWindowEntry, 0, len(snap.Users(w)))
		for _, u := range snap.Users(w) {
			entries = append(entries, models.MeritWindowEntry{UserID: u.UserID, Merit: u.MeritFor(w)})
		}
		s.windows[w] = entries
	}
	s.boards = boards
	s.updated = snap.LastUpdated
	s.loaded = true
}

// Board returns the current rows for a window, the last update time and
// whether any feed has arrived yet. An empty board on a loaded state is a
// valid empty result, distinct from still-loading.
func (s *State) Board(w models.Window) ([]models.LeaderboardRow, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boards[w], s.updated, s.loaded
}
