package board

import (
	"testing"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

func TestStateNotLoadedInitially(t *testing.T) {
	s := NewState(forumBase)
	rows, _, loaded := s.Board(models.Window7d)
	if loaded {
		t.Fatal("fresh state reports loaded")
	}
	if len(rows) != 0 {
		t.Fatalf("fresh state has rows: %+v", rows)
	}
}

func TestStatePartialFeeds(t *testing.T) {
	s := NewState(forumBase)

	// Merit feed arrives before the username directory: rows render with
	// placeholders, other windows stay empty but the state counts as loaded.
	s.SetWindow(models.Window7d, []models.MeritWindowEntry{{UserID: 5, Merit: 3}})

	rows, _, loaded := s.Board(models.Window7d)
	if !loaded || len(rows) != 1 {
		t.Fatalf("after one feed: loaded=%v rows=%+v", loaded, rows)
	}
	if rows[0].Username != "user #5" {
		t.Errorf("username before directory: %q", rows[0].Username)
	}
	if other, _, _ := s.Board(models.Window30d); len(other) != 0 {
		t.Errorf("30d board populated by 7d feed: %+v", other)
	}

	// Directory arrives later; already-built boards pick up the name.
	s.SetDirectory(map[int64]string{5: "eve"})
	rows, _, _ = s.Board(models.Window7d)
	if rows[0].Username != "eve" {
		t.Errorf("username after directory: %q", rows[0].Username)
	}
}

func TestStateLastWritePerWindowWins(t *testing.T) {
	s := NewState(forumBase)
	s.SetWindow(models.Window30d, []models.MeritWindowEntry{{UserID: 1, Merit: 1}})
	s.SetWindow(models.Window30d, []models.MeritWindowEntry{{UserID: 2, Merit: 9}, {UserID: 3, Merit: 4}})

	rows, _, _ := s.Board(models.Window30d)
	if len(rows) != 2 || rows[0].UserID != 2 {
		t.Fatalf("second write did not replace the slot: %+v", rows)
	}
}

func TestStateApplySnapshot(t *testing.T) {
	s := NewState(forumBase)
	s.SetWindow(models.Window7d, []models.MeritWindowEntry{{UserID: 99, Merit: 99}})

	updated := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	s.ApplySnapshot(&models.Snapshot{
		LastUpdated:   updated,
		Leaderboard7d: []models.SnapshotUser{{UserID: 1, Username: "alice", Merit7d: 6}},
	})

	rows, ts, loaded := s.Board(models.Window7d)
	if !loaded || len(rows) != 1 || rows[0].UserID != 1 {
		t.Fatalf("snapshot did not replace state: %+v", rows)
	}
	if !ts.Equal(updated) {
		t.Errorf("lastUpdated = %v, want %v", ts, updated)
	}
}
