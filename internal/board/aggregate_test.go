package board

import (
	"reflect"
	"testing"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

const forumBase = "https://bitcointalk.org"

func TestBuildSortsAndRanks(t *testing.T) {
	entries := []models.MeritWindowEntry{
		{UserID: 10, Merit: 5},
		{UserID: 20, Merit: 50},
		{UserID: 30, Merit: 12},
	}
	names := map[int64]string{10: "alice", 20: "bob", 30: "carol"}

	rows := Build(entries, names, forumBase)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	wantOrder := []int64{20, 30, 10}
	for i, want := range wantOrder {
		if rows[i].UserID != want {
			t.Errorf("row %d: user %d, want %d", i, rows[i].UserID, want)
		}
		if rows[i].Rank != i+1 {
			t.Errorf("row %d: rank %d, want %d", i, rows[i].Rank, i+1)
		}
	}
	if rows[0].ProfileURL != "https://bitcointalk.org/index.php?action=profile;u=20" {
		t.Errorf("profile url: %s", rows[0].ProfileURL)
	}
}

func TestBuildStableTieBreak(t *testing.T) {
	// Equal merit keeps input order; ranks stay dense with no gaps.
	entries := []models.MeritWindowEntry{
		{UserID: 1, Merit: 7},
		{UserID: 2, Merit: 9},
		{UserID: 3, Merit: 7},
		{UserID: 4, Merit: 7},
	}
	rows := Build(entries, nil, forumBase)
	wantOrder := []int64{2, 1, 3, 4}
	for i, want := range wantOrder {
		if rows[i].UserID != want {
			t.Fatalf("row %d: user %d, want %d (tie-break must keep input order)", i, rows[i].UserID, want)
		}
		if rows[i].Rank != i+1 {
			t.Fatalf("row %d: rank %d, want %d", i, rows[i].Rank, i+1)
		}
	}
}

func TestBuildMissingUsernamePlaceholder(t *testing.T) {
	rows := Build([]models.MeritWindowEntry{{UserID: 987654, Merit: 3}}, map[int64]string{}, forumBase)
	if rows[0].Username != "user #987654" {
		t.Fatalf("placeholder = %q", rows[0].Username)
	}
}

func TestBuildDeterministic(t *testing.T) {
	entries := []models.MeritWindowEntry{{UserID: 1, Merit: 4}, {UserID: 2, Merit: 4}, {UserID: 3, Merit: 8}}
	r1 := Build(entries, nil, forumBase)
	r2 := Build(entries, nil, forumBase)
	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("determinism violated: %v vs %v", r1, r2)
	}
}

func TestFromSnapshotWindowsAreIndependent(t *testing.T) {
	snap := &models.Snapshot{
		LastUpdated: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Leaderboard7d: []models.SnapshotUser{
			{UserID: 1, Username: "alice", Merit7d: 10, Merit30d: 40},
			{UserID: 2, Username: "bob", Merit7d: 25, Merit30d: 30},
		},
		Leaderboard30d: []models.SnapshotUser{
			{UserID: 1, Username: "alice", Merit7d: 10, Merit30d: 40},
		},
	}
	boards := FromSnapshot(snap, forumBase)

	b7 := boards[models.Window7d]
	if len(b7) != 2 || b7[0].UserID != 2 || b7[0].Merit != 25 {
		t.Fatalf("7d board: %+v", b7)
	}
	b30 := boards[models.Window30d]
	if len(b30) != 1 || b30[0].Merit != 40 {
		t.Fatalf("30d board: %+v", b30)
	}
	if len(boards[models.Window90d]) != 0 {
		t.Fatalf("90d board should be empty, got %+v", boards[models.Window90d])
	}
}
