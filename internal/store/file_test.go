package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

const fixture = `{
	"users": [
		{"id": "u1", "username": "alice", "rank": "Member", "merit": 42,
		 "lastScrapedAt": "2025-06-15T10:00:00Z", "promotedAt": "2025-06-14T09:00:00Z"},
		{"id": "u2", "username": "bob", "rank": "Newbie", "merit": 90,
		 "lastScrapedAt": "2025-06-01T10:00:00Z"}
	],
	"campaigns": [
		{"id": "ChipMixer", "status": "OPEN", "slots": {"Hero Member": 2}, "thread_id": 3078328}
	],
	"leaderboard": [
		{"username": "alice", "userId": 1, "merit7d": 5, "merit30d": 20},
		{"userId": 2, "merit7d": 9}
	]
}`

func openFixture(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	return s
}

func TestFileStoreListUsersSortedByMerit(t *testing.T) {
	s := openFixture(t)
	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 || users[0].Username != "bob" {
		t.Fatalf("users: %+v, want bob first (merit desc)", users)
	}
}

func TestOpenFileDecodesScraperTimestampKeys(t *testing.T) {
	// The export carries the scraper's key names (lastScrapedAt, promotedAt),
	// not the API's json tags; both must land on the record's timestamps.
	s := openFixture(t)
	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var alice models.UserRecord
	for _, u := range users {
		if u.Username == "alice" {
			alice = u
		}
	}
	if alice.LastActivityAt == nil || alice.PromotedAt == nil {
		t.Fatalf("timestamps not decoded: %+v", alice)
	}
	if want := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC); !alice.LastActivityAt.Equal(want) {
		t.Errorf("lastScrapedAt = %v, want %v", alice.LastActivityAt, want)
	}
	if want := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC); !alice.PromotedAt.Equal(want) {
		t.Errorf("promotedAt = %v, want %v", alice.PromotedAt, want)
	}
}

func TestFileStoreActiveAndPromotedCutoffs(t *testing.T) {
	s := openFixture(t)
	cutoff := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

	active, err := s.ListActiveSince(context.Background(), cutoff)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].Username != "alice" {
		t.Fatalf("active: %+v, want only alice", active)
	}

	promoted, err := s.ListPromotedSince(context.Background(), time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if len(promoted) != 1 || promoted[0].Username != "alice" {
		t.Fatalf("promoted: %+v, want only alice", promoted)
	}
}

func TestFileStoreMeritFeeds(t *testing.T) {
	s := openFixture(t)

	entries, err := s.WindowMerits(context.Background(), models.Window7d)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("7d entries: %+v", entries)
	}

	names, err := s.Usernames(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if names[1] != "alice" {
		t.Errorf("names[1] = %q, want alice", names[1])
	}
	if _, ok := names[2]; ok {
		t.Error("user 2 has no username in the fixture but appears in the directory")
	}
}

func TestFileStoreCampaigns(t *testing.T) {
	s := openFixture(t)
	campaigns, err := s.ListCampaigns(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(campaigns) != 1 || campaigns[0].ID != "ChipMixer" || campaigns[0].ThreadID != 3078328 {
		t.Fatalf("campaigns: %+v", campaigns)
	}
	if campaigns[0].Slots["Hero Member"] != 2 {
		t.Errorf("slots: %+v", campaigns[0].Slots)
	}
}
