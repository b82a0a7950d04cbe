package window

import (
	"testing"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func tsAgo(d time.Duration) *time.Time {
	t := now.Add(-d)
	return &t
}

func TestWithin(t *testing.T) {
	if !Within(tsAgo(23*time.Hour), Activity, now) {
		t.Error("23h ago: not within 24h window")
	}
	if Within(tsAgo(25*time.Hour), Activity, now) {
		t.Error("25h ago: within 24h window")
	}
	if !Within(tsAgo(Activity), Activity, now) {
		t.Error("exactly 24h ago: not within window (boundary is inclusive)")
	}
	if Within(nil, Activity, now) {
		t.Error("nil timestamp: within window")
	}
}

func TestActiveSinceFiltersAndSorts(t *testing.T) {
	users := []models.UserRecord{
		{ID: "1", Username: "old", LastActivityAt: tsAgo(48 * time.Hour)},
		{ID: "2", Username: "recent", LastActivityAt: tsAgo(2 * time.Hour)},
		{ID: "3", Username: "missing"},
		{ID: "4", Username: "newest", LastActivityAt: tsAgo(10 * time.Minute)},
	}
	got := ActiveSince(users, now)
	if len(got) != 2 {
		t.Fatalf("active = %d, want 2", len(got))
	}
	if got[0].Username != "newest" || got[1].Username != "recent" {
		t.Errorf("order: %s, %s; want newest, recent", got[0].Username, got[1].Username)
	}
}

func TestPromotedSince(t *testing.T) {
	users := []models.UserRecord{
		{ID: "1", Username: "last-month", PromotedAt: tsAgo(30 * 24 * time.Hour)},
		{ID: "2", Username: "yesterday", PromotedAt: tsAgo(24 * time.Hour)},
		{ID: "3", Username: "never"},
	}
	got := PromotedSince(users, now)
	if len(got) != 1 || got[0].Username != "yesterday" {
		t.Fatalf("promoted: %+v, want only yesterday", got)
	}
}

func TestFiltersAreIdempotent(t *testing.T) {
	users := []models.UserRecord{
		{ID: "1", LastActivityAt: tsAgo(time.Hour), PromotedAt: tsAgo(time.Hour)},
		{ID: "2", LastActivityAt: tsAgo(3 * time.Hour)},
	}
	a1 := ActiveSince(users, now)
	a2 := ActiveSince(users, now)
	if len(a1) != len(a2) || a1[0].ID != a2[0].ID {
		t.Fatal("ActiveSince is not idempotent")
	}
}
