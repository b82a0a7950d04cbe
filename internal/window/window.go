// Package window classifies record timestamps against trailing recency
// windows. The reference instant is always an explicit argument so callers
// and tests control the clock.
package window

import (
	"sort"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

const (
	// Activity is the window for the "active users" view.
	Activity = 24 * time.Hour
	// Promotion is the window for the "recently promoted" view.
	Promotion = 7 * 24 * time.Hour
)

// Within reports whether ts falls inside the trailing window of length d
// ending at now. A missing timestamp is never within any window.
func Within(ts *time.Time, d time.Duration, now time.Time) bool {
	if ts == nil {
		return false
	}
	return !ts.Before(now.Add(-d))
}

// ActiveSince returns the users active within the activity window, most
// recent first.
func ActiveSince(users []models.UserRecord, now time.Time) []models.UserRecord {
	out := []models.UserRecord{}
	for _, u := range users {
		if Within(u.LastActivityAt, Activity, now) {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivityAt.After(*out[j].LastActivityAt)
	})
	return out
}

// PromotedSince returns the users promoted within the promotion window, most
// recent first.
func PromotedSince(users []models.UserRecord, now time.Time) []models.UserRecord {
	out := []models.UserRecord{}
	for _, u := range users {
		if Within(u.PromotedAt, Promotion, now) {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PromotedAt.After(*out[j].PromotedAt)
	})
	return out
}
