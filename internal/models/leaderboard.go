package models

import "time"

// Window identifies one of the trailing merit-accumulation periods.
type Window string

const (
	Window7d   Window = "7d"
	Window30d  Window = "30d"
	Window90d  Window = "90d"
	Window120d Window = "120d"
)

// Windows lists all leaderboard windows in display order.
var Windows = []Window{Window7d, Window30d, Window90d, Window120d}

// ParseWindow maps a query-string value onto a known window.
func ParseWindow(s string) (Window, bool) {
	switch Window(s) {
	case Window7d, Window30d, Window90d, Window120d:
		return Window(s), true
	}
	return "", false
}

// MeritWindowEntry is one user's merit total inside a single window.
// The user id is a weak reference: the username directory may not have
// caught up with this entry yet.
type MeritWindowEntry struct {
	UserID int64 `json:"user_id" bson:"userId"`
	Merit  int   `json:"merit" bson:"merit"`
}

// SnapshotUser is one row of the pre-joined leaderboard snapshot, carrying
// merit totals for every window at once.
type SnapshotUser struct {
	Username     string `json:"username"`
	UserID       int64  `json:"userId"`
	CurrentMerit int    `json:"currentMerit"`
	Merit7d      int    `json:"merit7d"`
	Merit30d     int    `json:"merit30d"`
	Merit90d     int    `json:"merit90d"`
	Merit120d    int    `json:"merit120d"`
}

// MeritFor returns the user's merit total for the given window.
func (u SnapshotUser) MeritFor(w Window) int {
	switch w {
	case Window7d:
		return u.Merit7d
	case Window30d:
		return u.Merit30d
	case Window90d:
		return u.Merit90d
	case Window120d:
		return u.Merit120d
	}
	return 0
}

// Snapshot is the published leaderboard object: four ordered lists plus the
// build timestamp.
type Snapshot struct {
	LastUpdated     time.Time      `json:"lastUpdated"`
	Leaderboard7d   []SnapshotUser `json:"leaderboard7d"`
	Leaderboard30d  []SnapshotUser `json:"leaderboard30d"`
	Leaderboard90d  []SnapshotUser `json:"leaderboard90d"`
	Leaderboard120d []SnapshotUser `json:"leaderboard120d"`
}

// Users returns the snapshot list for the given window.
func (s *Snapshot) Users(w Window) []SnapshotUser {
	switch w {
	case Window7d:
		return s.Leaderboard7d
	case Window30d:
		return s.Leaderboard30d
	case Window90d:
		return s.Leaderboard90d
	case Window120d:
		return s.Leaderboard120d
	}
	return nil
}

// LeaderboardRow is one ranked row of a single-window leaderboard.
type LeaderboardRow struct {
	Rank       int    `json:"rank"`
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	Merit      int    `json:"merit"`
	ProfileURL string `json:"profile_url"`
}

// PageView is the slice of a leaderboard actually shown: either one page of
// the full list, or every search match on a single logical page.
type PageView struct {
	Rows       []LeaderboardRow `json:"rows"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// LeaderboardResponse is the API response for the leaderboard view.
type LeaderboardResponse struct {
	Window      Window    `json:"window"`
	LastUpdated time.Time `json:"last_updated"`
	PageView
}
