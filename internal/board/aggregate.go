// Package board builds the per-window merit leaderboards and serves
// paginated, searchable views over them.
package board

import (
	"fmt"
	"sort"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

// placeholderName labels a row whose user id has no entry in the username
// directory yet. The directory arrives on its own feed, so a gap here is
// normal, not an error.
func placeholderName(userID int64) string {
	return fmt.Sprintf("user #%d", userID)
}

// Build assembles one window's leaderboard from raw merit entries and the
// username directory. Rows are ordered by merit descending; ties keep the
// relative order of the input (stable sort), which is the documented
// tie-break. Ranks are the 1-based positions in the sorted list.
func Build(entries []models.MeritWindowEntry, names map[int64]string, forumBase string) []models.LeaderboardRow {
	rows := make([]models.LeaderboardRow, len(entries))
	for i, e := range entries {
		name, ok := names[e.UserID]
		if !ok || name == "" {
			name = placeholderName(e.UserID)
		}
		rows[i] = models.LeaderboardRow{
			UserID:     e.UserID,
			Username:   name,
			Merit:      e.Merit,
			ProfileURL: models.ProfileURL(forumBase, e.UserID),
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Merit > rows[j].Merit
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// FromSnapshot builds all four window leaderboards from one pre-joined
// snapshot. Each window is aggregated independently; a user may appear in
// some windows and not others.
func FromSnapshot(snap *models.Snapshot, forumBase string) map[models.Window][]models.LeaderboardRow {
	boards := make(map[models.Window][]models.LeaderboardRow, len(models.Windows))
	for _, w := range models.Windows {
		users := snap.Users(w)
		entries := make([]models.MeritWindowEntry, len(users))
		names := make(map[int64]string, len(users))
		for i, u := range users {
			entries[i] = models.MeritWindowEntry{UserID: u.UserID, Merit: u.MeritFor(w)}
			names[u.UserID] = u.Username
		}
		boards[w] = Build(entries, names, forumBase)
	}
	return boards
}
