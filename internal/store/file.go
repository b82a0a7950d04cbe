package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/window"
)

// FileStore serves a static JSON export of the scraper's collections from
// local disk. Useful for development and as the degraded deployment shape
// when no database is reachable.
type FileStore struct {
	users     []models.UserRecord
	campaigns []models.Campaign
	board     []models.SnapshotUser
}

// fileUser is one user document as the scraper exports it. The export keeps
// the document-store key names, which differ from the API's json tags, so the
// file schema gets its own decode type (same split as mongo's boardDoc).
type fileUser struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Rank          string     `json:"rank"`
	Merit         int        `json:"merit"`
	Posts         int        `json:"posts"`
	LastScrapedAt *time.Time `json:"lastScrapedAt"`
	PromotedAt    *time.Time `json:"promotedAt"`
	ProfileURL    string     `json:"profileUrl"`
}

func (u fileUser) record() models.UserRecord {
	return models.UserRecord{
		ID:             u.ID,
		Username:       u.Username,
		Rank:           u.Rank,
		Merit:          u.Merit,
		Posts:          u.Posts,
		LastActivityAt: u.LastScrapedAt,
		PromotedAt:     u.PromotedAt,
		ProfileURL:     u.ProfileURL,
	}
}

type fileData struct {
	Users       []fileUser            `json:"users"`
	Campaigns   []models.Campaign     `json:"campaigns"`
	Leaderboard []models.SnapshotUser `json:"leaderboard"`
}

// OpenFile loads the export once; the data is immutable afterwards.
func OpenFile(path string) (*FileStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode data file: %w", err)
	}
	users := make([]models.UserRecord, len(data.Users))
	for i, u := range data.Users {
		users[i] = u.record()
	}
	return &FileStore{
		users:     users,
		campaigns: data.Campaigns,
		board:     data.Leaderboard,
	}, nil
}

// ListUsers returns every user record, highest merit first.
func (s *FileStore) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	users := append([]models.UserRecord(nil), s.users...)
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Merit > users[j].Merit
	})
	return users, nil
}

// ListActiveSince filters in memory using the recency window logic.
func (s *FileStore) ListActiveSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error) {
	return window.ActiveSince(s.users, cutoff.Add(window.Activity)), nil
}

// ListPromotedSince filters in memory using the recency window logic.
func (s *FileStore) ListPromotedSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error) {
	return window.PromotedSince(s.users, cutoff.Add(window.Promotion)), nil
}

// ListCampaigns returns the exported campaigns.
func (s *FileStore) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return append([]models.Campaign(nil), s.campaigns...), nil
}

// WindowMerits projects one window's merit feed out of the export.
func (s *FileStore) WindowMerits(ctx context.Context, w models.Window) ([]models.MeritWindowEntry, error) {
	entries := make([]models.MeritWindowEntry, len(s.board))
	for i, u := range s.board {
		entries[i] = models.MeritWindowEntry{UserID: u.UserID, Merit: u.MeritFor(w)}
	}
	return entries, nil
}

// Usernames returns the user id to display name directory.
func (s *FileStore) Usernames(ctx context.Context) (map[int64]string, error) {
	names := make(map[int64]string, len(s.board))
	for _, u := range s.board {
		if u.Username != "" {
			names[u.UserID] = u.Username
		}
	}
	return names, nil
}

// Ping always succeeds for the in-memory store.
func (s *FileStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *FileStore) Close() {}
