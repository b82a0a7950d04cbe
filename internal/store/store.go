// Package store provides read-only access to the collections the scraper
// populates: user records, signature campaigns and per-window merit feeds.
// Three interchangeable backends exist (Postgres, MongoDB, a local JSON
// file); handlers depend only on the interfaces.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/config"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

// UserSource is the queryable user-record collection.
type UserSource interface {
	// ListUsers returns every user record, highest merit first.
	ListUsers(ctx context.Context) ([]models.UserRecord, error)
	// ListActiveSince returns users with activity at or after cutoff, most
	// recent first.
	ListActiveSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error)
	// ListPromotedSince returns users promoted at or after cutoff, most
	// recent first.
	ListPromotedSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error)
}

// CampaignSource lists the tracked signature campaigns.
type CampaignSource interface {
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
}

// MeritSource exposes the live per-window merit feeds and the username
// directory. Each method reads one independent feed; callers must tolerate
// any of them being empty or stale relative to the others.
type MeritSource interface {
	WindowMerits(ctx context.Context, w models.Window) ([]models.MeritWindowEntry, error)
	Usernames(ctx context.Context) (map[int64]string, error)
}

// Source is a full backend.
type Source interface {
	UserSource
	CampaignSource
	MeritSource
	Ping(ctx context.Context) error
	Close()
}

// Open connects the backend selected by the configuration.
func Open(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.SourceDriver {
	case "postgres":
		return OpenPostgres(ctx, cfg.PostgresDSN)
	case "mongo":
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	case "file":
		return OpenFile(cfg.DataFile)
	}
	return nil, fmt.Errorf("unknown source driver %q", cfg.SourceDriver)
}
