package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads the scraper's tables through a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres creates a pooled Postgres-backed store.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

const userColumns = `user_id, username, rank, merit, posts, last_activity_at, promoted_at, profile_url`

func (s *PostgresStore) scanUsers(rows pgx.Rows) ([]models.UserRecord, error) {
	defer rows.Close()
	users := []models.UserRecord{}
	for rows.Next() {
		var u models.UserRecord
		err := rows.Scan(
			&u.ID, &u.Username, &u.Rank, &u.Merit, &u.Posts,
			&u.LastActivityAt, &u.PromotedAt, &u.ProfileURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListUsers returns every user record, highest merit first.
func (s *PostgresStore) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY merit DESC`, userColumns)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return s.scanUsers(rows)
}

// ListActiveSince returns users active at or after cutoff, most recent first.
func (s *PostgresStore) ListActiveSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE last_activity_at >= $1
		ORDER BY last_activity_at DESC
	`, userColumns)
	rows, err := s.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query active users: %w", err)
	}
	return s.scanUsers(rows)
}

// ListPromotedSince returns users promoted at or after cutoff, most recent first.
func (s *PostgresStore) ListPromotedSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE promoted_at >= $1
		ORDER BY promoted_at DESC
	`, userColumns)
	rows, err := s.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query promoted users: %w", err)
	}
	return s.scanUsers(rows)
}

// ListCampaigns returns the tracked signature campaigns. The name column is
// the campaign key and scans into Campaign.ID, matching the document store's
// name-as-_id convention.
func (s *PostgresStore) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	query := `
		SELECT name, status, slots, COALESCE(thread_id, 0)
		FROM campaigns
		ORDER BY name ASC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []models.Campaign{}
	for rows.Next() {
		var c models.Campaign
		var slots []byte
		if err := rows.Scan(&c.ID, &c.Status, &slots, &c.ThreadID); err != nil {
			return nil, fmt.Errorf("failed to scan campaign row: %w", err)
		}
		if len(slots) > 0 {
			if err := json.Unmarshal(slots, &c.Slots); err != nil {
				return nil, fmt.Errorf("failed to decode campaign slots: %w", err)
			}
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// WindowMerits returns one window's merit feed, highest merit first.
func (s *PostgresStore) WindowMerits(ctx context.Context, w models.Window) ([]models.MeritWindowEntry, error) {
	query := `
		SELECT user_id, merit
		FROM merit_windows
		WHERE window = $1
		ORDER BY merit DESC
	`
	rows, err := s.pool.Query(ctx, query, string(w))
	if err != nil {
		return nil, fmt.Errorf("failed to query merit window %s: %w", w, err)
	}
	defer rows.Close()

	entries := []models.MeritWindowEntry{}
	for rows.Next() {
		var e models.MeritWindowEntry
		if err := rows.Scan(&e.UserID, &e.Merit); err != nil {
			return nil, fmt.Errorf("failed to scan merit row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Usernames returns the user id to display name directory.
func (s *PostgresStore) Usernames(ctx context.Context) (map[int64]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT user_id, username FROM leaderboard_users`)
	if err != nil {
		return nil, fmt.Errorf("failed to query usernames: %w", err)
	}
	defer rows.Close()

	names := map[int64]string{}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan username row: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}

// Ping checks the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
