package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	Port         string
	ForumBaseURL string

	// User-record source: "postgres", "mongo" or "file".
	SourceDriver string
	PostgresDSN  string
	MongoURI     string
	MongoDB      string
	DataFile     string

	// Leaderboard ingestion: "snapshot" fetches the pre-joined blob from
	// SnapshotURL; "store" reads per-window feeds from the record source.
	// One strategy per deployment.
	LeaderboardMode string
	SnapshotURL     string
	RefreshInterval time.Duration
	PageSize        int

	// Admin login for the snapshot reload endpoint. Optional; when the hash
	// is unset the admin routes are not registered.
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
}

// LoadConfig reads configuration from the environment, applying defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getenv("PORT", "8080"),
		ForumBaseURL:      getenv("FORUM_BASE_URL", "https://bitcointalk.org"),
		SourceDriver:      getenv("SOURCE_DRIVER", "mongo"),
		PostgresDSN:       os.Getenv("POSTGRES_DSN"),
		MongoURI:          getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           getenv("MONGO_DB", "btcdash"),
		DataFile:          os.Getenv("DATA_FILE"),
		LeaderboardMode:   getenv("LEADERBOARD_MODE", "snapshot"),
		SnapshotURL:       os.Getenv("LEADERBOARD_SNAPSHOT_URL"),
		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getenv("JWT_SECRET", "dev-secret-change-me"),
	}

	switch cfg.SourceDriver {
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("SOURCE_DRIVER=postgres requires POSTGRES_DSN")
		}
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("SOURCE_DRIVER=mongo requires MONGO_URI")
		}
	case "file":
		if cfg.DataFile == "" {
			return nil, fmt.Errorf("SOURCE_DRIVER=file requires DATA_FILE")
		}
	default:
		return nil, fmt.Errorf("unknown SOURCE_DRIVER %q", cfg.SourceDriver)
	}

	switch cfg.LeaderboardMode {
	case "snapshot":
		if cfg.SnapshotURL == "" {
			return nil, fmt.Errorf("LEADERBOARD_MODE=snapshot requires LEADERBOARD_SNAPSHOT_URL")
		}
	case "store":
	default:
		return nil, fmt.Errorf("unknown LEADERBOARD_MODE %q", cfg.LeaderboardMode)
	}

	pageSize, err := strconv.Atoi(getenv("PAGE_SIZE", "100"))
	if err != nil || pageSize < 1 {
		return nil, fmt.Errorf("invalid PAGE_SIZE: %q", os.Getenv("PAGE_SIZE"))
	}
	cfg.PageSize = pageSize

	interval, err := time.ParseDuration(getenv("REFRESH_INTERVAL", "15m"))
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %q", os.Getenv("REFRESH_INTERVAL"))
	}
	cfg.RefreshInterval = interval

	return cfg, nil
}

// AdminEnabled reports whether the admin endpoints should be registered.
func (c *Config) AdminEnabled() bool {
	return c.AdminPasswordHash != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
