package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

var snapshotClient = &http.Client{Timeout: 30 * time.Second}

// FetchSnapshot downloads the published pre-joined leaderboard snapshot.
// Any transport failure or non-200 status is returned as an error; callers
// keep serving the previous snapshot until a fetch succeeds.
func FetchSnapshot(ctx context.Context, url string) (*models.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}

	resp, err := snapshotClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot fetch returned status %d", resp.StatusCode)
	}

	var snap models.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}
