package board

import (
	"strings"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
)

// DefaultPageSize matches the dashboard's 100-rows-per-page table.
const DefaultPageSize = 100

// View produces the page of rows to display.
//
// With an empty search term it slices the list into pages of pageSize rows;
// each row keeps the display rank it carries from aggregation, which is its
// absolute position in the full list. With a non-empty term it matches the
// term case-insensitively against every username in the full list and
// returns all matches on a single logical page, ranks untouched.
//
// Callers are expected to keep page within [1, totalPages]; out-of-range
// values are clamped here as hardening, since a feed update can shrink the
// list under a stale page number.
func View(list []models.LeaderboardRow, page, pageSize int, search string) models.PageView {
	term := strings.TrimSpace(search)
	if term != "" {
		term = strings.ToLower(term)
		matches := []models.LeaderboardRow{}
		for _, row := range list {
			if strings.Contains(strings.ToLower(row.Username), term) {
				matches = append(matches, row)
			}
		}
		return models.PageView{Rows: matches, Page: 1, TotalPages: 1}
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(list) + pageSize - 1) / pageSize
	if totalPages == 0 {
		return models.PageView{Rows: []models.LeaderboardRow{}, Page: 1, TotalPages: 0}
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(list))
	return models.PageView{Rows: list[start:end], Page: page, TotalPages: totalPages}
}
