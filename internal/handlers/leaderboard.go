package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/board"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

// GetLeaderboard serves one page of a window's merit leaderboard, or all
// search matches when a search term is present.
func GetLeaderboard(state *board.State, pageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, ok := models.ParseWindow(c.DefaultQuery("window", string(models.Window7d)))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown leaderboard window"})
			return
		}

		page := 1
		if raw := c.Query("page"); raw != "" {
			p, err := strconv.Atoi(raw)
			if err != nil || p < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
				return
			}
			page = p
		}

		rows, updated, loaded := state.Board(w)
		if !loaded {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Leaderboard data is still loading"})
			return
		}

		view := board.View(rows, page, pageSize, c.Query("search"))
		c.JSON(http.StatusOK, models.LeaderboardResponse{
			Window:      w,
			LastUpdated: updated,
			PageView:    view,
		})
	}
}
