package handlers

import (
	"net/http"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/logger"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/rank"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/store"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/window"
	"github.com/gin-gonic/gin"
)

// ListActiveUsers returns users seen on the forum in the last 24 hours.
func ListActiveUsers(src store.UserSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cutoff := time.Now().Add(-window.Activity)
		users, err := src.ListActiveSince(c.Request.Context(), cutoff)
		if err != nil {
			logger.Error("active users query failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load active users"})
			return
		}
		c.JSON(http.StatusOK, models.UserListResponse{Users: users, Count: len(users)})
	}
}

// ListRankupUsers returns users close to their next rank, annotated with the
// merit they still need.
func ListRankupUsers(src store.UserSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := src.ListUsers(c.Request.Context())
		if err != nil {
			logger.Error("rank-up users query failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load users"})
			return
		}
		candidates := rank.Candidates(users)
		c.JSON(http.StatusOK, gin.H{
			"users": candidates,
			"count": len(candidates),
		})
	}
}

// ListPromotedUsers returns users who ranked up in the last 7 days.
func ListPromotedUsers(src store.UserSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cutoff := time.Now().Add(-window.Promotion)
		users, err := src.ListPromotedSince(c.Request.Context(), cutoff)
		if err != nil {
			logger.Error("promoted users query failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load promoted users"})
			return
		}
		c.JSON(http.StatusOK, models.UserListResponse{Users: users, Count: len(users)})
	}
}
