package handlers

import (
	"net/http"
	"strings"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/auth"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/board"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/config"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/logger"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/middleware"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login authenticates the dashboard admin and returns a JWT token
func Login(jwtService *auth.JWTService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		username := strings.ToLower(strings.TrimSpace(req.Username))
		if username != strings.ToLower(cfg.AdminUsername) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := jwtService.GenerateToken(username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{Token: token, Username: username})
	}
}

// ReloadLeaderboard re-reads the leaderboard source and replaces the served
// state. It does not scrape anything; it only reloads what the out-of-band
// builder already published.
func ReloadLeaderboard(state *board.State, src store.MeritSource, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if username, ok := middleware.GetAuthUsername(c); ok {
			logger.Info("leaderboard reload requested by %s", username)
		}

		if cfg.LeaderboardMode == "snapshot" {
			snap, err := store.FetchSnapshot(ctx, cfg.SnapshotURL)
			if err != nil {
				logger.Error("snapshot reload failed: %v", err)
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch leaderboard snapshot"})
				return
			}
			state.ApplySnapshot(snap)
			logger.Success("leaderboard snapshot reloaded (built %s)", snap.LastUpdated)
			c.JSON(http.StatusOK, gin.H{"status": "reloaded", "last_updated": snap.LastUpdated})
			return
		}

		// Store mode: refresh each feed independently; a failing feed keeps
		// its previous value.
		refreshed := 0
		for _, w := range models.Windows {
			entries, err := src.WindowMerits(ctx, w)
			if err != nil {
				logger.Warning("merit feed %s reload failed: %v", w, err)
				continue
			}
			state.SetWindow(w, entries)
			refreshed++
		}
		if names, err := src.Usernames(ctx); err != nil {
			logger.Warning("username directory reload failed: %v", err)
		} else {
			state.SetDirectory(names)
			refreshed++
		}

		if refreshed == 0 {
			c.JSON(http.StatusBadGateway, gin.H{"error": "No leaderboard feed could be refreshed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "reloaded", "feeds_refreshed": refreshed})
	}
}
