package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/auth"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/board"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/config"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/handlers"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/logger"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/middleware"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/store"
	"github.com/gin-gonic/gin"
)

var Version = "dev"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s source: %v", cfg.SourceDriver, err)
	}
	defer src.Close()
	logger.Success("Connected to %s source", cfg.SourceDriver)

	state := board.NewState(cfg.ForumBaseURL)
	go refreshLoop(ctx, state, src, cfg)

	// Initialize Gin
	r := gin.Default()
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := src.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// Version endpoint
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version": Version,
			"service": "bitcointalk-dashboard",
		})
	})

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Bitcointalk Dashboard API",
			"version": Version,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/users/active", handlers.ListActiveUsers(src))
		api.GET("/users/rankup", handlers.ListRankupUsers(src))
		api.GET("/users/promoted", handlers.ListPromotedUsers(src))
		api.GET("/leaderboard", handlers.GetLeaderboard(state, cfg.PageSize))
		api.GET("/campaigns", handlers.ListCampaigns(src, cfg.ForumBaseURL))
	}

	if cfg.AdminEnabled() {
		jwtService := auth.NewJWTService(cfg.JWTSecret, "bitcointalk-dashboard")
		admin := r.Group("/api/admin")
		admin.POST("/login", handlers.Login(jwtService, cfg))
		admin.POST("/reload", middleware.RequireAdmin(jwtService), handlers.ReloadLeaderboard(state, src, cfg))
	} else {
		logger.Warning("ADMIN_PASSWORD_HASH not set, admin endpoints disabled")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Server shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited")
}

// refreshLoop keeps the leaderboard state current: once at startup, then on
// every refresh interval. Failures leave the previous state in place.
func refreshLoop(ctx context.Context, state *board.State, src store.MeritSource, cfg *config.Config) {
	refresh := func() {
		if cfg.LeaderboardMode == "snapshot" {
			refreshFromSnapshot(ctx, state, cfg.SnapshotURL)
		} else {
			refreshFromStore(ctx, state, src)
		}
	}

	refresh()
	ticker := time.NewTicker(cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

func refreshFromSnapshot(ctx context.Context, state *board.State, url string) {
	snap, err := store.FetchSnapshot(ctx, url)
	if err != nil {
		logger.Warning("snapshot refresh failed: %v", err)
		return
	}
	state.ApplySnapshot(snap)
	logger.Info("leaderboard snapshot applied (built %s)", snap.LastUpdated)
}

// refreshFromStore reads each merit feed and the username directory as
// independent updates; any subset succeeding still advances the state.
func refreshFromStore(ctx context.Context, state *board.State, src store.MeritSource) {
	for _, w := range models.Windows {
		entries, err := src.WindowMerits(ctx, w)
		if err != nil {
			logger.Warning("merit feed %s refresh failed: %v", w, err)
			continue
		}
		state.SetWindow(w, entries)
	}
	names, err := src.Usernames(ctx)
	if err != nil {
		logger.Warning("username directory refresh failed: %v", err)
		return
	}
	state.SetDirectory(names)
}
