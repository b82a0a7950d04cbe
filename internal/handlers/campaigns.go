package handlers

import (
	"net/http"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/logger"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
	"github.com/Ronyah390/bitcointalk-dashboard/internal/store"
	"github.com/gin-gonic/gin"
)

// ListCampaigns returns the tracked signature campaigns with their thread
// links resolved. An empty list is a normal result.
func ListCampaigns(src store.CampaignSource, forumBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaigns, err := src.ListCampaigns(c.Request.Context())
		if err != nil {
			logger.Error("campaigns query failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load campaigns"})
			return
		}
		for i := range campaigns {
			if campaigns[i].ThreadID != 0 {
				campaigns[i].ThreadURL = models.ThreadURL(forumBase, campaigns[i].ThreadID)
			}
		}
		c.JSON(http.StatusOK, models.CampaignListResponse{Campaigns: campaigns, Count: len(campaigns)})
	}
}
