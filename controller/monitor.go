package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/monitor"
	"github.com/rtaylor52242/logo-animator-studio/studio"
)

// GetHealth handles GET /api/monitor/health.
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, monitor.Snapshot(studio.Sessions.Count(), studio.Sessions.Videos.Len(), studio.Sessions.SubscriberCount()))
}
