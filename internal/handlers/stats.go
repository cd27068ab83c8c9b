package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apierrors "github.com/yukikurage/member-care-api/internal/errors"
	"github.com/yukikurage/member-care-api/internal/services"
)

// StatsHandler serves dashboard statistics and analytics.
type StatsHandler struct {
	stats *services.StatsService
	log   *logrus.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats *services.StatsService, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{stats: stats, log: log}
}

// GetStats returns aggregate dashboard counts.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.stats.GetStats()
	if err != nil {
		h.log.WithError(err).Error("stats aggregation failed")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetAnalytics returns windowed growth metrics. The range query accepts
// 7d, 30d, 90d, or 1y and defaults to 30d.
func (h *StatsHandler) GetAnalytics(c *gin.Context) {
	timeRange := c.DefaultQuery("range", "30d")

	analytics, err := h.stats.GetAnalytics(timeRange)
	if err != nil {
		h.log.WithError(err).Error("analytics aggregation failed")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, analytics)
}
