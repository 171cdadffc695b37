package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aceup/cron"
	"aceup/services/analytics"
	"aceup/services/availability"
	"aceup/utils"
)

// AnalyticsHandler exposes weekly workload reports.
type AnalyticsHandler struct {
	Service analytics.Service
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(svc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc}
}

// GroupReportHandler returns the workload report for a group's week.
// weekStart defaults to the current week when omitted.
func (h *AnalyticsHandler) GroupReportHandler(c *gin.Context) {
	logger := utils.GetLogger()
	groupID := c.Param("groupID")

	weekStart := cron.CurrentWeekStart(time.Now().UTC())
	if raw := c.Query("weekStart"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekStart", "message": err.Error()})
			return
		}
		weekStart = parsed
	}

	report, err := h.Service.GroupWeekReport(c.Request.Context(), groupID, weekStart)
	if err != nil {
		if errors.Is(err, availability.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.Error("Failed to build group report", zap.String("groupID", groupID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
