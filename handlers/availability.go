package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aceup/cron"
	"aceup/models"
	"aceup/services/availability"
	"aceup/utils"
)

// defaultSlotLimit caps how many slots a query returns unless the caller
// asks for more; the app shows the top five.
const defaultSlotLimit = 5

// AvailabilityHandler serves availability queries.
type AvailabilityHandler struct {
	Service availability.Service
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

type availabilityQuery struct {
	GroupID   string              `json:"groupId" binding:"required"`
	Weekday   *int                `json:"weekday" binding:"required"` // 0 = Sunday … 6 = Saturday
	WeekStart string              `json:"weekStart"`                  // "2006-01-02", defaults to the current week
	Limit     int                 `json:"limit"`                      // 0 means the default of 5; -1 means unlimited
	Config    models.EngineConfig `json:"config"`
}

// QueryHandler computes the common free slots and conflicts for one
// (group, weekday) pair.
func (h *AvailabilityHandler) QueryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req availabilityQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability query", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if *req.Weekday < 0 || *req.Weekday > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Weekday must be between 0 (Sunday) and 6 (Saturday)"})
		return
	}
	weekStart, err := resolveWeekStart(req.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekStart date", "message": err.Error()})
		return
	}

	result, err := h.Service.GetGroupAvailability(c.Request.Context(), req.GroupID, weekStart, time.Weekday(*req.Weekday), req.Config)
	if err != nil {
		if errors.Is(err, availability.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.Error("Failed to compute availability", zap.String("groupID", req.GroupID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability", "message": err.Error()})
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultSlotLimit
	}
	c.JSON(http.StatusOK, gin.H{
		"groupId":        req.GroupID,
		"weekday":        *req.Weekday,
		"weekStart":      weekStart.Format("2006-01-02"),
		"freeSlots":      trimFreeSlots(result.FreeSlots, limit),
		"conflicts":      trimConflicts(result.Conflicts, limit),
		"skippedMembers": result.SkippedMembers,
	})
}

// WeekHandler computes availability for all seven weekdays of a week.
func (h *AvailabilityHandler) WeekHandler(c *gin.Context) {
	groupID := c.Param("groupID")
	weekStart, err := resolveWeekStart(c.Query("weekStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekStart date", "message": err.Error()})
		return
	}

	week, err := h.Service.GetGroupWeek(c.Request.Context(), groupID, weekStart, models.DefaultEngineConfig())
	if err != nil {
		if errors.Is(err, availability.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute week availability", "message": err.Error()})
		return
	}

	type dayEntry struct {
		Weekday int                       `json:"weekday"`
		Result  models.AvailabilityResult `json:"result"`
	}
	days := make([]dayEntry, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, dayEntry{Weekday: int(d), Result: week[d]})
	}
	c.JSON(http.StatusOK, gin.H{
		"groupId":   groupID,
		"weekStart": weekStart.Format("2006-01-02"),
		"days":      days,
	})
}

func resolveWeekStart(raw string) (time.Time, error) {
	if raw == "" {
		return cron.CurrentWeekStart(time.Now().UTC()), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.UTC)
}

func trimFreeSlots(slots []models.CommonFreeSlot, limit int) []models.CommonFreeSlot {
	if limit < 0 || len(slots) <= limit {
		return slots
	}
	return slots[:limit]
}

func trimConflicts(slots []models.ConflictingSlot, limit int) []models.ConflictingSlot {
	if limit < 0 || len(slots) <= limit {
		return slots
	}
	return slots[:limit]
}
