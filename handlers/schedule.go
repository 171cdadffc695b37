package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	groupRepo "aceup/database/repository/group"
	scheduleRepo "aceup/database/repository/schedule"
	"aceup/models"
	"aceup/services/event"
	"aceup/utils"
)

// ScheduleHandler manages member weekly availability.
type ScheduleHandler struct {
	Repo      scheduleRepo.ScheduleRepository
	GroupRepo groupRepo.GroupRepository
	Refresher event.RefreshEnqueuer
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(repo scheduleRepo.ScheduleRepository, groups groupRepo.GroupRepository, refresher event.RefreshEnqueuer) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo, GroupRepo: groups, Refresher: refresher}
}

type upsertScheduleRequest struct {
	DisplayName string                       `json:"displayName" binding:"required"`
	Days        []models.DayAvailability     `json:"days"`
	Recurring   []models.RecurringCommitment `json:"recurring"`
}

// UpsertScheduleHandler stores a member's weekly availability. Intervals
// and recurrence rules are validated on write; queries tolerate bad stored
// data anyway, but rejecting it here keeps the store clean.
func (h *ScheduleHandler) UpsertScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	memberID := c.Param("memberID")

	var req upsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule payload", zap.String("memberID", memberID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	for _, day := range req.Days {
		for _, iv := range day.Intervals {
			if err := iv.Validate(); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interval", "message": err.Error()})
				return
			}
		}
	}
	for _, rc := range req.Recurring {
		if _, err := rrule.StrToRRuleSet(rc.RRule); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurrence rule", "message": err.Error()})
			return
		}
	}

	weekly := models.WeeklyAvailability{
		MemberID:    memberID,
		DisplayName: req.DisplayName,
		Days:        req.Days,
		Recurring:   req.Recurring,
	}
	if err := h.Repo.Upsert(c.Request.Context(), weekly); err != nil {
		logger.Error("Failed to store schedule", zap.String("memberID", memberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store schedule", "message": err.Error()})
		return
	}

	// Cached results for every group this member belongs to are now stale.
	if h.Refresher != nil {
		groups, err := h.GroupRepo.ListByMember(c.Request.Context(), memberID)
		if err != nil {
			logger.Warn("Failed to list groups for refresh", zap.String("memberID", memberID), zap.Error(err))
		}
		for _, g := range groups {
			if err := h.Refresher.EnqueueAvailabilityRefresh(c.Request.Context(), g.ID); err != nil {
				logger.Warn("Failed to enqueue availability refresh",
					zap.String("groupID", g.ID), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved", "memberId": memberID})
}

func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	memberID := c.Param("memberID")
	weekly, err := h.Repo.GetByMemberID(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule", "message": err.Error()})
		return
	}
	if weekly == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schedule stored for member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": weekly})
}

func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	memberID := c.Param("memberID")
	if err := h.Repo.Delete(c.Request.Context(), memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted", "memberId": memberID})
}
