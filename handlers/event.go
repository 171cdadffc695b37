package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aceup/services/availability"
	"aceup/services/event"
	"aceup/utils"
)

// EventHandler exposes calendar event materialization and export.
type EventHandler struct {
	Service event.Service
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc event.Service) *EventHandler {
	return &EventHandler{Service: svc}
}

// CreateEventHandler materializes a chosen free slot into a calendar event.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid event payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateFromSlot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, availability.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.Error("Failed to create event", zap.String("groupID", req.GroupID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create event", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": created})
}

func (h *EventHandler) GetEventHandler(c *gin.Context) {
	eventID := c.Param("eventID")
	ev, err := h.Service.Get(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event", "message": err.Error()})
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": ev})
}

func (h *EventHandler) ListGroupEventsHandler(c *gin.Context) {
	groupID := c.Param("groupID")
	events, err := h.Service.ListGroupEvents(c.Request.Context(), groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groupId": groupID, "events": events})
}

func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	eventID := c.Param("eventID")
	if err := h.Service.Delete(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted", "eventId": eventID})
}

// ICSHandler renders a stored event as an iCalendar document.
func (h *EventHandler) ICSHandler(c *gin.Context) {
	eventID := c.Param("eventID")
	ev, err := h.Service.Get(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event", "message": err.Error()})
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	doc, err := h.Service.RenderICS(*ev)
	if err != nil {
		utils.GetLogger().Error("Failed to render ICS", zap.String("eventID", eventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render calendar", "message": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+ev.ID+".ics\"")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}
