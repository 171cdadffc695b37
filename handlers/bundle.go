package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	QueryAvailabilityHandler gin.HandlerFunc
	WeekAvailabilityHandler  gin.HandlerFunc

	// Group endpoints
	CreateGroupHandler  gin.HandlerFunc
	GetGroupHandler     gin.HandlerFunc
	AddMemberHandler    gin.HandlerFunc
	RemoveMemberHandler gin.HandlerFunc
	DeleteGroupHandler  gin.HandlerFunc

	// Schedule endpoints
	UpsertScheduleHandler gin.HandlerFunc
	GetScheduleHandler    gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc

	// Event endpoints
	CreateEventHandler     gin.HandlerFunc
	GetEventHandler        gin.HandlerFunc
	ListGroupEventsHandler gin.HandlerFunc
	DeleteEventHandler     gin.HandlerFunc
	EventICSHandler        gin.HandlerFunc

	// Analytics endpoints
	GroupReportHandler gin.HandlerFunc
}
