package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	groupRepo "aceup/database/repository/group"
	"aceup/models"
	"aceup/utils"
)

// GroupHandler manages calendar groups and their membership.
type GroupHandler struct {
	Repo groupRepo.GroupRepository
}

// NewGroupHandler constructs a GroupHandler.
func NewGroupHandler(repo groupRepo.GroupRepository) *GroupHandler {
	return &GroupHandler{Repo: repo}
}

type createGroupRequest struct {
	Name    string               `json:"name" binding:"required"`
	Members []models.GroupMember `json:"members" binding:"required,min=1"`
}

func (h *GroupHandler) CreateGroupHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid group creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	group := &models.Group{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Members:   req.Members,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), group); err != nil {
		logger.Error("Failed to create group", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"group": group})
}

func (h *GroupHandler) GetGroupHandler(c *gin.Context) {
	groupID := c.Param("groupID")
	group, err := h.Repo.GetByID(c.Request.Context(), groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group", "message": err.Error()})
		return
	}
	if group == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

func (h *GroupHandler) AddMemberHandler(c *gin.Context) {
	groupID := c.Param("groupID")

	var member models.GroupMember
	if err := c.ShouldBindJSON(&member); err != nil || member.MemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid member in request body"})
		return
	}

	if err := h.Repo.AddMember(c.Request.Context(), groupID, member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member added", "groupId": groupID})
}

func (h *GroupHandler) RemoveMemberHandler(c *gin.Context) {
	groupID := c.Param("groupID")
	memberID := c.Param("memberID")

	if err := h.Repo.RemoveMember(c.Request.Context(), groupID, memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed", "groupId": groupID})
}

func (h *GroupHandler) DeleteGroupHandler(c *gin.Context) {
	groupID := c.Param("groupID")
	if err := h.Repo.Delete(c.Request.Context(), groupID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete group", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted", "groupId": groupID})
}
