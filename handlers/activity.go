// File: handlers/activity.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campwise/models"
	"campwise/services/activity"
)

// ActivityHandler exposes activity creation and summary lookup.
type ActivityHandler struct {
	Svc    activity.ActivityService
	Logger *zap.Logger
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc activity.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{Svc: svc, Logger: logger}
}

// CreateActivityHandler creates an activity for a group.
func (h *ActivityHandler) CreateActivityHandler(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	act, err := h.Svc.Create(c.Request.Context(), c.Param("groupId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create activity", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"activity": act})
}

// GetActivitySummaryHandler returns the cached read-only projection.
func (h *ActivityHandler) GetActivitySummaryHandler(c *gin.Context) {
	summary, err := h.Svc.GetSummary(c.Request.Context(), c.Param("activityId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": summary})
}
