// File: handlers/task.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campwise/models"
	"campwise/services/task"
)

// TaskHandler exposes the version-tracked task endpoints.
type TaskHandler struct {
	Svc    task.TaskService
	Logger *zap.Logger
}

// NewTaskHandler constructs a TaskHandler.
func NewTaskHandler(svc task.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

// ListTasksHandler returns a group's tasks with their version tokens.
func (h *TaskHandler) ListTasksHandler(c *gin.Context) {
	tasks, err := h.Svc.List(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTaskHandler returns one task with its version token.
func (h *TaskHandler) GetTaskHandler(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.Header("ETag", t.Version)
	c.JSON(http.StatusOK, gin.H{"task": t})
}

// UpdateTaskHandler patches a task under the same If-Match discipline as
// days: stale token yields 409 with the canonical task.
func (h *TaskHandler) UpdateTaskHandler(c *gin.Context) {
	taskID := c.Param("taskId")
	version := c.GetHeader("If-Match")
	if version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "If-Match header with the task's version token is required"})
		return
	}

	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), taskID, patch, version)
	if err != nil {
		if errors.Is(err, task.ErrVersionConflict) {
			current, ferr := h.Svc.Get(c.Request.Context(), taskID)
			if ferr != nil {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.Header("ETag", current.Version)
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "task": current})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task", "details": err.Error()})
		return
	}
	c.Header("ETag", updated.Version)
	c.JSON(http.StatusOK, gin.H{"task": updated})
}
