// File: handlers/schedule.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campwise/models"
	"campwise/services/schedule"
)

// ScheduleHandler exposes the day and schedule-entry endpoints.
type ScheduleHandler struct {
	Svc    schedule.ScheduleService
	Logger *zap.Logger
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc, Logger: logger}
}

// ListDaysHandler returns a group's days sorted by day number.
func (h *ScheduleHandler) ListDaysHandler(c *gin.Context) {
	groupID := c.Param("groupId")
	days, err := h.Svc.ListDays(c.Request.Context(), groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list days", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// CreateDayHandler appends a day to the group's camp.
func (h *ScheduleHandler) CreateDayHandler(c *gin.Context) {
	groupID := c.Param("groupId")
	var req models.CreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	day, err := h.Svc.CreateDay(c.Request.Context(), groupID, req)
	if err != nil {
		if errors.Is(err, schedule.ErrDateOutOfRange) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create day", "details": err.Error()})
		return
	}
	c.Header("ETag", day.Version)
	c.JSON(http.StatusCreated, gin.H{"day": day})
}

// GetDayHandler returns a day; the version token travels both in the body
// and as an ETag header.
func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	day, err := h.Svc.GetDay(c.Request.Context(), c.Param("dayId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "day not found"})
		return
	}
	c.Header("ETag", day.Version)
	c.JSON(http.StatusOK, gin.H{"day": day})
}

// UpdateDayHandler applies a date/theme patch under an If-Match
// precondition. A stale token yields 409 together with the canonical day and
// its current token, so the client can replace its draft in one round trip.
func (h *ScheduleHandler) UpdateDayHandler(c *gin.Context) {
	dayID := c.Param("dayId")
	version := c.GetHeader("If-Match")
	if version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "If-Match header with the day's version token is required"})
		return
	}

	var patch models.DayPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	day, err := h.Svc.UpdateDay(c.Request.Context(), dayID, patch, version)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrVersionConflict):
			current, ferr := h.Svc.GetDay(c.Request.Context(), dayID)
			if ferr != nil {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.Header("ETag", current.Version)
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "day": current})
		case errors.Is(err, schedule.ErrDateOutOfRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update day", "details": err.Error()})
		}
		return
	}
	c.Header("ETag", day.Version)
	c.JSON(http.StatusOK, gin.H{"day": day})
}

// DeleteDayHandler removes a day. Route-level capability middleware has
// already verified the caller may delete days.
func (h *ScheduleHandler) DeleteDayHandler(c *gin.Context) {
	if err := h.Svc.DeleteDay(c.Request.Context(), c.Param("dayId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete day", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListEntriesHandler returns a day's schedule entries sorted by order.
func (h *ScheduleHandler) ListEntriesHandler(c *gin.Context) {
	entries, err := h.Svc.ListEntries(c.Request.Context(), c.Param("dayId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateEntryHandler adds a slot to a day.
func (h *ScheduleHandler) CreateEntryHandler(c *gin.Context) {
	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	entry, err := h.Svc.CreateEntry(c.Request.Context(), c.Param("dayId"), req)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidTimeRange) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create entry", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// UpdateEntryHandler applies a plain patch to one entry. No version token:
// last write wins for debounced time-range edits.
func (h *ScheduleHandler) UpdateEntryHandler(c *gin.Context) {
	var patch models.EntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	entry, err := h.Svc.UpdateEntry(c.Request.Context(), c.Param("entryId"), patch)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidTimeRange) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entry", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DeleteEntryHandler removes one entry and renumbers the rest of the day.
func (h *ScheduleHandler) DeleteEntryHandler(c *gin.Context) {
	if err := h.Svc.DeleteEntry(c.Request.Context(), c.Param("entryId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
