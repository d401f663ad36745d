// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all endpoint handlers for route registration.
type HandlerBundle struct {
	// Day endpoints.
	ListDaysHandler  gin.HandlerFunc
	CreateDayHandler gin.HandlerFunc
	GetDayHandler    gin.HandlerFunc
	UpdateDayHandler gin.HandlerFunc
	DeleteDayHandler gin.HandlerFunc

	// Schedule entry endpoints.
	ListEntriesHandler gin.HandlerFunc
	CreateEntryHandler gin.HandlerFunc
	UpdateEntryHandler gin.HandlerFunc
	DeleteEntryHandler gin.HandlerFunc

	// Activity endpoints.
	CreateActivityHandler     gin.HandlerFunc
	GetActivitySummaryHandler gin.HandlerFunc

	// Task endpoints.
	ListTasksHandler  gin.HandlerFunc
	GetTaskHandler    gin.HandlerFunc
	UpdateTaskHandler gin.HandlerFunc
}
