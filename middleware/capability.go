package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campwise/models"
	"campwise/utils"
)

// CapabilityKey is the gin context key under which the caller's capability
// is stored.
const CapabilityKey = "capability"

// CapabilityMiddleware extracts the caller's scheduling capabilities from a
// bearer token issued by the auth collaborator. Role computation happens
// there; this middleware only consumes the resulting claims.
func CapabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		capability, err := utils.ParseCapabilityToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		c.Set(CapabilityKey, capability)
		c.Next()
	}
}

// GetCapability returns the capability stored by CapabilityMiddleware,
// defaulting to read-only when absent.
func GetCapability(c *gin.Context) models.Capability {
	if v, ok := c.Get(CapabilityKey); ok {
		if capability, ok := v.(models.Capability); ok {
			return capability
		}
	}
	return models.Capability{}
}

// RequireEdit aborts with 403 unless the caller can edit the schedule.
// Controls are disabled proactively client-side; this is the backstop for a
// stale UI that attempts the action anyway.
func RequireEdit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetCapability(c).CanEdit {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "You do not have permission to edit this schedule",
			})
			return
		}
		c.Next()
	}
}

// RequireDeleteDay aborts with 403 unless the caller can delete days.
func RequireDeleteDay() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetCapability(c).CanDeleteDay {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "You do not have permission to delete days",
			})
			return
		}
		c.Next()
	}
}
