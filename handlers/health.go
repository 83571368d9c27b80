package handlers

import (
	"net/http"
	"time"

	"staffhub/utils"

	"github.com/gin-gonic/gin"
)

// NewHealthHandler reports process uptime and the last dependency check.
func NewHealthHandler(startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := utils.GetHealthStatus()
		status, code := "ok", http.StatusOK
		if !health.Healthy() {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"uptime":    time.Since(startedAt).Seconds(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"mongo":     health.Mongo,
			"redis":     health.Redis,
		})
	}
}
