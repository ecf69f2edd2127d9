package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/webhook-event-logger/internal/models"
)

// RegisterHealthRoutes registers the liveness endpoint. Uptime is measured
// from started on the monotonic clock.
func RegisterHealthRoutes(r gin.IRoutes, started time.Time) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(isoMillis),
			Uptime:    time.Since(started).Seconds(),
		})
	})
}
