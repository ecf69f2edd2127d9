package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/webhook-event-logger/internal/logger"
)

// AccessLog writes one line per request after it completes.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		msg := fmt.Sprintf("%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond))
		l := log.With("delivery_id", DeliveryIDFrom(c))
		if c.Writer.Status() >= http.StatusInternalServerError {
			l.Error(msg, nil)
			return
		}
		l.Info(msg)
	}
}

// Recovery converts a panic in a handler into a 500 JSON response and logs it.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.With("delivery_id", DeliveryIDFrom(c)).
			Error("Unhandled error while processing request", fmt.Errorf("panic: %v", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
