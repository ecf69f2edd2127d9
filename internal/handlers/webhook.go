package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/webhook-event-logger/internal/events"
	"github.com/PratikDhanave/webhook-event-logger/internal/logger"
	"github.com/PratikDhanave/webhook-event-logger/internal/middleware"
	"github.com/PratikDhanave/webhook-event-logger/internal/models"
)

// isoMillis matches the ISO-8601 form used in response timestamps.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// BatchProcessor logs a delivered webhook batch.
type BatchProcessor interface {
	Process(log logger.Logger, payload any) (int, error)
}

// RegisterWebhookRoutes registers the delivery endpoint.
//
// POST /webhook
// - Requires Content-Type: application/json and a non-empty body
// - Body must be a JSON array of events; malformed elements are logged and skipped
// - Responds only after every event has been logged
func RegisterWebhookRoutes(r gin.IRoutes, proc BatchProcessor, log logger.Logger, maxBody int64) {
	r.POST("/webhook", func(c *gin.Context) {
		reqLog := log.With("delivery_id", middleware.DeliveryIDFrom(c))

		if c.ContentType() != gin.MIMEJSON {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content-Type must be application/json"})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)

		var payload any
		if err := c.ShouldBindJSON(&payload); err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			case errors.Is(err, io.EOF):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is required"})
			default:
				reqLog.Warn("Rejected webhook with malformed JSON: " + err.Error())
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data format"})
			}
			return
		}
		if payload == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is required"})
			return
		}

		processed, err := proc.Process(reqLog, payload)
		if errors.Is(err, events.ErrInvalidFormat) {
			reqLog.Warn("Rejected webhook: payload is not an array")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data format"})
			return
		}
		if err != nil {
			reqLog.Error("Error processing webhook", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, models.WebhookResponse{
			Status:    "success",
			Processed: processed,
			Timestamp: time.Now().UTC().Format(isoMillis),
		})
	})
}
