package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/webhook-event-logger/internal/config"
	"github.com/PratikDhanave/webhook-event-logger/internal/handlers"
	"github.com/PratikDhanave/webhook-event-logger/internal/logger"
	"github.com/PratikDhanave/webhook-event-logger/internal/middleware"
)

// routePrefixes lists the mount points. Some platform deployments are
// configured against /test/webhook, so both are served.
var routePrefixes = []string{"/", "/test"}

// NewRouter wires the health and webhook endpoints under every prefix.
func NewRouter(cfg config.Config, log logger.Logger, proc handlers.BatchProcessor) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	started := time.Now()

	r := gin.New()
	r.Use(middleware.DeliveryID(), middleware.AccessLog(log), middleware.Recovery(log))

	for _, prefix := range routePrefixes {
		g := r.Group(prefix)
		handlers.RegisterHealthRoutes(g, started)
		handlers.RegisterWebhookRoutes(g, proc, log, cfg.MaxBodyBytes)
	}

	return r
}
