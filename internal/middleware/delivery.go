package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// deliveryCtxKey is the Gin context key used to store the delivery ID.
const deliveryCtxKey = "delivery_id"

// DeliveryHeader carries the delivery ID in both directions.
const DeliveryHeader = "X-Request-ID"

// DeliveryID tags every request with the caller's X-Request-ID or a fresh UUID
// and echoes it back so a platform retry can be matched to its log lines.
func DeliveryID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(DeliveryHeader))
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		c.Set(deliveryCtxKey, id)
		c.Header(DeliveryHeader, id)
		c.Next()
	}
}

// DeliveryIDFrom returns the delivery ID stored by DeliveryID.
func DeliveryIDFrom(c *gin.Context) string {
	v, _ := c.Get(deliveryCtxKey)
	s, _ := v.(string)
	return s
}
