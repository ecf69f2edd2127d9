package models

// Event type tags delivered by the booking platform.
const (
	EventClientVisitStatus = "client_visit_status"
	EventPaymentStatus     = "payment_status"
	EventClientCreated     = "client_created"
)

// WebhookEvent is one element of the delivered JSON array.
// Event and Data must be JSON-truthy; FiredAt is optional.
type WebhookEvent struct {
	Event   string `validate:"required"`
	Data    any    `validate:"required"`
	FiredAt any
}

// WebhookResponse is returned by POST /webhook after the batch is logged.
// Processed is the number of array elements received, skipped ones included.
type WebhookResponse struct {
	Status    string `json:"status"`
	Processed int    `json:"processed"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}
