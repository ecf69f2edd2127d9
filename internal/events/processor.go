package events

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PratikDhanave/webhook-event-logger/internal/logger"
	"github.com/PratikDhanave/webhook-event-logger/internal/models"
)

// ErrInvalidFormat is returned when the delivered payload is not a JSON array.
var ErrInvalidFormat = errors.New("invalid webhook data format")

// Processor walks a delivered batch in order and hands each event to the
// Dispatcher. Malformed elements are logged and skipped.
type Processor struct {
	dispatcher *Dispatcher
	validate   *validator.Validate
}

// NewProcessor returns a Processor that dispatches through d.
func NewProcessor(d *Dispatcher) *Processor {
	return &Processor{dispatcher: d, validate: validator.New()}
}

// Process returns the number of elements received, which includes any that
// were skipped as malformed.
func (p *Processor) Process(log logger.Logger, payload any) (int, error) {
	batch, ok := payload.([]any)
	if !ok {
		return 0, ErrInvalidFormat
	}

	log.Info(fmt.Sprintf("Received webhook with %d event(s)", len(batch)))

	for i, raw := range batch {
		ev, err := p.toEvent(raw)
		if err != nil {
			log.Warn(fmt.Sprintf("Skipping malformed event at index %d: missing event or data", i))
			continue
		}
		p.dispatcher.Dispatch(log, ev)
	}

	return len(batch), nil
}

func (p *Processor) toEvent(raw any) (models.WebhookEvent, error) {
	obj, ok := models.AsFields(raw)
	if !ok {
		return models.WebhookEvent{}, ErrInvalidFormat
	}

	ev := models.WebhookEvent{
		Data:    obj.Get("data", nil),
		FiredAt: obj.Get("firedAt", nil),
	}
	// Non-string tags are kept as text so they reach the unknown-event line.
	if tag, ok := obj.Lookup("event"); ok && models.IsTruthy(tag) {
		ev.Event = models.Text(tag)
		if ev.Event == "" {
			ev.Event = fmt.Sprintf("%v", tag)
		}
	}
	if !models.IsTruthy(ev.Data) {
		ev.Data = nil
	}

	if err := p.validate.Struct(ev); err != nil {
		return models.WebhookEvent{}, err
	}
	return ev, nil
}
