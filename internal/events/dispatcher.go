package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/PratikDhanave/webhook-event-logger/internal/logger"
	"github.com/PratikDhanave/webhook-event-logger/internal/models"
)

var visitStatusLabels = map[int]string{
	0: "Booked",
	1: "Checked-in",
	2: "Completed",
}

var orderStatusLabels = map[int]string{
	0: "Payment Initiated",
	1: "Payment Completed",
}

const orderCompleted = 1

// Dispatcher routes a single event to the formatter for its type tag.
// It holds no per-request state.
type Dispatcher struct {
	loc *time.Location
}

// NewDispatcher renders timestamps in loc (UTC when nil).
func NewDispatcher(loc *time.Location) *Dispatcher {
	if loc == nil {
		loc = time.UTC
	}
	return &Dispatcher{loc: loc}
}

// Dispatch logs the summary of ev followed by a separator line.
func (d *Dispatcher) Dispatch(log logger.Logger, ev models.WebhookEvent) {
	if ev.FiredAt != nil {
		log.Info("Fired at: " + d.timestamp(log, "firedAt", ev.FiredAt))
	}

	switch ev.Event {
	case models.EventClientVisitStatus:
		d.visitStatus(log, ev.Data)
	case models.EventPaymentStatus:
		d.paymentStatus(log, ev.Data)
	case models.EventClientCreated:
		d.clientCreated(log, ev.Data)
	default:
		log.Info("Unknown event type: " + ev.Event)
	}

	log.Info(separator)
}

func (d *Dispatcher) visitStatus(log logger.Logger, data any) {
	list, ok := data.([]any)
	if !ok || len(list) == 0 {
		log.Warn("Invalid client_visit_status payload: expected a non-empty array")
		return
	}
	rec, _ := models.AsFields(list[0])
	v := DecodeVisit(rec)

	when := unknownTime
	if v.StartsAt != nil {
		when = d.timestamp(log, "startsAt", v.StartsAt)
	}

	log.Info(fmt.Sprintf("Visit %s: %s %s - %s",
		codeLabel(visitStatusLabels, "Status", v.Status), v.FirstName, v.LastName, v.ServiceName))

	line := fmt.Sprintf("Scheduled: %s | Pricing: %s", when, v.PricingName)
	if v.VisitsLeft != nil {
		line += " | Visits left: " + *v.VisitsLeft
	}
	log.Info(line)

	if v.WaitingList {
		log.Info("Waiting list position: " + v.WaitingListPosition)
	}
}

func (d *Dispatcher) paymentStatus(log logger.Logger, data any) {
	obj, ok := models.AsFields(data)
	if !ok {
		log.Warn("Invalid payment_status payload: expected an object")
		return
	}
	p := DecodePayment(obj)

	log.Info(fmt.Sprintf("%s: %s %s (%s)",
		codeLabel(orderStatusLabels, "Payment Status", p.OrderStatus), p.FirstName, p.LastName, p.Email))
	log.Info(fmt.Sprintf("Gateway: %s | Order: %s", p.Gateway, p.OrderID))

	if p.Purchase == nil || !isCode(p.OrderStatus, orderCompleted) {
		return
	}
	pu := p.Purchase

	items := "No items"
	if len(pu.Items) > 0 {
		parts := make([]string, 0, len(pu.Items))
		for _, it := range pu.Items {
			parts = append(parts, fmt.Sprintf("%s (%s %s)", it.Name, FormatPrice(it.Price), it.Currency))
		}
		items = strings.Join(parts, ", ")
	}
	log.Info(fmt.Sprintf("Total: %s %s | Items: %s", FormatPrice(pu.TotalPrice), pu.Currency, items))

	if n, ok := models.AsNumber(pu.DiscountAmount); ok && n > 0 {
		log.Info(fmt.Sprintf("Discount: %s %s", FormatPrice(n), pu.Currency))
	}
}

func (d *Dispatcher) clientCreated(log logger.Logger, data any) {
	obj, ok := models.AsFields(data)
	if !ok {
		log.Warn("Invalid client_created payload: expected an object")
		return
	}
	c := DecodeClient(obj)

	log.Info(fmt.Sprintf("New client registered: %s %s", c.FirstName, c.LastName))
	log.Info(fmt.Sprintf("Contact: %s | Phone: %s", c.Email, c.Phone))
	log.Info("Client ID: " + c.UUID)

	if c.Agreements == nil {
		return
	}
	var agreed []string
	if c.Agreements.TermsOfUse {
		agreed = append(agreed, "Terms of Use")
	}
	if c.Agreements.PrivacyPolicy {
		agreed = append(agreed, "Privacy Policy")
	}
	if c.Agreements.Newsletter {
		agreed = append(agreed, "Newsletter")
	}
	summary := "None"
	if len(agreed) > 0 {
		summary = strings.Join(agreed, ", ")
	}
	log.Info("Agreements: " + summary)
}

// timestamp renders raw in the display zone, warning when it cannot be parsed.
func (d *Dispatcher) timestamp(log logger.Logger, field string, raw any) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		log.Warn(fmt.Sprintf("Could not parse %s %q", field, models.Text(raw)))
		return unknownTime
	}
	return t.In(d.loc).Format(displayLayout)
}

func isCode(v any, code int) bool {
	n, ok := models.AsNumber(v)
	return ok && n == float64(code)
}
