package events

import "github.com/PratikDhanave/webhook-event-logger/internal/models"

const (
	defaultFirstName = "Unknown"
	defaultLastName  = "User"
	defaultEmail     = "No email"
	defaultCurrency  = "PLN"
)

// DecodeVisit reads a visit record. Every field is optional.
func DecodeVisit(rec models.Fields) models.VisitStatus {
	return models.VisitStatus{
		FirstName:           rec.String("client.firstName", defaultFirstName),
		LastName:            rec.String("client.lastName", defaultLastName),
		ServiceName:         rec.String("service.name", "Unknown Service"),
		StartsAt:            rec.Get("startsAt", nil),
		Status:              rec.Get("status", nil),
		PricingName:         rec.String("pricingOption.name", "No pricing info"),
		VisitsLeft:          rec.OptionalString("pricingOption.visitsLeft"),
		WaitingList:         rec.Truthy("isWaitingList"),
		WaitingListPosition: rec.String("waitingListPosition", "Unknown"),
	}
}

// DecodePayment reads a payment_status object.
func DecodePayment(obj models.Fields) models.PaymentStatus {
	p := models.PaymentStatus{
		FirstName:   obj.String("user.firstName", defaultFirstName),
		LastName:    obj.String("user.lastName", defaultLastName),
		Email:       obj.String("user.email", defaultEmail),
		OrderID:     obj.String("orderId", "No order ID"),
		Gateway:     obj.String("paymentGateway.name", "Unknown gateway"),
		OrderStatus: obj.Get("orderStatus", nil),
	}

	purchase, ok := obj.Object("purchase")
	if !ok {
		return p
	}
	currency := purchase.String("currency", defaultCurrency)
	p.Purchase = &models.Purchase{
		TotalPrice:     purchase.Get("totalPrice", nil),
		Currency:       currency,
		DiscountAmount: purchase.Get("discountAmount", nil),
	}
	items, _ := purchase.List("items")
	for _, raw := range items {
		item, _ := models.AsFields(raw)
		p.Purchase.Items = append(p.Purchase.Items, models.PurchaseItem{
			Name:     item.String("name", "Unknown item"),
			Price:    item.Get("price", nil),
			Currency: item.String("currency", currency),
		})
	}
	return p
}

// DecodeClient reads a client_created object.
func DecodeClient(obj models.Fields) models.ClientCreated {
	c := models.ClientCreated{
		FirstName: obj.String("client.firstName", defaultFirstName),
		LastName:  obj.String("client.lastName", defaultLastName),
		Email:     obj.String("client.email", defaultEmail),
		Phone:     obj.String("client.phone.primaryPhone", "No phone"),
		UUID:      obj.String("client.uuid", "No UUID"),
	}
	if agreements, ok := obj.Object("client.agreements"); ok {
		c.Agreements = &models.Agreements{
			TermsOfUse:    agreements.Truthy("termsOfUse"),
			PrivacyPolicy: agreements.Truthy("privacyPolicy"),
			Newsletter:    agreements.Truthy("newsletter"),
		}
	}
	return c
}
