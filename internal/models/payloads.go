package models

// VisitStatus is the record carried by a client_visit_status event.
type VisitStatus struct {
	FirstName   string
	LastName    string
	ServiceName string
	StartsAt    any // raw value, parsed when formatted
	Status      any
	PricingName string
	VisitsLeft  *string
	WaitingList bool

	// WaitingListPosition is only meaningful when WaitingList is set.
	WaitingListPosition string
}

// PaymentStatus is the object carried by a payment_status event.
type PaymentStatus struct {
	FirstName   string
	LastName    string
	Email       string
	OrderID     string
	Gateway     string
	OrderStatus any
	Purchase    *Purchase
}

// Purchase describes what was bought. Prices stay raw so that non-numeric
// values render as 0.00.
type Purchase struct {
	TotalPrice     any
	Currency       string
	DiscountAmount any
	Items          []PurchaseItem
}

// PurchaseItem is one line of a Purchase.
type PurchaseItem struct {
	Name     string
	Price    any
	Currency string
}

// ClientCreated is the object carried by a client_created event.
type ClientCreated struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	UUID       string
	Agreements *Agreements
}

// Agreements holds the consent flags given at registration.
type Agreements struct {
	TermsOfUse    bool
	PrivacyPolicy bool
	Newsletter    bool
}
