package entities

// ProcessorAccount is the endpoint and credential pair selected by test mode.
type ProcessorAccount struct {
	BaseURL          string
	TerminalKey      string
	TerminalPassword string
	TestMode         bool
}

type ReturnURLs struct {
	Default string
	Success string
	Failure string
}

// SessionCustomer is the customer block sent to the processor. ID is the
// customer correlation identifier, never the platform customer id.
type SessionCustomer struct {
	ID      string
	Billing BillingAddress
}

// SessionRequest describes a hosted payment session for one order.
//
// OrderID is the order correlation identifier. The platform ids only travel in
// CustomFields, for support and debugging on the processor side.
type SessionRequest struct {
	Lifetime        string
	ReturnURLs      ReturnURLs
	NotificationURL string
	PageTemplate    string
	PageLang        string
	OrderID         string
	Currency        string
	AmountMinor     int64
	Customer        SessionCustomer
	CustomFields    map[string]string
}

type SessionResult struct {
	SessionID      string
	PaymentPageURL string
}

// RefundStatus is the processor's refund.status, lower-cased.
type RefundStatus string

const (
	RefundStatusRefunded RefundStatus = "refunded"
	RefundStatusError    RefundStatus = "error"
)

type RefundResult struct {
	Status     RefundStatus
	ErrorTitle string
}
