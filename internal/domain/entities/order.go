package entities

import "time"

// OrderStatus is the commerce platform's order lifecycle vocabulary.
//
// The gateway never creates orders; it only moves an existing order between
// these statuses in response to processor notifications.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Metadata keys written by the gateway on the order.
const (
	MetaHashOrderID    = "hash_order_id"
	MetaHashCustomerID = "hash_customer_id"
	MetaSessionOrderID = "session_order_id"
)

// BillingAddress holds the shopper contact fields forwarded to the processor.
// Fields may be empty; they are passed through without validation.
type BillingAddress struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country"`
	State     string `json:"state"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Address1  string `json:"address_1"`
}

type OrderNote struct {
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is the platform order as seen by the gateway.
//
// Storage model:
//   - DynamoDB: PK id, metadata keys projected as meta_<key> attributes,
//     GSI meta_hash_order_id-index for notification lookups.
//   - Postgres: orders row + order_meta key/value rows + order_notes rows.
//
// Monetary representation:
//   - Total is in major currency units; use MinorUnits before talking to
//     the processor.
type Order struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	OrderKey   string            `json:"order_key"`
	Total      float64           `json:"total"`
	Currency   string            `json:"currency"`
	Status     OrderStatus       `json:"status"`
	Billing    BillingAddress    `json:"billing"`
	Meta       map[string]string `json:"meta,omitempty"`
	Notes      []OrderNote       `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// MetaValue returns the metadata value for key, or "" when unset.
func (o Order) MetaValue(key string) string {
	if o.Meta == nil {
		return ""
	}
	return o.Meta[key]
}
