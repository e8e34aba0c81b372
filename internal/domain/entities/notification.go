package entities

import "time"

// NotificationState is the processor session state delivered in callbacks.
type NotificationState string

const (
	NotificationStateAuthorized NotificationState = "authorized"
	NotificationStateCancelled  NotificationState = "cancelled"
	NotificationStateRefunded   NotificationState = "refunded"
)

// Notification is the parsed callback body. Extra fields sent by the
// processor are ignored.
type Notification struct {
	OrderID string            `json:"orderId"`
	State   NotificationState `json:"state"`
}

// PaymentEvent is published after a notification changed an order status.
type PaymentEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	State     string    `json:"state"`
	Status    string    `json:"status"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}
