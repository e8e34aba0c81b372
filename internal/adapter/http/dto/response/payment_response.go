package response

import "payler_gateway/internal/domain/entities"

const resultSuccess = "success"

// CheckoutSessionResponse mirrors the platform's process_payment result.
type CheckoutSessionResponse struct {
	Result      string `json:"result"`
	RedirectURL string `json:"redirect_url"`
}

func FromRedirectURL(url string) CheckoutSessionResponse {
	return CheckoutSessionResponse{Result: resultSuccess, RedirectURL: url}
}

type RefundResponse struct {
	OrderID  string  `json:"order_id"`
	Refunded bool    `json:"refunded"`
	Amount   float64 `json:"amount"`
}

func FromRefund(orderID string, amount float64) RefundResponse {
	return RefundResponse{OrderID: orderID, Refunded: true, Amount: amount}
}

type GatewayResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	TestMode    bool     `json:"test_mode"`
	Supports    []string `json:"supports"`
}

func FromGatewayDescriptor(d entities.GatewayDescriptor) GatewayResponse {
	return GatewayResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Enabled:     d.Enabled,
		TestMode:    d.TestMode,
		Supports:    d.Supports,
	}
}
