package entities

// GatewayDescriptor is what the checkout needs to render the payment method.
type GatewayDescriptor struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	TestMode    bool     `json:"test_mode"`
	Supports    []string `json:"supports"`
}
