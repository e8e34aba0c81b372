package config

import (
	"os"
	"strings"
)

const (
	GatewayID = "payler"

	defaultTestURL  = "https://facade-api.neo.gate.paylerlab.com/gapi/v1"
	defaultLiveURL  = "https://facade-api.main.gate-api.com/gapi/payout/v1"
	defaultCurrency = "USD"
)

// App holds process-level configuration read once at startup.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - APP_ENV (default: development)
//   - SITE_URL (default: http://localhost:8080), base for every URL handed to
//     the processor or the shopper
//   - ORDER_STORE (dynamodb|postgres, default: dynamodb)
//   - REDIS_ADDR (optional; enables the notification replay guard)
//   - PAYMENT_SNS_TOPIC_ARN (optional; enables payment event publishing)
//   - PAYLER_SECRET_NAME (optional; credentials read from Secrets Manager)
type App struct {
	Port              string
	Env               string
	SiteURL           string
	OrderStore        string
	RedisAddr         string
	PaymentTopicARN   string
	PaylerSecretName  string
	PaymentMockEnable bool
}

func LoadApp() App {
	return App{
		Port:              getenvDefault("PORT", "8080"),
		Env:               getenvDefault("APP_ENV", "development"),
		SiteURL:           strings.TrimRight(getenvDefault("SITE_URL", "http://localhost:8080"), "/"),
		OrderStore:        strings.ToLower(getenvDefault("ORDER_STORE", "dynamodb")),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		PaymentTopicARN:   os.Getenv("PAYMENT_SNS_TOPIC_ARN"),
		PaylerSecretName:  os.Getenv("PAYLER_SECRET_NAME"),
		PaymentMockEnable: IsPaymentGatewayMockEnabled(),
	}
}

// IsPaymentGatewayMockEnabled reports whether outbound processor calls are
// replaced by canned responses.
func IsPaymentGatewayMockEnabled() bool {
	return parseBool(os.Getenv("PAYMENT_GATEWAY_MOCK"), false)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	return parseBool(os.Getenv(key), def)
}

func parseBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
