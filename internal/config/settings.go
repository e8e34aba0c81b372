package config

import (
	"context"
	"strings"

	"payler_gateway/internal/domain/entities"
)

// Settings are the gateway options an administrator controls. They are read
// at the start of every operation and never written by the gateway.
type Settings struct {
	Enabled     bool   `json:"enabled"`
	TestMode    bool   `json:"test_mode"`
	Title       string `json:"title"`
	Description string `json:"description"`

	TestMerchantID string `json:"test_merchant_id"`
	TestSecretKey  string `json:"test_secret_key"`
	MerchantID     string `json:"merchant_id"`
	SecretKey      string `json:"secret_key"`

	Currency string `json:"currency"`
	TestURL  string `json:"test_url"`
	LiveURL  string `json:"live_url"`
}

// Account selects endpoint and credentials by test mode.
func (s Settings) Account() entities.ProcessorAccount {
	if s.TestMode {
		return entities.ProcessorAccount{
			BaseURL:          strings.TrimRight(s.TestURL, "/"),
			TerminalKey:      s.TestMerchantID,
			TerminalPassword: s.TestSecretKey,
			TestMode:         true,
		}
	}
	return entities.ProcessorAccount{
		BaseURL:          strings.TrimRight(s.LiveURL, "/"),
		TerminalKey:      s.MerchantID,
		TerminalPassword: s.SecretKey,
	}
}

// EnvSettingsStore reads Settings from PAYLER_* environment variables.
//
// Supported env vars:
//   - PAYLER_ENABLED (default: true)
//   - PAYLER_TEST_MODE (default: true)
//   - PAYLER_TITLE, PAYLER_DESCRIPTION
//   - PAYLER_TEST_MERCHANT_ID, PAYLER_TEST_SECRET_KEY
//   - PAYLER_MERCHANT_ID, PAYLER_SECRET_KEY
//   - PAYLER_CURRENCY (default: USD)
//   - PAYLER_TEST_URL, PAYLER_LIVE_URL (processor API bases)
type EnvSettingsStore struct{}

func NewEnvSettingsStore() *EnvSettingsStore {
	return &EnvSettingsStore{}
}

func (EnvSettingsStore) Load(_ context.Context) (Settings, error) {
	return Settings{
		Enabled:        getenvBool("PAYLER_ENABLED", true),
		TestMode:       getenvBool("PAYLER_TEST_MODE", true),
		Title:          getenvDefault("PAYLER_TITLE", "Payler Payment"),
		Description:    getenvDefault("PAYLER_DESCRIPTION", "Pay securely using your credit card with Payler."),
		TestMerchantID: getenvDefault("PAYLER_TEST_MERCHANT_ID", ""),
		TestSecretKey:  getenvDefault("PAYLER_TEST_SECRET_KEY", ""),
		MerchantID:     getenvDefault("PAYLER_MERCHANT_ID", ""),
		SecretKey:      getenvDefault("PAYLER_SECRET_KEY", ""),
		Currency:       strings.ToUpper(getenvDefault("PAYLER_CURRENCY", defaultCurrency)),
		TestURL:        getenvDefault("PAYLER_TEST_URL", defaultTestURL),
		LiveURL:        getenvDefault("PAYLER_LIVE_URL", defaultLiveURL),
	}, nil
}
