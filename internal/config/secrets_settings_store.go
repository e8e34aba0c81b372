package config

import (
	"context"
	"encoding/json"
	"fmt"
)

// SecretGetter returns a secret's string value by name.
type SecretGetter interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// SettingsLoader is satisfied by every settings store in this package.
type SettingsLoader interface {
	Load(ctx context.Context) (Settings, error)
}

// SecretsSettingsStore overlays processor credentials kept in a JSON secret
// on top of a base store. Keys match the admin option names:
//
//	{"test_merchant_id":"...","test_secret_key":"...","merchant_id":"...","secret_key":"..."}
//
// Empty values in the secret leave the base value untouched.
type SecretsSettingsStore struct {
	base       SettingsLoader
	secrets    SecretGetter
	secretName string
}

func NewSecretsSettingsStore(base SettingsLoader, secrets SecretGetter, secretName string) *SecretsSettingsStore {
	return &SecretsSettingsStore{base: base, secrets: secrets, secretName: secretName}
}

type credentialSecret struct {
	TestMerchantID string `json:"test_merchant_id"`
	TestSecretKey  string `json:"test_secret_key"`
	MerchantID     string `json:"merchant_id"`
	SecretKey      string `json:"secret_key"`
}

func (s *SecretsSettingsStore) Load(ctx context.Context) (Settings, error) {
	settings, err := s.base.Load(ctx)
	if err != nil {
		return Settings{}, err
	}

	raw, err := s.secrets.GetSecret(ctx, s.secretName)
	if err != nil {
		return Settings{}, fmt.Errorf("load payler credentials: %w", err)
	}

	var creds credentialSecret
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return Settings{}, fmt.Errorf("decode payler credentials secret %s: %w", s.secretName, err)
	}

	overlay(&settings.TestMerchantID, creds.TestMerchantID)
	overlay(&settings.TestSecretKey, creds.TestSecretKey)
	overlay(&settings.MerchantID, creds.MerchantID)
	overlay(&settings.SecretKey, creds.SecretKey)
	return settings, nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
