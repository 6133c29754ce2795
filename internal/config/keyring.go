// internal/config/keyring.go
package config

import (
	"fmt"

	"github.com/99designs/keyring"
)

const (
	serviceName = "docseek"
	apiKeyItem  = "search_api_key"
)

// KeyringStore manages secrets in the system keyring
type KeyringStore struct {
	ring keyring.Keyring
}

// NewKeyringStore creates a new keyring store instance
func NewKeyringStore() (*KeyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return &KeyringStore{ring: ring}, nil
}

// NewKeyringStoreFrom wraps an already opened keyring
func NewKeyringStoreFrom(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{ring: ring}
}

// SetAPIKey stores the hosted search API key
func (k *KeyringStore) SetAPIKey(key string) error {
	return k.ring.Set(keyring.Item{
		Key:         apiKeyItem,
		Data:        []byte(key),
		Label:       "docseek search API key",
		Description: "API key for the hosted documentation search index",
	})
}

// APIKey retrieves the hosted search API key
func (k *KeyringStore) APIKey() (string, error) {
	item, err := k.ring.Get(apiKeyItem)
	if err != nil {
		return "", fmt.Errorf("api key not found in keyring: %w", err)
	}
	return string(item.Data), nil
}

// DeleteAPIKey removes the stored API key
func (k *KeyringStore) DeleteAPIKey() error {
	return k.ring.Remove(apiKeyItem)
}
