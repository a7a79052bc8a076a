package services

import (
	"errors"
	"runtime"
	"strings"
	"sync"

	"github.com/99designs/keyring"

	"medconsult/internal/gateway"
)

const (
	serviceName = "medconsult"
	apiKeyItem  = "backend-api-key"
)

func GetOS() string {
	return runtime.GOOS
}

// KeyringOpener opens the credential store.
type KeyringOpener func() (keyring.Keyring, error)

func openSystemKeyring() (keyring.Keyring, error) {
	return keyring.Open(keyring.Config{
		ServiceName:             serviceName,
		KeychainName:            serviceName,
		KWalletAppID:            serviceName,
		KWalletFolder:           serviceName,
		LibSecretCollectionName: serviceName,
		WinCredPrefix:           serviceName,
		// The file backend is not enabled: it would need a password prompt.
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
		},
	})
}

// KeyringService keeps the backend API key in the OS credential store. It is
// the credential source of the backend client.
type KeyringService struct {
	open KeyringOpener

	mu   sync.Mutex
	ring keyring.Keyring
}

var _ gateway.CredentialSource = (*KeyringService)(nil)

// NewKeyringService uses the OS keyring when open is nil. The store is opened
// on first use.
func NewKeyringService(open KeyringOpener) *KeyringService {
	if open == nil {
		open = openSystemKeyring
	}
	return &KeyringService{open: open}
}

func (s *KeyringService) StoreAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	ring, err := s.keyring()
	if err != nil {
		return err
	}
	return ring.Set(keyring.Item{
		Key:         apiKeyItem,
		Data:        []byte(apiKey),
		Label:       "Medconsult API key",
		Description: "API key for the consultation backend",
	})
}

// GetAPIKey returns gateway.ErrNoCredential when no key is stored.
func (s *KeyringService) GetAPIKey() (string, error) {
	ring, err := s.keyring()
	if errors.Is(err, keyring.ErrNoAvailImpl) {
		return "", gateway.ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	item, err := ring.Get(apiKeyItem)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", gateway.ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

func (s *KeyringService) DeleteAPIKey() error {
	ring, err := s.keyring()
	if err != nil {
		return err
	}
	err = ring.Remove(apiKeyItem)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (s *KeyringService) HasAPIKey() bool {
	key, err := s.GetAPIKey()
	return err == nil && key != ""
}

func (s *KeyringService) keyring() (keyring.Keyring, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ring != nil {
		return s.ring, nil
	}
	ring, err := s.open()
	if err != nil {
		return nil, err
	}
	s.ring = ring
	return ring, nil
}
