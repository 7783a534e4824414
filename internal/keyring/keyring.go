// Package keyring stores the Garmin Connect credentials in the OS keyring so
// they never have to live in shell history or dotfiles.
package keyring

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/FelixWeichselgartner/HealthAgent/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Credentials is the Garmin Connect login pair.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetCredentials retrieves the Garmin credentials from the OS keyring.
// Returns ErrNotFound if none are stored.
func GetCredentials() (Credentials, error) {
	secret, err := keyring.Get(constants.AppName, constants.KeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return Credentials{}, ErrNotFound
		}
		return Credentials{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	var creds Credentials
	if err := json.Unmarshal([]byte(secret), &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse stored credentials: %w", err)
	}
	return creds, nil
}

// SetCredentials stores the Garmin credentials in the OS keyring.
func SetCredentials(creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return errors.New("email and password must not be empty")
	}
	secret, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	if err := keyring.Set(constants.AppName, constants.KeyringUser, string(secret)); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteCredentials removes the Garmin credentials from the OS keyring.
func DeleteCredentials() error {
	err := keyring.Delete(constants.AppName, constants.KeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}
