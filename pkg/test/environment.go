// Package test reads credentials for the opt-in live tests from the
// environment. Unit tests never need it.
package test

import (
	"os"

	"github.com/pkg/errors"
)

// GetAPIKey returns the FCM server key for live tests.
func GetAPIKey() (string, error) {

	key := os.Getenv("FCM_API_KEY")
	if key == "" {
		return "", errors.New("environment variable FCM_API_KEY is not set")
	}

	return key, nil
}

// GetPushDevice returns a registration id of a real device for live tests.
func GetPushDevice() (string, error) {

	token := os.Getenv("PUSH_DEVICE")
	if token == "" {
		return "", errors.New("environment variable PUSH_DEVICE is not set")
	}

	return token, nil
}
