package legacyfcm

import "github.com/pkg/errors"

var (
	// ErrAuthentication is returned when no server key can be resolved or
	// when FCM rejects the key (HTTP 401).
	ErrAuthentication = errors.New("error authenticating the sender account")

	// ErrServerUnavailable is returned for any unexpected FCM status code.
	ErrServerUnavailable = errors.New("fcm server is temporarily unavailable")
)

// InvalidDataError reports a message field that cannot be mapped onto the
// legacy FCM JSON schema.
type InvalidDataError struct {
	Reason string
}

func (e *InvalidDataError) Error() string {
	return "invalid message data: " + e.Reason
}

// BadRequestError carries the raw server answer for an HTTP 400 response.
// The legacy API reports schema violations as plain text in the body.
type BadRequestError struct {
	Body string
}

func (e *BadRequestError) Error() string {
	return "fcm rejected request: " + e.Body
}
