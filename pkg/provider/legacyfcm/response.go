package legacyfcm

const (
	ErrorCodeMissingRegistration = "MissingRegistration"
	ErrorCodeInvalidRegistration = "InvalidRegistration"
	ErrorCodeNotRegistered       = "NotRegistered"
	ErrorCodeUnavailable         = "Unavailable"
)

// Response is the parsed answer for one payload chunk.
// Downstream message response format:
// https://firebase.google.com/docs/cloud-messaging/http-server-ref#interpret-downstream
type Response struct {
	MulticastID  *int64            `json:"multicast_id"`
	Success      int               `json:"success"`
	Failure      int               `json:"failure"`
	CanonicalIDs int               `json:"canonical_ids"`
	Results      []*ResponseResult `json:"results"`

	// MessageID is set for topic messages instead of a results list
	MessageID int64 `json:"message_id"`

	StatusCode int `json:"-"`
}

type ResponseResult struct {
	MessageID      string `json:"message_id,omitempty"`
	RegistrationID string `json:"registration_id,omitempty"`
	// error codes:
	// https://firebase.google.com/docs/cloud-messaging/http-server-ref#table9
	Error string `json:"error,omitempty"`
}

// Ok returns true if every recipient of the chunk was accepted.
func (r *Response) Ok() bool {
	return r != nil && r.Failure == 0
}
