package legacyfcm

// Message is the full optional parameter set of one send call.
// Addressing fields: more than one registration id is emitted as
// 'registration_ids', exactly one as the scalar 'to' target. A condition
// always wins over a topic. The builder does not validate nonsensical
// combinations of registration ids with a topic or condition, the server
// answers those with an error.
//
// Field reference:
// https://firebase.google.com/docs/cloud-messaging/http-server-ref#downstream-http-messages-json
type Message struct {
	RegistrationIDs []string
	Topic           string
	Condition       string

	Title       string
	Body        string
	Icon        string
	Sound       string
	Badge       string
	Color       string
	Tag         string
	ClickAction string

	BodyLocKey   string
	BodyLocArgs  []string
	TitleLocKey  string
	TitleLocArgs []string

	CollapseKey           string
	DelayWhileIdle        bool
	TimeToLive            interface{}
	RestrictedPackageName string
	LowPriority           bool
	DryRun                bool

	// Data is the custom key-value payload. It must be a map kind,
	// anything else fails with *InvalidDataError at build time.
	Data interface{}

	// Extra is merged into the top level of the payload last and may
	// override every previously emitted key.
	Extra map[string]interface{}
}

// Payloads builds one canonical payload per chunk of at most MaxRecipients
// registration ids. A message without registration ids (topic, condition or
// data-only) yields exactly one payload.
func (m *Message) Payloads() ([][]byte, error) {

	chunks := ChunkRegistrationIDs(m.RegistrationIDs)
	if len(chunks) == 0 {
		chunks = [][]string{nil}
	}

	retval := make([][]byte, 0, len(chunks))
	for _, ids := range chunks {
		payload, err := m.payload(ids)
		if err != nil {
			return nil, err
		}

		retval = append(retval, payload)
	}

	return retval, nil
}
