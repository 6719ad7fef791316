package legacyfcm

import (
	"encoding/json"
	"reflect"
)

const (
	// PriorityNormal optimizes the client app's battery consumption. The
	// app may receive the message with unspecified delay.
	PriorityNormal = "normal"

	// PriorityHigh sends the message immediately and can wake a sleeping
	// device.
	PriorityHigh = "high"
)

// payload maps the message onto the legacy FCM JSON schema for one chunk of
// registration ids. The result is canonical: sorted keys, no extraneous
// whitespace, so equal messages always serialize to equal bytes.
func (m *Message) payload(ids []string) ([]byte, error) {

	p := make(map[string]interface{})

	if len(ids) > 1 {
		p["registration_ids"] = ids
	} else if len(ids) == 1 {
		p["to"] = ids[0]
	}

	if m.Condition != "" {
		p["condition"] = m.Condition
	} else if m.Topic != "" {
		// 'to' must not carry a topic when several topics are targeted,
		// that is what 'condition' is for
		p["to"] = "/topics/" + m.Topic
	}

	if m.LowPriority {
		p["priority"] = PriorityNormal
	} else {
		p["priority"] = PriorityHigh
	}

	if m.DelayWhileIdle {
		p["delay_while_idle"] = true
	}

	if m.CollapseKey != "" {
		p["collapse_key"] = m.CollapseKey
	}

	if m.TimeToLive != nil {
		ttl, ok := intValue(m.TimeToLive)
		if !ok {
			return nil, &InvalidDataError{Reason: "provided time_to_live is not an integer"}
		}
		p["time_to_live"] = ttl
	}

	if m.RestrictedPackageName != "" {
		p["restricted_package_name"] = m.RestrictedPackageName
	}

	if m.DryRun {
		p["dry_run"] = true
	}

	if m.Data != nil {
		if reflect.ValueOf(m.Data).Kind() != reflect.Map {
			return nil, &InvalidDataError{Reason: "provided data_message is in the wrong format"}
		}
		p["data"] = m.Data
	}

	if m.Body != "" {
		p["notification"] = m.notification()
	} else {
		// wakes iOS apps in the background for data-only messages
		p["content_available"] = true
	}

	for k, v := range m.Extra {
		p[k] = v
	}

	return json.Marshal(p)
}

func (m *Message) notification() map[string]interface{} {

	n := map[string]interface{}{
		"body":  m.Body,
		"title": nullable(m.Title),
		"icon":  nullable(m.Icon),
	}

	if m.ClickAction != "" {
		n["click_action"] = m.ClickAction
	}
	if m.Badge != "" {
		n["badge"] = m.Badge
	}
	if m.Color != "" {
		n["color"] = m.Color
	}
	if m.Tag != "" {
		n["tag"] = m.Tag
	}
	if m.BodyLocKey != "" {
		n["body_loc_key"] = m.BodyLocKey
	}
	if len(m.BodyLocArgs) > 0 {
		n["body_loc_args"] = m.BodyLocArgs
	}
	if m.TitleLocKey != "" {
		n["title_loc_key"] = m.TitleLocKey
	}
	if len(m.TitleLocArgs) > 0 {
		n["title_loc_args"] = m.TitleLocArgs
	}

	// an empty 'sound' key still triggers the default sound on devices,
	// so it is emitted only when explicitly set
	if m.Sound != "" {
		n["sound"] = m.Sound
	}

	return n
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func intValue(v interface{}) (int64, bool) {

	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
