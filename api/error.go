package api

import "encoding/json"

// Kind classifies an API failure so screens can react without re-deriving
// status-code logic everywhere.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindServer
	KindNetwork
)

// Default user-facing messages per failure class. Individual endpoints may
// substitute a more specific message (e.g. login).
const (
	msgValidation   = "Please correct the highlighted fields."
	msgUnauthorized = "Session expired. Please log in again."
	msgForbidden    = "You are not authorized to perform this action."
	msgNotFound     = "Not found."
	msgServer       = "Something went wrong. Please try again later."
	msgNetwork      = "Could not reach the server. Please try again later."
)

// Error is the failure half of every API call. Message is always safe to
// show to the user; Fields carries per-field validation messages when the
// backend sent them.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func kindForStatus(status int) (Kind, string) {
	switch {
	case status == 400:
		return KindValidation, msgValidation
	case status == 401:
		return KindUnauthorized, msgUnauthorized
	case status == 403:
		return KindForbidden, msgForbidden
	case status == 404:
		return KindNotFound, msgNotFound
	default:
		return KindServer, msgServer
	}
}

// netError wraps a transport-level failure (refused, DNS, timeout).
func netError() *Error {
	return &Error{Kind: KindNetwork, Message: msgNetwork}
}

// decodeError maps a non-2xx response body onto an Error. The backend uses
// {"detail": "..."} for generic messages and {"field": ["msg"]} maps for
// validation failures.
func decodeError(status int, body []byte) *Error {
	kind, fallback := kindForStatus(status)
	e := &Error{Kind: kind, Status: status, Message: fallback}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return e
	}

	if detail, ok := payload["detail"].(string); ok && detail != "" {
		e.Message = detail
		return e
	}

	if kind != KindValidation {
		return e
	}

	fields := make(map[string]string)
	for name, value := range payload {
		switch v := value.(type) {
		case string:
			fields[name] = v
		case []interface{}:
			if len(v) > 0 {
				if msg, ok := v[0].(string); ok {
					fields[name] = msg
				}
			}
		}
	}
	if len(fields) > 0 {
		e.Fields = fields
	}
	return e
}
