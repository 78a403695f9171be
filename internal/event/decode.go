package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoUsername is returned when an event payload does not name a user.
var ErrNoUsername = errors.New("event payload has no username")

// DecodePayload converts an event payload into T. Payloads published on the
// MemoryBus are already typed; raw JSON and generic maps are decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("nil %T payload", v)
		}
		return *v, nil
	case json.RawMessage:
		return result, json.Unmarshal(v, &result)
	case []byte:
		return result, json.Unmarshal(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("failed to encode %T payload: %w", input, err)
	}
	return result, json.Unmarshal(data, &result)
}

// Username returns the user an event belongs to. Every payload in AllTypes
// carries one.
func Username(evt Event) (string, error) {
	p, err := DecodePayload[struct {
		Username string `json:"username"`
	}](evt.Payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s payload: %w", evt.Type, err)
	}
	if p.Username == "" {
		return "", fmt.Errorf("%w: %s", ErrNoUsername, evt.Type)
	}
	return p.Username, nil
}
