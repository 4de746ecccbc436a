package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// ErrorField describes one field-level validation failure.
type ErrorField struct {
	Error string `json:"error"`
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// ErrorFields is the list of field failures attached to an envelope. The
// backend is not consistent here: it sends a list, an empty object, null, or
// an object keyed by field name. All of them decode into a list.
type ErrorFields []ErrorField

func (f *ErrorFields) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		*f = ErrorFields{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var list []ErrorField
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("decode error_fields list: %w", err)
		}
		if list == nil {
			list = []ErrorField{}
		}
		*f = list
		return nil
	case '{':
		var byKey map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &byKey); err != nil {
			return fmt.Errorf("decode error_fields object: %w", err)
		}
		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		list := make([]ErrorField, 0, len(keys))
		for _, key := range keys {
			list = append(list, fieldFromObjectEntry(key, byKey[key]))
		}
		*f = list
		return nil
	default:
		return fmt.Errorf("error_fields must be a list or object")
	}
}

func fieldFromObjectEntry(key string, raw json.RawMessage) ErrorField {
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return ErrorField{Key: key, Error: msg}
	}
	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err == nil && len(msgs) > 0 {
		return ErrorField{Key: key, Error: msgs[0]}
	}
	var field ErrorField
	if err := json.Unmarshal(raw, &field); err == nil {
		if field.Key == "" {
			field.Key = key
		}
		return field
	}
	return ErrorField{Key: key, Error: string(raw)}
}
