package api

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// decodeList normalizes the backend's two list shapes: a bare JSON array or
// an object wrapping the array under a resource key ({"boards": [...]}). A
// missing key or null payload decodes to an empty list.
func decodeList(data []byte, key string, out interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		return errors.Wrap(json.Unmarshal(trimmed, out), "malformed list payload")
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return errors.Wrap(err, "malformed list payload")
	}
	field, ok := wrapper[key]
	if !ok || bytes.Equal(bytes.TrimSpace(field), []byte("null")) {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(field, out), "malformed %q payload", key)
}

// decodeDoc normalizes single-document shapes: the bare document or an
// object wrapping it under a resource key ({"board": {...}}).
func decodeDoc(data []byte, key string, out interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return errors.Wrap(err, "malformed document payload")
	}
	if field, ok := wrapper[key]; ok && len(bytes.TrimSpace(field)) > 0 && bytes.TrimSpace(field)[0] == '{' {
		return errors.Wrapf(json.Unmarshal(field, out), "malformed %q payload", key)
	}
	return errors.Wrap(json.Unmarshal(trimmed, out), "malformed document payload")
}
