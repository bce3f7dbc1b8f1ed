// Package yamlconv turns values decoded by gopkg.in/yaml.v3 into the
// JSON-like shape (map[string]any, []any) the rest of the module expects.
package yamlconv

import (
	"bytes"
	"errors"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Decode parses the first YAML document in data and normalizes it.
func Decode(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return Normalize(node), nil
}

// Normalize converts map[any]any to map[string]any recursively. Entries with
// non-string keys are dropped. Unquoted timestamps, which yaml.v3 resolves to
// time.Time, become RFC 3339 strings as they would be in JSON.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = Normalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = Normalize(t[i])
		}
		return arr
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}
