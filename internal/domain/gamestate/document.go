package gamestate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
)

// Extra holds object keys the record does not model. They are written back
// unchanged on save.
type Extra map[string]json.RawMessage

// splitObject decodes a JSON object and separates the modeled keys from the rest
func splitObject(data []byte, known ...string) (fields map[string]json.RawMessage, extra Extra, err error) {
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, nil, err
	}

	for key, raw := range fields {
		if slices.Contains(known, key) {
			continue
		}
		if extra == nil {
			extra = Extra{}
		}
		extra[key] = raw
		delete(fields, key)
	}
	return fields, extra, nil
}

// joinObject appends the extra keys, in sorted order, to an encoded object.
// Keys the object already models are skipped.
func joinObject(object []byte, extra Extra, known ...string) ([]byte, error) {
	keys := make([]string, 0, len(extra))
	for key := range extra {
		if !slices.Contains(known, key) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return object, nil
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(object[:len(object)-1])
	for i, key := range keys {
		if i > 0 || len(object) > 2 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(extra[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeInt accepts any whole JSON number, including 12.0. null decodes as zero.
func decodeInt(key string, raw json.RawMessage) (int, error) {
	if isNull(raw) {
		return 0, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("%s: %s is not a whole number", key, n)
	}
	return int(f), nil
}

// decodeField unmarshals one modeled key, wrapping errors with the key name
func decodeField(key string, raw json.RawMessage, target any) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
