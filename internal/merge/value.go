// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Shape classifies a configuration value as scalar, list or mapping.
type Shape string

const (
	ShapeScalar  Shape = "scalar"
	ShapeList    Shape = "list"
	ShapeMapping Shape = "mapping"
)

// ShapeOf reports the shape of a decoded configuration value. Only []any and
// map[string]any count as composites; every other Go value is a scalar.
func ShapeOf(v any) Shape {
	switch v.(type) {
	case []any:
		return ShapeList
	case map[string]any:
		return ShapeMapping
	default:
		return ShapeScalar
	}
}

// IsComposite reports whether v is a list or mapping.
func IsComposite(v any) bool {
	return ShapeOf(v) != ShapeScalar
}

// EncodeCanonical serializes v to the canonical stored representation:
// JSON with sorted mapping keys, no HTML escaping and non-ASCII characters
// preserved verbatim.
func EncodeCanonical(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// decodeStored decodes a raw stored value into a composite. Numbers are kept
// as json.Number so re-encoding does not alter their textual form.
func decodeStored(key, raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &InvalidStoredValueError{Key: key, Raw: raw, Err: err}
	}
	if !IsComposite(v) {
		return nil, &InvalidStoredValueError{Key: key, Raw: raw}
	}
	return v, nil
}
