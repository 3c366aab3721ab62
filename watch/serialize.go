package watch

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/traitkit/traitkit/introspect"
	"github.com/traitkit/traitkit/props"
)

// Placeholders substituted when a value cannot be rendered. Serialization
// problems never abort the traced operation.
const (
	funcPlaceholder           = "<func>"
	unserializablePlaceholder = "<unserializable>"
)

// Serializer renders a value as human-readable text for log lines.
type Serializer func(v any) string

// Serialize is the default serializer: structural JSON, with wrapped
// values rendered as their underlying object. Funcs render as <func>;
// cycle points and values JSON cannot encode render as <unserializable>
// instead of failing.
func Serialize(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(sanitize(v, make(map[uintptr]bool))); err != nil {
		return unserializablePlaceholder
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// sanitize converts a possibly wrapped, possibly cyclic value tree into
// plain JSON-encodable structures. seen tracks container identities on
// the current path so cycles collapse to a placeholder.
func sanitize(v any, seen map[uintptr]bool) any {
	if n, ok := v.(*Node); ok {
		v = n.raw
	}
	switch x := v.(type) {
	case *introspect.Instance:
		id := reflect.ValueOf(x).Pointer()
		if seen[id] {
			return unserializablePlaceholder
		}
		seen[id] = true
		defer delete(seen, id)
		return sanitizeMap(x.Properties(), seen)
	case props.Map:
		return sanitizeContainer(x, seen)
	case map[string]any:
		return sanitizeContainer(props.Map(x), seen)
	case []any:
		result := make([]any, len(x))
		for i, e := range x {
			result[i] = sanitize(e, seen)
		}
		return result
	}
	if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
		return funcPlaceholder
	}
	return v
}

func sanitizeContainer(m props.Map, seen map[uintptr]bool) any {
	id := reflect.ValueOf(m).Pointer()
	if seen[id] {
		return unserializablePlaceholder
	}
	seen[id] = true
	defer delete(seen, id)
	return sanitizeMap(m, seen)
}

func sanitizeMap(m props.Map, seen map[uintptr]bool) map[string]any {
	result := make(map[string]any, len(m))
	for k, val := range m {
		result[k] = sanitize(val, seen)
	}
	return result
}
