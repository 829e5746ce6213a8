// Package normalize coerces parsed-but-untrusted objects into
// schema-conformant results. LLM output that survived JSON repair still gets
// field types wrong: strings where arrays belong, numbers as strings, whole
// sections missing. Normalization is per-field: one corrupted field falls
// back to its default without dropping the rest of the record.
package normalize

import (
	"encoding/json"
	"strconv"
)

// Kind is the expected primitive shape of a field
type Kind int

// Field kinds supported by the normalizer
const (
	String Kind = iota
	Number
	Bool
	StringList
	ObjectList
	Object
)

// FieldSpec describes one expected field: its kind, the nested shape for
// Object and ObjectList kinds, and the default used when the raw value is
// missing or unusably typed.
type FieldSpec struct {
	Kind    Kind
	Fields  Shape // element shape for Object / ObjectList
	Default any
}

// Shape maps field names to their specs. It is the schema-description
// structure interpreted by Apply; callers declare shapes once per result type
// instead of hand-writing per-type validators.
type Shape map[string]FieldSpec

// Apply normalizes raw against shape. Every field in the shape appears in the
// output: type-matching values are copied, safely-coercible values are
// coerced, everything else gets the field default. A nil raw yields a pure
// defaults object. Fields in raw that the shape does not mention are dropped.
func Apply(raw map[string]any, shape Shape) map[string]any {
	out := make(map[string]any, len(shape))
	for name, spec := range shape {
		value, present := raw[name]
		if !present || value == nil {
			out[name] = defaultValue(spec)
			continue
		}
		coerced, ok := coerce(value, spec)
		if !ok {
			out[name] = defaultValue(spec)
			continue
		}
		out[name] = coerced
	}
	return out
}

// Into normalizes raw against shape and unmarshals the result into T.
func Into[T any](raw map[string]any, shape Shape) (T, error) {
	var result T
	normalized := Apply(raw, shape)
	data, err := json.Marshal(normalized)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, err
	}
	return result, nil
}

// coerce converts value to the spec's kind, reporting false when no safe
// conversion exists.
func coerce(value any, spec FieldSpec) (any, bool) {
	switch spec.Kind {
	case String:
		return coerceString(value)
	case Number:
		return coerceNumber(value)
	case Bool:
		b, ok := value.(bool)
		return b, ok
	case StringList:
		return coerceStringList(value)
	case ObjectList:
		return coerceObjectList(value, spec.Fields)
	case Object:
		m, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		return Apply(m, spec.Fields), true
	default:
		return nil, false
	}
}

func coerceString(value any) (any, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return nil, false
	}
}

func coerceNumber(value any) (any, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// coerceStringList accepts a list and keeps its string-representable scalar
// elements. A scalar or object where a list belongs is not safely coercible;
// the caller substitutes the default.
func coerceStringList(value any) (any, bool) {
	list, ok := value.([]any)
	if !ok {
		return nil, false
	}
	out := make([]any, 0, len(list))
	for _, elem := range list {
		if s, ok := coerceString(elem); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// coerceObjectList accepts a list and normalizes its object elements against
// the element shape, dropping elements of other types.
func coerceObjectList(value any, fields Shape) (any, bool) {
	list, ok := value.([]any)
	if !ok {
		return nil, false
	}
	out := make([]any, 0, len(list))
	for _, elem := range list {
		if m, ok := elem.(map[string]any); ok {
			out = append(out, Apply(m, fields))
		}
	}
	return out, true
}

// defaultValue resolves a field's default: the explicit default when set,
// otherwise the zero value for the kind.
func defaultValue(spec FieldSpec) any {
	if spec.Default != nil {
		return spec.Default
	}
	switch spec.Kind {
	case String:
		return ""
	case Number:
		return 0.0
	case Bool:
		return false
	case StringList, ObjectList:
		return []any{}
	case Object:
		return Apply(nil, spec.Fields)
	default:
		return nil
	}
}
