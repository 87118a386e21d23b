package record

import (
	"strconv"
)

// Record is a decoded JSON/YAML object.
type Record = map[string]any

// Clone returns a deep copy of r. Nested objects and lists are copied, scalar
// values are shared.
func Clone(r Record) Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

// CloneValue returns a deep copy of any decoded JSON/YAML value.
func CloneValue(v any) any {
	return cloneValue(v)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// DeepMerge merges extra into target and returns target.
//
// For every key in extra: when both sides hold objects they are merged
// recursively, otherwise the value from extra replaces the one in target.
// Lists are replaced wholesale, never merged element-wise.
//
// DeepMerge takes ownership of extra: nested values of extra end up inside
// target, so callers must not use extra afterwards. Values obtained from a
// Table are already private copies.
func DeepMerge(target, extra Record) Record {
	for key, value := range extra {
		if src, ok := value.(map[string]any); ok {
			if dst, ok := target[key].(map[string]any); ok {
				DeepMerge(dst, src)
				continue
			}
		}
		target[key] = value
	}
	return target
}

// String returns r[key] when it is a string.
func String(r Record, key string) string {
	s, _ := r[key].(string)
	return s
}

// Float returns r[key] as float64. Numbers decoded from YAML or JSON may be
// ints or floats; numeric strings are accepted as well. The second result is
// false when the key is missing or not numeric.
func Float(r Record, key string) (float64, bool) {
	return toFloat(r[key])
}

// Has reports whether key is present in r, even with a nil value.
func Has(r Record, key string) bool {
	_, ok := r[key]
	return ok
}

// Map returns r[key] when it is an object.
func Map(r Record, key string) (Record, bool) {
	m, ok := r[key].(map[string]any)
	return m, ok
}

// List returns r[key] when it is a list.
func List(r Record, key string) []any {
	l, _ := r[key].([]any)
	return l
}

// Records returns the objects stored in the list r[key], skipping anything
// that is not an object.
func Records(r Record, key string) []Record {
	items := List(r, key)
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Truthy mirrors how the site data treats optional values: nil, false, zero
// numbers, empty strings and empty collections count as absent.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		if f, ok := toFloat(v); ok {
			return f != 0
		}
		return true
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
