package choices

import (
	"reflect"
)

// ValuesEqual compares choice values. Numbers compare by magnitude so that a
// value decoded from JSON (float64) matches one configured as an int;
// structured values compare deeply.
func ValuesEqual(a, b any) bool {
	if an, ok := numericValue(a); ok {
		if bn, ok := numericValue(b); ok {
			return an == bn
		}
		return false
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	return reflect.DeepEqual(a, b)
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// toValueList normalises a multi-select value into a fresh slice.
func toValueList(v any) []any {
	if v == nil {
		return nil
	}
	switch typed := v.(type) {
	case []any:
		return append([]any(nil), typed...)
	case []string:
		out := make([]any, len(typed))
		for i, s := range typed {
			out[i] = s
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}

func containsValue(values []any, v any) bool {
	for _, candidate := range values {
		if ValuesEqual(candidate, v) {
			return true
		}
	}
	return false
}

func removeValue(values []any, v any) []any {
	out := make([]any, 0, len(values))
	for _, candidate := range values {
		if ValuesEqual(candidate, v) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
