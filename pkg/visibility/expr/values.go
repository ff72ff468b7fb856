package expr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-choicelist/pkg/visibility"
)

const extrasPrefix = "extras."

// lookup resolves a reference against ctx.Values, or ctx.Extras for names
// starting with "extras.".
func lookup(ctx visibility.Context, name string) (any, bool) {
	name = strings.TrimSpace(name)
	if len(name) > len(extrasPrefix) && strings.EqualFold(name[:len(extrasPrefix)], extrasPrefix) {
		return walk(ctx.Extras, name[len(extrasPrefix):])
	}
	return walk(ctx.Values, name)
}

// walk looks up path in values. A key that contains dots wins over
// traversal, so flattened keys such as "profile.name" resolve.
func walk(values map[string]any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if len(values) == 0 || path == "" {
		return nil, false
	}
	if v, ok := values[path]; ok {
		return v, true
	}

	var current any = values
	for rest := path; rest != ""; {
		var part string
		part, rest, _ = strings.Cut(rest, ".")
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, false
		}
		switch m := current.(type) {
		case map[string]any:
			next, ok := m[part]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := m[part]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) != ""
	case map[string]any:
		return len(t) > 0
	}
	if n, ok := numeric(v); ok {
		return n != 0
	}
	if items, ok := asList(v); ok {
		return len(items) > 0
	}
	return true
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case map[string]any:
		return len(t) == 0
	}
	if items, ok := asList(v); ok {
		return len(items) == 0
	}
	return false
}

func asBool(v any) bool {
	if s, ok := v.(string); ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return parsed
		}
	}
	return truthy(v)
}

// numeric converts Go number types; strings are not parsed.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// asNumber is numeric plus numeric strings.
func asNumber(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return numeric(v)
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(v)
	}
}

// asList reports slices and arrays as []any. Byte slices are not lists.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil, []byte, string:
		return nil, false
	case []any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// listOf treats a scalar as a one element list and nil as empty.
func listOf(v any) []any {
	if v == nil {
		return nil
	}
	if items, ok := asList(v); ok {
		return items
	}
	return []any{v}
}

func equal(a, b any) bool {
	if l, ok := asNumber(a); ok {
		if r, ok := asNumber(b); ok {
			return l == r
		}
	}
	return asString(a) == asString(b)
}

func containsEqual(items []any, needle any) bool {
	for _, item := range items {
		if equal(item, needle) {
			return true
		}
	}
	return false
}

// contains is list membership for lists and substring search otherwise.
func contains(haystack, needle any) bool {
	if haystack == nil {
		return false
	}
	if items, ok := asList(haystack); ok {
		return containsEqual(items, needle)
	}
	return strings.Contains(asString(haystack), asString(needle))
}

func anyOf(value, candidates any) bool {
	selected := listOf(value)
	for _, candidate := range listOf(candidates) {
		if containsEqual(selected, candidate) {
			return true
		}
	}
	return false
}

func allOf(value, required any) bool {
	selected, want := listOf(value), listOf(required)
	if len(want) == 0 {
		return false
	}
	for _, candidate := range want {
		if !containsEqual(selected, candidate) {
			return false
		}
	}
	return true
}
