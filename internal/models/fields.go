package models

import (
	"strconv"
	"strings"
)

// Fields is a decoded JSON object. Its accessors walk dotted paths such as
// "client.phone.primaryPhone" and treat any absent or null link as missing.
type Fields map[string]any

// AsFields returns v as Fields when it is a JSON object.
func AsFields(v any) (Fields, bool) {
	switch m := v.(type) {
	case Fields:
		return m, m != nil
	case map[string]any:
		return Fields(m), m != nil
	}
	return nil, false
}

// Lookup resolves path. The second result is false if any segment is absent,
// null, or traverses a non-object.
func (f Fields) Lookup(path string) (any, bool) {
	var cur any = f
	for _, key := range strings.Split(path, ".") {
		obj, ok := AsFields(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Get returns the value at path or def.
func (f Fields) Get(path string, def any) any {
	if v, ok := f.Lookup(path); ok {
		return v
	}
	return def
}

// String renders the value at path as text, falling back to def when it is
// missing or an empty string.
func (f Fields) String(path, def string) string {
	v, ok := f.Lookup(path)
	if !ok {
		return def
	}
	s := Text(v)
	if s == "" {
		return def
	}
	return s
}

// OptionalString is String without a default.
func (f Fields) OptionalString(path string) *string {
	v, ok := f.Lookup(path)
	if !ok {
		return nil
	}
	s := Text(v)
	return &s
}

// Number returns the value at path when it is a JSON number.
func (f Fields) Number(path string) (float64, bool) {
	v, ok := f.Lookup(path)
	if !ok {
		return 0, false
	}
	return AsNumber(v)
}

// Truthy follows JavaScript truthiness: false, 0, "" and missing are false.
func (f Fields) Truthy(path string) bool {
	v, ok := f.Lookup(path)
	if !ok {
		return false
	}
	return IsTruthy(v)
}

// Object returns the nested object at path.
func (f Fields) Object(path string) (Fields, bool) {
	v, ok := f.Lookup(path)
	if !ok {
		return nil, false
	}
	return AsFields(v)
}

// List returns the nested array at path.
func (f Fields) List(path string) ([]any, bool) {
	v, ok := f.Lookup(path)
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// AsNumber reports whether v holds a JSON number.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// IsTruthy applies JavaScript truthiness to a decoded JSON value.
func IsTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if n, ok := AsNumber(v); ok {
		return n != 0
	}
	return true
}

// Text formats a scalar JSON value the way it would print in a log line.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	}
	if n, ok := AsNumber(v); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}
