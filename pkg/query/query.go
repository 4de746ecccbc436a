// Package query builds list/filter query strings. Absent and empty values are
// treated identically: a key whose value is nil, a nil pointer or "" is never
// sent, not even as "key=".
package query

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Params maps query keys to filter values.
type Params map[string]any

// Encode returns the non-empty params as url.Values. Slices become repeated
// keys; empty elements inside a slice are dropped as well.
func (p Params) Encode() url.Values {
	values := url.Values{}
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, v := range flatten(p[key]) {
			values.Add(key, v)
		}
	}
	return values
}

// Merge returns a copy of p with other applied on top.
func (p Params) Merge(other Params) Params {
	out := make(Params, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

func flatten(value any) []string {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}

	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, flatten(rv.Index(i).Interface())...)
		}
		return out
	}

	s, ok := format(rv)
	if !ok || s == "" {
		return nil
	}
	return []string{s}
}

func format(rv reflect.Value) (string, bool) {
	if t, ok := rv.Interface().(time.Time); ok {
		if t.IsZero() {
			return "", false
		}
		return t.UTC().Format(time.RFC3339), true
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return strings.TrimSpace(s.String()), true
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return fmt.Sprint(rv.Interface()), true
	}
}

// OmitZero maps the zero value of v to nil so Encode drops it. Use it for
// numeric filters where zero means "not set".
func OmitZero[T comparable](v T) any {
	var zero T
	if v == zero {
		return nil
	}
	return v
}
