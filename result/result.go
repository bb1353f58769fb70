// Package result wraps decoded JSON API responses in a read-only value with
// explicit field and index accessors.
//
// The ThirdLight API puts the interesting data of most responses inside an
// outParams object next to the result status block. Field therefore falls
// through to outParams when the requested key is not present at the top
// level, so
//
//	res.Field("panoramicUrl")
//
// works on a response of the shape
//
//	{"result": {"action": "OK", "api": "OK"},
//	 "outParams": {"panoramicUrl": "http://..."}}
//
// A missing field is an error, never a silent zero value.
package result

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Value is an immutable view over a decoded JSON value. The zero Value
// represents JSON null.
type Value struct {
	v any
}

// Wrap wraps an already decoded JSON value.
func Wrap(v any) Value {
	return Value{v: v}
}

// FromJSON decodes raw JSON into a Value. Numbers decode as json.Number so
// no precision is lost.
func FromJSON(raw []byte) (Value, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}
	return Value{v: v}, nil
}

// Interface returns the underlying decoded value.
func (v Value) Interface() any {
	return v.v
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.v == nil
}

// Field looks up a key on an object value, consulting outParams when the
// key is absent at the top level. An unknown field is a *FieldError.
func (v Value) Field(name string) (Value, error) {
	obj, ok := v.v.(map[string]any)
	if !ok {
		return Value{}, &FieldError{Name: name}
	}

	if val, ok := obj[name]; ok {
		return Value{v: val}, nil
	}
	if out, ok := obj["outParams"].(map[string]any); ok {
		if val, ok := out[name]; ok {
			return Value{v: val}, nil
		}
	}

	return Value{}, &FieldError{Name: name}
}

// Has reports whether Field would succeed for name.
func (v Value) Has(name string) bool {
	_, err := v.Field(name)
	return err == nil
}

// Index returns the i-th element of an array value.
func (v Value) Index(i int) (Value, error) {
	arr, ok := v.v.([]any)
	if !ok {
		return Value{}, &IndexError{Index: i}
	}
	if i < 0 || i >= len(arr) {
		return Value{}, &IndexError{Index: i, Len: len(arr)}
	}
	return Value{v: arr[i]}, nil
}

// Len returns the number of elements of an array or keys of an object,
// zero for anything else.
func (v Value) Len() int {
	switch t := v.v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	default:
		return 0
	}
}

// Values materializes an array value into wrapped elements. The slice is
// freshly built on every call, so ranging over it repeatedly always yields
// the same sequence.
func (v Value) Values() []Value {
	arr, ok := v.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Value, len(arr))
	for i, e := range arr {
		out[i] = Value{v: e}
	}
	return out
}

// Keys returns the sorted keys of an object value.
func (v Value) Keys() []string {
	obj, ok := v.v.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Str returns the value as a string.
func (v Value) Str() (string, error) {
	s, ok := v.v.(string)
	if !ok {
		return "", fmt.Errorf("value is %T, not a string", v.v)
	}
	return s, nil
}

// Int returns the value as an int64.
func (v Value) Int() (int64, error) {
	switch t := v.v.(type) {
	case json.Number:
		return t.Int64()
	case float64:
		return int64(t), nil
	default:
		return 0, fmt.Errorf("value is %T, not a number", v.v)
	}
}

// Float returns the value as a float64.
func (v Value) Float() (float64, error) {
	switch t := v.v.(type) {
	case json.Number:
		return t.Float64()
	case float64:
		return t, nil
	default:
		return 0, fmt.Errorf("value is %T, not a number", v.v)
	}
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.v.(bool)
	if !ok {
		return false, fmt.Errorf("value is %T, not a bool", v.v)
	}
	return b, nil
}

// Decode unmarshals the value into a typed destination via a JSON
// round trip.
func (v Value) Decode(into any) error {
	raw, err := json.Marshal(v.v)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("unmarshal into type: %w", err)
	}
	return nil
}

// String renders the underlying value as compact JSON, for logs and
// error messages.
func (v Value) String() string {
	raw, err := json.Marshal(v.v)
	if err != nil {
		return fmt.Sprintf("%v", v.v)
	}
	return string(raw)
}
