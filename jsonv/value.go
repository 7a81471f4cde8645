// Package jsonv provides a path-addressable, read-only view over a parsed
// JSON document, plus a conversion protocol for building typed values from it.
package jsonv

import (
	"errors"

	"github.com/samber/mo"
	"github.com/tidwall/gjson"
)

// ErrMalformed is returned by Parse when the input is not valid JSON.
var ErrMalformed = errors.New("jsonv: malformed input")

// Value wraps a parsed JSON value (object, array, string, number, boolean
// or null). The zero Value is absent: Exists reports false and every
// projection yields None. Values never mutate after construction.
type Value struct {
	r gjson.Result
}

// Parse parses raw JSON bytes into a Value.
func Parse(raw []byte) (Value, error) {
	if !gjson.ValidBytes(raw) {
		return Value{}, ErrMalformed
	}
	return Value{r: gjson.ParseBytes(raw)}, nil
}

// Exists reports whether the value is present. A JSON null leaf exists;
// only failed traversals and the zero Value are absent.
func (v Value) Exists() bool {
	return v.r.Exists()
}

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool {
	return v.r.IsObject()
}

// IsArray reports whether the value is a JSON array.
func (v Value) IsArray() bool {
	return v.r.IsArray()
}

// Get walks the given path and returns the value it addresses. String steps
// address object members, int steps address array indices. The whole path
// must match the actual shape of the document; any mismatched or missing
// step yields the absent Value, never a partial result.
func (v Value) Get(path ...any) Value {
	r := v.r
	for _, step := range path {
		switch s := step.(type) {
		case string:
			if !r.IsObject() {
				return Value{}
			}
			child, ok := r.Map()[s]
			if !ok {
				return Value{}
			}
			r = child
		case int:
			if !r.IsArray() || s < 0 {
				return Value{}
			}
			elems := r.Array()
			if s >= len(elems) {
				return Value{}
			}
			r = elems[s]
		default:
			return Value{}
		}
	}
	return Value{r: r}
}

// AsString projects the value as a string, or None on type mismatch.
func (v Value) AsString() mo.Option[string] {
	if v.r.Type != gjson.String {
		return mo.None[string]()
	}
	return mo.Some(v.r.String())
}

// AsNumber projects the value as a float64, or None on type mismatch.
func (v Value) AsNumber() mo.Option[float64] {
	if v.r.Type != gjson.Number {
		return mo.None[float64]()
	}
	return mo.Some(v.r.Float())
}

// AsBool projects the value as a bool, or None on type mismatch.
func (v Value) AsBool() mo.Option[bool] {
	if v.r.Type != gjson.True && v.r.Type != gjson.False {
		return mo.None[bool]()
	}
	return mo.Some(v.r.Bool())
}

// AsArray projects the value as a sequence of child Values, or None when
// the value is not a JSON array.
func (v Value) AsArray() mo.Option[[]Value] {
	if !v.r.IsArray() {
		return mo.None[[]Value]()
	}
	elems := v.r.Array()
	out := make([]Value, len(elems))
	for i, e := range elems {
		out[i] = Value{r: e}
	}
	return mo.Some(out)
}

// Raw returns the raw JSON text backing the value, "" when absent.
func (v Value) Raw() string {
	return v.r.Raw
}

// typeName describes the value's JSON type for error messages.
func (v Value) typeName() string {
	if !v.r.Exists() {
		return "absent"
	}
	switch {
	case v.r.IsObject():
		return "object"
	case v.r.IsArray():
		return "array"
	default:
		return v.r.Type.String()
	}
}
