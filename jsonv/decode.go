package jsonv

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is the decode failure kind reported when a document does
// not have the shape a target type requires. Per-field optional access uses
// absence instead; this error is reserved for whole-value conversions.
var ErrTypeMismatch = errors.New("jsonv: type mismatch")

// Unmarshaler is implemented by types that can construct themselves from a
// Value. Implementations hold the Value (or fields projected from it) by
// composition; a failed conversion must leave no partial result behind.
type Unmarshaler interface {
	UnmarshalValue(v Value) error
}

// Decode builds a T from v via its UnmarshalValue implementation.
func Decode[T any, P interface {
	*T
	Unmarshaler
}](v Value) (*T, error) {
	out := new(T)
	if err := P(out).UnmarshalValue(v); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeSlice decodes a JSON array into a slice of T. Every element must
// decode; the first failing element fails the whole operation and no
// partial slice is returned.
func DecodeSlice[T any, P interface {
	*T
	Unmarshaler
}](v Value) ([]*T, error) {
	elems, ok := v.AsArray().Get()
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrTypeMismatch, v.typeName())
	}
	out := make([]*T, len(elems))
	for i, e := range elems {
		t, err := Decode[T, P](e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}
