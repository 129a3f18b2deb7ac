// Package optional holds the field type used by partial updates. A Value tells
// apart a key that was not sent, a key sent as null and a key sent with a value.
package optional

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Value is a tri-state request field. The zero Value means "not sent".
type Value[T any] struct {
	set   bool
	valid bool
	val   T
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{set: true, valid: true, val: v}
}

// Null returns a Value that was sent as null.
func Null[T any]() Value[T] {
	return Value[T]{set: true}
}

// IsSet reports whether the key was present, null included.
func (o Value[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the key was present with a null value.
func (o Value[T]) IsNull() bool {
	return o.set && !o.valid
}

// Get returns the value and whether there is one.
func (o Value[T]) Get() (T, bool) {
	return o.val, o.valid
}

// Ptr returns a pointer to a copy of the value, or nil when unset or null.
func (o Value[T]) Ptr() *T {
	if !o.valid {
		return nil
	}
	v := o.val
	return &v
}

// Apply writes the value to a nullable destination when the key was sent.
// An explicit null clears it; an unset Value leaves it untouched.
func (o Value[T]) Apply(dst **T) {
	if o.set {
		*dst = o.Ptr()
	}
}

// Any returns the value as an interface, or nil when there is none.
func (o Value[T]) Any() interface{} {
	if !o.valid {
		return nil
	}
	return o.val
}

// UnmarshalJSON marks the Value as set and decodes data, null included.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	var zero T
	o.set = true
	o.val = zero
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.val); err != nil {
		return err
	}
	o.valid = true
	return nil
}

// MarshalJSON encodes the value, or null when there is none.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.val)
}
