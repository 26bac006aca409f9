package api

import (
	"bytes"
	"encoding/json"
)

// Optional is a presence-tagged value. The zero Optional is unset and is
// omitted from JSON by fields tagged omitzero. A set Optional is always
// emitted, even when it holds false, 0 or "".
type Optional[T any] struct {
	value T
	set   bool
}

// Opt returns a set Optional holding v.
func Opt[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was provided.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// ValueOr returns the value, or def when unset.
func (o Optional[T]) ValueOr(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// IsZero reports whether the value is unset. encoding/json consults it for
// omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// MarshalJSON emits the held value, or null when unset.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON marks the Optional set. A JSON null leaves it unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		var zero T
		o.value, o.set = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.set = true
	return nil
}

func (o Optional[T]) queryValue() (any, bool) {
	return o.value, o.set
}
