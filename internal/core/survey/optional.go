package survey

import "encoding/json"

// Opt is a field value that is either absent or present
// the zero Opt is absent, which is how dirty or missing cells are represented
type Opt[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value
func Some[T any](v T) Opt[T] { return Opt[T]{value: v, ok: true} }

// None returns an absent value
func None[T any]() Opt[T] { return Opt[T]{} }

// IsNone reports whether the value is absent
func (o Opt[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it is present
func (o Opt[T]) Get() (T, bool) { return o.value, o.ok }

// UnwrapOr returns the value when present, otherwise def
func (o Opt[T]) UnwrapOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// MarshalJSON emits null for absent values
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
