package shared

import "fmt"

// ═══════════════════════════════════════════════════════════════════════════
// Optional Value Object
// ═══════════════════════════════════════════════════════════════════════════

// Optional represents a value that may legitimately be absent.
// "No matching data" is a normal outcome for several queries, not an
// error, so it must be representable without sentinel values.
type Optional[T any] struct {
	value   T
	present bool
}

// Some creates an Optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None creates an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent checks if the Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value, panicking if it is absent.
// Use only where presence has already been checked.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: value is absent")
	}
	return o.value
}

// OrElse returns the value if present, otherwise the fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// String returns a human-readable representation.
func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
