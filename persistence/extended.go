package persistence

import (
	"cmp"
	"fmt"
)

// Extended is a value of the totally ordered set T ∪ {∞}: either Finite(v)
// or Infinity, with every finite value below Infinity. Death times of
// barcode intervals live here.
type Extended[T cmp.Ordered] struct {
	value    T
	infinite bool
}

// Finite wraps a finite value.
func Finite[T cmp.Ordered](v T) Extended[T] { return Extended[T]{value: v} }

// Infinity returns the top element.
func Infinity[T cmp.Ordered]() Extended[T] { return Extended[T]{infinite: true} }

// IsInfinite reports whether e is the top element.
func (e Extended[T]) IsInfinite() bool { return e.infinite }

// Value returns the finite value and true, or the zero value and false for
// Infinity.
func (e Extended[T]) Value() (T, bool) {
	if e.infinite {
		var zero T

		return zero, false
	}

	return e.value, true
}

// Less implements the total order: Finite(a) < Finite(b) iff a < b,
// Finite(_) < Infinity, and Infinity is not below itself.
func (e Extended[T]) Less(o Extended[T]) bool {
	switch {
	case e.infinite:
		return false
	case o.infinite:
		return true
	default:
		return e.value < o.value
	}
}

// String renders "∞" for the top element and the plain value otherwise.
func (e Extended[T]) String() string {
	if e.infinite {
		return "∞"
	}

	return fmt.Sprint(e.value)
}

// Bar is one barcode interval: a feature born at Birth that dies at Death
// (possibly never).
type Bar[T cmp.Ordered] struct {
	Birth T
	Death Extended[T]
}

// String renders the interval as "[birth, death)".
func (b Bar[T]) String() string {
	return fmt.Sprintf("[%v, %s)", b.Birth, b.Death.String())
}
