// Package intervals provides the closed bounded range used to describe the
// years and days a calendar supports.
package intervals

import (
	"cmp"
	"fmt"

	"github.com/zapponejosh/daycount/internal/mathz"
)

// Range is the closed interval [Min, Max]. The zero value is the singleton
// range containing the zero value of T.
type Range[T cmp.Ordered] struct {
	min T
	max T
}

// New returns the range [lo, hi]. It panics if lo > hi; ranges are built
// from constants, so an inverted range is a programming error.
func New[T cmp.Ordered](lo, hi T) Range[T] {
	if lo > hi {
		panic(fmt.Sprintf("intervals: invalid range [%v, %v]", lo, hi))
	}
	return Range[T]{min: lo, max: hi}
}

// Singleton returns the range containing only v.
func Singleton[T cmp.Ordered](v T) Range[T] {
	return Range[T]{min: v, max: v}
}

// Min returns the lower bound.
func (r Range[T]) Min() T { return r.min }

// Max returns the upper bound.
func (r Range[T]) Max() T { return r.max }

// Endpoints returns both bounds.
func (r Range[T]) Endpoints() (T, T) { return r.min, r.max }

// Contains reports whether min <= v <= max.
func (r Range[T]) Contains(v T) bool {
	return r.min <= v && v <= r.max
}

// IsSingleton reports whether the range holds exactly one value.
func (r Range[T]) IsSingleton() bool {
	return r.min == r.max
}

// IsSubsetOf reports whether every value of r is also in other.
func (r Range[T]) IsSubsetOf(other Range[T]) bool {
	return other.min <= r.min && r.max <= other.max
}

// Intersect returns the overlap of two ranges. ok is false when they are
// disjoint.
func (r Range[T]) Intersect(other Range[T]) (Range[T], bool) {
	lo := max(r.min, other.min)
	hi := min(r.max, other.max)
	if lo > hi {
		return Range[T]{}, false
	}
	return Range[T]{min: lo, max: hi}, true
}

// Span returns the smallest range containing both r and other.
func (r Range[T]) Span(other Range[T]) Range[T] {
	return Range[T]{min: min(r.min, other.min), max: max(r.max, other.max)}
}

// String returns the range in interval notation.
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}

// Count returns the number of integers in an integer range.
func Count[T mathz.Integer](r Range[T]) int64 {
	return int64(r.max) - int64(r.min) + 1
}
