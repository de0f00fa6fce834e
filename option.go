package wireform

import "github.com/wireform/wireform/validate"

// Option is a small value type for an optional H, used by the option
// combinators and the -or-close frame codecs. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](t T) Option[T] { return Option[T]{value: t, ok: true} }

// None is the absent value.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports presence.
func (o Option[T]) IsSome() bool { return o.ok }

// OrElse returns the value when present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Set is a duplicate-free collection of high-level values. Decoding
// through a set codec collapses duplicates silently.
type Set[T comparable] map[T]struct{}

// NewSet builds a Set from its elements.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s Set[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}

// Vector is an ordered sequence of high-level values, distinct from a
// plain list only in intent: the order is part of the value.
type Vector[T any] []T

// optionValidator applies the element validator when the option is
// present; None always passes.
func optionValidator[T any](v validate.Validator[T]) validate.Validator[Option[T]] {
	if v == nil {
		return nil
	}
	return func(o Option[T]) []validate.Violation {
		if t, ok := o.Get(); ok {
			return v(t)
		}
		return nil
	}
}

// setValidator applies the element validator to every member.
func setValidator[T comparable](v validate.Validator[T]) validate.Validator[Set[T]] {
	if v == nil {
		return nil
	}
	return func(s Set[T]) []validate.Violation {
		var out []validate.Violation
		for t := range s {
			out = append(out, v(t)...)
		}
		return out
	}
}
