// Package validate provides the constraint-checking algebra attached to
// codecs: a Validator is a pure function from a value to zero or more
// Violations, composed with And and adapted across type boundaries with
// Contramap. Validators never mutate their input and never panic on
// structurally valid values.
package validate

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"

	"github.com/wireform/wireform/i18n"
)

// Violation codes (exported consts for IDE completion and type safety by
// convention).
const (
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodeTooShort     = "too_short"
	CodeTooLong      = "too_long"
	CodeTooFewItems  = "too_few_items"
	CodeTooManyItems = "too_many_items"
	CodePattern      = "pattern"
	CodeInvalidEnum  = "invalid_enum"
	CodeCustom       = "custom"
)

// Violation records a single rejected constraint: the rule code, a
// human-readable message, the offending value, and structured parameters
// (e.g. {"min":"1"}) for observability.
type Violation struct {
	Code    string
	Message string
	Value   any
	Params  map[string]string
}

// Violations is a collection of constraint failures that implements error.
type Violations []Violation

// Error summarizes the first few violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(vs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s: %s", vs[i].Code, vs[i].Message)
	}
	if len(vs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(vs))
	}
	return b.String()
}

// Validator checks a value of type T and reports every violated constraint.
// A nil Validator accepts everything; use Apply to invoke one safely.
type Validator[T any] func(T) []Violation

// Apply runs v against t, treating a nil validator as pass.
func Apply[T any](v Validator[T], t T) []Violation {
	if v == nil {
		return nil
	}
	return v(t)
}

// And returns a Validator that collects the violations of v and every
// other validator, in order. Nil validators are skipped.
func (v Validator[T]) And(others ...Validator[T]) Validator[T] {
	all := make([]Validator[T], 0, len(others)+1)
	if v != nil {
		all = append(all, v)
	}
	for _, o := range others {
		if o != nil {
			all = append(all, o)
		}
	}
	if len(all) == 0 {
		return nil
	}
	return func(t T) []Violation {
		var out []Violation
		for _, each := range all {
			out = append(out, each(t)...)
		}
		return out
	}
}

// Contramap adapts a Validator over T into one over U by mapping the U
// value back to T before checking. This is how derived mappings keep the
// base validator engaged after a value transformation.
func Contramap[T, U any](v Validator[T], f func(U) T) Validator[U] {
	if v == nil {
		return nil
	}
	return func(u U) []Violation { return v(f(u)) }
}

// Each lifts an element validator to a slice validator; violations of all
// elements are collected in slice order.
func Each[T any](v Validator[T]) Validator[[]T] {
	if v == nil {
		return nil
	}
	return func(ts []T) []Violation {
		var out []Violation
		for _, t := range ts {
			out = append(out, v(t)...)
		}
		return out
	}
}

// Pass accepts every value. Useful as an explicit placeholder.
func Pass[T any]() Validator[T] { return nil }

// Min requires the value to be at least bound (strictly greater when
// exclusive is true).
func Min[T cmp.Ordered](bound T, exclusive bool) Validator[T] {
	return func(t T) []Violation {
		if t > bound || (!exclusive && t == bound) {
			return nil
		}
		return []Violation{{
			Code:    CodeTooSmall,
			Message: i18n.T(CodeTooSmall, nil),
			Value:   t,
			Params:  map[string]string{"min": fmt.Sprint(bound)},
		}}
	}
}

// Max requires the value to be at most bound (strictly less when exclusive
// is true).
func Max[T cmp.Ordered](bound T, exclusive bool) Validator[T] {
	return func(t T) []Violation {
		if t < bound || (!exclusive && t == bound) {
			return nil
		}
		return []Violation{{
			Code:    CodeTooBig,
			Message: i18n.T(CodeTooBig, nil),
			Value:   t,
			Params:  map[string]string{"max": fmt.Sprint(bound)},
		}}
	}
}

// MinLength requires a string of at least n bytes.
func MinLength(n int) Validator[string] {
	return func(s string) []Violation {
		if len(s) >= n {
			return nil
		}
		return []Violation{{
			Code:    CodeTooShort,
			Message: i18n.T(CodeTooShort, nil),
			Value:   s,
			Params:  map[string]string{"min": fmt.Sprint(n)},
		}}
	}
}

// MaxLength requires a string of at most n bytes.
func MaxLength(n int) Validator[string] {
	return func(s string) []Violation {
		if len(s) <= n {
			return nil
		}
		return []Violation{{
			Code:    CodeTooLong,
			Message: i18n.T(CodeTooLong, nil),
			Value:   s,
			Params:  map[string]string{"max": fmt.Sprint(n)},
		}}
	}
}

// MinSize requires a slice of at least n elements.
func MinSize[T any](n int) Validator[[]T] {
	return func(ts []T) []Violation {
		if len(ts) >= n {
			return nil
		}
		return []Violation{{
			Code:    CodeTooFewItems,
			Message: i18n.T(CodeTooFewItems, nil),
			Value:   ts,
			Params:  map[string]string{"min": fmt.Sprint(n)},
		}}
	}
}

// MaxSize requires a slice of at most n elements.
func MaxSize[T any](n int) Validator[[]T] {
	return func(ts []T) []Violation {
		if len(ts) <= n {
			return nil
		}
		return []Violation{{
			Code:    CodeTooManyItems,
			Message: i18n.T(CodeTooManyItems, nil),
			Value:   ts,
			Params:  map[string]string{"max": fmt.Sprint(n)},
		}}
	}
}

// Pattern requires the whole string to match re.
func Pattern(re *regexp.Regexp) Validator[string] {
	return func(s string) []Violation {
		if re.MatchString(s) {
			return nil
		}
		return []Violation{{
			Code:    CodePattern,
			Message: i18n.T(CodePattern, nil),
			Value:   s,
			Params:  map[string]string{"pattern": re.String()},
		}}
	}
}

// Enumeration requires the value to be one of the allowed set.
func Enumeration[T comparable](allowed ...T) Validator[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(t T) []Violation {
		if _, ok := set[t]; ok {
			return nil
		}
		return []Violation{{
			Code:    CodeInvalidEnum,
			Message: i18n.T(CodeInvalidEnum, nil),
			Value:   t,
		}}
	}
}

// Custom wraps an arbitrary predicate; msg is used verbatim when the
// predicate rejects.
func Custom[T any](pred func(T) bool, msg string) Validator[T] {
	return func(t T) []Violation {
		if pred(t) {
			return nil
		}
		return []Violation{{Code: CodeCustom, Message: msg, Value: t}}
	}
}
