package wireform

import (
	"fmt"
	"strings"

	"github.com/wireform/wireform/i18n"
	"github.com/wireform/wireform/validate"
)

// ResultKind identifies which DecodeResult variant is active. The set is
// closed; transport layers map each kind to a distinct response policy.
type ResultKind int

const (
	// KindValue is the only successful kind.
	KindValue ResultKind = iota
	// KindError marks structurally unparseable input.
	KindError
	// KindMissing marks an absent required value.
	KindMissing
	// KindMultiple marks more raw values than the target type permits.
	KindMultiple
	// KindInvalidValue marks a structurally valid value rejected by the
	// attached validator.
	KindInvalidValue
)

// String returns the kind's wire-stable code.
func (k ResultKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindError:
		return "error"
	case KindMissing:
		return "missing"
	case KindMultiple:
		return "multiple"
	case KindInvalidValue:
		return "invalid_value"
	}
	return fmt.Sprintf("ResultKind(%d)", int(k))
}

// DecodeResult is the outcome of a decode attempt: either a Value carrying
// a usable H, or one of four failure kinds. Exactly one variant is active.
// Results are immutable; combinators produce new ones.
type DecodeResult[H any] struct {
	kind       ResultKind
	value      H
	raw        string
	cause      error
	raws       []string
	violations []validate.Violation
}

// Value wraps a successfully decoded value.
func Value[H any](h H) DecodeResult[H] {
	return DecodeResult[H]{kind: KindValue, value: h}
}

// DecodeError reports unparseable input, keeping the original raw text and
// the underlying cause.
func DecodeError[H any](raw string, cause error) DecodeResult[H] {
	return DecodeResult[H]{kind: KindError, raw: raw, cause: cause}
}

// Missing reports an absent required value.
func Missing[H any]() DecodeResult[H] {
	return DecodeResult[H]{kind: KindMissing}
}

// MultipleValues reports ambiguous input: more raw values than the target
// type permits.
func MultipleValues[H any](raws []string) DecodeResult[H] {
	return DecodeResult[H]{kind: KindMultiple, raws: raws}
}

// InvalidValue reports a structurally valid value rejected by a validator.
func InvalidValue[H any](violations []validate.Violation) DecodeResult[H] {
	return DecodeResult[H]{kind: KindInvalidValue, violations: violations}
}

// Kind returns the active variant.
func (r DecodeResult[H]) Kind() ResultKind { return r.kind }

// IsValue reports whether the result is a success.
func (r DecodeResult[H]) IsValue() bool { return r.kind == KindValue }

// Value returns the decoded value and whether the result is a success.
func (r DecodeResult[H]) Value() (H, bool) {
	return r.value, r.kind == KindValue
}

// MustValue returns the decoded value, panicking on failure. For tests and
// call sites that have already checked the kind.
func (r DecodeResult[H]) MustValue() H {
	if r.kind != KindValue {
		panic(fmt.Sprintf("wireform: MustValue on %s result", r.kind))
	}
	return r.value
}

// Raw returns the original raw input of an Error result.
func (r DecodeResult[H]) Raw() string { return r.raw }

// Cause returns the underlying error of an Error result.
func (r DecodeResult[H]) Cause() error { return r.cause }

// Multiple returns the ambiguous raw values of a Multiple result.
func (r DecodeResult[H]) Multiple() []string { return r.raws }

// Violations returns the validator output of an InvalidValue result.
func (r DecodeResult[H]) Violations() []validate.Violation { return r.violations }

// Err renders a failed result as an error; it returns nil for Value.
func (r DecodeResult[H]) Err() error {
	switch r.kind {
	case KindValue:
		return nil
	case KindError:
		return &DecodeFailure{Kind: r.kind, Raw: r.raw, Cause: r.cause}
	case KindMissing:
		return &DecodeFailure{Kind: r.kind}
	case KindMultiple:
		return &DecodeFailure{Kind: r.kind, Raws: r.raws}
	default:
		return &DecodeFailure{Kind: r.kind, Violations: r.violations}
	}
}

// DecodeFailure is the error form of a non-Value DecodeResult, for callers
// that want an error value instead of switching on kinds.
type DecodeFailure struct {
	Kind       ResultKind
	Raw        string
	Raws       []string
	Cause      error
	Violations []validate.Violation
}

func (f *DecodeFailure) Error() string {
	switch f.Kind {
	case KindError:
		if f.Cause != nil {
			return fmt.Sprintf("%s: %q: %v", i18n.T("parse_error", nil), f.Raw, f.Cause)
		}
		return fmt.Sprintf("%s: %q", i18n.T("parse_error", nil), f.Raw)
	case KindMissing:
		return i18n.T("required", nil)
	case KindMultiple:
		return fmt.Sprintf("%s: [%s]", i18n.T("ambiguous", nil), strings.Join(f.Raws, ", "))
	default:
		return validate.Violations(f.Violations).Error()
	}
}

// Unwrap exposes the parse cause for errors.Is/As chains.
func (f *DecodeFailure) Unwrap() error { return f.Cause }

// failure re-types a non-Value result, preserving its payload untouched.
// Composed mappings use it to propagate inner failures without
// reinterpretation.
func failure[H, HH any](r DecodeResult[H]) DecodeResult[HH] {
	return DecodeResult[HH]{
		kind:       r.kind,
		raw:        r.raw,
		cause:      r.cause,
		raws:       r.raws,
		violations: r.violations,
	}
}

// MapResult transforms only the Value case; every failure kind passes
// through unchanged.
func MapResult[H, HH any](r DecodeResult[H], f func(H) HH) DecodeResult[HH] {
	if r.kind != KindValue {
		return failure[H, HH](r)
	}
	return Value(f(r.value))
}

// FlatMapResult chains a dependent decode, short-circuiting on the first
// non-Value outcome.
func FlatMapResult[H, HH any](r DecodeResult[H], f func(H) DecodeResult[HH]) DecodeResult[HH] {
	if r.kind != KindValue {
		return failure[H, HH](r)
	}
	return f(r.value)
}

// Sequence collapses a slice of results into a result of a slice. It
// succeeds only when every element is a Value; otherwise it returns the
// first non-Value in slice order. The list, set, vector and multipart
// codecs all rely on this deterministic first-failure rule.
func Sequence[T any](rs []DecodeResult[T]) DecodeResult[[]T] {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.kind != KindValue {
			return failure[T, []T](r)
		}
		out = append(out, r.value)
	}
	return Value(out)
}
