package wireform

import "github.com/wireform/wireform/validate"

// Mapping is the base bidirectional transform between a low-level wire
// representation L and a high-level value H. RawDecode may fail via
// DecodeResult; Encode is total over valid H. Mappings are pure and
// immutable: composition produces new values, construction happens once.
type Mapping[L, H any] struct {
	rawDecode func(L) DecodeResult[H]
	encode    func(H) L
	validator validate.Validator[H]
}

// NewMapping builds a Mapping from a decode/encode pair with no validator.
func NewMapping[L, H any](decode func(L) DecodeResult[H], encode func(H) L) Mapping[L, H] {
	return Mapping[L, H]{rawDecode: decode, encode: encode}
}

// IdentityMapping maps a type onto itself.
func IdentityMapping[T any]() Mapping[T, T] {
	return NewMapping(
		func(t T) DecodeResult[T] { return Value(t) },
		func(t T) T { return t },
	)
}

// RawDecode runs the transform without validation.
func (m Mapping[L, H]) RawDecode(l L) DecodeResult[H] { return m.rawDecode(l) }

// Decode runs RawDecode and then the attached validator; a structurally
// valid value that fails validation yields InvalidValue.
func (m Mapping[L, H]) Decode(l L) DecodeResult[H] {
	r := m.rawDecode(l)
	if r.kind != KindValue {
		return r
	}
	if vs := validate.Apply(m.validator, r.value); len(vs) > 0 {
		return InvalidValue[H](vs)
	}
	return r
}

// Encode runs the inverse transform. It is total: encoding a valid H never
// fails.
func (m Mapping[L, H]) Encode(h H) L { return m.encode(h) }

// Validator returns the attached validator (nil means accept-all).
func (m Mapping[L, H]) Validator() validate.Validator[H] { return m.validator }

// Validate returns a copy with v ANDed onto the existing validator.
func (m Mapping[L, H]) Validate(v validate.Validator[H]) Mapping[L, H] {
	m.validator = m.validator.And(v)
	return m
}

// MapMapping composes a total transform pair onto a Mapping: decode runs f
// after the base decode, encode runs g before the base encode. The base
// validator follows along contravariantly (checking HH by mapping back to
// H through g).
func MapMapping[L, H, HH any](m Mapping[L, H], f func(H) HH, g func(HH) H) Mapping[L, HH] {
	return MapDecodeMapping(m, func(h H) DecodeResult[HH] { return Value(f(h)) }, g)
}

// MapDecodeMapping composes a partial transform onto a Mapping. The
// composed decode short-circuits on any non-Value outcome, propagating the
// inner failure untouched; a composed mapping never reinterprets the
// failure kind it wraps.
func MapDecodeMapping[L, H, HH any](m Mapping[L, H], f func(H) DecodeResult[HH], g func(HH) H) Mapping[L, HH] {
	return Mapping[L, HH]{
		rawDecode: func(l L) DecodeResult[HH] {
			return FlatMapResult(m.rawDecode(l), f)
		},
		encode: func(hh HH) L {
			return m.encode(g(hh))
		},
		validator: validate.Contramap(m.validator, g),
	}
}
