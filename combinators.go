package wireform

import (
	"fmt"

	"github.com/wireform/wireform/schema"
	"github.com/wireform/wireform/validate"
)

// Structural combinators derive related codecs from a base codec by
// construction rule. Schema and validator are always carried through the
// matching structural projection, never re-specified ad hoc.

// arrayOf projects a base schema into an array schema, preserving absence.
func arrayOf(s *schema.Schema, unique bool) *schema.Schema {
	if s == nil {
		return nil
	}
	if unique {
		return schema.UniqueArray(s)
	}
	return schema.Array(s)
}

// ListCodec decodes each element of the low-level list with the base codec
// and sequences the results (first failure wins, in element order). Encode
// maps the base encode over the list.
func ListCodec[T, U any](base Codec[T, U]) Codec[[]T, []U] {
	m := Mapping[[]T, []U]{
		rawDecode: func(ls []T) DecodeResult[[]U] {
			rs := make([]DecodeResult[U], len(ls))
			for i, l := range ls {
				rs[i] = base.RawDecode(l)
			}
			return Sequence(rs)
		},
		encode: func(us []U) []T {
			ls := make([]T, len(us))
			for i, u := range us {
				ls[i] = base.Encode(u)
			}
			return ls
		},
		validator: validate.Each(base.Validator()),
	}
	return NewCodec(m, base.Format(), arrayOf(base.Schema(), false))
}

// SetCodec decodes as a list and collapses duplicate high-level values
// into a set; duplicates are not an error. Encode order over the set is
// unspecified.
func SetCodec[T any, U comparable](base Codec[T, U]) Codec[[]T, Set[U]] {
	list := ListCodec(base)
	m := Mapping[[]T, Set[U]]{
		rawDecode: func(ls []T) DecodeResult[Set[U]] {
			return MapResult(list.RawDecode(ls), func(us []U) Set[U] { return NewSet(us...) })
		},
		encode: func(s Set[U]) []T {
			us := make([]U, 0, len(s))
			for u := range s {
				us = append(us, u)
			}
			return list.Encode(us)
		},
		validator: setValidator(base.Validator()),
	}
	return NewCodec(m, base.Format(), arrayOf(base.Schema(), true))
}

// VectorCodec is the ordered-sequence form of ListCodec.
func VectorCodec[T, U any](base Codec[T, U]) Codec[[]T, Vector[U]] {
	list := ListCodec(base)
	return MapCodec(list,
		func(us []U) Vector[U] { return Vector[U](us) },
		func(v Vector[U]) []U { return []U(v) },
	)
}

// ListHead extracts exactly one value from a low-level list: Missing when
// empty, Multiple when more than one element is present. Encode wraps the
// value in a one-element list.
func ListHead[T, U any](base Codec[T, U]) Codec[[]T, U] {
	m := Mapping[[]T, U]{
		rawDecode: func(ls []T) DecodeResult[U] {
			switch len(ls) {
			case 0:
				return Missing[U]()
			case 1:
				return base.RawDecode(ls[0])
			default:
				return MultipleValues[U](rawStrings(ls))
			}
		},
		encode: func(u U) []T {
			return []T{base.Encode(u)}
		},
		validator: base.Validator(),
	}
	return NewCodec(m, base.Format(), base.Schema())
}

// ListHeadOption extracts at most one value: None when the list is empty,
// Multiple when more than one element is present. None encodes to an empty
// list.
func ListHeadOption[T, U any](base Codec[T, U]) Codec[[]T, Option[U]] {
	m := Mapping[[]T, Option[U]]{
		rawDecode: func(ls []T) DecodeResult[Option[U]] {
			switch len(ls) {
			case 0:
				return Value(None[U]())
			case 1:
				return MapResult(base.RawDecode(ls[0]), Some[U])
			default:
				return MultipleValues[Option[U]](rawStrings(ls))
			}
		},
		encode: func(o Option[U]) []T {
			if u, ok := o.Get(); ok {
				return []T{base.Encode(u)}
			}
			return nil
		},
		validator: optionValidator(base.Validator()),
	}
	return NewCodec(m, base.Format(), schema.Optional(base.Schema()))
}

// OptionHead requires a present optional: None decodes to Missing.
func OptionHead[T, U any](base Codec[T, U]) Codec[Option[T], U] {
	m := Mapping[Option[T], U]{
		rawDecode: func(o Option[T]) DecodeResult[U] {
			t, ok := o.Get()
			if !ok {
				return Missing[U]()
			}
			return base.RawDecode(t)
		},
		encode: func(u U) Option[T] {
			return Some(base.Encode(u))
		},
		validator: base.Validator(),
	}
	return NewCodec(m, base.Format(), base.Schema())
}

// OptionCodec maps absence to absence and delegates present values to the
// base codec.
func OptionCodec[T, U any](base Codec[T, U]) Codec[Option[T], Option[U]] {
	m := Mapping[Option[T], Option[U]]{
		rawDecode: func(o Option[T]) DecodeResult[Option[U]] {
			t, ok := o.Get()
			if !ok {
				return Value(None[U]())
			}
			return MapResult(base.RawDecode(t), Some[U])
		},
		encode: func(o Option[U]) Option[T] {
			if u, ok := o.Get(); ok {
				return Some(base.Encode(u))
			}
			return None[T]()
		},
		validator: optionValidator(base.Validator()),
	}
	return NewCodec(m, base.Format(), schema.Optional(base.Schema()))
}

// rawStrings renders ambiguous raw values for a Multiple result.
func rawStrings[T any](ls []T) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = fmt.Sprint(l)
	}
	return out
}
