package wireform

import (
	"github.com/wireform/wireform/schema"
	"github.com/wireform/wireform/validate"
)

// Codec is the primary public abstraction: a Mapping between a low-level
// wire representation L and a high-level value H, augmented with an
// optional schema describing H and a format tag. Codecs are immutable and
// safe for concurrent use; the With* methods return copies.
//
// Invariant: when the schema is non-nil it describes exactly H: every
// combinator that changes H transforms the schema in lockstep.
type Codec[L, H any] struct {
	mapping Mapping[L, H]
	schema  *schema.Schema
	format  Format
}

// NewCodec assembles a Codec from its parts. s may be nil (no schema).
func NewCodec[L, H any](m Mapping[L, H], f Format, s *schema.Schema) Codec[L, H] {
	return Codec[L, H]{mapping: m, schema: s, format: f}
}

// Decode runs the raw transform and then the attached validator.
func (c Codec[L, H]) Decode(l L) DecodeResult[H] { return c.mapping.Decode(l) }

// RawDecode runs the transform without validation.
func (c Codec[L, H]) RawDecode(l L) DecodeResult[H] { return c.mapping.RawDecode(l) }

// Encode is total over valid H.
func (c Codec[L, H]) Encode(h H) L { return c.mapping.Encode(h) }

// Mapping returns the underlying transform pair.
func (c Codec[L, H]) Mapping() Mapping[L, H] { return c.mapping }

// Schema returns the structural descriptor of H, or nil when absent.
func (c Codec[L, H]) Schema() *schema.Schema { return c.schema }

// Format returns the codec's media-type tag.
func (c Codec[L, H]) Format() Format { return c.format }

// Validator returns the attached validator (nil means accept-all).
func (c Codec[L, H]) Validator() validate.Validator[H] { return c.mapping.Validator() }

// WithSchema replaces the schema. The caller owns the lockstep invariant:
// s must describe H.
func (c Codec[L, H]) WithSchema(s *schema.Schema) Codec[L, H] {
	c.schema = s
	return c
}

// WithFormat retags the codec. Value mapping never changes the format;
// this is the only way to do so.
func (c Codec[L, H]) WithFormat(f Format) Codec[L, H] {
	c.format = f
	return c
}

// Validate returns a copy with v ANDed onto the existing validator.
func (c Codec[L, H]) Validate(v validate.Validator[H]) Codec[L, H] {
	c.mapping = c.mapping.Validate(v)
	return c
}

// MapCodec applies a total transform pair on the high-level side,
// producing a Codec[L, HH]. Schema and format are carried through
// unchanged: the wire representation is structurally identical, only the
// in-memory type differs.
func MapCodec[L, H, HH any](c Codec[L, H], f func(H) HH, g func(HH) H) Codec[L, HH] {
	return Codec[L, HH]{
		mapping: MapMapping(c.mapping, f, g),
		schema:  c.schema,
		format:  c.format,
	}
}

// MapDecodeCodec applies a partial transform on the high-level side. The
// composed decode short-circuits on non-Value outcomes without
// reclassifying them.
func MapDecodeCodec[L, H, HH any](c Codec[L, H], f func(H) DecodeResult[HH], g func(HH) H) Codec[L, HH] {
	return Codec[L, HH]{
		mapping: MapDecodeMapping(c.mapping, f, g),
		schema:  c.schema,
		format:  c.format,
	}
}
