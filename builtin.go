package wireform

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/wireform/wireform/schema"
)

// Built-in plain-text codecs. Each is a thin instantiation of the core:
// a strconv-grade parse/format pair, a text/plain format tag and the
// matching schema descriptor. Textual forms are locale-independent and
// round-trippable.

// ParsedCodec builds a Codec[string, T] from a parse/format pair. Parse
// failures become Error results carrying the raw input.
func ParsedCodec[T any](parse func(string) (T, error), format func(T) string, s *schema.Schema) Codec[string, T] {
	m := NewMapping(
		func(raw string) DecodeResult[T] {
			v, err := parse(raw)
			if err != nil {
				return DecodeError[T](raw, err)
			}
			return Value(v)
		},
		format,
	)
	return NewCodec(m, FormatTextPlain, s)
}

// String is the identity string codec.
func String() Codec[string, string] {
	return NewCodec(IdentityMapping[string](), FormatTextPlain, schema.String())
}

// ByteArray is the identity byte-slice codec, tagged as an octet stream.
func ByteArray() Codec[[]byte, []byte] {
	return NewCodec(IdentityMapping[[]byte](), FormatOctetStream, schema.Binary())
}

// Bool accepts strconv boolean forms and encodes canonically to
// "true"/"false".
func Bool() Codec[string, bool] {
	return ParsedCodec(strconv.ParseBool, strconv.FormatBool, schema.Boolean())
}

func intCodec[T int | int8 | int16 | int32 | int64](bits int, format string) Codec[string, T] {
	return ParsedCodec(
		func(raw string) (T, error) {
			n, err := strconv.ParseInt(raw, 10, bits)
			return T(n), err
		},
		func(v T) string { return strconv.FormatInt(int64(v), 10) },
		schema.Integer(format),
	)
}

func uintCodec[T uint | uint8 | uint16 | uint32 | uint64](bits int, format string) Codec[string, T] {
	return ParsedCodec(
		func(raw string) (T, error) {
			n, err := strconv.ParseUint(raw, 10, bits)
			return T(n), err
		},
		func(v T) string { return strconv.FormatUint(uint64(v), 10) },
		schema.Integer(format),
	)
}

// Int decodes decimal integers sized for the platform int.
func Int() Codec[string, int] { return intCodec[int](strconv.IntSize, "int64") }

func Int8() Codec[string, int8]   { return intCodec[int8](8, "int32") }
func Int16() Codec[string, int16] { return intCodec[int16](16, "int32") }
func Int32() Codec[string, int32] { return intCodec[int32](32, "int32") }
func Int64() Codec[string, int64] { return intCodec[int64](64, "int64") }

// Uint decodes decimal unsigned integers sized for the platform uint.
func Uint() Codec[string, uint] { return uintCodec[uint](strconv.IntSize, "int64") }

func Uint8() Codec[string, uint8]   { return uintCodec[uint8](8, "int32") }
func Uint16() Codec[string, uint16] { return uintCodec[uint16](16, "int32") }
func Uint32() Codec[string, uint32] { return uintCodec[uint32](32, "int64") }
func Uint64() Codec[string, uint64] { return uintCodec[uint64](64, "int64") }

// Float32 uses the shortest round-trippable decimal form on encode.
func Float32() Codec[string, float32] {
	return ParsedCodec(
		func(raw string) (float32, error) {
			f, err := strconv.ParseFloat(raw, 32)
			return float32(f), err
		},
		func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) },
		schema.Number("float"),
	)
}

// Float64 uses the shortest round-trippable decimal form on encode.
func Float64() Codec[string, float64] {
	return ParsedCodec(
		func(raw string) (float64, error) {
			return strconv.ParseFloat(raw, 64)
		},
		func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
		schema.Number("double"),
	)
}

// UUID decodes RFC 4122 textual UUIDs and encodes the canonical lowercase
// form.
func UUID() Codec[string, uuid.UUID] {
	return ParsedCodec(uuid.Parse, uuid.UUID.String, schema.StringFormat("uuid"))
}
