// Package codec provides payload codec instantiations over concrete
// serializers: JSON, YAML, CBOR, MessagePack and XML. Each constructor is
// a thin wrapper that turns a serializer's Marshal/Unmarshal pair into a
// wireform.Codec with the matching format tag.
//
// Decode failures surface as Error results carrying the raw input and the
// serializer's error as cause. Encode follows the core's totality rule:
// marshaling a valid value of T must not fail; a T that cannot be
// marshaled at all (e.g. containing channels) is a programming error and
// panics.
package codec

import (
	"fmt"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/schema"
)

// stringPayload adapts a Marshal/Unmarshal pair over string payloads.
func stringPayload[T any](
	format wireform.Format,
	marshal func(any) ([]byte, error),
	unmarshal func([]byte, any) error,
	s *schema.Schema,
) wireform.Codec[string, T] {
	m := wireform.NewMapping(
		func(raw string) wireform.DecodeResult[T] {
			var v T
			if err := unmarshal([]byte(raw), &v); err != nil {
				return wireform.DecodeError[T](raw, err)
			}
			return wireform.Value(v)
		},
		func(v T) string {
			b, err := marshal(v)
			if err != nil {
				panic(fmt.Sprintf("codec: marshal %T: %v", v, err))
			}
			return string(b)
		},
	)
	return wireform.NewCodec(m, format, s)
}

// bytePayload adapts a Marshal/Unmarshal pair over binary payloads.
func bytePayload[T any](
	format wireform.Format,
	marshal func(any) ([]byte, error),
	unmarshal func([]byte, any) error,
	s *schema.Schema,
) wireform.Codec[[]byte, T] {
	m := wireform.NewMapping(
		func(raw []byte) wireform.DecodeResult[T] {
			var v T
			if err := unmarshal(raw, &v); err != nil {
				return wireform.DecodeError[T](fmt.Sprintf("%x", raw), err)
			}
			return wireform.Value(v)
		},
		func(v T) []byte {
			b, err := marshal(v)
			if err != nil {
				panic(fmt.Sprintf("codec: marshal %T: %v", v, err))
			}
			return b
		},
	)
	return wireform.NewCodec(m, format, s)
}
