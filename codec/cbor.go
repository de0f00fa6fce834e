package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/schema"
)

// CBOR converts between CBOR bytes and T.
func CBOR[T any]() wireform.Codec[[]byte, T] {
	return CBORWithSchema[T](nil)
}

// CBORWithSchema is CBOR with a caller-supplied descriptor of T.
func CBORWithSchema[T any](s *schema.Schema) wireform.Codec[[]byte, T] {
	return bytePayload[T](wireform.FormatCBOR, cbor.Marshal, cbor.Unmarshal, s)
}
