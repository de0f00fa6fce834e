package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/schema"
)

// Msgpack converts between MessagePack bytes and T.
func Msgpack[T any]() wireform.Codec[[]byte, T] {
	return MsgpackWithSchema[T](nil)
}

// MsgpackWithSchema is Msgpack with a caller-supplied descriptor of T.
func MsgpackWithSchema[T any](s *schema.Schema) wireform.Codec[[]byte, T] {
	return bytePayload[T](wireform.FormatMsgpack, msgpack.Marshal, msgpack.Unmarshal, s)
}
