package wireform

import (
	"errors"
	"fmt"

	"github.com/wireform/wireform/schema"
)

// ErrUnexpectedFrame reports a frame kind the codec cannot handle (for
// example a Ping where text was expected). It surfaces as a hard Error
// result, never Missing or a silent drop.
var ErrUnexpectedFrame = errors.New("wireform: unexpected frame")

// Frame is one WebSocket message as seen by the codec layer. The set of
// kinds is sealed: text, binary, ping, pong, close.
type Frame interface {
	fmt.Stringer
	isFrame()
}

// TextFrame carries a UTF-8 payload.
type TextFrame struct {
	Payload       string
	FinalFragment bool
}

// BinaryFrame carries raw bytes.
type BinaryFrame struct {
	Payload       []byte
	FinalFragment bool
}

// PingFrame is a keepalive probe.
type PingFrame struct {
	Payload []byte
}

// PongFrame answers a ping.
type PongFrame struct {
	Payload []byte
}

// CloseFrame ends the conversation with a status code and reason.
type CloseFrame struct {
	Code   int
	Reason string
}

func (TextFrame) isFrame()   {}
func (BinaryFrame) isFrame() {}
func (PingFrame) isFrame()   {}
func (PongFrame) isFrame()   {}
func (CloseFrame) isFrame()  {}

func (f TextFrame) String() string   { return fmt.Sprintf("text frame (%d bytes)", len(f.Payload)) }
func (f BinaryFrame) String() string { return fmt.Sprintf("binary frame (%d bytes)", len(f.Payload)) }
func (f PingFrame) String() string   { return "ping frame" }
func (f PongFrame) String() string   { return "pong frame" }
func (f CloseFrame) String() string  { return fmt.Sprintf("close frame (%d %s)", f.Code, f.Reason) }

// closeNormal is the frame encoded for an absent value in the -or-close
// codecs (RFC 6455 normal closure).
var closeNormal = CloseFrame{Code: 1000, Reason: "normal closure"}

// TextFrameCodec projects a string codec onto text frames. Any other frame
// kind is a hard decode Error carrying the frame's description.
func TextFrameCodec[T any](base Codec[string, T]) Codec[Frame, T] {
	m := Mapping[Frame, T]{
		rawDecode: func(f Frame) DecodeResult[T] {
			tf, ok := f.(TextFrame)
			if !ok {
				return DecodeError[T](f.String(), ErrUnexpectedFrame)
			}
			return base.RawDecode(tf.Payload)
		},
		encode: func(t T) Frame {
			return TextFrame{Payload: base.Encode(t), FinalFragment: true}
		},
		validator: base.Validator(),
	}
	return NewCodec(m, base.Format(), base.Schema())
}

// TextOrCloseFrameCodec is TextFrameCodec with close frames decoding to
// None; None encodes to a normal-closure close frame.
func TextOrCloseFrameCodec[T any](base Codec[string, T]) Codec[Frame, Option[T]] {
	m := Mapping[Frame, Option[T]]{
		rawDecode: func(f Frame) DecodeResult[Option[T]] {
			switch fr := f.(type) {
			case TextFrame:
				return MapResult(base.RawDecode(fr.Payload), Some[T])
			case CloseFrame:
				return Value(None[T]())
			default:
				return DecodeError[Option[T]](f.String(), ErrUnexpectedFrame)
			}
		},
		encode: func(o Option[T]) Frame {
			if t, ok := o.Get(); ok {
				return TextFrame{Payload: base.Encode(t), FinalFragment: true}
			}
			return closeNormal
		},
		validator: optionValidator(base.Validator()),
	}
	return NewCodec(m, base.Format(), schema.Optional(base.Schema()))
}

// BinaryFrameCodec projects a byte-slice codec onto binary frames.
func BinaryFrameCodec[T any](base Codec[[]byte, T]) Codec[Frame, T] {
	m := Mapping[Frame, T]{
		rawDecode: func(f Frame) DecodeResult[T] {
			bf, ok := f.(BinaryFrame)
			if !ok {
				return DecodeError[T](f.String(), ErrUnexpectedFrame)
			}
			return base.RawDecode(bf.Payload)
		},
		encode: func(t T) Frame {
			return BinaryFrame{Payload: base.Encode(t), FinalFragment: true}
		},
		validator: base.Validator(),
	}
	return NewCodec(m, base.Format(), base.Schema())
}

// BinaryOrCloseFrameCodec is BinaryFrameCodec with close frames decoding
// to None; None encodes to a normal-closure close frame.
func BinaryOrCloseFrameCodec[T any](base Codec[[]byte, T]) Codec[Frame, Option[T]] {
	m := Mapping[Frame, Option[T]]{
		rawDecode: func(f Frame) DecodeResult[Option[T]] {
			switch fr := f.(type) {
			case BinaryFrame:
				return MapResult(base.RawDecode(fr.Payload), Some[T])
			case CloseFrame:
				return Value(None[T]())
			default:
				return DecodeError[Option[T]](f.String(), ErrUnexpectedFrame)
			}
		},
		encode: func(o Option[T]) Frame {
			if t, ok := o.Get(); ok {
				return BinaryFrame{Payload: base.Encode(t), FinalFragment: true}
			}
			return closeNormal
		},
		validator: optionValidator(base.Validator()),
	}
	return NewCodec(m, base.Format(), schema.Optional(base.Schema()))
}
