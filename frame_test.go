package wireform_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/codec"
)

func TestTextFrameCodec_RoundTrip(t *testing.T) {
	c := wireform.TextFrameCodec(wireform.Int())
	f := c.Encode(42)
	tf, ok := f.(wireform.TextFrame)
	if !ok || tf.Payload != "42" || !tf.FinalFragment {
		t.Fatalf("unexpected frame: %+v", f)
	}
	if v := c.Decode(f).MustValue(); v != 42 {
		t.Fatalf("frame round trip: got %d", v)
	}
}

// A ping decoded by the text-only codec is a hard Error, never Missing or
// a silent drop.
func TestTextFrameCodec_PingIsError(t *testing.T) {
	c := wireform.TextFrameCodec(wireform.String())
	r := c.Decode(wireform.PingFrame{})
	if r.Kind() != wireform.KindError {
		t.Fatalf("expected error, got %v", r.Kind())
	}
	if !errors.Is(r.Cause(), wireform.ErrUnexpectedFrame) {
		t.Fatalf("unexpected cause: %v", r.Cause())
	}
	if !strings.Contains(r.Raw(), "ping") {
		t.Fatalf("error must carry the frame description: %q", r.Raw())
	}
}

func TestTextFrameCodec_BinaryWhereTextExpected(t *testing.T) {
	c := wireform.TextFrameCodec(wireform.String())
	if r := c.Decode(wireform.BinaryFrame{Payload: []byte{1}}); r.Kind() != wireform.KindError {
		t.Fatalf("binary frame must be a hard error, got %v", r.Kind())
	}
	// Text-only also rejects close; only the -or-close variants accept it.
	if r := c.Decode(wireform.CloseFrame{Code: 1000}); r.Kind() != wireform.KindError {
		t.Fatalf("close frame must be a hard error for text-only, got %v", r.Kind())
	}
}

func TestTextOrCloseFrameCodec(t *testing.T) {
	c := wireform.TextOrCloseFrameCodec(wireform.String())
	v := c.Decode(wireform.CloseFrame{Code: 1000, Reason: "bye"}).MustValue()
	if v.IsSome() {
		t.Fatalf("close must decode to None")
	}
	v = c.Decode(wireform.TextFrame{Payload: "hello"}).MustValue()
	if got, ok := v.Get(); !ok || got != "hello" {
		t.Fatalf("unexpected value: %v", v)
	}
	// None encodes to a close frame, Some to a text frame.
	if _, ok := c.Encode(wireform.None[string]()).(wireform.CloseFrame); !ok {
		t.Fatalf("None must encode to close")
	}
	if _, ok := c.Encode(wireform.Some("x")).(wireform.TextFrame); !ok {
		t.Fatalf("Some must encode to text")
	}
	if r := c.Decode(wireform.PongFrame{}); r.Kind() != wireform.KindError {
		t.Fatalf("pong must be a hard error, got %v", r.Kind())
	}
}

func TestBinaryFrameCodec_DelegatesToByteCodec(t *testing.T) {
	type event struct {
		ID int `json:"id" cbor:"1,keyasint" msgpack:"id"`
	}
	base := codec.CBOR[event]()
	c := wireform.BinaryFrameCodec(base)
	f := c.Encode(event{ID: 9})
	if _, ok := f.(wireform.BinaryFrame); !ok {
		t.Fatalf("expected binary frame, got %T", f)
	}
	if v := c.Decode(f).MustValue(); v.ID != 9 {
		t.Fatalf("binary frame round trip: %+v", v)
	}
	if r := c.Decode(wireform.TextFrame{Payload: "nope"}); r.Kind() != wireform.KindError {
		t.Fatalf("text where binary expected must error, got %v", r.Kind())
	}
}

func TestBinaryOrCloseFrameCodec(t *testing.T) {
	c := wireform.BinaryOrCloseFrameCodec(wireform.ByteArray())
	v := c.Decode(wireform.CloseFrame{Code: 1001}).MustValue()
	if v.IsSome() {
		t.Fatalf("close must decode to None")
	}
	payload := []byte{0xde, 0xad}
	v = c.Decode(wireform.BinaryFrame{Payload: payload}).MustValue()
	if got, ok := v.Get(); !ok || string(got) != string(payload) {
		t.Fatalf("unexpected payload: %v", v)
	}
	cf, ok := c.Encode(wireform.None[[]byte]()).(wireform.CloseFrame)
	if !ok || cf.Code != 1000 {
		t.Fatalf("None must encode to normal closure, got %+v", cf)
	}
}
