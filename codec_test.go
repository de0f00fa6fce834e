package wireform_test

import (
	"testing"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/schema"
	"github.com/wireform/wireform/validate"
)

func TestCodec_MetadataAccessors(t *testing.T) {
	c := wireform.Int()
	if c.Format() != wireform.FormatTextPlain {
		t.Fatalf("unexpected format: %v", c.Format())
	}
	s := c.Schema()
	if s == nil || s.Type != schema.TypeInteger {
		t.Fatalf("unexpected schema: %+v", s)
	}
	if c.Validator() != nil {
		t.Fatalf("builtin codec must start with no validator")
	}
}

func TestCodec_WithFormatRetagsOnly(t *testing.T) {
	c := wireform.String().WithFormat(wireform.FormatTextHTML)
	if c.Format() != wireform.FormatTextHTML {
		t.Fatalf("retag failed: %v", c.Format())
	}
	if v := c.Decode("<p>").MustValue(); v != "<p>" {
		t.Fatalf("retag must not change decode")
	}
}

type port int

func TestMapCodec_CarriesSchemaAndFormat(t *testing.T) {
	base := wireform.Int()
	ports := wireform.MapCodec(base,
		func(n int) port { return port(n) },
		func(p port) int { return int(p) },
	)
	if ports.Schema() != base.Schema() {
		t.Fatalf("structurally unchanged mapping must carry the schema")
	}
	if ports.Format() != base.Format() {
		t.Fatalf("value mapping must not change the format")
	}
	if v := ports.Decode("8080").MustValue(); v != port(8080) {
		t.Fatalf("expected port 8080, got %v", v)
	}
	if raw := ports.Encode(port(443)); raw != "443" {
		t.Fatalf("expected \"443\", got %q", raw)
	}
}

func TestMapDecodeCodec_SecondStageFailure(t *testing.T) {
	weekday := wireform.MapDecodeCodec(wireform.Int(),
		func(n int) wireform.DecodeResult[int] {
			if n < 0 || n > 6 {
				return wireform.InvalidValue[int]([]validate.Violation{{
					Code: validate.CodeTooBig, Message: "out of range", Value: n,
				}})
			}
			return wireform.Value(n)
		},
		func(n int) int { return n },
	)
	if r := weekday.Decode("9"); r.Kind() != wireform.KindInvalidValue {
		t.Fatalf("expected invalid value, got %v", r.Kind())
	}
	if r := weekday.Decode("x"); r.Kind() != wireform.KindError {
		t.Fatalf("first-stage failure must win, got %v", r.Kind())
	}
}

func TestCodec_ValidateAnds(t *testing.T) {
	c := wireform.Int().Validate(validate.Min(0, false)).Validate(validate.Max(100, false))
	if r := c.Decode("101"); r.Kind() != wireform.KindInvalidValue {
		t.Fatalf("expected invalid value, got %v", r.Kind())
	}
	if r := c.Decode("-1"); r.Kind() != wireform.KindInvalidValue {
		t.Fatalf("expected invalid value, got %v", r.Kind())
	}
	if v := c.Decode("50").MustValue(); v != 50 {
		t.Fatalf("expected 50")
	}
}

func TestCodec_WithSchema(t *testing.T) {
	custom := schema.StringFormat("hostname")
	c := wireform.String().WithSchema(custom)
	if c.Schema() != custom {
		t.Fatalf("WithSchema must replace the descriptor")
	}
}

func TestFormat_MediaTypes(t *testing.T) {
	cases := map[wireform.Format]string{
		wireform.FormatTextPlain:          "text/plain; charset=utf-8",
		wireform.FormatJSON:               "application/json",
		wireform.FormatXML:                "application/xml",
		wireform.FormatOctetStream:        "application/octet-stream",
		wireform.FormatXWwwFormURLEncoded: "application/x-www-form-urlencoded",
		wireform.FormatMultipartFormData:  "multipart/form-data",
		wireform.FormatCBOR:               "application/cbor",
		wireform.FormatMsgpack:            "application/msgpack",
		wireform.FormatYAML:               "application/yaml",
	}
	for f, want := range cases {
		if got := f.MediaType(); got != want {
			t.Fatalf("format %d: got %q want %q", int(f), got, want)
		}
	}
}
