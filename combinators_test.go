package wireform_test

import (
	"testing"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/schema"
	"github.com/wireform/wireform/validate"
)

func TestListCodec_DecodeAll(t *testing.T) {
	c := wireform.ListCodec(wireform.Int())
	got := c.Decode([]string{"1", "2", "3"}).MustValue()
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("unexpected list: %v", got)
	}
	if raw := c.Encode([]int{4, 5}); len(raw) != 2 || raw[0] != "4" || raw[1] != "5" {
		t.Fatalf("unexpected encoding: %v", raw)
	}
}

// A bad element fails the whole list: no partial results.
func TestListCodec_FirstBadElementWins(t *testing.T) {
	c := wireform.ListCodec(wireform.Int())
	r := c.Decode([]string{"1", "x", "y"})
	if r.Kind() != wireform.KindError {
		t.Fatalf("expected error, got %v", r.Kind())
	}
	if r.Raw() != "x" {
		t.Fatalf("first failure must win, got raw %q", r.Raw())
	}
}

func TestListCodec_SchemaAndValidatorLockstep(t *testing.T) {
	base := wireform.Int().Validate(validate.Min(0, false))
	c := wireform.ListCodec(base)
	s := c.Schema()
	if s == nil || s.Type != schema.TypeArray || s.Items == nil || s.Items.Type != schema.TypeInteger {
		t.Fatalf("list schema must be array-of-base: %+v", s)
	}
	if r := c.Decode([]string{"1", "-2"}); r.Kind() != wireform.KindInvalidValue {
		t.Fatalf("element validator must apply, got %v", r.Kind())
	}
}

func TestSetCodec_CollapsesDuplicates(t *testing.T) {
	c := wireform.SetCodec(wireform.Int())
	got := c.Decode([]string{"1", "2", "1"}).MustValue()
	if len(got) != 2 || !got.Contains(1) || !got.Contains(2) {
		t.Fatalf("unexpected set: %v", got)
	}
	if s := c.Schema(); s == nil || !s.UniqueItems {
		t.Fatalf("set schema must be a unique array: %+v", s)
	}
	// Encode reproduces every member (order unspecified).
	raw := c.Encode(wireform.NewSet(7))
	if len(raw) != 1 || raw[0] != "7" {
		t.Fatalf("unexpected set encoding: %v", raw)
	}
}

func TestVectorCodec_KeepsOrder(t *testing.T) {
	c := wireform.VectorCodec(wireform.Int())
	got := c.Decode([]string{"3", "1", "2"}).MustValue()
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("vector order broken: %v", got)
	}
}

func TestListHead(t *testing.T) {
	c := wireform.ListHead(wireform.String())
	if r := c.Decode(nil); r.Kind() != wireform.KindMissing {
		t.Fatalf("empty list must be missing, got %v", r.Kind())
	}
	if v := c.Decode([]string{"a"}).MustValue(); v != "a" {
		t.Fatalf("expected \"a\", got %q", v)
	}
	r := c.Decode([]string{"a", "b"})
	if r.Kind() != wireform.KindMultiple {
		t.Fatalf("two elements must be multiple, got %v", r.Kind())
	}
	if got := r.Multiple(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("multiple payload must carry the raws: %v", got)
	}
	if raw := c.Encode("z"); len(raw) != 1 || raw[0] != "z" {
		t.Fatalf("head encode must wrap in one-element list: %v", raw)
	}
}

func TestListHeadOption(t *testing.T) {
	c := wireform.ListHeadOption(wireform.String())
	if v := c.Decode(nil).MustValue(); v.IsSome() {
		t.Fatalf("empty list must decode to None")
	}
	v := c.Decode([]string{"a"}).MustValue()
	if got, ok := v.Get(); !ok || got != "a" {
		t.Fatalf("expected Some(a), got %v", v)
	}
	if r := c.Decode([]string{"a", "b"}); r.Kind() != wireform.KindMultiple {
		t.Fatalf("two elements must be multiple, got %v", r.Kind())
	}
	if raw := c.Encode(wireform.None[string]()); len(raw) != 0 {
		t.Fatalf("None must encode to empty list: %v", raw)
	}
	if raw := c.Encode(wireform.Some("x")); len(raw) != 1 || raw[0] != "x" {
		t.Fatalf("Some must encode to one-element list: %v", raw)
	}
}

func TestOptionHead(t *testing.T) {
	c := wireform.OptionHead(wireform.Int())
	if r := c.Decode(wireform.None[string]()); r.Kind() != wireform.KindMissing {
		t.Fatalf("None must be missing, got %v", r.Kind())
	}
	if v := c.Decode(wireform.Some("5")).MustValue(); v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}
	if raw := c.Encode(9); !raw.IsSome() {
		t.Fatalf("encode must wrap in Some")
	}
}

func TestOptionCodec(t *testing.T) {
	c := wireform.OptionCodec(wireform.Int())
	if v := c.Decode(wireform.None[string]()).MustValue(); v.IsSome() {
		t.Fatalf("None must decode to Value(None)")
	}
	v := c.Decode(wireform.Some("5")).MustValue()
	if got, ok := v.Get(); !ok || got != 5 {
		t.Fatalf("expected Some(5), got %v", v)
	}
	if r := c.Decode(wireform.Some("x")); r.Kind() != wireform.KindError {
		t.Fatalf("bad inner value must error, got %v", r.Kind())
	}
	if raw := c.Encode(wireform.None[int]()); raw.IsSome() {
		t.Fatalf("None must encode to None")
	}
	if raw := c.Encode(wireform.Some(3)); raw.OrElse("") != "3" {
		t.Fatalf("Some must encode through the base codec: %v", raw)
	}
	if s := c.Schema(); s == nil || !s.Nullable {
		t.Fatalf("option schema must be optional-of-base: %+v", s)
	}
}

func TestOptionCodec_ValidatorAppliesWhenPresent(t *testing.T) {
	base := wireform.Int().Validate(validate.Min(0, false))
	c := wireform.OptionCodec(base)
	if r := c.Decode(wireform.Some("-1")); r.Kind() != wireform.KindInvalidValue {
		t.Fatalf("present value must be validated, got %v", r.Kind())
	}
	if r := c.Decode(wireform.None[string]()); !r.IsValue() {
		t.Fatalf("absent value must always pass validation, got %v", r.Kind())
	}
}
