package wireform

import (
	"errors"
	"fmt"

	"github.com/wireform/wireform/schema"
)

// ErrRawBodyMismatch reports a raw part body whose Go type does not match
// the RawBodyType the part codec was configured with.
var ErrRawBodyMismatch = errors.New("wireform: raw part body type mismatch")

// PartCodec pairs the raw body type of a multipart segment with a
// type-erased codec over the raw parts sharing one name. Build one with
// NewPartCodec.
type PartCodec struct {
	raw    RawBodyType
	format Format
	schema *schema.Schema
	decode func([]any) DecodeResult[any]
	encode func(any) []any
}

// RawBodyType returns how the transport should materialize this part's
// bodies.
func (pc PartCodec) RawBodyType() RawBodyType { return pc.raw }

// NewPartCodec erases a Codec[[]R, T] into a PartCodec. The codec receives
// every raw body sharing the part name (zero, one or many; repeated-field
// support) and produces the part's typed value; encode may legitimately
// yield zero, one or many raw bodies.
func NewPartCodec[R, T any](raw RawBodyType, c Codec[[]R, T]) PartCodec {
	return PartCodec{
		raw:    raw,
		format: c.Format(),
		schema: c.Schema(),
		decode: func(bodies []any) DecodeResult[any] {
			rs := make([]R, len(bodies))
			for i, b := range bodies {
				r, ok := b.(R)
				if !ok {
					return DecodeError[any](fmt.Sprint(b), ErrRawBodyMismatch)
				}
				rs[i] = r
			}
			return MapResult(c.Decode(rs), func(t T) any { return t })
		},
		encode: func(v any) []any {
			rs := c.Encode(v.(T))
			out := make([]any, len(rs))
			for i, r := range rs {
				out[i] = r
			}
			return out
		},
	}
}

// SinglePartCodec is the common case of a part carrying exactly one value:
// it wraps the base codec in ListHead before erasing.
func SinglePartCodec[R, T any](raw RawBodyType, base Codec[R, T]) PartCodec {
	return NewPartCodec(raw, ListHead(base))
}

// MultipartBuilder assembles a MultipartCodec. Part configuration order is
// remembered: it is the decode attempt order, which makes the
// first-failure tie-break deterministic.
type MultipartBuilder struct {
	names []string
	parts map[string]PartCodec
	def   *PartCodec
}

// NewMultipart starts an empty multipart configuration.
func NewMultipart() *MultipartBuilder {
	return &MultipartBuilder{parts: map[string]PartCodec{}}
}

// Part registers the codec for a named part. Registering a name twice
// replaces the codec but keeps the original position.
func (b *MultipartBuilder) Part(name string, pc PartCodec) *MultipartBuilder {
	if _, ok := b.parts[name]; !ok {
		b.names = append(b.names, name)
	}
	b.parts[name] = pc
	return b
}

// Default registers the codec applied to part names that are not
// explicitly configured. Without a default, unconfigured incoming parts
// are silently dropped.
func (b *MultipartBuilder) Default(pc PartCodec) *MultipartBuilder {
	b.def = &pc
	return b
}

// Codec finalizes the configuration.
func (b *MultipartBuilder) Codec() MultipartCodec {
	names := append([]string(nil), b.names...)
	parts := make(map[string]PartCodec, len(b.parts))
	for k, v := range b.parts {
		parts[k] = v
	}
	def := b.def

	rawDecode := func(raws []RawPart) DecodeResult[[]Part[any]] {
		grouped := map[string][]RawPart{}
		var inputOrder []string
		for _, p := range raws {
			if _, seen := grouped[p.Name]; !seen {
				inputOrder = append(inputOrder, p.Name)
			}
			grouped[p.Name] = append(grouped[p.Name], p)
		}

		// Attempt order: configured names first, then unconfigured input
		// names (only when a default codec exists).
		attempt := append([]string(nil), names...)
		if def != nil {
			for _, n := range inputOrder {
				if _, ok := parts[n]; !ok {
					attempt = append(attempt, n)
				}
			}
		}

		results := make([]DecodeResult[Part[any]], 0, len(attempt))
		for _, name := range attempt {
			pc, ok := parts[name]
			if !ok {
				pc = *def
			}
			group := grouped[name]
			bodies := make([]any, len(group))
			for i, p := range group {
				bodies[i] = p.Body
			}
			decoded := MapResult(pc.decode(bodies), func(v any) Part[any] {
				if len(group) > 0 {
					p := group[0]
					p.Body = v
					return p
				}
				// No raw part carried this name; synthesize a bare one
				// (default codecs may decode zero raw parts into an empty
				// collection).
				return NewPart[any](name, v)
			})
			results = append(results, decoded)
		}
		return Sequence(results)
	}

	encode := func(typed []Part[any]) []RawPart {
		var out []RawPart
		for _, p := range typed {
			pc, ok := parts[p.Name]
			if !ok {
				if def == nil {
					continue
				}
				pc = *def
			}
			for _, body := range pc.encode(p.Body) {
				rp := p
				rp.Body = body
				if rp.ContentType == "" {
					rp.ContentType = pc.format.MediaType()
				}
				out = append(out, rp)
			}
		}
		return out
	}

	partTypes := make(map[string]RawBodyType, len(parts))
	props := make(map[string]*schema.Schema)
	for name, pc := range parts {
		partTypes[name] = pc.raw
		if pc.schema != nil {
			props[name] = pc.schema
		}
	}
	rawBody := MultipartBody{PartTypes: partTypes}
	if def != nil {
		rawBody.DefaultType = def.raw
	}
	var s *schema.Schema
	if len(props) > 0 {
		s = &schema.Schema{Type: schema.TypeObject, Properties: props}
	}

	return MultipartCodec{
		Codec:   NewCodec(NewMapping(rawDecode, encode), FormatMultipartFormData, s),
		rawBody: rawBody,
	}
}

// MultipartCodec converts between a sequence of named raw parts and the
// sequence of typed value-parts, per the configured per-name codecs.
type MultipartCodec struct {
	Codec[[]RawPart, []Part[any]]
	rawBody MultipartBody
}

// RawBodyType describes the per-part materialization the transport must
// perform before decode.
func (mc MultipartCodec) RawBodyType() MultipartBody { return mc.rawBody }
