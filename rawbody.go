package wireform

import "net/textproto"

// RawBodyType tells the transport collaborator how to materialize a body
// before the codec sees it. It is a sealed set: the variants below are the
// only implementations. The core never owns the resulting buffers, streams
// or files; lifecycle and release belong to the transport layer.
type RawBodyType interface {
	rawBodyType()
}

// StringBody materializes the body as a string in the given charset
// (e.g. "utf-8").
type StringBody struct {
	Charset string
}

// ByteArrayBody materializes the body as a byte slice.
type ByteArrayBody struct{}

// ByteBufferBody materializes the body as a reusable buffer owned by the
// transport.
type ByteBufferBody struct{}

// ReaderBody hands the codec a borrowed stream; the codec never closes it.
type ReaderBody struct{}

// FileBody materializes the body as a file on disk owned by the transport.
type FileBody struct{}

// MultipartBody describes a multipart body: the raw type of each
// configured part, plus an optional default for unconfigured part names.
type MultipartBody struct {
	PartTypes   map[string]RawBodyType
	DefaultType RawBodyType
}

// PartType returns the raw type for a part name, falling back to the
// default.
func (m MultipartBody) PartType(name string) (RawBodyType, bool) {
	if t, ok := m.PartTypes[name]; ok {
		return t, true
	}
	if m.DefaultType != nil {
		return m.DefaultType, true
	}
	return nil, false
}

func (StringBody) rawBodyType()     {}
func (ByteArrayBody) rawBodyType()  {}
func (ByteBufferBody) rawBodyType() {}
func (ReaderBody) rawBodyType()     {}
func (FileBody) rawBodyType()       {}
func (MultipartBody) rawBodyType()  {}

// Part is one named segment of a multipart body. T is the body type: a raw
// wire type before per-part decoding, or a typed domain value after.
// Metadata (content type, file name, headers) travels with the part
// through decode and encode.
type Part[T any] struct {
	Name        string
	Body        T
	ContentType string
	FileName    string
	Headers     textproto.MIMEHeader
}

// RawPart is a part before per-part decoding; its body is one of the raw
// wire types described by RawBodyType.
type RawPart = Part[any]

// NewPart builds a bare part with just a name and body.
func NewPart[T any](name string, body T) Part[T] {
	return Part[T]{Name: name, Body: body}
}

// WithContentType returns a copy with the content type set.
func (p Part[T]) WithContentType(ct string) Part[T] {
	p.ContentType = ct
	return p
}

// WithFileName returns a copy with the file name set.
func (p Part[T]) WithFileName(fn string) Part[T] {
	p.FileName = fn
	return p
}

// WithHeader returns a copy with an additional MIME header. The header map
// is copied so the original part stays immutable.
func (p Part[T]) WithHeader(key, value string) Part[T] {
	h := make(textproto.MIMEHeader, len(p.Headers)+1)
	for k, vs := range p.Headers {
		h[k] = append([]string(nil), vs...)
	}
	h.Add(key, value)
	p.Headers = h
	return p
}

// Header returns the first value for the given MIME header key.
func (p Part[T]) Header(key string) string {
	if p.Headers == nil {
		return ""
	}
	return p.Headers.Get(key)
}
