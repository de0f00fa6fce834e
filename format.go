package wireform

import "fmt"

// Format is the closed tag identifying the media type a codec serializes
// to and from. The transport layer reads it to select content-type; the
// codec core never branches on it during decode or encode.
type Format int

const (
	// FormatTextPlain is text/plain with UTF-8 charset.
	FormatTextPlain Format = iota
	FormatTextHTML
	FormatJSON
	FormatXML
	FormatOctetStream
	FormatZip
	FormatXWwwFormURLEncoded
	FormatMultipartFormData
	FormatTextEventStream
	FormatCBOR
	FormatMsgpack
	FormatYAML
)

// MediaType returns the canonical media-type string for the format. The
// set is closed; an unknown tag is a programming error and panics.
func (f Format) MediaType() string {
	switch f {
	case FormatTextPlain:
		return "text/plain; charset=utf-8"
	case FormatTextHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "application/xml"
	case FormatOctetStream:
		return "application/octet-stream"
	case FormatZip:
		return "application/zip"
	case FormatXWwwFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case FormatMultipartFormData:
		return "multipart/form-data"
	case FormatTextEventStream:
		return "text/event-stream"
	case FormatCBOR:
		return "application/cbor"
	case FormatMsgpack:
		return "application/msgpack"
	case FormatYAML:
		return "application/yaml"
	}
	panic(fmt.Sprintf("wireform: unknown format %d", int(f)))
}

// String returns the media type.
func (f Format) String() string { return f.MediaType() }
