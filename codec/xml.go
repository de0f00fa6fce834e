package codec

import (
	"encoding/xml"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/schema"
)

// XML converts between XML text and T.
func XML[T any]() wireform.Codec[string, T] {
	return XMLWithSchema[T](nil)
}

// XMLWithSchema is XML with a caller-supplied descriptor of T.
func XMLWithSchema[T any](s *schema.Schema) wireform.Codec[string, T] {
	return stringPayload[T](wireform.FormatXML, xml.Marshal, xml.Unmarshal, s)
}
