package codec

import (
	gojson "github.com/goccy/go-json"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/schema"
)

// JSON converts between JSON text and T.
func JSON[T any]() wireform.Codec[string, T] {
	return JSONWithSchema[T](nil)
}

// JSONWithSchema is JSON with a caller-supplied descriptor of T; the
// caller owns the schema/type lockstep invariant.
func JSONWithSchema[T any](s *schema.Schema) wireform.Codec[string, T] {
	return stringPayload[T](wireform.FormatJSON, gojson.Marshal, gojson.Unmarshal, s)
}
