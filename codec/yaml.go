package codec

import (
	"gopkg.in/yaml.v3"

	"github.com/wireform/wireform"
	"github.com/wireform/wireform/schema"
)

// YAML converts between YAML text and T.
func YAML[T any]() wireform.Codec[string, T] {
	return YAMLWithSchema[T](nil)
}

// YAMLWithSchema is YAML with a caller-supplied descriptor of T.
func YAMLWithSchema[T any](s *schema.Schema) wireform.Codec[string, T] {
	return stringPayload[T](wireform.FormatYAML, yaml.Marshal, yaml.Unmarshal, s)
}
