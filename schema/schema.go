// Package schema defines the structural type descriptor attached to codecs.
// A Schema describes the high-level type a codec decodes to, independent of
// the decode/encode logic; structural codec combinators derive new schemas
// via the projections in this package, never by mutating the base.
package schema

// Type names used in the Type field.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Schema is a minimal structural descriptor. Keep this struct small and
// extend incrementally.
type Schema struct {
	// Core
	Type     string `json:"type,omitempty"`
	Format   string `json:"format,omitempty"`
	Nullable bool   `json:"nullable,omitempty"`
	Default  any    `json:"default,omitempty"`

	// String
	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`

	// Array
	Items       *Schema `json:"items,omitempty"`
	MinItems    *int    `json:"minItems,omitempty"`
	MaxItems    *int    `json:"maxItems,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Clone returns a shallow copy; nested schemas are shared (they are treated
// as immutable once attached to a codec).
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// ---- primitive constructors ----

// String returns the plain string descriptor.
func String() *Schema { return &Schema{Type: TypeString} }

// StringFormat returns a string descriptor with a named format
// (e.g. "uuid", "date-time", "uri").
func StringFormat(format string) *Schema { return &Schema{Type: TypeString, Format: format} }

// Integer returns an integer descriptor with an optional format hint
// ("int32", "int64", ...).
func Integer(format string) *Schema { return &Schema{Type: TypeInteger, Format: format} }

// Number returns a floating-point descriptor ("float", "double").
func Number(format string) *Schema { return &Schema{Type: TypeNumber, Format: format} }

// Boolean returns the boolean descriptor.
func Boolean() *Schema { return &Schema{Type: TypeBoolean} }

// Binary returns the descriptor for raw byte payloads.
func Binary() *Schema { return &Schema{Type: TypeString, Format: "binary"} }

// ---- structural projections ----

// Array wraps an element descriptor into an array descriptor. A nil item
// yields an untyped array.
func Array(item *Schema) *Schema { return &Schema{Type: TypeArray, Items: item} }

// UniqueArray wraps an element descriptor into a duplicate-free array
// descriptor (the set combinator's projection).
func UniqueArray(item *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: item, UniqueItems: true}
}

// Optional marks a descriptor as nullable without touching the base.
// Returns nil for a nil base: absence of a schema stays absent.
func Optional(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	c := s.Clone()
	c.Nullable = true
	return c
}
