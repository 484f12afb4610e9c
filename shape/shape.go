// Package shape describes the structure of FHIR resources and elements.
//
// A Shape lists the fields of one resource, datatype or backbone element in
// the order in which they are serialized. Shapes are plain data: they are
// produced by the generator in internal/generate and registered in a Registry,
// which the codec in package fhirjson consults to decode and encode documents.
package shape

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

// Kind distinguishes identifiable resources from reusable substructures.
type Kind int

const (
	// KindResource is a top-level, independently identifiable resource.
	KindResource Kind = iota
	// KindElement is a reusable datatype such as Period or Money.
	KindElement
	// KindBackbone is an element defined inline by its parent, such as RiskAssessmentPrediction.
	KindBackbone
)

func (k Kind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindElement:
		return "element"
	case KindBackbone:
		return "backbone"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Cardinality states how often a field may occur.
//
// Repeated fields never distinguish an empty list from an absent one.
type Cardinality int

const (
	OptionalOne Cardinality = iota
	RequiredOne
	OptionalMany
	RequiredMany
)

// Required reports whether the field must be present.
func (c Cardinality) Required() bool {
	return c == RequiredOne || c == RequiredMany
}

// Repeated reports whether the field holds a list.
func (c Cardinality) Repeated() bool {
	return c == OptionalMany || c == RequiredMany
}

func (c Cardinality) String() string {
	switch c {
	case OptionalOne:
		return "0..1"
	case RequiredOne:
		return "1..1"
	case OptionalMany:
		return "0..*"
	case RequiredMany:
		return "1..*"
	default:
		return fmt.Sprintf("Cardinality(%d)", int(c))
	}
}

// ValueKind is the kind of value a field holds.
type ValueKind int

const (
	// ValuePrimitive fields hold a FHIR primitive such as dateTime or decimal.
	ValuePrimitive ValueKind = iota
	// ValueShape fields hold a nested element owned by the parent.
	ValueShape
	// ValueChoice fields hold exactly one of several typed variants, e.g. value[x].
	ValueChoice
	// ValueResource fields hold a nested resource which names its own shape, e.g. contained.
	ValueResource
)

func (k ValueKind) String() string {
	switch k {
	case ValuePrimitive:
		return "primitive"
	case ValueShape:
		return "shape"
	case ValueChoice:
		return "choice"
	case ValueResource:
		return "resource"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Variant is one typed alternative of a choice field.
type Variant struct {
	// Type is a primitive type code (dateTime) or a shape name (Period).
	Type string
	// Kind is ValuePrimitive or ValueShape.
	Kind ValueKind
}

// Key returns the serialized key of the variant for the given choice field,
// e.g. "effective" and "dateTime" yield "effectiveDateTime".
func (v Variant) Key(field string) string {
	return field + strcase.ToCamel(v.Type)
}

// Field describes one element of a shape.
type Field struct {
	// Name is the serialized key; for choice fields it is the key prefix.
	Name        string
	Kind        ValueKind
	// Type is the primitive type code or shape name. Unused for choice fields
	// and for nested resources.
	Type        string
	Variants    []Variant
	Cardinality Cardinality
}

// Key returns the serialized key of a non-choice field.
func (f Field) Key() string {
	return f.Name
}

// Variant returns the variant that serializes under key.
func (f Field) Variant(key string) (Variant, bool) {
	for _, v := range f.Variants {
		if v.Key(f.Name) == key {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantOfType returns the variant with the given type.
func (f Field) VariantOfType(t string) (Variant, bool) {
	for _, v := range f.Variants {
		if v.Type == t {
			return v, true
		}
	}
	return Variant{}, false
}

// Keys returns every key the field may be serialized under.
func (f Field) Keys() []string {
	if f.Kind != ValueChoice {
		return []string{f.Name}
	}
	keys := make([]string, 0, len(f.Variants))
	for _, v := range f.Variants {
		keys = append(keys, v.Key(f.Name))
	}
	return keys
}

// Shape describes one resource or element.
type Shape struct {
	// Name is the discriminator, e.g. "Organization" or "Period".
	Name    string
	// Version is the FHIR version the shape belongs to, e.g. "4.0.1".
	Version string
	Kind    Kind
	// Base names the shared field group the shape starts with.
	Base    string
	Fields  []Field

	index map[string]int
	keys  map[string]int
}

// IsResource reports whether the shape is a top-level resource.
func (s *Shape) IsResource() bool {
	return s.Kind == KindResource
}

// Discriminable reports whether serialized objects of the shape may carry the
// discriminator key. Elements declaring a field with that key, such as
// ExampleScenarioInstance.resourceType, use it for the field instead.
func (s *Shape) Discriminable() bool {
	_, declared := s.FieldByKey(DiscriminatorKey)
	return !declared
}

// Index returns the position of the named field.
func (s *Shape) Index(name string) (int, bool) {
	if s.index != nil {
		i, ok := s.index[name]
		return i, ok
	}
	for i, f := range s.Fields {
		if f.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Field returns the named field.
func (s *Shape) Field(name string) (Field, bool) {
	i, ok := s.Index(name)
	if !ok {
		return Field{}, false
	}
	return s.Fields[i], true
}

// FieldByKey returns the field a serialized key belongs to, resolving
// choice variant keys to their choice field.
func (s *Shape) FieldByKey(key string) (Field, bool) {
	if s.keys != nil {
		i, ok := s.keys[key]
		if !ok {
			return Field{}, false
		}
		return s.Fields[i], true
	}
	for _, f := range s.Fields {
		for _, k := range f.Keys() {
			if k == key {
				return f, true
			}
		}
	}
	return Field{}, false
}

func (s *Shape) buildIndex() error {
	s.index = make(map[string]int, len(s.Fields))
	s.keys = make(map[string]int, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("shape %s: field %d has no name", s.Name, i)
		}
		if _, dup := s.index[f.Name]; dup {
			return fmt.Errorf("shape %s: duplicate field %s", s.Name, f.Name)
		}
		s.index[f.Name] = i

		for _, k := range f.Keys() {
			if k == DiscriminatorKey && s.IsResource() {
				return fmt.Errorf("shape %s: field %s uses reserved key %s", s.Name, f.Name, k)
			}
			if j, dup := s.keys[k]; dup {
				return fmt.Errorf("shape %s: key %s of field %s collides with field %s", s.Name, k, f.Name, s.Fields[j].Name)
			}
			s.keys[k] = i
		}
	}
	return nil
}

// DiscriminatorKey is the key naming the shape of a serialized object.
const DiscriminatorKey = "resourceType"
