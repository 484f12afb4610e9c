package ir

// ResourceOrType is a resource or datatype together with the backbone
// elements declared inside it.
type ResourceOrType struct {
	Name       string
	IsResource bool
	// Structs holds the resource or type itself first, followed by its
	// backbone elements in definition order.
	Structs []Struct
}

type Struct struct {
	Name string
	// Base is the field group the struct inherits: Resource,
	// DomainResource, Element or BackboneElement.
	Base       string
	IsResource bool
	Fields     []StructField
}

type StructField struct {
	Name string
	// PossibleTypes has one entry, or one per variant for polymorph fields.
	PossibleTypes []FieldType
	Polymorph     bool
	Multiple      bool
	Optional      bool
}

type FieldType struct {
	// Name is a primitive type code or the name of a struct.
	Name             string
	IsPrimitive      bool
	IsNestedResource bool
}

// Cardinality returns the FHIR cardinality, e.g. "0..*".
func (f StructField) Cardinality() string {
	switch {
	case f.Optional && f.Multiple:
		return "0..*"
	case f.Optional:
		return "0..1"
	case f.Multiple:
		return "1..*"
	default:
		return "1..1"
	}
}
