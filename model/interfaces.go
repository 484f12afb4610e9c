package model

// Element is any element in the FHIR model.
//
// This includes Resources, Datatypes and BackboneElements.
type Element interface {
	ShapeName() string
	MemSize() int
}

// Resource is any FHIR Resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceID() (string, bool)
}

var (
	_ Element  = (*Instance)(nil)
	_ Resource = (*Instance)(nil)
)
