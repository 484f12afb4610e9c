package fhirjson

import (
	"fmt"
	"strings"
)

// Decode and encode errors carry the path of the offending value from the
// document root, e.g. "Observation.component[1].valueQuantity.value", the
// name of the shape the value belongs to and the field name.

// MissingRequiredFieldError is returned when a required field is absent.
type MissingRequiredFieldError struct {
	Path  string
	Shape string
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %s of %s at %s", e.Field, e.Shape, e.Path)
}

// AmbiguousChoiceError is returned when more than one variant of a choice
// field is populated.
type AmbiguousChoiceError struct {
	Path  string
	Shape string
	Field string
	// Keys are the populated variant keys in declared order.
	Keys []string
}

func (e *AmbiguousChoiceError) Error() string {
	return fmt.Sprintf("ambiguous choice %s[x] of %s at %s: %s are all populated", e.Field, e.Shape, e.Path, strings.Join(e.Keys, ", "))
}

// MissingChoiceError is returned when no variant of a required choice field
// is populated.
type MissingChoiceError struct {
	Path  string
	Shape string
	Field string
}

func (e *MissingChoiceError) Error() string {
	return fmt.Sprintf("missing choice %s[x] of %s at %s", e.Field, e.Shape, e.Path)
}

// PrimitiveParseError is returned when a value does not match the grammar of
// its primitive type. It wraps a *primitive.SyntaxError.
type PrimitiveParseError struct {
	Path  string
	Shape string
	Field string
	Type  string
	Err   error
}

func (e *PrimitiveParseError) Error() string {
	return fmt.Sprintf("field %s of %s at %s: %v", e.Field, e.Shape, e.Path, e.Err)
}

func (e *PrimitiveParseError) Unwrap() error {
	return e.Err
}

// UnknownFieldError is returned for keys not described by the shape when
// unknown fields are disallowed.
type UnknownFieldError struct {
	Path  string
	Shape string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("invalid field: %s in %s at %s", e.Field, e.Shape, e.Path)
}

// StructureError is returned when a value has the wrong JSON type for its
// field, e.g. a string where an object or array is expected.
type StructureError struct {
	Path   string
	Shape  string
	Field  string
	Reason string
}

func (e *StructureError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s at %s: %s", e.Shape, e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid field %s of %s at %s: %s", e.Field, e.Shape, e.Path, e.Reason)
}

// SyntaxError is returned for input that is not well-formed JSON.
type SyntaxError struct {
	// Offset is the input offset at which the error was detected.
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
