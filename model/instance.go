// Package model holds decoded FHIR documents as immutable instances of shapes.
//
// An Instance is tagged with the shape it was built for and stores the value
// of each field at the field's position in the shape. Field values are one of
//
//   - primitive.Value for primitive fields
//   - *Instance for nested elements and resources
//   - Choice for choice fields
//   - List for repeated fields, holding any of the above except List
//
// Instances are never changed after construction; With and Without return
// modified copies.
package model

import (
	"encoding/json"
	"iter"
	"slices"

	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/damedic/fhir-codec-go/shape"
)

// Value is the value of a field. See the package documentation for the
// concrete types.
type Value any

// List is the value of a repeated field. It is never empty.
type List []Value

// Choice is the value of a choice field.
type Choice struct {
	// Type is the type code or shape name of the populated variant.
	Type  string
	Value Value
}

// RawField is a field not described by the shape of its instance.
type RawField struct {
	Name string
	// Value is the compact JSON of the field.
	Value json.RawMessage
}

// Instance is a value of a shape.
type Instance struct {
	shape         *shape.Shape
	values        []Value
	unrecognized  []RawField
	discriminated bool
}

// Shape returns the shape of the instance.
func (i *Instance) Shape() *shape.Shape {
	return i.shape
}

// ShapeName returns the discriminator of the instance.
func (i *Instance) ShapeName() string {
	return i.shape.Name
}

// ResourceType returns the discriminator of the instance. It always equals the
// shape name and cannot be set through field values.
func (i *Instance) ResourceType() string {
	return i.shape.Name
}

// Discriminated reports whether the instance was decoded from, or is to be
// written as, an object carrying the discriminator key.
func (i *Instance) Discriminated() bool {
	return i.discriminated
}

// ResourceID returns the id of the instance, if set.
func (i *Instance) ResourceID() (string, bool) {
	v, ok := i.Get("id")
	if !ok {
		return "", false
	}
	p, ok := v.(primitive.Value)
	if !ok {
		return "", false
	}
	return p.String(), true
}

// Get returns the value of the named field.
func (i *Instance) Get(name string) (Value, bool) {
	idx, ok := i.shape.Index(name)
	if !ok || i.values[idx] == nil {
		return nil, false
	}
	return i.values[idx], true
}

// Has reports whether the named field is present.
func (i *Instance) Has(name string) bool {
	_, ok := i.Get(name)
	return ok
}

// At returns the value of the field at position idx of the shape.
func (i *Instance) At(idx int) Value {
	return i.values[idx]
}

// List returns the items of a repeated field, or nil if it is absent.
func (i *Instance) List(name string) List {
	v, _ := i.Get(name)
	l, _ := v.(List)
	return l
}

// Instance returns the nested instance held by a single-valued field.
func (i *Instance) Instance(name string) (*Instance, bool) {
	v, _ := i.Get(name)
	n, ok := v.(*Instance)
	return n, ok
}

// Primitive returns the primitive held by a single-valued field.
func (i *Instance) Primitive(name string) (primitive.Value, bool) {
	v, _ := i.Get(name)
	p, ok := v.(primitive.Value)
	return p, ok
}

// Fields iterates over the present fields in declared order.
func (i *Instance) Fields() iter.Seq2[shape.Field, Value] {
	return func(yield func(shape.Field, Value) bool) {
		for idx, v := range i.values {
			if v == nil {
				continue
			}
			if !yield(i.shape.Fields[idx], v) {
				return
			}
		}
	}
}

// Unrecognized returns the fields not described by the shape, in input order.
func (i *Instance) Unrecognized() []RawField {
	return slices.Clone(i.unrecognized)
}

// With returns a copy of the instance with the named field set to v.
// A nil v or an empty List removes the field.
func (i *Instance) With(name string, v Value) (*Instance, error) {
	b := i.builder()
	if err := b.Set(name, v); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Without returns a copy of the instance without the named field.
func (i *Instance) Without(name string) (*Instance, error) {
	return i.With(name, nil)
}

func (i *Instance) builder() *Builder {
	return &Builder{
		shape:         i.shape,
		values:        slices.Clone(i.values),
		unrecognized:  slices.Clone(i.unrecognized),
		discriminated: i.discriminated,
	}
}
