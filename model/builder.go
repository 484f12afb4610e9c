package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/damedic/fhir-codec-go/shape"
)

// InvalidValueError is returned when a value does not fit the field it is set on.
type InvalidValueError struct {
	Shape  string
	Field  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s.%s: %s", e.Shape, e.Field, e.Reason)
}

// Builder assembles an Instance.
//
// A Builder must not be used after Build.
type Builder struct {
	shape         *shape.Shape
	values        []Value
	unrecognized  []RawField
	discriminated bool
}

// NewBuilder returns a builder for an instance of s with all fields absent.
func NewBuilder(s *shape.Shape) *Builder {
	return &Builder{
		shape:  s,
		values: make([]Value, len(s.Fields)),
	}
}

// Build returns a new instance of shape s holding the given field values.
func Build(s *shape.Shape, fields map[string]Value) (*Instance, error) {
	b := NewBuilder(s)
	for _, f := range s.Fields {
		v, ok := fields[f.Name]
		if !ok {
			continue
		}
		if err := b.Set(f.Name, v); err != nil {
			return nil, err
		}
	}
	for name := range fields {
		if _, ok := s.Index(name); !ok {
			return nil, &InvalidValueError{Shape: s.Name, Field: name, Reason: "no such field"}
		}
	}
	return b.Build(), nil
}

// Set sets the named field. A nil v or an empty List clears it.
func (b *Builder) Set(name string, v Value) error {
	idx, ok := b.shape.Index(name)
	if !ok {
		return b.invalid(name, "no such field")
	}
	f := b.shape.Fields[idx]

	if v == nil {
		b.values[idx] = nil
		return nil
	}
	if f.Cardinality.Repeated() {
		l, ok := v.(List)
		if !ok {
			return b.invalid(name, fmt.Sprintf("repeated field needs a List, got %T", v))
		}
		if len(l) == 0 {
			b.values[idx] = nil
			return nil
		}
		for n, item := range l {
			if err := b.check(f, item); err != nil {
				return b.invalid(fmt.Sprintf("%s[%d]", name, n), err.Error())
			}
		}
		b.values[idx] = slices.Clone(l)
		return nil
	}
	if err := b.check(f, v); err != nil {
		return b.invalid(name, err.Error())
	}
	b.values[idx] = v
	return nil
}

// AddUnrecognized appends a field not described by the shape. The value must
// be valid JSON and is stored compacted; the name must not be a key of the
// shape.
func (b *Builder) AddUnrecognized(name string, raw json.RawMessage) error {
	if name == shape.DiscriminatorKey {
		return b.invalid(name, "reserved key")
	}
	if _, ok := b.shape.FieldByKey(name); ok {
		return b.invalid(name, "key belongs to a known field")
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return b.invalid(name, "invalid JSON: "+err.Error())
	}
	for _, u := range b.unrecognized {
		if u.Name == name {
			return b.invalid(name, "duplicate key")
		}
	}
	b.unrecognized = append(b.unrecognized, RawField{Name: name, Value: compact.Bytes()})
	return nil
}

// SetDiscriminated records whether the serialized form of the instance
// carries the discriminator. Resources always carry it; for elements nested in
// other instances it is written only when set.
func (b *Builder) SetDiscriminated(v bool) {
	b.discriminated = v
}

// Build returns the assembled instance.
func (b *Builder) Build() *Instance {
	inst := &Instance{
		shape:         b.shape,
		values:        b.values,
		unrecognized:  b.unrecognized,
		discriminated: b.discriminated,
	}
	b.values, b.unrecognized = nil, nil
	return inst
}

func (b *Builder) invalid(field, reason string) error {
	return &InvalidValueError{Shape: b.shape.Name, Field: field, Reason: reason}
}

func (b *Builder) check(f shape.Field, v Value) error {
	switch f.Kind {
	case shape.ValuePrimitive:
		return checkPrimitive(f.Type, v)
	case shape.ValueShape:
		return checkShape(f.Type, v)
	case shape.ValueResource:
		inst, ok := v.(*Instance)
		if !ok || inst == nil {
			return fmt.Errorf("expected resource instance, got %T", v)
		}
		if !inst.shape.IsResource() {
			return fmt.Errorf("%s is not a resource", inst.ShapeName())
		}
		return nil
	case shape.ValueChoice:
		c, ok := v.(Choice)
		if !ok {
			return fmt.Errorf("expected Choice, got %T", v)
		}
		variant, ok := f.VariantOfType(c.Type)
		if !ok {
			return fmt.Errorf("%s is not a variant of %s[x]", c.Type, f.Name)
		}
		if variant.Kind == shape.ValuePrimitive {
			return checkPrimitive(variant.Type, c.Value)
		}
		return checkShape(variant.Type, c.Value)
	default:
		return fmt.Errorf("field kind %s", f.Kind)
	}
}

func checkPrimitive(code string, v Value) error {
	p, ok := v.(primitive.Value)
	if !ok || p == nil {
		return fmt.Errorf("expected %s primitive, got %T", code, v)
	}
	if p.Type() != code {
		return fmt.Errorf("expected %s primitive, got %s", code, p.Type())
	}
	return nil
}

func checkShape(name string, v Value) error {
	inst, ok := v.(*Instance)
	if !ok || inst == nil {
		return fmt.Errorf("expected %s instance, got %T", name, v)
	}
	if inst.ShapeName() != name {
		return fmt.Errorf("expected %s instance, got %s", name, inst.ShapeName())
	}
	return nil
}
