// Package fhirjson encodes and decodes FHIR JSON documents using the shapes
// of a shape.Registry.
//
// Decoding is strict about structure and lenient about vocabulary: required
// fields, choice fields and primitive grammars are checked, while keys that no
// shape describes are kept on the instance and written back by the Encoder.
package fhirjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/damedic/fhir-codec-go/shape"
)

// Decoder turns JSON documents into instances.
//
// A Decoder holds no mutable state and may be used concurrently once its
// registry is frozen.
type Decoder struct {
	registry        *shape.Registry
	disallowUnknown bool
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// DisallowUnknownFields makes the decoder fail with an UnknownFieldError on
// keys that are not described by the shape, instead of keeping them. The "_"
// companions of described keys, such as _birthDate, are still kept as
// unrecognized fields.
func DisallowUnknownFields() DecoderOption {
	return func(d *Decoder) {
		d.disallowUnknown = true
	}
}

// NewDecoder returns a decoder resolving shapes in r.
func NewDecoder(r *shape.Registry, opts ...DecoderOption) *Decoder {
	d := &Decoder{registry: r}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Unmarshal decodes a single JSON object whose discriminator names its shape.
func (d *Decoder) Unmarshal(b []byte) (*model.Instance, error) {
	v, err := readDocument(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return d.decodeRoot(v, "")
}

// Decode reads a single JSON object from r and decodes it like Unmarshal.
// Anything but whitespace after the object is a SyntaxError; use a Stream
// to read several documents from one reader.
func (d *Decoder) Decode(r io.Reader) (*model.Instance, error) {
	v, err := readDocument(r)
	if err != nil {
		return nil, err
	}
	return d.decodeRoot(v, "")
}

// UnmarshalElement decodes a JSON object as an instance of the named shape.
// The discriminator may be absent; if present it must name the same shape.
func (d *Decoder) UnmarshalElement(b []byte, shapeName string) (*model.Instance, error) {
	v, err := readDocument(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return d.decodeRoot(v, shapeName)
}

// DecodeTree decodes a tree as produced by encoding/json. Numbers should be
// json.Number to keep their precision; float64 values are accepted and
// written in their shortest form. Unrecognized keys are kept in lexical
// order.
func (d *Decoder) DecodeTree(tree map[string]any) (*model.Instance, error) {
	v, err := fromGo(tree)
	if err != nil {
		return nil, &StructureError{Reason: err.Error()}
	}
	return d.decodeRoot(v, "")
}

func (d *Decoder) decodeRoot(v any, shapeName string) (*model.Instance, error) {
	obj, ok := v.(*object)
	if !ok {
		return nil, &StructureError{Shape: shapeName, Path: shapeName, Reason: "expected JSON object, got " + jsonType(v)}
	}

	if shapeName == "" {
		name, err := discriminator(obj, "")
		if err != nil {
			return nil, err
		}
		shapeName = name
	}
	s, err := d.registry.Resolve(shapeName)
	if err != nil {
		return nil, err
	}
	return d.decodeObject(obj, s, s.Name)
}

// discriminator returns the shape named by the resourceType key of obj.
func discriminator(obj *object, path string) (string, error) {
	v, ok := obj.get(shape.DiscriminatorKey)
	if !ok || v == nil {
		return "", &MissingRequiredFieldError{Path: path, Field: shape.DiscriminatorKey}
	}
	name, ok := v.(string)
	if !ok || name == "" {
		return "", &StructureError{Path: path, Field: shape.DiscriminatorKey, Reason: "expected non-empty JSON string, got " + jsonType(v)}
	}
	return name, nil
}

func (d *Decoder) decodeObject(obj *object, s *shape.Shape, path string) (*model.Instance, error) {
	b := model.NewBuilder(s)
	used := make(map[string]bool, len(obj.keys))

	if v, ok := obj.get(shape.DiscriminatorKey); ok && s.Discriminable() {
		if name, _ := v.(string); name != s.Name {
			return nil, &StructureError{
				Path:   path,
				Shape:  s.Name,
				Field:  shape.DiscriminatorKey,
				Reason: fmt.Sprintf("discriminator %s does not match expected shape %s", string(appendTree(nil, v)), s.Name),
			}
		}
		used[shape.DiscriminatorKey] = true
		b.SetDiscriminated(true)
	}

	for _, f := range s.Fields {
		var (
			value model.Value
			err   error
		)
		if f.Kind == shape.ValueChoice {
			value, err = d.decodeChoice(obj, s, f, path, used)
		} else {
			value, err = d.decodeField(obj, s, f, path, used)
		}
		if err != nil {
			return nil, err
		}
		if value == nil {
			continue
		}
		if err := b.Set(f.Name, value); err != nil {
			return nil, &StructureError{Path: path + "." + f.Name, Shape: s.Name, Field: f.Name, Reason: err.Error()}
		}
	}

	for _, key := range obj.keys {
		if used[key] {
			continue
		}
		if d.disallowUnknown && !isPrimitiveSibling(s, key) {
			return nil, &UnknownFieldError{Path: path + "." + key, Shape: s.Name, Field: key}
		}
		if err := b.AddUnrecognized(key, appendTree(nil, obj.values[key])); err != nil {
			return nil, &StructureError{Path: path + "." + key, Shape: s.Name, Field: key, Reason: err.Error()}
		}
	}

	return b.Build(), nil
}

// isPrimitiveSibling reports whether key is the "_" companion of a key of s,
// such as _birthDate next to birthDate, which holds the id and extensions of a
// primitive.
func isPrimitiveSibling(s *shape.Shape, key string) bool {
	name, ok := strings.CutPrefix(key, "_")
	if !ok {
		return false
	}
	_, known := s.FieldByKey(name)
	return known
}

func (d *Decoder) decodeField(obj *object, s *shape.Shape, f shape.Field, path string, used map[string]bool) (model.Value, error) {
	key := f.Key()
	fieldPath := path + "." + key
	v, ok := obj.get(key)
	if ok {
		used[key] = true
	}
	if !ok || v == nil {
		if f.Cardinality.Required() {
			return nil, &MissingRequiredFieldError{Path: fieldPath, Shape: s.Name, Field: f.Name}
		}
		return nil, nil
	}

	if !f.Cardinality.Repeated() {
		return d.decodeValue(v, s, f.Name, f.Kind, f.Type, fieldPath)
	}

	items, ok := v.([]any)
	if !ok {
		return nil, &StructureError{Path: fieldPath, Shape: s.Name, Field: f.Name, Reason: "expected JSON array, got " + jsonType(v)}
	}
	if len(items) == 0 {
		if f.Cardinality.Required() {
			return nil, &MissingRequiredFieldError{Path: fieldPath, Shape: s.Name, Field: f.Name}
		}
		return nil, nil
	}
	list := make(model.List, 0, len(items))
	for i, item := range items {
		itemPath := fieldPath + "[" + strconv.Itoa(i) + "]"
		if item == nil {
			if f.Kind == shape.ValuePrimitive {
				return nil, &PrimitiveParseError{Path: itemPath, Shape: s.Name, Field: f.Name, Type: f.Type, Err: errors.New("null in array")}
			}
			return nil, &StructureError{Path: itemPath, Shape: s.Name, Field: f.Name, Reason: "null in array"}
		}
		value, err := d.decodeValue(item, s, f.Name, f.Kind, f.Type, itemPath)
		if err != nil {
			return nil, err
		}
		list = append(list, value)
	}
	return list, nil
}

func (d *Decoder) decodeChoice(obj *object, s *shape.Shape, f shape.Field, path string, used map[string]bool) (model.Value, error) {
	var (
		keys    []string
		variant shape.Variant
		value   any
	)
	for _, vr := range f.Variants {
		key := vr.Key(f.Name)
		v, ok := obj.get(key)
		if !ok {
			continue
		}
		used[key] = true
		if v == nil {
			continue
		}
		if len(keys) == 0 {
			variant, value = vr, v
		}
		keys = append(keys, key)
	}

	switch {
	case len(keys) > 1:
		return nil, &AmbiguousChoiceError{Path: path + "." + f.Name, Shape: s.Name, Field: f.Name, Keys: keys}
	case len(keys) == 0:
		if f.Cardinality.Required() {
			return nil, &MissingChoiceError{Path: path + "." + f.Name, Shape: s.Name, Field: f.Name}
		}
		return nil, nil
	}

	inner, err := d.decodeValue(value, s, f.Name, variant.Kind, variant.Type, path+"."+keys[0])
	if err != nil {
		return nil, err
	}
	return model.Choice{Type: variant.Type, Value: inner}, nil
}

func (d *Decoder) decodeValue(v any, s *shape.Shape, field string, kind shape.ValueKind, typ, path string) (model.Value, error) {
	switch kind {
	case shape.ValuePrimitive:
		switch v.(type) {
		case *object, []any:
			return nil, &PrimitiveParseError{
				Path: path, Shape: s.Name, Field: field, Type: typ,
				Err: &primitive.SyntaxError{Type: typ, Text: jsonType(v), Reason: "expected JSON scalar"},
			}
		}
		p, err := primitive.Parse(typ, v)
		if err != nil {
			return nil, &PrimitiveParseError{Path: path, Shape: s.Name, Field: field, Type: typ, Err: err}
		}
		return p, nil

	case shape.ValueShape:
		obj, ok := v.(*object)
		if !ok {
			return nil, &StructureError{Path: path, Shape: s.Name, Field: field, Reason: "expected JSON object, got " + jsonType(v)}
		}
		nested, err := d.registry.Resolve(typ)
		if err != nil {
			return nil, &shape.UnknownShapeError{Name: typ, Path: path}
		}
		return d.decodeObject(obj, nested, path)

	case shape.ValueResource:
		obj, ok := v.(*object)
		if !ok {
			return nil, &StructureError{Path: path, Shape: s.Name, Field: field, Reason: "expected JSON object, got " + jsonType(v)}
		}
		name, err := discriminator(obj, path)
		if err != nil {
			return nil, err
		}
		nested, err := d.registry.Resolve(name)
		if err != nil {
			return nil, &shape.UnknownShapeError{Name: name, Path: path}
		}
		if !nested.IsResource() {
			return nil, &StructureError{Path: path, Shape: s.Name, Field: field, Reason: name + " is not a resource"}
		}
		return d.decodeObject(obj, nested, path)

	default:
		return nil, fmt.Errorf("field %s of %s: unexpected kind %s", field, s.Name, kind)
	}
}
