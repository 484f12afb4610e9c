package fhirjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/damedic/fhir-codec-go/shape"
)

// Encoder turns instances into JSON documents.
type Encoder struct {
	prefix string
	indent string
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// Indent makes the encoder indent its output like json.MarshalIndent.
func Indent(prefix, indent string) EncoderOption {
	return func(e *Encoder) {
		e.prefix, e.indent = prefix, indent
	}
}

// NewEncoder returns an encoder producing compact JSON unless configured
// otherwise.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Marshal returns the JSON encoding of inst.
//
// The discriminator comes first, followed by the present fields in declared
// order and the unrecognized fields in the order they were decoded. Absent
// fields are omitted. Nested elements carry the discriminator only if they
// were decoded with it. Instances missing a required field are rejected.
func (e *Encoder) Marshal(inst *model.Instance) ([]byte, error) {
	if inst == nil {
		return nil, &StructureError{Reason: "nil instance"}
	}
	b, err := appendInstance(nil, inst, inst.ShapeName(), true)
	if err != nil {
		return nil, err
	}
	if e.prefix == "" && e.indent == "" {
		return b, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, e.prefix, e.indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the JSON encoding of inst to w, followed by a newline.
func (e *Encoder) Encode(w io.Writer, inst *model.Instance) error {
	b, err := e.Marshal(inst)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func appendInstance(dst []byte, inst *model.Instance, path string, discriminator bool) ([]byte, error) {
	s := inst.Shape()
	dst = append(dst, '{')
	first := true
	key := func(k string) {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = primitive.AppendQuoted(dst, k)
		dst = append(dst, ':')
	}

	if (discriminator || inst.Discriminated()) && s.Discriminable() {
		key(shape.DiscriminatorKey)
		dst = primitive.AppendQuoted(dst, s.Name)
	}

	for idx, f := range s.Fields {
		v := inst.At(idx)
		if v == nil {
			switch {
			case f.Kind == shape.ValueChoice && f.Cardinality.Required():
				return nil, &MissingChoiceError{Path: path + "." + f.Name, Shape: s.Name, Field: f.Name}
			case f.Cardinality.Required():
				return nil, &MissingRequiredFieldError{Path: path + "." + f.Name, Shape: s.Name, Field: f.Name}
			}
			continue
		}

		var err error
		switch v := v.(type) {
		case model.List:
			fieldPath := path + "." + f.Name
			key(f.Name)
			dst = append(dst, '[')
			for i, item := range v {
				if i > 0 {
					dst = append(dst, ',')
				}
				dst, err = appendValue(dst, item, f.Kind == shape.ValueResource, fieldPath+"["+strconv.Itoa(i)+"]")
				if err != nil {
					return nil, err
				}
			}
			dst = append(dst, ']')
		case model.Choice:
			variant, ok := f.VariantOfType(v.Type)
			if !ok {
				return nil, &StructureError{Path: path + "." + f.Name, Shape: s.Name, Field: f.Name, Reason: v.Type + " is not a variant"}
			}
			k := variant.Key(f.Name)
			key(k)
			dst, err = appendValue(dst, v.Value, false, path+"."+k)
		default:
			key(f.Name)
			dst, err = appendValue(dst, v, f.Kind == shape.ValueResource, path+"."+f.Name)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, u := range inst.Unrecognized() {
		key(u.Name)
		dst = append(dst, u.Value...)
	}
	return append(dst, '}'), nil
}

func appendValue(dst []byte, v model.Value, resource bool, path string) ([]byte, error) {
	switch v := v.(type) {
	case primitive.Value:
		return v.AppendJSON(dst), nil
	case *model.Instance:
		return appendInstance(dst, v, path, resource)
	default:
		return nil, fmt.Errorf("fhirjson: cannot encode %T at %s", v, path)
	}
}
