package model

import (
	"bytes"

	"github.com/damedic/fhir-codec-go/primitive"
)

// Equal reports whether a and b are instances of the same shape with equal
// fields.
//
// Primitives are compared by their serialized form, so decimals 1.5 and 1.50
// differ. Unrecognized fields are compared by name, order and compact JSON.
// Whether the discriminator was present is not compared.
func Equal(a, b *Instance) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.shape.Name != b.shape.Name || len(a.values) != len(b.values) {
		return false
	}
	for idx := range a.values {
		if !equalValue(a.values[idx], b.values[idx]) {
			return false
		}
	}
	if len(a.unrecognized) != len(b.unrecognized) {
		return false
	}
	for idx, u := range a.unrecognized {
		v := b.unrecognized[idx]
		if u.Name != v.Name || !bytes.Equal(u.Value, v.Value) {
			return false
		}
	}
	return true
}

func equalValue(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case primitive.Value:
		b, ok := b.(primitive.Value)
		return ok && primitive.Equal(a, b)
	case *Instance:
		b, ok := b.(*Instance)
		return ok && Equal(a, b)
	case Choice:
		b, ok := b.(Choice)
		return ok && a.Type == b.Type && equalValue(a.Value, b.Value)
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for idx := range a {
			if !equalValue(a[idx], b[idx]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
