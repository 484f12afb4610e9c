// Package stu3 provides the shapes of the FHIR STU3 resources, datatypes and
// backbone elements.
//
// The catalog in catalog_gen.go is generated from the STU3 StructureDefinitions
// by internal/cmd/generate. Its registry is separate from the R4 one: an
// instance decoded with one release is never resolved against the other.
package stu3

import (
	"sync"

	"github.com/damedic/fhir-codec-go/shape"
)

//go:generate go run ../../internal/cmd/generate --definitions ../../build/fhir-stu3-definitions.json.zip --release STU3

// Version is the FHIR version of the catalog.
const Version = "3.0.1"

// NewRegistry returns a new frozen registry holding the STU3 catalog.
func NewRegistry() (*shape.Registry, error) {
	r := shape.NewRegistry(Version)
	if err := r.RegisterAll(Shapes()...); err != nil {
		return nil, err
	}
	if err := r.Freeze(); err != nil {
		return nil, err
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *shape.Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns a shared frozen registry holding the STU3 catalog.
func Default() *shape.Registry {
	return defaultRegistry()
}
