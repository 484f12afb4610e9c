// Package r4 provides the shapes of the FHIR R4 resources, datatypes and
// backbone elements.
//
// The catalog in catalog_gen.go is generated from the R4 StructureDefinitions
// by internal/cmd/generate. Run `go generate ./...` to update it.
package r4

import (
	"sync"

	"github.com/damedic/fhir-codec-go/shape"
)

//go:generate go run ../../internal/cmd/generate --definitions ../../build/fhir-r4-definitions.json.zip --release R4

// Version is the FHIR version of the catalog.
const Version = "4.0.1"

// NewRegistry returns a new frozen registry holding the R4 catalog.
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

// Default returns a shared frozen registry holding the R4 catalog.
//
// It panics if the catalog is inconsistent, which the tests of this package
// rule out.
func Default() *shape.Registry {
	return defaultRegistry()
}
