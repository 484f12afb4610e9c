// Package generatetest provides a small bundle of StructureDefinitions for
// testing the generator.
package generatetest

import _ "embed"

// Bundle defines the datatypes Period, Extension, Meta, Narrative and Age,
// the resource Sample with a backbone element, and some definitions the
// generator skips.
//
//go:embed bundle.json
var Bundle string
