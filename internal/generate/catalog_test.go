package generate_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/damedic/fhir-codec-go/internal/generate"
	"github.com/damedic/fhir-codec-go/internal/generate/generatetest"
	"github.com/damedic/fhir-codec-go/internal/generate/ir"
	"github.com/damedic/fhir-codec-go/internal/generate/model"
)

func render(t *testing.T, include ...string) (string, error) {
	t.Helper()
	var bundle model.Bundle
	if err := json.Unmarshal([]byte(generatetest.Bundle), &bundle); err != nil {
		t.Fatal(err)
	}

	files, err := generate.Generate("R4", ir.Parse(&bundle), generate.CatalogGenerator{Include: include})
	if err != nil {
		return "", err
	}
	f, ok := files["catalog_gen"]
	if !ok {
		t.Fatal("catalog_gen not generated")
	}
	return fmt.Sprintf("%#v", f), nil
}

func TestCatalogGenerator(t *testing.T) {
	src, err := render(t, "Sample", "Extension", "Meta", "Narrative")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"// " + generate.HeaderComment,
		"package r4",
		"func Shapes() []shape.Shape {",
		`shape.DomainResource(`,
		`shape.Backbone(`,
		`"SampleComponent",`,
		`shape.Primitive("status", "code", shape.RequiredOne),`,
		`shape.Nested("component", "SampleComponent", shape.OptionalMany),`,
		`shape.Nested("related", "SampleComponent", shape.OptionalMany),`,
		`shape.NestedResource("resource", shape.OptionalOne),`,
		`shape.Primitive("url", "uri", shape.RequiredOne),`,
		`shape.ShapeVariant("Period"),`,
		`shape.PrimitiveVariant("string"),`,
		// pulled in by Sample.when
		`"Period",`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated catalog does not contain %q:\n%s", want, src)
		}
	}

	// not in the catalog
	for _, unwanted := range []string{"Timing", `"Age"`, "legacy"} {
		if strings.Contains(src, unwanted) {
			t.Errorf("generated catalog contains %q", unwanted)
		}
	}

	// lexical order
	order := []string{`"Extension",`, `"Meta",`, `"Narrative",`, `"Period",`, `"Sample",`, `"SampleComponent",`}
	last := -1
	for _, name := range order {
		i := strings.Index(src, name)
		if i < last {
			t.Errorf("%s out of order", name)
		}
		last = i
	}
}

func TestCatalogGeneratorAll(t *testing.T) {
	src, err := render(t)
	if err != nil {
		t.Fatal(err)
	}

	// Age is not referenced by any field but still part of the full catalog
	for _, want := range []string{`"Age",`, `"Period",`, `"Sample",`, `"SampleComponent",`, `shape.ShapeVariant("Period"),`} {
		if !strings.Contains(src, want) {
			t.Errorf("generated catalog does not contain %q:\n%s", want, src)
		}
	}
	// Timing has no definition in the bundle
	if strings.Contains(src, "Timing") {
		t.Error("generated catalog contains Timing")
	}
}

func TestCatalogGeneratorErrors(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		err     string
	}{
		{"unknown type", []string{"Sample", "Extension", "Meta", "Narrative", "Unknown"}, "no definition for Unknown"},
		{"missing field group", []string{"Period"}, "catalog must include Extension"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := render(t, tt.include...)
			if err == nil || !strings.Contains(err.Error(), tt.err) {
				t.Errorf("expected error containing %q, got %v", tt.err, err)
			}
		})
	}
}
