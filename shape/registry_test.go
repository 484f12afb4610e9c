package shape_test

import (
	"errors"
	"testing"

	"github.com/damedic/fhir-codec-go/shape"
	"github.com/google/go-cmp/cmp"
)

func minimal() []shape.Shape {
	return []shape.Shape{
		shape.Element("Extension",
			shape.Primitive("url", "uri", shape.RequiredOne),
			shape.Choice("value", shape.OptionalOne,
				shape.PrimitiveVariant("string"),
				shape.ShapeVariant("Period"),
			),
		),
		shape.Element("Period",
			shape.Primitive("start", "dateTime", shape.OptionalOne),
			shape.Primitive("end", "dateTime", shape.OptionalOne),
		),
	}
}

func TestRegisterResolve(t *testing.T) {
	r := shape.NewRegistry("4.0.1")
	r.MustRegister(minimal()...)
	if err := r.Freeze(); err != nil {
		t.Fatalf("Freeze: %v", err)
	}

	p, err := r.Resolve("Period")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Version != "4.0.1" {
		t.Errorf("Version = %q", p.Version)
	}
	if diff := cmp.Diff([]string{"Extension", "Period"}, r.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d", r.Len())
	}

	ext, _ := r.Resolve("Extension")
	f, ok := ext.FieldByKey("valuePeriod")
	if !ok || f.Name != "value" {
		t.Fatalf("FieldByKey(valuePeriod) = %v, %v", f, ok)
	}
	v, ok := f.Variant("valuePeriod")
	if !ok || v.Type != "Period" {
		t.Errorf("Variant(valuePeriod) = %v, %v", v, ok)
	}
	if diff := cmp.Diff([]string{"valueString", "valuePeriod"}, f.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveUnknown(t *testing.T) {
	r := shape.NewRegistry("4.0.1")
	_, err := r.Resolve("Foo")
	var use *shape.UnknownShapeError
	if !errors.As(err, &use) || use.Name != "Foo" {
		t.Fatalf("expected UnknownShapeError for Foo, got %v", err)
	}
}

func TestRegisterErrors(t *testing.T) {
	tests := []struct {
		name   string
		shapes []shape.Shape
	}{
		{"unknown primitive", []shape.Shape{
			shape.Element("X", shape.Primitive("a", "float", shape.OptionalOne)),
		}},
		{"repeated choice", []shape.Shape{
			shape.Element("X", shape.Choice("value", shape.OptionalMany, shape.PrimitiveVariant("string"))),
		}},
		{"empty choice", []shape.Shape{
			shape.Element("X", shape.Choice("value", shape.OptionalOne)),
		}},
		{"duplicate field", []shape.Shape{
			shape.Element("X", shape.Primitive("id", "string", shape.OptionalOne)),
		}},
		{"key collision", []shape.Shape{
			shape.Element("X",
				shape.Primitive("valueString", "string", shape.OptionalOne),
				shape.Choice("value", shape.OptionalOne, shape.PrimitiveVariant("string")),
			),
		}},
		{"reserved key", []shape.Shape{
			shape.DomainResource("X", shape.Primitive("resourceType", "code", shape.OptionalOne)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := shape.NewRegistry("4.0.1")
			if err := r.RegisterAll(tt.shapes...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDiscriminable(t *testing.T) {
	r := shape.NewRegistry("4.0.1")
	r.MustRegister(
		shape.Backbone("ExampleScenarioInstance", shape.Primitive("resourceType", "code", shape.RequiredOne)),
		shape.Element("Period"),
	)

	instance, _ := r.Resolve("ExampleScenarioInstance")
	if instance.Discriminable() {
		t.Error("shape with a resourceType field reported discriminable")
	}
	period, _ := r.Resolve("Period")
	if !period.Discriminable() {
		t.Error("Period not discriminable")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := shape.NewRegistry("4.0.1")
	r.MustRegister(minimal()...)
	err := r.Register(shape.Element("Period"))
	var dup *shape.DuplicateShapeError
	if !errors.As(err, &dup) || dup.Name != "Period" {
		t.Fatalf("expected DuplicateShapeError, got %v", err)
	}
}

func TestFreeze(t *testing.T) {
	r := shape.NewRegistry("4.0.1")
	r.MustRegister(minimal()[0])

	err := r.Freeze()
	var use *shape.UnknownShapeError
	if !errors.As(err, &use) {
		t.Fatalf("expected UnknownShapeError, got %v", err)
	}
	if use.Name != "Period" || use.Path != "Extension.valuePeriod" {
		t.Errorf("got %+v", use)
	}
	if r.Frozen() {
		t.Error("registry frozen despite error")
	}

	r.MustRegister(minimal()[1])
	if err := r.Freeze(); err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	if err := r.Register(shape.Element("Money")); !errors.Is(err, shape.ErrFrozen) {
		t.Errorf("expected ErrFrozen, got %v", err)
	}
}

func TestRegisterCopies(t *testing.T) {
	s := shape.Element("Period", shape.Primitive("start", "dateTime", shape.OptionalOne))
	r := shape.NewRegistry("4.0.1")
	r.MustRegister(s)
	s.Fields[2].Name = "begin"

	p, _ := r.Resolve("Period")
	if _, ok := p.Field("start"); !ok {
		t.Error("registered shape changed through the argument")
	}
}

func TestSharedFieldGroups(t *testing.T) {
	names := func(s shape.Shape) []string {
		var n []string
		for _, f := range s.Fields {
			n = append(n, f.Name)
		}
		return n
	}

	tests := []struct {
		shape shape.Shape
		want  []string
	}{
		{shape.Element("Period"), []string{"id", "extension"}},
		{shape.Backbone("RiskAssessmentPrediction"), []string{"id", "extension", "modifierExtension"}},
		{shape.Resource("Binary"), []string{"id", "meta", "implicitRules", "language"}},
		{shape.DomainResource("Organization"), []string{"id", "meta", "implicitRules", "language", "text", "contained", "extension", "modifierExtension"}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.Name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, names(tt.shape)); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// Groups are composed by value; changing one shape leaves the others alone.
	a, b := shape.Element("A"), shape.Element("B")
	a.Fields[0].Name = "changed"
	if b.Fields[0].Name != "id" {
		t.Error("field groups share backing storage")
	}
}

func TestCardinality(t *testing.T) {
	tests := []struct {
		c                  shape.Cardinality
		required, repeated bool
		str                string
	}{
		{shape.OptionalOne, false, false, "0..1"},
		{shape.RequiredOne, true, false, "1..1"},
		{shape.OptionalMany, false, true, "0..*"},
		{shape.RequiredMany, true, true, "1..*"},
	}
	for _, tt := range tests {
		if tt.c.Required() != tt.required || tt.c.Repeated() != tt.repeated || tt.c.String() != tt.str {
			t.Errorf("%v: got required=%v repeated=%v", tt.c, tt.c.Required(), tt.c.Repeated())
		}
	}
}
