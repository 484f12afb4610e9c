package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/damedic/fhir-codec-go/shape"
	"github.com/google/go-cmp/cmp"
)

func testRegistry(t *testing.T) *shape.Registry {
	t.Helper()
	r := shape.NewRegistry("4.0.1")
	r.MustRegister(
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
		shape.Element("Narrative",
			shape.Primitive("status", "code", shape.RequiredOne),
			shape.Primitive("div", "xhtml", shape.RequiredOne),
		),
		shape.Element("Meta",
			shape.Primitive("versionId", "id", shape.OptionalOne),
		),
		shape.DomainResource("Organization",
			shape.Primitive("active", "boolean", shape.OptionalOne),
			shape.Primitive("name", "string", shape.OptionalOne),
			shape.Primitive("alias", "string", shape.OptionalMany),
		),
	)
	if err := r.Freeze(); err != nil {
		t.Fatal(err)
	}
	return r
}

func resolve(t *testing.T, r *shape.Registry, name string) *shape.Shape {
	t.Helper()
	s, err := r.Resolve(name)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func period(t *testing.T, r *shape.Registry, start string) *model.Instance {
	t.Helper()
	p, err := model.Build(resolve(t, r, "Period"), map[string]model.Value{
		"start": primitive.MustParse("dateTime", start),
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuild(t *testing.T) {
	r := testRegistry(t)
	org, err := model.Build(resolve(t, r, "Organization"), map[string]model.Value{
		"id":     primitive.MustParse("id", "1"),
		"active": primitive.Boolean(true),
		"alias":  model.List{primitive.MustParse("string", "a"), primitive.MustParse("string", "b")},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if org.ResourceType() != "Organization" {
		t.Errorf("ResourceType = %q", org.ResourceType())
	}
	id, ok := org.ResourceID()
	if !ok || id != "1" {
		t.Errorf("ResourceID = %q, %v", id, ok)
	}
	if org.Has("name") {
		t.Error("name should be absent")
	}
	if got := len(org.List("alias")); got != 2 {
		t.Errorf("len(alias) = %d", got)
	}

	var names []string
	for f := range org.Fields() {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"id", "active", "alias"}, names); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRejects(t *testing.T) {
	r := testRegistry(t)
	ext := resolve(t, r, "Extension")
	org := resolve(t, r, "Organization")

	tests := []struct {
		name   string
		shape  *shape.Shape
		fields map[string]model.Value
	}{
		{"unknown field", org, map[string]model.Value{"foo": primitive.Boolean(true)}},
		{"discriminator", org, map[string]model.Value{"resourceType": primitive.MustParse("code", "Patient")}},
		{"wrong primitive type", org, map[string]model.Value{"active": primitive.MustParse("string", "yes")}},
		{"single for repeated", org, map[string]model.Value{"alias": primitive.MustParse("string", "a")}},
		{"list for single", org, map[string]model.Value{"name": model.List{primitive.MustParse("string", "a")}}},
		{"wrong nested shape", org, map[string]model.Value{"text": period(t, r, "2020")}},
		{"element as resource", org, map[string]model.Value{"contained": model.List{period(t, r, "2020")}}},
		{"choice without Choice", ext, map[string]model.Value{"value": primitive.MustParse("string", "a")}},
		{"choice unknown variant", ext, map[string]model.Value{"value": model.Choice{Type: "boolean", Value: primitive.Boolean(true)}}},
		{"choice mismatched value", ext, map[string]model.Value{"value": model.Choice{Type: "Period", Value: primitive.MustParse("string", "a")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.Build(tt.shape, tt.fields)
			var ive *model.InvalidValueError
			if !errors.As(err, &ive) {
				t.Fatalf("expected InvalidValueError, got %v", err)
			}
		})
	}
}

func TestWithIsCopyOnWrite(t *testing.T) {
	r := testRegistry(t)
	p := period(t, r, "2020-01-01")

	q, err := p.With("end", primitive.MustParse("dateTime", "2020-12-31"))
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if p.Has("end") {
		t.Error("With changed the original")
	}
	if !q.Has("end") || !q.Has("start") {
		t.Error("copy misses fields")
	}

	s, err := q.Without("start")
	if err != nil {
		t.Fatalf("Without: %v", err)
	}
	if s.Has("start") || !q.Has("start") {
		t.Error("Without must only change the copy")
	}

	if _, err := p.With("nope", nil); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestEmptyListIsAbsent(t *testing.T) {
	r := testRegistry(t)
	org, err := model.Build(resolve(t, r, "Organization"), map[string]model.Value{"alias": model.List{}})
	if err != nil {
		t.Fatal(err)
	}
	if org.Has("alias") {
		t.Error("empty list should be absent")
	}
	bare, _ := model.Build(resolve(t, r, "Organization"), nil)
	if !model.Equal(org, bare) {
		t.Error("empty list and absent list differ")
	}
}

func TestEqual(t *testing.T) {
	r := testRegistry(t)
	ext := resolve(t, r, "Extension")

	build := func(v model.Value) *model.Instance {
		inst, err := model.Build(ext, map[string]model.Value{
			"url":   primitive.MustParse("uri", "http://example.org"),
			"value": v,
		})
		if err != nil {
			t.Fatal(err)
		}
		return inst
	}

	a := build(model.Choice{Type: "Period", Value: period(t, r, "2020")})
	b := build(model.Choice{Type: "Period", Value: period(t, r, "2020")})
	c := build(model.Choice{Type: "Period", Value: period(t, r, "2021")})
	d := build(model.Choice{Type: "string", Value: primitive.MustParse("string", "2020")})

	if !model.Equal(a, b) {
		t.Error("a and b should be equal")
	}
	if model.Equal(a, c) || model.Equal(a, d) {
		t.Error("a should differ from c and d")
	}
	if model.Equal(a, nil) || !model.Equal(nil, nil) {
		t.Error("nil handling")
	}
}

func TestUnrecognized(t *testing.T) {
	r := testRegistry(t)
	b := model.NewBuilder(resolve(t, r, "Period"))

	if err := b.AddUnrecognized("_start", json.RawMessage(`{"id":"a"}`)); err != nil {
		t.Fatalf("AddUnrecognized: %v", err)
	}
	for _, name := range []string{"start", "resourceType", "_start"} {
		if err := b.AddUnrecognized(name, json.RawMessage(`1`)); err == nil {
			t.Errorf("AddUnrecognized(%q) should fail", name)
		}
	}
	if err := b.AddUnrecognized("x", json.RawMessage(`{`)); err == nil {
		t.Error("invalid JSON should fail")
	}

	p := b.Build()
	u := p.Unrecognized()
	if len(u) != 1 || u[0].Name != "_start" {
		t.Fatalf("Unrecognized = %v", u)
	}
	u[0].Name = "changed"
	if p.Unrecognized()[0].Name != "_start" {
		t.Error("Unrecognized exposes internal state")
	}
}

func TestDiscriminated(t *testing.T) {
	r := testRegistry(t)
	b := model.NewBuilder(resolve(t, r, "Period"))
	b.SetDiscriminated(true)
	if err := b.Set("start", primitive.MustParse("dateTime", "2020")); err != nil {
		t.Fatal(err)
	}
	p := b.Build()
	if !p.Discriminated() {
		t.Fatal("Discriminated = false")
	}

	q, err := p.With("end", primitive.MustParse("dateTime", "2021"))
	if err != nil {
		t.Fatal(err)
	}
	if !q.Discriminated() {
		t.Error("With dropped the discriminator flag")
	}

	plain := period(t, r, "2020")
	if plain.Discriminated() {
		t.Error("built instance is discriminated")
	}
	if !model.Equal(p, plain) {
		t.Error("discriminator flag affects equality")
	}
}
