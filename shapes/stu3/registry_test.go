package stu3_test

import (
	"errors"
	"testing"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/shape"
	"github.com/damedic/fhir-codec-go/shapes/r4"
	"github.com/damedic/fhir-codec-go/shapes/stu3"
)

func TestNewRegistry(t *testing.T) {
	r, err := stu3.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if !r.Frozen() {
		t.Error("registry not frozen")
	}
	if r.Version() != stu3.Version {
		t.Errorf("Version = %q", r.Version())
	}
	if r.Len() != len(stu3.Shapes()) {
		t.Errorf("Len = %d, want %d", r.Len(), len(stu3.Shapes()))
	}
}

func TestCatalog(t *testing.T) {
	r := stu3.Default()

	tests := []struct {
		name string
		kind shape.Kind
		base string
	}{
		{"Patient", shape.KindResource, "DomainResource"},
		{"Bundle", shape.KindResource, "Resource"},
		{"ProcedureRequest", shape.KindResource, "DomainResource"},
		{"Timing", shape.KindElement, "Element"},
		{"ClaimPayee", shape.KindBackbone, "BackboneElement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := r.Resolve(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if s.Kind != tt.kind || s.Base != tt.base {
				t.Errorf("got kind %s base %s", s.Kind, s.Base)
			}
		})
	}

	// Claim.payee.resourceType is an element field in STU3
	s, _ := r.Resolve("ClaimPayee")
	if s.Discriminable() {
		t.Error("ClaimPayee is discriminable")
	}
}

func TestIsolatedFromR4(t *testing.T) {
	s3, r := stu3.Default(), r4.Default()
	if s3.Version() == r.Version() {
		t.Fatalf("both registries are version %s", r.Version())
	}

	// shapes that exist in only one release
	tests := []struct {
		name     string
		registry *shape.Registry
	}{
		{"ProcedureRequest", r},
		{"MedicinalProduct", s3},
		{"ExampleScenario", s3},
	}
	for _, tt := range tests {
		_, err := tt.registry.Resolve(tt.name)
		var e *shape.UnknownShapeError
		if !errors.As(err, &e) {
			t.Errorf("%s: expected UnknownShapeError from %s, got %v", tt.name, tt.registry.Version(), err)
		}
	}

	// same name, different fields
	obs, _ := s3.Resolve("Observation")
	if _, ok := obs.FieldByKey("effectiveTiming"); ok {
		t.Error("STU3 Observation has effectiveTiming")
	}
	obs4, _ := r.Resolve("Observation")
	if _, ok := obs4.FieldByKey("effectiveTiming"); !ok {
		t.Error("R4 Observation lacks effectiveTiming")
	}
	if obs == obs4 {
		t.Error("registries share the Observation shape")
	}
}

func TestDecodeWithRelease(t *testing.T) {
	in := []byte(`{"resourceType":"ProcedureRequest","status":"active","intent":"order","code":{"text":"x-ray"},"subject":{"reference":"Patient/1"}}`)

	inst, err := fhirjson.NewDecoder(stu3.Default()).Unmarshal(in)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	s, _ := stu3.Default().Resolve("ProcedureRequest")
	if inst.Shape() != s {
		t.Error("instance not bound to the STU3 shape")
	}

	_, err = fhirjson.NewDecoder(r4.Default()).Unmarshal(in)
	var e *shape.UnknownShapeError
	if !errors.As(err, &e) {
		t.Errorf("expected UnknownShapeError from R4, got %v", err)
	}

	// effective[x] has no Timing variant in STU3
	obs := []byte(`{"resourceType":"Observation","status":"final","code":{"text":"x"},"effectiveTiming":{"event":["2021"]}}`)
	o, err := fhirjson.NewDecoder(stu3.Default()).Unmarshal(obs)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if o.Has("effective") {
		t.Error("STU3 decoded effectiveTiming")
	}
	if u := o.Unrecognized(); len(u) != 1 || u[0].Name != "effectiveTiming" {
		t.Errorf("Unrecognized = %v", u)
	}

	o4, err := fhirjson.NewDecoder(r4.Default()).Unmarshal(obs)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v, _ := o4.Get("effective"); v.(model.Choice).Type != "Timing" {
		t.Errorf("R4 effective = %v", v)
	}
}
