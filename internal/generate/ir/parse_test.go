package ir_test

import (
	"encoding/json"
	"testing"

	"github.com/damedic/fhir-codec-go/internal/generate/generatetest"
	"github.com/damedic/fhir-codec-go/internal/generate/ir"
	"github.com/damedic/fhir-codec-go/internal/generate/model"
	"github.com/google/go-cmp/cmp"
)

func parseTestBundle(t *testing.T) []ir.ResourceOrType {
	t.Helper()
	var bundle model.Bundle
	if err := json.Unmarshal([]byte(generatetest.Bundle), &bundle); err != nil {
		t.Fatal(err)
	}
	return ir.Parse(&bundle)
}

func TestParseSkipsPrimitivesAndAbstract(t *testing.T) {
	var names []string
	for _, rt := range parseTestBundle(t) {
		names = append(names, rt.Name)
	}
	want := []string{"Period", "Extension", "Meta", "Narrative", "Age", "Sample"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("parsed types mismatch (-want +got):\n%s", diff)
	}
}

func TestParseResource(t *testing.T) {
	var sample ir.ResourceOrType
	for _, rt := range parseTestBundle(t) {
		if rt.Name == "Sample" {
			sample = rt
		}
	}

	want := ir.ResourceOrType{
		Name:       "Sample",
		IsResource: true,
		Structs: []ir.Struct{
			{
				Name:       "Sample",
				Base:       "DomainResource",
				IsResource: true,
				Fields: []ir.StructField{
					{Name: "status", PossibleTypes: []ir.FieldType{{Name: "code", IsPrimitive: true}}},
					{Name: "component", PossibleTypes: []ir.FieldType{{Name: "SampleComponent"}}, Multiple: true, Optional: true},
					{Name: "when", PossibleTypes: []ir.FieldType{{Name: "Period"}}},
					{Name: "resource", PossibleTypes: []ir.FieldType{{Name: "Resource", IsNestedResource: true}}, Optional: true},
				},
			},
			{
				Name: "SampleComponent",
				Base: "BackboneElement",
				Fields: []ir.StructField{
					{
						Name:          "value",
						PossibleTypes: []ir.FieldType{{Name: "Period"}, {Name: "string", IsPrimitive: true}},
						Polymorph:     true,
						Optional:      true,
					},
					{Name: "related", PossibleTypes: []ir.FieldType{{Name: "SampleComponent"}}, Multiple: true, Optional: true},
				},
			},
		},
	}
	if diff := cmp.Diff(want, sample); diff != "" {
		t.Errorf("IR mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSystemTypes(t *testing.T) {
	for _, rt := range parseTestBundle(t) {
		if rt.Name != "Extension" {
			continue
		}
		url := rt.Structs[0].Fields[0]
		if diff := cmp.Diff(ir.StructField{Name: "url", PossibleTypes: []ir.FieldType{{Name: "uri", IsPrimitive: true}}}, url); diff != "" {
			t.Errorf("Extension.url mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestParseConstraintType(t *testing.T) {
	for _, rt := range parseTestBundle(t) {
		if rt.Name != "Age" {
			continue
		}
		s := rt.Structs[0]
		if s.Name != "Age" || s.Base != "Element" || len(s.Fields) != 1 || s.Fields[0].Name != "value" {
			t.Errorf("unexpected Age struct %+v", s)
		}
	}
}

func TestCardinality(t *testing.T) {
	tests := []struct {
		field ir.StructField
		want  string
	}{
		{ir.StructField{}, "1..1"},
		{ir.StructField{Optional: true}, "0..1"},
		{ir.StructField{Multiple: true}, "1..*"},
		{ir.StructField{Optional: true, Multiple: true}, "0..*"},
	}
	for _, tt := range tests {
		if got := tt.field.Cardinality(); got != tt.want {
			t.Errorf("Cardinality() = %s, want %s", got, tt.want)
		}
	}
}

func TestParseNestedElementBase(t *testing.T) {
	in := `{"entry":[{"resource":{
		"resourceType":"StructureDefinition","name":"Timing","kind":"complex-type","type":"Timing",
		"baseDefinition":"http://hl7.org/fhir/StructureDefinition/BackboneElement","derivation":"specialization",
		"snapshot":{"element":[
			{"path":"Timing","min":0,"max":"*"},
			{"path":"Timing.event","min":0,"max":"*","type":[{"code":"dateTime"}]},
			{"path":"Timing.repeat","min":0,"max":"1","type":[{"code":"Element"}]},
			{"path":"Timing.repeat.id","min":0,"max":"1","type":[{"code":"http://hl7.org/fhirpath/System.String"}]},
			{"path":"Timing.repeat.extension","min":0,"max":"*","type":[{"code":"Extension"}]},
			{"path":"Timing.repeat.count","min":0,"max":"1","type":[{"code":"positiveInt"}]}
		]}
	}}]}`
	var bundle model.Bundle
	if err := json.Unmarshal([]byte(in), &bundle); err != nil {
		t.Fatal(err)
	}

	rts := ir.Parse(&bundle)
	if len(rts) != 1 {
		t.Fatalf("parsed %d types", len(rts))
	}
	var bases []string
	for _, s := range rts[0].Structs {
		bases = append(bases, s.Name+":"+s.Base)
	}
	if diff := cmp.Diff([]string{"Timing:BackboneElement", "TimingRepeat:Element"}, bases); diff != "" {
		t.Errorf("bases mismatch (-want +got):\n%s", diff)
	}
	repeat := rts[0].Structs[1]
	if len(repeat.Fields) != 1 || repeat.Fields[0].Name != "count" {
		t.Errorf("TimingRepeat fields = %+v", repeat.Fields)
	}
}
