package fhirjson_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/damedic/fhir-codec-go/shapes/r4"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeIdentical(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"period", `{"resourceType":"Period","start":"2020-01-01","end":"2020-01-02"}`},
		{"decimal precision", `{"resourceType":"Quantity","value":1.50}`},
		{"decimal as string", `{"resourceType":"Quantity","value":"1.50"}`},
		{"date granularity", `{"resourceType":"Period","start":"2020","end":"2020-01-01T10:00:00+01:00"}`},
		{"month granularity", `{"resourceType":"Period","start":"2020-01"}`},
		{"html not escaped", `{"resourceType":"Narrative","status":"generated","div":"<div>a & b</div>"}`},
		{"unrecognized last", `{"resourceType":"Period","start":"2020","_start":{"id":"x"},"unknown":[null,true]}`},
		{
			"contained resource",
			`{"resourceType":"Condition","contained":[{"resourceType":"Observation","id":"o","status":"final","code":{"text":"x"}}],"subject":{"reference":"#o"}}`,
		},
		{
			"bundle entry resource",
			`{"resourceType":"Bundle","type":"collection","entry":[{"fullUrl":"urn:uuid:61ebe359-bfdc-4613-8bf2-c5e300945f0a","resource":{"resourceType":"Patient","active":true}}]}`,
		},
		{
			"nested discriminator",
			`{"resourceType":"Organization","contact":[{"name":{"resourceType":"HumanName","text":"x"}}]}`,
		},
		{
			"element field named like the discriminator",
			`{"resourceType":"ExampleScenario","status":"draft","instance":[{"resourceId":"p1","resourceType":"Patient"}]}`,
		},
		{
			"choice variants",
			`{"resourceType":"Observation","status":"final","code":{"text":"x"},"effectivePeriod":{"start":"2020"},"valueCodeableConcept":{"text":"positive"}}`,
		},
	}

	dec := fhirjson.NewDecoder(r4.Default())
	enc := fhirjson.NewEncoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := dec.Unmarshal([]byte(tt.in))
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			out, err := enc.Marshal(inst)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if diff := cmp.Diff(tt.in, string(out)); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	in := `{"end":"2020-01-02","start":"2020-01-01","resourceType":"Period"}`
	inst, err := fhirjson.NewDecoder(r4.Default()).Unmarshal([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out, err := fhirjson.NewEncoder().Marshal(inst)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"resourceType":"Period","start":"2020-01-01","end":"2020-01-02"}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeNullsDropped(t *testing.T) {
	in := `{"resourceType":"Organization","name":null,"alias":[],"active":true}`
	inst, err := fhirjson.NewDecoder(r4.Default()).Unmarshal([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out, err := fhirjson.NewEncoder().Marshal(inst)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"resourceType":"Organization","active":true}`, string(out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRejectsMissingRequired(t *testing.T) {
	s, _ := r4.Default().Resolve("Narrative")
	inst, err := model.Build(s, map[string]model.Value{
		"status": primitive.MustParse("code", "generated"),
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = fhirjson.NewEncoder().Marshal(inst)
	var e *fhirjson.MissingRequiredFieldError
	if !errors.As(err, &e) || e.Field != "div" || e.Path != "Narrative.div" {
		t.Errorf("expected MissingRequiredFieldError for div, got %v", err)
	}
}

func TestEncodeBuiltInstance(t *testing.T) {
	reg := r4.Default()
	periodShape, _ := reg.Resolve("Period")
	predShape, _ := reg.Resolve("RiskAssessmentPrediction")

	period, err := model.Build(periodShape, map[string]model.Value{
		"start": primitive.MustParse("dateTime", "2020"),
	})
	if err != nil {
		t.Fatal(err)
	}
	prob, _ := primitive.NewDecimal("0.050")
	pred, err := model.Build(predShape, map[string]model.Value{
		"probability": model.Choice{Type: "decimal", Value: prob},
		"when":        model.Choice{Type: "Period", Value: period},
	})
	if err != nil {
		t.Fatal(err)
	}

	out, err := fhirjson.NewEncoder().Marshal(pred)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"resourceType":"RiskAssessmentPrediction","probabilityDecimal":0.050,"whenPeriod":{"start":"2020"}}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeIndent(t *testing.T) {
	inst, err := fhirjson.NewDecoder(r4.Default()).Unmarshal([]byte(`{"resourceType":"Period","start":"2020"}`))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := fhirjson.NewEncoder(fhirjson.Indent("", "  ")).Encode(&buf, inst); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"resourceType\": \"Period\",\n  \"start\": \"2020\"\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripLaw(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())
	enc := fhirjson.NewEncoder()

	inputs := []string{
		`{"resourceType":"Patient","id":"p","name":[{"given":["A","B"]}],"multipleBirthInteger":2,"_gender":{"extension":[]}}`,
		`{"resourceType":"Parameters","parameter":[{"name":"a","part":[{"name":"b","valueDecimal":1.000}]}]}`,
		`{"resourceType":"Extension","url":"http://example.org","valueUuid":"urn:uuid:c757873d-ec9a-4326-a141-556f43239520"}`,
	}
	for _, in := range inputs {
		first, err := dec.Unmarshal([]byte(in))
		if err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		b, err := enc.Marshal(first)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		second, err := dec.Unmarshal(b)
		if err != nil {
			t.Fatalf("Unmarshal encoded: %v", err)
		}
		if !model.Equal(first, second) {
			t.Errorf("round trip changed %s into %s", in, b)
		}
	}
}
