package fhirjson_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/damedic/fhir-codec-go/shape"
	"github.com/damedic/fhir-codec-go/shapes/r4"
	"github.com/google/go-cmp/cmp"
)

func TestDecodePeriod(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())
	p, err := dec.Unmarshal([]byte(`{"resourceType":"Period","start":"2020-01-01","end":"2020-01-02"}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.ShapeName() != "Period" {
		t.Errorf("ShapeName = %q", p.ShapeName())
	}
	for field, want := range map[string]string{"start": "2020-01-01", "end": "2020-01-02"} {
		v, ok := p.Primitive(field)
		if !ok {
			t.Fatalf("%s missing", field)
		}
		if v.String() != want {
			t.Errorf("%s = %q, want %q", field, v.String(), want)
		}
		if dt := v.(primitive.DateTime); dt.Precision != primitive.PrecisionDay {
			t.Errorf("%s precision = %s", field, dt.Precision)
		}
	}
	if p.Has("id") || p.Has("extension") {
		t.Error("absent fields reported present")
	}
}

func TestDecodeNestedAndChoice(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())
	ra, err := dec.Unmarshal([]byte(`{
		"resourceType": "RiskAssessment",
		"status": "final",
		"subject": {"reference": "Patient/example"},
		"prediction": [
			{"probabilityDecimal": 0.40},
			{"probabilityRange": {"low": {"value": 1}}, "whenPeriod": {"start": "2020"}}
		]
	}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	preds := ra.List("prediction")
	if len(preds) != 2 {
		t.Fatalf("len(prediction) = %d", len(preds))
	}
	first, _ := preds[0].(*model.Instance).Get("probability")
	c := first.(model.Choice)
	if c.Type != "decimal" || c.Value.(primitive.Value).String() != "0.40" {
		t.Errorf("probability = %+v", c)
	}
	second, _ := preds[1].(*model.Instance).Get("probability")
	if second.(model.Choice).Type != "Range" {
		t.Errorf("probability type = %s", second.(model.Choice).Type)
	}
}

func TestDecodeErrors(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())

	tests := []struct {
		name  string
		in    string
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown shape",
			in:   `{"resourceType":"NotARealResource","id":"1"}`,
			check: func(t *testing.T, err error) {
				var e *shape.UnknownShapeError
				if !errors.As(err, &e) || e.Name != "NotARealResource" {
					t.Errorf("expected UnknownShapeError, got %v", err)
				}
			},
		},
		{
			name: "missing discriminator",
			in:   `{"id":"1"}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.MissingRequiredFieldError
				if !errors.As(err, &e) || e.Field != "resourceType" {
					t.Errorf("expected MissingRequiredFieldError, got %v", err)
				}
			},
		},
		{
			name: "missing required field",
			in:   `{"resourceType":"RiskAssessment","subject":{"reference":"Patient/1"}}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.MissingRequiredFieldError
				if !errors.As(err, &e) {
					t.Fatalf("expected MissingRequiredFieldError, got %v", err)
				}
				want := fhirjson.MissingRequiredFieldError{Path: "RiskAssessment.status", Shape: "RiskAssessment", Field: "status"}
				if diff := cmp.Diff(want, *e); diff != "" {
					t.Errorf("error mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "required field null",
			in:   `{"resourceType":"Narrative","status":null,"div":"<div/>"}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.MissingRequiredFieldError
				if !errors.As(err, &e) || e.Field != "status" {
					t.Errorf("expected MissingRequiredFieldError, got %v", err)
				}
			},
		},
		{
			name: "required list empty",
			in:   `{"resourceType":"OperationOutcome","issue":[]}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.MissingRequiredFieldError
				if !errors.As(err, &e) || e.Field != "issue" {
					t.Errorf("expected MissingRequiredFieldError, got %v", err)
				}
			},
		},
		{
			name: "ambiguous choice",
			in: `{"resourceType":"RiskAssessment","status":"final","subject":{"reference":"Patient/1"},
				"prediction":[{"probabilityDecimal":0.5,"probabilityRange":{"low":{"value":1}}}]}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.AmbiguousChoiceError
				if !errors.As(err, &e) {
					t.Fatalf("expected AmbiguousChoiceError, got %v", err)
				}
				want := fhirjson.AmbiguousChoiceError{
					Path:  "RiskAssessment.prediction[0].probability",
					Shape: "RiskAssessmentPrediction",
					Field: "probability",
					Keys:  []string{"probabilityDecimal", "probabilityRange"},
				}
				if diff := cmp.Diff(want, *e); diff != "" {
					t.Errorf("error mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "ambiguous choice with timing",
			in: `{"resourceType":"Observation","status":"final","code":{"text":"x"},
				"effectiveDateTime":"2021-03-04","effectiveTiming":{"event":["2021-03-04"]}}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.AmbiguousChoiceError
				if !errors.As(err, &e) {
					t.Fatalf("expected AmbiguousChoiceError, got %v", err)
				}
				if diff := cmp.Diff([]string{"effectiveDateTime", "effectiveTiming"}, e.Keys); diff != "" {
					t.Errorf("keys mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "primitive grammar",
			in:   `{"resourceType":"Observation","status":"final","code":{"text":"x"},"component":[{"code":{"text":"a"}},{"code":{"text":"b"},"valueQuantity":{"value":"abc"}}]}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.PrimitiveParseError
				if !errors.As(err, &e) {
					t.Fatalf("expected PrimitiveParseError, got %v", err)
				}
				if e.Path != "Observation.component[1].valueQuantity.value" || e.Type != "decimal" {
					t.Errorf("got path %s type %s", e.Path, e.Type)
				}
				var se *primitive.SyntaxError
				if !errors.As(err, &se) {
					t.Error("PrimitiveParseError does not wrap SyntaxError")
				}
			},
		},
		{
			name: "invalid month",
			in:   `{"resourceType":"Period","start":"2017-13"}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.PrimitiveParseError
				if !errors.As(err, &e) || e.Field != "start" {
					t.Errorf("expected PrimitiveParseError, got %v", err)
				}
			},
		},
		{
			name: "date time without seconds",
			in:   `{"resourceType":"Period","start":"2015-01-31T21:32"}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.PrimitiveParseError
				if !errors.As(err, &e) {
					t.Errorf("expected PrimitiveParseError, got %v", err)
				}
			},
		},
		{
			name: "null in primitive array",
			in:   `{"resourceType":"Organization","alias":["a",null]}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.PrimitiveParseError
				if !errors.As(err, &e) || e.Path != "Organization.alias[1]" {
					t.Errorf("expected PrimitiveParseError at alias[1], got %v", err)
				}
			},
		},
		{
			name: "repeated field not an array",
			in:   `{"resourceType":"Organization","alias":"a"}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.StructureError
				if !errors.As(err, &e) || e.Field != "alias" {
					t.Errorf("expected StructureError, got %v", err)
				}
			},
		},
		{
			name: "nested discriminator mismatch",
			in:   `{"resourceType":"Organization","partOf":{"resourceType":"Period"}}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.StructureError
				if !errors.As(err, &e) || e.Path != "Organization.partOf" {
					t.Errorf("expected StructureError, got %v", err)
				}
			},
		},
		{
			name: "contained element",
			in:   `{"resourceType":"Organization","contained":[{"resourceType":"Period"}]}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.StructureError
				if !errors.As(err, &e) {
					t.Errorf("expected StructureError, got %v", err)
				}
			},
		},
		{
			name: "contained unknown",
			in:   `{"resourceType":"Organization","contained":[{"resourceType":"Foo"}]}`,
			check: func(t *testing.T, err error) {
				var e *shape.UnknownShapeError
				if !errors.As(err, &e) || e.Path != "Organization.contained[0]" {
					t.Errorf("expected UnknownShapeError, got %v", err)
				}
			},
		},
		{
			name: "malformed JSON",
			in:   `{"resourceType":"Period",`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.SyntaxError
				if !errors.As(err, &e) {
					t.Errorf("expected SyntaxError, got %v", err)
				}
			},
		},
		{
			name: "duplicate key",
			in:   `{"resourceType":"Period","start":"2020","start":"2021"}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.SyntaxError
				if !errors.As(err, &e) {
					t.Errorf("expected SyntaxError, got %v", err)
				}
			},
		},
		{
			name: "trailing data",
			in:   `{"resourceType":"Period"} {}`,
			check: func(t *testing.T, err error) {
				var e *fhirjson.SyntaxError
				if !errors.As(err, &e) {
					t.Errorf("expected SyntaxError, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := dec.Unmarshal([]byte(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if inst != nil {
				t.Error("partial instance returned")
			}
			tt.check(t, err)
		})
	}
}

func TestMissingChoice(t *testing.T) {
	r := shape.NewRegistry("4.0.1")
	r.MustRegister(
		shape.Element("Extension",
			shape.Primitive("url", "uri", shape.RequiredOne),
		),
		shape.Element("Dosage",
			shape.Choice("asNeeded", shape.RequiredOne,
				shape.PrimitiveVariant("boolean"),
				shape.PrimitiveVariant("string"),
			),
		),
	)
	if err := r.Freeze(); err != nil {
		t.Fatal(err)
	}

	_, err := fhirjson.NewDecoder(r).Unmarshal([]byte(`{"resourceType":"Dosage","asNeededBoolean":null}`))
	var e *fhirjson.MissingChoiceError
	if !errors.As(err, &e) || e.Field != "asNeeded" {
		t.Errorf("expected MissingChoiceError, got %v", err)
	}

	d, err := fhirjson.NewDecoder(r).Unmarshal([]byte(`{"resourceType":"Dosage","asNeededString":"when needed"}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	v, _ := d.Get("asNeeded")
	if v.(model.Choice).Type != "string" {
		t.Errorf("got %+v", v)
	}
}

func TestUnknownFields(t *testing.T) {
	in := `{"resourceType":"Patient","birthDate":"1974-12-25","_birthDate":{"extension":[{"url":"http://example.org","valueString":"x"}]},"futureField":[1,2.50,"a<b"]}`

	p, err := fhirjson.NewDecoder(r4.Default()).Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []model.RawField{
		{Name: "_birthDate", Value: []byte(`{"extension":[{"url":"http://example.org","valueString":"x"}]}`)},
		{Name: "futureField", Value: []byte(`[1,2.50,"a<b"]`)},
	}
	if diff := cmp.Diff(want, p.Unrecognized()); diff != "" {
		t.Errorf("Unrecognized mismatch (-want +got):\n%s", diff)
	}

	strict := fhirjson.NewDecoder(r4.Default(), fhirjson.DisallowUnknownFields())
	_, err = strict.Unmarshal([]byte(in))
	var e *fhirjson.UnknownFieldError
	if !errors.As(err, &e) || e.Field != "futureField" {
		t.Errorf("expected UnknownFieldError for futureField, got %v", err)
	}

	p, err = strict.Unmarshal([]byte(`{"resourceType":"Patient","birthDate":"1974-12-25","_birthDate":{"id":"b1"},"_gender":{"id":"g1"}}`))
	if err != nil {
		t.Fatalf("primitive companions rejected: %v", err)
	}
	if len(p.Unrecognized()) != 2 {
		t.Errorf("Unrecognized = %v", p.Unrecognized())
	}

	// a choice key counts as described
	if _, err := strict.Unmarshal([]byte(`{"resourceType":"Patient","deceasedBoolean":false,"_deceasedBoolean":{"id":"d"}}`)); err != nil {
		t.Errorf("choice companion rejected: %v", err)
	}

	for _, key := range []string{"_futureField", "_", "__birthDate"} {
		_, err := strict.Unmarshal([]byte(`{"resourceType":"Patient","` + key + `":{}}`))
		if !errors.As(err, &e) || e.Field != key {
			t.Errorf("expected UnknownFieldError for %s, got %v", key, err)
		}
	}
}

func TestDecodeEncounter(t *testing.T) {
	in := `{"resourceType":"Encounter","status":"finished","class":{"system":"http://terminology.hl7.org/CodeSystem/v3-ActCode","code":"AMB"},
		"statusHistory":[{"status":"arrived","period":{"start":"2021-03-04T10:00:00Z"}}],
		"subject":{"reference":"Patient/1"},
		"contained":[{"resourceType":"MedicationRequest","status":"active","intent":"order","subject":{"reference":"Patient/1"},
			"medicationCodeableConcept":{"text":"ibuprofen"},
			"dosageInstruction":[{"timing":{"repeat":{"boundsDuration":{"value":5,"unit":"d"},"frequency":3,"period":1,"periodUnit":"d"}}}]}]}`

	enc, err := fhirjson.NewDecoder(r4.Default(), fhirjson.DisallowUnknownFields()).Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if enc.Shape().Name != "Encounter" {
		t.Errorf("shape = %s", enc.Shape().Name)
	}

	v, _ := enc.Get("contained")
	med := v.(model.List)[0].(*model.Instance)
	if med.Shape().Name != "MedicationRequest" {
		t.Fatalf("contained shape = %s", med.Shape().Name)
	}
	v, _ = med.Get("dosageInstruction")
	dosage := v.(model.List)[0].(*model.Instance)
	v, _ = dosage.Get("timing")
	v, _ = v.(*model.Instance).Get("repeat")
	repeat := v.(*model.Instance)
	if repeat.Shape().Name != "TimingRepeat" {
		t.Errorf("repeat shape = %s", repeat.Shape().Name)
	}
	v, _ = repeat.Get("bounds")
	if c := v.(model.Choice); c.Type != "Duration" {
		t.Errorf("bounds type = %s", c.Type)
	}

	out, err := fhirjson.NewEncoder().Marshal(enc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	again, err := fhirjson.NewDecoder(r4.Default()).Unmarshal(out)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !model.Equal(enc, again) {
		t.Error("encounter changed in round trip")
	}
}

func TestUnmarshalElement(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())

	q, err := dec.UnmarshalElement([]byte(`{"value":1.50,"unit":"mmol/l"}`), "Quantity")
	if err != nil {
		t.Fatalf("UnmarshalElement: %v", err)
	}
	v, _ := q.Primitive("value")
	if v.String() != "1.50" {
		t.Errorf("value = %s", v)
	}

	if _, err := dec.UnmarshalElement([]byte(`{"resourceType":"Period"}`), "Quantity"); err == nil {
		t.Error("expected error for mismatching discriminator")
	}
	if _, err := dec.UnmarshalElement([]byte(`{"resourceType":"Quantity","value":1}`), "Quantity"); err != nil {
		t.Errorf("matching discriminator rejected: %v", err)
	}
}

func TestDecodeTree(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())
	inst, err := dec.DecodeTree(map[string]any{
		"resourceType": "Observation",
		"status":       "final",
		"code":         map[string]any{"text": "weight"},
		"valueQuantity": map[string]any{
			"value": 72.4,
			"unit":  "kg",
		},
		"zeta":  true,
		"alpha": nil,
	})
	if err != nil {
		t.Fatalf("DecodeTree: %v", err)
	}
	v, _ := inst.Get("value")
	q := v.(model.Choice).Value.(*model.Instance)
	val, _ := q.Primitive("value")
	if val.String() != "72.4" {
		t.Errorf("value = %s", val)
	}

	var names []string
	for _, u := range inst.Unrecognized() {
		names = append(names, u.Name)
	}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, names); diff != "" {
		t.Errorf("Unrecognized order mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeReader(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())
	r := strings.NewReader(`{"resourceType":"Period","start":"2020"}` + "\n" + `{"resourceType":"Period","end":"2021"}`)

	_, err := dec.Decode(r)
	var e *fhirjson.SyntaxError
	if !errors.As(err, &e) {
		t.Fatalf("expected SyntaxError for trailing document, got %v", err)
	}

	p, err := dec.Decode(strings.NewReader(" \n" + `{"resourceType":"Period","start":"2020"}` + "\n\t "))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !p.Has("start") {
		t.Error("period lacks start")
	}
}

func TestStream(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())
	s := dec.NewStream(strings.NewReader(`{"resourceType":"Period","start":"2020"}` + "\n" + `{"resourceType":"Period","end":"2021"}{"resourceType":"Period"}`))

	var fields []string
	for s.More() {
		p, err := s.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		switch {
		case p.Has("start"):
			fields = append(fields, "start")
		case p.Has("end"):
			fields = append(fields, "end")
		default:
			fields = append(fields, "-")
		}
	}
	if diff := cmp.Diff([]string{"start", "end", "-"}, fields); diff != "" {
		t.Errorf("documents mismatch (-want +got):\n%s", diff)
	}
	for range 2 {
		if _, err := s.Next(); !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF, got %v", err)
		}
	}
}

func TestStreamErrors(t *testing.T) {
	dec := fhirjson.NewDecoder(r4.Default())
	s := dec.NewStream(strings.NewReader(`{"resourceType":"Period","start":"never"} {"resourceType":"Period","end":"2021"} {"resourceType":`))

	_, err := s.Next()
	var pe *fhirjson.PrimitiveParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PrimitiveParseError, got %v", err)
	}

	// a document that does not fit its shape does not end the stream
	p, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !p.Has("end") {
		t.Error("second period lacks end")
	}

	_, err = s.Next()
	var se *fhirjson.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if _, again := s.Next(); again != err {
		t.Errorf("syntax error not kept: %v", again)
	}
	if s.More() {
		t.Error("More after syntax error")
	}
}
