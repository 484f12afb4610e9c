package r4_test

import (
	"testing"

	"github.com/damedic/fhir-codec-go/shape"
	"github.com/damedic/fhir-codec-go/shapes/r4"
)

func TestNewRegistry(t *testing.T) {
	r, err := r4.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if !r.Frozen() {
		t.Error("registry not frozen")
	}
	if r.Version() != r4.Version {
		t.Errorf("Version = %q", r.Version())
	}
	if r.Len() != len(r4.Shapes()) {
		t.Errorf("Len = %d, want %d", r.Len(), len(r4.Shapes()))
	}
	// every resource, datatype and backbone element of the release
	if r.Len() < 600 {
		t.Errorf("Len = %d, want the full catalog", r.Len())
	}
}

func TestCatalog(t *testing.T) {
	r := r4.Default()

	tests := []struct {
		name string
		kind shape.Kind
		base string
	}{
		{"Organization", shape.KindResource, "DomainResource"},
		{"Bundle", shape.KindResource, "Resource"},
		{"Period", shape.KindElement, "Element"},
		{"RiskAssessmentPrediction", shape.KindBackbone, "BackboneElement"},
		{"Encounter", shape.KindResource, "DomainResource"},
		{"EncounterStatusHistory", shape.KindBackbone, "BackboneElement"},
		{"MedicationRequest", shape.KindResource, "DomainResource"},
		{"Timing", shape.KindBackbone, "BackboneElement"},
		{"TimingRepeat", shape.KindElement, "Element"},
		{"Dosage", shape.KindBackbone, "BackboneElement"},
		{"ElementDefinitionSlicingDiscriminator", shape.KindElement, "Element"},
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
}

func TestChoiceKeys(t *testing.T) {
	r := r4.Default()

	tests := []struct {
		shape, key, field, variant string
	}{
		{"Observation", "effectiveDateTime", "effective", "dateTime"},
		{"Observation", "valueQuantity", "value", "Quantity"},
		{"Observation", "effectiveTiming", "effective", "Timing"},
		{"Extension", "valueTiming", "value", "Timing"},
		{"Extension", "valueDosage", "value", "Dosage"},
		{"Extension", "valueMeta", "value", "Meta"},
		{"ParametersParameter", "valueUsageContext", "value", "UsageContext"},
		{"TimingRepeat", "boundsDuration", "bounds", "Duration"},
		{"MedicationRequest", "reportedBoolean", "reported", "boolean"},
		{"RiskAssessmentPrediction", "probabilityDecimal", "probability", "decimal"},
		{"RiskAssessmentPrediction", "whenRange", "when", "Range"},
		{"Extension", "valueBase64Binary", "value", "base64Binary"},
		{"Extension", "valueUuid", "value", "uuid"},
		{"Patient", "multipleBirthInteger", "multipleBirth", "integer"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s, err := r.Resolve(tt.shape)
			if err != nil {
				t.Fatal(err)
			}
			f, ok := s.FieldByKey(tt.key)
			if !ok || f.Name != tt.field {
				t.Fatalf("FieldByKey(%s) = %v, %v", tt.key, f.Name, ok)
			}
			v, ok := f.Variant(tt.key)
			if !ok || v.Type != tt.variant {
				t.Errorf("Variant(%s) = %v, %v", tt.key, v, ok)
			}
		})
	}
}

func TestRequiredFields(t *testing.T) {
	r := r4.Default()
	s, _ := r.Resolve("OperationOutcome")
	f, ok := s.Field("issue")
	if !ok || f.Cardinality != shape.RequiredMany {
		t.Errorf("OperationOutcome.issue = %v", f)
	}
	s, _ = r.Resolve("RiskAssessment")
	f, _ = s.Field("status")
	if f.Cardinality != shape.RequiredOne {
		t.Errorf("RiskAssessment.status = %v", f.Cardinality)
	}
}
