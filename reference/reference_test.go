package reference_test

import (
	"testing"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/reference"
	"github.com/damedic/fhir-codec-go/shapes/r4"
	"github.com/damedic/fhir-codec-go/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want reference.Ref
	}{
		{"Patient/123", reference.Ref{Kind: reference.KindRelative, Type: "Patient", ID: "123"}},
		{"Patient/123/_history/2", reference.Ref{Kind: reference.KindRelative, Type: "Patient", ID: "123", Version: "2"}},
		{"#p1", reference.Ref{Kind: reference.KindContained, ID: "p1"}},
		{"#", reference.Ref{Kind: reference.KindContained}},
		{"urn:uuid:61ebe359-bfdc-4613-8bf2-c5e300945f0a", reference.Ref{Kind: reference.KindURN}},
		{"urn:oid:1.2.3", reference.Ref{Kind: reference.KindURN}},
		{"http://example.org/fhir/Organization/1", reference.Ref{Kind: reference.KindAbsolute, Type: "Organization", ID: "1", Base: "http://example.org/fhir"}},
		{"https://example.org/Observation/o/_history/3", reference.Ref{Kind: reference.KindAbsolute, Type: "Observation", ID: "o", Version: "3", Base: "https://example.org"}},
		{"http://example.org/some/document.pdf", reference.Ref{Kind: reference.KindAbsolute}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := reference.Parse(tt.in)
			require.NoError(t, err)
			tt.want.Literal = tt.in
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "Patient", "patient/1", "Patient/1/2", "urn:uuid:nope", "urn:oid:abc", "#a b"} {
		t.Run(in, func(t *testing.T) {
			_, err := reference.Parse(in)
			var e *reference.InvalidReferenceError
			assert.ErrorAs(t, err, &e)
		})
	}
}

func decode(t *testing.T, b []byte) *model.Instance {
	t.Helper()
	inst, err := fhirjson.NewDecoder(r4.Default()).Unmarshal(b)
	require.NoError(t, err)
	return inst
}

func TestFromBundle(t *testing.T) {
	bundle := decode(t, testdata.GetExample("bundle-transaction.json"))
	r, err := reference.FromBundle(bundle)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())

	entries := bundle.List("entry")
	obsEntry := entries[2].(*model.Instance)
	obs, ok := obsEntry.Instance("resource")
	require.True(t, ok)

	subject, ok := obs.Instance("subject")
	require.True(t, ok)
	patient, err := r.Resolve(subject)
	require.NoError(t, err)
	assert.Equal(t, "Patient", patient.ResourceType())

	performer := obs.List("performer")[0].(*model.Instance)
	org, err := r.Resolve(performer)
	require.NoError(t, err)
	name, _ := org.Primitive("name")
	assert.Equal(t, "Acme Healthcare", name.String())

	byURL, err := r.ResolveLiteral("http://example.org/fhir/Organization/1")
	require.NoError(t, err)
	assert.Same(t, org, byURL)

	_, err = reference.FromBundle(obs)
	assert.Error(t, err)
}

func TestResolveStrictAndLenient(t *testing.T) {
	org := decode(t, []byte(`{"resourceType":"Organization","id":"1","meta":{"versionId":"2"},"identifier":[{"system":"http://example.org/ids","value":"acme"}]}`))

	tests := []struct {
		name    string
		ref     string
		found   bool
		invalid bool
	}{
		{"relative", `{"resourceType":"Reference","reference":"Organization/1"}`, true, false},
		{"typed", `{"resourceType":"Reference","reference":"Organization/1","type":"Organization"}`, true, false},
		{"version", `{"resourceType":"Reference","reference":"Organization/1/_history/2"}`, true, false},
		{"identifier", `{"resourceType":"Reference","identifier":{"system":"http://example.org/ids","value":"acme"}}`, true, false},
		{"missing", `{"resourceType":"Reference","reference":"Organization/2"}`, false, false},
		{"type mismatch", `{"resourceType":"Reference","reference":"Organization/1","type":"Patient"}`, false, false},
		{"old version", `{"resourceType":"Reference","reference":"Organization/1/_history/1"}`, false, false},
		{"unknown identifier", `{"resourceType":"Reference","identifier":{"value":"other"}}`, false, false},
		{"display only", `{"resourceType":"Reference","display":"Acme"}`, false, false},
		{"contained", `{"resourceType":"Reference","reference":"#x"}`, false, false},
		{"malformed", `{"resourceType":"Reference","reference":"not a reference"}`, false, true},
	}

	strict := reference.NewResolver([]*model.Instance{org})
	lenient := reference.NewResolver([]*model.Instance{org}, reference.WithMode(reference.Lenient))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := decode(t, []byte(tt.ref))

			got, err := strict.Resolve(ref)
			switch {
			case tt.found:
				require.NoError(t, err)
				assert.Same(t, org, got)
			case tt.invalid:
				var e *reference.InvalidReferenceError
				assert.ErrorAs(t, err, &e)
			default:
				var e *reference.DanglingReferenceError
				assert.ErrorAs(t, err, &e)
				assert.Nil(t, got)
			}

			got, err = lenient.Resolve(ref)
			switch {
			case tt.found:
				require.NoError(t, err)
				assert.Same(t, org, got)
			case tt.invalid:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Nil(t, got)
			}
		})
	}
}

func TestResolveContained(t *testing.T) {
	cond := decode(t, testdata.GetExample("condition-example.json"))
	r := reference.NewResolver(nil)

	evidence := cond.List("evidence")[0].(*model.Instance)
	detail := evidence.List("detail")[0].(*model.Instance)

	obs, err := r.ResolveContained(cond, detail)
	require.NoError(t, err)
	assert.Equal(t, "Observation", obs.ResourceType())
	id, _ := obs.ResourceID()
	assert.Equal(t, "obs1", id)

	self := decode(t, []byte(`{"resourceType":"Reference","reference":"#"}`))
	got, err := r.ResolveContained(cond, self)
	require.NoError(t, err)
	assert.Same(t, cond, got)

	missing := decode(t, []byte(`{"resourceType":"Reference","reference":"#nope"}`))
	_, err = r.ResolveContained(cond, missing)
	var e *reference.DanglingReferenceError
	assert.ErrorAs(t, err, &e)
}
