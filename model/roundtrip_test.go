package model_test

import (
	"testing"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/shapes/r4"
	"github.com/damedic/fhir-codec-go/testdata"
	"github.com/damedic/fhir-codec-go/testdata/assert"
)

func TestRoundtripJSON(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	dec := fhirjson.NewDecoder(r4.Default())
	enc := fhirjson.NewEncoder()

	for name, jsonIn := range testdata.GetExamples() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r, err := dec.Unmarshal(jsonIn)
			if err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			jsonOut, err := enc.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}

			assert.JSONEqual(t, string(jsonIn), string(jsonOut))

			again, err := dec.Unmarshal(jsonOut)
			if err != nil {
				t.Fatalf("Failed to unmarshal encoded JSON: %v", err)
			}
			if !model.Equal(r, again) {
				t.Error("decode(encode(r)) differs from r")
			}
		})
	}
}
