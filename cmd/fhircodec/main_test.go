package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/damedic/fhir-codec-go/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--env", "test"))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "patient.json", string(testdata.GetExample("patient-example.json")))
	bad := writeFile(t, "bad.json", `{"resourceType":"Patient","birthDate":"2017-02-30"}`)

	out, _, err := execute(t, "", "validate", good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok (Patient)\n", out)

	out, _, err = execute(t, "", "validate", good, bad)
	assert.EqualError(t, err, "1 of 2 files invalid")
	assert.Contains(t, out, bad+": ")
	assert.Contains(t, out, "Patient.birthDate")
}

func TestValidateDisallowUnknownFields(t *testing.T) {
	in := `{"resourceType":"Period","start":"2020","extra":1}`

	_, _, err := execute(t, in, "validate", "-")
	require.NoError(t, err)

	_, _, err = execute(t, in, "validate", "-", "--disallow-unknown-fields")
	assert.Error(t, err)
}

func TestValidateRelease(t *testing.T) {
	in := `{"resourceType":"ProcedureRequest","status":"active","intent":"order","code":{"text":"x-ray"},"subject":{"reference":"Patient/1"}}`

	_, _, err := execute(t, in, "validate", "-")
	assert.Error(t, err)

	out, _, err := execute(t, in, "validate", "-", "--fhir-version", "stu3")
	require.NoError(t, err)
	assert.Contains(t, out, "ok (ProcedureRequest)")

	_, _, err = execute(t, in, "validate", "-", "--fhir-version", "R5")
	assert.Error(t, err)
}

func TestRoundtrip(t *testing.T) {
	in := `{ "start": "2020", "resourceType": "Period" }`

	out, _, err := execute(t, in, "roundtrip", "-")
	require.NoError(t, err)
	assert.Equal(t, `{"resourceType":"Period","start":"2020"}`+"\n", out)

	out, _, err = execute(t, in, "roundtrip", "-", "--indent", "2")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"resourceType\": \"Period\",\n  \"start\": \"2020\"\n}\n", out)
}

func TestNDJSON(t *testing.T) {
	in := `{"resourceType":"Patient","id":"a"}` + "\n" + `{"resourceType":"Patient","gender":1}` + "\n"

	out, stderr, err := execute(t, in, "ndjson", "-", "--workers", "2")
	assert.EqualError(t, err, "1 of 2 lines invalid")
	assert.Equal(t, "2 resources, 1 invalid\n", out)
	assert.Contains(t, stderr, "line 2: ")

	out, _, err = execute(t, `{"id":"a", "resourceType":"Patient"}`+"\n", "ndjson", "-", "--normalize")
	require.NoError(t, err)
	assert.Equal(t, `{"resourceType":"Patient","id":"a"}`+"\n", out)
}

func TestResolve(t *testing.T) {
	bundle := string(testdata.GetExample("bundle-transaction.json"))

	out, _, err := execute(t, bundle, "resolve", "-", "Organization/1")
	require.NoError(t, err)
	assert.Equal(t, `{"resourceType":"Organization","id":"1","name":"Acme Healthcare"}`+"\n", out)

	out, _, err = execute(t, bundle, "resolve", "-", "urn:uuid:61ebe359-bfdc-4613-8bf2-c5e300945f0a")
	require.NoError(t, err)
	assert.Contains(t, out, `"resourceType":"Patient"`)

	_, _, err = execute(t, bundle, "resolve", "-", "Organization/2")
	assert.Error(t, err)

	out, _, err = execute(t, bundle, "resolve", "-", "Organization/2", "--strict-references=false")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestShapes(t *testing.T) {
	out, _, err := execute(t, "", "shapes")
	require.NoError(t, err)
	assert.Contains(t, out, "Patient")
	assert.Contains(t, out, "RiskAssessmentPrediction")

	out, _, err = execute(t, "", "shapes", "RiskAssessmentPrediction")
	require.NoError(t, err)
	assert.Contains(t, out, "probability")
	assert.Contains(t, out, "decimal|Range")

	out, _, err = execute(t, "", "shapes", "Observation")
	require.NoError(t, err)
	assert.Contains(t, out, "dateTime|Period|Timing|instant")

	_, _, err = execute(t, "", "shapes", "Nope")
	assert.Error(t, err)
}
