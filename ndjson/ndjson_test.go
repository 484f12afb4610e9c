package ndjson_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/ndjson"
	"github.com/damedic/fhir-codec-go/shapes/r4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAll(t *testing.T) {
	input := strings.Join([]string{
		`{"resourceType":"Patient","id":"a"}`,
		``,
		`{"resourceType":"Patient","birthDate":"2017-13"}`,
		`   `,
		`{"resourceType":"Organization","id":"b","name":"Acme"}`,
		`{"resourceType":`,
	}, "\n")

	dec := ndjson.NewDecoder(fhirjson.NewDecoder(r4.Default()), ndjson.WithWorkers(2))
	results, err := dec.DecodeAll(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, []int{1, 3, 5, 6}, []int{results[0].Line, results[1].Line, results[2].Line, results[3].Line})

	require.NoError(t, results[0].Err)
	assert.Equal(t, "Patient", results[0].Instance.ResourceType())

	var perr *fhirjson.PrimitiveParseError
	assert.ErrorAs(t, results[1].Err, &perr)
	assert.Nil(t, results[1].Instance)

	require.NoError(t, results[2].Err)
	id, _ := results[2].Instance.ResourceID()
	assert.Equal(t, "b", id)

	var serr *fhirjson.SyntaxError
	assert.ErrorAs(t, results[3].Err, &serr)
}

func TestDecodeAllPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	for i := range 200 {
		fmt.Fprintf(&buf, `{"resourceType":"Patient","id":"p%d"}`+"\n", i)
	}

	dec := ndjson.NewDecoder(fhirjson.NewDecoder(r4.Default()), ndjson.WithWorkers(8))
	results, err := dec.DecodeAll(context.Background(), &buf)
	require.NoError(t, err)
	require.Len(t, results, 200)
	for i, res := range results {
		require.NoError(t, res.Err)
		id, _ := res.Instance.ResourceID()
		assert.Equal(t, fmt.Sprintf("p%d", i), id)
		assert.Equal(t, i+1, res.Line)
	}
}

func TestDecodeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dec := ndjson.NewDecoder(fhirjson.NewDecoder(r4.Default()))
	_, err := dec.DecodeAll(ctx, strings.NewReader(`{"resourceType":"Patient"}`+"\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeAllLineTooLong(t *testing.T) {
	dec := ndjson.NewDecoder(fhirjson.NewDecoder(r4.Default()), ndjson.WithMaxLineSize(16))
	_, err := dec.DecodeAll(context.Background(), strings.NewReader(`{"resourceType":"Patient","id":"a"}`))
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	codec := fhirjson.NewDecoder(r4.Default())
	a, err := codec.Unmarshal([]byte(`{"resourceType":"Patient","id":"a","active":true}`))
	require.NoError(t, err)
	b, err := codec.Unmarshal([]byte(`{"resourceType":"Organization","name":"Acme"}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ndjson.Encode(&buf, a, b))
	assert.Equal(t, `{"resourceType":"Patient","id":"a","active":true}`+"\n"+`{"resourceType":"Organization","name":"Acme"}`+"\n", buf.String())

	results, err := ndjson.NewDecoder(codec).DecodeAll(context.Background(), &buf)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, model.Equal(a, results[0].Instance))
	assert.True(t, model.Equal(b, results[1].Instance))
}
