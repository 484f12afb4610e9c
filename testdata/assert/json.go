package assert

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JSONEqual fails the test if expected and actual are different JSON
// documents. Key order and whitespace are ignored; numbers are compared by
// their literal text.
func JSONEqual(t *testing.T, expected, actual string) {
	t.Helper()
	expectedFormatted := jsonFormat(t, expected)
	actualFormatted := jsonFormat(t, actual)
	if diff := cmp.Diff(expectedFormatted, actualFormatted); diff != "" {
		t.Errorf("JSON mismatch (-expected +actual):\n%s", diff)
	}
}

func jsonFormat(t *testing.T, input string) string {
	t.Helper()
	d := json.NewDecoder(bytes.NewReader([]byte(input)))
	d.UseNumber()

	var obj any
	if err := d.Decode(&obj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		t.Fatalf("encode JSON: %v", err)
	}

	return buf.String()
}
