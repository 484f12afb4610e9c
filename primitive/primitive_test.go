package primitive_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/google/go-cmp/cmp"
)

func TestParseRoundTripsText(t *testing.T) {
	tests := []struct {
		name string
		code string
		in   any
		want string
	}{
		{"boolean", "boolean", true, `true`},
		{"integer", "integer", json.Number("-42"), `-42`},
		{"positiveInt", "positiveInt", json.Number("1"), `1`},
		{"unsignedInt zero", "unsignedInt", json.Number("0"), `0`},
		{"decimal trailing zero", "decimal", json.Number("1.50"), `1.50`},
		{"decimal exponent", "decimal", json.Number("1.0e-3"), `1.0e-3`},
		{"decimal as string", "decimal", "0.40", `"0.40"`},
		{"string html", "string", "a < b & c", `"a < b & c"`},
		{"string escapes", "string", "line\n\"quoted\"", `"line\n\"quoted\""`},
		{"code", "code", "final", `"final"`},
		{"id", "id", "example-1.2", `"example-1.2"`},
		{"uri", "uri", "http://hl7.org/fhir", `"http://hl7.org/fhir"`},
		{"oid", "oid", "urn:oid:1.2.3.4", `"urn:oid:1.2.3.4"`},
		{"uuid", "uuid", "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", `"urn:uuid:c757873d-ec9a-4326-a141-556f43239520"`},
		{"base64Binary", "base64Binary", "aGVsbG8=", `"aGVsbG8="`},
		{"date year", "date", "2020", `"2020"`},
		{"date month", "date", "2020-01", `"2020-01"`},
		{"date full", "date", "2020-01-01", `"2020-01-01"`},
		{"dateTime zoned", "dateTime", "2020-01-01T10:00:00+01:00", `"2020-01-01T10:00:00+01:00"`},
		{"dateTime fraction", "dateTime", "2017-01-01T00:00:00.000Z", `"2017-01-01T00:00:00.000Z"`},
		{"dateTime leap second", "dateTime", "2016-12-31T23:59:60Z", `"2016-12-31T23:59:60Z"`},
		{"instant", "instant", "2015-02-07T13:28:17.239+02:00", `"2015-02-07T13:28:17.239+02:00"`},
		{"time", "time", "21:32:00", `"21:32:00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := primitive.Parse(tt.code, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Type() != tt.code {
				t.Errorf("Type() = %q, want %q", v.Type(), tt.code)
			}
			if diff := cmp.Diff(tt.want, string(v.AppendJSON(nil))); diff != "" {
				t.Errorf("AppendJSON mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		code string
		in   any
	}{
		{"boolean as string", "boolean", "true"},
		{"integer fraction", "integer", json.Number("1.0")},
		{"integer overflow", "integer", json.Number("2147483648")},
		{"positiveInt zero", "positiveInt", json.Number("0")},
		{"unsignedInt negative", "unsignedInt", json.Number("-1")},
		{"decimal as bool", "decimal", false},
		{"decimal leading zero", "decimal", "01.5"},
		{"decimal garbage string", "decimal", "one"},
		{"string empty", "string", ""},
		{"string blank", "string", "   "},
		{"code double space", "code", "a  b"},
		{"id too long", "id", "0123456789012345678901234567890123456789012345678901234567890123456789"},
		{"id underscore", "id", "a_b"},
		{"uri with space", "uri", "http://a b"},
		{"oid without prefix", "oid", "1.2.3"},
		{"uuid without prefix", "uuid", "c757873d-ec9a-4326-a141-556f43239520"},
		{"uuid malformed", "uuid", "urn:uuid:c757873d-ec9a-4326-a141-556f4323952z"},
		{"base64 malformed", "base64Binary", "a===="},
		{"date month 13", "date", "2017-13"},
		{"date feb 30", "date", "2017-02-30"},
		{"date feb 29 non leap", "date", "2019-02-29"},
		{"date year zero", "date", "0000"},
		{"date with time", "date", "2017-01-01T00:00:00Z"},
		{"dateTime without seconds", "dateTime", "2015-01-31T21:32"},
		{"dateTime hour 24", "dateTime", "2015-01-31T24:00:00Z"},
		{"dateTime zone 15", "dateTime", "2015-01-31T21:32:00+15:00"},
		{"dateTime fraction too long", "dateTime", "2015-01-31T21:32:00.1234567890Z"},
		{"instant without zone", "instant", "2015-01-31T21:32:00"},
		{"instant date only", "instant", "2015-01-31"},
		{"time with zone", "time", "21:32:00Z"},
		{"time minute 60", "time", "21:60:00"},
		{"date as number", "date", json.Number("2020")},
		{"unknown type", "foo", "bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := primitive.Parse(tt.code, tt.in)
			var se *primitive.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %v", err)
			}
		})
	}
}

func TestDatePrecision(t *testing.T) {
	tests := []struct {
		in   string
		want primitive.Precision
	}{
		{"2020", primitive.PrecisionYear},
		{"2020-01", primitive.PrecisionMonth},
		{"2020-01-01", primitive.PrecisionDay},
		{"2020-01-01T10:00:00+01:00", primitive.PrecisionSecond},
		{"2020-01-01T10:00:00.5Z", primitive.PrecisionFraction},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dt, err := primitive.ParseDateTime(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dt.Precision != tt.want {
				t.Errorf("Precision = %q, want %q", dt.Precision, tt.want)
			}
		})
	}
}

func TestDateTimeValue(t *testing.T) {
	dt, err := primitive.ParseDateTime("2020-01-01T10:00:00.25+01:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2020, time.January, 1, 9, 0, 0, 250000000, time.UTC)
	if !dt.Value.Equal(want) {
		t.Errorf("Value = %v, want %v", dt.Value, want)
	}
	if !dt.HasZone {
		t.Error("expected HasZone")
	}
}

func TestDecimalKeepsValue(t *testing.T) {
	d, err := primitive.NewDecimal("1.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.Value.String(); got != "1.50" {
		t.Errorf("apd value = %s, want 1.50", got)
	}
	other, _ := primitive.NewDecimal("1.5")
	if primitive.Equal(d, other) {
		t.Error("1.50 and 1.5 must not be equal as serialized values")
	}
	if d.Value.Cmp(other.Value) != 0 {
		t.Error("1.50 and 1.5 must be numerically equal")
	}
}

func TestAppendQuoted(t *testing.T) {
	got := string(primitive.AppendQuoted(nil, "<b>\t\x01 \xff"))
	want := `"<b>\t\u0001 \ufffd"`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AppendQuoted mismatch (-want +got):\n%s", diff)
	}
}

func TestIsType(t *testing.T) {
	for _, code := range primitive.Types() {
		if !primitive.IsType(code) {
			t.Errorf("IsType(%q) = false", code)
		}
	}
	if primitive.IsType("Period") {
		t.Error("Period is not a primitive")
	}
}
