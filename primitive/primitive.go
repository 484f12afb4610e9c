// Package primitive implements the FHIR R4 primitive datatypes. STU3 uses a
// subset of them with the same grammars.
//
// Values keep the text they were parsed from, so that a decimal written as
// 1.50 or a date written as 2020-01 is serialized again exactly as received.
package primitive

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Value is a parsed FHIR primitive.
type Value interface {
	// Type returns the FHIR type code, e.g. "dateTime".
	Type() string
	// String returns the canonical text of the value as written.
	String() string
	// AppendJSON appends the JSON encoding of the value to b.
	AppendJSON(b []byte) []byte
}

// FHIR R4 primitive type codes.
const (
	TypeBoolean      = "boolean"
	TypeInteger      = "integer"
	TypePositiveInt  = "positiveInt"
	TypeUnsignedInt  = "unsignedInt"
	TypeDecimal      = "decimal"
	TypeString       = "string"
	TypeCode         = "code"
	TypeID           = "id"
	TypeMarkdown     = "markdown"
	TypeURI          = "uri"
	TypeURL          = "url"
	TypeCanonical    = "canonical"
	TypeOID          = "oid"
	TypeUUID         = "uuid"
	TypeBase64Binary = "base64Binary"
	TypeDate         = "date"
	TypeDateTime     = "dateTime"
	TypeInstant      = "instant"
	TypeTime         = "time"
	TypeXHTML        = "xhtml"
)

var types = []string{
	TypeBoolean, TypeInteger, TypePositiveInt, TypeUnsignedInt, TypeDecimal,
	TypeString, TypeCode, TypeID, TypeMarkdown, TypeURI, TypeURL, TypeCanonical,
	TypeOID, TypeUUID, TypeBase64Binary, TypeDate, TypeDateTime, TypeInstant,
	TypeTime, TypeXHTML,
}

// IsType reports whether code names a primitive type.
func IsType(code string) bool {
	return slices.Contains(types, code)
}

// Types returns all primitive type codes.
func Types() []string {
	return slices.Clone(types)
}

// SyntaxError reports a value that does not match the grammar of its type.
type SyntaxError struct {
	Type   string
	Text   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Type, e.Text, e.Reason)
}

func syntaxError(code string, v any, reason string, args ...any) *SyntaxError {
	return &SyntaxError{Type: code, Text: text(v), Reason: fmt.Sprintf(reason, args...)}
}

func text(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Parse parses a JSON token as a primitive of the given type.
//
// v must be a bool, a json.Number or a string, as produced by a json.Decoder
// with UseNumber enabled. Booleans and the integer types require the matching
// JSON type; decimals accept a number or a string holding a decimal literal;
// all other types require a string.
func Parse(code string, v any) (Value, error) {
	switch code {
	case TypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, syntaxError(code, v, "expected JSON boolean")
		}
		return Boolean(b), nil
	case TypeInteger, TypePositiveInt, TypeUnsignedInt:
		n, ok := v.(json.Number)
		if !ok {
			return nil, syntaxError(code, v, "expected JSON number")
		}
		return parseInteger(code, n)
	case TypeDecimal:
		switch v := v.(type) {
		case json.Number:
			return parseDecimal(v.String(), false)
		case string:
			return parseDecimal(v, true)
		default:
			return nil, syntaxError(code, v, "expected JSON number")
		}
	}

	s, ok := v.(string)
	if !ok {
		if !IsType(code) {
			return nil, syntaxError(code, v, "unknown primitive type")
		}
		return nil, syntaxError(code, v, "expected JSON string")
	}
	switch code {
	case TypeDate:
		return ParseDate(s)
	case TypeDateTime:
		return ParseDateTime(s)
	case TypeInstant:
		return ParseInstant(s)
	case TypeTime:
		return ParseTime(s)
	default:
		return parseString(code, s)
	}
}

// MustParse is like Parse but panics on error.
func MustParse(code string, v any) Value {
	p, err := Parse(code, v)
	if err != nil {
		panic(err)
	}
	return p
}

// Equal reports whether a and b have the same type and serialize identically.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	return string(a.AppendJSON(nil)) == string(b.AppendJSON(nil))
}
