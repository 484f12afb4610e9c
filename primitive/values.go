package primitive

import (
	"encoding/base64"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Boolean is a FHIR boolean.
type Boolean bool

func (b Boolean) Type() string { return TypeBoolean }

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

func (b Boolean) AppendJSON(dst []byte) []byte {
	return strconv.AppendBool(dst, bool(b))
}

// Integer is a FHIR integer, positiveInt or unsignedInt.
type Integer struct {
	Code  string
	Value int32
}

func (i Integer) Type() string { return i.Code }

func (i Integer) String() string {
	return strconv.FormatInt(int64(i.Value), 10)
}

func (i Integer) AppendJSON(dst []byte) []byte {
	return strconv.AppendInt(dst, int64(i.Value), 10)
}

var integerRegex = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)

func parseInteger(code string, n json.Number) (Integer, error) {
	s := n.String()
	if !integerRegex.MatchString(s) {
		return Integer{}, syntaxError(code, n, "expected JSON integer")
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Integer{}, syntaxError(code, n, "out of 32 bit range")
	}
	switch {
	case code == TypePositiveInt && v <= 0:
		return Integer{}, syntaxError(code, n, "must be greater than zero")
	case code == TypeUnsignedInt && v < 0:
		return Integer{}, syntaxError(code, n, "must not be negative")
	}
	return Integer{Code: code, Value: int32(v)}, nil
}

// Decimal is a FHIR decimal.
//
// Text holds the literal the value was parsed from; it is what gets
// serialized, so 1.50 stays 1.50. Quoted records that the literal arrived as
// a JSON string.
type Decimal struct {
	Value  *apd.Decimal
	Text   string
	Quoted bool
}

// NewDecimal parses a decimal literal.
func NewDecimal(s string) (Decimal, error) {
	return parseDecimal(s, false)
}

func (d Decimal) Type() string { return TypeDecimal }

func (d Decimal) String() string { return d.Text }

func (d Decimal) AppendJSON(dst []byte) []byte {
	if d.Quoted {
		return AppendQuoted(dst, d.Text)
	}
	return append(dst, d.Text...)
}

var decimalRegex = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

func parseDecimal(s string, quoted bool) (Decimal, error) {
	if !decimalRegex.MatchString(s) {
		return Decimal{}, syntaxError(TypeDecimal, s, "not a decimal literal")
	}
	v, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, syntaxError(TypeDecimal, s, "%v", err)
	}
	return Decimal{Value: v, Text: s, Quoted: quoted}, nil
}

// String is any FHIR primitive represented as a JSON string that has no
// temporal meaning: string, code, id, markdown, uri, url, canonical, oid,
// uuid, base64Binary and xhtml.
type String struct {
	Code  string
	Value string
}

// NewString validates s against the grammar of code.
func NewString(code, s string) (String, error) {
	return parseString(code, s)
}

func (s String) Type() string { return s.Code }

func (s String) String() string { return s.Value }

func (s String) AppendJSON(dst []byte) []byte {
	return AppendQuoted(dst, s.Value)
}

var (
	codeRegex   = regexp.MustCompile(`^[^\s]+( [^\s]+)*$`)
	idRegex     = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	uriRegex    = regexp.MustCompile(`^\S+$`)
	oidRegex    = regexp.MustCompile(`^urn:oid:[0-2](\.(0|[1-9][0-9]*))+$`)
	base64Space = strings.NewReplacer(" ", "", "\t", "", "\r", "", "\n", "")
)

func parseString(code, s string) (String, error) {
	switch code {
	case TypeString, TypeMarkdown, TypeXHTML:
		if strings.TrimSpace(s) == "" {
			return String{}, syntaxError(code, s, "must not be empty")
		}
	case TypeCode:
		if !codeRegex.MatchString(s) {
			return String{}, syntaxError(code, s, "must be tokens separated by single spaces")
		}
	case TypeID:
		if !idRegex.MatchString(s) {
			return String{}, syntaxError(code, s, "must be 1 to 64 letters, digits, '-' or '.'")
		}
	case TypeURI, TypeURL, TypeCanonical:
		if !uriRegex.MatchString(s) {
			return String{}, syntaxError(code, s, "must be non-empty without whitespace")
		}
	case TypeOID:
		if !oidRegex.MatchString(s) {
			return String{}, syntaxError(code, s, "must be urn:oid: followed by a dotted OID")
		}
	case TypeUUID:
		rest, ok := strings.CutPrefix(s, "urn:uuid:")
		if !ok {
			return String{}, syntaxError(code, s, "must start with urn:uuid:")
		}
		if len(rest) != 36 {
			return String{}, syntaxError(code, s, "must hold a hyphenated UUID")
		}
		if _, err := uuid.Parse(rest); err != nil {
			return String{}, syntaxError(code, s, "%v", err)
		}
	case TypeBase64Binary:
		if _, err := base64.StdEncoding.DecodeString(base64Space.Replace(s)); err != nil {
			return String{}, syntaxError(code, s, "%v", err)
		}
	default:
		return String{}, syntaxError(code, s, "not a string type")
	}
	return String{Code: code, Value: s}, nil
}
