package fhirjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/damedic/fhir-codec-go/primitive"
)

// object is a JSON object that remembers the order of its keys.
//
// Values are *object, []any, string, json.Number, bool or nil.
type object struct {
	keys   []string
	values map[string]any
}

func (o *object) get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// readValue reads the next JSON value from d into a tree.
func readValue(d *json.Decoder) (any, error) {
	t, err := d.Token()
	if err != nil {
		return nil, err
	}
	switch t := t.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readObject(d)
		case '[':
			return readArray(d)
		default:
			return nil, fmt.Errorf("invalid token: %v", t)
		}
	default:
		return t, nil
	}
}

func readObject(d *json.Decoder) (*object, error) {
	o := &object{values: map[string]any{}}
	for d.More() {
		t, err := d.Token()
		if err != nil {
			return nil, err
		}
		key, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("invalid token: %v, expected: object key", t)
		}
		if _, dup := o.values[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		v, err := readValue(d)
		if err != nil {
			return nil, err
		}
		o.keys = append(o.keys, key)
		o.values[key] = v
	}
	// closing '}'
	if _, err := d.Token(); err != nil {
		return nil, err
	}
	return o, nil
}

func readArray(d *json.Decoder) ([]any, error) {
	a := []any{}
	for d.More() {
		v, err := readValue(d)
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
	// closing ']'
	if _, err := d.Token(); err != nil {
		return nil, err
	}
	return a, nil
}

func newTokenDecoder(r io.Reader) *json.Decoder {
	d := json.NewDecoder(r)
	d.UseNumber()
	return d
}

// readTop reads the next top-level JSON value from d.
func readTop(d *json.Decoder) (any, error) {
	v, err := readValue(d)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &SyntaxError{Offset: d.InputOffset(), Err: err}
	}
	return v, nil
}

// readDocument reads exactly one JSON value from r. Anything but whitespace
// after the value is a SyntaxError.
func readDocument(r io.Reader) (any, error) {
	d := newTokenDecoder(r)
	v, err := readTop(d)
	if err != nil {
		return nil, err
	}
	if _, err := d.Token(); !errors.Is(err, io.EOF) {
		return nil, &SyntaxError{Offset: d.InputOffset(), Err: errors.New("trailing data after JSON value")}
	}
	return v, nil
}

// fromGo converts a tree of Go values, as produced by encoding/json, into the
// ordered representation. Object keys are sorted as maps carry no order.
func fromGo(v any) (any, error) {
	switch v := v.(type) {
	case nil, bool, string, json.Number:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("unsupported number %v", v)
		}
		return json.Number(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case int:
		return json.Number(strconv.Itoa(v)), nil
	case int64:
		return json.Number(strconv.FormatInt(v, 10)), nil
	case int32:
		return json.Number(strconv.FormatInt(int64(v), 10)), nil
	case map[string]any:
		o := &object{values: make(map[string]any, len(v))}
		for key, item := range v {
			c, err := fromGo(item)
			if err != nil {
				return nil, err
			}
			o.keys = append(o.keys, key)
			o.values[key] = c
		}
		slices.Sort(o.keys)
		return o, nil
	case []any:
		a := make([]any, len(v))
		for i, item := range v {
			c, err := fromGo(item)
			if err != nil {
				return nil, err
			}
			a[i] = c
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

// appendTree appends the compact JSON encoding of a tree value.
func appendTree(dst []byte, v any) []byte {
	switch v := v.(type) {
	case nil:
		return append(dst, "null"...)
	case bool:
		return strconv.AppendBool(dst, v)
	case json.Number:
		return append(dst, v...)
	case string:
		return primitive.AppendQuoted(dst, v)
	case []any:
		dst = append(dst, '[')
		for i, item := range v {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendTree(dst, item)
		}
		return append(dst, ']')
	case *object:
		dst = append(dst, '{')
		for i, key := range v.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = primitive.AppendQuoted(dst, key)
			dst = append(dst, ':')
			dst = appendTree(dst, v.values[key])
		}
		return append(dst, '}')
	default:
		panic(fmt.Sprintf("fhirjson: unexpected tree value %T", v))
	}
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case *object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
