package fhirjson

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/damedic/fhir-codec-go/model"
)

// Stream decodes a sequence of JSON documents from one reader, such as
// resources separated by whitespace or simply concatenated.
//
// A document that is well-formed JSON but does not fit its shape fails on its
// own and the stream goes on with the next one. Malformed JSON ends the
// stream, since the start of the next document cannot be found.
type Stream struct {
	dec  *Decoder
	json *json.Decoder
	err  error
}

// NewStream returns a Stream reading documents from r.
func (d *Decoder) NewStream(r io.Reader) *Stream {
	return &Stream{dec: d, json: newTokenDecoder(r)}
}

// More reports whether another document may follow.
func (s *Stream) More() bool {
	return s.err == nil && s.json.More()
}

// Next decodes the next document. It returns io.EOF once the input is
// exhausted, and the same SyntaxError on every call after malformed JSON.
func (s *Stream) Next() (*model.Instance, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.json.More() {
		if _, err := s.json.Token(); !errors.Is(err, io.EOF) {
			if err == nil {
				err = errors.New("unexpected end of object or array")
			}
			s.err = &SyntaxError{Offset: s.json.InputOffset(), Err: err}
			return nil, s.err
		}
		s.err = io.EOF
		return nil, io.EOF
	}

	v, err := readTop(s.json)
	if err != nil {
		s.err = err
		return nil, err
	}
	return s.dec.decodeRoot(v, "")
}
