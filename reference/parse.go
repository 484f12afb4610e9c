// Package reference resolves FHIR references between decoded instances.
//
// References are non-owning: a Reference element names its target by a
// literal such as "Patient/123", "#contained-id" or a Bundle entry fullUrl,
// or by a business identifier. A Resolver looks targets up in a fixed set of
// instances, typically the entries of a Bundle.
package reference

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Kind classifies a reference literal.
type Kind string

const (
	// KindRelative is a reference relative to the server base, e.g. "Patient/123".
	KindRelative Kind = "relative"
	// KindAbsolute is an absolute URL, e.g. "http://example.org/fhir/Patient/123".
	KindAbsolute Kind = "absolute"
	// KindContained references a resource contained in the referring resource, e.g. "#p1".
	KindContained Kind = "contained"
	// KindURN is a urn:uuid: or urn:oid: reference to a Bundle entry.
	KindURN Kind = "urn"
)

// Ref is a parsed reference literal.
type Ref struct {
	Kind Kind
	// Type and ID are set for relative and absolute references whose path
	// ends in Type/id.
	Type string
	ID   string
	// Version is the version of a /_history/ reference.
	Version string
	// Base is the service base URL of an absolute reference.
	Base string
	// Literal is the reference as written.
	Literal string
}

// Key returns "Type/id", or "" if the reference does not name a type and id.
func (r Ref) Key() string {
	if r.Type == "" || r.ID == "" {
		return ""
	}
	return r.Type + "/" + r.ID
}

// InvalidReferenceError is returned for malformed reference literals.
type InvalidReferenceError struct {
	Literal string
	Reason  string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference %q: %s", e.Literal, e.Reason)
}

var (
	typeRegex = regexp.MustCompile(`^[A-Z][A-Za-z]+$`)
	idRegex   = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	oidRegex  = regexp.MustCompile(`^urn:oid:[0-2](\.(0|[1-9][0-9]*))+$`)
)

// Parse classifies a reference literal.
func Parse(literal string) (Ref, error) {
	invalid := func(reason string) (Ref, error) {
		return Ref{}, &InvalidReferenceError{Literal: literal, Reason: reason}
	}

	switch {
	case literal == "":
		return invalid("empty")

	case strings.HasPrefix(literal, "#"):
		id := literal[1:]
		if id != "" && !idRegex.MatchString(id) {
			return invalid("malformed contained id")
		}
		return Ref{Kind: KindContained, ID: id, Literal: literal}, nil

	case strings.HasPrefix(literal, "urn:uuid:"):
		if _, err := uuid.Parse(strings.TrimPrefix(literal, "urn:uuid:")); err != nil {
			return invalid(err.Error())
		}
		return Ref{Kind: KindURN, Literal: literal}, nil

	case strings.HasPrefix(literal, "urn:oid:"):
		if !oidRegex.MatchString(literal) {
			return invalid("malformed OID")
		}
		return Ref{Kind: KindURN, Literal: literal}, nil

	case strings.Contains(literal, "://"):
		u, err := url.Parse(literal)
		if err != nil {
			return invalid(err.Error())
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		typ, id, version, rest, ok := splitPath(segments)
		if !ok {
			// Absolute references need not point at a FHIR server.
			return Ref{Kind: KindAbsolute, Literal: literal}, nil
		}
		base := *u
		base.Path = "/" + strings.Join(rest, "/")
		base.RawQuery, base.Fragment = "", ""
		return Ref{
			Kind:    KindAbsolute,
			Type:    typ,
			ID:      id,
			Version: version,
			Base:    strings.TrimSuffix(base.String(), "/"),
			Literal: literal,
		}, nil

	default:
		typ, id, version, rest, ok := splitPath(strings.Split(literal, "/"))
		if !ok || len(rest) > 0 {
			return invalid("expected Type/id or Type/id/_history/version")
		}
		return Ref{Kind: KindRelative, Type: typ, ID: id, Version: version, Literal: literal}, nil
	}
}

// splitPath finds a trailing Type/id or Type/id/_history/version in segments
// and returns the segments before it.
func splitPath(segments []string) (typ, id, version string, rest []string, ok bool) {
	n := len(segments)
	if n >= 4 && segments[n-2] == "_history" {
		version = segments[n-1]
		if !idRegex.MatchString(version) {
			return "", "", "", nil, false
		}
		segments = segments[:n-2]
		n -= 2
	}
	if n < 2 {
		return "", "", "", nil, false
	}
	typ, id = segments[n-2], segments[n-1]
	if !typeRegex.MatchString(typ) || !idRegex.MatchString(id) {
		return "", "", "", nil, false
	}
	return typ, id, version, segments[:n-2], true
}
