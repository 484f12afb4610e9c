package reference

import (
	"errors"
	"fmt"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/rs/zerolog"
)

// Mode decides how a Resolver treats references it cannot resolve.
type Mode int

const (
	// Strict makes unresolvable references fail with a DanglingReferenceError.
	Strict Mode = iota
	// Lenient makes unresolvable references resolve to nil without error.
	Lenient
)

// DanglingReferenceError is returned when a reference names no instance of
// the resolver's set.
type DanglingReferenceError struct {
	Reference string
	Reason    string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference %q: %s", e.Reference, e.Reason)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMode sets the resolution mode. The default is Strict.
func WithMode(m Mode) Option {
	return func(r *Resolver) {
		r.mode = m
	}
}

// WithLogger sets the logger dangling references are reported to in
// Lenient mode.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// Resolver looks up the targets of references in a fixed set of resources.
//
// A Resolver is read-only after construction and safe for concurrent use.
type Resolver struct {
	mode   Mode
	logger zerolog.Logger

	// Type/id
	byKey map[string]*model.Instance
	// Bundle entry fullUrl
	byURL map[string]*model.Instance
	// identifier system|value
	byIdentifier map[string]*model.Instance
}

// NewResolver returns a resolver over the given resources. Instances without
// an id can only be found through their identifiers.
func NewResolver(instances []*model.Instance, opts ...Option) *Resolver {
	r := newResolver(opts)
	for _, inst := range instances {
		r.add(inst, "")
	}
	return r
}

// FromBundle returns a resolver over the entry resources of a Bundle.
// Entries are found by fullUrl as well as by Type/id.
func FromBundle(bundle *model.Instance, opts ...Option) (*Resolver, error) {
	if bundle.ShapeName() != "Bundle" {
		return nil, fmt.Errorf("expected Bundle, got %s", bundle.ShapeName())
	}
	r := newResolver(opts)
	for _, v := range bundle.List("entry") {
		entry, ok := v.(*model.Instance)
		if !ok {
			continue
		}
		res, ok := entry.Instance("resource")
		if !ok {
			continue
		}
		r.add(res, stringField(entry, "fullUrl"))
	}
	return r, nil
}

func newResolver(opts []Option) *Resolver {
	r := &Resolver{
		logger:       zerolog.Nop(),
		byKey:        map[string]*model.Instance{},
		byURL:        map[string]*model.Instance{},
		byIdentifier: map[string]*model.Instance{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) add(inst *model.Instance, fullURL string) {
	if id, ok := inst.ResourceID(); ok {
		r.byKey[inst.ResourceType()+"/"+id] = inst
	}
	if fullURL != "" {
		r.byURL[fullURL] = inst
	}
	for _, v := range inst.List("identifier") {
		ident, ok := v.(*model.Instance)
		if !ok {
			continue
		}
		if key := identifierKey(ident); key != "" {
			r.byIdentifier[key] = inst
		}
	}
}

// Len returns the number of indexed resources found by Type/id or fullUrl.
func (r *Resolver) Len() int {
	seen := map[*model.Instance]bool{}
	for _, inst := range r.byKey {
		seen[inst] = true
	}
	for _, inst := range r.byURL {
		seen[inst] = true
	}
	return len(seen)
}

// Resolve returns the target of a Reference element.
//
// The literal reference is used if present, the logical identifier
// otherwise. If the Reference carries a type, the target must be of that
// type. Contained references need their container; use ResolveContained.
func (r *Resolver) Resolve(ref *model.Instance) (*model.Instance, error) {
	if ref.ShapeName() != "Reference" {
		return nil, fmt.Errorf("expected Reference, got %s", ref.ShapeName())
	}
	target, err := r.resolve(ref)
	if err != nil {
		return nil, r.dangling(err)
	}
	return target, nil
}

// ResolveLiteral returns the target of a reference literal.
func (r *Resolver) ResolveLiteral(literal string) (*model.Instance, error) {
	target, err := r.lookup(literal)
	if err != nil {
		return nil, r.dangling(err)
	}
	return target, nil
}

// ResolveContained returns the resource contained in parent that ref points
// at. References that are not contained references are resolved like
// Resolve.
func (r *Resolver) ResolveContained(parent, ref *model.Instance) (*model.Instance, error) {
	literal := stringField(ref, "reference")
	if literal == "" || literal[0] != '#' {
		return r.Resolve(ref)
	}

	p, err := Parse(literal)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		// "#" points at the container itself
		return parent, nil
	}
	for _, v := range parent.List("contained") {
		c, ok := v.(*model.Instance)
		if !ok {
			continue
		}
		if id, _ := c.ResourceID(); id == p.ID {
			if err := checkType(ref, c); err != nil {
				return nil, r.dangling(err)
			}
			return c, nil
		}
	}
	return nil, r.dangling(&DanglingReferenceError{Reference: literal, Reason: "no contained resource with this id in " + parent.ShapeName()})
}

func (r *Resolver) resolve(ref *model.Instance) (*model.Instance, error) {
	if literal := stringField(ref, "reference"); literal != "" {
		target, err := r.lookup(literal)
		if err != nil {
			return nil, err
		}
		if err := checkType(ref, target); err != nil {
			return nil, err
		}
		return target, nil
	}

	ident, ok := ref.Instance("identifier")
	if !ok {
		return nil, &DanglingReferenceError{Reason: "reference has neither a literal nor an identifier"}
	}
	key := identifierKey(ident)
	target, ok := r.byIdentifier[key]
	if !ok {
		return nil, &DanglingReferenceError{Reference: key, Reason: "no resource with this identifier"}
	}
	if err := checkType(ref, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (r *Resolver) lookup(literal string) (*model.Instance, error) {
	p, err := Parse(literal)
	if err != nil {
		return nil, err
	}

	var target *model.Instance
	switch p.Kind {
	case KindContained:
		return nil, &DanglingReferenceError{Reference: literal, Reason: "contained reference outside its container"}
	case KindURN:
		target = r.byURL[literal]
	case KindAbsolute:
		target = r.byURL[literal]
		if target == nil && p.Key() != "" {
			target = r.byKey[p.Key()]
		}
	case KindRelative:
		target = r.byKey[p.Key()]
	}
	if target == nil {
		return nil, &DanglingReferenceError{Reference: literal, Reason: "not found"}
	}

	if p.Version != "" {
		if v := versionID(target); v != "" && v != p.Version {
			return nil, &DanglingReferenceError{Reference: literal, Reason: "version " + v + " found instead"}
		}
	}
	return target, nil
}

// dangling turns DanglingReferenceErrors into nil in Lenient mode.
func (r *Resolver) dangling(err error) error {
	var d *DanglingReferenceError
	if !errors.As(err, &d) || r.mode != Lenient {
		return err
	}
	r.logger.Debug().Str("reference", d.Reference).Str("reason", d.Reason).Msg("ignoring dangling reference")
	return nil
}

func checkType(ref, target *model.Instance) error {
	typ := stringField(ref, "type")
	if typ == "" || typ == target.ResourceType() {
		return nil
	}
	return &DanglingReferenceError{
		Reference: stringField(ref, "reference"),
		Reason:    fmt.Sprintf("points at %s, but the reference is typed %s", target.ResourceType(), typ),
	}
}

func identifierKey(ident *model.Instance) string {
	value := stringField(ident, "value")
	if value == "" {
		return ""
	}
	return stringField(ident, "system") + "|" + value
}

func versionID(inst *model.Instance) string {
	meta, ok := inst.Instance("meta")
	if !ok {
		return ""
	}
	return stringField(meta, "versionId")
}

func stringField(inst *model.Instance, name string) string {
	p, ok := inst.Primitive(name)
	if !ok {
		return ""
	}
	if s, ok := p.(primitive.String); ok {
		return s.Value
	}
	return p.String()
}
