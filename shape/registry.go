package shape

import (
	"errors"
	"fmt"
	"slices"

	"github.com/damedic/fhir-codec-go/primitive"
)

// Registry maps discriminators to shapes.
//
// A registry is populated once and then frozen. Register must not be called
// concurrently; after Freeze all methods are safe for concurrent use without
// further synchronization.
type Registry struct {
	version string
	shapes  map[string]*Shape
	frozen  bool
}

// NewRegistry returns an empty registry for the given FHIR version.
func NewRegistry(version string) *Registry {
	return &Registry{
		version: version,
		shapes:  map[string]*Shape{},
	}
}

// Version returns the FHIR version of the registry.
func (r *Registry) Version() string {
	return r.version
}

// Register adds a shape.
//
// The shape is copied; later changes to the argument have no effect.
func (r *Registry) Register(s Shape) error {
	if r.frozen {
		return ErrFrozen
	}
	if s.Name == "" {
		return errors.New("shape without name")
	}
	if _, ok := r.shapes[s.Name]; ok {
		return &DuplicateShapeError{Name: s.Name}
	}
	if err := checkFields(s); err != nil {
		return err
	}

	c := s
	c.Fields = slices.Clone(s.Fields)
	for i := range c.Fields {
		c.Fields[i].Variants = slices.Clone(c.Fields[i].Variants)
	}
	if c.Version == "" {
		c.Version = r.version
	}
	if err := c.buildIndex(); err != nil {
		return err
	}

	r.shapes[s.Name] = &c
	return nil
}

// RegisterAll registers every shape, stopping at the first error.
func (r *Registry) RegisterAll(shapes ...Shape) error {
	for _, s := range shapes {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(shapes ...Shape) {
	if err := r.RegisterAll(shapes...); err != nil {
		panic(err)
	}
}

// Resolve returns the shape registered for the discriminator.
func (r *Registry) Resolve(name string) (*Shape, error) {
	s, ok := r.shapes[name]
	if !ok {
		return nil, &UnknownShapeError{Name: name}
	}
	return s, nil
}

// Freeze checks that every shape referenced by a registered field is itself
// registered and makes the registry read-only.
func (r *Registry) Freeze() error {
	if r.frozen {
		return nil
	}
	for _, name := range r.Names() {
		s := r.shapes[name]
		for _, f := range s.Fields {
			switch f.Kind {
			case ValueShape:
				if _, ok := r.shapes[f.Type]; !ok {
					return &UnknownShapeError{Name: f.Type, Path: s.Name + "." + f.Name}
				}
			case ValueChoice:
				for _, v := range f.Variants {
					if v.Kind != ValueShape {
						continue
					}
					if _, ok := r.shapes[v.Type]; !ok {
						return &UnknownShapeError{Name: v.Type, Path: s.Name + "." + v.Key(f.Name)}
					}
				}
			}
		}
	}
	r.frozen = true
	return nil
}

// Frozen reports whether Freeze succeeded.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Len returns the number of registered shapes.
func (r *Registry) Len() int {
	return len(r.shapes)
}

// Names returns the registered discriminators in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for n := range r.shapes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func checkFields(s Shape) error {
	for _, f := range s.Fields {
		switch f.Kind {
		case ValuePrimitive:
			if !primitive.IsType(f.Type) {
				return fmt.Errorf("shape %s: field %s has unknown primitive type %q", s.Name, f.Name, f.Type)
			}
		case ValueShape:
			if f.Type == "" {
				return fmt.Errorf("shape %s: field %s names no shape", s.Name, f.Name)
			}
		case ValueResource:
		case ValueChoice:
			if f.Cardinality.Repeated() {
				return fmt.Errorf("shape %s: choice field %s cannot repeat", s.Name, f.Name)
			}
			if len(f.Variants) == 0 {
				return fmt.Errorf("shape %s: choice field %s has no variants", s.Name, f.Name)
			}
			for _, v := range f.Variants {
				switch v.Kind {
				case ValuePrimitive:
					if !primitive.IsType(v.Type) {
						return fmt.Errorf("shape %s: variant %s has unknown primitive type %q", s.Name, v.Key(f.Name), v.Type)
					}
				case ValueShape:
				default:
					return fmt.Errorf("shape %s: variant %s has invalid kind %s", s.Name, v.Key(f.Name), v.Kind)
				}
			}
		default:
			return fmt.Errorf("shape %s: field %s has invalid kind %s", s.Name, f.Name, f.Kind)
		}
	}
	return nil
}
