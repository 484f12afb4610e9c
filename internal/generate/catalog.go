package generate

import (
	"fmt"
	"slices"
	"sort"

	"github.com/damedic/fhir-codec-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
	"github.com/rs/zerolog"
)

const shapePkg = moduleName + "/shape"

// CatalogGenerator writes the Shapes function of a shape catalog.
//
// An empty Include writes every parsed resource and type. Otherwise the
// catalog holds the included resources and types plus everything their
// fields need. Choice variants whose type is not in the catalog are dropped.
type CatalogGenerator struct {
	Include []string
	Logger  zerolog.Logger
}

func (g CatalogGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rts []ir.ResourceOrType) error {
	structs, err := g.closure(rts)
	if err != nil {
		return err
	}

	file := f("catalog_gen", pkgName(release))
	file.ImportName(shapePkg, "shape")
	file.Comment(fmt.Sprintf("Shapes returns the shapes of the FHIR %s catalog in lexical order.", release))
	file.Func().Id("Shapes").Params().Index().Qual(shapePkg, "Shape").Block(
		Return(Index().Qual(shapePkg, "Shape").Custom(multi("{", "}"), g.shapes(structs)...)),
	)
	return nil
}

// closure returns the included structs and every struct their non-choice
// fields refer to.
func (g CatalogGenerator) closure(rts []ir.ResourceOrType) (map[string]ir.Struct, error) {
	all := map[string]ir.Struct{}
	for _, rt := range rts {
		for _, s := range rt.Structs {
			all[s.Name] = s
		}
	}

	included := map[string]ir.Struct{}
	queue := slices.Clone(g.Include)
	if len(queue) == 0 {
		included = all
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, ok := included[name]; ok {
			continue
		}
		s, ok := all[name]
		if !ok {
			return nil, fmt.Errorf("no definition for %s", name)
		}
		included[name] = s

		for _, f := range s.Fields {
			t := f.PossibleTypes[0]
			if f.Polymorph || t.IsPrimitive || t.IsNestedResource {
				continue
			}
			if _, ok := included[t.Name]; !ok {
				g.Logger.Debug().Str("shape", name).Str("field", f.Name).Str("type", t.Name).Msg("adding referenced type")
				queue = append(queue, t.Name)
			}
		}
	}

	// field groups every shape carries
	for _, name := range []string{"Extension", "Meta", "Narrative"} {
		if _, ok := included[name]; !ok {
			return nil, fmt.Errorf("catalog must include %s", name)
		}
	}
	return included, nil
}

func (g CatalogGenerator) shapes(structs map[string]ir.Struct) []Code {
	names := make([]string, 0, len(structs))
	for name := range structs {
		names = append(names, name)
	}
	sort.Strings(names)

	var shapes []Code
	for _, name := range names {
		s := structs[name]

		args := []Code{Lit(s.Name)}
		for _, f := range s.Fields {
			field, ok := g.field(s, f, structs)
			if ok {
				args = append(args, field)
			}
		}
		shapes = append(shapes, Qual(shapePkg, constructor(s)).Custom(multi("(", ")"), args...))
	}
	return shapes
}

func (g CatalogGenerator) field(s ir.Struct, f ir.StructField, structs map[string]ir.Struct) (Code, bool) {
	c := Qual(shapePkg, cardinality(f))

	if f.Polymorph {
		args := []Code{Lit(f.Name), c}
		for _, t := range f.PossibleTypes {
			switch {
			case t.IsPrimitive:
				args = append(args, Qual(shapePkg, "PrimitiveVariant").Call(Lit(t.Name)))
			case hasStruct(structs, t.Name):
				args = append(args, Qual(shapePkg, "ShapeVariant").Call(Lit(t.Name)))
			default:
				g.Logger.Debug().Str("shape", s.Name).Str("field", f.Name).Str("type", t.Name).Msg("dropping choice variant")
			}
		}
		if len(args) == 2 {
			g.Logger.Warn().Str("shape", s.Name).Str("field", f.Name).Msg("dropping choice field without variants")
			return nil, false
		}
		return Qual(shapePkg, "Choice").Custom(multi("(", ")"), args...), true
	}

	t := f.PossibleTypes[0]
	switch {
	case t.IsNestedResource:
		return Qual(shapePkg, "NestedResource").Call(Lit(f.Name), c), true
	case t.IsPrimitive:
		return Qual(shapePkg, "Primitive").Call(Lit(f.Name), Lit(t.Name), c), true
	default:
		return Qual(shapePkg, "Nested").Call(Lit(f.Name), Lit(t.Name), c), true
	}
}

func constructor(s ir.Struct) string {
	switch s.Base {
	case "DomainResource":
		return "DomainResource"
	case "Resource":
		return "Resource"
	case "BackboneElement":
		return "Backbone"
	default:
		return "Element"
	}
}

func cardinality(f ir.StructField) string {
	switch f.Cardinality() {
	case "0..*":
		return "OptionalMany"
	case "0..1":
		return "OptionalOne"
	case "1..*":
		return "RequiredMany"
	default:
		return "RequiredOne"
	}
}

func hasStruct(structs map[string]ir.Struct, name string) bool {
	_, ok := structs[name]
	return ok
}

func multi(open, end string) Options {
	return Options{Open: open, Close: end, Separator: ",", Multi: true}
}
