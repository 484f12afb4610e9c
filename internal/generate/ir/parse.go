package ir

import (
	"strings"

	"github.com/damedic/fhir-codec-go/internal/generate/model"
	"github.com/damedic/fhir-codec-go/primitive"
	"github.com/iancoleman/strcase"
)

// Fields every struct of a base inherits. The shape constructors add them,
// so they are not repeated in the IR.
var inheritedFields = map[string][]string{
	"Element":         {"id", "extension"},
	"BackboneElement": {"id", "extension", "modifierExtension"},
	"Resource":        {"id", "meta", "implicitRules", "language"},
	"DomainResource":  {"id", "meta", "implicitRules", "language", "text", "contained", "extension", "modifierExtension"},
}

// System types of FHIRPath used for elements without a FHIR type extension.
var systemTypes = map[string]string{
	"System.Boolean":  primitive.TypeBoolean,
	"System.Integer":  primitive.TypeInteger,
	"System.String":   primitive.TypeString,
	"System.Decimal":  primitive.TypeDecimal,
	"System.Date":     primitive.TypeDate,
	"System.DateTime": primitive.TypeDateTime,
	"System.Time":     primitive.TypeTime,
}

// Parse parses FHIR Bundles of StructureDefinitions into the intermediate
// representation. Primitive types, logical models, abstract types and
// resource profiles are skipped.
func Parse(bundles ...*model.Bundle) []ResourceOrType {
	var resourcesOrTypes []ResourceOrType

	for _, s := range flattenBundles(bundles) {
		switch {
		case s.Kind == "logical", s.Kind == "primitive-type":
			continue
		case s.Abstract:
			continue
		case s.Kind == "resource" && s.Derivation == "constraint":
			continue
		}

		isResource := s.Kind == "resource"
		resourcesOrTypes = append(resourcesOrTypes, ResourceOrType{
			Name:       s.Name,
			IsResource: isResource,
			Structs: parseStructs(
				s.Name,
				isResource,
				baseOf(s),
				s.Snapshot.Element,
				s.Type,
			),
		})
	}

	return resourcesOrTypes
}

func flattenBundles(bundles []*model.Bundle) []*model.StructureDefinition {
	var definitions []*model.StructureDefinition

	for _, bundle := range bundles {
		for _, e := range bundle.Entry {
			if sd, ok := e.Resource.(*model.StructureDefinition); ok {
				definitions = append(definitions, sd)
			}
		}
	}

	return definitions
}

func baseOf(s *model.StructureDefinition) string {
	base := s.BaseDefinition[strings.LastIndex(s.BaseDefinition, "/")+1:]
	switch {
	case s.Kind == "resource" && base == "DomainResource":
		return "DomainResource"
	case s.Kind == "resource":
		return "Resource"
	case base == "BackboneElement":
		return "BackboneElement"
	default:
		return "Element"
	}
}

func parseStructs(
	name string,
	isResource bool,
	base string,
	elementDefinitions []model.ElementDefinition,
	elementPathStripPrefix string,
) []Struct {
	groupedDefinitions := groupElementDefinitionsByPrefix(elementDefinitions, elementPathStripPrefix)

	parsedStructs := []Struct{{
		Name:       name,
		Base:       base,
		IsResource: isResource,
	}}

	for _, g := range groupedDefinitions {
		if g.definitions[0].Max == "0" {
			continue
		}
		if isInherited(base, g.fieldName) {
			continue
		}

		if len(g.definitions) > 1 {
			parsedStructs = append(
				parsedStructs, parseStructs(
					name+strcase.ToCamel(g.fieldName),
					false,
					nestedBase(g.definitions[0]),
					g.definitions,
					g.definitions[0].Path,
				)...,
			)
		}

		parsedStructs[0].Fields = append(
			parsedStructs[0].Fields,
			parseField(name, g.definitions[0], elementPathStripPrefix),
		)
	}

	return parsedStructs
}

// nestedBase is the base of an inline group. Datatypes such as Timing declare
// their groups as Element, resources as BackboneElement.
func nestedBase(d model.ElementDefinition) string {
	if len(d.Type) > 0 && d.Type[0].Code == "Element" {
		return "Element"
	}
	return "BackboneElement"
}

func isInherited(base, fieldName string) bool {
	for _, f := range inheritedFields[base] {
		if f == fieldName {
			return true
		}
	}
	return false
}

type definitionsGroup struct {
	fieldName   string
	definitions []model.ElementDefinition
}

func groupElementDefinitionsByPrefix(elementDefinitions []model.ElementDefinition, stripPrefix string) []definitionsGroup {
	var grouped []definitionsGroup

	for _, d := range elementDefinitions {
		if d.Path == stripPrefix || !strings.HasPrefix(d.Path, stripPrefix+".") {
			continue
		}

		fieldName := strings.SplitN(d.Path[len(stripPrefix)+1:], ".", 2)[0]

		if len(grouped) == 0 || grouped[len(grouped)-1].fieldName != fieldName {
			grouped = append(grouped, definitionsGroup{
				fieldName: fieldName,
			})
		}

		grouped[len(grouped)-1].definitions = append(grouped[len(grouped)-1].definitions, d)
	}

	return grouped
}

func parseField(
	structName string,
	elementDefinition model.ElementDefinition,
	elementPathStripPrefix string,
) StructField {
	fieldName := elementDefinition.Path[len(elementPathStripPrefix)+1:]
	fieldName, polymorph := strings.CutSuffix(fieldName, "[x]")

	var fieldTypes []FieldType
	if polymorph {
		for _, t := range elementDefinition.Type {
			fieldTypes = append(fieldTypes, matchFieldType(t))
		}
	} else if len(elementDefinition.Type) > 0 {
		switch t := elementDefinition.Type[0]; t.Code {
		case "BackboneElement", "Element":
			fieldTypes = append(fieldTypes, FieldType{
				Name: structName + strcase.ToCamel(fieldName),
			})
		default:
			fieldTypes = append(fieldTypes, matchFieldType(t))
		}
	} else {
		// content reference like "#Bundle.link"
		fieldTypes = append(fieldTypes, FieldType{
			Name: contentReferenceName(elementDefinition.ContentReference),
		})
	}

	return StructField{
		Name:          fieldName,
		PossibleTypes: fieldTypes,
		Polymorph:     polymorph,
		Multiple:      elementDefinition.Max != "1",
		Optional:      elementDefinition.Min == 0,
	}
}

func matchFieldType(t model.Type) FieldType {
	code := t.FHIRType()

	// type like http://hl7.org/fhirpath/System.String
	if i := strings.LastIndex(code, "/"); i >= 0 {
		code = code[i+1:]
	}
	if c, ok := systemTypes[code]; ok {
		code = c
	}

	if code == "Resource" {
		return FieldType{Name: code, IsNestedResource: true}
	}
	return FieldType{
		Name:        code,
		IsPrimitive: primitive.IsType(code),
	}
}

func contentReferenceName(ref string) string {
	ref = ref[strings.Index(ref, "#")+1:]

	var b strings.Builder
	for _, part := range strings.Split(ref, ".") {
		b.WriteString(strcase.ToCamel(part))
	}
	return b.String()
}
