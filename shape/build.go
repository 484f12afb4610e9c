package shape

// The constructors below are what the generated catalogs are written in.

// Primitive declares a field holding a FHIR primitive.
func Primitive(name, code string, c Cardinality) Field {
	return Field{Name: name, Kind: ValuePrimitive, Type: code, Cardinality: c}
}

// Nested declares a field holding an element of the named shape.
func Nested(name, shapeName string, c Cardinality) Field {
	return Field{Name: name, Kind: ValueShape, Type: shapeName, Cardinality: c}
}

// NestedResource declares a field holding resources of any registered type.
func NestedResource(name string, c Cardinality) Field {
	return Field{Name: name, Kind: ValueResource, Type: "Resource", Cardinality: c}
}

// Choice declares a polymorphic field such as value[x]. Variants are tried in
// the given order when decoding.
func Choice(name string, c Cardinality, variants ...Variant) Field {
	return Field{Name: name, Kind: ValueChoice, Variants: variants, Cardinality: c}
}

// PrimitiveVariant is a choice variant holding a primitive.
func PrimitiveVariant(code string) Variant {
	return Variant{Type: code, Kind: ValuePrimitive}
}

// ShapeVariant is a choice variant holding an element.
func ShapeVariant(shapeName string) Variant {
	return Variant{Type: shapeName, Kind: ValueShape}
}

// ElementFields are the fields every element carries.
func ElementFields() []Field {
	return []Field{
		Primitive("id", "string", OptionalOne),
		Nested("extension", "Extension", OptionalMany),
	}
}

// BackboneElementFields are the fields every backbone element carries.
func BackboneElementFields() []Field {
	return append(ElementFields(), Nested("modifierExtension", "Extension", OptionalMany))
}

// ResourceFields are the fields every resource carries.
func ResourceFields() []Field {
	return []Field{
		Primitive("id", "id", OptionalOne),
		Nested("meta", "Meta", OptionalOne),
		Primitive("implicitRules", "uri", OptionalOne),
		Primitive("language", "code", OptionalOne),
	}
}

// DomainResourceFields are the fields every domain resource carries.
func DomainResourceFields() []Field {
	return append(ResourceFields(),
		Nested("text", "Narrative", OptionalOne),
		NestedResource("contained", OptionalMany),
		Nested("extension", "Extension", OptionalMany),
		Nested("modifierExtension", "Extension", OptionalMany),
	)
}

// Element declares a datatype.
func Element(name string, fields ...Field) Shape {
	return Shape{Name: name, Kind: KindElement, Base: "Element", Fields: append(ElementFields(), fields...)}
}

// Backbone declares a backbone element.
func Backbone(name string, fields ...Field) Shape {
	return Shape{Name: name, Kind: KindBackbone, Base: "BackboneElement", Fields: append(BackboneElementFields(), fields...)}
}

// Resource declares a resource that is not a domain resource, such as Binary or Bundle.
func Resource(name string, fields ...Field) Shape {
	return Shape{Name: name, Kind: KindResource, Base: "Resource", Fields: append(ResourceFields(), fields...)}
}

// DomainResource declares a domain resource.
func DomainResource(name string, fields ...Field) Shape {
	return Shape{Name: name, Kind: KindResource, Base: "DomainResource", Fields: append(DomainResourceFields(), fields...)}
}
