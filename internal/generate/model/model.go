// Package model holds the parts of the FHIR conformance resources the
// generator reads: Bundles of StructureDefinitions and their snapshot
// element definitions.
package model

import (
	"encoding/json"
	"fmt"
)

type Bundle struct {
	Entry []BundleEntry `json:"entry"`
}

type BundleEntry struct {
	// Resource is a *StructureDefinition or, for any other resource type,
	// the raw JSON.
	Resource any
}

func (e *BundleEntry) UnmarshalJSON(b []byte) error {
	var entry struct {
		Resource json.RawMessage `json:"resource"`
	}
	if err := json.Unmarshal(b, &entry); err != nil {
		return err
	}
	if len(entry.Resource) == 0 {
		return nil
	}

	var header struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(entry.Resource, &header); err != nil {
		return err
	}
	switch header.ResourceType {
	case "StructureDefinition":
		var sd StructureDefinition
		if err := json.Unmarshal(entry.Resource, &sd); err != nil {
			return fmt.Errorf("StructureDefinition: %w", err)
		}
		e.Resource = &sd
	default:
		e.Resource = entry.Resource
	}
	return nil
}

type StructureDefinition struct {
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	Abstract       bool   `json:"abstract"`
	Type           string `json:"type"`
	BaseDefinition string `json:"baseDefinition"`
	Derivation     string `json:"derivation"`
	Snapshot       struct {
		Element []ElementDefinition `json:"element"`
	} `json:"snapshot"`
}

type ElementDefinition struct {
	Path             string `json:"path"`
	Min              int    `json:"min"`
	Max              string `json:"max"`
	Type             []Type `json:"type"`
	ContentReference string `json:"contentReference"`
}

type Type struct {
	Code      string      `json:"code"`
	Extension []Extension `json:"extension"`
}

type Extension struct {
	URL      string `json:"url"`
	ValueURL string `json:"valueUrl"`
}

// FHIRTypeExtension carries the FHIR type of elements typed by a FHIRPath
// system type, such as Extension.url.
const FHIRTypeExtension = "http://hl7.org/fhir/StructureDefinition/structuredefinition-fhir-type"

// FHIRType returns the FHIR type code of t.
func (t Type) FHIRType() string {
	for _, e := range t.Extension {
		if e.URL == FHIRTypeExtension && e.ValueURL != "" {
			return e.ValueURL
		}
	}
	return t.Code
}
