package model_test

import (
	"testing"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/primitive"
)

func TestMemSize(t *testing.T) {
	r := testRegistry(t)
	org := resolve(t, r, "Organization")

	empty, _ := model.Build(org, nil)
	withName, _ := model.Build(org, map[string]model.Value{
		"name": primitive.MustParse("string", "Gastroenterology"),
	})
	withAliases, _ := model.Build(org, map[string]model.Value{
		"name":  primitive.MustParse("string", "Gastroenterology"),
		"alias": model.List{primitive.MustParse("string", "GI"), primitive.MustParse("string", "Gastro")},
	})

	tests := []struct {
		name    string
		smaller model.Element
		larger  model.Element
	}{
		{"name adds size", empty, withName},
		{"aliases add size", withName, withAliases},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.smaller.MemSize() >= tt.larger.MemSize() {
				t.Errorf("expected %d < %d", tt.smaller.MemSize(), tt.larger.MemSize())
			}
		})
	}

	if empty.MemSize() <= 0 {
		t.Error("empty instance has no size")
	}
	var nilInst *model.Instance
	if nilInst.MemSize() != 0 {
		t.Error("nil instance has size")
	}
}
