package main

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/damedic/fhir-codec-go/internal/generate/model"
)

type bundles struct {
	resources model.Bundle
	types     model.Bundle
}

func readJSONFromZIP(path string) (bundles, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return bundles{}, err
	}
	defer r.Close()

	var b bundles
	if err := readAndParseJSON(r, "profiles-resources.json", &b.resources); err != nil {
		return bundles{}, err
	}
	if err := readAndParseJSON(r, "profiles-types.json", &b.types); err != nil {
		return bundles{}, err
	}
	return b, nil
}

func readAndParseJSON(fsys fs.FS, name string, bundle *model.Bundle) error {
	file, err := fsys.Open(name)
	if err != nil {
		file, err = fsys.Open("definitions.json/" + name)
	}
	if err != nil {
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(bundle); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
