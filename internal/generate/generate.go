// Package generate writes Go source from the intermediate representation of
// the FHIR StructureDefinitions.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/damedic/fhir-codec-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

const moduleName = "github.com/damedic/fhir-codec-go"

// HeaderComment marks generated files.
const HeaderComment = "Code generated by internal/cmd/generate; DO NOT EDIT."

// Generator writes files for a release. f returns the file of the given
// name, creating it on first use.
type Generator interface {
	GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rts []ir.ResourceOrType) error
}

// Files collects the files written by generators, by file name.
type Files map[string]*File

// Get returns the file with the given name, creating it if needed.
func (fs Files) Get(fileName, pkgName string) *File {
	if f, ok := fs[fileName]; ok {
		return f
	}
	f := NewFile(pkgName)
	f.HeaderComment(HeaderComment)
	fs[fileName] = f
	return f
}

// Generate runs the generators for a release and returns the written files.
func Generate(release string, rts []ir.ResourceOrType, generators ...Generator) (Files, error) {
	files := Files{}
	for _, g := range generators {
		if err := g.GenerateAdditional(files.Get, release, rts); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// Save writes the files to dir as <name>.go, in lexical order.
func (fs Files) Save(dir string) error {
	names := make([]string, 0, len(fs))
	for name := range fs {
		names = append(names, name)
	}
	sort.Strings(names)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, name := range names {
		path := filepath.Join(dir, name+".go")
		if err := fs[name].Save(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}

func pkgName(release string) string {
	return strings.ToLower(release)
}
