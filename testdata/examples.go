package testdata

import (
	"embed"
	"io/fs"
	"log"
	"path"
)

//go:embed examples/*.json
var examples embed.FS

// GetExamples returns the example documents keyed by file name.
func GetExamples() map[string][]byte {
	entries, err := fs.ReadDir(examples, "examples")
	if err != nil {
		log.Fatal(err)
	}

	out := map[string][]byte{}
	for _, e := range entries {
		b, err := examples.ReadFile(path.Join("examples", e.Name()))
		if err != nil {
			log.Fatal(err)
		}
		out[e.Name()] = b
	}
	return out
}

// GetExample returns a single example document.
func GetExample(name string) []byte {
	b, err := examples.ReadFile(path.Join("examples", name))
	if err != nil {
		log.Fatal(err)
	}
	return b
}
