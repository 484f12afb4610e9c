// Package logging builds the zerolog logger of the command line tools.
package logging

import (
	"io"

	"github.com/damedic/fhir-codec-go/internal/config"
	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to w, or human readable lines in
// development.
func New(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), err
	}

	if cfg.IsDev() {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
