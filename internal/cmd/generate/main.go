// Command generate writes a shape catalog from the FHIR definitions archive
// (definitions.json.zip) published with each FHIR release.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/damedic/fhir-codec-go/internal/generate"
	"github.com/damedic/fhir-codec-go/internal/generate/ir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		definitions string
		dir         string
		release     string
		include     []string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:           "generate",
		Short:         "Generate a shape catalog from FHIR StructureDefinitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

			if err := run(logger, definitions, dir, release, include); err != nil {
				logger.Error().Err(err).Msg("generation failed")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&definitions, "definitions", "definitions.json.zip", "path of the FHIR definitions archive")
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	cmd.Flags().StringVar(&release, "release", "R4", "FHIR release of the definitions")
	cmd.Flags().StringSliceVar(&include, "include", nil, "resources and types to write with everything they refer to (default all)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every added type and dropped variant")
	return cmd
}

func run(logger zerolog.Logger, definitions, dir, release string, include []string) error {
	logger.Info().Str("path", definitions).Msg("reading definitions")
	b, err := readJSONFromZIP(definitions)
	if err != nil {
		return fmt.Errorf("read definitions: %w", err)
	}

	rts := ir.Parse(&b.types, &b.resources)
	logger.Info().Int("count", len(rts)).Msg("parsed resources and types")

	files, err := generate.Generate(release, rts, generate.CatalogGenerator{
		Include: include,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if err := files.Save(dir); err != nil {
		return err
	}
	logger.Info().Str("dir", dir).Str("release", strings.ToUpper(release)).Int("files", len(files)).Msg("wrote catalog")
	return nil
}
