// Command fhircodec validates, normalizes and inspects FHIR R4 and STU3 JSON
// documents.
package main

import (
	"os"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/internal/config"
	"github.com/damedic/fhir-codec-go/internal/logging"
	"github.com/damedic/fhir-codec-go/reference"
	"github.com/damedic/fhir-codec-go/shape"
	"github.com/damedic/fhir-codec-go/shapes/r4"
	"github.com/damedic/fhir-codec-go/shapes/stu3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds what the subcommands share once the configuration is loaded.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	registry *shape.Registry
}

func (a *app) decoder() *fhirjson.Decoder {
	var opts []fhirjson.DecoderOption
	if a.cfg.DisallowUnknownFields {
		opts = append(opts, fhirjson.DisallowUnknownFields())
	}
	return fhirjson.NewDecoder(a.registry, opts...)
}

func (a *app) encoder() *fhirjson.Encoder {
	if a.cfg.Indent == 0 {
		return fhirjson.NewEncoder()
	}
	return fhirjson.NewEncoder(fhirjson.Indent("", a.cfg.IndentString()))
}

func (a *app) referenceMode() reference.Mode {
	if a.cfg.StrictReferences {
		return reference.Strict
	}
	return reference.Lenient
}

func newRegistry(release string) (*shape.Registry, error) {
	if release == "STU3" {
		return stu3.NewRegistry()
	}
	return r4.NewRegistry()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "fhircodec",
		Short:        "Decode, validate and re-encode FHIR JSON",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := logging.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			registry, err := newRegistry(cfg.FHIRVersion)
			if err != nil {
				return err
			}
			a.cfg, a.logger, a.registry = cfg, logger, registry
			logger.Debug().Str("version", registry.Version()).Int("shapes", registry.Len()).Msg("loaded shape registry")
			return nil
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		validateCmd(a),
		roundtripCmd(a),
		ndjsonCmd(a),
		resolveCmd(a),
		shapesCmd(a),
	)
	return root
}
