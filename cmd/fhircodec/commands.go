package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/ndjson"
	"github.com/damedic/fhir-codec-go/reference"
	"github.com/spf13/cobra"
)

// open opens a file argument; "-" is standard input.
func open(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

func (a *app) decodeFile(cmd *cobra.Command, name string) (*model.Instance, error) {
	f, err := open(cmd, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return a.decoder().Decode(f)
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that files decode against the shapes of the configured release",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, name := range args {
				inst, err := a.decodeFile(cmd, name)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", name, inst.ShapeName())
				if n := len(inst.Unrecognized()); n > 0 {
					a.logger.Warn().Str("file", name).Int("fields", n).Msg("unrecognized fields kept")
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func roundtripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip FILE",
		Short: "Decode a file and write its normalized encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := a.decodeFile(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := a.encoder().Marshal(inst)
			if err != nil {
				return err
			}
			again, err := a.decoder().Unmarshal(out)
			if err != nil {
				return fmt.Errorf("re-decode: %w", err)
			}
			if !model.Equal(inst, again) {
				return errors.New("encoding does not decode to the same instance")
			}

			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
}

func ndjsonCmd(a *app) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "ndjson FILE",
		Short: "Decode a newline-delimited batch of resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := open(cmd, args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			dec := ndjson.NewDecoder(a.decoder(), ndjson.WithWorkers(a.cfg.Workers), ndjson.WithLogger(a.logger))
			results, err := dec.DecodeAll(cmd.Context(), f)
			if err != nil {
				return err
			}

			var valid []*model.Instance
			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", res.Line, res.Err)
					continue
				}
				valid = append(valid, res.Instance)
			}

			if normalize {
				if err := ndjson.Encode(cmd.OutOrStdout(), valid...); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d resources, %d invalid\n", len(results), failed)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d lines invalid", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "write the decoded resources instead of a summary")
	return cmd
}

func resolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve BUNDLE REFERENCE",
		Short: "Resolve a reference against the entries of a Bundle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := a.decodeFile(cmd, args[0])
			if err != nil {
				return err
			}
			r, err := reference.FromBundle(bundle, reference.WithMode(a.referenceMode()), reference.WithLogger(a.logger))
			if err != nil {
				return err
			}

			target, err := r.ResolveLiteral(args[1])
			if err != nil {
				return err
			}
			if target == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "null")
				return err
			}
			return a.encoder().Encode(cmd.OutOrStdout(), target)
		},
	}
}

func shapesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes [NAME]",
		Short: "List the registered shapes or the fields of one shape",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

			if len(args) == 0 {
				for _, name := range a.registry.Names() {
					s, err := a.registry.Resolve(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Kind, s.Base)
				}
			} else {
				s, err := a.registry.Resolve(args[0])
				if err != nil {
					return err
				}
				for _, f := range s.Fields {
					typ := f.Type
					if len(f.Variants) > 0 {
						typ = ""
						for i, v := range f.Variants {
							if i > 0 {
								typ += "|"
							}
							typ += v.Type
						}
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Kind, typ, f.Cardinality)
				}
			}

			if err := w.Flush(); err != nil {
				return err
			}
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}
}
