// Package ndjson decodes and encodes newline-delimited FHIR resources, the
// format of FHIR bulk data exports.
//
// Lines are decoded in parallel. A malformed line does not abort the batch;
// its error is reported in the line's Result.
package ndjson

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxLineSize is the longest line a Decoder accepts unless configured otherwise.
const DefaultMaxLineSize = 16 << 20

// Result is the outcome of decoding a single line.
type Result struct {
	// Line is the 1-based line number in the input.
	Line     int
	Instance *model.Instance
	Err      error
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithWorkers sets the number of lines decoded concurrently.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(d *Decoder) {
		d.workers = n
	}
}

// WithLogger sets the logger line failures are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// WithMaxLineSize sets the longest accepted line in bytes.
func WithMaxLineSize(n int) Option {
	return func(d *Decoder) {
		d.maxLineSize = n
	}
}

// Decoder decodes NDJSON batches with a fhirjson.Decoder.
type Decoder struct {
	codec       *fhirjson.Decoder
	workers     int
	maxLineSize int
	logger      zerolog.Logger
}

// NewDecoder returns a Decoder that decodes each line with codec. Without
// WithWorkers it runs GOMAXPROCS workers.
func NewDecoder(codec *fhirjson.Decoder, opts ...Option) *Decoder {
	d := &Decoder{
		codec:       codec,
		maxLineSize: DefaultMaxLineSize,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.workers < 1 {
		d.workers = runtime.GOMAXPROCS(0)
	}
	return d
}

// DecodeAll decodes every non-blank line of r.
//
// Results are returned in input order. The returned error is non-nil only if
// reading r fails or ctx is cancelled; decode errors are reported per line.
func (d *Decoder) DecodeAll(ctx context.Context, r io.Reader) ([]Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, d.maxLineSize)), d.maxLineSize)

	var pending []*Result
	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		if gctx.Err() != nil {
			break
		}

		res := &Result{Line: line}
		pending = append(pending, res)
		b = bytes.Clone(b)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Instance, res.Err = d.codec.Unmarshal(b)
			if res.Err != nil {
				d.logger.Debug().Int("line", res.Line).Err(res.Err).Msg("failed to decode line")
			}
			return nil
		})
	}

	waitErr := g.Wait()
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", line+1, err)
	}
	if waitErr != nil {
		return nil, waitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, len(pending))
	failed, size := 0, 0
	for i, res := range pending {
		results[i] = *res
		if res.Err != nil {
			failed++
			continue
		}
		size += res.Instance.MemSize()
	}
	d.logger.Info().Int("lines", len(results)).Int("failed", failed).Int("mem_size", size).Msg("decoded ndjson batch")
	return results, nil
}

// Encode writes each instance as one compact JSON line.
func Encode(w io.Writer, instances ...*model.Instance) error {
	enc := fhirjson.NewEncoder()
	bw := bufio.NewWriter(w)
	for i, inst := range instances {
		b, err := enc.Marshal(inst)
		if err != nil {
			return fmt.Errorf("encode instance %d: %w", i, err)
		}
		bw.Write(b)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
