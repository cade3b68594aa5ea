// Package extract drives a single extraction run from argument
// validation through wire serialization.
package extract

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/rusperres/tablex/internal/detect"
	"github.com/rusperres/tablex/internal/failure"
	"github.com/rusperres/tablex/internal/records"
)

// Driver applies the validation, fallback and serialization rules of a
// one-shot extraction run to a table detector.
type Driver struct {
	detector detect.Detector
	logger   *slog.Logger
}

// NewDriver creates a driver around the given detector.
func NewDriver(detector detect.Detector, logger *slog.Logger) *Driver {
	return &Driver{detector: detector, logger: logger}
}

// Run validates the arguments, extracts tables from the named PDF and
// returns the serialized record array. Validation and extraction
// failures come back as *failure.Error; serialization defects are
// plain errors.
func (d *Driver) Run(ctx context.Context, args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, failure.New(failure.MissingArgument, "Usage: tablex <pdf_path>")
	}
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		return nil, failure.Newf(failure.FileNotFound, "PDF file not found at: %s", path)
	}

	logger := d.logger.With("run_id", uuid.New().String(), "path", path)

	found, err := d.detect(ctx, logger, path)
	if err != nil {
		return nil, err
	}

	recs := flatten(found)
	records.Normalize(recs)
	logger.Debug("extraction finished", "records", len(recs))

	return records.Marshal(recs)
}

// detect runs the lattice attempt and falls back to stream detection
// only when lattice finds nothing. A nonempty lattice result is final
// even if stream detection would have found more.
func (d *Driver) detect(ctx context.Context, logger *slog.Logger, path string) ([]detect.Table, error) {
	req := detect.Request{
		Path:           path,
		Pages:          "all",
		Mode:           detect.ModeLattice,
		MultipleTables: true,
	}

	found, err := d.detector.Detect(ctx, req)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	if len(found) > 0 {
		logger.Debug("lattice detection succeeded", "tables", len(found))
		return found, nil
	}

	logger.Debug("lattice found no tables, trying stream detection")

	req.Mode = detect.ModeStream
	found, err = d.detector.Detect(ctx, req)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	logger.Debug("stream detection finished", "tables", len(found))
	return found, nil
}

// flatten concatenates detected tables into one flat record sequence,
// tables in order, rows in order. Cells missing from a short row come
// through as nulls.
func flatten(found []detect.Table) records.Records {
	var recs records.Records
	for _, tbl := range found {
		for _, row := range tbl.Rows {
			rec := make(records.Record, len(tbl.Labels))
			for j, label := range tbl.Labels {
				var v any
				if j < len(row) {
					v = row[j]
				}
				rec[j] = records.Field{Label: label, Value: v}
			}
			recs = append(recs, rec)
		}
	}
	return recs
}
