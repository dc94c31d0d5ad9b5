/*
PURPOSE:
  High-level orchestration for the render command: load execution
  records from a JSON Lines file and emit the configured outputs
  (aligned table, optional per-record full reports, optional CSV).

REQUIREMENTS:
  User-specified:
  - One header line, one table row per record, columns aligned.
  - Optional CSV export alongside the table.

  Implementation-discovered:
  - Needs to report progress to CLI via the logger, not stdout.
  - A bad field list must fail before any row is written.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/output, internal/stats, internal/config

ERROR HANDLING:
  - Load and header errors abort; a row-level error aborts too (field
    lists are validated up front, so row errors only come from
    records whose counter set lacks a requested counter).

IMPLEMENTATION RULES:
  - stdout (the writer handed in) carries only table/report text.

USAGE:
  engine.Render(cfg, "records.jsonl", os.Stdout)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/output/table.go
  - internal/output/json.go

MAINTENANCE:
  - Update if render grows more export formats.
*/

package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/daryltucker/solver-stats/internal/config"
	"github.com/daryltucker/solver-stats/internal/output"
)

// Render loads records from path and writes the configured outputs.
// Table and reports go to w; CSV (if configured) to cfg.OutputDir.
func Render(cfg *config.Config, path string, w io.Writer) (err error) {
	recs, err := output.LoadRecords(path)
	if err != nil {
		return fmt.Errorf("failed to load records from %s: %w", path, err)
	}
	output.Logger.Info("Loaded records", "path", path, "count", len(recs))

	var csvWriter *output.CSVWriter
	if cfg.CSVFile != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
		}
		csvPath := filepath.Join(cfg.OutputDir, cfg.CSVFile)
		csvWriter, err = output.NewCSVWriter(csvPath)
		if err != nil {
			return fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
		}
		// A failed final flush is data loss; surface it instead of
		// swallowing it in the defer.
		defer func() {
			if cerr := csvWriter.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close CSV at %s: %w", csvPath, cerr)
			}
		}()
		output.Logger.Info("Exporting CSV", "path", csvPath)
	}

	table, err := output.NewTableWriter(w, cfg.Fields)
	if err != nil {
		return fmt.Errorf("invalid field list %v: %w", cfg.Fields, err)
	}

	for i, rec := range recs {
		if err := table.Write(rec); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		if csvWriter != nil {
			if err := csvWriter.Write(rec); err != nil {
				return fmt.Errorf("record %d: CSV: %w", i+1, err)
			}
		}
	}

	if cfg.FullReport {
		for _, rec := range recs {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			if err := rec.Print(w); err != nil {
				return err
			}
		}
	}

	return nil
}
