package xlgrab

import (
	log "github.com/sirupsen/logrus"
)

// BatchConfig describes one file to extract during batch processing.
type BatchConfig struct {
	File          string       `mapstructure:"file"`
	Sheet         string       `mapstructure:"sheet"`
	Mapping       FieldMapping `mapstructure:"mapping"`
	IncludeSource bool         `mapstructure:"add_source"`
}

// ExtractBatch performs a mapped extraction for every configuration in input
// order. A failing configuration is logged, recorded as a diagnostic, and
// skipped; the remaining configurations still run. Partial success is the
// expected steady state.
func ExtractBatch(configs []BatchConfig) ([]*Record, []*BatchError) {
	var records []*Record
	var diags []*BatchError

	for _, cfg := range configs {
		rec, err := extractOne(cfg)
		if err != nil {
			log.WithField("file", cfg.File).Warnf("skipping: %v", err)
			diags = append(diags, &BatchError{File: cfg.File, Err: err})
			continue
		}
		log.WithField("file", cfg.File).Debug("processed")
		records = append(records, rec)
	}
	return records, diags
}

func extractOne(cfg BatchConfig) (*Record, error) {
	grid, err := LoadGrid(cfg.File, SheetByName(cfg.Sheet))
	if err != nil {
		return nil, err
	}
	rec, err := ExtractMapped(grid, cfg.Mapping)
	if err != nil {
		return nil, err
	}
	if cfg.IncludeSource {
		rec.Set("source_file", StringValue(cfg.File))
	}
	return rec, nil
}

// BatchToCSV extracts every configuration and writes the combined records to
// one CSV file. When every configuration fails nothing is written; that is a
// non-fatal terminal condition, reported in the log and by the zero count.
// The returned diagnostics carry the per-file failures.
func BatchToCSV(configs []BatchConfig, outPath string, opts ...ProjectOption) (int, []*BatchError, error) {
	records, diags := ExtractBatch(configs)
	if len(records) == 0 {
		log.Warn("no records to save")
		return 0, diags, nil
	}

	table, err := Project(records, opts...)
	if err != nil {
		return 0, diags, err
	}
	if err := table.WriteCSVFile(outPath); err != nil {
		return 0, diags, err
	}
	return len(records), diags, nil
}
