// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/jfctl/jfctl/internal/holidays"
	"github.com/jfctl/jfctl/internal/log"
)

// Format selects the on-disk representation.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatYAML
)

// ErrUnsupportedExtension is returned by New for any output path whose
// extension is not csv, json, yaml, or yml.
var ErrUnsupportedExtension = errors.New("extension not supported")

// DefaultHeader is the column header pair for tabular output.
var DefaultHeader = []string{"date", "description"}

// Writer serializes holidays to one file in one format. The format is fixed
// at construction so an unsupported extension fails before anything is
// fetched or written.
type Writer struct {
	path   string
	header []string
	format Format
}

// New builds a Writer for the given output path, deriving the format from the
// path's extension.
func New(path string, header []string) (*Writer, error) {
	// Case-sensitive on purpose: "out.CSV" is an unsupported extension.
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	var format Format
	switch ext {
	case "csv":
		format = FormatCSV
	case "json":
		format = FormatJSON
	case "yaml", "yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	return &Writer{path: path, header: header, format: format}, nil
}

// Save writes the years to the output path, truncating any existing file.
// Every date key is re-emitted as DD/MM/YY; descriptions pass through
// unchanged. There is no atomic-write guarantee.
func (w *Writer) Save(years []holidays.Year) error {
	log.Debugf("saving holidays: path=%s format=%d years=%d", w.path, w.format, len(years))

	switch w.format {
	case FormatCSV:
		return w.saveCSV(years)
	case FormatJSON:
		return w.saveJSON(years)
	default:
		return w.saveYAML(years)
	}
}

// record is the flattened output row shared by the JSON and YAML formats.
type record struct {
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// flatten turns the per-year sequence into output rows, year ascending, then
// API key order within each year.
func flatten(years []holidays.Year) ([]record, error) {
	records := make([]record, 0)
	for _, year := range years {
		for _, day := range year.Days {
			date, err := reformatDate(day.Date)
			if err != nil {
				return nil, err
			}
			records = append(records, record{Date: date, Description: day.Description})
		}
	}
	return records, nil
}

// reformatDate reparses YYYY-MM-DD and re-emits it as DD/MM/YY.
func reformatDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Format("02/01/06"), nil
}

func (w *Writer) saveCSV(years []holidays.Year) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.UseCRLF = true

	if err := cw.Write(w.header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, year := range years {
		for _, day := range year.Days {
			date, err := reformatDate(day.Date)
			if err != nil {
				return err
			}
			if err := cw.Write([]string{date, day.Description}); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", w.path, err)
	}
	return nil
}

func (w *Writer) saveJSON(years []holidays.Year) error {
	records, err := flatten(years)
	if err != nil {
		return err
	}

	doc, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return os.WriteFile(w.path, doc, 0o644)
}

func (w *Writer) saveYAML(years []holidays.Year) error {
	records, err := flatten(years)
	if err != nil {
		return err
	}

	doc, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return os.WriteFile(w.path, doc, 0o644)
}
