// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package namelist reads an ordered list of recipient names from the first
// column of a spreadsheet (.xlsx) or delimited text file (.csv). The list
// overrides per-page name extraction during a split: entry i names page i+1.
package namelist

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads the first column of the file at path as an ordered name list.
// Blank entries are discarded; order is preserved. The format is chosen by
// extension; anything other than .xlsx or .csv is a format error.
func Load(path string) ([]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return loadSpreadsheet(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported name list format %q (want .xlsx or .csv)", ext)
	}
}

// loadSpreadsheet reads column A of the first sheet.
func loadSpreadsheet(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	var names []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// loadCSV reads the first field of each record. Records may have varying
// field counts.
func loadCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name list %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var names []string
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		if name := strings.TrimSpace(rec[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
