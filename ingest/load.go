package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format is a supported spreadsheet file format.
type Format int

const (
	FormatCSV Format = iota + 1
	FormatXLSX
	FormatXLS
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	}
	return "unknown"
}

// Extensions lists the accepted file extensions.
var Extensions = []string{".xlsx", ".xls", ".csv"}

// DetectFormat maps a file name to a Format by case-insensitive extension.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	}
	return 0, ErrUnsupportedFormat
}

// Load parses file contents into a Dataset. name is only used for format
// detection and as the dataset source.
func Load(name string, data []byte, loc Locale) (*Dataset, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}
	grid, err := extract(format, data)
	if err != nil {
		return nil, &IngestError{Source: name, Err: err}
	}
	ds, err := Normalize(grid, loc)
	if err != nil {
		return nil, err
	}
	ds.source = filepath.Base(name)
	return ds, nil
}

// LoadFile reads and parses path. Unsupported extensions fail before the
// file is opened.
func LoadFile(path string, loc Locale) (*Dataset, error) {
	if _, err := DetectFormat(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IngestError{Source: path, Err: err}
	}
	return Load(path, data, loc)
}

// extract reads the first sheet of data. Panics from the format readers
// are reported as errors.
func extract(format Format, data []byte) (grid Grid, err error) {
	defer func() {
		if r := recover(); r != nil {
			grid = nil
			err = fmt.Errorf("reading %s data: %v", format, r)
		}
	}()

	switch format {
	case FormatCSV:
		return extractCSV(data)
	case FormatXLSX:
		return extractXLSX(data)
	case FormatXLS:
		return extractXLS(data)
	}
	return nil, ErrUnsupportedFormat
}
