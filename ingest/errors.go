package ingest

import (
	"errors"
)

// Sentinel errors for ingestion. Their messages are shown to the user as is.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format: open an Excel (.xlsx, .xls) or CSV file")
	ErrEmptyFile         = errors.New("the file has too little data: it needs a header row and at least one data row")
	ErrNoDataRows        = errors.New("no valid data rows were found in the file")
)

const genericFailure = "an unknown error occurred while processing the file"

// IngestError wraps any other failure raised while reading or parsing a file.
type IngestError struct {
	Source string
	Err    error
}

func (e *IngestError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return genericFailure
	}
	return e.Err.Error()
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text to display for an ingestion error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrUnsupportedFormat.Error()
	case errors.Is(err, ErrEmptyFile):
		return ErrEmptyFile.Error()
	case errors.Is(err, ErrNoDataRows):
		return ErrNoDataRows.Error()
	}
	var ie *IngestError
	if errors.As(err, &ie) {
		return ie.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericFailure
}
