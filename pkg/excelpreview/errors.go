package excelpreview

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrFileNotFound indicates the input file does not exist or cannot be read.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedType indicates the file extension is neither a workbook nor delimited text.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrExtractionFailed indicates the file could not be parsed.
var ErrExtractionFailed = errors.New("extraction failed")

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	Path      string
	SheetName string
	Component string // "open", "cells", "delimited"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error in %s (%s): %v", e.Path, e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in %s sheet %q (%s): %v", e.Path, e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is makes every ExtractionError match ErrExtractionFailed.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
