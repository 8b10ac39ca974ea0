package xlgrab

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress indicates a malformed cell reference string.
var ErrInvalidAddress = errors.New("invalid cell address")

// ErrInvalidRange indicates a range whose end corner precedes its start corner.
var ErrInvalidRange = errors.New("invalid cell range")

// ErrHeaderCountMismatch indicates the custom header count differs from the
// resolved column count.
var ErrHeaderCountMismatch = errors.New("header count mismatch")

// ErrSourceUnavailable indicates a spreadsheet file or sheet could not be loaded.
var ErrSourceUnavailable = errors.New("source unavailable")

// BatchError records a per-file failure during batch extraction.
type BatchError struct {
	File string
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch extraction failed for %q: %v", e.File, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
