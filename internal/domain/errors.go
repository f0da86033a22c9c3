package domain

import (
	"errors"
	"fmt"
)

// ExtractionReason identifies why extraction of an input failed.
type ExtractionReason string

const (
	ExtractUnsupportedFormat ExtractionReason = "UNSUPPORTED_FORMAT"
	ExtractUnreadable        ExtractionReason = "UNREADABLE"
)

// ExtractionError reports a fatal extraction failure for a single input.
type ExtractionError struct {
	Reason ExtractionReason
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s)", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates an ExtractionError wrapping err.
func NewExtractionError(reason ExtractionReason, err error) *ExtractionError {
	return &ExtractionError{Reason: reason, Err: err}
}

var (
	ErrMissingComplaintID = errors.New("record has no usable complaint id")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile          = errors.New("file contains no data")
)
