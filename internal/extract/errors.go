package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrAnchorNotFound is returned when the label a mandatory field starts
	// at does not appear on the page.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrPatternMismatch is returned when a mandatory field's text does not
	// have the expected shape.
	ErrPatternMismatch = errors.New("pattern mismatch")

	// ErrTemplateBreak is returned when a section has a shape no known
	// template produces, which usually means the upstream page layout changed.
	ErrTemplateBreak = errors.New("template break")
)

// FieldError describes a field that could not be extracted.
type FieldError struct {
	// Field is the name of the record field, e.g. "hitPoints".
	Field string

	// Reason wraps one of the package sentinel errors.
	Reason error

	// Run is the collected text the pattern was applied to, if any.
	Run string
}

func (e *FieldError) Error() string {
	if e.Run == "" {
		return fmt.Sprintf("field %s: %v", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %s: %v (run %q)", e.Field, e.Reason, e.Run)
}

func (e *FieldError) Unwrap() error { return e.Reason }

func missing(field string) error {
	return &FieldError{Field: field, Reason: ErrAnchorNotFound}
}

func mismatch(field, run string) error {
	return &FieldError{Field: field, Reason: ErrPatternMismatch, Run: run}
}

func broken(field, run, format string, args ...any) error {
	return &FieldError{
		Field:  field,
		Reason: fmt.Errorf("%w: %s", ErrTemplateBreak, fmt.Sprintf(format, args...)),
		Run:    run,
	}
}
