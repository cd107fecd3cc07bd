package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is returned when a roster row cannot be interpreted.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrNoResult means a query's precondition was not met, e.g. there are
	// no namesakes or no consecutive run of ids.
	ErrNoResult = errors.New("no result")
	// ErrInvalidInput is returned for bad query arguments.
	ErrInvalidInput = errors.New("invalid input")
)

// RecordError describes a malformed roster row.
type RecordError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Reason string
}

func (e *RecordError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%s: column %q: %s", ErrMalformedRecord, e.Column, e.Reason)
	}
	return fmt.Sprintf("%s: row %d, column %q (%q): %s", ErrMalformedRecord, e.Row, e.Column, e.Value, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrMalformedRecord }

func noResult(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrNoResult)
}

func fmtInvalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}
