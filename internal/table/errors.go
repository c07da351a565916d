package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResult is matched by errors.Is for any EmptyResultError.
var ErrEmptyResult = errors.New("no data left after filtering")

// ValidationError reports input that cannot be turned into a usable table:
// a malformed file, a missing or duplicate column, or a bad energy cell.
type ValidationError struct {
	Msg    string
	Column string
	// Row is the 1-based data row (header excluded); 0 when not row specific.
	Row int
	Err error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString(e.Msg)
	if e.Column != "" {
		fmt.Fprintf(&b, " %q", e.Column)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " (row %d)", e.Row)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Invalid builds a ValidationError with a formatted message.
func Invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// EmptyResultError indicates filtering removed every record.
type EmptyResultError struct {
	Total   int
	Exclude []string
	Include []string
}

func (e *EmptyResultError) Error() string {
	if e == nil || (len(e.Exclude) == 0 && len(e.Include) == 0) {
		return ErrEmptyResult.Error()
	}
	var parts []string
	if len(e.Exclude) > 0 {
		parts = append(parts, "exclude="+strings.Join(e.Exclude, ","))
	}
	if len(e.Include) > 0 {
		parts = append(parts, "include="+strings.Join(e.Include, ","))
	}
	return fmt.Sprintf("%s (%d rows, %s)", ErrEmptyResult.Error(), e.Total, strings.Join(parts, " "))
}

func (e *EmptyResultError) Is(target error) bool { return target == ErrEmptyResult }

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
