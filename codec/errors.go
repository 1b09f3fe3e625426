package codec

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyFile      = errors.New("file is empty")
	ErrHeaderMismatch = errors.New("header does not match the lap export format")
	ErrLineTooShort   = errors.New("line has too few fields")
	ErrFieldParse     = errors.New("field could not be parsed")
	ErrMalformedLine  = errors.New("line is not valid csv")
)

// HeaderMismatchError reports the header line that failed validation.
type HeaderMismatchError struct {
	Header  string
	Missing []string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("%s: missing %v in %q", ErrHeaderMismatch, e.Missing, e.Header)
}

func (e *HeaderMismatchError) Is(target error) bool {
	return target == ErrHeaderMismatch
}

// LineError is a per line import problem. Line is 1-based and counts
// the header.
type LineError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *LineError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q: %s", e.Line, e.Field, e.Value, e.Err)
}

func (e *LineError) Cause() error  { return e.Err }
func (e *LineError) Unwrap() error { return e.Err }
