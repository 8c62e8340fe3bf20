package merger

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every input format error
var ErrMalformed = errors.New("malformed input")

// FormatError reports a header line without a column name
type FormatError struct {
	Source string
	Line   string
}

func (e *FormatError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("%v: missing header line", e.Source)
	}
	return fmt.Sprintf("%v: invalid header: '%v', expected '<token> <name>'", e.Source, e.Line)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrMalformed
}

// ParseError reports a data line that is not an '<identifier> <tag>' pair
type ParseError struct {
	Source     string
	LineNumber int
	IDToken    string
	Tag        string
	Line       string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v:%d: problem in line: '%v' '%v' '%v'", e.Source, e.LineNumber, e.IDToken, e.Tag, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}
