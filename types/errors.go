package types

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the input document is empty.
var ErrEmptyInput = errors.New("empty input document")

// ParseError reports a failure to parse the input HTML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse HTML: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// VisitError reports that a visitor callback aborted the conversion.
type VisitError struct {
	NodeType NodeType
	TagName  string
	Message  string
}

func (e *VisitError) Error() string {
	if e.TagName != "" {
		return fmt.Sprintf("visitor aborted at <%s>: %s", e.TagName, e.Message)
	}
	return fmt.Sprintf("visitor aborted: %s", e.Message)
}
