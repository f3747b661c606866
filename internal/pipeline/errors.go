package pipeline

import "fmt"

// ParseError reports a pipeline document that could not be decoded.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("parsing pipeline document: %v", e.Err)
	}
	return fmt.Sprintf("parsing pipeline document %q: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError reports a required key that is absent at an expected
// path within a pipeline document.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("pipeline document is missing required field %q", e.Path)
}
