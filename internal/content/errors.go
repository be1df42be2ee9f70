package content

import (
	"errors"
	"fmt"
)

var (
	// ErrMissing is returned when the content document is structurally
	// absent: no file, an empty file, or a top-level null.
	ErrMissing = errors.New("content document missing")

	// ErrInvalid is returned by strict loads when validation reports issues.
	ErrInvalid = errors.New("content document invalid")

	ErrUnsupportedFormat = errors.New("unsupported content format")
)

// ParseError reports a document that is present but cannot be decoded into
// the content schema (syntax errors and wrong value types).
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Path == "" && e.Line > 0:
		return fmt.Sprintf("parse content: line %d: %v", e.Line, e.Err)
	case e.Path == "":
		return fmt.Sprintf("parse content: %v", e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse content: %s:%d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("parse content: %s: %v", e.Path, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
