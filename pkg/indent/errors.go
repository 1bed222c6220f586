package indent

import (
	"errors"
	"fmt"
)

// ErrTabIndentation is returned when a content line is indented with a tab.
var ErrTabIndentation = errors.New("tab characters are not allowed for indentation in YAML")

// StructuralError wraps the parser diagnostic for input that is not valid YAML.
type StructuralError struct {
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid yaml: %v", e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// EncodingError reports input that is not valid UTF-8.
type EncodingError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8: invalid byte sequence at offset %d", e.Offset)
}
