// Package indent detects the indentation unit used by a YAML document.
//
// Detection happens in two steps. The document is first drained through a
// YAML parser so that only syntactically valid input reaches the text
// analysis. The leading spaces of every content line are then reduced to a
// single unit with a difference/GCD reduction.
package indent

import "fmt"

// Indentation is the number of spaces making up one nesting level.
type Indentation struct {
	spaces int
}

// Spaces returns the number of spaces used for each indentation level.
func (i Indentation) Spaces() int {
	return i.spaces
}

func (i Indentation) String() string {
	if i.spaces == 1 {
		return "1 space"
	}
	return fmt.Sprintf("%d spaces", i.spaces)
}

// Detect returns the indentation used by the given YAML document.
//
// A nil Indentation with a nil error means the document is valid but carries
// no indentation signal: every content line sits at column 0, or the document
// only uses flow style collections.
//
// Errors are one of *StructuralError, *EncodingError or ErrTabIndentation.
func Detect(yaml string) (*Indentation, error) {
	return DetectBytes([]byte(yaml))
}

// DetectBytes is the byte slice variant of Detect.
func DetectBytes(yaml []byte) (*Indentation, error) {
	if err := validate(yaml); err != nil {
		return nil, err
	}

	levels, err := collectLevels(yaml)
	if err != nil {
		return nil, err
	}

	unit := findUnit(levels)
	if unit == 0 {
		return nil, nil
	}
	return &Indentation{spaces: unit}, nil
}
