package report

import (
	"fmt"

	"github.com/davidmdm/x/xerr"
)

// MismatchError reports a file using an indent size other than the expected one.
type MismatchError struct {
	Path     string
	Actual   int
	Expected int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: indented with %d spaces, expected %d", e.Path, e.Actual, e.Expected)
}

// ResolveExpect returns expect when set, otherwise the indent size of the first
// successfully detected file. It returns 0 when no file carries a signal.
func ResolveExpect(results []Result, expect int) int {
	if expect > 0 {
		return expect
	}
	for _, result := range results {
		if result.Err == nil && result.Indentation != nil {
			return result.Indentation.Spaces()
		}
	}
	return 0
}

// Verify returns the reason the result does not satisfy expect, or nil.
// Files without indentation signal always satisfy it.
func (r Result) Verify(expect int) error {
	if r.Err != nil {
		return r.Err
	}
	if r.Indentation == nil || expect == 0 || r.Indentation.Spaces() == expect {
		return nil
	}
	return &MismatchError{Path: r.Path, Actual: r.Indentation.Spaces(), Expected: expect}
}

// Check verifies every result against expect, or against the first detected
// indent size when expect is 0.
func Check(results []Result, expect int) error {
	expect = ResolveExpect(results, expect)

	var errs []error
	for _, result := range results {
		if err := result.Verify(expect); err != nil {
			errs = append(errs, err)
		}
	}

	return xerr.MultiErrOrderedFrom("checking indentation", errs...)
}
