package indent

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// validate drains every document of the stream, stopping at the first parse error.
func validate(content []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var node yaml.Node
		err := decoder.Decode(&node)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &StructuralError{Err: err}
		}
	}
}
