package yml

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalStrict decodes the first document of data into ptr, failing on
// fields unknown to ptr. Empty data leaves ptr untouched.
func UnmarshalStrict(data []byte, ptr any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(ptr); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
