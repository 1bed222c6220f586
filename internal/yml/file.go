package yml

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nestoca/yamlindent/pkg/indent"
)

// File represents a yaml file loaded into memory along with the indentation
// detected from its content.
type File struct {
	// Path is the absolute path to the yaml file.
	Path string

	// Yaml is the raw yaml of the yaml file.
	Yaml []byte

	// Indentation is the indentation detected in the yaml file, or nil
	// if the file carries no indentation signal.
	Indentation *indent.Indentation
}

func NewFile(filePath string, content []byte) (*File, error) {
	indentation, err := indent.DetectBytes(content)
	if err != nil {
		return nil, fmt.Errorf("detecting indentation of %s: %w", filePath, err)
	}

	cleanFilePath, err := cleanUpFilePath(filePath)
	if err != nil {
		return nil, err
	}

	return &File{
		Path:        cleanFilePath,
		Yaml:        content,
		Indentation: indentation,
	}, nil
}

func cleanUpFilePath(filePath string) (string, error) {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("getting absolute path of %s: %w", filePath, err)
	}
	cleanFilePath := filepath.Clean(absFilePath)
	return cleanFilePath, nil
}

func LoadFile(filePath string) (*File, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading yaml file %s: %w", filePath, err)
	}
	return NewFile(filePath, content)
}

// IndentOrDefault returns the detected indent size, or defaultIndent when the
// file carries no indentation signal.
func (y *File) IndentOrDefault(defaultIndent int) int {
	if y.Indentation == nil {
		return defaultIndent
	}
	return y.Indentation.Spaces()
}
