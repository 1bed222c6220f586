package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const (
	commentPrefix = "#"
	FileName      = ".yamlindentignore"
)

type Matcher struct {
	giMatcher gitignore.Matcher
}

// Match reports whether the slash separated path, relative to the matcher root, is ignored.
func (m *Matcher) Match(path string, isDir bool) bool {
	return m.giMatcher.Match(strings.Split(path, "/"), isDir)
}

// NewMatcher reads the ignore file found directly under rootPath. A missing
// ignore file results in a matcher that ignores nothing.
func NewMatcher(rootPath string) (*Matcher, error) {
	ignoreFilePath := filepath.Join(rootPath, FileName)

	patterns, err := readIgnoreFile(ignoreFilePath)
	if err != nil {
		return nil, err
	}

	return &Matcher{
		gitignore.NewMatcher(patterns),
	}, nil
}

func readIgnoreFile(ignoreFilePath string) (patterns []gitignore.Pattern, err error) {
	f, err := os.Open(ignoreFilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", ignoreFilePath, err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := scanner.Text()
		if !strings.HasPrefix(s, commentPrefix) && len(strings.TrimSpace(s)) > 0 {
			patterns = append(patterns, gitignore.ParsePattern(s, nil))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", ignoreFilePath, err)
	}

	return patterns, nil
}
