package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nestoca/yamlindent/internal/ignore"
)

var DefaultExtensions = []string{".yaml", ".yml"}

type Options struct {
	// Extensions of files picked up when walking directories. Defaults to DefaultExtensions.
	Extensions []string
}

// Files expands the given paths into a sorted list of yaml files. Files given
// explicitly are always included. Directories are walked recursively, skipping
// hidden directories and anything matched by their ignore file.
func Files(paths []string, opts Options) ([]string, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			files = append(files, filepath.Clean(path))
			continue
		}

		dirFiles, err := walkDir(path, extensions)
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", path, err)
		}
		files = append(files, dirFiles...)
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func walkDir(root string, extensions []string) ([]string, error) {
	matcher, err := ignore.NewMatcher(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") || matcher.Match(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if !hasExtension(entry.Name(), extensions) || matcher.Match(relPath, false) {
			return nil
		}

		files = append(files, filepath.Clean(path))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range extensions {
		if ext == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}
