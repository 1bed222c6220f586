package indent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// collectLevels returns the leading space count of every content line, in
// document order. Blank and comment-only lines are skipped.
func collectLevels(content []byte) ([]int, error) {
	if !utf8.Valid(content) {
		return nil, &EncodingError{Offset: invalidOffset(content)}
	}

	var levels []int
	for _, line := range splitLines(string(content)) {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		leadingSpaces := len(line) - len(strings.TrimLeft(line, " "))
		if line[leadingSpaces] == '\t' {
			return nil, ErrTabIndentation
		}

		levels = append(levels, leadingSpaces)
	}

	return levels, nil
}

// splitLines splits on '\n', dropping a trailing '\r' from each line. A final
// newline does not start an extra empty line.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func invalidOffset(content []byte) int {
	offset := 0
	for offset < len(content) {
		r, size := utf8.DecodeRune(content[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return offset
}
