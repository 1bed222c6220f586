package style

import (
	"os"

	"github.com/TwiN/go-color"
	"golang.org/x/term"
)

const darkGrey = "\033[38;2;90;90;90m"

// Init enables colors only when stdout is a terminal and colors were not disabled explicitly.
func Init(noColor bool) {
	color.Toggle(!noColor && term.IsTerminal(int(os.Stdout.Fd())))
}

// SecondaryInfo is for text that should be less prominent than the main text
func SecondaryInfo(s any) string {
	return color.Colorize(darkGrey, s)
}

// File is for paths of analyzed files
func File(s any) string {
	return color.InBold(color.InYellow(s))
}

// OK is for files in expected state, such as a file using the expected indentation
func OK(s any) string {
	return color.InGreen(s)
}

// Warning is for text that is a warning or an error, such as a file using unexpected indentation
func Warning(s any) string {
	return color.InRed(s)
}

// Indent is for indent sizes within messages (not tables)
func Indent(s any) string {
	return color.InBold(color.InCyan(s))
}
