package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/nestoca/yamlindent/internal/style"
)

// PrintTable renders results as a table. When defaultIndent is positive, it is
// reported for files without indentation signal.
func PrintTable(w io.Writer, results []Result, defaultIndent int) error {
	table := tablewriter.NewWriter(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Alignment = tw.CellAlignment{Global: tw.AlignLeft}
	})
	table.Header([]string{"FILE", "INDENT", "STATUS"})

	for _, result := range results {
		if err := table.Append([]string{displayPath(result.Path), indentColumn(result, defaultIndent), statusColumn(result)}); err != nil {
			return fmt.Errorf("appending row for %s: %w", result.Path, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}

func indentColumn(result Result, defaultIndent int) string {
	switch {
	case result.Err != nil:
		return "-"
	case result.Indentation != nil:
		return strconv.Itoa(result.Indentation.Spaces())
	case defaultIndent > 0:
		return style.SecondaryInfo(fmt.Sprintf("%d (default)", defaultIndent))
	default:
		return "-"
	}
}

func statusColumn(result Result) string {
	switch {
	case result.Err != nil:
		return style.Warning(firstLine(result.Err.Error()))
	case result.Indentation == nil:
		return style.SecondaryInfo("no indentation")
	default:
		return style.OK("ok")
	}
}

type jsonResult struct {
	Path   string `json:"path"`
	Spaces *int   `json:"spaces"`
	Error  string `json:"error,omitempty"`
}

func PrintJSON(w io.Writer, results []Result) error {
	output := make([]jsonResult, len(results))
	for i, result := range results {
		output[i].Path = result.Path
		if result.Indentation != nil {
			spaces := result.Indentation.Spaces()
			output[i].Spaces = &spaces
		}
		if result.Err != nil {
			output[i].Error = result.Err.Error()
		}
	}

	b, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

type templateData struct {
	Path     string
	Spaces   int
	Detected bool
	Error    string
}

// PrintTemplate executes the text template once per result, with sprig functions available.
func PrintTemplate(w io.Writer, results []Result, text string) error {
	tmpl, err := template.New("result").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("parsing template %q: %w", text, err)
	}

	for _, result := range results {
		data := templateData{
			Path:     result.Path,
			Spaces:   result.Spaces(),
			Detected: result.Indentation != nil,
		}
		if result.Err != nil {
			data.Error = result.Err.Error()
		}
		if err := tmpl.Execute(w, data); err != nil {
			return fmt.Errorf("executing template for %s: %w", result.Path, err)
		}
		if !strings.HasSuffix(text, "\n") {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintCheck prints the outcome of checking every result against expect and
// returns the aggregated check error.
func PrintCheck(w io.Writer, results []Result, expect int) error {
	resolved := ResolveExpect(results, expect)
	for _, result := range results {
		path := displayPath(result.Path)
		if err := result.Verify(resolved); err != nil {
			fmt.Fprintf(w, "%s %s: %s\n", style.Warning("✗"), style.File(path), firstLine(describe(err, result)))
			continue
		}
		detail := "no indentation"
		if result.Indentation != nil {
			detail = result.Indentation.String()
		}
		fmt.Fprintf(w, "%s %s %s\n", style.OK("✓"), style.File(path), style.SecondaryInfo("("+detail+")"))
	}
	return Check(results, expect)
}

func describe(err error, result Result) string {
	var mismatch *MismatchError
	if errors.As(err, &mismatch) {
		return fmt.Sprintf("indented with %s spaces, expected %s", style.Indent(mismatch.Actual), style.Indent(mismatch.Expected))
	}
	return strings.TrimPrefix(err.Error(), "detecting indentation of "+result.Path+": ")
}

func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
