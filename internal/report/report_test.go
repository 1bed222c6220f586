package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/require"

	"github.com/nestoca/yamlindent/pkg/indent"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func detected(t *testing.T, yaml string) *indent.Indentation {
	t.Helper()
	indentation, err := indent.Detect(yaml)
	require.NoError(t, err)
	return indentation
}

func TestDetect(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"two.yaml":     "a:\n  b: 1\n",
		"four.yaml":    "a:\n    b: 1\n",
		"flat.yaml":    "a: 1\n",
		"invalid.yaml": "@invalid",
		"tabs.yaml":    "a: |\n  x\n  \ty\n",
	})

	files := []string{
		filepath.Join(dir, "two.yaml"),
		filepath.Join(dir, "four.yaml"),
		filepath.Join(dir, "flat.yaml"),
		filepath.Join(dir, "invalid.yaml"),
		filepath.Join(dir, "tabs.yaml"),
		filepath.Join(dir, "missing.yaml"),
	}

	for _, concurrency := range []int{0, 1, 4} {
		results := Detect(context.Background(), files, concurrency)
		require.Len(t, results, len(files))
		for i, result := range results {
			require.Equal(t, files[i], result.Path)
		}

		require.Equal(t, 2, results[0].Spaces())
		require.Equal(t, 4, results[1].Spaces())
		require.NoError(t, results[2].Err)
		require.Nil(t, results[2].Indentation)

		var structuralErr *indent.StructuralError
		require.True(t, errors.As(results[3].Err, &structuralErr))
		require.ErrorIs(t, results[4].Err, indent.ErrTabIndentation)
		require.ErrorIs(t, results[5].Err, os.ErrNotExist)

		require.Len(t, Failures(results), 3)
	}
}

func TestDetectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Detect(ctx, []string{"a.yaml", "b.yaml"}, 1)
	require.Len(t, results, 2)
	for _, result := range results {
		require.ErrorIs(t, result.Err, context.Canceled)
	}
}

func TestCheck(t *testing.T) {
	two := detected(t, "a:\n  b: 1\n")
	four := detected(t, "a:\n    b: 1\n")

	cases := []struct {
		Name        string
		Results     []Result
		Expect      int
		ExpectedErr string
	}{
		{
			Name:    "no results",
			Results: nil,
		},
		{
			Name:    "all match expected",
			Results: []Result{{Path: "a.yaml", Indentation: two}, {Path: "b.yaml", Indentation: two}},
			Expect:  2,
		},
		{
			Name:    "files without signal pass",
			Results: []Result{{Path: "a.yaml"}, {Path: "b.yaml", Indentation: four}},
			Expect:  4,
		},
		{
			Name:        "mismatch against expected",
			Results:     []Result{{Path: "a.yaml", Indentation: two}, {Path: "b.yaml", Indentation: four}},
			Expect:      2,
			ExpectedErr: "b.yaml: indented with 4 spaces, expected 2",
		},
		{
			Name:        "consistency against first detected file",
			Results:     []Result{{Path: "a.yaml"}, {Path: "b.yaml", Indentation: four}, {Path: "c.yaml", Indentation: two}},
			ExpectedErr: "c.yaml: indented with 2 spaces, expected 4",
		},
		{
			Name:        "errors fail the check",
			Results:     []Result{{Path: "a.yaml", Err: errors.New("boom")}},
			Expect:      2,
			ExpectedErr: "boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			err := Check(tc.Results, tc.Expect)
			if tc.ExpectedErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, "checking indentation")
			require.ErrorContains(t, err, tc.ExpectedErr)
		})
	}
}

func TestCheckReportsEveryFailure(t *testing.T) {
	two := detected(t, "a:\n  b: 1\n")
	results := []Result{
		{Path: "a.yaml", Indentation: two},
		{Path: "b.yaml", Err: errors.New("boom")},
		{Path: "c.yaml", Indentation: two},
	}

	err := Check(results, 4)
	require.Error(t, err)
	require.ErrorContains(t, err, "a.yaml: indented with 2 spaces, expected 4")
	require.ErrorContains(t, err, "boom")
	require.ErrorContains(t, err, "c.yaml: indented with 2 spaces, expected 4")
}

func TestResolveExpect(t *testing.T) {
	three := detected(t, "a:\n   b: 1\n")

	require.Equal(t, 2, ResolveExpect([]Result{{Indentation: three}}, 2))
	require.Equal(t, 3, ResolveExpect([]Result{{Err: errors.New("boom")}, {}, {Indentation: three}}, 0))
	require.Equal(t, 0, ResolveExpect([]Result{{}}, 0))
}

func TestPrintJSON(t *testing.T) {
	results := []Result{
		{Path: "a.yaml", Indentation: detected(t, "a:\n  b: 1\n")},
		{Path: "b.yaml"},
		{Path: "c.yaml", Err: errors.New("boom")},
	}

	var buffer bytes.Buffer
	require.NoError(t, PrintJSON(&buffer, results))

	var output []map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &output))
	require.Equal(t, []map[string]any{
		{"path": "a.yaml", "spaces": float64(2)},
		{"path": "b.yaml", "spaces": nil},
		{"path": "c.yaml", "spaces": nil, "error": "boom"},
	}, output)
}

func TestPrintTemplate(t *testing.T) {
	results := []Result{
		{Path: "a.yaml", Indentation: detected(t, "a:\n    b: 1\n")},
		{Path: "b.yaml"},
	}

	var buffer bytes.Buffer
	require.NoError(t, PrintTemplate(&buffer, results, `{{ .Path | upper }}={{ if .Detected }}{{ .Spaces }}{{ else }}none{{ end }}`))
	require.Equal(t, "A.YAML=4\nB.YAML=none\n", buffer.String())

	err := PrintTemplate(&buffer, results, "{{ .Path ")
	require.ErrorContains(t, err, "parsing template")
}

func TestPrintTable(t *testing.T) {
	results := []Result{
		{Path: "a.yaml", Indentation: detected(t, "a:\n  b: 1\n")},
		{Path: "b.yaml"},
		{Path: "c.yaml", Err: errors.New("boom\nmore details")},
	}

	var buffer bytes.Buffer
	require.NoError(t, PrintTable(&buffer, results, 2))

	output := stripansi.Strip(buffer.String())
	require.Contains(t, output, "FILE")
	require.Contains(t, output, "a.yaml")
	require.Contains(t, output, "2 (default)")
	require.Contains(t, output, "no indentation")
	require.Contains(t, output, "boom")
	require.NotContains(t, output, "more details")
}

func TestPrintCheck(t *testing.T) {
	results := []Result{
		{Path: "a.yaml", Indentation: detected(t, "a:\n  b: 1\n")},
		{Path: "b.yaml"},
		{Path: "c.yaml", Indentation: detected(t, "a:\n    b: 1\n")},
	}

	var buffer bytes.Buffer
	err := PrintCheck(&buffer, results, 0)
	require.ErrorContains(t, err, "c.yaml: indented with 4 spaces, expected 2")

	require.Equal(t,
		"✓ a.yaml (2 spaces)\n"+
			"✓ b.yaml (no indentation)\n"+
			"✗ c.yaml: indented with 4 spaces, expected 2\n",
		stripansi.Strip(buffer.String()),
	)
}
