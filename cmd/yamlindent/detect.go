package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/davidmdm/x/xerr"
	"github.com/spf13/cobra"

	"github.com/nestoca/yamlindent/internal/config"
	"github.com/nestoca/yamlindent/internal/discover"
	"github.com/nestoca/yamlindent/internal/report"
)

func NewDetectCmd() *cobra.Command {
	var (
		jsonOutput    bool
		templateText  string
		defaultIndent int
	)

	cmd := &cobra.Command{
		Use:     "detect [paths...]",
		Aliases: []string{"d"},
		Short:   "Detect indentation of yaml files",
		Long: `Detect the indentation of yaml files.

Paths can be files or directories, which are walked recursively for files with
one of the configured extensions. Defaults to the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if !cmd.Flags().Changed("default") {
				defaultIndent = cfg.Default
			}

			results, err := detectPaths(cmd.Context(), cfg, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				err = report.PrintJSON(out, results)
			case templateText != "":
				err = report.PrintTemplate(out, results, templateText)
			default:
				err = report.PrintTable(out, results, defaultIndent)
			}
			if err != nil {
				return fmt.Errorf("printing results: %w", err)
			}

			failures := report.Failures(results)
			if len(failures) == 0 {
				return nil
			}
			errs := make([]error, len(failures))
			for i, failure := range failures {
				errs[i] = failure.Err
			}
			return xerr.MultiErrOrderedFrom(fmt.Sprintf("detecting indentation: %d file(s) failed", len(failures)), errs...)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().StringVarP(&templateText, "template", "t", "", "Go template rendered for each file, with fields .Path, .Spaces, .Detected and .Error")
	cmd.Flags().IntVarP(&defaultIndent, "default", "d", 0, "Indent size reported for files without indentation (defaults to config, 0 to disable)")
	cmd.MarkFlagsMutuallyExclusive("json", "template")

	return cmd
}

func detectPaths(ctx context.Context, cfg *config.Config, paths []string) ([]report.Result, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := discover.Files(paths, discover.Options{Extensions: cfg.Extensions})
	if err != nil {
		return nil, fmt.Errorf("discovering yaml files: %w", err)
	}
	log.FromContext(ctx).Debug("discovered yaml files", "count", len(files))

	return report.Detect(ctx, files, cfg.Concurrency), nil
}
