package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestoca/yamlindent/internal/config"
	"github.com/nestoca/yamlindent/internal/report"
)

func NewCheckCmd() *cobra.Command {
	var expect int

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"c"},
		Short:   "Check that yaml files use the expected indentation",
		Long: `Check that yaml files use the expected indentation.

Without an expected indent size, files are only required to be consistent with
the first file carrying an indentation. Files without any indentation always
pass, while invalid files fail the check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if !cmd.Flags().Changed("expect") {
				expect = cfg.Expect
			}
			if expect < 0 {
				return fmt.Errorf("invalid expected indent %d: must not be negative", expect)
			}

			results, err := detectPaths(cmd.Context(), cfg, args)
			if err != nil {
				return err
			}

			return report.PrintCheck(cmd.OutOrStdout(), results, expect)
		},
	}

	cmd.Flags().IntVarP(&expect, "expect", "e", 0, "Expected indent size (defaults to config, 0 to only check consistency)")

	return cmd
}
