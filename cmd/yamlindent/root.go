package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nestoca/yamlindent/internal/config"
	"github.com/nestoca/yamlindent/internal/style"
)

func NewRootCmd(version string) *cobra.Command {
	var flags config.GlobalFlags

	cmd := &cobra.Command{
		Use:          "yamlindent",
		Short:        "Detect the indentation used by yaml files",
		Long:         "Detect the number of spaces used per nesting level in yaml files, and check that files stick to an expected indentation.",
		SilenceUsage: true,
		// Errors are printed by main.
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			style.Init(flags.NoColor)

			level := log.InfoLevel
			if flags.Verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Prefix: "yamlindent",
				Level:  level,
			})

			ctx := log.WithContext(cmd.Context(), logger)
			cmd.SetContext(config.ToFlagsContext(ctx, &flags))
		},
	}

	// Pre-parsed in main, declared here so that cobra accepts it.
	cmd.PersistentFlags().String("config-dir", "", "Directory containing the .yamlindentrc config file (defaults to home directory)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(NewDetectCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
