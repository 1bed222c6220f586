package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/nestoca/yamlindent/internal/config"
)

// version represents the version of our built application.
// it will be set via ldflags during the build process.
var version string

func main() {
	params := RunParams{
		version: version,
		args:    os.Args[1:],
		out:     os.Stdout,
		err:     os.Stderr,
	}
	if err := run(params); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

type RunParams struct {
	version string
	args    []string
	out     io.Writer
	err     io.Writer
}

func run(params RunParams) error {
	if params.version == "" {
		params.version = debugBuildVersion()
	}

	var configDir string
	flags := flag.NewFlagSet("root", flag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	flags.StringVar(&configDir, "config-dir", "", "")
	_ = flags.Parse(params.args)

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	rootCmd := NewRootCmd(params.version)
	rootCmd.SetArgs(params.args)
	rootCmd.SetOut(params.out)
	rootCmd.SetErr(params.err)
	rootCmd.SetContext(config.ToContext(context.Background(), cfg))

	return rootCmd.Execute()
}

func debugBuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	return info.Main.Version
}
