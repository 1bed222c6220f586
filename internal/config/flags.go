package config

import "context"

type GlobalFlags struct {
	// Verbose global flag used to enable debug logging.
	Verbose bool

	// NoColor global flag used to disable colored output.
	NoColor bool
}

type flagKey struct{}

func ToFlagsContext(parent context.Context, flags *GlobalFlags) context.Context {
	return context.WithValue(parent, flagKey{}, flags)
}

func FlagsFromContext(ctx context.Context) *GlobalFlags {
	flags, _ := ctx.Value(flagKey{}).(*GlobalFlags)
	if flags == nil {
		return &GlobalFlags{}
	}
	return flags
}
