package report

import (
	"context"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/nestoca/yamlindent/internal/observability"
	"github.com/nestoca/yamlindent/internal/yml"
	"github.com/nestoca/yamlindent/pkg/indent"
)

// Result is the outcome of detecting the indentation of a single file.
type Result struct {
	// Path is the path of the file, as it was given.
	Path string

	// Indentation is the detected indentation, nil when the file carries no signal.
	Indentation *indent.Indentation

	// Err is set when the file could not be read or analyzed.
	Err error
}

// Spaces returns the detected indent size, or 0 when none was detected.
func (r Result) Spaces() int {
	if r.Indentation == nil {
		return 0
	}
	return r.Indentation.Spaces()
}

// Detect analyzes files with at most concurrency files in flight. Results
// are returned in the same order as files, and a failing file never prevents
// the others from being analyzed.
func Detect(ctx context.Context, files []string, concurrency int) []Result {
	ctx, span := observability.StartTrace(ctx, "detect")
	defer span.End()
	span.SetAttributes(attribute.Int("files", len(files)))

	logger := log.FromContext(ctx)
	results := make([]Result, len(files))

	group := new(errgroup.Group)
	group.SetLimit(max(concurrency, 1))
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Path: path, Err: err}
			continue
		}
		group.Go(func() error {
			results[i] = detectFile(ctx, logger, path)
			return nil
		})
	}
	_ = group.Wait()

	return results
}

func detectFile(ctx context.Context, logger *log.Logger, path string) Result {
	_, span := observability.StartTrace(ctx, "detect-file")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	file, err := yml.LoadFile(path)
	if err != nil {
		logger.Debug("detection failed", "path", path, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "detection failed")
		return Result{Path: path, Err: err}
	}

	if file.Indentation == nil {
		logger.Debug("no indentation signal", "path", path)
	} else {
		logger.Debug("detected indentation", "path", path, "spaces", file.Indentation.Spaces())
		span.SetAttributes(attribute.Int("spaces", file.Indentation.Spaces()))
	}

	return Result{Path: path, Indentation: file.Indentation}
}

// Failures returns the results that carry an error.
func Failures(results []Result) []Result {
	var failures []Result
	for _, result := range results {
		if result.Err != nil {
			failures = append(failures, result)
		}
	}
	return failures
}
