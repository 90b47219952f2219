// Package cli implements the colplot command tree.
//
// Execute wires the subcommands and runs one:
//
//   - generate samples a scenario into a dataset and exports it as JSON
//   - render produces SVG, PNG, PDF, or JSON artifacts from a dataset
//   - demo browses and renders the builtin scenario catalog
//   - serve runs the HTTP figure server on top of a gallery store
//   - cache reports and clears the on-disk artifact cache
//
//	if err := cli.Execute(context.Background()); err != nil {
//	    os.Exit(1)
//	}
//
// Every command accepts --verbose (-v), which drops the stderr logger to
// debug level. The logger rides the command context, so helpers reach it
// through loggerFromContext without extra plumbing.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds a charmbracelet logger that writes to w, drops
// messages below level, and stamps each line with wall-clock time down
// to hundredths of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration. Timings log at debug level so they show up under
// --verbose without cluttering normal command output.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts timing an operation. The returned progress should
// call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time since newProgress, rounded to the
// nearest millisecond.
// Example output: "Rendered cos-pair: 2 artifacts (87ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey keeps this package's context values from colliding with keys
// defined elsewhere.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to the context for loggerFromContext to find.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when the context carries none, so callers never get nil.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
