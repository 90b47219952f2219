package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// spinnerInterval is the frame advance rate of the render spinner.
const spinnerInterval = 80 * time.Millisecond

// spinnerFrames is the braille animation cycle.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a progress indicator for long renders. It animates on stderr
// until Stop is called or the surrounding context ends.
type Spinner struct {
	message string
	out     io.Writer
	parent  context.Context // reports external cancellation
	ctx     context.Context // ends the animation goroutine
	cancel  context.CancelFunc
	stopped chan struct{}
}

// newSpinner creates a spinner bound to ctx that animates on stderr.
func newSpinner(ctx context.Context, message string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, message)
}

// newSpinnerTo creates a spinner writing its frames to out.
func newSpinnerTo(ctx context.Context, out io.Writer, message string) *Spinner {
	runCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		out:     out,
		parent:  ctx,
		ctx:     runCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start launches the animation goroutine. Every Start needs a matching
// Stop.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			}
		}
	}()
}

// Stop ends the animation and clears the line. It waits for the animation
// goroutine to exit, so nothing is written to out after Stop returns.
// Calling Stop again is harmless.
func (s *Spinner) Stop() {
	s.cancel()
	<-s.stopped
	s.clearLine()
}

// StopWithSuccess stops the spinner and prints a success line in its place.
func (s *Spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	printSuccess(format, args...)
}

// Cancelled reports whether the surrounding context ended the spinner, as
// opposed to a normal Stop.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

func (s *Spinner) clearLine() {
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
