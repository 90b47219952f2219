package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerWritesFrames(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, "rendering")
	s.Start()
	time.Sleep(5 * spinnerInterval)
	s.Stop()

	if !strings.Contains(buf.String(), "rendering") {
		t.Errorf("spinner output %q missing the message", buf.String())
	}
}

func TestSpinnerStopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, "rendering")
	s.Start()
	s.Stop()

	out := buf.String()
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner output %q should end with a carriage return", out)
	}
	if !strings.Contains(out, strings.Repeat(" ", len("rendering")+4)) {
		t.Errorf("spinner output %q should blank the message", out)
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, "rendering")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerNotCancelledAfterStop(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, "rendering")
	s.Start()
	s.Stop()

	if s.Cancelled() {
		t.Error("Cancelled() should be false after a plain Stop")
	}
}

func TestSpinnerCancelledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	s := newSpinnerTo(ctx, &buf, "rendering")
	s.Start()

	cancel()
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled() should be true after the context is cancelled")
	}
}

func TestSpinnerCancelledByTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	s := newSpinnerTo(ctx, &buf, "rendering")
	s.Start()

	time.Sleep(20 * time.Millisecond)
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled() should be true after the context times out")
	}
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, "rendering")
	s.Start()
	s.StopWithSuccess("Rendered %s", "cos-pair")
}
