// Package invoke runs the parsm binary as a child process, feeding a
// payload on stdin and classifying the outcome of each invocation.
package invoke

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Default wall-clock bounds for a single invocation.
const (
	ConformanceTimeout = 10 * time.Second
	BenchmarkTimeout   = 30 * time.Second
)

// OutcomeKind classifies how an invocation ended.
type OutcomeKind int

const (
	// OK means the process exited with status 0.
	OK OutcomeKind = iota
	// Failed means the process exited with a nonzero status.
	Failed
	// TimedOut means the process was killed after exceeding the timeout.
	TimedOut
	// SpawnError means the process could not be started at all.
	SpawnError
)

func (k OutcomeKind) String() string {
	switch k {
	case OK:
		return "ok"
	case Failed:
		return "failed"
	case TimedOut:
		return "timed out"
	case SpawnError:
		return "spawn error"
	default:
		return "unknown"
	}
}

// Outcome holds everything observed from one invocation. A fresh value
// is produced per call and owned exclusively by the caller.
type Outcome struct {
	Kind     OutcomeKind
	ExitCode int
	Stdout   string
	Stderr   string
	Elapsed  time.Duration
	// Err carries the spawn failure when Kind is SpawnError.
	Err error
}

// Succeeded reports whether the process ran to completion with exit
// status 0.
func (o Outcome) Succeeded() bool { return o.Kind == OK }

// Invoker executes the binary under test once per Run call.
type Invoker struct {
	Binary  string
	Timeout time.Duration
	Logger  *slog.Logger
}

// New creates an Invoker for the given binary path.
func New(binary string, timeout time.Duration, logger *slog.Logger) *Invoker {
	return &Invoker{
		Binary:  binary,
		Timeout: timeout,
		Logger:  logger.With(slog.String("binary", binary)),
	}
}

// Run executes the binary with the given arguments, writing input to
// its stdin. It blocks until the process exits or the timeout elapses.
// The elapsed time spans from just before spawn to process termination.
// Run never returns an error; every failure mode is an Outcome variant.
func (iv *Invoker) Run(ctx context.Context, input string, args []string) Outcome {
	if iv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, iv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, iv.Binary, args...)
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	out := Outcome{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: elapsed,
	}

	switch {
	case err == nil:
		out.Kind = OK

	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		out.Kind = TimedOut
		iv.Logger.Debug("invocation timed out",
			slog.Duration("timeout", iv.Timeout),
		)

	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.Kind = Failed
			out.ExitCode = exitErr.ExitCode()
		} else {
			out.Kind = SpawnError
			out.Err = err
			iv.Logger.Debug("spawn failed",
				slog.String("error", err.Error()),
			)
		}
	}

	return out
}
