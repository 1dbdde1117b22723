package bench

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/parsm/parsmbench/dataset"
	"github.com/parsm/parsmbench/invoke"
)

// DefaultIterations is the repetition count per benchmarked operation.
const DefaultIterations = 5

// perfIterations bounds the large-dataset performance pass, which runs
// fewer repetitions because each one is expensive.
const perfIterations = 3

// DefaultRealWorldPath is the conventional location of a real-world
// JSON payload; the scenario is skipped when the file is absent.
const DefaultRealWorldPath = "/workspaces/parsm/7780.json"

// Result holds the aggregated statistics for one (operation, format,
// size) tuple. When SuccessfulRuns is 0 the duration fields are
// meaningless and must not be used; Failed reports that state and the
// report layer renders an explicit marker instead of numbers.
type Result struct {
	Operation      string
	Format         string
	Size           string
	Avg            time.Duration
	Min            time.Duration
	Max            time.Duration
	StdDev         time.Duration
	SuccessfulRuns int
}

// Failed reports whether no repetition of this benchmark succeeded.
func (r Result) Failed() bool { return r.SuccessfulRuns == 0 }

// Executor accumulates benchmark results across one run. Results are
// appended strictly in completion order, which under the sequential
// driver equals invocation order.
type Executor struct {
	Invoker       *invoke.Invoker
	Iterations    int
	RealWorldPath string
	Logger        *slog.Logger

	Results []Result
}

// NewExecutor creates an Executor with the given repetition count.
func NewExecutor(inv *invoke.Invoker, iterations int, logger *slog.Logger) *Executor {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	return &Executor{
		Invoker:       inv,
		Iterations:    iterations,
		RealWorldPath: DefaultRealWorldPath,
		Logger:        logger,
	}
}

// RunOperation benchmarks one operation: it invokes parsm iterations
// times with the given payload and arguments, excludes failed or
// timed-out repetitions from the statistics, and appends the Result.
// A repetition failure never aborts the remaining repetitions.
func (e *Executor) RunOperation(
	ctx context.Context,
	operation, format, size string,
	input string,
	args []string,
	iterations int,
) Result {
	e.Logger.Info("benchmarking",
		slog.String("operation", operation),
		slog.String("format", format),
		slog.String("size", size),
	)

	times := make([]time.Duration, 0, iterations)

	for i := 0; i < iterations; i++ {
		out := e.Invoker.Run(ctx, input, args)
		if out.Succeeded() {
			times = append(times, out.Elapsed)

			continue
		}

		e.Logger.Warn("repetition failed or timed out",
			slog.String("operation", operation),
			slog.Int("run", i+1),
			slog.String("outcome", out.Kind.String()),
		)
	}

	res := Result{
		Operation:      operation,
		Format:         format,
		Size:           size,
		SuccessfulRuns: len(times),
	}

	if len(times) == 0 {
		e.Logger.Warn("all runs failed",
			slog.String("operation", operation),
			slog.String("format", format),
			slog.String("size", size),
		)
	} else {
		s := Summarize(times)
		res.Avg = s.Avg
		res.Min = s.Min
		res.Max = s.Max
		res.StdDev = s.StdDev
	}

	e.Results = append(e.Results, res)

	return res
}

// RunFormat benchmarks the full catalog for one format against the
// small and medium payloads.
func (e *Executor) RunFormat(ctx context.Context, f dataset.Format, small, medium string) {
	for _, op := range Catalog(f) {
		e.RunOperation(ctx, op.Name+"_small", string(f), "small", small, op.Args, e.Iterations)
		e.RunOperation(ctx, op.Name+"_medium", string(f), "medium", medium, op.Args, e.Iterations)
	}
}

// RunAll executes the whole benchmark suite: every format's catalog at
// small and medium sizes, the reduced large-dataset performance pass,
// and the optional real-world payload.
func (e *Executor) RunAll(ctx context.Context) error {
	for _, f := range dataset.Formats() {
		small, err := dataset.Generate(f, dataset.SizeSmall)
		if err != nil {
			return fmt.Errorf("generate small %s dataset: %w", f, err)
		}

		medium, err := dataset.Generate(f, dataset.SizeMedium)
		if err != nil {
			return fmt.Errorf("generate medium %s dataset: %w", f, err)
		}

		e.Logger.Info("benchmarking format", slog.String("format", string(f)))
		e.RunFormat(ctx, f, small, medium)
	}

	if err := e.runPerformancePass(ctx); err != nil {
		return err
	}

	e.runRealWorld(ctx)

	return nil
}

// runPerformancePass benchmarks a reduced catalog against large JSON
// and CSV datasets with fewer repetitions.
func (e *Executor) runPerformancePass(ctx context.Context) error {
	jsonLarge, err := dataset.Generate(dataset.JSON, dataset.SizeLarge)
	if err != nil {
		return fmt.Errorf("generate large json dataset: %w", err)
	}

	csvLarge, err := dataset.Generate(dataset.CSV, dataset.SizeLarge)
	if err != nil {
		return fmt.Errorf("generate large csv dataset: %w", err)
	}

	e.Logger.Info("running large-dataset performance pass")

	perf := []struct {
		operation string
		format    dataset.Format
		input     string
		args      []string
	}{
		{"field_selection_large", dataset.JSON, jsonLarge, []string{"name"}},
		{"template_simple_large", dataset.JSON, jsonLarge, []string{"${name} (${age})"}},
		{"filter_simple_large", dataset.JSON, jsonLarge, []string{"age > 30"}},
		{"csv_field_large", dataset.CSV, csvLarge, []string{"field_1"}},
		{"csv_filter_large", dataset.CSV, csvLarge, []string{`field_2 > "30"`}},
	}

	for _, p := range perf {
		e.RunOperation(ctx, p.operation, string(p.format), "large", p.input, p.args, perfIterations)
	}

	return nil
}

// runRealWorld benchmarks a real-world JSON payload when one exists at
// RealWorldPath. Absence is not an error.
func (e *Executor) runRealWorld(ctx context.Context) {
	data, err := os.ReadFile(e.RealWorldPath)
	if err != nil {
		e.Logger.Debug("real-world payload not found, skipping",
			slog.String("path", e.RealWorldPath),
		)

		return
	}

	e.Logger.Info("benchmarking real-world payload",
		slog.String("path", e.RealWorldPath),
	)

	input := string(data)
	ops := []Operation{
		{Name: "real_field_selection", Args: []string{"Id"}},
		{Name: "real_nested_field", Args: []string{"State.Status"}},
		{Name: "real_filter", Args: []string{"State.Running == true"}},
		{Name: "real_template", Args: []string{"${Name}: ${State.Status}"}},
	}

	for _, op := range ops {
		e.RunOperation(ctx, op.Name, "json_real", "real", input, op.Args, e.Iterations)
	}
}
