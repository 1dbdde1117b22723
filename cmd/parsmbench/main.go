// Package main provides the CLI entry point for parsmbench, the
// conformance and benchmark harness for the parsm data-query tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsm/parsmbench/bench"
	"github.com/parsm/parsmbench/conformance"
	"github.com/parsm/parsmbench/invoke"
	"github.com/parsm/parsmbench/report"
)

// errCasesFailed signals a completed conformance run with failures; the
// runner has already reported the details.
var errCasesFailed = errors.New("conformance tests failed")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errCasesFailed) {
			logger.Error(err.Error())
		}

		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "parsmbench",
		Short: "Conformance and benchmark harness for parsm",
		Long: `Parsmbench exercises the parsm data-query tool as a black box: it runs a
declared corpus of conformance cases against the binary and benchmarks
realistic operations over synthetic datasets of controlled size.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newConformanceCmd(logger))
	root.AddCommand(newBenchCmd(logger))

	return root
}

func newConformanceCmd(logger *slog.Logger) *cobra.Command {
	var binary string

	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Run the conformance test suite against parsm",
		Long: `Run every declared conformance case against the parsm binary and report
per-case results. The exit status is 0 iff all cases passed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConformance(cmd.Context(), logger, binary)
		},
	}

	cmd.Flags().StringVar(&binary, "binary", "",
		"Path to the parsm binary (default: resolve from target/)")

	return cmd
}

func runConformance(ctx context.Context, logger *slog.Logger, binary string) error {
	if err := invoke.RequireProjectRoot(); err != nil {
		return err
	}

	bin, err := invoke.ResolveBinary(ctx, logger, binary)
	if err != nil {
		return err
	}

	fmt.Println("🚀 Parsm Integration Test Suite")
	fmt.Println("Testing all supported formats and operations")

	inv := invoke.New(bin, invoke.ConformanceTimeout, logger)
	runner := conformance.NewRunner(inv, os.Stdout)

	if !runner.RunAll(ctx, conformance.Cases()) {
		return errCasesFailed
	}

	return nil
}

func newBenchCmd(logger *slog.Logger) *cobra.Command {
	var (
		binary     string
		exportCSV  bool
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the parsm microbenchmark suite",
		Long: `Benchmark parsm across formats, operations, and dataset sizes, printing a
grouped statistics table and optionally exporting the rows as CSV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.Context(), logger, binary, exportCSV, iterations)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&binary, "binary", "",
		"Path to the parsm binary (default: resolve from target/)")
	flags.BoolVar(&exportCSV, "export-csv", false,
		"Export results to "+report.DefaultExportFile)
	flags.IntVar(&iterations, "iterations", bench.DefaultIterations,
		"Number of repetitions per benchmark")

	return cmd
}

func runBench(
	ctx context.Context,
	logger *slog.Logger,
	binary string,
	exportCSV bool,
	iterations int,
) error {
	bin, err := invoke.ResolveBinary(ctx, logger, binary)
	if err != nil {
		return err
	}

	logger.Info("starting benchmark suite",
		slog.String("binary", bin),
		slog.Int("iterations", iterations),
	)

	inv := invoke.New(bin, invoke.BenchmarkTimeout, logger)
	exec := bench.NewExecutor(inv, iterations, logger)

	if err := exec.RunAll(ctx); err != nil {
		return err
	}

	if err := report.Render(os.Stdout, exec.Results); err != nil {
		return err
	}

	if exportCSV {
		if err := report.ExportCSV(report.DefaultExportFile, exec.Results); err != nil {
			return err
		}

		fmt.Printf("\nResults exported to %s\n", report.DefaultExportFile)
	}

	return nil
}
