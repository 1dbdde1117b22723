package conformance

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/parsm/parsmbench/invoke"
)

// Runner drives the conformance corpus through the binary under test
// and tallies results. A Runner is scoped to one run; create a fresh
// one per run so tallies never leak across runs.
type Runner struct {
	Invoker *invoke.Invoker
	Out     io.Writer

	Passed int
	Failed int
}

// NewRunner creates a Runner writing its per-case report to out.
func NewRunner(inv *invoke.Invoker, out io.Writer) *Runner {
	return &Runner{Invoker: inv, Out: out}
}

// RunAll runs every category in order and prints the final summary.
// It returns true iff no case failed; this is the process exit-status
// contract.
func (r *Runner) RunAll(ctx context.Context, categories []Category) bool {
	for _, cat := range categories {
		r.RunCategory(ctx, cat)
	}

	r.summary()

	return r.Failed == 0
}

// RunCategory runs all cases in a category under its header.
func (r *Runner) RunCategory(ctx context.Context, cat Category) {
	fmt.Fprintf(r.Out, "\n🔧 %s TESTS\n", strings.ToUpper(cat.Name))
	fmt.Fprintln(r.Out, strings.Repeat("=", 50))

	for _, tc := range cat.Cases {
		r.RunCase(ctx, tc)
	}
}

// RunCase invokes one case and records the judgment. A case passes iff
// observed success (exit code 0) matches ExpectedSuccess; timeouts and
// nonzero exits both count as "did not succeed". A spawn error fails
// the case regardless of expectation.
func (r *Runner) RunCase(ctx context.Context, tc TestCase) bool {
	out := r.Invoker.Run(ctx, tc.Input, tc.Args)

	if out.Kind == invoke.SpawnError {
		r.Failed++
		fmt.Fprintf(r.Out, "%s %s: failed to invoke parsm - %v\n",
			color.RedString("❌"), tc.Name, out.Err)

		return false
	}

	passed := out.Succeeded() == tc.ExpectedSuccess
	if passed {
		r.Passed++
		fmt.Fprintf(r.Out, "%s %s: %s\n",
			color.GreenString("✅"), tc.Name, tc.Description)

		if s := strings.TrimSpace(out.Stdout); s != "" {
			fmt.Fprintf(r.Out, "   Output: %s\n", s)
		}

		return true
	}

	r.Failed++
	fmt.Fprintf(r.Out, "%s %s: %s\n",
		color.RedString("❌"), tc.Name, tc.Description)
	fmt.Fprintf(r.Out, "   Expected success: %t\n", tc.ExpectedSuccess)

	if out.Kind == invoke.TimedOut {
		fmt.Fprintf(r.Out, "   Timed out after %s\n", r.Invoker.Timeout)
	} else {
		fmt.Fprintf(r.Out, "   Exit code: %d\n", out.ExitCode)
	}

	if s := strings.TrimSpace(out.Stdout); s != "" {
		fmt.Fprintf(r.Out, "   Output: %s\n", s)
	}
	if s := strings.TrimSpace(out.Stderr); s != "" {
		fmt.Fprintf(r.Out, "   Error: %s\n", s)
	}

	return false
}

func (r *Runner) summary() {
	fmt.Fprintln(r.Out, "\n📊 SUMMARY")
	fmt.Fprintln(r.Out, strings.Repeat("=", 50))
	fmt.Fprintf(r.Out, "Total tests: %d\n", r.Passed+r.Failed)
	fmt.Fprintf(r.Out, "Passed: %d\n", r.Passed)
	fmt.Fprintf(r.Out, "Failed: %d\n", r.Failed)

	if r.Failed == 0 {
		fmt.Fprintln(r.Out, color.GreenString("🎉 All tests passed!"))
	} else {
		fmt.Fprintln(r.Out, color.RedString("⚠️  %d tests failed", r.Failed))
	}
}
