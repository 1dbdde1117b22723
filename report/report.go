// Package report renders accumulated benchmark results as grouped
// tables and optionally exports them to a CSV file.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/parsm/parsmbench/bench"
)

// Render writes one fixed-width table per format. Formats appear in
// first-result order; rows within a format sort by (size, operation)
// lexicographically. Results with zero successful runs render a FAILED
// marker instead of numbers.
func Render(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 100))
	fmt.Fprintln(w, "BENCHMARK RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 100))

	for _, format := range formatOrder(results) {
		group := make([]bench.Result, 0, len(results))
		for _, r := range results {
			if r.Format == format {
				group = append(group, r)
			}
		}

		sort.Slice(group, func(i, j int) bool {
			if group[i].Size != group[j].Size {
				return group[i].Size < group[j].Size
			}

			return group[i].Operation < group[j].Operation
		})

		t := table.NewWriter()
		t.SetTitle("%s Format Results", strings.ToUpper(format))
		t.AppendHeader(table.Row{
			"Operation", "Size", "Avg (ms)", "Min (ms)", "Max (ms)", "StdDev (ms)", "Runs",
		})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Name: "Avg (ms)", Align: text.AlignRight},
			{Name: "Min (ms)", Align: text.AlignRight},
			{Name: "Max (ms)", Align: text.AlignRight},
			{Name: "StdDev (ms)", Align: text.AlignRight},
			{Name: "Runs", Align: text.AlignRight},
		})

		for _, r := range group {
			t.AppendRow(resultRow(r))
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, t.Render())
	}

	return nil
}

func resultRow(r bench.Result) table.Row {
	if r.Failed() {
		return table.Row{
			r.Operation, r.Size, "FAILED", "N/A", "N/A", "N/A", r.SuccessfulRuns,
		}
	}

	return table.Row{
		r.Operation,
		r.Size,
		formatMs(r.Avg),
		formatMs(r.Min),
		formatMs(r.Max),
		formatMs(r.StdDev),
		r.SuccessfulRuns,
	}
}

func formatOrder(results []bench.Result) []string {
	seen := make(map[string]bool, len(results))
	order := make([]string, 0, len(results))

	for _, r := range results {
		if !seen[r.Format] {
			seen[r.Format] = true
			order = append(order, r.Format)
		}
	}

	return order
}

func formatMs(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d)/float64(time.Millisecond))
}
