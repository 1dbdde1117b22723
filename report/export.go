package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/parsm/parsmbench/bench"
)

// DefaultExportFile is the fixed CSV export filename.
const DefaultExportFile = "parsm_benchmark_results.csv"

// ExportCSV writes all results to path as CSV with a header row, in
// accumulation order. Failed results carry FAILED in every duration
// column, mirroring the table rendering.
func ExportCSV(path string, results []bench.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{
		"Operation", "Format", "Size",
		"Avg_Time_ms", "Min_Time_ms", "Max_Time_ms", "StdDev_ms",
		"Iterations",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for _, r := range results {
		row := []string{r.Operation, r.Format, r.Size}

		if r.Failed() {
			row = append(row, "FAILED", "FAILED", "FAILED", "FAILED")
		} else {
			row = append(row,
				formatMs(r.Avg),
				formatMs(r.Min),
				formatMs(r.Max),
				formatMs(r.StdDev),
			)
		}

		row = append(row, strconv.Itoa(r.SuccessfulRuns))

		if err := w.Write(row); err != nil {
			return fmt.Errorf("write export row %s: %w", r.Operation, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export file %s: %w", path, err)
	}

	return nil
}
