package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsm/parsmbench/bench"
)

func sampleResults() []bench.Result {
	return []bench.Result{
		{
			Operation:      "field_selection_small",
			Format:         "json",
			Size:           "small",
			Avg:            12 * time.Millisecond,
			Min:            10 * time.Millisecond,
			Max:            15 * time.Millisecond,
			StdDev:         2 * time.Millisecond,
			SuccessfulRuns: 5,
		},
		{
			Operation: "filter_simple_medium",
			Format:    "json",
			Size:      "medium",
		},
		{
			Operation:      "field_selection_small",
			Format:         "csv",
			Size:           "small",
			Avg:            8 * time.Millisecond,
			Min:            7 * time.Millisecond,
			Max:            9 * time.Millisecond,
			StdDev:         time.Millisecond,
			SuccessfulRuns: 5,
		},
	}
}

func TestRenderGroupsByFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResults()))

	out := buf.String()
	assert.Contains(t, out, "BENCHMARK RESULTS")
	assert.Contains(t, out, "JSON Format Results")
	assert.Contains(t, out, "CSV Format Results")
	assert.Contains(t, out, "field_selection_small")
	assert.Contains(t, out, "12.00")
}

func TestRenderFailedMarker(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResults()))

	out := buf.String()
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "N/A")
}

func TestRenderSortsWithinGroup(t *testing.T) {
	results := []bench.Result{
		{Operation: "zeta_small", Format: "json", Size: "small", SuccessfulRuns: 1, Avg: time.Millisecond},
		{Operation: "alpha_small", Format: "json", Size: "small", SuccessfulRuns: 1, Avg: time.Millisecond},
		{Operation: "beta_medium", Format: "json", Size: "medium", SuccessfulRuns: 1, Avg: time.Millisecond},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, results))

	out := buf.String()

	// (size, operation) lexicographic: medium sorts before small.
	beta := bytes.Index([]byte(out), []byte("beta_medium"))
	alpha := bytes.Index([]byte(out), []byte("alpha_small"))
	zeta := bytes.Index([]byte(out), []byte("zeta_small"))

	assert.Less(t, beta, alpha)
	assert.Less(t, alpha, zeta)
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, nil))
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, ExportCSV(path, sampleResults()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"Operation", "Format", "Size",
		"Avg_Time_ms", "Min_Time_ms", "Max_Time_ms", "StdDev_ms",
		"Iterations",
	}, rows[0])

	assert.Equal(t, "field_selection_small", rows[1][0])
	assert.Equal(t, "12.00", rows[1][3])
	assert.Equal(t, "5", rows[1][7])

	// Failed row keeps the FAILED marker in every duration column.
	assert.Equal(t, "FAILED", rows[2][3])
	assert.Equal(t, "FAILED", rows[2][6])
	assert.Equal(t, "0", rows[2][7])
}

func TestExportCSVBadPath(t *testing.T) {
	err := ExportCSV(filepath.Join(t.TempDir(), "nope", "results.csv"), sampleResults())
	assert.Error(t, err)
}
