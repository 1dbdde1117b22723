package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// record is the shared synthetic schema. Field values are formulas of
// the record position; categorical fields cycle through fixed pools so
// value distributions are stable across dataset sizes.
type record struct {
	ID         string  `json:"id" yaml:"id" toml:"id"`
	Name       string  `json:"name" yaml:"name" toml:"name"`
	Age        int     `json:"age" yaml:"age" toml:"age"`
	Active     bool    `json:"active" yaml:"active" toml:"active"`
	Score      float64 `json:"score" yaml:"score" toml:"score"`
	Email      string  `json:"email" yaml:"email" toml:"email"`
	Department string  `json:"department" yaml:"department" toml:"department"`
}

var (
	departments = []string{"Engineering", "Sales", "Marketing", "Support"}
	shortDepts  = []string{"Eng", "Sales", "Mkt", "Support"}
	levels      = []string{"junior", "mid", "senior"}
	logLevels   = []string{"info", "warn", "error"}
	services    = []string{"api", "web", "worker", "db"}
)

// scoreTenths returns the score for record i in tenths, keeping the
// formula in integer arithmetic so output bytes never depend on float
// rounding. The score itself is 50 + i%50 + (i*0.1)%10.
func scoreTenths(i int) int {
	return 500 + 10*(i%50) + i%100
}

func makeRecord(i int) record {
	return record{
		ID:         fmt.Sprintf("obj_%06d", i),
		Name:       fmt.Sprintf("User %d", i),
		Age:        20 + i%60,
		Active:     i%3 == 0,
		Score:      float64(scoreTenths(i)) / 10,
		Email:      fmt.Sprintf("user%d@example.com", i),
		Department: departments[i%4],
	}
}

func makeRecords(count int) []record {
	recs := make([]record, count)
	for i := range recs {
		recs[i] = makeRecord(i)
	}

	return recs
}

func generateJSON(count int) (string, error) {
	data, err := json.MarshalIndent(makeRecords(count), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON dataset: %w", err)
	}

	return string(data), nil
}

func generateCSV(count int) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{
		"id", "name", "age", "active", "score", "email", "department", "level",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write CSV header: %w", err)
	}

	for i := 0; i < count; i++ {
		r := makeRecord(i)
		t := scoreTenths(i)
		row := []string{
			r.ID,
			r.Name,
			strconv.Itoa(r.Age),
			strconv.FormatBool(r.Active),
			fmt.Sprintf("%d.%d", t/10, t%10),
			r.Email,
			r.Department,
			levels[i%3],
		}

		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write CSV row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush CSV dataset: %w", err)
	}

	return sb.String(), nil
}

func generateYAML(count int) (string, error) {
	data, err := yaml.Marshal(makeRecords(count))
	if err != nil {
		return "", fmt.Errorf("marshal YAML dataset: %w", err)
	}

	return string(data), nil
}

func generateTOML(count int) (string, error) {
	// TOML has no top-level array, so records become an array of
	// tables under a single key.
	doc := struct {
		Record []record `toml:"record"`
	}{Record: makeRecords(count)}

	data, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal TOML dataset: %w", err)
	}

	return string(data), nil
}

func generateLogfmt(count int) string {
	lines := make([]string, count)
	for i := 0; i < count; i++ {
		// duration in hundredths of a second: 0.1 + (i%100)*0.01.
		d := 10 + i%100

		lines[i] = fmt.Sprintf(
			`level=%s service=%s user_id=user_%d duration=%d.%02ds msg="Request processed" status=%d request_id=req_%06d`,
			logLevels[i%3],
			services[i%4],
			i%1000,
			d/100, d%100,
			200+i%3,
			i,
		)
	}

	return strings.Join(lines, "\n")
}

func generateText(count int) string {
	lines := make([]string, count)
	for i := 0; i < count; i++ {
		t := scoreTenths(i)

		lines[i] = fmt.Sprintf("User%d %d %s %d.%d",
			i,
			20+i%60,
			shortDepts[i%4],
			t/10, t%10,
		)
	}

	return strings.Join(lines, "\n")
}
