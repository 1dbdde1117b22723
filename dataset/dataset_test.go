package dataset

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func TestGenerateDeterministic(t *testing.T) {
	counts := []int{0, 1, 7, 100}

	for _, f := range Formats() {
		for _, n := range counts {
			first, err := Generate(f, n)
			if err != nil {
				t.Fatalf("Generate(%s, %d) failed: %v", f, n, err)
			}

			second, err := Generate(f, n)
			if err != nil {
				t.Fatalf("Generate(%s, %d) failed on repeat: %v", f, n, err)
			}

			if first != second {
				t.Errorf("Generate(%s, %d) is not deterministic", f, n)
			}
		}
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	if _, err := Generate(JSON, -1); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	if _, err := Generate(Format("xml"), 10); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestEmptyPayloadsAreValid(t *testing.T) {
	jsonPayload, err := Generate(JSON, 0)
	if err != nil {
		t.Fatalf("Generate(json, 0) failed: %v", err)
	}

	var jsonRecords []map[string]any
	if err := json.Unmarshal([]byte(jsonPayload), &jsonRecords); err != nil {
		t.Errorf("empty JSON payload is not a valid array: %v", err)
	}
	if len(jsonRecords) != 0 {
		t.Errorf("empty JSON payload has %d records, want 0", len(jsonRecords))
	}

	csvPayload, err := Generate(CSV, 0)
	if err != nil {
		t.Fatalf("Generate(csv, 0) failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(csvPayload)).ReadAll()
	if err != nil {
		t.Errorf("empty CSV payload is not parseable: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty CSV payload has %d rows, want header only", len(rows))
	}
	if len(rows[0]) != 8 {
		t.Errorf("CSV header has %d columns, want 8", len(rows[0]))
	}

	yamlPayload, err := Generate(YAML, 0)
	if err != nil {
		t.Fatalf("Generate(yaml, 0) failed: %v", err)
	}

	var yamlRecords []map[string]any
	if err := yaml.Unmarshal([]byte(yamlPayload), &yamlRecords); err != nil {
		t.Errorf("empty YAML payload is not a valid sequence: %v", err)
	}
	if len(yamlRecords) != 0 {
		t.Errorf("empty YAML payload has %d records, want 0", len(yamlRecords))
	}

	tomlPayload, err := Generate(TOML, 0)
	if err != nil {
		t.Fatalf("Generate(toml, 0) failed: %v", err)
	}

	var tomlDoc map[string]any
	if err := toml.Unmarshal([]byte(tomlPayload), &tomlDoc); err != nil {
		t.Errorf("empty TOML payload is not parseable: %v", err)
	}

	for _, f := range []Format{Logfmt, Text} {
		payload, err := Generate(f, 0)
		if err != nil {
			t.Fatalf("Generate(%s, 0) failed: %v", f, err)
		}
		if payload != "" {
			t.Errorf("empty %s payload = %q, want empty string", f, payload)
		}
	}
}

func TestGenerateJSONRecords(t *testing.T) {
	payload, err := Generate(JSON, 5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		t.Fatalf("JSON payload is not parseable: %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}

	first := records[0]
	if first["id"] != "obj_000000" {
		t.Errorf("id = %v, want obj_000000", first["id"])
	}
	if first["name"] != "User 0" {
		t.Errorf("name = %v, want User 0", first["name"])
	}
	if first["age"] != float64(20) {
		t.Errorf("age = %v, want 20", first["age"])
	}
	if first["active"] != true {
		t.Errorf("active = %v, want true", first["active"])
	}
	if first["department"] != "Engineering" {
		t.Errorf("department = %v, want Engineering", first["department"])
	}

	// Departments cycle with period 4.
	if records[4]["department"] != "Engineering" {
		t.Errorf("record 4 department = %v, want Engineering", records[4]["department"])
	}
	if records[1]["department"] != "Sales" {
		t.Errorf("record 1 department = %v, want Sales", records[1]["department"])
	}
}

func TestGenerateCSVRows(t *testing.T) {
	payload, err := Generate(CSV, 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("CSV payload is not parseable: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}

	if rows[0][7] != "level" {
		t.Errorf("last header column = %q, want level", rows[0][7])
	}
	if rows[1][3] != "true" {
		t.Errorf("row 0 active = %q, want true", rows[1][3])
	}
	if rows[2][7] != "mid" {
		t.Errorf("row 1 level = %q, want mid", rows[2][7])
	}
}

func TestGenerateLogfmtLines(t *testing.T) {
	payload, err := Generate(Logfmt, 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	lines := strings.Split(payload, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	if !strings.Contains(lines[0], "level=info") {
		t.Errorf("line 0 = %q, want level=info", lines[0])
	}
	if !strings.Contains(lines[1], "level=warn") {
		t.Errorf("line 1 = %q, want level=warn", lines[1])
	}
	if !strings.Contains(lines[0], `msg="Request processed"`) {
		t.Errorf("line 0 missing quoted msg: %q", lines[0])
	}
	if !strings.Contains(lines[0], "request_id=req_000000") {
		t.Errorf("line 0 missing request_id: %q", lines[0])
	}
}

func TestGenerateTextWords(t *testing.T) {
	payload, err := Generate(Text, 2)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	lines := strings.Split(payload, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	words := strings.Fields(lines[0])
	if len(words) != 4 {
		t.Fatalf("line 0 has %d words, want 4", len(words))
	}
	if words[0] != "User0" {
		t.Errorf("word 0 = %q, want User0", words[0])
	}
	if words[1] != "20" {
		t.Errorf("word 1 = %q, want 20", words[1])
	}
	if words[2] != "Eng" {
		t.Errorf("word 2 = %q, want Eng", words[2])
	}
}
