// Package dataset generates deterministic synthetic payloads for each
// input format parsm understands. Generation is a pure function of the
// record count: equal counts always yield byte-identical output, so
// benchmark comparisons across runs are reproducible.
package dataset

import "fmt"

// Format identifies one of the supported input encodings.
type Format string

const (
	JSON   Format = "json"
	CSV    Format = "csv"
	YAML   Format = "yaml"
	TOML   Format = "toml"
	Logfmt Format = "logfmt"
	Text   Format = "text"
)

// Formats returns the closed set of supported formats in declaration
// order.
func Formats() []Format {
	return []Format{JSON, CSV, YAML, TOML, Logfmt, Text}
}

// Standard dataset sizes used by the benchmark suite.
const (
	SizeSmall  = 100
	SizeMedium = 1000
	SizeLarge  = 5000
)

// Generate returns a payload of count records in the given format.
// count must be non-negative; count = 0 produces a well-formed empty
// payload (empty JSON array, header-only CSV, and so on).
func Generate(f Format, count int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("record count must be non-negative, got %d", count)
	}

	switch f {
	case JSON:
		return generateJSON(count)
	case CSV:
		return generateCSV(count)
	case YAML:
		return generateYAML(count)
	case TOML:
		return generateTOML(count)
	case Logfmt:
		return generateLogfmt(count), nil
	case Text:
		return generateText(count), nil
	default:
		return "", fmt.Errorf("unsupported format %q", f)
	}
}
