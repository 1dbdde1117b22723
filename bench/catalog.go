package bench

import "github.com/parsm/parsmbench/dataset"

// Operation pairs a benchmark label with the parsm arguments that
// exercise it.
type Operation struct {
	Name string
	Args []string
}

// Catalog returns the ordered operation list for a format, modeling
// realistic parsm usage: plain and nested field selection, boolean
// filters, templates, and a repeated operation that exercises any
// internal caching. Formats without a dedicated catalog fall back to a
// single no-argument parse.
func Catalog(f dataset.Format) []Operation {
	switch f {
	case dataset.JSON:
		return []Operation{
			{Name: "field_selection", Args: []string{"name"}},
			{Name: "nested_field", Args: []string{"profile.level"}},
			{Name: "deep_nested", Args: []string{"profile.location.city"}},
			{Name: "filter_simple", Args: []string{"age > 30"}},
			{Name: "filter_complex", Args: []string{"age > 30 && active == true"}},
			{Name: "template_simple", Args: []string{"${name}"}},
			{Name: "template_complex", Args: []string{"${name} (${age}) - ${department}"}},
			{Name: "template_very_complex", Args: []string{"ID: ${id}, User: ${name} (${age}), Dept: ${department}, Level: ${profile.level}, City: ${profile.location.city}"}},
			{Name: "filter_and_template", Args: []string{"age > 40", "${name}: ${profile.level}"}},
			// Same expression as field_selection; measures parse caching.
			{Name: "cache_test_repeat", Args: []string{"name"}},
		}

	case dataset.CSV:
		return []Operation{
			{Name: "field_selection", Args: []string{"field_1"}},
			{Name: "field_numeric", Args: []string{"field_2"}},
			{Name: "filter_simple", Args: []string{`field_2 > "30"`}},
			{Name: "filter_complex", Args: []string{`field_2 > "30" && field_3 == "true"`}},
			{Name: "template_simple", Args: []string{"${field_1}"}},
			{Name: "template_complex", Args: []string{"${field_1} (${field_2}) - ${field_6}"}},
		}

	case dataset.YAML:
		return []Operation{
			{Name: "field_selection", Args: []string{"name"}},
			{Name: "nested_field", Args: []string{"profile.level"}},
			{Name: "filter_simple", Args: []string{"age > 30"}},
			{Name: "filter_complex", Args: []string{"age > 30 && active == true"}},
			{Name: "template_simple", Args: []string{"${name}"}},
			{Name: "template_complex", Args: []string{"${name} (${age}) - ${department}"}},
		}

	case dataset.Logfmt:
		return []Operation{
			{Name: "field_selection", Args: []string{"level"}},
			{Name: "field_service", Args: []string{"service"}},
			{Name: "filter_level", Args: []string{`level == "error"`}},
			{Name: "filter_duration", Args: []string{`duration > "0.5s"`}},
			{Name: "template_simple", Args: []string{"${service}"}},
			{Name: "template_complex", Args: []string{"[${level}] ${service}: ${msg}"}},
		}

	case dataset.Text:
		return []Operation{
			{Name: "field_selection", Args: []string{"word_0"}},
			{Name: "field_numeric", Args: []string{"word_1"}},
			{Name: "filter_simple", Args: []string{`word_1 > "30"`}},
			{Name: "template_simple", Args: []string{"${word_0}"}},
			{Name: "template_complex", Args: []string{"${word_0} (${word_1}) - ${word_2}"}},
		}

	default:
		return []Operation{{Name: "basic_parse"}}
	}
}
