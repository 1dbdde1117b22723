package conformance

// Cases returns the full conformance corpus, grouped by category.
// The malformed_json case asserts only that parsm exits 0 when JSON
// parsing falls back to text; it does not verify the fallback itself.
func Cases() []Category {
	jsonCases := []TestCase{
		newCase("json_field_select", `{"name": "Alice", "age": 30}`, []string{"name"},
			"Extract name field from JSON"),
		newCase("json_nested_field", `{"user": {"name": "Alice"}}`, []string{"user.name"},
			"Extract nested field from JSON"),
		newCase("json_filter_numeric", `{"name": "Alice", "age": 30}`, []string{"age > 25"},
			"Filter JSON with numeric comparison"),
		newCase("json_filter_string", `{"name": "Alice", "age": 30}`, []string{`name == "Alice"`},
			"Filter JSON with string comparison"),
		newCase("json_template_simple", `{"name": "Alice", "age": 30}`, []string{"$name is $age"},
			"Simple template with JSON"),
		newCase("json_template_braced", `{"name": "Alice", "age": 30}`, []string{"{${name} is ${age} years old}"},
			"Braced template with JSON"),
		newCase("json_filter_template", `{"name": "Alice", "age": 30}`, []string{"age > 25 {Hello ${name}!}"},
			"Combined filter and template"),
		newCase("json_array_select", `[{"name": "Alice"}, {"name": "Bob"}]`, []string{"name"},
			"Field selection from JSON array"),
		newCase("json_boolean_and", `{"age": 30, "active": true}`, []string{"age > 25 && active == true"},
			"Boolean AND operation"),
		newCase("json_boolean_or", `{"age": 20, "name": "Alice"}`, []string{`age > 25 || name == "Alice"`},
			"Boolean OR operation"),
		newCase("json_string_contains", `{"email": "alice@example.com"}`, []string{`email ~ "@example.com"`},
			"String contains operation"),
		newCase("json_null_value", `{"name": null, "age": 30}`, []string{"name"},
			"Handle null values"),
		newCase("json_passthrough", `{"name": "Alice"}`, nil,
			"JSON passthrough without args"),
	}

	csvCases := []TestCase{
		newCase("csv_field_select", "Alice,30,Engineer", []string{"field_0"},
			"Basic CSV field selection"),
		newCase("csv_indexed_select", "Alice,30,Engineer", []string{"field_2"},
			"CSV field by index"),
		newCase("csv_filter_string", "Alice,30,Engineer", []string{`field_1 > "25"`},
			"Filter CSV with string comparison"),
		newCase("csv_template_simple", "Alice,30,Engineer", []string{"$field_0 works as $field_2"},
			"Simple CSV template"),
		newCase("csv_template_indexed", "Alice,30,Engineer", []string{"{${1} - ${2} - ${3}}"},
			"Indexed CSV template"),
		newCase("csv_empty_field", "Alice,,Engineer", []string{"field_1"},
			"Handle empty CSV field"),
		newCase("csv_multiline", "Alice,30\nBob,25", []string{"field_0"},
			"Multi-line CSV processing"),
	}

	yamlCases := []TestCase{
		newCase("yaml_field_select", "name: Alice\nage: 30", []string{"name"},
			"Basic YAML field selection"),
		newCase("yaml_nested_field", "user:\n  name: Alice\n  email: alice@test.com", []string{"user.name"},
			"Nested YAML field selection"),
		newCase("yaml_filter", "name: Alice\nage: 30", []string{"age > 25"},
			"Filter YAML data"),
		newCase("yaml_template", "name: Alice\nage: 30", []string{"{${name} is ${age}}"},
			"YAML template rendering"),
		newCase("yaml_document_marker", "---\nname: Alice\nage: 30", []string{"name"},
			"YAML with document marker"),
		newCase("yaml_array", "names:\n  - Alice\n  - Bob", []string{"names"},
			"YAML array handling"),
	}

	tomlCases := []TestCase{
		newCase("toml_field_select", "name = \"Alice\"\nage = 30", []string{"name"},
			"Basic TOML field selection"),
		newCase("toml_section", "name = \"Alice\"\n\n[profile]\nage = 30", []string{"profile.age"},
			"TOML section access"),
		newCase("toml_filter", "name = \"Alice\"\nage = 30", []string{"age > 25"},
			"Filter TOML data"),
		newCase("toml_template", "name = \"Alice\"\nage = 30", []string{"{${name} is ${age}}"},
			"TOML template rendering"),
		newCase("toml_array", "name = \"Alice\"\nhobbies = [\"reading\", \"coding\"]", []string{"hobbies"},
			"TOML array handling"),
	}

	logfmtCases := []TestCase{
		newCase("logfmt_field_select", `level=info msg="User login" user_id=123`, []string{"level"},
			"Basic logfmt field selection"),
		newCase("logfmt_quoted_value", `level=info msg="User login" user="Alice Smith"`, []string{"user"},
			"Logfmt quoted value extraction"),
		newCase("logfmt_filter", `level=error msg="Database error" service=api`, []string{`level == "error"`},
			"Filter logfmt data"),
		newCase("logfmt_template", `level=error msg="DB error" service=api`, []string{"{[${level}] ${msg}}"},
			"Logfmt template rendering"),
		newCase("logfmt_numeric", `level=info response_time=250 status=200`, []string{"response_time"},
			"Logfmt numeric field"),
	}

	textCases := []TestCase{
		newCase("text_word_select", "Alice 30 Engineer", []string{"word_0"},
			"Basic text word selection"),
		newCase("text_word_template", "Alice 30 Engineer", []string{"$word_0 is $word_1"},
			"Text word template"),
		newCase("text_multiword", "Hello world from parsm", []string{"word_2"},
			"Multi-word text parsing"),
		newCase("text_filter", "Alice 30 Engineer", []string{`word_1 > "25"`},
			"Filter text data"),
	}

	detectionCases := []TestCase{
		newCase("detect_json", `{"format": "json"}`, []string{"format"},
			"Auto-detect JSON format"),
		newCase("detect_yaml", "format: yaml", []string{"format"},
			"Auto-detect YAML format"),
		newCase("detect_toml", `format = "toml"`, []string{"format"},
			"Auto-detect TOML format"),
		newCase("detect_csv", "col1,col2,col3", []string{"field_0"},
			"Auto-detect CSV format"),
		newCase("detect_logfmt", "format=logfmt level=info", []string{"format"},
			"Auto-detect logfmt format"),
	}

	edgeCases := []TestCase{
		newCase("empty_json", "{}", nil,
			"Empty JSON object"),
		newCase("malformed_json", `{"name": "Alice"`, []string{"name"},
			"Malformed JSON (should fall back to text)"),
		newCase("unicode_text", "café 123 français", []string{"word_0"},
			"Unicode text handling"),
		newCase("special_chars", `test@domain.com,123,"value with spaces"`, []string{"field_0"},
			"Special characters in CSV"),
	}

	streamingCases := []TestCase{
		newCase("stream_json", "{\"name\": \"Alice\", \"age\": 30}\n{\"name\": \"Bob\", \"age\": 25}",
			[]string{"age > 25"}, "Stream JSON filtering"),
		newCase("stream_template", "{\"name\": \"Alice\"}\n{\"name\": \"Bob\"}",
			[]string{"$name"}, "Stream template rendering"),
		newCase("stream_csv", "Alice,30\nBob,25\nCharlie,35",
			[]string{"field_0"}, "Stream CSV processing"),
	}

	categories := []Category{
		{Name: "json", Cases: jsonCases},
		{Name: "csv", Cases: csvCases},
		{Name: "yaml", Cases: yamlCases},
		{Name: "toml", Cases: tomlCases},
		{Name: "logfmt", Cases: logfmtCases},
		{Name: "text", Cases: textCases},
		{Name: "detection", Cases: detectionCases},
		{Name: "edge_cases", Cases: edgeCases},
		{Name: "streaming", Cases: streamingCases},
	}

	for i := range categories {
		for j := range categories[i].Cases {
			categories[i].Cases[j].Category = categories[i].Name
		}
	}

	return categories
}
