// Package conformance declares the parsm conformance corpus and runs
// it against the binary under test, judging each case solely by exit
// behavior.
package conformance

// TestCase describes one conformance scenario: a payload, the
// arguments to invoke parsm with, and whether the invocation is
// expected to succeed. Cases are immutable once constructed.
type TestCase struct {
	Name            string
	Input           string
	Args            []string
	Description     string
	Category        string
	ExpectedSuccess bool
}

// Category groups cases that exercise one format or concern. Categories
// and the cases within them run in declaration order so report output
// diffs cleanly across runs.
type Category struct {
	Name  string
	Cases []TestCase
}

// newCase builds a TestCase expected to succeed, the common case.
func newCase(name, input string, args []string, desc string) TestCase {
	return TestCase{
		Name:            name,
		Input:           input,
		Args:            args,
		Description:     desc,
		ExpectedSuccess: true,
	}
}
