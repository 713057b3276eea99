package rename

import "testing"

func TestIsValidName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "regular name", input: "report.txt", expected: true},
		{name: "hidden file", input: ".config", expected: true},
		{name: "empty", input: "", expected: false},
		{name: "whitespace only", input: "   ", expected: false},
		{name: "single dot", input: ".", expected: false},
		{name: "double dot", input: "..", expected: false},
		{name: "dots only", input: "...", expected: false},
		{name: "dots and spaces only", input: ". . .", expected: false},
		{name: "dot with letters", input: ".a.", expected: true},
		{name: "leading and trailing spaces kept", input: " a ", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidName(tc.input); got != tc.expected {
				t.Errorf("IsValidName(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}
