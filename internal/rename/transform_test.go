package rename

import (
	"reflect"
	"testing"
)

func TestNewSubstringSet(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected SubstringSet
	}{
		{
			name:     "drops empties and duplicates, sorts",
			input:    []string{"b", "", "a", "b"},
			expected: SubstringSet{"a", "b"},
		},
		{
			name:     "all empty",
			input:    []string{"", ""},
			expected: SubstringSet{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewSubstringSet(tc.input...)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("NewSubstringSet(%v) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTransform(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		set      SubstringSet
		expected string
	}{
		{
			name:     "case-insensitive match, case of rest preserved",
			input:    "MyFILE_old.txt",
			set:      NewSubstringSet("old"),
			expected: "MyFILE_.txt",
		},
		{
			name:     "all occurrences removed",
			input:    "old_report_OLD_Old.txt",
			set:      NewSubstringSet("old"),
			expected: "_report__.txt",
		},
		{
			name:     "multiple substrings",
			input:    "draft_report_backup.pdf",
			set:      NewSubstringSet("draft_", "_backup"),
			expected: "report.pdf",
		},
		{
			name:     "no match leaves name untouched",
			input:    "report.txt",
			set:      NewSubstringSet("_old"),
			expected: "report.txt",
		},
		{
			name:     "empty set is a no-op",
			input:    "report.txt",
			set:      NewSubstringSet(),
			expected: "report.txt",
		},
		{
			name:     "regex metacharacters are literal",
			input:    "file(1).txt",
			set:      NewSubstringSet("(1)"),
			expected: "file.txt",
		},
		{
			name:     "overlapping substrings applied in sorted order",
			input:    "abcd",
			set:      NewSubstringSet("bc", "cd"),
			expected: "ad",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Transform(tc.input, tc.set)
			if got != tc.expected {
				t.Errorf("Transform(%q, %v) = %q, want %q", tc.input, tc.set, got, tc.expected)
			}
		})
	}
}

func TestSubstringSetMatches(t *testing.T) {
	set := NewSubstringSet("_old")
	if !set.Matches("file_OLD.txt") {
		t.Error("expected case-insensitive match")
	}
	if set.Matches("file.txt") {
		t.Error("expected no match")
	}
}
