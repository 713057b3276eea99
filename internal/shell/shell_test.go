package shell

import (
	"os"
	"testing"
)

func TestExpandHome(t *testing.T) {
	// Set a test home directory
	testHome := "/test/home/user"
	os.Setenv("HOME", testHome)
	defer os.Unsetenv("HOME")

	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Tilde expansion",
			input:    "~/undo-scripts",
			expected: testHome + "/undo-scripts",
			wantErr:  false,
		},
		{
			name:     "Single tilde",
			input:    "~",
			expected: testHome,
			wantErr:  false,
		},
		{
			name:     "Environment variable expansion",
			input:    "$HOME/docs",
			expected: testHome + "/docs",
			wantErr:  false,
		},
		{
			name:     "Braced variable expansion",
			input:    "${HOME}/docs",
			expected: testHome + "/docs",
			wantErr:  false,
		},
		{
			name:     "Unset variable expands to empty",
			input:    "$STRIPNAME_UNSET_VAR/x",
			expected: "/x",
			wantErr:  false,
		},
		{
			name:    "Unclosed brace",
			input:   "${HOME/docs",
			wantErr: true,
		},
		{
			name:     "No expansion needed",
			input:    "/var/tmp/undo",
			expected: "/var/tmp/undo",
			wantErr:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExpandHome(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("ExpandHome(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
