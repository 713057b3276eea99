// Package shell expands shell-style path notation found in config values.
package shell

import (
	"fmt"
	"os"
	"strings"
)

// ExpandHome resolves a leading tilde and any $VAR / ${VAR} references in
// input. Unset variables expand to the empty string.
func ExpandHome(input string) (string, error) {
	result := input

	if result == "~" || strings.HasPrefix(result, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve ~: %w", err)
		}
		result = home + result[1:]
	}

	// os.Expand would swallow an unclosed ${, turning a config typo into a
	// silently wrong path. Reject it instead.
	for rest := result; ; {
		open := strings.Index(rest, "${")
		if open == -1 {
			break
		}
		rest = rest[open+2:]
		end := strings.Index(rest, "}")
		if end == -1 {
			return "", fmt.Errorf("unclosed variable brace in input: %s", input)
		}
		rest = rest[end+1:]
	}

	return os.ExpandEnv(result), nil
}
