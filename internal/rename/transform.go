package rename

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SubstringSet holds the substrings to remove from names. It is normalized
// on construction: empty strings dropped, duplicates collapsed, sorted.
// Removal is applied sequentially in that sorted order, so the result for
// substrings that overlap in the input is deterministic but does depend on
// the set, not on the order the user typed them in.
type SubstringSet []string

// NewSubstringSet normalizes the given substrings into a SubstringSet.
func NewSubstringSet(substrings ...string) SubstringSet {
	set := lo.Uniq(lo.Filter(substrings, func(s string, _ int) bool {
		return s != ""
	}))
	sort.Strings(set)
	return SubstringSet(set)
}

// Matches reports whether name contains any substring of the set,
// case-insensitively.
func (s SubstringSet) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, sub := range s {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// Transform deletes every case-insensitive occurrence of every substring in
// the set from name, leaving the case of the remaining characters untouched.
// Pure; never fails.
func Transform(name string, set SubstringSet) string {
	for _, sub := range set {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(sub))
		name = re.ReplaceAllLiteralString(name, "")
	}
	return name
}
