package rename

import "strings"

// IsValidName reports whether name is usable as a path component after
// substring removal. Empty, whitespace-only, "." and "..", and names made
// up of nothing but dots and spaces are all rejected.
func IsValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if name == "." || name == ".." {
		return false
	}
	stripped := strings.NewReplacer(".", "", " ", "").Replace(name)
	return stripped != ""
}
