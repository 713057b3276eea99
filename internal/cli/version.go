package cli

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const appURL = "https://github.com/babarot/stripname"

// Version describes the build, normally injected via -ldflags.
type Version struct {
	AppName   string
	Version   string
	Revision  string
	BuildDate string
}

func (v Version) Print() string {
	ver := v.Version
	switch ver {
	case "", "unset", "unknown", "develop":
		// go install builds carry no ldflags; fall back to module info.
		if info, ok := debug.ReadBuildInfo(); ok {
			ver = info.Main.Version
		}
	}

	var s strings.Builder
	fmt.Fprintf(&s, "%s - a batch rename tool that strips substrings from names\n", v.AppName)
	fmt.Fprintln(&s, appURL)
	fmt.Fprintln(&s)
	fmt.Fprintf(&s, "version: %s\n", ver)
	fmt.Fprintf(&s, "revision: %s\n", v.Revision)
	fmt.Fprintf(&s, "buildDate: %s\n", v.BuildDate)
	return s.String()
}
