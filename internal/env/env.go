package env

import (
	"os"
	"path/filepath"
)

const defaultXDGConfigDirname = ".config"

// STRIPNAME_CONFIG_PATH is where the YAML config is looked up unless
// overridden by the --config flag.
var STRIPNAME_CONFIG_PATH string

func init() {
	// Keep lipgloss/termenv colors on even when output is piped.
	os.Setenv("CLICOLOR_FORCE", "1")

	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if e := os.Getenv("STRIPNAME_CONFIG_PATH"); e != "" {
		STRIPNAME_CONFIG_PATH = e
		return
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}
		configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
	}
	STRIPNAME_CONFIG_PATH = filepath.Join(configDir, "stripname", "config.yaml")
}
