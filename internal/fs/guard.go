package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// systemDirs are roots that must never be renamed under. "/" is handled
// separately: only an exact match counts, not every path on the filesystem.
var systemDirs = []string{
	"/bin", "/boot", "/dev", "/etc", "/lib", "/lib64",
	"/proc", "/root", "/sbin", "/sys", "/usr", "/var",
	"/opt", "/srv", "/tmp", "/run", "/mnt", "/media",
}

// Resolve returns the absolute, symlink-resolved form of path. When the
// symlink resolution fails the cleaned absolute path is returned instead.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return filepath.Clean(abs), nil
}

// IsProtected reports whether path is a protected location: the filesystem
// root, a system directory or anything inside one, the user's home root
// itself (subdirectories of home are fine), or any of the extra roots.
// The second return value names the matched protected root.
func IsProtected(path string, extra []string) (bool, string) {
	resolved, err := Resolve(path)
	if err != nil {
		// Unresolvable paths are treated as protected rather than renamed blindly.
		return true, path
	}

	if resolved == "/" {
		return true, "/"
	}

	for _, dir := range systemDirs {
		if resolved == dir || strings.HasPrefix(resolved, dir+string(filepath.Separator)) {
			return true, dir
		}
	}

	for _, dir := range extra {
		d, err := Resolve(dir)
		if err != nil {
			continue
		}
		if resolved == d || strings.HasPrefix(resolved, d+string(filepath.Separator)) {
			return true, d
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if h, err := Resolve(home); err == nil && resolved == h {
			return true, h
		}
	}

	return false, ""
}

// CheckRoot validates the root directory argument before any traversal:
// it must exist, be a directory, and be writable unless dryRun.
func CheckRoot(root string, dryRun bool) error {
	fi, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: no such directory", root)
		}
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}
	if !dryRun {
		// Probe with an exclusive temp file; permission bits alone don't
		// account for ACLs or read-only mounts.
		probe, err := os.CreateTemp(root, ".stripname-probe-*")
		if err != nil {
			return fmt.Errorf("%s: directory is not writable", root)
		}
		name := probe.Name()
		probe.Close()
		os.Remove(name)
	}
	return nil
}
