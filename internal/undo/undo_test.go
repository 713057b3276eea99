package undo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/babarot/stripname/internal/rename"
)

func testLog() rename.SuccessLog {
	return rename.SuccessLog{
		{Source: "/data/dir_old/file_old.txt", Destination: "/data/dir_old/file.txt", Kind: rename.KindFile},
		{Source: "/data/dir_old/sub_old", Destination: "/data/dir_old/sub", Kind: rename.KindDir},
		{Source: "/data/dir_old", Destination: "/data/dir", Kind: rename.KindDir},
	}
}

func TestGenerateEmptyLog(t *testing.T) {
	_, err := Generate(nil, Options{})
	if !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestGenerateReversesOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "undo.sh")

	got, err := Generate(testLog(), Options{Path: path, RunID: "run123", Root: "/data"})
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("expected script at %s, got %s", path, got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "#!/usr/bin/env bash") {
		t.Error("script must start with a bash shebang")
	}
	if !strings.Contains(content, "run123") {
		t.Error("script header must carry the run id")
	}

	// Forward order renamed the directory last, so undo must restore it
	// first: /data/dir back to /data/dir_old before touching its children.
	lines := []string{
		"mv -- /data/dir /data/dir_old",
		"mv -- /data/dir_old/sub /data/dir_old/sub_old",
		"mv -- /data/dir_old/file.txt /data/dir_old/file_old.txt",
	}
	last := -1
	for _, line := range lines {
		idx := strings.Index(content, line)
		if idx == -1 {
			t.Fatalf("missing line %q in script:\n%s", line, content)
		}
		if idx < last {
			t.Errorf("line %q out of order", line)
		}
		last = idx
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm()&0111 == 0 {
		t.Errorf("script must be executable, mode was %v", fi.Mode())
	}
}

func TestGenerateQuotesArguments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "undo.sh")

	log := rename.SuccessLog{
		{Source: "/data/it's old.txt", Destination: "/data/it's.txt", Kind: rename.KindFile},
	}
	if _, err := Generate(log, Options{Path: path}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"/data/it's.txt"`) && !strings.Contains(string(data), `'/data/it'"'"'s.txt'`) {
		t.Errorf("paths with shell metacharacters must be quoted:\n%s", string(data))
	}
}

func TestGenerateAutoNamedScript(t *testing.T) {
	dir := t.TempDir()
	pinned := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	got, err := Generate(testLog(), Options{
		Dir: dir,
		Now: func() time.Time { return pinned },
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := filepath.Join(dir, "stripname-undo-20250314-150926.sh")
	if got != expected {
		t.Errorf("auto-generated name: got %s, want %s", got, expected)
	}
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("script file missing: %v", err)
	}
}

func TestGenerateUnwritablePath(t *testing.T) {
	_, err := Generate(testLog(), Options{Path: filepath.Join(t.TempDir(), "missing", "undo.sh")})
	if err == nil {
		t.Error("expected error for unwritable output path")
	}
}
