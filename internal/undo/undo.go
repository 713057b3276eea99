// Package undo turns a run's success log into an executable shell script
// that reverses every applied rename.
package undo

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/stripname/internal/rename"
)

// ErrNothingToUndo is returned when the success log is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// Options controls script generation.
type Options struct {
	// Path is where the script is written. Empty means an auto-generated
	// timestamped name inside Dir.
	Path string

	// Dir is where auto-named scripts go. Empty means the current directory.
	Dir string

	// RunID identifies the run in the script header.
	RunID string

	// Root is the renamed tree's root, recorded in the script header.
	Root string

	// Now supplies the timestamp; nil means time.Now. Tests pin it.
	Now func() time.Time
}

// Generate writes a bash script reversing every completed rename, in
// reverse application order: the forward pass renames directories after
// their contents, so the backward pass must restore a directory's name
// before its children's original paths are valid targets again.
//
// Re-running the script after a successful restore fails per line: mv
// reports the now-missing source instead of doing nothing.
func Generate(log rename.SuccessLog, opts Options) (string, error) {
	if len(log) == 0 {
		return "", ErrNothingToUndo
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	path := opts.Path
	if path == "" {
		name := fmt.Sprintf("stripname-undo-%s.sh", now().Format("20060102-150405"))
		path = filepath.Join(opts.Dir, name)
	}

	var b strings.Builder
	b.WriteString(heredoc.Docf(`
		#!/usr/bin/env bash
		# Undo script generated by stripname
		# run id:    %s
		# generated: %s
		# root:      %s
		# Restores %d renamed items. Safe to run once; a second run fails
		# loudly on already-restored names.
	`,
		opts.RunID,
		now().Format(time.RFC3339),
		opts.Root,
		len(log),
	))
	b.WriteString("\n")

	for i := len(log) - 1; i >= 0; i-- {
		item := log[i]
		fmt.Fprintf(&b, "mv -- %s %s\n",
			shellescape.Quote(item.Destination),
			shellescape.Quote(item.Source),
		)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0755); err != nil {
		return "", fmt.Errorf("writing undo script: %w", err)
	}
	slog.Debug("undo script written", "path", path, "entries", len(log))
	return path, nil
}
