package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
	slogmulti "github.com/samber/slog-multi"
)

var logFilePath string

// Path returns the location of the debug log file.
func Path() string {
	return logFilePath
}

// Init sets up the default slog logger: JSON records appended to the XDG
// cache log file, fanned out to a tinted stderr handler when DEBUG is set.
// Every record carries the given attrs (typically the run ID).
func Init(attrs ...slog.Attr) error {
	var errs []error

	fp, err := xdg.CacheFile("stripname/log")
	if err != nil {
		errs = append(errs, err)
		fp = "stripname.log"
	}
	logFilePath = fp

	var fw, cw io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		fw = file
	} else {
		errs = append(errs, err)
		fw = io.Discard
	}

	if os.Getenv("DEBUG") == "" {
		cw = io.Discard
	} else {
		cw = os.Stderr
	}

	handler := withAttrs(
		slog.NewJSONHandler(fw, &slog.HandlerOptions{Level: slog.LevelDebug}),
		attrs,
	)

	logger := slog.New(
		slogmulti.Fanout(
			handler,
			tint.NewHandler(cw, &tint.Options{
				Level:      slog.LevelDebug,
				TimeFormat: time.Kitchen,
			}),
		),
	)
	slog.SetDefault(logger)

	return errors.Join(errs...)
}

// Follow prints the log file to w, tailing it while stdout is a terminal.
func Follow(w io.Writer) error {
	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	t, err := tail.TailFile(logFilePath, tail.Config{Follow: shouldFollow, ReOpen: shouldFollow})
	if err != nil {
		return err
	}
	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}
	return nil
}
