package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/babarot/stripname/internal/rename"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

const progressNameWidth = 30

// Progress repaints a single-line progress bar during execution. On
// non-terminal output it stays quiet; the summary covers the result.
type Progress struct {
	out io.Writer
	bar progress.Model
	tty bool
}

func NewProgress(out io.Writer) *Progress {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 25
	bar.ShowPercentage = false
	return &Progress{
		out: out,
		bar: bar,
		tty: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// Update is a rename.ProgressFunc.
func (p *Progress) Update(done, total int, op rename.Operation) {
	if !p.tty || total == 0 {
		return
	}
	name := ansi.Truncate(op.OriginalName, progressNameWidth, "…")
	line := fmt.Sprintf("\r   %s [%d/%d] %s",
		p.bar.ViewAs(float64(done)/float64(total)), done, total, name)
	fmt.Fprintf(p.out, "%-80s", line)
}

// Finish completes the bar and moves to the next line.
func (p *Progress) Finish(total int) {
	if !p.tty || total == 0 {
		return
	}
	fmt.Fprintf(p.out, "\r   %s [%d/%d] %-40s\n", p.bar.ViewAs(1.0), total, total, "done")
}
