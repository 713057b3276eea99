// Package ui renders previews, progress and summaries for a rename run.
// It only formats; all decisions are made by the caller.
package ui

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/babarot/stripname/internal/config"
	"github.com/babarot/stripname/internal/rename"
	"github.com/babarot/stripname/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/samber/lo"
)

// Renderer writes human-oriented output for one run.
type Renderer struct {
	out io.Writer
	cfg config.UI
}

func NewRenderer(out io.Writer, cfg config.UI) *Renderer {
	return &Renderer{out: out, cfg: cfg}
}

// Preview prints every planned operation grouped by directory, with the
// removed fragments of the original name struck through.
func (r *Renderer) Preview(plan *rename.Plan, set rename.SubstringSet) {
	if plan.IsEmpty() {
		fmt.Fprintln(r.out, "No files or directories would be renamed.")
		return
	}

	fmt.Fprintln(r.out, "Preview of changes:")
	fmt.Fprintln(r.out)

	byDir := lo.GroupBy(plan.Operations, func(op rename.Operation) string {
		return op.Dir()
	})
	dirs := lo.Keys(byDir)
	sort.Strings(dirs)

	arrow := styles.Arrow(r.cfg).Render("->")
	for _, dir := range dirs {
		fmt.Fprintf(r.out, "  %s\n", styles.DirHeader(r.cfg).Render(dir))
		ops := byDir[dir]

		width := lo.Max(lo.Map(ops, func(op rename.Operation, _ int) int {
			return ansi.StringWidth(op.OriginalName)
		}))
		for _, op := range ops {
			old := r.highlightRemoved(op.OriginalName, set)
			pad := strings.Repeat(" ", width-ansi.StringWidth(op.OriginalName))
			newName := styles.NewName(r.cfg).Render(op.NewName)
			fmt.Fprintf(r.out, "    %s%s %s %s\n", old, pad, arrow, newName)
		}
		fmt.Fprintln(r.out)
	}
}

// highlightRemoved renders name with every case-insensitive occurrence of
// the set's substrings struck through. Highlighting is computed on the
// original name, an approximation of the sequential removal the transformer
// actually performs.
func (r *Renderer) highlightRemoved(name string, set rename.SubstringSet) string {
	removed := make([]bool, len(name))
	for _, sub := range set {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(sub))
		for _, span := range re.FindAllStringIndex(name, -1) {
			for i := span[0]; i < span[1]; i++ {
				removed[i] = true
			}
		}
	}

	style := styles.Removed(r.cfg)
	var b strings.Builder
	for i := 0; i < len(name); {
		j := i
		for j < len(name) && removed[j] == removed[i] {
			j++
		}
		if removed[i] {
			b.WriteString(style.Render(name[i:j]))
		} else {
			b.WriteString(name[i:j])
		}
		i = j
	}
	return b.String()
}

// PlanningErrors prints scan-time issues. Non-fatal by definition.
func (r *Renderer) PlanningErrors(errs []rename.PlanningError) {
	if len(errs) == 0 {
		return
	}
	yellow := color.New(color.FgYellow)
	yellow.Fprintln(r.out, "Issues found during scan:")
	for _, err := range errs {
		fmt.Fprintf(r.out, "   %s %s\n", color.RedString("*"), err.Error())
	}
	fmt.Fprintln(r.out)
}

// ExecutionErrors prints per-item rename failures.
func (r *Renderer) ExecutionErrors(errs []rename.ExecutionError) {
	if len(errs) == 0 {
		return
	}
	red := color.New(color.FgRed)
	red.Fprintln(r.out, "Errors during renaming:")
	for _, err := range errs {
		fmt.Fprintf(r.out, "   %s %s\n", color.RedString("*"), err.Error())
	}
	fmt.Fprintln(r.out)
}
