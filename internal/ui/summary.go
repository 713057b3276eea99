package ui

import (
	"fmt"
	"strconv"

	"github.com/babarot/stripname/internal/rename"
	"github.com/dustin/go-humanize/english"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Summary describes one finished (or previewed) run.
type Summary struct {
	Files       int
	Directories int
	Errors      int
	DryRun      bool
	UndoScript  string
}

// NewPlanSummary summarizes a plan before execution.
func NewPlanSummary(plan *rename.Plan, dryRun bool) Summary {
	files := lo.CountBy(plan.Operations, func(op rename.Operation) bool {
		return op.Kind == rename.KindFile
	})
	return Summary{
		Files:       files,
		Directories: len(plan.Operations) - files,
		Errors:      len(plan.Errors),
		DryRun:      dryRun,
	}
}

// NewResultSummary summarizes what actually happened.
func NewResultSummary(log rename.SuccessLog, planErrs []rename.PlanningError, execErrs []rename.ExecutionError) Summary {
	files := lo.CountBy(log, func(c rename.Completed) bool {
		return c.Kind == rename.KindFile
	})
	return Summary{
		Files:       files,
		Directories: len(log) - files,
		Errors:      len(planErrs) + len(execErrs),
	}
}

// Summary renders the run summary as a small table plus a one-line recap.
func (r *Renderer) Summary(s Summary) {
	verb := "Renamed"
	if s.DryRun {
		verb = "Would rename"
	}

	table := tablewriter.NewWriter(r.out)
	table.SetBorder(false)
	table.SetColumnSeparator(":")
	table.Append([]string{"Files", strconv.Itoa(s.Files)})
	table.Append([]string{"Directories", strconv.Itoa(s.Directories)})
	if s.Errors > 0 {
		table.Append([]string{"Errors", strconv.Itoa(s.Errors)})
	}
	table.Render()

	fmt.Fprintf(r.out, "\n%s %s and %s\n",
		verb,
		english.Plural(s.Files, "file", ""),
		english.Plural(s.Directories, "directory", "directories"),
	)
	if s.UndoScript != "" {
		fmt.Fprintf(r.out, "To undo, run: bash %s\n", s.UndoScript)
	}
}
