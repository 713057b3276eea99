package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/babarot/stripname/internal/fs"
	"github.com/babarot/stripname/internal/rename"
	"github.com/babarot/stripname/internal/shell"
	"github.com/babarot/stripname/internal/ui"
	"github.com/babarot/stripname/internal/undo"
	"github.com/fatih/color"
)

// Rename runs the whole pipeline: guard, plan, preview, confirm, execute,
// undo script. Fatal errors stop before any mutation; planning and
// execution errors are accumulated and reported in the summary instead.
func (c *CLI) Rename(ctx context.Context) error {
	slog.Debug("cli.rename started")
	defer slog.Debug("cli.rename finished")

	opt := c.option
	renderer := ui.NewRenderer(os.Stdout, c.config.UI)

	// 1. Safety guard: refuse protected roots before touching anything.
	if err := fs.CheckRoot(opt.Args.Root, opt.DryRun); err != nil {
		return err
	}
	extraProtected := make([]string, 0, len(c.config.Rename.Protected))
	for _, p := range c.config.Rename.Protected {
		expanded, err := shell.ExpandHome(p)
		if err != nil {
			return fmt.Errorf("protected path %q: %w", p, err)
		}
		extraProtected = append(extraProtected, expanded)
	}
	if protected, which := fs.IsProtected(opt.Args.Root, extraProtected); protected {
		return fmt.Errorf("refusing to rename under protected directory %s", which)
	}

	// 2. Plan: one bottom-up walk, filesystem untouched.
	set := rename.NewSubstringSet(opt.Args.Substrings...)
	exclude, err := rename.NewExcludeRules(
		c.config.Rename.Exclude.Files,
		c.config.Rename.Exclude.Patterns,
		c.config.Rename.Exclude.Globs,
	)
	if err != nil {
		return err
	}
	plan, err := rename.NewPlan(opt.Args.Root, set, rename.Options{
		Extensions: opt.Ext,
		Exclude:    exclude,
	})
	if err != nil {
		return err
	}
	slog.Debug("plan ready", "plan", plan.String())

	c.printHeader(set)
	renderer.Preview(plan, set)
	renderer.PlanningErrors(plan.Errors)

	// 3. Dry run stops here.
	if opt.DryRun {
		renderer.Summary(ui.NewPlanSummary(plan, true))
		return nil
	}

	if plan.IsEmpty() {
		fmt.Println("Nothing to rename!")
		return nil
	}

	// 4. Confirmation, unless scripted away.
	if !opt.Yes && c.config.Core.Confirm {
		prompt := fmt.Sprintf("Rename %d items under %s?", len(plan.Operations), plan.Root)
		if !ui.Confirm(prompt) {
			slog.Debug("cancelled by user")
			if msg := c.config.UI.ExitMessage; msg != "" {
				fmt.Println(msg)
			}
			return nil
		}
	}

	// 5. Execute with per-item failure isolation.
	progress := ui.NewProgress(os.Stdout)
	successLog, execErrs := rename.Execute(ctx, plan, progress.Update)
	progress.Finish(len(plan.Operations))

	// 6. Undo script from whatever actually succeeded, even on interrupt.
	var undoScript string
	if len(successLog) > 0 && !opt.NoUndo {
		undoDir, err := shell.ExpandHome(c.config.Core.Undo.Dir)
		if err != nil {
			undoDir = c.config.Core.Undo.Dir
		}
		undoScript, err = undo.Generate(successLog, undo.Options{
			Path:  opt.UndoFile,
			Dir:   undoDir,
			RunID: c.runID,
			Root:  plan.Root,
		})
		if err != nil {
			// Completed renames stand regardless.
			color.New(color.FgYellow).Fprintf(os.Stderr, "could not save undo script: %v\n", err)
			slog.Error("undo script generation failed", "error", err)
		}
	}

	renderer.ExecutionErrors(execErrs)
	summary := ui.NewResultSummary(successLog, plan.Errors, execErrs)
	summary.UndoScript = undoScript
	renderer.Summary(summary)

	return ctx.Err()
}

func (c *CLI) printHeader(set rename.SubstringSet) {
	if !c.config.Core.Verbose {
		return
	}
	quoted := make([]string, len(set))
	for i, s := range set {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	fmt.Printf("Directory: %s\n", c.option.Args.Root)
	fmt.Printf("Removing:  %s\n", strings.Join(quoted, ", "))
	if len(c.option.Ext) > 0 {
		fmt.Printf("Extensions: %s\n", strings.Join(c.option.Ext, ", "))
	}
	if c.option.DryRun {
		fmt.Printf("Mode: %s\n", color.YellowString("DRY RUN (preview only)"))
	}
	fmt.Println()
}
