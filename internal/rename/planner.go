package rename

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
)

// ExcludeRules filters entries out of planning entirely. Matching entries
// never appear in a Plan, neither as operations nor as errors.
type ExcludeRules struct {
	files    []string
	patterns []*regexp.Regexp
	globs    []glob.Glob
}

// NewExcludeRules compiles exclude rules from their config representation.
func NewExcludeRules(files, patterns, globs []string) (ExcludeRules, error) {
	rules := ExcludeRules{files: files}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return ExcludeRules{}, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		rules.patterns = append(rules.patterns, re)
	}
	for _, g := range globs {
		compiled, err := glob.Compile(g)
		if err != nil {
			return ExcludeRules{}, fmt.Errorf("exclude glob %q: %w", g, err)
		}
		rules.globs = append(rules.globs, compiled)
	}
	return rules, nil
}

// Match reports whether name is excluded from planning.
func (r ExcludeRules) Match(name string) bool {
	for _, f := range r.files {
		if name == f {
			return true
		}
	}
	for _, re := range r.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	for _, g := range r.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Options tunes what the planner considers.
type Options struct {
	// Extensions is a file extension allow-list. When non-empty, files whose
	// extension is not listed are skipped entirely. Directories are never
	// filtered by extension.
	Extensions []string

	// Exclude removes matching entry names from consideration.
	Exclude ExcludeRules
}

// NewPlan walks the tree rooted at root once, bottom-up, and returns the
// ordered operations required to remove the given substrings from every
// entry name, plus the errors for entries that could not be planned.
// The filesystem is never modified.
//
// The ordering is the central invariant: every operation for a directory's
// descendants appears strictly before the operation for the directory
// itself, so no rename ever invalidates the source path of a later one.
func NewPlan(root string, set SubstringSet, opts Options) (*Plan, error) {
	slog.Debug("planning starts", "root", root, "substrings", []string(set))

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	p := &planner{
		set:  set,
		exts: normalizeExtensions(opts.Extensions),
		opts: opts,
		plan: &Plan{Root: absRoot},
	}
	p.walk(absRoot)

	slog.Debug("planning finished",
		"operations", len(p.plan.Operations),
		"errors", len(p.plan.Errors),
	)
	return p.plan, nil
}

type planner struct {
	set  SubstringSet
	exts []string
	opts Options
	plan *Plan
}

// walk visits dir's subdirectories first, then plans dir's own entries:
// files, then the subdirectory names themselves. os.ReadDir returns entries
// sorted by name, which keeps conflict detection reproducible.
func (p *planner) walk(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.plan.Errors = append(p.plan.Errors, PlanningError{
			Message: fmt.Sprintf("cannot list directory: %v", err),
			Names:   []string{dir},
		})
		return
	}

	subdirs := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return e.IsDir()
	})
	for _, sub := range subdirs {
		p.walk(filepath.Join(dir, sub.Name()))
	}

	// Snapshot of the names currently present in dir, updated in-memory as
	// operations are accepted so later entries are checked against the
	// post-rename state, not the stale disk listing.
	existing := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		existing[e.Name()] = struct{}{}
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !p.shouldProcessFile(e.Name()) {
			continue
		}
		p.consider(dir, e.Name(), KindFile, existing)
	}
	for _, sub := range subdirs {
		if p.opts.Exclude.Match(sub.Name()) {
			continue
		}
		p.consider(dir, sub.Name(), KindDir, existing)
	}
}

// consider runs one entry through transform, validation and conflict
// detection, appending either an operation or a planning error.
func (p *planner) consider(dir, name string, kind Kind, existing map[string]struct{}) {
	newName := Transform(name, p.set)
	if newName == name {
		return
	}

	if !IsValidName(newName) {
		p.plan.Errors = append(p.plan.Errors, PlanningError{
			Message: fmt.Sprintf("invalid %s name result", kind),
			Names:   []string{name, newName},
		})
		return
	}

	if _, taken := existing[newName]; taken {
		p.plan.Errors = append(p.plan.Errors, PlanningError{
			Message: fmt.Sprintf("name conflict, %s already exists", kind),
			Names:   []string{name, newName},
		})
		return
	}

	p.plan.Operations = append(p.plan.Operations, Operation{
		Source:       filepath.Join(dir, name),
		Destination:  filepath.Join(dir, newName),
		OriginalName: name,
		NewName:      newName,
		Kind:         kind,
	})
	delete(existing, name)
	existing[newName] = struct{}{}
}

func (p *planner) shouldProcessFile(name string) bool {
	if p.opts.Exclude.Match(name) {
		return false
	}
	if len(p.exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range p.exts {
		if ext == allowed {
			return true
		}
	}
	return false
}

func normalizeExtensions(exts []string) []string {
	return lo.Map(exts, func(e string, _ int) string {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		return e
	})
}
