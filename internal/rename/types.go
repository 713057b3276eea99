// Package rename implements the rename planning and ordered execution
// engine: it discovers candidate renames under a root, validates and
// deconflicts them against each other, sequences directory renames after
// their descendants, and applies them with per-item failure isolation.
package rename

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind distinguishes file and directory operations.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	default:
		return "unknown"
	}
}

// Operation is a single planned rename. Immutable once created by the
// planner; consumed by the executor and, on success, by the undo generator.
type Operation struct {
	Source       string
	Destination  string
	OriginalName string
	NewName      string
	Kind         Kind
}

// Dir returns the directory the operation takes place in.
func (op Operation) Dir() string {
	return filepath.Dir(op.Source)
}

// PlanningError records a candidate that could not be planned. It never
// aborts the batch; the entry is simply left untouched.
type PlanningError struct {
	Message string
	Names   []string
}

func (e PlanningError) Error() string {
	if len(e.Names) == 0 {
		return e.Message
	}
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(quoted, " -> "))
}

// ExecutionError records a planned operation that failed to apply.
type ExecutionError struct {
	Op  Operation
	Err error
}

func (e ExecutionError) Error() string {
	return fmt.Sprintf("renaming %s %q to %q: %v", e.Op.Kind, e.Op.OriginalName, e.Op.NewName, e.Err)
}

func (e ExecutionError) Unwrap() error {
	return e.Err
}

// Plan is the complete, filesystem-unmodified set of intended rename
// operations, in application order, plus the errors found while planning.
type Plan struct {
	Root       string
	Operations []Operation
	Errors     []PlanningError
}

// IsEmpty reports whether the plan contains no operations.
func (p *Plan) IsEmpty() bool {
	return len(p.Operations) == 0
}

// Completed is one successfully applied rename.
type Completed struct {
	Source      string
	Destination string
	Kind        Kind
}

// SuccessLog lists completed operations in application order. Undo must be
// applied in reverse of this order.
type SuccessLog []Completed
