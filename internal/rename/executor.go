package rename

import (
	"context"
	"errors"
	"log/slog"
	"os"
)

// ErrDestinationExists is reported when an operation's destination appeared
// on disk between planning and execution.
var ErrDestinationExists = errors.New("destination already exists")

// ProgressFunc is called once per attempted operation, before it is applied.
type ProgressFunc func(done, total int, op Operation)

// Execute applies the plan's operations in order via atomic in-place
// renames. One failure never aborts the batch: the operation is recorded as
// an ExecutionError and execution continues with the next one. Earlier
// successes are never rolled back.
//
// Cancelling ctx stops execution between operations; the partial SuccessLog
// is still returned so a best-effort undo script can be generated.
func Execute(ctx context.Context, plan *Plan, onProgress ProgressFunc) (SuccessLog, []ExecutionError) {
	slog.Debug("execution starts", "operations", len(plan.Operations))

	var completed SuccessLog
	var errs []ExecutionError

	total := len(plan.Operations)
	for i, op := range plan.Operations {
		if err := ctx.Err(); err != nil {
			slog.Warn("execution cancelled", "applied", len(completed), "remaining", total-i)
			break
		}
		if onProgress != nil {
			onProgress(i+1, total, op)
		}

		// The planner deconflicted against its snapshot, but another process
		// may have taken the destination since. rename(2) would replace it
		// silently, so refuse instead.
		if _, err := os.Lstat(op.Destination); err == nil {
			errs = append(errs, ExecutionError{Op: op, Err: ErrDestinationExists})
			continue
		}

		if err := os.Rename(op.Source, op.Destination); err != nil {
			errs = append(errs, ExecutionError{Op: op, Err: err})
			continue
		}
		slog.Debug("renamed", "kind", op.Kind.String(), "from", op.Source, "to", op.Destination)
		completed = append(completed, Completed{
			Source:      op.Source,
			Destination: op.Destination,
			Kind:        op.Kind,
		})
	}

	slog.Debug("execution finished", "succeeded", len(completed), "failed", len(errs))
	return completed, errs
}
