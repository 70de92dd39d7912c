// Package renamer applies a rename plan and reverses a recorded rename log.
package renamer

import (
	"os"

	"rename/internal/journal"
	"rename/internal/output"
	"rename/internal/planner"
)

// Result summarizes an executed (or simulated) plan.
type Result struct {
	Planned   int
	Simulated int
	Renamed   int
	Failures  []*RenameError
	// Log holds the successful renames in the order they were applied.
	// It is empty for a simulated run.
	Log journal.Log
}

// HasFailures returns true if any item failed to rename.
func (r *Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// Executor applies plans, reporting each action through its Reporter.
type Executor struct {
	reporter output.Reporter
	rename   RenameFunc
}

// NewExecutor creates an Executor that renames with os.Rename.
func NewExecutor(reporter output.Reporter) *Executor {
	return NewExecutorWithRenamer(reporter, os.Rename)
}

// NewExecutorWithRenamer creates an Executor that renames with fn.
func NewExecutorWithRenamer(reporter output.Reporter, fn RenameFunc) *Executor {
	return &Executor{
		reporter: reporter,
		rename:   fn,
	}
}

// Execute processes plan items in order. When simulate is true nothing is
// renamed and the log stays empty. Items whose name is already normalized
// succeed without touching the filesystem. A failed item is reported and recorded,
// and execution continues with the next item.
func (e *Executor) Execute(plan *planner.Plan, simulate bool) *Result {
	result := &Result{
		Failures: make([]*RenameError, 0),
		Log:      journal.Log{},
	}
	if plan == nil {
		return result
	}

	result.Planned = plan.Len()
	width := plan.LongestName()

	for _, item := range plan.Items {
		if simulate {
			e.reporter.Info("[Dry Run] Would rename '%-*s' to '%s'", width, item.OldName(), item.NewName())
			result.Simulated++
			continue
		}

		// A directory already in canonical form is still logged as renamed.
		// os.Rename refuses to move a directory onto itself, so skip the call.
		if item.Unchanged() {
			result.Log.Append(item.NewPath, item.OldPath)
			result.Renamed++
			e.reporter.Info("Renamed '%-*s' to '%s'", width, item.OldName(), item.NewName())
			continue
		}

		if err := e.rename(item.OldPath, item.NewPath); err != nil {
			e.reporter.Error("Error renaming '%s': %v", item.OldName(), err)
			result.Failures = append(result.Failures, newRenameError(item.OldPath, item.NewPath, err))
			continue
		}

		result.Log.Append(item.NewPath, item.OldPath)
		result.Renamed++
		e.reporter.Info("Renamed '%-*s' to '%s'", width, item.OldName(), item.NewName())
	}

	return result
}
