package renamer

import (
	"os"
	"path/filepath"

	"rename/internal/journal"
	"rename/internal/output"
)

// UndoResult contains the result of an undo operation.
type UndoResult struct {
	Total    int            // Log entries processed
	Restored int            // Entries renamed back successfully
	Failures []*RenameError // Entries that could not be renamed back
}

// HasFailures returns true if any entry failed to restore.
func (r *UndoResult) HasFailures() bool {
	return len(r.Failures) > 0
}

// UndoEngine reverses a rename log.
type UndoEngine struct {
	reporter output.Reporter
	rename   RenameFunc
}

// NewUndoEngine creates an UndoEngine that renames with os.Rename.
func NewUndoEngine(reporter output.Reporter) *UndoEngine {
	return NewUndoEngineWithRenamer(reporter, os.Rename)
}

// NewUndoEngineWithRenamer creates an UndoEngine that renames with fn.
func NewUndoEngineWithRenamer(reporter output.Reporter, fn RenameFunc) *UndoEngine {
	return &UndoEngine{
		reporter: reporter,
		rename:   fn,
	}
}

// Undo renames every logged NewPath back to its OldPath, last rename first.
// Later renames may sit inside directories renamed earlier, so reverse
// order always finds each NewPath where the log says it is. Failures are
// reported and skipped; there is no rollback of a partial undo.
func (u *UndoEngine) Undo(log journal.Log) *UndoResult {
	result := &UndoResult{
		Total:    log.Len(),
		Failures: make([]*RenameError, 0),
	}

	if log.Len() == 0 {
		u.reporter.Info("No rename operations to undo.")
		return result
	}

	width := log.LongestNewName()
	for _, entry := range log.Reversed() {
		if entry.NewPath == entry.OldPath {
			result.Restored++
			u.reporter.Info("Undo: Renamed back '%-*s' to '%s'",
				width, filepath.Base(entry.NewPath), filepath.Base(entry.OldPath))
			continue
		}

		if err := u.rename(entry.NewPath, entry.OldPath); err != nil {
			u.reporter.Error("Error undoing rename: %v", err)
			result.Failures = append(result.Failures, newRenameError(entry.NewPath, entry.OldPath, err))
			continue
		}

		result.Restored++
		u.reporter.Info("Undo: Renamed back '%-*s' to '%s'",
			width, filepath.Base(entry.NewPath), filepath.Base(entry.OldPath))
	}

	return result
}
