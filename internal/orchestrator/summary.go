package orchestrator

import (
	"fmt"
	"time"

	"rename/internal/planner"
	"rename/internal/renamer"
)

// Mode identifies what an invocation did.
type Mode string

const (
	ModeRename Mode = "rename"
	ModeDryRun Mode = "dry-run"
	ModeUndo   Mode = "undo"
)

// Summary contains statistics from a rename, dry run or undo.
type Summary struct {
	Mode       Mode
	Planned    int     // Items in the plan (rename and dry run)
	Files      int     // Planned file renames
	Dirs       int     // Planned directory renames
	Simulated  int     // Items reported but not applied (dry run)
	Renamed    int     // Items applied and logged
	Restored   int     // Log entries renamed back (undo)
	Failed     int     // Items or entries that could not be renamed
	ScanErrors []error // Sub-directories that could not be listed
	Failures   []*renamer.RenameError
	Duration   time.Duration // Total processing time
}

// newRunSummary builds the summary for a rename or dry run.
func newRunSummary(plan *planner.Plan, result *renamer.Result, dryRun bool, duration time.Duration) *Summary {
	s := &Summary{
		Mode:     ModeRename,
		Duration: duration,
	}
	if dryRun {
		s.Mode = ModeDryRun
	}
	if plan != nil {
		s.Planned = plan.Len()
		s.Files = plan.Count(planner.KindFile)
		s.Dirs = plan.Count(planner.KindDirectory)
		s.ScanErrors = plan.ScanErrors
	}
	if result != nil {
		s.Simulated = result.Simulated
		s.Renamed = result.Renamed
		s.Failed = len(result.Failures)
		s.Failures = result.Failures
	}
	return s
}

// newUndoSummary builds the summary for an undo.
func newUndoSummary(result *renamer.UndoResult, duration time.Duration) *Summary {
	s := &Summary{
		Mode:     ModeUndo,
		Duration: duration,
	}
	if result != nil {
		s.Planned = result.Total
		s.Restored = result.Restored
		s.Failed = len(result.Failures)
		s.Failures = result.Failures
	}
	return s
}

// HasErrors returns true if any rename failed or any directory was unreadable.
func (s *Summary) HasErrors() bool {
	return s.Failed > 0 || len(s.ScanErrors) > 0
}

// PrintSummary returns a formatted summary string.
func (s *Summary) PrintSummary() string {
	switch s.Mode {
	case ModeDryRun:
		return fmt.Sprintf("Dry run: %d renames planned (%d files, %d directories), nothing changed",
			s.Planned, s.Files, s.Dirs)
	case ModeUndo:
		return fmt.Sprintf("Undo: %d of %d renames reverted, %d errors",
			s.Restored, s.Planned, s.Failed)
	default:
		return fmt.Sprintf("Renamed %d of %d entries (%d files, %d directories planned), %d errors",
			s.Renamed, s.Planned, s.Files, s.Dirs, s.Failed)
	}
}
