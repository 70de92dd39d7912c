// Package orchestrator coordinates the walk, plan, execute and persist
// workflow, and the load and undo workflow.
package orchestrator

import (
	"fmt"
	"path/filepath"
	"time"

	"rename/internal/config"
	"rename/internal/journal"
	"rename/internal/output"
	"rename/internal/planner"
	"rename/internal/renamer"
)

// Phase is the orchestrator's position in an invocation.
type Phase string

const (
	PhaseIdle         Phase = "IDLE"
	PhaseWalking      Phase = "WALKING"
	PhasePlanned      Phase = "PLANNED"
	PhaseExecuting    Phase = "EXECUTING"
	PhaseLogPersisted Phase = "LOG_PERSISTED"
	PhaseLogLoaded    Phase = "LOG_LOADED"
	PhaseUndoing      Phase = "UNDOING"
)

// Orchestrator runs one invocation with the given options.
type Orchestrator struct {
	opts    config.Options
	out     *output.Output
	phase   Phase
	history []Phase
}

// New creates an Orchestrator. Options are not validated here.
func New(opts config.Options, out *output.Output) *Orchestrator {
	return &Orchestrator{
		opts:  opts,
		out:   out,
		phase: PhaseIdle,
	}
}

// Phase returns the current phase.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// History returns every phase entered so far, in order.
func (o *Orchestrator) History() []Phase {
	return append([]Phase(nil), o.history...)
}

func (o *Orchestrator) enter(p Phase) {
	o.phase = p
	o.history = append(o.history, p)
	o.out.Verbose("[%s]", p)
}

// Run walks the configured directory, executes (or simulates) the plan and
// persists the resulting log, even when it is empty.
func (o *Orchestrator) Run() (*Summary, error) {
	start := time.Now()
	defer o.enter(PhaseIdle)

	o.enter(PhaseWalking)
	root, err := filepath.Abs(o.opts.Directory)
	if err != nil {
		root = o.opts.Directory
	}

	plan, err := planner.Build(root, planner.Options{
		SkipNormalizedDirectories: o.opts.SkipNormalizedDirs,
	})
	if err != nil {
		return nil, err
	}
	o.enter(PhasePlanned)

	for _, scanErr := range plan.ScanErrors {
		o.out.Error("Warning: %v", scanErr)
	}
	if o.out.IsVerbose() {
		o.out.Verbose("Planned %d renames under %s (%d files, %d directories)",
			plan.Len(), root, plan.Count(planner.KindFile), plan.Count(planner.KindDirectory))
	}

	o.enter(PhaseExecuting)
	result := renamer.NewExecutor(o.out).Execute(plan, o.opts.DryRun)

	summary := newRunSummary(plan, result, o.opts.DryRun, 0)

	if err := journal.Save(o.opts.LogFile, result.Log); err != nil {
		summary.Duration = time.Since(start)
		return summary, fmt.Errorf("failed to persist rename log: %w", err)
	}
	o.enter(PhaseLogPersisted)
	o.out.Verbose("Wrote %d log entries to %s", result.Log.Len(), o.opts.LogFile)

	summary.Duration = time.Since(start)
	return summary, nil
}

// Undo loads the persisted log and reverses it. A missing log is reported
// and treated as empty.
func (o *Orchestrator) Undo() (*Summary, error) {
	start := time.Now()
	defer o.enter(PhaseIdle)

	log, err := journal.Load(o.opts.LogFile)
	if err != nil {
		if !journal.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load rename log: %w", err)
		}
		o.out.Error("No rename log file found for undo operation.")
		log = journal.Log{}
	}
	o.enter(PhaseLogLoaded)
	o.out.Verbose("Loaded %d log entries from %s", log.Len(), o.opts.LogFile)

	o.enter(PhaseUndoing)
	result := renamer.NewUndoEngine(o.out).Undo(log)

	return newUndoSummary(result, time.Since(start)), nil
}

// Run is a convenience function that validates opts and runs a rename or
// dry run.
func Run(opts config.Options, out *output.Output) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return New(opts, out).Run()
}

// Undo is a convenience function that validates opts and runs an undo.
func Undo(opts config.Options, out *output.Output) (*Summary, error) {
	opts.Undo = true
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return New(opts, out).Undo()
}
