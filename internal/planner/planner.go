// Package planner walks a directory tree and builds the ordered rename plan.
//
// Every item for a path inside a directory precedes that directory's own
// item, so executing the plan in order never renames a directory out from
// under a pending child rename.
package planner

import (
	"fmt"
	"path/filepath"

	"rename/internal/normalizer"
	"rename/internal/scanner"
)

// Build walks root and returns the rename plan for its contents.
// The root itself is never renamed. An unreadable root is an error; an
// unreadable sub-directory is recorded in Plan.ScanErrors and skipped.
func Build(root string, opts Options) (*Plan, error) {
	if err := scanner.CheckDirectory(root); err != nil {
		return nil, fmt.Errorf("failed to plan %s: %w", root, err)
	}

	plan := &Plan{
		Root:       root,
		Items:      make([]Item, 0),
		ScanErrors: make([]error, 0),
	}

	items, err := walk(root, opts, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to plan %s: %w", root, err)
	}
	plan.Items = items

	return plan, nil
}

// walk returns the items for the subtree below directory. Items collected
// from each child come first in traversal order; the renames of directory's
// own child directories are deferred to the end.
func walk(directory string, opts Options, plan *Plan) ([]Item, error) {
	entries, err := scanner.ReadEntries(directory)
	if err != nil {
		return nil, err
	}

	var items, deferred []Item
	for _, entry := range entries {
		if entry.Skippable() {
			continue
		}

		item := Item{
			OldPath: entry.Path,
			NewPath: filepath.Join(directory, normalizer.Normalize(entry.Name)),
		}

		if entry.IsDir {
			// Recurse using the original path; nothing has been renamed yet.
			sub, err := walk(entry.Path, opts, plan)
			if err != nil {
				plan.ScanErrors = append(plan.ScanErrors, err)
			}
			items = append(items, sub...)

			if opts.SkipNormalizedDirectories && !normalizer.ShouldRename(entry.Name) {
				continue
			}
			item.Kind = KindDirectory
			deferred = append(deferred, item)
			continue
		}

		if normalizer.ShouldRename(entry.Name) {
			item.Kind = KindFile
			items = append(items, item)
		}
	}

	return append(items, deferred...), nil
}
