package planner

import (
	"path/filepath"
	"unicode/utf8"
)

// Kind tags a plan item as a file or directory rename.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Item is a single planned rename. NewPath always lives in the same
// directory as OldPath.
type Item struct {
	Kind    Kind
	OldPath string
	NewPath string
}

// OldName returns the basename of OldPath.
func (i Item) OldName() string { return filepath.Base(i.OldPath) }

// NewName returns the basename of NewPath.
func (i Item) NewName() string { return filepath.Base(i.NewPath) }

// Unchanged reports whether the rename is a no-op.
func (i Item) Unchanged() bool { return i.OldPath == i.NewPath }

// Plan is the ordered list of renames computed before anything is mutated.
type Plan struct {
	Root  string
	Items []Item
	// ScanErrors holds sub-directories that could not be listed. Their
	// contents are missing from Items.
	ScanErrors []error
}

// Len returns the number of planned items.
func (p *Plan) Len() int { return len(p.Items) }

// Count returns the number of items of the given kind.
func (p *Plan) Count(kind Kind) int {
	n := 0
	for _, item := range p.Items {
		if item.Kind == kind {
			n++
		}
	}
	return n
}

// LongestName returns the rune length of the longest original basename in
// the plan, or 0 when the plan is empty. It is used to align report output.
func (p *Plan) LongestName() int {
	longest := 0
	for _, item := range p.Items {
		if n := utf8.RuneCountInString(item.OldName()); n > longest {
			longest = n
		}
	}
	return longest
}

// Options configures plan construction.
type Options struct {
	// SkipNormalizedDirectories drops directories whose name is already
	// canonical. By default every directory is scheduled.
	SkipNormalizedDirectories bool
}

// DefaultOptions returns the options that schedule every directory.
func DefaultOptions() Options {
	return Options{}
}
