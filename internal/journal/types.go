// Package journal persists the log of applied renames so a run can be undone.
//
// The log is a JSON array of two-element arrays, [newPath, oldPath], in the
// chronological order the renames were applied.
package journal

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"unicode/utf8"
)

// Entry records one successful rename.
type Entry struct {
	NewPath string
	OldPath string
}

// MarshalJSON encodes the entry as [newPath, oldPath].
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.NewPath, e.OldPath})
}

// UnmarshalJSON decodes an entry from [newPath, oldPath].
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("log entry must have 2 elements, got %d", len(pair))
	}
	e.NewPath = pair[0]
	e.OldPath = pair[1]
	return nil
}

// Log is the ordered, append-only record of a run's renames.
type Log []Entry

// Append records a rename from oldPath to newPath.
func (l *Log) Append(newPath, oldPath string) {
	*l = append(*l, Entry{NewPath: newPath, OldPath: oldPath})
}

// Len returns the number of recorded renames.
func (l Log) Len() int { return len(l) }

// Reversed returns the entries in reverse chronological order.
func (l Log) Reversed() Log {
	out := make(Log, len(l))
	for i, e := range l {
		out[len(l)-1-i] = e
	}
	return out
}

// LongestNewName returns the rune length of the longest NewPath basename,
// or 0 for an empty log.
func (l Log) LongestNewName() int {
	longest := 0
	for _, e := range l {
		if n := utf8.RuneCountInString(filepath.Base(e.NewPath)); n > longest {
			longest = n
		}
	}
	return longest
}
