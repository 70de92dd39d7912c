// Package scanner lists the entries of a single directory for rename planning.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
	// NotADirectory indicates the path exists but is not a directory.
	NotADirectory ScanErrorType = "NOT_A_DIRECTORY"
	// ReadFailed covers any other failure to list the directory.
	ReadFailed ScanErrorType = "READ_FAILED"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return string(e.Type) + ": " + e.Path + " (" + e.Err.Error() + ")"
	}
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// HiddenPrefix marks a hidden entry name.
const HiddenPrefix = "."

// Entry is a single child of a scanned directory.
type Entry struct {
	Name     string // Basename
	Path     string // Parent directory joined with Name
	IsDir    bool
	IsHidden bool
	IsLink   bool
}

// Skippable reports whether the entry must never be renamed or descended into.
func (e Entry) Skippable() bool {
	return e.IsHidden || e.IsLink
}

// IsHiddenName reports whether a basename denotes a hidden entry.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// CheckDirectory verifies that path exists and is a directory.
// Symbolic links are resolved here so a linked root can still be scanned.
func CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return classify(path, err)
	}
	if !info.IsDir() {
		return &ScanError{
			Type: NotADirectory,
			Path: path,
			Err:  errors.New("path is not a directory"),
		}
	}
	return nil
}

// ReadEntries returns the direct children of directory in lexical order.
// Entries are inspected with Lstat, so symbolic links are reported as links
// and never followed.
func ReadEntries(directory string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return nil, classify(directory, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		fullPath := filepath.Join(directory, de.Name())

		info, err := os.Lstat(fullPath)
		if err != nil {
			continue // vanished between ReadDir and Lstat
		}

		entries = append(entries, Entry{
			Name:     de.Name(),
			Path:     fullPath,
			IsDir:    info.IsDir(),
			IsHidden: IsHiddenName(de.Name()),
			IsLink:   info.Mode()&os.ModeSymlink != 0,
		})
	}

	return entries, nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return &ScanError{Type: DirectoryNotFound, Path: path, Err: err}
	case os.IsPermission(err):
		return &ScanError{Type: PermissionDenied, Path: path, Err: err}
	case errors.Is(err, syscall.ENOTDIR):
		return &ScanError{Type: NotADirectory, Path: path, Err: err}
	default:
		return &ScanError{Type: ReadFailed, Path: path, Err: err}
	}
}
