package renamer

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// RenameErrorType represents the type of rename failure.
type RenameErrorType string

const (
	// SourceNotFound indicates the path to rename no longer exists.
	SourceNotFound RenameErrorType = "SOURCE_NOT_FOUND"
	// DestinationExists indicates the target is occupied and cannot be replaced.
	DestinationExists RenameErrorType = "DESTINATION_EXISTS"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied RenameErrorType = "PERMISSION_DENIED"
	// RenameFailed covers any other OS-level failure.
	RenameFailed RenameErrorType = "RENAME_FAILED"
)

// RenameError represents a single failed rename. From is the path that was
// renamed and To the path it was renamed to; for undo these are the logged
// new and old paths respectively.
type RenameError struct {
	Type RenameErrorType
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s -> %s (%v)", e.Type, e.From, e.To, e.Err)
	}
	return fmt.Sprintf("%s: %s -> %s", e.Type, e.From, e.To)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// RenameFunc performs a single filesystem rename.
type RenameFunc func(oldpath, newpath string) error

func newRenameError(from, to string, err error) *RenameError {
	return &RenameError{
		Type: classify(err),
		From: from,
		To:   to,
		Err:  err,
	}
}

func classify(err error) RenameErrorType {
	switch {
	case os.IsNotExist(err):
		return SourceNotFound
	case os.IsExist(err), errors.Is(err, syscall.ENOTEMPTY):
		return DestinationExists
	case os.IsPermission(err):
		return PermissionDenied
	default:
		return RenameFailed
	}
}
