package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultLogFile is the log file name, relative to the working directory.
const DefaultLogFile = "rename_log.json"

// LogErrorType represents the type of log persistence error.
type LogErrorType string

const (
	LogNotFound  LogErrorType = "LOG_NOT_FOUND"
	InvalidLog   LogErrorType = "INVALID_LOG"
	ReadFailed   LogErrorType = "READ_FAILED"
	WriteFailed  LogErrorType = "WRITE_FAILED"
	EncodeFailed LogErrorType = "ENCODE_FAILED"
)

// LogError represents an error loading or saving the rename log.
type LogError struct {
	Type LogErrorType
	Path string
	Err  error
}

func (e *LogError) Error() string {
	switch e.Type {
	case LogNotFound:
		return fmt.Sprintf("rename log not found: %s", e.Path)
	case InvalidLog:
		return fmt.Sprintf("invalid rename log %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Path, e.Err)
	}
}

func (e *LogError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a missing-log error.
func IsNotFound(err error) bool {
	var logErr *LogError
	return errors.As(err, &logErr) && logErr.Type == LogNotFound
}

// Save writes the whole log to path, replacing any previous log.
// An empty or nil log is written as an empty array.
func Save(path string, log Log) error {
	if log == nil {
		log = Log{}
	}

	data, err := json.MarshalIndent(log, "", "    ")
	if err != nil {
		return &LogError{Type: EncodeFailed, Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &LogError{Type: WriteFailed, Path: path, Err: err}
	}

	return nil
}

// Load reads the log at path.
func Load(path string) (Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LogError{Type: LogNotFound, Path: path, Err: err}
		}
		return nil, &LogError{Type: ReadFailed, Path: path, Err: err}
	}

	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, &LogError{Type: InvalidLog, Path: path, Err: err}
	}
	if log == nil {
		log = Log{}
	}

	return log, nil
}
