// Where: internal/domain/brand/errors.go
// What: Error taxonomy shared by the engine and its collaborators.
// Why: Let callers classify failures with errors.Is/errors.As.
package brand

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound              = errors.New("file not found")
	ErrInvalidFileType           = errors.New("invalid file type")
	ErrToolUnavailable           = errors.New("platform tool not available")
	ErrToolFailed                = errors.New("platform tool failed")
	ErrUnsupportedToolVersion    = errors.New("unsupported tool version")
	ErrConfig                    = errors.New("configuration error")
	ErrTransformation            = errors.New("transformation error")
	ErrMissingSubstitutionKey    = errors.New("missing brand config value")
	ErrUnsupportedTransformation = errors.New("unsupported transformation type")
	ErrRunFailed                 = errors.New("generation failed")
)

// FileNotFoundError reports a resolved path that does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return ErrFileNotFound }

// InvalidFileTypeError reports an unrecognized source extension or payload.
type InvalidFileTypeError struct {
	Expected string
	Actual   string
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("invalid file type: expected %s, got %s", e.Expected, e.Actual)
}

func (e *InvalidFileTypeError) Unwrap() error { return ErrInvalidFileType }

// ToolUnavailableError reports a missing external binary.
type ToolUnavailableError struct {
	Tool string
}

func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("platform tool not available: %s", e.Tool)
}

func (e *ToolUnavailableError) Unwrap() error { return ErrToolUnavailable }

// ToolFailedError reports a non-zero exit from an external binary.
type ToolFailedError struct {
	Tool string
	Code int
}

func (e *ToolFailedError) Error() string {
	return fmt.Sprintf("platform tool failed: %s (exit code: %d)", e.Tool, e.Code)
}

func (e *ToolFailedError) Unwrap() error { return ErrToolFailed }

// UnsupportedToolVersionError reports a tool that is present but too old.
type UnsupportedToolVersionError struct {
	Tool    string
	Version string
	Message string
}

func (e *UnsupportedToolVersionError) Error() string {
	return fmt.Sprintf("unsupported tool version: %s version %s is not supported. %s", e.Tool, e.Version, e.Message)
}

func (e *UnsupportedToolVersionError) Unwrap() error { return ErrUnsupportedToolVersion }

// IsSkippable reports whether err should count as a skip rather than a failure.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrToolUnavailable)
}
