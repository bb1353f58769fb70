package thirdlight

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when a call is attempted before Connect has
// succeeded. It is a precondition check: no network access happens.
var ErrNotConnected = errors.New("thirdlight: not connected, call Connect first")

// AuthError means the service rejected the configured API key during
// Connect.
type AuthError struct {
	cause error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.cause)
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

// UploadError means a composed upload failed after the remote upload entry
// had already been created. The partially created entry is not rolled back;
// Key identifies it for any caller-side cleanup.
type UploadError struct {
	Source string // local file the upload was for
	Step   string // the remote action that failed
	Key    string // upload key, when one was obtained
	cause  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %s failed at %s: %v", e.Source, e.Step, e.cause)
}

func (e *UploadError) Unwrap() error {
	return e.cause
}

// FolderNotFoundError means a folder path is not present in the loaded
// folder tree.
type FolderNotFoundError struct {
	Path string
}

func (e *FolderNotFoundError) Error() string {
	return fmt.Sprintf("folder %q not found in folder tree", e.Path)
}
