package media

import (
	"fmt"
	"time"
)

// InvalidParameterError indicates a request parameter outside its documented
// range. It requires user correction and is never retried.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// UnknownModelError indicates a model alias or identifier that is not in the
// known model table.
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model %q", e.Model)
}

// InputNotFoundError indicates a local input file that does not exist or
// cannot be read.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file %q could not be read: %s", e.Path, e.Err)
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}

// UnsupportedOnBackendError indicates a parameter that the active backend
// does not accept. The request is rejected before submission rather than
// forwarding the parameter silently.
type UnsupportedOnBackendError struct {
	Param   string
	Backend string
}

func (e *UnsupportedOnBackendError) Error() string {
	return fmt.Sprintf("%s is not supported by the %s backend", e.Param, e.Backend)
}

// AuthenticationError indicates missing or rejected credentials.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// RemoteRequestError represents a non-transient failure returned by the
// remote generation service (malformed request, quota, server error).
type RemoteRequestError struct {
	StatusCode int
	Err        error
}

func (e *RemoteRequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote request failed (status %d): %s", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("remote request failed: %s", e.Err)
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}

// PollingFailedError indicates that re-fetching operation status failed even
// after the bounded transient retries were exhausted.
type PollingFailedError struct {
	OperationID string
	Err         error
}

func (e *PollingFailedError) Error() string {
	return fmt.Sprintf("polling operation %q failed: %s", e.OperationID, e.Err)
}

func (e *PollingFailedError) Unwrap() error {
	return e.Err
}

// TimeoutError indicates the operation did not reach a terminal state within
// the configured maximum wait.
type TimeoutError struct {
	OperationID string
	Waited      time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("operation %q did not complete within %s", e.OperationID, e.Waited)
}

// DownloadError indicates a failure retrieving generated video content.
type DownloadError struct {
	URI        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download of %q failed with status %d", e.URI, e.StatusCode)
	}
	return fmt.Sprintf("download of %q failed: %s", e.URI, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// FilesystemError indicates a failure writing a downloaded video to disk.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("writing %q failed: %s", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
