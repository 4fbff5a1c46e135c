package entity

import "fmt"

// ValidationError rejects an upload before any store I/O happens. It is the
// caller's fault and not retryable; the message is safe to show verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError covers ids that resolve to no blob. Malformed ids fold into
// this category instead of surfacing as parse errors.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("photo %s not found", e.ID)
}

// StorageError wraps a blob-store I/O failure with the operation and id it
// happened on. Retrying is the caller's decision.
type StorageError struct {
	Op  string
	ID  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for %s: %v", e.Op, e.ID, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// BatchUploadError reports a multi-file upload where at least one item
// failed. By the time it is raised every item that did succeed has been
// deleted again, so the caller never observes a partial batch.
type BatchUploadError struct {
	Failed int
	Total  int
	First  error
}

func (e *BatchUploadError) Error() string {
	return fmt.Sprintf("%d of %d uploads failed: %v", e.Failed, e.Total, e.First)
}

func (e *BatchUploadError) Unwrap() error {
	return e.First
}
