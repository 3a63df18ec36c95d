package records

import (
	"errors"
	"fmt"
)

// Error kinds returned by the accessor. Every remote failure collapses into
// the kind of the operation that was running, whatever its cause
var (
	ErrCreationFailed = errors.New("creation failed")
	ErrLookupFailed   = errors.New("lookup failed")
	ErrUpdateFailed   = errors.New("update failed")
	ErrDeletionFailed = errors.New("deletion failed")
)

// OperationError wraps a remote failure with the kind of operation it broke
type OperationError struct {
	Kind     error
	RecordID string
	Err      error
}

func (e *OperationError) Error() string {
	if e.RecordID == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v (record %s): %v", e.Kind, e.RecordID, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *OperationError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newOperationError(kind error, recordID string, err error) error {
	return &OperationError{Kind: kind, RecordID: recordID, Err: err}
}
