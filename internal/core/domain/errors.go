package domain

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrNotAuthorized = errors.New("not authorized")
var ErrProductNotFound = errors.New("product not found")
var ErrInvalidQuantity = errors.New("quantity must be at least 1")
var ErrInsufficientPoints = errors.New("points balance below redemption threshold")
var ErrInvalidRedemption = errors.New("unknown redemption type")
var ErrGateLocked = errors.New("admin panel is locked")
var ErrWrongPassword = errors.New("incorrect password")
var ErrBootstrapClaimed = errors.New("bootstrap already claimed")
var ErrBootstrapUnavailable = errors.New("bootstrap not available")

// BackendError carries a remote failure verbatim. Backend messages surface
// to the user as-is; a remote failure is terminal for the action and is
// retried only when the user triggers it again.
type BackendError struct {
	Op      string // the remote operation, e.g. "placeOrder"
	Message string // the backend's own message
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return e.Op + ": backend request failed"
	}
	return e.Op + ": " + e.Message
}

// NewBackendError wraps a remote failure for operation op.
func NewBackendError(op, message string) *BackendError {
	return &BackendError{Op: op, Message: message}
}
