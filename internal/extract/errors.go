package extract

import "errors"

// Domain error types surfaced to API clients. Everything outside this
// taxonomy is treated as an unexpected failure and collapsed to an opaque
// server error at the HTTP boundary.
const (
	TypeInvalidDocument   = "InvalidDocument"
	TypePasswordProtected = "PasswordProtected"
)

// ProcessingError is a classified failure of the extraction stage. Type is
// stable and machine-readable; Message is safe to return to clients.
type ProcessingError struct {
	Type    string
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewInvalidDocument classifies an unreadable or corrupt input.
func NewInvalidDocument(err error) *ProcessingError {
	return &ProcessingError{
		Type:    TypeInvalidDocument,
		Message: "the provided file is not a valid PDF or is corrupted",
		Err:     err,
	}
}

// NewPasswordProtected classifies an encrypted document opened without a
// valid credential.
func NewPasswordProtected() *ProcessingError {
	return &ProcessingError{
		Type:    TypePasswordProtected,
		Message: "the PDF is password-protected; please provide a valid password",
	}
}

// AsProcessingError reports whether err (or anything it wraps) is a
// classified domain error.
func AsProcessingError(err error) (*ProcessingError, bool) {
	var perr *ProcessingError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
