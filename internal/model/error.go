package model

// Standard error codes for import failures
const (
	ErrCodeInputNotFound      = "INPUT_NOT_FOUND"
	ErrCodeMissingCredentials = "MISSING_CREDENTIALS"
	ErrCodeEmptyCatalog       = "EMPTY_CATALOG"
	ErrCodePublishFailed      = "PUBLISH_FAILED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInputNotFound      = NewDomainError(ErrCodeInputNotFound, "Input export file does not exist")
	ErrMissingCredentials = NewDomainError(ErrCodeMissingCredentials, "Database credentials are required before the publish phase")
	ErrEmptyCatalog       = NewDomainError(ErrCodeEmptyCatalog, "No restaurants were found in the export")
)
