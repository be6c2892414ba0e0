package domain

// DomainError represents a domain-level error
type DomainError struct {
	Code    string
	Message string
}

// Error implements the error interface
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
	ErrNotFound         = NewDomainError("NOT_FOUND", "record not found")
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "invalid input provided")
	ErrAlreadyExists    = NewDomainError("ALREADY_EXISTS", "record already exists")
	ErrInvalidReference = NewDomainError("INVALID_REFERENCE", "referenced record does not exist")
	ErrStillReferenced  = NewDomainError("STILL_REFERENCED", "record is still referenced by other records")
)
