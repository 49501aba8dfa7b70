package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
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
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrDuplicateCustomID   = NewDomainError("DUPLICATE_CUSTOM_ID", "Custom ID already exists in this inventory")
)

// FieldValidationError carries per-field messages from payload validation.
// Every offending field is reported, keyed by its title.
type FieldValidationError struct {
	DomainError
	Fields map[string]string `json:"fields"`
}

// NewFieldValidationError creates a validation error from a field error map
func NewFieldValidationError(fields map[string]string) *FieldValidationError {
	return &FieldValidationError{
		DomainError: DomainError{
			Code:    "FIELD_VALIDATION",
			Message: "One or more field values are invalid",
		},
		Fields: fields,
	}
}
