package utils

import "fmt"

// BadRequestError represents a request rejected for invalid parameters.
type BadRequestError struct {
	Message string
}

// Error returns the error message string.
func (e *BadRequestError) Error() string {
	return e.Message
}

// NewBadRequestError creates a new BadRequestError with a specific message.
//
// Parameters:
//   - message: The rejection message surfaced to the client.
//
// Returns:
//   - An error interface wrapping the BadRequestError.
func NewBadRequestError(message string) error {
	return &BadRequestError{
		Message: message,
	}
}

// NewBadRequestErrorf creates a new BadRequestError with a formatted message.
func NewBadRequestErrorf(format string, args ...interface{}) error {
	return &BadRequestError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundError represents a request for a route or resource that does not
// exist.
type NotFoundError struct {
	Message string
}

// Error returns the error message string.
func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a new NotFoundError with a specific message.
func NewNotFoundError(message string) error {
	return &NotFoundError{
		Message: message,
	}
}
