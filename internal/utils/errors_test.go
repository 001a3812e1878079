package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadRequestError_Error(t *testing.T) {
	err := &BadRequestError{
		Message: "test error message",
	}

	assert.Equal(t, "test error message", err.Error())
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("invalid hours parameter")

	assert.Error(t, err)
	assert.Equal(t, "invalid hours parameter", err.Error())

	// Check that it's the correct type
	badRequestErr, ok := err.(*BadRequestError)
	assert.True(t, ok)
	assert.Equal(t, "invalid hours parameter", badRequestErr.Message)
}

func TestNewBadRequestErrorf(t *testing.T) {
	err := NewBadRequestErrorf("invalid hours parameter %q: expected an integer between 1 and %d", "abc", 8760)

	assert.Error(t, err)
	assert.Equal(t, `invalid hours parameter "abc": expected an integer between 1 and 8760`, err.Error())
}

func TestBadRequestError_As(t *testing.T) {
	wrapped := fmt.Errorf("handling query: %w", NewBadRequestError("bad value"))

	var target *BadRequestError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "bad value", target.Message)
}

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Message: "Endpoint not found",
	}

	assert.Equal(t, "Endpoint not found", err.Error())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Endpoint not found")

	assert.Error(t, err)
	assert.Equal(t, "Endpoint not found", err.Error())

	notFoundErr, ok := err.(*NotFoundError)
	assert.True(t, ok)
	assert.Equal(t, "Endpoint not found", notFoundErr.Message)
}

func TestErrorTypesAreDistinct(t *testing.T) {
	var badRequest *BadRequestError
	var notFound *NotFoundError

	assert.False(t, errors.As(NewNotFoundError("x"), &badRequest))
	assert.False(t, errors.As(NewBadRequestError("x"), &notFound))
}
