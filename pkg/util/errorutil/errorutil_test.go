package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassesThroughWrapped(t *testing.T) {
	base := NewForbidden()
	wrapped := fmt.Errorf("create team: %w", base)

	got := ToDomainError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, CodeForbidden, got.Code)
	assert.Equal(t, http.StatusForbidden, got.HTTPStatus)
	assert.Equal(t, NotAuthorizedMessage, got.Message)
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	cause := errors.New("connection refused")

	got := ToDomainError(cause)
	require.NotNil(t, got)
	assert.Equal(t, CodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
	assert.Equal(t, UnexpectedMessage, got.Message)
	assert.ErrorIs(t, got, cause)
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestNewValidationError_KeepsFieldOrder(t *testing.T) {
	err := NewValidationError([]FieldError{
		{Path: "name", Message: "Name is required"},
		{Path: "actualValue", Message: "Actual value cannot exceed target value"},
	})
	got := ToDomainError(err)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "name", got.Fields[0].Path)
	assert.Equal(t, "actualValue", got.Fields[1].Path)
	assert.True(t, IsCode(err, CodeValidation))
}

func TestNewAuthenticationRequired(t *testing.T) {
	err := NewAuthenticationRequired("/login?redirectTo=%2Fteam")
	got := ToDomainError(err)
	assert.Equal(t, http.StatusFound, got.HTTPStatus)
	assert.Equal(t, "/login?redirectTo=%2Fteam", got.RedirectTo)
}
