package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

func TestDescribeError(t *testing.T) {
	err := apperrors.NewValidationError([]apperrors.FieldError{
		{Path: "email", Message: "Invalid email address"},
		{Path: "password", Message: "Password must be at least 8 characters"},
	})
	assert.EqualError(t, describeError(err), "email: Invalid email address; password: Password must be at least 8 characters")

	plain := errors.New("connect postgres: refused")
	assert.Equal(t, plain, describeError(plain))
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["create-user"])
}
