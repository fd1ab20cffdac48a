package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)

	dup := translate(&pgconn.PgError{Code: "23505", ConstraintName: "staff_email_key"})
	assert.ErrorIs(t, dup, ErrDuplicate)
	assert.Contains(t, dup.Error(), "staff_email_key")
	var dupErr *DuplicateError
	require.True(t, errors.As(dup, &dupErr))
	assert.Equal(t, ConstraintStaffEmail, dupErr.Constraint)

	var refErr *ReferenceError
	ref := translate(&pgconn.PgError{Code: "23503", ConstraintName: "projects_team_id_fkey"})
	require.True(t, errors.As(ref, &refErr))
	assert.Equal(t, "projects_team_id_fkey", refErr.Constraint)

	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "22P02"}), ErrNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))
}
