package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// ReferenceError is returned when an insert points at a missing parent row.
type ReferenceError struct {
	Constraint string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced record does not exist (%s)", e.Constraint)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
)

// translate maps driver errors onto repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &DuplicateError{Constraint: pgErr.ConstraintName}
		case pgForeignKeyViolation:
			return &ReferenceError{Constraint: pgErr.ConstraintName}
		case pgInvalidText:
			return ErrNotFound
		}
	}
	return err
}

// Constraint names generated by Postgres for the schema in migrations/.
const (
	ConstraintStaffEmail                = "staff_email_key"
	ConstraintTeamCreatedBy             = "teams_created_by_id_fkey"
	ConstraintObjectiveTeam             = "strategic_objectives_team_id_fkey"
	ConstraintProjectStrategicObjective = "projects_strategic_objective_id_fkey"
	ConstraintProjectTeam               = "projects_team_id_fkey"
	ConstraintWorkshopProject           = "workshops_project_id_fkey"
	ConstraintLivelihoodProject         = "livelihoods_project_id_fkey"
)

// DuplicateError is returned when an insert violates a unique constraint.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicate, e.Constraint)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}
