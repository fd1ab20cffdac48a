package service

import (
	"errors"

	"github.com/spec-kit/me-tool/internal/domain"
	"github.com/spec-kit/me-tool/internal/repository"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

func requireAdmin(actor *domain.SafeStaff) error {
	if !domain.IsAdmin(actor) {
		return apperrors.NewForbidden()
	}
	return nil
}

// constraintFields maps database constraints onto the form field and message
// a user can act on.
var constraintFields = map[string]apperrors.FieldError{
	repository.ConstraintStaffEmail:                {Path: "email", Message: "A staff member with this email already exists"},
	repository.ConstraintObjectiveTeam:             {Path: "teamId", Message: "Selected team does not exist"},
	repository.ConstraintProjectTeam:               {Path: "teamId", Message: "Selected team does not exist"},
	repository.ConstraintProjectStrategicObjective: {Path: "strategicObjectiveId", Message: "Selected strategic objective does not exist"},
	repository.ConstraintWorkshopProject:           {Path: "projectId", Message: "Selected project does not exist"},
	repository.ConstraintLivelihoodProject:         {Path: "projectId", Message: "Selected project does not exist"},
}

// mapPersistenceError turns constraint violations into field errors and
// anything else into an internal error.
func mapPersistenceError(err error) error {
	if err == nil {
		return nil
	}
	var refErr *repository.ReferenceError
	if errors.As(err, &refErr) {
		if field, ok := constraintFields[refErr.Constraint]; ok {
			return apperrors.NewValidationError([]apperrors.FieldError{field})
		}
	}
	var dupErr *repository.DuplicateError
	if errors.As(err, &dupErr) {
		if field, ok := constraintFields[dupErr.Constraint]; ok {
			return apperrors.NewValidationError([]apperrors.FieldError{field})
		}
	}
	return apperrors.NewInternalError(err)
}
