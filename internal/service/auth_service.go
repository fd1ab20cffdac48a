package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/domain"
	"github.com/spec-kit/me-tool/internal/repository"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

// Login failure messages shown on the login form.
const (
	InvalidSubmissionMessage  = "Invalid form submission"
	InvalidCredentialsMessage = "Invalid email or password"
	TooManyAttemptsMessage    = "Too many login attempts. Please try again later."
)

// AuthService verifies staff credentials.
type AuthService struct {
	staff   repository.StaffRepository
	limiter auth.LoginLimiter
	logger  *zap.Logger
}

// NewAuthService builds the service. A nil limiter never blocks.
func NewAuthService(staff repository.StaffRepository, limiter auth.LoginLimiter, logger *zap.Logger) *AuthService {
	if limiter == nil {
		limiter = auth.NewLoginLimiter(nil, 0, 0, logger)
	}
	return &AuthService{staff: staff, limiter: limiter, logger: logger}
}

// Login returns the staff member whose email and password match. Unknown
// emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.SafeStaff, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.NewBadRequest(InvalidSubmissionMessage)
	}
	if !s.limiter.Allowed(ctx, email) {
		s.logger.Warn("login throttled", zap.String("email", email))
		return nil, apperrors.NewTooManyRequests(TooManyAttemptsMessage)
	}

	member, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.limiter.Failed(ctx, email)
			return nil, apperrors.NewBadRequest(InvalidCredentialsMessage)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(member.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Error("stored password hash is unusable", zap.String("user_id", member.ID), zap.Error(err))
		}
		s.limiter.Failed(ctx, email)
		return nil, apperrors.NewBadRequest(InvalidCredentialsMessage)
	}

	s.limiter.Reset(ctx, email)
	safe := member.Safe()
	return &safe, nil
}
