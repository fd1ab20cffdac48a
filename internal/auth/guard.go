package auth

import (
	"context"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/me-tool/internal/domain"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

const (
	userKey = "auth_user"

	// LoginPath is where unauthenticated visitors are sent.
	LoginPath = "/login"
)

// StaffFinder resolves the user id stored in a session.
type StaffFinder interface {
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
}

// Guard owns the session cookie lifecycle and protects routes.
type Guard struct {
	codec  *SessionCodec
	staff  StaffFinder
	logger *zap.Logger
}

// NewGuard constructs a guard.
func NewGuard(codec *SessionCodec, staff StaffFinder, logger *zap.Logger) *Guard {
	return &Guard{codec: codec, staff: staff, logger: logger}
}

// CreateSession sets a fresh session cookie and redirects to redirectTo.
func (g *Guard) CreateSession(c *fiber.Ctx, userID, redirectTo string) error {
	value, expiresAt, err := g.codec.Encode(userID)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Cookie(g.codec.Cookie(value, expiresAt))
	return c.Redirect(SafeRedirect(redirectTo), fiber.StatusFound)
}

// UserID returns the id carried by a valid session cookie.
func (g *Guard) UserID(c *fiber.Ctx) (string, bool) {
	session, err := g.codec.Decode(c.Cookies(CookieName))
	if err != nil {
		return "", false
	}
	return session.UserID, true
}

// RequireUser rejects requests without a session and loads the current user.
// A session pointing at a missing user is destroyed.
func (g *Guard) RequireUser(c *fiber.Ctx) error {
	userID, ok := g.UserID(c)
	if !ok {
		return apperrors.NewAuthenticationRequired(LoginRedirect(c.Path()))
	}
	user, err := g.loadUser(c, userID)
	if err != nil {
		return err
	}
	c.Locals(userKey, user)
	return c.Next()
}

// Optional loads the current user when a session is present. Invalid
// sessions are cleared and the request continues anonymously.
func (g *Guard) Optional(c *fiber.Ctx) error {
	userID, ok := g.UserID(c)
	if !ok {
		return c.Next()
	}
	user, err := g.lookup(c.UserContext(), userID)
	if err != nil {
		g.logger.Warn("dropping session for unknown user", zap.String("user_id", userID), zap.Error(err))
		c.Cookie(g.codec.ExpiredCookie())
		return c.Next()
	}
	c.Locals(userKey, user)
	return c.Next()
}

// RequireRole allows the request only if the current user has one of roles.
// It must run after RequireUser.
func (g *Guard) RequireRole(roles ...domain.StaffRole) fiber.Handler {
	allowed := make(map[domain.StaffRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return apperrors.NewForbidden()
		}
		if _, ok := allowed[user.Role]; !ok {
			return apperrors.NewForbidden()
		}
		return c.Next()
	}
}

// Logout destroys the session and redirects to the login page.
func (g *Guard) Logout(c *fiber.Ctx) error {
	g.clear(c)
	return c.Redirect(LoginPath, fiber.StatusFound)
}

// CurrentUser returns the user loaded by RequireUser or Optional.
func CurrentUser(c *fiber.Ctx) *domain.SafeStaff {
	user, _ := c.Locals(userKey).(*domain.SafeStaff)
	return user
}

func (g *Guard) loadUser(c *fiber.Ctx, userID string) (*domain.SafeStaff, error) {
	user, err := g.lookup(c.UserContext(), userID)
	if err != nil {
		g.logger.Error("failed to load session user", zap.String("user_id", userID), zap.Error(err))
		g.clear(c)
		return nil, apperrors.NewAuthenticationRequired(LoginPath)
	}
	return user, nil
}

func (g *Guard) lookup(ctx context.Context, userID string) (*domain.SafeStaff, error) {
	member, err := g.staff.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	safe := member.Safe()
	return &safe, nil
}

func (g *Guard) clear(c *fiber.Ctx) {
	c.Cookie(g.codec.ExpiredCookie())
	c.Set("Clear-Site-Data", `"cookies", "storage"`)
}

// LoginRedirect builds the login URL that returns to path after signing in.
func LoginRedirect(path string) string {
	return LoginPath + "?" + url.Values{"redirectTo": {path}}.Encode()
}

// SafeRedirect keeps post-login redirects on this site. Anything that is not
// a local absolute path becomes "/".
func SafeRedirect(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") {
		return "/"
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return target
}
