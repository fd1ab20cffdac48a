package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/service"
)

// SessionHandler exposes login and logout.
type SessionHandler struct {
	authService *service.AuthService
	guard       *auth.Guard
}

// NewSessionHandler constructs handler.
func NewSessionHandler(authService *service.AuthService, guard *auth.Guard) *SessionHandler {
	return &SessionHandler{authService: authService, guard: guard}
}

// LoginPage handles GET /login. Signed-in users are sent home.
func (h *SessionHandler) LoginPage(c *fiber.Ctx) error {
	if _, ok := h.guard.UserID(c); ok {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"redirectTo": auth.SafeRedirect(c.Query("redirectTo"))})
}

// Login handles POST /login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	values, err := formValues(c)
	if err != nil {
		return err
	}
	user, err := h.authService.Login(c.UserContext(), values.Get("email"), values["password"])
	if err != nil {
		return err
	}
	return h.guard.CreateSession(c, user.ID, values.Get("redirectTo"))
}

// Logout handles POST /logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	return h.guard.Logout(c)
}
