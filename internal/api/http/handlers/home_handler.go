package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/me-tool/internal/api/dto"
	"github.com/spec-kit/me-tool/internal/auth"
)

// Index handles GET /. Anonymous visitors get a null user.
func Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"user": dto.NewStaffResponse(auth.CurrentUser(c))})
}
