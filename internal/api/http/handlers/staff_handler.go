package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/me-tool/internal/api/dto"
	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/service"
)

// StaffHandler exposes staff accounts and teams.
type StaffHandler struct {
	orgService *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(orgService *service.StaffService) *StaffHandler {
	return &StaffHandler{orgService: orgService}
}

// ListStaff handles GET /staff.
func (h *StaffHandler) ListStaff(c *fiber.Ctx) error {
	staff, err := h.orgService.ListStaff(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"staff": dto.NewStaffResponses(staff),
		"user":  dto.NewStaffResponse(auth.CurrentUser(c)),
	})
}

// CreateStaff handles POST /staff.
func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	values, err := formValues(c)
	if err != nil {
		return err
	}
	created, err := h.orgService.CreateStaffMember(c.UserContext(), auth.CurrentUser(c), values)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewStaffResponse(created)})
}

// ListTeams handles GET /team.
func (h *StaffHandler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.orgService.ListTeams(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"teams": dto.NewTeamOptions(teams),
		"user":  dto.NewStaffResponse(auth.CurrentUser(c)),
	})
}

// CreateTeam handles POST /team.
func (h *StaffHandler) CreateTeam(c *fiber.Ctx) error {
	values, err := formValues(c)
	if err != nil {
		return err
	}
	team, err := h.orgService.CreateTeam(c.UserContext(), auth.CurrentUser(c), values)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTeamResponse(team)})
}
