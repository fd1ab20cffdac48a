package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/me-tool/internal/api/dto"
	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/service"
)

// StrategyHandler serves strategic objectives and projects.
type StrategyHandler struct {
	strategy *service.StrategyService
	org      *service.StaffService
}

// NewStrategyHandler constructs handler.
func NewStrategyHandler(strategy *service.StrategyService, org *service.StaffService) *StrategyHandler {
	return &StrategyHandler{strategy: strategy, org: org}
}

// ListObjectives handles GET /strategy.
func (h *StrategyHandler) ListObjectives(c *fiber.Ctx) error {
	ctx := c.UserContext()
	objectives, err := h.strategy.ListObjectives(ctx)
	if err != nil {
		return err
	}
	teams, err := h.org.ListTeams(ctx)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"strategicObjectives": dto.NewObjectiveResponses(objectives),
		"teams":               dto.NewTeamResponses(teams),
		"user":                dto.NewStaffResponse(auth.CurrentUser(c)),
	})
}

// CreateObjective handles POST /strategy.
func (h *StrategyHandler) CreateObjective(c *fiber.Ctx) error {
	values, err := formValues(c)
	if err != nil {
		return err
	}
	objective, err := h.strategy.CreateObjective(c.UserContext(), auth.CurrentUser(c), values)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewObjectiveResponse(objective)})
}

// ListProjects handles GET /project.
func (h *StrategyHandler) ListProjects(c *fiber.Ctx) error {
	ctx := c.UserContext()
	projects, err := h.strategy.ListProjects(ctx)
	if err != nil {
		return err
	}
	objectives, err := h.strategy.ListObjectives(ctx)
	if err != nil {
		return err
	}
	teams, err := h.org.ListTeams(ctx)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"projects":            dto.NewProjectResponses(projects),
		"strategicObjectives": dto.NewObjectiveResponses(objectives),
		"teams":               dto.NewTeamResponses(teams),
		"user":                dto.NewStaffResponse(auth.CurrentUser(c)),
	})
}

// CreateProject handles POST /project.
func (h *StrategyHandler) CreateProject(c *fiber.Ctx) error {
	values, err := formValues(c)
	if err != nil {
		return err
	}
	project, err := h.strategy.CreateProject(c.UserContext(), auth.CurrentUser(c), values)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewProjectResponse(project)})
}
