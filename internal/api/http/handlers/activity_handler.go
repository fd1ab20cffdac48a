package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/me-tool/internal/api/dto"
	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/service"
)

// ActivityHandler serves workshops and livelihood grants.
type ActivityHandler struct {
	activity *service.ActivityService
	strategy *service.StrategyService
}

// NewActivityHandler constructs handler.
func NewActivityHandler(activity *service.ActivityService, strategy *service.StrategyService) *ActivityHandler {
	return &ActivityHandler{activity: activity, strategy: strategy}
}

// projectOptions lists projects for the selection inputs on activity forms.
func (h *ActivityHandler) projectOptions(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := h.strategy.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].StrategicObjective, projects[i].Team = nil, nil
	}
	return dto.NewProjectResponses(projects), nil
}

// ListWorkshops handles GET /workshop.
func (h *ActivityHandler) ListWorkshops(c *fiber.Ctx) error {
	ctx := c.UserContext()
	workshops, err := h.activity.ListWorkshops(ctx)
	if err != nil {
		return err
	}
	projects, err := h.projectOptions(ctx)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"workshops": dto.NewWorkshopResponses(workshops),
		"projects":  projects,
		"user":      dto.NewStaffResponse(auth.CurrentUser(c)),
	})
}

// CreateWorkshop handles POST /workshop.
func (h *ActivityHandler) CreateWorkshop(c *fiber.Ctx) error {
	values, err := formValues(c)
	if err != nil {
		return err
	}
	workshop, err := h.activity.CreateWorkshop(c.UserContext(), auth.CurrentUser(c), values)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewWorkshopResponse(workshop)})
}

// ListLivelihoods handles GET /livelihood.
func (h *ActivityHandler) ListLivelihoods(c *fiber.Ctx) error {
	ctx := c.UserContext()
	livelihoods, err := h.activity.ListLivelihoods(ctx)
	if err != nil {
		return err
	}
	projects, err := h.projectOptions(ctx)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"livelihoods": dto.NewLivelihoodResponses(livelihoods),
		"projects":    projects,
		"user":        dto.NewStaffResponse(auth.CurrentUser(c)),
	})
}

// CreateLivelihood handles POST /livelihood.
func (h *ActivityHandler) CreateLivelihood(c *fiber.Ctx) error {
	values, err := formValues(c)
	if err != nil {
		return err
	}
	livelihood, err := h.activity.CreateLivelihood(c.UserContext(), auth.CurrentUser(c), values)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewLivelihoodResponse(livelihood)})
}
