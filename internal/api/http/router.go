package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/me-tool/internal/api/http/handlers"
	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Session  *handlers.SessionHandler
	Strategy *handlers.StrategyHandler
	Activity *handlers.ActivityHandler
	Staff    *handlers.StaffHandler
	Guard    *auth.Guard
}

// RegisterRoutes wires HTTP routes. Reads need a session; writes also need
// the ADMIN role, checked before the body is decoded.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Guard.Optional, handlers.Index)
	app.Get("/login", cfg.Session.LoginPage)
	app.Post("/login", cfg.Session.Login)
	app.Post("/logout", cfg.Guard.RequireUser, cfg.Session.Logout)

	authed := cfg.Guard.RequireUser
	admin := cfg.Guard.RequireRole(domain.StaffRoleAdmin)

	app.Get("/strategy", authed, cfg.Strategy.ListObjectives)
	app.Post("/strategy", authed, admin, cfg.Strategy.CreateObjective)

	app.Get("/project", authed, cfg.Strategy.ListProjects)
	app.Post("/project", authed, admin, cfg.Strategy.CreateProject)

	app.Get("/workshop", authed, cfg.Activity.ListWorkshops)
	app.Post("/workshop", authed, admin, cfg.Activity.CreateWorkshop)

	app.Get("/livelihood", authed, cfg.Activity.ListLivelihoods)
	app.Post("/livelihood", authed, admin, cfg.Activity.CreateLivelihood)

	app.Get("/staff", authed, cfg.Staff.ListStaff)
	app.Post("/staff", authed, admin, cfg.Staff.CreateStaff)

	app.Get("/team", authed, cfg.Staff.ListTeams)
	app.Post("/team", authed, admin, cfg.Staff.CreateTeam)
}
