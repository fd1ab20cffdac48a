package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ServerConfig holds app level settings for NewServer.
type ServerConfig struct {
	AppName        string
	RequestTimeout time.Duration
}

// NewServer builds the fiber app with middlewares and routes registered.
func NewServer(cfg ServerConfig, logger *zap.Logger, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})
	RegisterMiddlewares(app, logger, cfg.RequestTimeout)
	RegisterRoutes(app, routes)
	return app
}
