package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/spec-kit/me-tool/internal/observability"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
// The request logger runs outermost so it records the status the error
// responder wrote.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger))
	app.Use(errorHandlingMiddleware(logger))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", observability.RequestID(c)),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				err = respondError(c, logger, err)
			}
		}()
		return c.Next()
	}
}

// respondError writes the response for err:
// validation failures list their fields, authentication failures redirect,
// everything else carries a single message.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberStatusMessage(fiberErr)})
	}

	domainErr := apperrors.ToDomainError(err)
	switch domainErr.Code {
	case apperrors.CodeUnauthenticated:
		return c.Redirect(domainErr.RedirectTo, fiber.StatusFound)
	case apperrors.CodeValidation:
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"errors": domainErr.Fields})
	}

	if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("request_id", observability.RequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(domainErr),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": apperrors.UnexpectedMessage})
	}
	return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Message})
}

// fiberStatusMessage hides router detail such as "Cannot GET /x".
func fiberStatusMessage(err *fiber.Error) string {
	if err.Code >= fiber.StatusInternalServerError {
		return apperrors.UnexpectedMessage
	}
	return utils.StatusMessage(err.Code)
}
