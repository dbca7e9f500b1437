package handlers

import (
	"errors"

	"ogrelist/internal/app"
	"ogrelist/internal/handlers/middleware"
	"ogrelist/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewAuthHandler(*app, api).Register()
	NewUserHandler(*app, api).Register()
	NewDashboardHandler(*app, api).Register()
	NewHouseHandler(*app, api).Register()
	NewRoomHandler(*app, api).Register()
	NewApplianceHandler(*app, api).Register()
	NewPartHandler(*app, api).Register()

	return nil
}

// controllerError maps repository sentinel errors onto HTTP responses; any
// unrecognized error is logged and reported as a 500.
func controllerError(c *fiber.Ctx, log logger.Logger, err error, message string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, repositories.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	case errors.Is(err, repositories.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Already exists",
		})
	default:
		_ = log.Err(message, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": message,
		})
	}
}
