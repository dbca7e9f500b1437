package handlers

import (
	"ogrelist/internal/app"
	dashboardController "ogrelist/internal/controllers/dashboard"
	"ogrelist/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Handler
	dashboardController dashboardController.DashboardControllerInterface
}

func NewDashboardHandler(app app.App, router fiber.Router) *DashboardHandler {
	log := logger.New("handlers").File("dashboard_handler")
	return &DashboardHandler{
		dashboardController: app.Controllers.Dashboard,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DashboardHandler) Register() {
	dashboard := h.router.Group("/dashboard")
	dashboard.Use(h.middleware.RequireAuth())

	dashboard.Get("", h.getDashboard)
}

func (h *DashboardHandler) getDashboard(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("dashboard_handler").Function("getDashboard")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	houses, err := h.dashboardController.GetDashboard(c.Context(), user)
	if err != nil {
		return controllerError(c, log, err, "Failed to load dashboard")
	}

	return c.JSON(fiber.Map{
		"houses": houses,
	})
}
