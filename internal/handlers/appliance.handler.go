package handlers

import (
	"ogrelist/internal/app"
	applianceController "ogrelist/internal/controllers/appliances"
	"ogrelist/internal/handlers/middleware"
	"ogrelist/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type ApplianceHandler struct {
	Handler
	applianceController applianceController.ApplianceControllerInterface
}

func NewApplianceHandler(app app.App, router fiber.Router) *ApplianceHandler {
	log := logger.New("handlers").File("appliance_handler")
	return &ApplianceHandler{
		applianceController: app.Controllers.Appliance,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ApplianceHandler) Register() {
	appliances := h.router.Group("/appliance")
	appliances.Use(h.middleware.RequireAuth())

	appliances.Post("", h.createAppliance)
	appliances.Get("/room/:roomId", h.getAppliancesByRoom)
	appliances.Get("/:applianceId", h.getAppliance)
	appliances.Put("/:applianceId", h.updateAppliance)
	appliances.Delete("/:applianceId", h.deleteAppliance)
}

func (h *ApplianceHandler) createAppliance(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("appliance_handler").Function("createAppliance")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req models.CreateApplianceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.RoomID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and roomId are required",
		})
	}

	appliance, err := h.applianceController.Create(c.Context(), user, req)
	if err != nil {
		return controllerError(c, log, err, "Failed to create appliance")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"appliance": appliance,
	})
}

func (h *ApplianceHandler) getAppliancesByRoom(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("appliance_handler").Function("getAppliancesByRoom")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	roomID, err := c.ParamsInt("roomId")
	if err != nil {
		log.Warn("Invalid room ID", "id", c.Params("roomId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid room ID",
		})
	}

	appliances, err := h.applianceController.ListByRoom(c.Context(), user, roomID)
	if err != nil {
		return controllerError(c, log, err, "Failed to retrieve appliances")
	}

	return c.JSON(fiber.Map{
		"appliances": appliances,
	})
}

func (h *ApplianceHandler) getAppliance(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("appliance_handler").Function("getAppliance")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	applianceID, err := c.ParamsInt("applianceId")
	if err != nil {
		log.Warn("Invalid appliance ID", "id", c.Params("applianceId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appliance ID",
		})
	}

	appliance, err := h.applianceController.GetByID(c.Context(), user, applianceID)
	if err != nil {
		return controllerError(c, log, err, "Failed to retrieve appliance")
	}

	return c.JSON(fiber.Map{
		"appliance": appliance,
	})
}

func (h *ApplianceHandler) updateAppliance(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("appliance_handler").Function("updateAppliance")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	applianceID, err := c.ParamsInt("applianceId")
	if err != nil {
		log.Warn("Invalid appliance ID", "id", c.Params("applianceId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appliance ID",
		})
	}

	var req models.UpdateApplianceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "applianceID", applianceID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	appliance, err := h.applianceController.Update(c.Context(), user, applianceID, req)
	if err != nil {
		return controllerError(c, log, err, "Failed to update appliance")
	}

	return c.JSON(fiber.Map{
		"appliance": appliance,
	})
}

func (h *ApplianceHandler) deleteAppliance(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("appliance_handler").Function("deleteAppliance")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	applianceID, err := c.ParamsInt("applianceId")
	if err != nil {
		log.Warn("Invalid appliance ID", "id", c.Params("applianceId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appliance ID",
		})
	}

	if err := h.applianceController.Delete(c.Context(), user, applianceID); err != nil {
		return controllerError(c, log, err, "Failed to delete appliance")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
