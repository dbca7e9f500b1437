package handlers

import (
	"ogrelist/internal/app"
	partController "ogrelist/internal/controllers/parts"
	"ogrelist/internal/handlers/middleware"
	"ogrelist/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type PartHandler struct {
	Handler
	partController partController.PartControllerInterface
}

func NewPartHandler(app app.App, router fiber.Router) *PartHandler {
	log := logger.New("handlers").File("part_handler")
	return &PartHandler{
		partController: app.Controllers.Part,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PartHandler) Register() {
	parts := h.router.Group("/part")
	parts.Use(h.middleware.RequireAuth())

	parts.Post("", h.createPart)
	parts.Get("/appliance/:applianceId", h.getPartsByAppliance)
	parts.Get("/:partId", h.getPart)
	parts.Put("/:partId", h.updatePart)
	parts.Delete("/:partId", h.deletePart)
}

func (h *PartHandler) createPart(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("part_handler").Function("createPart")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req models.CreatePartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.ApplianceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and applianceId are required",
		})
	}

	part, err := h.partController.Create(c.Context(), user, req)
	if err != nil {
		return controllerError(c, log, err, "Failed to create part")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"part": part,
	})
}

func (h *PartHandler) getPartsByAppliance(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("part_handler").Function("getPartsByAppliance")

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

	parts, err := h.partController.ListByAppliance(c.Context(), user, applianceID)
	if err != nil {
		return controllerError(c, log, err, "Failed to retrieve parts")
	}

	return c.JSON(fiber.Map{
		"parts": parts,
	})
}

func (h *PartHandler) getPart(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("part_handler").Function("getPart")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	partID, err := c.ParamsInt("partId")
	if err != nil {
		log.Warn("Invalid part ID", "id", c.Params("partId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid part ID",
		})
	}

	part, err := h.partController.GetByID(c.Context(), user, partID)
	if err != nil {
		return controllerError(c, log, err, "Failed to retrieve part")
	}

	return c.JSON(fiber.Map{
		"part": part,
	})
}

func (h *PartHandler) updatePart(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("part_handler").Function("updatePart")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	partID, err := c.ParamsInt("partId")
	if err != nil {
		log.Warn("Invalid part ID", "id", c.Params("partId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid part ID",
		})
	}

	var req models.UpdatePartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "partID", partID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	part, err := h.partController.Update(c.Context(), user, partID, req)
	if err != nil {
		return controllerError(c, log, err, "Failed to update part")
	}

	return c.JSON(fiber.Map{
		"part": part,
	})
}

func (h *PartHandler) deletePart(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("part_handler").Function("deletePart")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	partID, err := c.ParamsInt("partId")
	if err != nil {
		log.Warn("Invalid part ID", "id", c.Params("partId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid part ID",
		})
	}

	if err := h.partController.Delete(c.Context(), user, partID); err != nil {
		return controllerError(c, log, err, "Failed to delete part")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
