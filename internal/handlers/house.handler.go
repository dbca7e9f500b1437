package handlers

import (
	"ogrelist/internal/app"
	houseController "ogrelist/internal/controllers/houses"
	"ogrelist/internal/handlers/middleware"
	"ogrelist/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type HouseHandler struct {
	Handler
	houseController houseController.HouseControllerInterface
}

func NewHouseHandler(app app.App, router fiber.Router) *HouseHandler {
	log := logger.New("handlers").File("house_handler")
	return &HouseHandler{
		houseController: app.Controllers.House,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *HouseHandler) Register() {
	houses := h.router.Group("/house")
	houses.Use(h.middleware.RequireAuth())

	houses.Post("", h.createHouse)
	houses.Get("", h.getHouses)
	houses.Get("/:houseId", h.getHouse)
	houses.Put("/:houseId", h.updateHouse)
	houses.Delete("/:houseId", h.deleteHouse)
}

func (h *HouseHandler) createHouse(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("house_handler").Function("createHouse")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req models.CreateHouseRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	house, err := h.houseController.Create(c.Context(), user, req)
	if err != nil {
		return controllerError(c, log, err, "Failed to create house")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"house": house,
	})
}

func (h *HouseHandler) getHouses(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("house_handler").Function("getHouses")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	houses, err := h.houseController.ListByUser(c.Context(), user)
	if err != nil {
		return controllerError(c, log, err, "Failed to retrieve houses")
	}

	return c.JSON(fiber.Map{
		"houses": houses,
	})
}

func (h *HouseHandler) getHouse(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("house_handler").Function("getHouse")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	houseID, err := c.ParamsInt("houseId")
	if err != nil {
		log.Warn("Invalid house ID", "id", c.Params("houseId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid house ID",
		})
	}

	house, err := h.houseController.GetByID(c.Context(), user, houseID)
	if err != nil {
		return controllerError(c, log, err, "Failed to retrieve house")
	}

	return c.JSON(fiber.Map{
		"house": house,
	})
}

func (h *HouseHandler) updateHouse(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("house_handler").Function("updateHouse")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	houseID, err := c.ParamsInt("houseId")
	if err != nil {
		log.Warn("Invalid house ID", "id", c.Params("houseId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid house ID",
		})
	}

	var req models.UpdateHouseRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "houseID", houseID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	house, err := h.houseController.Update(c.Context(), user, houseID, req)
	if err != nil {
		return controllerError(c, log, err, "Failed to update house")
	}

	return c.JSON(fiber.Map{
		"house": house,
	})
}

func (h *HouseHandler) deleteHouse(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("house_handler").Function("deleteHouse")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	houseID, err := c.ParamsInt("houseId")
	if err != nil {
		log.Warn("Invalid house ID", "id", c.Params("houseId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid house ID",
		})
	}

	if err := h.houseController.Delete(c.Context(), user, houseID); err != nil {
		return controllerError(c, log, err, "Failed to delete house")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
