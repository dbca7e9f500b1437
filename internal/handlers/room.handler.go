package handlers

import (
	"ogrelist/internal/app"
	roomController "ogrelist/internal/controllers/rooms"
	"ogrelist/internal/handlers/middleware"
	"ogrelist/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type RoomHandler struct {
	Handler
	roomController roomController.RoomControllerInterface
}

func NewRoomHandler(app app.App, router fiber.Router) *RoomHandler {
	log := logger.New("handlers").File("room_handler")
	return &RoomHandler{
		roomController: app.Controllers.Room,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RoomHandler) Register() {
	rooms := h.router.Group("/room")
	rooms.Use(h.middleware.RequireAuth())

	rooms.Post("", h.createRoom)
	rooms.Get("/house/:houseId", h.getRoomsByHouse)
	rooms.Get("/:roomId", h.getRoom)
	rooms.Put("/:roomId", h.updateRoom)
	rooms.Delete("/:roomId", h.deleteRoom)
}

func (h *RoomHandler) createRoom(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("room_handler").Function("createRoom")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req models.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.HouseID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and houseId are required",
		})
	}

	room, err := h.roomController.Create(c.Context(), user, req)
	if err != nil {
		return controllerError(c, log, err, "Failed to create room")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"room": room,
	})
}

func (h *RoomHandler) getRoomsByHouse(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("room_handler").Function("getRoomsByHouse")

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

	rooms, err := h.roomController.ListByHouse(c.Context(), user, houseID)
	if err != nil {
		return controllerError(c, log, err, "Failed to retrieve rooms")
	}

	return c.JSON(fiber.Map{
		"rooms": rooms,
	})
}

func (h *RoomHandler) getRoom(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("room_handler").Function("getRoom")

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

	room, err := h.roomController.GetByID(c.Context(), user, roomID)
	if err != nil {
		return controllerError(c, log, err, "Failed to retrieve room")
	}

	return c.JSON(fiber.Map{
		"room": room,
	})
}

func (h *RoomHandler) updateRoom(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("room_handler").Function("updateRoom")

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

	var req models.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "roomID", roomID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	room, err := h.roomController.Update(c.Context(), user, roomID, req)
	if err != nil {
		return controllerError(c, log, err, "Failed to update room")
	}

	return c.JSON(fiber.Map{
		"room": room,
	})
}

func (h *RoomHandler) deleteRoom(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("room_handler").Function("deleteRoom")

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

	if err := h.roomController.Delete(c.Context(), user, roomID); err != nil {
		return controllerError(c, log, err, "Failed to delete room")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
