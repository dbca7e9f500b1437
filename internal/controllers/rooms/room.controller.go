package roomController

import (
	"context"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

type RoomController struct {
	roomRepo  repositories.RoomRepository
	ownership repositories.OwnershipResolver
	log       logger.Logger
}

type RoomControllerInterface interface {
	Create(ctx context.Context, user *User, req CreateRoomRequest) (*Room, error)
	GetByID(ctx context.Context, user *User, roomID int) (*Room, error)
	ListByHouse(ctx context.Context, user *User, houseID int) ([]*Room, error)
	Update(ctx context.Context, user *User, roomID int, req UpdateRoomRequest) (*Room, error)
	Delete(ctx context.Context, user *User, roomID int) error
}

func New(repos repositories.Repository) RoomControllerInterface {
	return &RoomController{
		roomRepo:  repos.Room,
		ownership: repos.Ownership,
		log:       logger.New("roomController"),
	}
}

func (c *RoomController) Create(
	ctx context.Context,
	user *User,
	req CreateRoomRequest,
) (*Room, error) {
	if err := c.authorizeHouse(ctx, user, req.HouseID); err != nil {
		return nil, err
	}

	room := &Room{
		Name:          req.Name,
		HouseID:       req.HouseID,
		Description:   req.Description,
		SquareFootage: req.SquareFootage,
		ReminderDate:  req.ReminderDate,
		WebsiteLink:   req.WebsiteLink,
	}

	if err := c.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

func (c *RoomController) GetByID(ctx context.Context, user *User, roomID int) (*Room, error) {
	if err := c.authorizeRoom(ctx, user, roomID); err != nil {
		return nil, err
	}

	return c.roomRepo.GetByID(ctx, roomID)
}

func (c *RoomController) ListByHouse(
	ctx context.Context,
	user *User,
	houseID int,
) ([]*Room, error) {
	if err := c.authorizeHouse(ctx, user, houseID); err != nil {
		return nil, err
	}

	return c.roomRepo.GetByHouseID(ctx, houseID)
}

func (c *RoomController) Update(
	ctx context.Context,
	user *User,
	roomID int,
	req UpdateRoomRequest,
) (*Room, error) {
	if err := c.authorizeRoom(ctx, user, roomID); err != nil {
		return nil, err
	}

	room, err := c.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	room.Name = req.Name
	room.Description = req.Description
	room.SquareFootage = req.SquareFootage
	room.ReminderDate = req.ReminderDate
	room.WebsiteLink = req.WebsiteLink

	if err := c.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

func (c *RoomController) Delete(ctx context.Context, user *User, roomID int) error {
	if err := c.authorizeRoom(ctx, user, roomID); err != nil {
		return err
	}

	return c.roomRepo.Delete(ctx, roomID)
}

func (c *RoomController) authorizeHouse(ctx context.Context, user *User, houseID int) error {
	owner, err := c.ownership.HouseOwner(ctx, houseID)
	if err != nil {
		return err
	}

	if owner != user.ID {
		return repositories.ErrForbidden
	}

	return nil
}

func (c *RoomController) authorizeRoom(ctx context.Context, user *User, roomID int) error {
	owner, err := c.ownership.RoomOwner(ctx, roomID)
	if err != nil {
		return err
	}

	if owner != user.ID {
		return repositories.ErrForbidden
	}

	return nil
}
