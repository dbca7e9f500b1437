package houseController

import (
	"context"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

type HouseController struct {
	houseRepo repositories.HouseRepository
	ownership repositories.OwnershipResolver
	log       logger.Logger
}

type HouseControllerInterface interface {
	Create(ctx context.Context, user *User, req CreateHouseRequest) (*House, error)
	GetByID(ctx context.Context, user *User, houseID int) (*House, error)
	ListByUser(ctx context.Context, user *User) ([]*House, error)
	Update(ctx context.Context, user *User, houseID int, req UpdateHouseRequest) (*House, error)
	Delete(ctx context.Context, user *User, houseID int) error
}

func New(repos repositories.Repository) HouseControllerInterface {
	return &HouseController{
		houseRepo: repos.House,
		ownership: repos.Ownership,
		log:       logger.New("houseController"),
	}
}

func (c *HouseController) Create(
	ctx context.Context,
	user *User,
	req CreateHouseRequest,
) (*House, error) {
	house := &House{
		Name:         req.Name,
		UserID:       user.ID,
		YearBuilt:    req.YearBuilt,
		Address:      req.Address,
		ReminderDate: req.ReminderDate,
		WebsiteLink:  req.WebsiteLink,
	}

	if err := c.houseRepo.Create(ctx, house); err != nil {
		return nil, err
	}

	return house, nil
}

func (c *HouseController) GetByID(ctx context.Context, user *User, houseID int) (*House, error) {
	house, err := c.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return nil, err
	}

	if house.UserID != user.ID {
		return nil, repositories.ErrForbidden
	}

	return house, nil
}

func (c *HouseController) ListByUser(ctx context.Context, user *User) ([]*House, error) {
	return c.houseRepo.GetByUserID(ctx, user.ID)
}

func (c *HouseController) Update(
	ctx context.Context,
	user *User,
	houseID int,
	req UpdateHouseRequest,
) (*House, error) {
	house, err := c.GetByID(ctx, user, houseID)
	if err != nil {
		return nil, err
	}

	house.Name = req.Name
	house.YearBuilt = req.YearBuilt
	house.Address = req.Address
	house.ReminderDate = req.ReminderDate
	house.WebsiteLink = req.WebsiteLink

	if err := c.houseRepo.Update(ctx, house); err != nil {
		return nil, err
	}

	return house, nil
}

func (c *HouseController) Delete(ctx context.Context, user *User, houseID int) error {
	if _, err := c.GetByID(ctx, user, houseID); err != nil {
		return err
	}

	return c.houseRepo.Delete(ctx, houseID)
}
