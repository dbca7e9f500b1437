package applianceController

import (
	"context"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

type ApplianceController struct {
	applianceRepo repositories.ApplianceRepository
	ownership     repositories.OwnershipResolver
	log           logger.Logger
}

type ApplianceControllerInterface interface {
	Create(ctx context.Context, user *User, req CreateApplianceRequest) (*Appliance, error)
	GetByID(ctx context.Context, user *User, applianceID int) (*Appliance, error)
	ListByRoom(ctx context.Context, user *User, roomID int) ([]*Appliance, error)
	Update(
		ctx context.Context,
		user *User,
		applianceID int,
		req UpdateApplianceRequest,
	) (*Appliance, error)
	Delete(ctx context.Context, user *User, applianceID int) error
}

func New(repos repositories.Repository) ApplianceControllerInterface {
	return &ApplianceController{
		applianceRepo: repos.Appliance,
		ownership:     repos.Ownership,
		log:           logger.New("applianceController"),
	}
}

func (c *ApplianceController) Create(
	ctx context.Context,
	user *User,
	req CreateApplianceRequest,
) (*Appliance, error) {
	if err := c.authorizeRoom(ctx, user, req.RoomID); err != nil {
		return nil, err
	}

	appliance := &Appliance{
		Name:         req.Name,
		RoomID:       req.RoomID,
		Model:        req.Model,
		Brand:        req.Brand,
		PurchaseDate: req.PurchaseDate,
		ReminderDate: req.ReminderDate,
		WebsiteLink:  req.WebsiteLink,
	}

	if err := c.applianceRepo.Create(ctx, appliance); err != nil {
		return nil, err
	}

	return appliance, nil
}

func (c *ApplianceController) GetByID(
	ctx context.Context,
	user *User,
	applianceID int,
) (*Appliance, error) {
	if err := c.authorizeAppliance(ctx, user, applianceID); err != nil {
		return nil, err
	}

	return c.applianceRepo.GetByID(ctx, applianceID)
}

func (c *ApplianceController) ListByRoom(
	ctx context.Context,
	user *User,
	roomID int,
) ([]*Appliance, error) {
	if err := c.authorizeRoom(ctx, user, roomID); err != nil {
		return nil, err
	}

	return c.applianceRepo.GetByRoomID(ctx, roomID)
}

func (c *ApplianceController) Update(
	ctx context.Context,
	user *User,
	applianceID int,
	req UpdateApplianceRequest,
) (*Appliance, error) {
	if err := c.authorizeAppliance(ctx, user, applianceID); err != nil {
		return nil, err
	}

	appliance, err := c.applianceRepo.GetByID(ctx, applianceID)
	if err != nil {
		return nil, err
	}

	appliance.Name = req.Name
	appliance.Model = req.Model
	appliance.Brand = req.Brand
	appliance.PurchaseDate = req.PurchaseDate
	appliance.ReminderDate = req.ReminderDate
	appliance.WebsiteLink = req.WebsiteLink

	if err := c.applianceRepo.Update(ctx, appliance); err != nil {
		return nil, err
	}

	return appliance, nil
}

func (c *ApplianceController) Delete(ctx context.Context, user *User, applianceID int) error {
	if err := c.authorizeAppliance(ctx, user, applianceID); err != nil {
		return err
	}

	return c.applianceRepo.Delete(ctx, applianceID)
}

func (c *ApplianceController) authorizeRoom(ctx context.Context, user *User, roomID int) error {
	owner, err := c.ownership.RoomOwner(ctx, roomID)
	if err != nil {
		return err
	}

	if owner != user.ID {
		return repositories.ErrForbidden
	}

	return nil
}

func (c *ApplianceController) authorizeAppliance(
	ctx context.Context,
	user *User,
	applianceID int,
) error {
	owner, err := c.ownership.ApplianceOwner(ctx, applianceID)
	if err != nil {
		return err
	}

	if owner != user.ID {
		return repositories.ErrForbidden
	}

	return nil
}
