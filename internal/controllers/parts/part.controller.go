package partController

import (
	"context"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

type PartController struct {
	partRepo  repositories.PartRepository
	ownership repositories.OwnershipResolver
	log       logger.Logger
}

type PartControllerInterface interface {
	Create(ctx context.Context, user *User, req CreatePartRequest) (*Part, error)
	GetByID(ctx context.Context, user *User, partID int) (*Part, error)
	ListByAppliance(ctx context.Context, user *User, applianceID int) ([]*Part, error)
	Update(ctx context.Context, user *User, partID int, req UpdatePartRequest) (*Part, error)
	Delete(ctx context.Context, user *User, partID int) error
}

func New(repos repositories.Repository) PartControllerInterface {
	return &PartController{
		partRepo:  repos.Part,
		ownership: repos.Ownership,
		log:       logger.New("partController"),
	}
}

func (c *PartController) Create(
	ctx context.Context,
	user *User,
	req CreatePartRequest,
) (*Part, error) {
	if err := c.authorizeAppliance(ctx, user, req.ApplianceID); err != nil {
		return nil, err
	}

	part := &Part{
		Name:         req.Name,
		ApplianceID:  req.ApplianceID,
		ReminderDate: req.ReminderDate,
		WebsiteLink:  req.WebsiteLink,
	}

	if err := c.partRepo.Create(ctx, part); err != nil {
		return nil, err
	}

	return part, nil
}

func (c *PartController) GetByID(ctx context.Context, user *User, partID int) (*Part, error) {
	if err := c.authorizePart(ctx, user, partID); err != nil {
		return nil, err
	}

	return c.partRepo.GetByID(ctx, partID)
}

func (c *PartController) ListByAppliance(
	ctx context.Context,
	user *User,
	applianceID int,
) ([]*Part, error) {
	if err := c.authorizeAppliance(ctx, user, applianceID); err != nil {
		return nil, err
	}

	return c.partRepo.GetByApplianceID(ctx, applianceID)
}

func (c *PartController) Update(
	ctx context.Context,
	user *User,
	partID int,
	req UpdatePartRequest,
) (*Part, error) {
	if err := c.authorizePart(ctx, user, partID); err != nil {
		return nil, err
	}

	part, err := c.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	part.Name = req.Name
	part.ReminderDate = req.ReminderDate
	part.WebsiteLink = req.WebsiteLink

	if err := c.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	return part, nil
}

func (c *PartController) Delete(ctx context.Context, user *User, partID int) error {
	if err := c.authorizePart(ctx, user, partID); err != nil {
		return err
	}

	return c.partRepo.Delete(ctx, partID)
}

func (c *PartController) authorizeAppliance(
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

func (c *PartController) authorizePart(ctx context.Context, user *User, partID int) error {
	owner, err := c.ownership.PartOwner(ctx, partID)
	if err != nil {
		return err
	}

	if owner != user.ID {
		return repositories.ErrForbidden
	}

	return nil
}
