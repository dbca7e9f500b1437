package repositories

import (
	"context"

	logger "github.com/Bparsons0904/goLogger"
)

// OwnershipResolver walks an entity's parent chain up to the owning user.
// The original backend repeated this walk inline in every controller; it is
// consolidated here so all CRUD paths enforce the same ownership invariant.
// A broken link anywhere in the chain yields ErrNotFound.
type OwnershipResolver interface {
	HouseOwner(ctx context.Context, houseID int) (int, error)
	RoomOwner(ctx context.Context, roomID int) (int, error)
	ApplianceOwner(ctx context.Context, applianceID int) (int, error)
	PartOwner(ctx context.Context, partID int) (int, error)
}

type ownershipResolver struct {
	houseRepo     HouseRepository
	roomRepo      RoomRepository
	applianceRepo ApplianceRepository
	partRepo      PartRepository
	log           logger.Logger
}

func NewOwnershipResolver(
	houseRepo HouseRepository,
	roomRepo RoomRepository,
	applianceRepo ApplianceRepository,
	partRepo PartRepository,
) OwnershipResolver {
	return &ownershipResolver{
		houseRepo:     houseRepo,
		roomRepo:      roomRepo,
		applianceRepo: applianceRepo,
		partRepo:      partRepo,
		log:           logger.New("ownershipResolver"),
	}
}

func (o *ownershipResolver) HouseOwner(ctx context.Context, houseID int) (int, error) {
	house, err := o.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return 0, err
	}

	return house.UserID, nil
}

func (o *ownershipResolver) RoomOwner(ctx context.Context, roomID int) (int, error) {
	room, err := o.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}

	return o.HouseOwner(ctx, room.HouseID)
}

func (o *ownershipResolver) ApplianceOwner(ctx context.Context, applianceID int) (int, error) {
	appliance, err := o.applianceRepo.GetByID(ctx, applianceID)
	if err != nil {
		return 0, err
	}

	return o.RoomOwner(ctx, appliance.RoomID)
}

func (o *ownershipResolver) PartOwner(ctx context.Context, partID int) (int, error) {
	part, err := o.partRepo.GetByID(ctx, partID)
	if err != nil {
		return 0, err
	}

	return o.ApplianceOwner(ctx, part.ApplianceID)
}
