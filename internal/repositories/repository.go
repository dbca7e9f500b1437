package repositories

import (
	"ogrelist/internal/database"
)

type Repository struct {
	User      UserRepository
	House     HouseRepository
	Room      RoomRepository
	Appliance ApplianceRepository
	Part      PartRepository
	Ownership OwnershipResolver
}

func New(db database.DB) Repository {
	userRepo := NewUserRepository(db)
	houseRepo := NewHouseRepository(db)
	roomRepo := NewRoomRepository(db)
	applianceRepo := NewApplianceRepository(db)
	partRepo := NewPartRepository(db)

	return Repository{
		User:      userRepo,
		House:     houseRepo,
		Room:      roomRepo,
		Appliance: applianceRepo,
		Part:      partRepo,
		Ownership: NewOwnershipResolver(houseRepo, roomRepo, applianceRepo, partRepo),
	}
}
