package dashboardController

import (
	"context"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

type DashboardController struct {
	houseRepo     repositories.HouseRepository
	roomRepo      repositories.RoomRepository
	applianceRepo repositories.ApplianceRepository
	partRepo      repositories.PartRepository
	log           logger.Logger
}

type DashboardControllerInterface interface {
	GetDashboard(ctx context.Context, user *User) ([]HouseWithRooms, error)
}

func New(repos repositories.Repository) DashboardControllerInterface {
	return &DashboardController{
		houseRepo:     repos.House,
		roomRepo:      repos.Room,
		applianceRepo: repos.Appliance,
		partRepo:      repos.Part,
		log:           logger.New("dashboardController"),
	}
}

// GetDashboard assembles the full inventory tree for a user: every house
// with its rooms, each room with its appliances, each appliance with its
// parts.
func (c *DashboardController) GetDashboard(
	ctx context.Context,
	user *User,
) ([]HouseWithRooms, error) {
	log := c.log.Function("GetDashboard")

	houses, err := c.houseRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, log.Err("failed to load houses", err, "userID", user.ID)
	}

	dashboard := make([]HouseWithRooms, 0, len(houses))
	for _, house := range houses {
		rooms, err := c.roomRepo.GetByHouseID(ctx, house.ID)
		if err != nil {
			return nil, log.Err("failed to load rooms", err, "houseID", house.ID)
		}

		houseNode := HouseWithRooms{
			House: *house,
			Rooms: make([]RoomWithAppliances, 0, len(rooms)),
		}

		for _, room := range rooms {
			appliances, err := c.applianceRepo.GetByRoomID(ctx, room.ID)
			if err != nil {
				return nil, log.Err("failed to load appliances", err, "roomID", room.ID)
			}

			roomNode := RoomWithAppliances{
				Room:       *room,
				Appliances: make([]ApplianceWithParts, 0, len(appliances)),
			}

			for _, appliance := range appliances {
				parts, err := c.partRepo.GetByApplianceID(ctx, appliance.ID)
				if err != nil {
					return nil, log.Err(
						"failed to load parts",
						err,
						"applianceID",
						appliance.ID,
					)
				}

				roomNode.Appliances = append(roomNode.Appliances, ApplianceWithParts{
					Appliance: *appliance,
					Parts:     parts,
				})
			}

			houseNode.Rooms = append(houseNode.Rooms, roomNode)
		}

		dashboard = append(dashboard, houseNode)
	}

	return dashboard, nil
}
