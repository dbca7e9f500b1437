package controllers

import (
	"ogrelist/config"
	"ogrelist/internal/repositories"

	applianceController "ogrelist/internal/controllers/appliances"
	authController "ogrelist/internal/controllers/auth"
	dashboardController "ogrelist/internal/controllers/dashboard"
	houseController "ogrelist/internal/controllers/houses"
	partController "ogrelist/internal/controllers/parts"
	roomController "ogrelist/internal/controllers/rooms"
	userController "ogrelist/internal/controllers/users"
)

type Controllers struct {
	Auth      authController.AuthControllerInterface
	User      userController.UserControllerInterface
	House     houseController.HouseControllerInterface
	Room      roomController.RoomControllerInterface
	Appliance applianceController.ApplianceControllerInterface
	Part      partController.PartControllerInterface
	Dashboard dashboardController.DashboardControllerInterface
}

func New(repos repositories.Repository, config config.Config) Controllers {
	return Controllers{
		Auth:      authController.New(repos, config),
		User:      userController.New(repos),
		House:     houseController.New(repos),
		Room:      roomController.New(repos),
		Appliance: applianceController.New(repos),
		Part:      partController.New(repos),
		Dashboard: dashboardController.New(repos),
	}
}
