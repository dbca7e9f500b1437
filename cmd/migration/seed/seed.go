package seed

import (
	"time"

	"ogrelist/config"
	. "ogrelist/internal/models"
	"ogrelist/internal/utils"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// Seed creates a small development dataset: two users, a house per user,
// and a full room/appliance/part chain under the first house with a
// reminder already due so the sweep has something to pick up.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	password, err := utils.HashPassword("password")
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	users := []User{
		{
			Username: "shrek",
			Password: password,
			Email:    "shrek@example.com",
		},
		{
			Username: "fiona",
			Password: password,
			Email:    "fiona@example.com",
		},
	}

	for i := range users {
		var existing User
		if err := db.First(&existing, "username = ?", users[i].Username).Error; err == nil {
			log.Info("User already exists", "username", users[i].Username)
			users[i] = existing
			continue
		}
		if err := db.Create(&users[i]).Error; err != nil {
			return log.Err("failed to create user", err, "username", users[i].Username)
		}
		log.Info("Seeded user", "username", users[i].Username)
	}

	pastReminder := timePtr(time.Now().UTC().Add(-24 * time.Hour))

	house := House{
		Name:         "The Swamp",
		UserID:       users[0].ID,
		YearBuilt:    intPtr(2001),
		Address:      stringPtr("1 Swamp Lane, Duloc"),
		ReminderDate: pastReminder,
	}
	if err := db.Create(&house).Error; err != nil {
		return log.Err("failed to create house", err)
	}

	secondHouse := House{
		Name:      "Dragon's Keep",
		UserID:    users[1].ID,
		YearBuilt: intPtr(1450),
	}
	if err := db.Create(&secondHouse).Error; err != nil {
		return log.Err("failed to create house", err)
	}

	room := Room{
		Name:          "Kitchen",
		HouseID:       house.ID,
		Description:   stringPtr("Mud kitchen with onion storage"),
		SquareFootage: decimalPtr(decimal.NewFromFloat(180.50)),
	}
	if err := db.Create(&room).Error; err != nil {
		return log.Err("failed to create room", err)
	}

	appliance := Appliance{
		Name:   "Stove",
		RoomID: room.ID,
		Brand:  stringPtr("Far Far Away Appliances"),
		Model:  stringPtr("FFA-3000"),
	}
	if err := db.Create(&appliance).Error; err != nil {
		return log.Err("failed to create appliance", err)
	}

	part := Part{
		Name:         "Burner grate",
		ApplianceID:  appliance.ID,
		ReminderDate: pastReminder,
		WebsiteLink:  stringPtr("https://example.com/burner-grate"),
	}
	if err := db.Create(&part).Error; err != nil {
		return log.Err("failed to create part", err)
	}

	log.Info("Seed complete")
	return nil
}
