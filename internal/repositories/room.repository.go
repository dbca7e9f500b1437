package repositories

import (
	"context"
	"errors"
	"time"

	"ogrelist/internal/database"
	. "ogrelist/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id int) (*Room, error)
	GetByHouseID(ctx context.Context, houseID int) ([]*Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id int) error
	FindAllWithPastReminderDate(ctx context.Context, now time.Time) ([]*Room, error)
	ClearReminder(ctx context.Context, id int) error
}

type roomRepository struct {
	db  database.DB
	log logger.Logger
}

func NewRoomRepository(db database.DB) RoomRepository {
	return &roomRepository{
		db:  db,
		log: logger.New("roomRepository"),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *Room) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(room).Error; err != nil {
		return log.Err("failed to create room", err, "name", room.Name, "houseID", room.HouseID)
	}

	log.Info("Room created", "roomID", room.ID, "houseID", room.HouseID)
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id int) (*Room, error) {
	log := r.log.Function("GetByID")

	var room Room
	if err := r.db.SQLWithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get room by id", err, "id", id)
	}

	return &room, nil
}

func (r *roomRepository) GetByHouseID(ctx context.Context, houseID int) ([]*Room, error) {
	log := r.log.Function("GetByHouseID")

	var rooms []*Room
	if err := r.db.SQLWithContext(ctx).
		Where("house_id = ?", houseID).
		Order("id ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to get rooms by house id", err, "houseID", houseID)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *Room) error {
	log := r.log.Function("Update")

	result := r.db.SQLWithContext(ctx).Model(&Room{}).Where("id = ?", room.ID).
		Updates(map[string]any{
			"name":           room.Name,
			"description":    room.Description,
			"square_footage": room.SquareFootage,
			"reminder_date":  room.ReminderDate,
			"website_link":   room.WebsiteLink,
		})
	if result.Error != nil {
		return log.Err("failed to update room", result.Error, "roomID", room.ID)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.db.SQLWithContext(ctx).Delete(&Room{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete room", result.Error, "roomID", id)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	log.Info("Room deleted", "roomID", id)
	return nil
}

func (r *roomRepository) FindAllWithPastReminderDate(
	ctx context.Context,
	now time.Time,
) ([]*Room, error) {
	log := r.log.Function("FindAllWithPastReminderDate")

	var rooms []*Room
	if err := r.db.SQLWithContext(ctx).
		Where("reminder_date IS NOT NULL AND reminder_date <= ?", now).
		Order("id ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to find rooms with past reminder date", err)
	}

	return rooms, nil
}

func (r *roomRepository) ClearReminder(ctx context.Context, id int) error {
	log := r.log.Function("ClearReminder")

	result := r.db.SQLWithContext(ctx).Model(&Room{}).Where("id = ?", id).
		Update("reminder_date", nil)
	if result.Error != nil {
		return log.Err("failed to clear room reminder", result.Error, "roomID", id)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
