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

type ApplianceRepository interface {
	Create(ctx context.Context, appliance *Appliance) error
	GetByID(ctx context.Context, id int) (*Appliance, error)
	GetByRoomID(ctx context.Context, roomID int) ([]*Appliance, error)
	Update(ctx context.Context, appliance *Appliance) error
	Delete(ctx context.Context, id int) error
	FindAllWithPastReminderDate(ctx context.Context, now time.Time) ([]*Appliance, error)
	ClearReminder(ctx context.Context, id int) error
}

type applianceRepository struct {
	db  database.DB
	log logger.Logger
}

func NewApplianceRepository(db database.DB) ApplianceRepository {
	return &applianceRepository{
		db:  db,
		log: logger.New("applianceRepository"),
	}
}

func (r *applianceRepository) Create(ctx context.Context, appliance *Appliance) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(appliance).Error; err != nil {
		return log.Err(
			"failed to create appliance",
			err,
			"name", appliance.Name,
			"roomID", appliance.RoomID,
		)
	}

	log.Info("Appliance created", "applianceID", appliance.ID, "roomID", appliance.RoomID)
	return nil
}

func (r *applianceRepository) GetByID(ctx context.Context, id int) (*Appliance, error) {
	log := r.log.Function("GetByID")

	var appliance Appliance
	if err := r.db.SQLWithContext(ctx).First(&appliance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get appliance by id", err, "id", id)
	}

	return &appliance, nil
}

func (r *applianceRepository) GetByRoomID(ctx context.Context, roomID int) ([]*Appliance, error) {
	log := r.log.Function("GetByRoomID")

	var appliances []*Appliance
	if err := r.db.SQLWithContext(ctx).
		Where("room_id = ?", roomID).
		Order("id ASC").
		Find(&appliances).Error; err != nil {
		return nil, log.Err("failed to get appliances by room id", err, "roomID", roomID)
	}

	return appliances, nil
}

func (r *applianceRepository) Update(ctx context.Context, appliance *Appliance) error {
	log := r.log.Function("Update")

	result := r.db.SQLWithContext(ctx).Model(&Appliance{}).Where("id = ?", appliance.ID).
		Updates(map[string]any{
			"name":          appliance.Name,
			"model":         appliance.Model,
			"brand":         appliance.Brand,
			"purchase_date": appliance.PurchaseDate,
			"reminder_date": appliance.ReminderDate,
			"website_link":  appliance.WebsiteLink,
		})
	if result.Error != nil {
		return log.Err("failed to update appliance", result.Error, "applianceID", appliance.ID)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *applianceRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.db.SQLWithContext(ctx).Delete(&Appliance{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete appliance", result.Error, "applianceID", id)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	log.Info("Appliance deleted", "applianceID", id)
	return nil
}

func (r *applianceRepository) FindAllWithPastReminderDate(
	ctx context.Context,
	now time.Time,
) ([]*Appliance, error) {
	log := r.log.Function("FindAllWithPastReminderDate")

	var appliances []*Appliance
	if err := r.db.SQLWithContext(ctx).
		Where("reminder_date IS NOT NULL AND reminder_date <= ?", now).
		Order("id ASC").
		Find(&appliances).Error; err != nil {
		return nil, log.Err("failed to find appliances with past reminder date", err)
	}

	return appliances, nil
}

func (r *applianceRepository) ClearReminder(ctx context.Context, id int) error {
	log := r.log.Function("ClearReminder")

	result := r.db.SQLWithContext(ctx).Model(&Appliance{}).Where("id = ?", id).
		Update("reminder_date", nil)
	if result.Error != nil {
		return log.Err("failed to clear appliance reminder", result.Error, "applianceID", id)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
