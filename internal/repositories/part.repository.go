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

type PartRepository interface {
	Create(ctx context.Context, part *Part) error
	GetByID(ctx context.Context, id int) (*Part, error)
	GetByApplianceID(ctx context.Context, applianceID int) ([]*Part, error)
	Update(ctx context.Context, part *Part) error
	Delete(ctx context.Context, id int) error
	FindAllWithPastReminderDate(ctx context.Context, now time.Time) ([]*Part, error)
	ClearReminder(ctx context.Context, id int) error
}

type partRepository struct {
	db  database.DB
	log logger.Logger
}

func NewPartRepository(db database.DB) PartRepository {
	return &partRepository{
		db:  db,
		log: logger.New("partRepository"),
	}
}

func (r *partRepository) Create(ctx context.Context, part *Part) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(part).Error; err != nil {
		return log.Err(
			"failed to create part",
			err,
			"name", part.Name,
			"applianceID", part.ApplianceID,
		)
	}

	log.Info("Part created", "partID", part.ID, "applianceID", part.ApplianceID)
	return nil
}

func (r *partRepository) GetByID(ctx context.Context, id int) (*Part, error) {
	log := r.log.Function("GetByID")

	var part Part
	if err := r.db.SQLWithContext(ctx).First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get part by id", err, "id", id)
	}

	return &part, nil
}

func (r *partRepository) GetByApplianceID(ctx context.Context, applianceID int) ([]*Part, error) {
	log := r.log.Function("GetByApplianceID")

	var parts []*Part
	if err := r.db.SQLWithContext(ctx).
		Where("appliance_id = ?", applianceID).
		Order("id ASC").
		Find(&parts).Error; err != nil {
		return nil, log.Err("failed to get parts by appliance id", err, "applianceID", applianceID)
	}

	return parts, nil
}

func (r *partRepository) Update(ctx context.Context, part *Part) error {
	log := r.log.Function("Update")

	result := r.db.SQLWithContext(ctx).Model(&Part{}).Where("id = ?", part.ID).
		Updates(map[string]any{
			"name":          part.Name,
			"reminder_date": part.ReminderDate,
			"website_link":  part.WebsiteLink,
		})
	if result.Error != nil {
		return log.Err("failed to update part", result.Error, "partID", part.ID)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *partRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.db.SQLWithContext(ctx).Delete(&Part{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete part", result.Error, "partID", id)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	log.Info("Part deleted", "partID", id)
	return nil
}

func (r *partRepository) FindAllWithPastReminderDate(
	ctx context.Context,
	now time.Time,
) ([]*Part, error) {
	log := r.log.Function("FindAllWithPastReminderDate")

	var parts []*Part
	if err := r.db.SQLWithContext(ctx).
		Where("reminder_date IS NOT NULL AND reminder_date <= ?", now).
		Order("id ASC").
		Find(&parts).Error; err != nil {
		return nil, log.Err("failed to find parts with past reminder date", err)
	}

	return parts, nil
}

func (r *partRepository) ClearReminder(ctx context.Context, id int) error {
	log := r.log.Function("ClearReminder")

	result := r.db.SQLWithContext(ctx).Model(&Part{}).Where("id = ?", id).
		Update("reminder_date", nil)
	if result.Error != nil {
		return log.Err("failed to clear part reminder", result.Error, "partID", id)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
